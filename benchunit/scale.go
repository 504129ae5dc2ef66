// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import "strconv"

// A Scaler represents a scaling factor for a number and the prefix
// to display in front of its unit.
type Scaler struct {
	Multiplier float64 // displayed value is value * Multiplier
	Prefix     string  // unit prefix ("k", "M", "%", etc)
}

// Scale returns val scaled by s.
func (s Scaler) Scale(val float64) float64 {
	return val * s.Multiplier
}

// Format formats val with one digit after the decimal point and
// appends the unit prefix. For example, HumanReadable(2048).Format(2048)
// returns "2.0k".
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, s.Scale(val), 'f', 1, 64)
	buf = append(buf, s.Prefix...)
	return string(buf)
}

// PercentScaler shows fractions as percentages.
var PercentScaler = Scaler{100, "%"}

// binaryPrefixes are in increasing order; each is 1024 times the
// previous one.
var binaryPrefixes = []string{"", "k", "M", "G", "T"}

// HumanReadable returns the Scaler with the smallest binary prefix
// that brings val below 1024. Values of 1024 T and above stay in T.
// Zero, negative and sub-unit values are not scaled.
//
// Scaling is by powers of 1024, not 1000, even though the prefixes
// are written "k", "M", and so on.
func HumanReadable(val float64) Scaler {
	mult := 1.0
	for i, prefix := range binaryPrefixes {
		if val*mult < 1024 || i == len(binaryPrefixes)-1 {
			return Scaler{mult, prefix}
		}
		mult /= 1024
	}
	panic("not reachable")
}
