// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit scales benchmark metric values for display and
// lays out centered text.
package benchunit

import "fmt"

// A Class specifies how values of a metric are scaled for display.
type Class int

const (
	// Binary indicates values should be scaled by powers of 1024
	// and shown with the prefixes "k", "M", "G" and "T".
	Binary Class = iota
	// Percent indicates values are fractions that should be
	// shown as a percentage, whatever their magnitude.
	Percent
)

func (c Class) String() string {
	switch c {
	case Binary:
		return "Binary"
	case Percent:
		return "Percent"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Scaler returns the Scaler to apply to val under class c.
func (c Class) Scaler(val float64) Scaler {
	switch c {
	case Binary:
		return HumanReadable(val)
	case Percent:
		return PercentScaler
	}
	panic(fmt.Sprintf("bad Class %v", c))
}
