// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchresult

import "github.com/dramstat/dramstat/benchunit"

// A Metric is a named value computed from a Result, with the
// metadata needed to display it.
type Metric struct {
	Key   string          // file-name-safe identifier, e.g. "write_bandwidth"
	Name  string          // display label, e.g. "Write bandwidth"
	Unit  string          // base unit, e.g. "bps"
	Class benchunit.Class // how values are scaled for display
	Value func(r *Result) float64
}

// Scaler returns the Scaler for displaying val.
func (m Metric) Scaler(val float64) benchunit.Scaler {
	return m.Class.Scaler(val)
}

// Format returns val scaled, with one decimal digit, followed by the
// scaled unit, e.g. "7.6 Gbps" or "64.0 %".
func (m Metric) Format(val float64) string {
	s := m.Scaler(val)
	return benchunit.Scaler{Multiplier: s.Multiplier}.Format(val) + " " + s.Prefix + m.Unit
}

// Metrics are the built-in metrics, in display order.
var Metrics = []Metric{
	{"write_bandwidth", "Write bandwidth", "bps", benchunit.Binary, (*Result).WriteBandwidth},
	{"read_bandwidth", "Read bandwidth", "bps", benchunit.Binary, (*Result).ReadBandwidth},
	{"write_efficiency", "Write efficiency", "", benchunit.Percent, (*Result).WriteEfficiency},
	{"read_efficiency", "Read efficiency", "", benchunit.Percent, (*Result).ReadEfficiency},
}

// MetricByKey returns the built-in metric with the given key.
func MetricByKey(key string) (Metric, bool) {
	for _, m := range Metrics {
		if m.Key == key {
			return m, true
		}
	}
	return Metric{}, false
}
