// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchsummary aggregates DRAM benchmark results and renders
// them as text, HTML and bar charts, one section or chart per metric.
package benchsummary

import (
	"iter"

	"github.com/dramstat/dramstat/benchconf"
	"github.com/dramstat/dramstat/benchresult"
)

// A Summary is an ordered collection of benchmark results.
// Everything it renders is computed from the results on demand.
type Summary struct {
	results []*benchresult.Result
	metrics []benchresult.Metric
}

// New returns a Summary of results, in the given order, over the
// built-in metrics.
func New(results ...*benchresult.Result) *Summary {
	return &Summary{
		results: append([]*benchresult.Result(nil), results...),
		metrics: benchresult.Metrics,
	}
}

// Add appends r to s.
func (s *Summary) Add(r *benchresult.Result) {
	s.results = append(s.results, r)
}

// Results returns the results in s, in insertion order.
func (s *Summary) Results() []*benchresult.Result {
	return s.results
}

// Metrics returns the metrics s reports, in display order.
func (s *Summary) Metrics() []benchresult.Metric {
	return s.metrics
}

// ByMetric returns a sequence of the value of m for each result,
// together with the configuration that produced it, in insertion
// order. The sequence can be iterated any number of times.
func (s *Summary) ByMetric(m benchresult.Metric) iter.Seq2[float64, benchconf.Config] {
	return func(yield func(float64, benchconf.Config) bool) {
		for _, r := range s.results {
			if !yield(m.Value(r), r.Config()) {
				return
			}
		}
	}
}
