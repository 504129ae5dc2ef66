// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchsummary

import (
	"io"

	"github.com/aclements/go-moremath/stats"
	"github.com/dramstat/dramstat/internal/texttab"
)

// WriteStats writes the minimum, mean, geometric mean and maximum of
// each metric across all results in s. It writes nothing if s is
// empty.
func (s *Summary) WriteStats(w io.Writer) error {
	if len(s.results) == 0 {
		return nil
	}

	var tab texttab.Table
	tab.Row().Cell("metric").
		Cell("min", texttab.Right).
		Cell("mean", texttab.Right).
		Cell("geomean", texttab.Right).
		Cell("max", texttab.Right)
	tab.Rule('-')
	for _, m := range s.metrics {
		var sample stats.Sample
		for val := range s.ByMetric(m) {
			sample.Xs = append(sample.Xs, val)
		}
		lo, hi := sample.Bounds()
		tab.Row().Cell(m.Name).
			Cell(m.Format(lo), texttab.Right).
			Cell(m.Format(sample.Mean()), texttab.Right).
			Cell(m.Format(sample.GeoMean()), texttab.Right).
			Cell(m.Format(hi), texttab.Right)
	}
	return tab.Format(w)
}
