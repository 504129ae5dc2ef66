// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchsummary

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dramstat/dramstat/benchconf"
	"github.com/dramstat/dramstat/benchresult"
)

// A BarChart is one metric's value for every result, ready to be
// drawn as a horizontal bar chart. Bars are in insertion order and
// are meant to be drawn top to bottom.
type BarChart struct {
	Metric benchresult.Metric
	Labels []string // one per bar, possibly multi-line
	Values []float64
}

// A Renderer draws bar charts to files.
type Renderer interface {
	// Render draws c to the file at path. The image format is
	// taken from the extension of path.
	Render(c *BarChart, path string) error
}

// ErrNoRenderer is returned when plots are requested but no plotting
// backend is available.
var ErrNoRenderer = errors.New("plotting is not available")

type noRenderer struct{}

func (noRenderer) Render(*BarChart, string) error { return ErrNoRenderer }

// NoRenderer is a Renderer for builds without a plotting backend.
// It fails every request.
var NoRenderer Renderer = noRenderer{}

// configLabel returns the bar label for cfg: the module on the first
// line and the remaining parameters on the second.
func configLabel(cfg benchconf.Config) string {
	return fmt.Sprintf("%s\n%d, %d, %d", cfg.Module, cfg.DataWidth, cfg.Length, boolInt(cfg.Random))
}

// Chart returns the bar chart of metric m.
func (s *Summary) Chart(m benchresult.Metric) *BarChart {
	c := &BarChart{Metric: m}
	for val, cfg := range s.ByMetric(m) {
		c.Labels = append(c.Labels, configLabel(cfg))
		c.Values = append(c.Values, val)
	}
	return c
}

// Plot renders one bar chart per metric with r and saves it as
// dir/<metric key>.<format>. It creates dir if necessary. A nil r
// behaves like NoRenderer.
func (s *Summary) Plot(r Renderer, dir, format string) error {
	if _, ok := r.(noRenderer); ok || r == nil {
		return ErrNoRenderer
	}
	if len(s.results) == 0 {
		return errors.New("no results to plot")
	}
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	for _, m := range s.metrics {
		path := filepath.Join(dir, m.Key+"."+format)
		if err := r.Render(s.Chart(m), path); err != nil {
			return fmt.Errorf("plotting %s: %w", m.Name, err)
		}
	}
	return nil
}
