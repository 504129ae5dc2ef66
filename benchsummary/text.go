// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchsummary

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dramstat/dramstat/benchconf"
	"github.com/dramstat/dramstat/benchresult"
	"github.com/dramstat/dramstat/benchunit"
)

const legend = "(module, datawidth, length, random, result)"

// formatRow formats one result line of the text summary.
func formatRow(m benchresult.Metric, val float64, cfg benchconf.Config) string {
	s := m.Scaler(val)
	result := fmt.Sprintf("%5.1f %s%s", s.Scale(val), s.Prefix, m.Unit)
	return fmt.Sprintf("   %-15s  %2d  %4d  %1d    %s",
		cfg.Module, cfg.DataWidth, cfg.Length, boolInt(cfg.Random), result)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// tableWidth returns the width of a text summary whose longest row
// and legend are longest and legendLen runes wide.
func tableWidth(longest, legendLen int) int {
	return max(longest, legendLen+2) + 2
}

// WriteText writes s to w as an aligned, human-readable table with a
// section per metric. Each row gives a result's configuration and
// its scaled metric value.
func (s *Summary) WriteText(w io.Writer) error {
	sections := make([][]string, len(s.metrics))
	longest := 0
	for i, m := range s.metrics {
		for val, cfg := range s.ByMetric(m) {
			line := formatRow(m, val, cfg)
			sections[i] = append(sections[i], line)
			longest = max(longest, utf8.RuneCountInString(line))
		}
	}
	width := tableWidth(longest, utf8.RuneCountInString(legend))

	header := func(text string) string {
		mid := benchunit.Center(text, width-6, '=')
		return benchunit.Center(mid, width, '-')
	}

	var buf strings.Builder
	fmt.Fprintln(&buf, header(" Summary "))
	fmt.Fprintln(&buf, benchunit.Center(legend, width, ' '))
	for i, m := range s.metrics {
		fmt.Fprintln(&buf, benchunit.Center(m.Name, width, ' '))
		for _, line := range sections[i] {
			fmt.Fprintln(&buf, line)
		}
	}
	fmt.Fprintln(&buf, header(""))
	_, err := io.WriteString(w, buf.String())
	return err
}
