// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchresult extracts BIST counters from the text output of
// a DRAM benchmark run and derives bandwidth and efficiency metrics
// from them.
//
// The benchmark output is free-form text. The only lines that matter
// report the BIST generator and checker counters, for example:
//
//	BIST-GENERATOR ticks:  1050
//	BIST-CHECKER errors:   0
//	BIST-CHECKER ticks:    1127
//
// These may appear anywhere, in any order, surrounded by any other
// output.
package benchresult

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/dramstat/dramstat/benchconf"
	"github.com/dramstat/dramstat/sdram"
)

// A Result is the outcome of one benchmark run. A Result is
// immutable once constructed; metrics are computed on each call.
type Result struct {
	config benchconf.Config
	output string
	geom   sdram.Geometry

	generatorTicks int64
	checkerErrors  int64
	checkerTicks   int64
}

// An ExtractError reports that a required counter was not found in
// benchmark output. This usually means the benchmark crashed or its
// output was truncated.
type ExtractError struct {
	Pattern string // the pattern that did not match
	Output  string // the complete benchmark output
	Err     error  // set if the pattern matched but its value was bad
}

func (e *ExtractError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bad value for pattern %s: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("could not find pattern in output: %s, %s", e.Pattern, e.Output)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// A counter is a (stage, variable) pair reported by the benchmark.
type counter struct {
	stage, variable string
	re              *regexp.Regexp
}

func newCounter(stage, variable string) counter {
	pattern := fmt.Sprintf(`%s\s+%s:\s+(?P<value>[0-9]+)`, regexp.QuoteMeta(stage), regexp.QuoteMeta(variable))
	return counter{stage, variable, regexp.MustCompile(pattern)}
}

var (
	generatorTicks = newCounter("BIST-GENERATOR", "ticks")
	checkerErrors  = newCounter("BIST-CHECKER", "errors")
	checkerTicks   = newCounter("BIST-CHECKER", "ticks")
)

// find returns the value of the first occurrence of c in output.
func (c counter) find(output string) (int64, error) {
	m := c.re.FindStringSubmatch(output)
	if m == nil {
		return 0, &ExtractError{Pattern: c.re.String(), Output: output}
	}
	v, err := strconv.ParseInt(m[c.re.SubexpIndex("value")], 10, 64)
	if err != nil {
		return 0, &ExtractError{Pattern: c.re.String(), Output: output, Err: err}
	}
	return v, nil
}

// New parses the output of a benchmark run with configuration cfg.
// The interface geometry is derived from cfg at the default system
// clock frequency.
func New(cfg benchconf.Config, output string) (*Result, error) {
	geom, err := sdram.Describe(cfg, sdram.DefaultSysClkFreq)
	if err != nil {
		return nil, err
	}
	return Parse(cfg, output, geom)
}

// Parse parses the output of a benchmark run with configuration cfg
// against an interface with geometry geom.
//
// If any of the generator ticks, checker errors or checker ticks
// counters is missing, Parse returns an *ExtractError and no Result.
func Parse(cfg benchconf.Config, output string, geom sdram.Geometry) (*Result, error) {
	r := &Result{config: cfg, output: output, geom: geom}
	for _, f := range []struct {
		c   counter
		dst *int64
	}{
		{generatorTicks, &r.generatorTicks},
		{checkerErrors, &r.checkerErrors},
		{checkerTicks, &r.checkerTicks},
	} {
		v, err := f.c.find(output)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}
	return r, nil
}

// Config returns the configuration the benchmark was run with.
func (r *Result) Config() benchconf.Config { return r.config }

// Output returns the raw benchmark output.
func (r *Result) Output() string { return r.output }

// Geometry returns the geometry of the benchmarked interface.
func (r *Result) Geometry() sdram.Geometry { return r.geom }

// GeneratorTicks returns the number of clock cycles the BIST
// generator (write) phase took.
func (r *Result) GeneratorTicks() int64 { return r.generatorTicks }

// CheckerErrors returns the number of mismatches the BIST checker
// found. It is zero for a valid run.
func (r *Result) CheckerErrors() int64 { return r.checkerErrors }

// CheckerTicks returns the number of clock cycles the BIST checker
// (read) phase took.
func (r *Result) CheckerTicks() int64 { return r.checkerTicks }

// CmdCount returns the number of native port transfers needed to
// move the BIST payload.
func (r *Result) CmdCount() float64 {
	return float64(r.config.Length) / float64(r.geom.DataWidthBytes())
}

// WriteBandwidth returns the write bandwidth in bits per second.
func (r *Result) WriteBandwidth() float64 {
	return 8 * float64(r.config.Length) / (float64(r.generatorTicks) * r.geom.ClkPeriod())
}

// ReadBandwidth returns the read bandwidth in bits per second.
func (r *Result) ReadBandwidth() float64 {
	return 8 * float64(r.config.Length) / (float64(r.checkerTicks) * r.geom.ClkPeriod())
}

// WriteEfficiency returns the fraction of generator cycles that
// issued a transfer. It is not clamped to 1.
func (r *Result) WriteEfficiency() float64 {
	return r.CmdCount() / float64(r.generatorTicks)
}

// ReadEfficiency returns the fraction of checker cycles that
// issued a transfer. It is not clamped to 1.
func (r *Result) ReadEfficiency() float64 {
	return r.CmdCount() / float64(r.checkerTicks)
}

// Anomalies returns descriptions of anything suspicious about r: a
// non-zero checker error count, or an efficiency above 100%, which
// means the benchmark misreported its tick counts.
func (r *Result) Anomalies() []string {
	var out []string
	if r.checkerErrors != 0 {
		out = append(out, fmt.Sprintf("BIST checker reported %d errors", r.checkerErrors))
	}
	if e := r.WriteEfficiency(); e > 1 {
		out = append(out, fmt.Sprintf("write efficiency %.1f%% exceeds 100%%", e*100))
	}
	if e := r.ReadEfficiency(); e > 1 {
		out = append(out, fmt.Sprintf("read efficiency %.1f%% exceeds 100%%", e*100))
	}
	return out
}
