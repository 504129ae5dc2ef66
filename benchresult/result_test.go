// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchresult

import (
	"errors"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/dramstat/dramstat/benchconf"
	"github.com/dramstat/dramstat/sdram"
)

// geom32 is a 32-bit interface clocked at 100 MHz.
var geom32 = sdram.Geometry{DataWidth: 32, ClkFreq: 100e6}

var cfgM1 = benchconf.Config{Module: "M1", DataWidth: 32, Length: 1024, Random: false}

func TestParseCounters(t *testing.T) {
	check := func(output string, gen, errs, chk int64) {
		t.Helper()
		r, err := Parse(cfgM1, output, geom32)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.GeneratorTicks() != gen || r.CheckerErrors() != errs || r.CheckerTicks() != chk {
			t.Errorf("got counters (%d, %d, %d), want (%d, %d, %d)",
				r.GeneratorTicks(), r.CheckerErrors(), r.CheckerTicks(), gen, errs, chk)
		}
		if r.Output() != output {
			t.Errorf("output not retained")
		}
	}

	check("BIST-GENERATOR ticks: 100\nBIST-CHECKER errors: 0\nBIST-CHECKER ticks: 80\n", 100, 0, 80)
	// Order does not matter.
	check("BIST-CHECKER ticks: 80\nBIST-GENERATOR ticks: 100\nBIST-CHECKER errors: 3\n", 100, 3, 80)
	// Surrounding noise and flexible whitespace.
	check("noise\nBIST-GENERATOR\tticks:\t\t7 cycles\nfoo BIST-CHECKER  errors: 0\nxBIST-CHECKER\n ticks:   12345678901\nbar\n",
		7, 0, 12345678901)
	// The first match wins.
	check("BIST-GENERATOR ticks: 1\nBIST-GENERATOR ticks: 2\nBIST-CHECKER errors: 0\nBIST-CHECKER ticks: 3\n", 1, 0, 3)
}

func TestParseMissing(t *testing.T) {
	full := []string{
		"BIST-GENERATOR ticks: 100",
		"BIST-CHECKER errors: 0",
		"BIST-CHECKER ticks: 80",
	}
	for drop := range full {
		var lines []string
		for i, l := range full {
			if i != drop {
				lines = append(lines, l)
			}
		}
		output := strings.Join(lines, "\n")
		r, err := Parse(cfgM1, output, geom32)
		if r != nil {
			t.Errorf("without %q: got partial result %+v", full[drop], r)
		}
		var xerr *ExtractError
		if !errors.As(err, &xerr) {
			t.Fatalf("without %q: got error %v, want *ExtractError", full[drop], err)
		}
		if xerr.Output != output {
			t.Errorf("without %q: error does not carry the output", full[drop])
		}
		if !strings.Contains(xerr.Pattern, strings.Fields(full[drop])[0]) {
			t.Errorf("without %q: error pattern %q does not name the stage", full[drop], xerr.Pattern)
		}
	}

	// The value must be separated from the colon.
	if _, err := Parse(cfgM1, "BIST-GENERATOR ticks: 100\nBIST-CHECKER errors:0\nBIST-CHECKER ticks: 80", geom32); err == nil {
		t.Errorf("counter with no space after the colon was accepted")
	}

	// A value that does not fit in an int64 is an error, too.
	_, err := Parse(cfgM1, "BIST-GENERATOR ticks: 99999999999999999999\nBIST-CHECKER errors: 0\nBIST-CHECKER ticks: 80", geom32)
	var xerr *ExtractError
	if !errors.As(err, &xerr) || xerr.Err == nil {
		t.Errorf("got error %v, want *ExtractError with a cause", err)
	}
}

func TestMetrics(t *testing.T) {
	r, err := Parse(cfgM1, "BIST-GENERATOR ticks: 100\nBIST-CHECKER errors: 0\nBIST-CHECKER ticks: 80\n", geom32)
	if err != nil {
		t.Fatal(err)
	}
	check := func(name string, got, want float64) {
		t.Helper()
		if math.Abs(got-want) > 1e-9*math.Abs(want) {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
	check("CmdCount", r.CmdCount(), 256)
	check("WriteBandwidth", r.WriteBandwidth(), 8.192e9)
	check("ReadBandwidth", r.ReadBandwidth(), 10.24e9)
	check("WriteEfficiency", r.WriteEfficiency(), 2.56)
	check("ReadEfficiency", r.ReadEfficiency(), 3.2)

	// Efficiencies above 1 are reported, not clamped.
	anomalies := r.Anomalies()
	if len(anomalies) != 2 || !strings.Contains(anomalies[0], "write efficiency 256.0%") {
		t.Errorf("got anomalies %q", anomalies)
	}
}

func TestNew(t *testing.T) {
	output, err := os.ReadFile("testdata/sdr.txt")
	if err != nil {
		t.Fatal(err)
	}
	cfg := benchconf.Config{Module: "MT48LC16M16", DataWidth: 16, Length: 4096}
	r, err := New(cfg, string(output))
	if err != nil {
		t.Fatal(err)
	}
	if r.Config() != cfg {
		t.Errorf("got config %+v, want %+v", r.Config(), cfg)
	}
	if g := r.Geometry(); g.DataWidthBytes() != 2 || g.ClkFreq != sdram.DefaultSysClkFreq {
		t.Errorf("got geometry %+v", g)
	}
	// 4096 bytes over a 2-byte port in 2100 cycles.
	if got, want := r.WriteEfficiency(), 2048.0/2100; got != want {
		t.Errorf("WriteEfficiency = %v, want %v", got, want)
	}
	if got := r.Anomalies(); len(got) != 0 {
		t.Errorf("got anomalies %q, want none", got)
	}

	if _, err := New(benchconf.Config{Module: "nonesuch", DataWidth: 16}, string(output)); err == nil {
		t.Errorf("New with unknown module succeeded")
	}
}

func TestCheckerErrorsAnomaly(t *testing.T) {
	r, err := Parse(cfgM1, "BIST-GENERATOR ticks: 1000\nBIST-CHECKER errors: 5\nBIST-CHECKER ticks: 1000\n", geom32)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Anomalies(); len(got) != 1 || got[0] != "BIST checker reported 5 errors" {
		t.Errorf("got anomalies %q", got)
	}
}

func TestMetricFormat(t *testing.T) {
	check := func(key string, v float64, want string) {
		t.Helper()
		m, ok := MetricByKey(key)
		if !ok {
			t.Fatalf("no metric %q", key)
		}
		if got := m.Format(v); got != want {
			t.Errorf("%s.Format(%v) = %q, want %q", key, v, got, want)
		}
	}
	check("write_bandwidth", 8.192e9, "7.6 Gbps")
	check("read_bandwidth", 512, "512.0 bps")
	check("write_efficiency", 0.5, "50.0 %")
	check("read_efficiency", 2.56, "256.0 %")

	if _, ok := MetricByKey("latency"); ok {
		t.Errorf("MetricByKey(latency) succeeded")
	}
}
