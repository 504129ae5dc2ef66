// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dramstat/dramstat/benchconf"
	"github.com/dramstat/dramstat/benchresult"
	. "github.com/dramstat/dramstat/storage/db"
	"github.com/dramstat/dramstat/storage/db/dbtest"
)

func output(gen, errs, chk int) string {
	return fmt.Sprintf("Running BIST...\nBIST-GENERATOR ticks: %d\nBIST-CHECKER errors: %d\nBIST-CHECKER ticks: %d\n", gen, errs, chk)
}

func newResult(t *testing.T, cfg benchconf.Config, out string) *benchresult.Result {
	t.Helper()
	r, err := benchresult.New(cfg, out)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

// TestRunIDs verifies that NewRun generates increasing run IDs.
func TestRunIDs(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewDB(t)

	for i, want := range []string{"1", "2", "3"} {
		run, err := db.NewRun(ctx, 100e6)
		if err != nil {
			t.Fatalf("NewRun: %v", err)
		}
		if run.ID != want {
			t.Errorf("run %d: ID = %q, want %q", i, run.ID, want)
		}
	}
	n, err := db.CountRuns()
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("CountRuns() = %d, want 3", n)
	}
}

func TestInsertAndList(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewDB(t)

	type stored struct {
		Name           string
		Config         benchconf.Config
		PortWidth      int
		ClkFreq        float64
		GeneratorTicks int64
		CheckerErrors  int64
		CheckerTicks   int64
		Output         string
	}
	flatten := func(ss []Stored) []stored {
		var out []stored
		for _, s := range ss {
			r := s.Result
			out = append(out, stored{s.Name, r.Config(), r.Geometry().DataWidth, r.Geometry().ClkFreq,
				r.GeneratorTicks(), r.CheckerErrors(), r.CheckerTicks(), r.Output()})
		}
		return out
	}

	run1, err := db.NewRun(ctx, 100e6)
	if err != nil {
		t.Fatal(err)
	}
	sdr := benchconf.Config{Module: "MT48LC16M16", DataWidth: 16, Length: 4096}
	ddr3 := benchconf.Config{Module: "MT41K128M16", DataWidth: 16, Length: 1024, Random: true}
	in := []Stored{
		{Name: "test-sdr", Result: newResult(t, sdr, output(2100, 0, 2254))},
		{Name: "test-ddr3", Result: newResult(t, ddr3, output(180, 3, 200))},
	}
	for _, s := range in {
		if err := run1.InsertResult(ctx, s.Name, s.Result); err != nil {
			t.Fatalf("InsertResult(%s): %v", s.Name, err)
		}
	}

	// A second run must not leak into the first.
	run2, err := db.NewRun(ctx, 50e6)
	if err != nil {
		t.Fatal(err)
	}
	if err := run2.InsertResult(ctx, "other", newResult(t, sdr, output(1, 0, 1))); err != nil {
		t.Fatal(err)
	}

	got, err := db.ListResults(ctx, run1.ID)
	if err != nil {
		t.Fatalf("ListResults: %v", err)
	}
	if diff := cmp.Diff(flatten(in), flatten(got)); diff != "" {
		t.Errorf("ListResults(%s) mismatch (-want +got):\n%s", run1.ID, diff)
	}
	if got[1].Result.WriteBandwidth() != in[1].Result.WriteBandwidth() {
		t.Errorf("write bandwidth changed after round trip: %v, want %v", got[1].Result.WriteBandwidth(), in[1].Result.WriteBandwidth())
	}

	got, err = db.ListResults(ctx, run2.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "other" || got[0].Result.Geometry().ClkFreq != 50e6 {
		t.Errorf("ListResults(%s) = %+v, want one result at 50MHz", run2.ID, flatten(got))
	}
}

func TestListResultsErrors(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewDB(t)

	for _, test := range []struct {
		id, want string
	}{
		{"x", `bad run ID "x"`},
		{"42", "run 42: no results"},
	} {
		_, err := db.ListResults(ctx, test.id)
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("ListResults(%q) error = %v, want %q", test.id, err, test.want)
		}
	}
}
