// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchconf

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArgs(t *testing.T) {
	check := func(c Config, want string) {
		t.Helper()
		got := strings.Join(c.Args(), " ")
		if got != want {
			t.Errorf("%+v: got %q, want %q", c, got, want)
		}
	}
	check(Config{"MT48LC16M16", 32, 4096, false},
		"--sdram-module MT48LC16M16 --sdram-data-width 32 --bist-length 4096")
	check(Config{"MT41K128M16", 16, 1024, true},
		"--sdram-module MT41K128M16 --sdram-data-width 16 --bist-length 1024 --bist-random")
	check(Config{}, "--sdram-module  --sdram-data-width 0 --bist-length 0")
}

func TestArgsRoundTrip(t *testing.T) {
	for _, c := range []Config{
		{"MT48LC16M16", 32, 4096, false},
		{"MT41K128M16", 16, 1024, true},
		{"M1", 8, 1, true},
	} {
		got, err := ParseArgs(c.Args())
		if err != nil {
			t.Errorf("ParseArgs(%q): %v", c.Args(), err)
			continue
		}
		if got != c {
			t.Errorf("ParseArgs(%q) = %+v, want %+v", c.Args(), got, c)
		}
	}
}

func TestParseArgsErrors(t *testing.T) {
	for _, test := range []struct {
		args []string
		want string
	}{
		{[]string{"--sdram-module"}, "missing value for --sdram-module"},
		{[]string{"--bist-length", "many"}, "bad value for --bist-length"},
		{[]string{"--bist_length", "1"}, `unknown argument "--bist_length"`},
	} {
		_, err := ParseArgs(test.args)
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("ParseArgs(%q): got error %v, want %q", test.args, err, test.want)
		}
	}
}

func TestLoadFile(t *testing.T) {
	got, err := LoadFile("testdata/benchmarks.yml")
	if err != nil {
		t.Fatal(err)
	}
	want := []Named{
		{"test-sdr-0", Config{"MT48LC16M16", 32, 4096, false}},
		{"test-ddr3-1", Config{"MT41K128M16", 16, 1024, true}},
		{"a-last-but-sorted-first", Config{"MT47H64M16", 8, 512, false}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadFile mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		doc  string
		want string
	}{
		{"missing", `
x:
  sdram_module: MT48LC16M16
  sdram_data_width: 32
  bist_random: false
`, `benchmark "x": missing field bist_length`},
		{"unexpected", `
x:
  sdram_module: MT48LC16M16
  sdram_data_width: 32
  bist_length: 16
  bist_random: false
  sys_clk_freq: 100
`, "field sys_clk_freq not found"},
		{"zero width", `
x:
  sdram_module: MT48LC16M16
  sdram_data_width: 0
  bist_length: 16
  bist_random: false
`, "field sdram_data_width must be gt 0"},
		{"null entry", `
x:
`, "missing field sdram_module"},
		{"not a mapping", `- a`, "cannot unmarshal"},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(test.doc))
			if err == nil || !strings.Contains(err.Error(), test.want) {
				t.Errorf("got error %v, want %q", err, test.want)
			}
		})
	}
}

func TestLoadEmpty(t *testing.T) {
	got, err := Load(strings.NewReader(""))
	if err != nil || len(got) != 0 {
		t.Errorf("Load(empty) = %v, %v; want nothing", got, err)
	}
}

func TestFilter(t *testing.T) {
	configs := []Named{{Name: "sdr-a"}, {Name: "sdr-b"}, {Name: "ddr3-a"}, {Name: "ddr3-b"}}
	check := func(f Filter, want ...string) {
		t.Helper()
		var got []string
		for _, c := range f.Apply(configs) {
			got = append(got, c.Name)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%+v: (-want +got):\n%s", f, diff)
		}
	}
	check(Filter{}, "sdr-a", "sdr-b", "ddr3-a", "ddr3-b")
	check(Filter{Regex: regexp.MustCompile("^sdr")}, "sdr-a", "sdr-b")
	check(Filter{NotRegex: regexp.MustCompile("-a$")}, "sdr-b", "ddr3-b")
	check(Filter{Names: []string{"ddr3-b", "sdr-a"}}, "sdr-a", "ddr3-b")
	check(Filter{Names: []string{"ddr3-b", "sdr-a"}, Regex: regexp.MustCompile("ddr")}, "ddr3-b")
	check(Filter{Names: []string{"nope"}})
}
