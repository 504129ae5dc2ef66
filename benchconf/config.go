// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchconf describes DRAM benchmark configurations and
// converts them to and from benchmark command-line arguments.
//
// A configuration is a small, fixed set of parameters: the SDRAM
// module under test, its data width, the BIST payload length and
// whether the BIST pattern is randomized. Configurations are usually
// loaded by name from a YAML document (see Load).
package benchconf

import (
	"fmt"
	"strconv"
	"strings"
)

// A Config is the set of parameters of one benchmark variant.
//
// Config is a value type. Two Configs are equal if all of their
// fields are equal.
type Config struct {
	Module    string
	DataWidth int // bits
	Length    int // bytes
	Random    bool
}

// A Named is a Config together with the name it was declared under.
type Named struct {
	Name   string
	Config Config
}

// A field describes how one Config field is serialized. Fields are
// serialized in the order of the fields table.
type field struct {
	name   string // YAML key; the flag is derived from it
	isBool bool   // emitted as a bare flag when set
	get    func(c *Config) string
	set    func(c *Config, v string) error
}

var fields = []field{
	{
		name: "sdram_module",
		get:  func(c *Config) string { return c.Module },
		set: func(c *Config, v string) error {
			c.Module = v
			return nil
		},
	},
	{
		name: "sdram_data_width",
		get:  func(c *Config) string { return strconv.Itoa(c.DataWidth) },
		set:  func(c *Config, v string) error { return setInt(&c.DataWidth, v) },
	},
	{
		name: "bist_length",
		get:  func(c *Config) string { return strconv.Itoa(c.Length) },
		set:  func(c *Config, v string) error { return setInt(&c.Length, v) },
	},
	{
		name:   "bist_random",
		isBool: true,
		get:    func(c *Config) string { return strconv.FormatBool(c.Random) },
		set: func(c *Config, v string) error {
			c.Random = v == "true"
			return nil
		},
	},
}

func setInt(dst *int, v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

// flagName returns the command-line flag for a field name.
func flagName(name string) string {
	return "--" + strings.ReplaceAll(name, "_", "-")
}

// Args returns c as benchmark command-line arguments.
//
// Boolean fields are emitted as a bare flag when true and omitted
// when false. Every other field is emitted as a flag followed by its
// value. Flag names are the YAML field names with underscores
// replaced by hyphens, for example "--sdram-data-width 16". The order
// of the arguments is fixed.
func (c Config) Args() []string {
	var args []string
	for _, f := range fields {
		v := f.get(&c)
		if f.isBool {
			if v == "true" {
				args = append(args, flagName(f.name))
			}
			continue
		}
		args = append(args, flagName(f.name), v)
	}
	return args
}

// ParseArgs is the inverse of Config.Args. It parses benchmark
// command-line arguments back into a Config. Flags may appear in any
// order; flags that are not given leave the zero value.
func ParseArgs(args []string) (Config, error) {
	var c Config
	for i := 0; i < len(args); i++ {
		f, ok := fieldByFlag(args[i])
		if !ok {
			return Config{}, fmt.Errorf("unknown argument %q", args[i])
		}
		if f.isBool {
			f.set(&c, "true")
			continue
		}
		if i+1 >= len(args) {
			return Config{}, fmt.Errorf("missing value for %s", args[i])
		}
		i++
		if err := f.set(&c, args[i]); err != nil {
			return Config{}, fmt.Errorf("bad value for %s: %w", args[i-1], err)
		}
	}
	return c, nil
}

func fieldByFlag(arg string) (field, bool) {
	for _, f := range fields {
		if flagName(f.name) == arg {
			return f, true
		}
	}
	return field{}, false
}

// String returns c in the argument form, for logging.
func (c Config) String() string {
	return strings.Join(c.Args(), " ")
}
