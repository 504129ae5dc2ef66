// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sdram describes the memory interface a DRAM benchmark is
// run against. It derives the two constants that metric computations
// need from a benchmark configuration: the width of the controller's
// native port and the system clock frequency.
package sdram

import (
	"fmt"
	"sort"

	"github.com/dramstat/dramstat/benchconf"
)

// DefaultSysClkFreq is the system clock of the benchmark SoC, in Hz.
const DefaultSysClkFreq = 100e6

// A MemType is an SDRAM memory standard.
type MemType int

const (
	SDR MemType = iota
	DDR
	LPDDR
	DDR2
	DDR3
	DDR4
)

func (t MemType) String() string {
	switch t {
	case SDR:
		return "SDR"
	case DDR:
		return "DDR"
	case LPDDR:
		return "LPDDR"
	case DDR2:
		return "DDR2"
	case DDR3:
		return "DDR3"
	case DDR4:
		return "DDR4"
	}
	return fmt.Sprintf("MemType(%d)", int(t))
}

// Phases returns the number of DFI phases the PHY uses for t.
func (t MemType) Phases() int {
	switch t {
	case SDR:
		return 1
	case DDR, LPDDR, DDR2:
		return 2
	}
	return 4
}

// Rate returns the number of transfers per clock per phase.
func (t MemType) Rate() int {
	if t == SDR {
		return 1
	}
	return 2
}

var modules = map[string]MemType{
	// SDR
	"IS42S16160":  SDR,
	"IS42S16320":  SDR,
	"MT48LC4M16":  SDR,
	"MT48LC16M16": SDR,
	"AS4C16M16":   SDR,
	"AS4C32M16":   SDR,
	"AS4C32M8":    SDR,
	"M12L64322A":  SDR,
	"M12L16161A":  SDR,
	// DDR
	"MT46V32M16": DDR,
	// LPDDR
	"MT46H32M16": LPDDR,
	"MT46H32M32": LPDDR,
	// DDR2
	"MT47H128M8": DDR2,
	"MT47H32M16": DDR2,
	"MT47H64M16": DDR2,
	"P3R1GE4JGF": DDR2,
	// DDR3
	"MT41K64M16":    DDR3,
	"MT41J128M16":   DDR3,
	"MT41K128M16":   DDR3,
	"MT41J256M16":   DDR3,
	"MT41K256M16":   DDR3,
	"K4B1G0446F":    DDR3,
	"K4B2G1646F":    DDR3,
	"H5TC4G63CFR":   DDR3,
	"IS43TR16128B":  DDR3,
	"MT8JTF12864":   DDR3,
	"MT8KTF51264":   DDR3,
	"MT18KSF1G72HZ": DDR3,
	"AS4C256M16D3A": DDR3,
	"MT16KTF1G64HZ": DDR3,
	"AS4C1G16D3":    DDR3,
	"MT41J512M8":    DDR3,
	// DDR4
	"EDY4016A":       DDR4,
	"MTA4ATF51264HZ": DDR4,
	"MT40A1G8":       DDR4,
	"MT40A256M16":    DDR4,
	"MT40A512M8":     DDR4,
	"MT40A512M16":    DDR4,
	"MTA18ASF2G72PZ": DDR4,
}

// Modules returns the names of all known SDRAM modules, sorted.
func Modules() []string {
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TypeOf returns the memory standard of the named module.
func TypeOf(module string) (MemType, bool) {
	t, ok := modules[module]
	return t, ok
}

// Geometry holds the constants of a benchmarked memory interface.
type Geometry struct {
	DataWidth int     // native port width, in bits
	ClkFreq   float64 // system clock, in Hz
}

// DataWidthBytes returns the native port width in bytes.
func (g Geometry) DataWidthBytes() int {
	return g.DataWidth / 8
}

// ClkPeriod returns the system clock period in seconds.
func (g Geometry) ClkPeriod() float64 {
	return 1 / g.ClkFreq
}

// Describe returns the geometry of the interface benchmarked by cfg
// when the SoC runs at sysClkFreq.
//
// The native port carries one full PHY word per system clock: the
// module data width times the number of phases, doubled for
// double-data-rate memories.
func Describe(cfg benchconf.Config, sysClkFreq float64) (Geometry, error) {
	t, ok := modules[cfg.Module]
	if !ok {
		return Geometry{}, fmt.Errorf("unknown SDRAM module %q", cfg.Module)
	}
	if cfg.DataWidth <= 0 || cfg.DataWidth%8 != 0 {
		return Geometry{}, fmt.Errorf("%s: SDRAM data width %d is not a positive multiple of 8", cfg.Module, cfg.DataWidth)
	}
	if !(sysClkFreq > 0) {
		return Geometry{}, fmt.Errorf("system clock frequency must be positive, got %v", sysClkFreq)
	}
	return Geometry{
		DataWidth: cfg.DataWidth * t.Phases() * t.Rate(),
		ClkFreq:   sysClkFreq,
	}, nil
}
