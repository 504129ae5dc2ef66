// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/palette/brewer"
)

// A Theme sets the colors of a chart.
type Theme struct {
	Background color.Color
	Foreground color.Color // text, axes and ticks
	Grid       color.Color
	Bar        color.Color
}

var themes = map[string]Theme{
	"default": {
		Background: color.White,
		Foreground: color.Black,
		Grid:       color.Gray{0xb0},
		Bar:        color.NRGBA{0x1f, 0x77, 0xb4, 0xff},
	},
	"dark": {
		Background: color.Gray{0x22},
		Foreground: color.White,
		Grid:       color.Gray{0x55},
		Bar:        color.NRGBA{0x8d, 0xd3, 0xc7, 0xff},
	},
	"grayscale": {
		Background: color.White,
		Foreground: color.Black,
		Grid:       color.Gray{0xd0},
		Bar:        color.Gray{0x60},
	},
}

// LookupTheme returns the named theme. Besides the built-in themes
// "default", "dark" and "grayscale", name may be any ColorBrewer
// palette, such as "Set1" or "Dark2", which colors the bars of the
// default theme with the palette's first color.
func LookupTheme(name string) (Theme, error) {
	if th, ok := themes[name]; ok {
		return th, nil
	}
	p, err := brewer.GetPalette(brewer.TypeAny, name, 3)
	if err != nil {
		return Theme{}, fmt.Errorf("unknown plot theme %q", name)
	}
	th := themes["default"]
	th.Bar = p.Colors()[0]
	return th, nil
}
