// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plots draws benchmark summary charts with gonum/plot.
package plots

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/dramstat/dramstat/benchsummary"
	"github.com/dramstat/dramstat/benchunit"
)

// Options configure a Renderer.
type Options struct {
	Theme       string    // see LookupTheme; "" means "default"
	Transparent bool      // omit the background
	DPI         int       // resolution of raster formats; 0 means 96
	Width       vg.Length // 0 means 16cm
	Height      vg.Length // 0 means 1.5cm per bar plus room for the axes
}

// A Renderer draws horizontal bar charts to image files. It
// implements benchsummary.Renderer.
type Renderer struct {
	opts  Options
	theme Theme
}

var _ benchsummary.Renderer = (*Renderer)(nil)

// Formats lists the supported image file extensions.
var Formats = []string{"png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf", "eps"}

// New returns a Renderer with the given options.
func New(opts Options) (*Renderer, error) {
	if opts.Theme == "" {
		opts.Theme = "default"
	}
	theme, err := LookupTheme(opts.Theme)
	if err != nil {
		return nil, err
	}
	if opts.DPI < 0 {
		return nil, fmt.Errorf("bad plot DPI %d", opts.DPI)
	}
	if opts.DPI == 0 {
		opts.DPI = vgimg.DefaultDPI
	}
	if opts.Width == 0 {
		opts.Width = 16 * vg.Centimeter
	}
	return &Renderer{opts: opts, theme: theme}, nil
}

// Render draws c to the file at path, in the format given by the
// file extension of path.
func (r *Renderer) Render(c *benchsummary.BarChart, path string) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	height := r.opts.Height
	if height == 0 {
		height = vg.Length(2+1.5*float64(len(c.Values))) * vg.Centimeter
	}
	can, err := r.canvas(format, r.opts.Width, height)
	if err != nil {
		return err
	}
	pl, err := r.chart(c)
	if err != nil {
		return err
	}
	pl.Draw(draw.New(can))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// canvas returns a canvas of size w×h that writes format.
func (r *Renderer) canvas(format string, w, h vg.Length) (vg.CanvasWriterTo, error) {
	img := func() *vgimg.Canvas {
		var bg color.Color = r.theme.Background
		if r.opts.Transparent {
			bg = color.Transparent
		}
		return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(r.opts.DPI), vgimg.UseBackgroundColor(bg))
	}
	switch format {
	case "png":
		return vgimg.PngCanvas{Canvas: img()}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: img()}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: img()}, nil
	case "svg":
		return vgsvg.New(w, h), nil
	case "pdf":
		return vgpdf.New(w, h), nil
	case "eps":
		return vgeps.New(w, h), nil
	}
	return nil, fmt.Errorf("unsupported plot format %q", format)
}

// chart lays out the plot of c. Bars run left to right, one per
// result, with the first result at the top.
func (r *Renderer) chart(c *benchsummary.BarChart) (*plot.Plot, error) {
	if len(c.Values) == 0 {
		return nil, fmt.Errorf("%s: no values", c.Metric.Name)
	}
	th := r.theme

	pl := plot.New()
	if r.opts.Transparent {
		pl.BackgroundColor = color.Transparent
	} else {
		pl.BackgroundColor = th.Background
	}
	pl.Title.Text = c.Metric.Name
	pl.Title.TextStyle.Font.Size = 12
	pl.Title.TextStyle.Color = th.Foreground
	for _, ax := range []*plot.Axis{&pl.X, &pl.Y} {
		ax.Color = th.Foreground
		ax.Label.TextStyle.Color = th.Foreground
		ax.Tick.Color = th.Foreground
		ax.Tick.Label.Color = th.Foreground
	}

	// The grid goes first so it is drawn below the bars.
	grid := plotter.NewGrid()
	grid.Vertical.Color = th.Grid
	grid.Horizontal.Color = th.Grid
	pl.Add(grid)

	bars, err := plotter.NewBarChart(plotter.Values(c.Values), vg.Points(20))
	if err != nil {
		return nil, err
	}
	bars.Horizontal = true
	bars.Color = th.Bar
	bars.LineStyle.Width = 0
	pl.Add(bars)

	pl.NominalY(c.Labels...)
	pl.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	pl.X.Tick.Label.Rotation = math.Pi / 6
	pl.X.Tick.Label.XAlign = draw.XRight
	pl.X.Tick.Label.YAlign = draw.YCenter
	pl.X.Min = 0
	switch c.Metric.Class {
	case benchunit.Percent:
		// Efficiencies are shown on a 0–100% axis.
		pl.X.Max = 1
		pl.X.Tick.Marker = labelTicks{percentLabel}
	default:
		pl.X.Tick.Marker = labelTicks{func(v float64) string {
			return c.Metric.Scaler(v).Format(v) + c.Metric.Unit
		}}
	}
	return pl, nil
}

// labelTicks places ticks like plot.DefaultTicks but labels the
// major ticks with label.
type labelTicks struct {
	label func(float64) string
}

func (t labelTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = t.label(ticks[i].Value)
		}
	}
	return ticks
}

func percentLabel(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}
