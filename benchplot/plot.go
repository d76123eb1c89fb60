// Copyright 2025 The Corobench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchplot renders comparison reports as PNG charts.
//
// It is a consumer of the comparison engine: it takes a computed
// benchcmp.Report and the candidate labels and draws the
// conventional two charts for a head-to-head benchmark — a grouped
// bar chart of the summary statistics and a range chart with min/max
// error bars.
package benchplot

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/corobench/corobench/benchcmp"
)

// Candidate colors, A then B.
var (
	colorA = color.NRGBA{0x2e, 0xcc, 0x71, 0xff}
	colorB = color.NRGBA{0xe7, 0x4c, 0x3c, 0xff}
)

// Comparison builds a grouped bar chart of the mean, minimum, and
// maximum durations of both candidates, with the speedup in the
// title.
func Comparison(rep *benchcmp.Report, labelA, labelB string) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s vs %s: %.2f× speedup", labelA, labelB, rep.Speedup)
	pl.Y.Label.Text = "time per operation (ns)"

	w := vg.Points(24)

	barsA, err := plotter.NewBarChart(plotter.Values{rep.A.Mean, rep.A.Min, rep.A.Max}, w)
	if err != nil {
		return nil, err
	}
	barsA.Color = colorA
	barsA.Offset = -w / 2

	barsB, err := plotter.NewBarChart(plotter.Values{rep.B.Mean, rep.B.Min, rep.B.Max}, w)
	if err != nil {
		return nil, err
	}
	barsB.Color = colorB
	barsB.Offset = w / 2

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil

	pl.Add(grid, barsA, barsB)
	pl.Legend.Add(labelA, barsA)
	pl.Legend.Add(labelB, barsB)
	pl.Legend.Top = true
	pl.NominalX("mean", "min", "max")
	return pl, nil
}

// rangeData is the mean of each candidate with asymmetric error bars
// reaching down to its minimum and up to its maximum.
type rangeData struct {
	plotter.XYs
	plotter.YErrors
}

// Ranges builds a bar chart of the candidates' means with error bars
// spanning each candidate's measured min to max.
func Ranges(rep *benchcmp.Report, labelA, labelB string) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s vs %s: measured range", labelA, labelB)
	pl.Y.Label.Text = "time per operation (ns)"

	w := vg.Points(40)

	barsA, err := plotter.NewBarChart(plotter.Values{rep.A.Mean}, w)
	if err != nil {
		return nil, err
	}
	barsA.Color = colorA

	barsB, err := plotter.NewBarChart(plotter.Values{rep.B.Mean}, w)
	if err != nil {
		return nil, err
	}
	barsB.Color = colorB
	barsB.XMin = 1

	bars, err := plotter.NewYErrorBars(rangeData{
		XYs: plotter.XYs{
			{X: 0, Y: rep.A.Mean},
			{X: 1, Y: rep.B.Mean},
		},
		YErrors: plotter.YErrors{
			{Low: rep.A.Mean - rep.A.Min, High: rep.A.Max - rep.A.Mean},
			{Low: rep.B.Mean - rep.B.Min, High: rep.B.Max - rep.B.Mean},
		},
	})
	if err != nil {
		return nil, err
	}

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil

	pl.Add(grid, barsA, barsB, bars)
	pl.NominalX(labelA, labelB)
	return pl, nil
}

// WritePNG renders pl to a PNG file at path.
func WritePNG(pl *plot.Plot, path string) error {
	canvas := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(16*vg.Centimeter, 12*vg.Centimeter),
		vgimg.UseDPI(150),
		vgimg.UseBackgroundColor(color.White),
	)}
	pl.Draw(draw.New(canvas))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := canvas.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
