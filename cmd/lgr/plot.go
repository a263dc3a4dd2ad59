package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/notargets/collocation/transcription"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// savePlotPNG draws the quadrature coefficient of every grid point against its
// time, with mesh points marked separately from interior collocation points
func savePlotPNG(tr transcription.Transcription, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("cannot create directory: %w", err)
	}

	times := tr.GridTimes()
	q := tr.CreateQuadratureCoefficients()
	indices := tr.CreateMeshIndices()

	var all, boundary, interior plotter.XYs
	for i, t := range times {
		pt := plotter.XY{X: t, Y: q.AtVec(i)}
		all = append(all, pt)
		if indices.AtVec(i) == 1 {
			boundary = append(boundary, pt)
		} else {
			interior = append(interior, pt)
		}
	}

	c := tr.Counts()
	p := plot.New()
	p.Title.Text = fmt.Sprintf("LGR grid: degree %d, %d mesh intervals", c.Degree, c.NumMeshIntervals)
	p.X.Label.Text = "time"
	p.Y.Label.Text = "quadrature coefficient"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(all)
	if err != nil {
		return fmt.Errorf("cannot create line plot: %w", err)
	}
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Color = color.Gray{Y: 160}
	p.Add(line)

	if len(boundary) > 0 {
		s, err := plotter.NewScatter(boundary)
		if err != nil {
			return fmt.Errorf("cannot create scatter plot: %w", err)
		}
		s.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
		s.GlyphStyle.Radius = vg.Points(4)
		p.Add(s)
		p.Legend.Add("mesh point", s)
	}
	if len(interior) > 0 {
		s, err := plotter.NewScatter(interior)
		if err != nil {
			return fmt.Errorf("cannot create scatter plot: %w", err)
		}
		s.GlyphStyle.Color = color.RGBA{B: 200, A: 255}
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
		p.Legend.Add("collocation point", s)
	}

	return p.Save(8*vg.Inch, 6*vg.Inch, filename)
}
