// Package plot renders regime trajectories to image files with gonum/plot.
//
// Two figures are produced per run: displacement against time and the
// phase-space portrait (displacement against velocity), one line per regime
// with the regime label as legend entry.
package plot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/dampsim/internal/dynamo"
	"github.com/san-kum/dampsim/internal/physics"
	"github.com/san-kum/dampsim/internal/regime"
)

const (
	DisplacementName = "displacement_vs_time"
	PhaseSpaceName   = "phase_space"

	Width  = 8 * vg.Inch
	Height = 6 * vg.Inch
)

type axes func(tr *dynamo.Trajectory) (xs, ys []float64)

func timeDisplacement(tr *dynamo.Trajectory) ([]float64, []float64) {
	return tr.Times, physics.Position(tr)
}

func displacementVelocity(tr *dynamo.Trajectory) ([]float64, []float64) {
	return physics.Position(tr), physics.Velocity(tr)
}

func Displacement(results regime.Results) (*gplot.Plot, error) {
	return build(results,
		"Displacement vs Time for Different Damping Regimes",
		"Time (s)", "Displacement (m)",
		timeDisplacement)
}

func PhaseSpace(results regime.Results) (*gplot.Plot, error) {
	return build(results,
		"Phase Space Trajectories",
		"Displacement (m)", "Velocity (m/s)",
		displacementVelocity)
}

func build(results regime.Results, title, xLabel, yLabel string, xy axes) (*gplot.Plot, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("no results to plot")
	}

	p := gplot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	stylePlot(p)
	p.Add(plotter.NewGrid())

	for i, res := range results {
		xs, ys := xy(res.Trajectory)
		n := drawable(res.Trajectory)

		pts := make(plotter.XYs, n)
		for j := 0; j < n; j++ {
			pts[j].X = xs[j]
			pts[j].Y = ys[j]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("regime %s: %w", res.Label, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)

		p.Add(line)
		p.Legend.Add(res.Label.String(), line)
	}

	return p, nil
}

// drawable is the number of leading samples free of NaN and Inf.
func drawable(tr *dynamo.Trajectory) int {
	if i := tr.FirstNonFinite(); i >= 0 {
		return i
	}
	return tr.Len()
}

func stylePlot(p *gplot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.Padding = vg.Points(8)

	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	p.X.Tick.Label.Font.Size = vg.Points(10)
	p.Y.Tick.Label.Font.Size = vg.Points(10)

	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = vg.Points(10)
}

// Write renders p to w as png, svg or pdf.
func Write(w io.Writer, p *gplot.Plot, format string) error {
	wt, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func Save(path string, p *gplot.Plot, format string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := Write(bw, p, format); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return f.Close()
}

// SaveAll writes both figures into dir and returns their paths.
func SaveAll(dir, format string, results regime.Results) ([]string, error) {
	figures := []struct {
		name  string
		build func(regime.Results) (*gplot.Plot, error)
	}{
		{DisplacementName, Displacement},
		{PhaseSpaceName, PhaseSpace},
	}

	paths := make([]string, 0, len(figures))
	for _, fig := range figures {
		p, err := fig.build(results)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, fig.name+"."+format)
		if err := Save(path, p, format); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
