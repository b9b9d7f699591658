package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/dampsim/internal/physics"
	"github.com/san-kum/dampsim/internal/regime"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Cyan,
	asciigraph.Yellow,
	asciigraph.Magenta,
	asciigraph.Green,
	asciigraph.Red,
	asciigraph.Blue,
}

// DisplacementChart overlays x(t) of every regime, resampled to width
// columns. The caption carries the simulated span.
func DisplacementChart(results regime.Results, width, height int) string {
	series := make([][]float64, 0, len(results))
	legends := make([]string, 0, len(results))
	colors := make([]asciigraph.AnsiColor, 0, len(results))
	span := 0.0

	for i, res := range results {
		n := drawable(res.Trajectory)
		if n == 0 {
			continue
		}
		series = append(series, physics.Position(res.Trajectory)[:n])
		legends = append(legends, res.Label.String())
		colors = append(colors, seriesColors[i%len(seriesColors)])
		if t := res.Trajectory.Final().T; t > span {
			span = t
		}
	}
	if len(series) == 0 {
		return ""
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(3),
		asciigraph.Caption(fmt.Sprintf("Displacement vs Time, 0 to %.2f s", span)),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)
}
