package viz

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/san-kum/dampsim/internal/metrics"
)

var summaryHeaders = []string{
	"Regime", "c", "ζ", "Classified", "x(T)", "v(T)",
	"E(T)/E(0)", "Crossings", "Settling (s)", "Overshoot", "Peak f (Hz)",
}

// SummaryRows formats one row per summary in header order.
func SummaryRows(summaries []metrics.Summary) [][]string {
	rows := make([][]string, len(summaries))
	for i, s := range summaries {
		rows[i] = []string{
			s.Label.String(),
			formatValue(s.Damping),
			formatValue(s.DampingRatio),
			s.Classified.String(),
			formatValue(s.FinalPosition),
			formatValue(s.FinalVelocity),
			formatValue(s.EnergyRatio),
			strconv.Itoa(s.ZeroCrossings),
			formatValue(s.SettlingTime),
			formatValue(s.Overshoot),
			formatValue(s.DominantFrequency),
		}
	}
	return rows
}

// SummaryTable renders the per-regime metrics. Rows whose configured label
// differs from the classification, or whose run diverged, are highlighted.
func SummaryTable(summaries []metrics.Summary) string {
	flagged := make([]bool, len(summaries))
	for i, s := range summaries {
		flagged[i] = s.Label != s.Classified || !s.Finite
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(BorderStyle).
		Headers(summaryHeaders...).
		Rows(SummaryRows(summaries)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return ColumnStyle
			case row >= 0 && row < len(flagged) && flagged[row]:
				return Mismatch
			case col == 0:
				return MetricLabel
			default:
				return MetricValue
			}
		})

	return t.Render()
}

func formatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
