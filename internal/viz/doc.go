// Package viz renders regime runs for the terminal.
//
//   - [DisplacementChart]: all regimes overlaid on one asciigraph chart
//   - [PhasePortrait]: a Braille [Canvas] drawing of (x, v) for one regime
//   - [SummaryTable]: per-regime metrics as a lipgloss table
//
// Samples after the first NaN or Inf of a diverged run are not drawn.
package viz
