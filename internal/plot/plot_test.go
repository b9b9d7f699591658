package plot

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/dampsim/internal/dynamo"
	"github.com/san-kum/dampsim/internal/regime"
)

func demoResults(t *testing.T) regime.Results {
	t.Helper()
	results, err := regime.RunAll(regime.Config{
		Mass:      1,
		Stiffness: 1,
		Table:     regime.DefaultTable(),
		X0:        1,
		Grid:      dynamo.Grid{TMax: 20, Dt: 0.01},
	})
	require.NoError(t, err)
	return results
}

func TestDisplacementPlot(t *testing.T) {
	p, err := Displacement(demoResults(t))
	require.NoError(t, err)

	assert.Equal(t, "Displacement vs Time for Different Damping Regimes", p.Title.Text)
	assert.Equal(t, "Time (s)", p.X.Label.Text)
	assert.Equal(t, "Displacement (m)", p.Y.Label.Text)
	assert.InDelta(t, 20.0, p.X.Max, 1e-9)
	assert.InDelta(t, 0.0, p.X.Min, 1e-9)
	assert.InDelta(t, 1.0, p.Y.Max, 1e-9)
}

func TestPhaseSpacePlot(t *testing.T) {
	p, err := PhaseSpace(demoResults(t))
	require.NoError(t, err)

	assert.Equal(t, "Phase Space Trajectories", p.Title.Text)
	assert.Equal(t, "Displacement (m)", p.X.Label.Text)
	assert.Equal(t, "Velocity (m/s)", p.Y.Label.Text)
	assert.InDelta(t, 1.0, p.X.Max, 1e-9)
	assert.LessOrEqual(t, p.Y.Max, 1.0)
}

func TestWriteFormats(t *testing.T) {
	p, err := Displacement(demoResults(t))
	require.NoError(t, err)

	tests := []struct {
		format string
		magic  string
	}{
		{"png", "\x89PNG"},
		{"svg", "<svg"},
		{"pdf", "%PDF"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, p, tt.format))
			assert.True(t, bytes.Contains(buf.Bytes(), []byte(tt.magic)), "missing %q", tt.magic)
		})
	}

	var buf bytes.Buffer
	assert.Error(t, Write(&buf, p, "bmp3d"))
}

func TestSaveAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "figures")
	paths, err := SaveAll(dir, "png", demoResults(t))
	require.NoError(t, err)

	require.Equal(t, []string{
		filepath.Join(dir, "displacement_vs_time.png"),
		filepath.Join(dir, "phase_space.png"),
	}, paths)

	for _, path := range paths {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(1000))
	}
}

func TestNoResults(t *testing.T) {
	_, err := Displacement(nil)
	assert.Error(t, err)

	_, err = SaveAll(t.TempDir(), "png", regime.Results{})
	assert.Error(t, err)
}

func TestDivergedTrajectoryIsCut(t *testing.T) {
	tr := &dynamo.Trajectory{
		Times:  []float64{0, 1, 2, 3},
		States: []dynamo.State{{1, 0}, {2, -1}, {math.Inf(1), math.NaN()}, {math.NaN(), math.NaN()}},
	}
	results := regime.Results{{Label: regime.Underdamped, Trajectory: tr}}

	p, err := Displacement(results)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.X.Max)
	assert.Equal(t, 2.0, p.Y.Max)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, p, "png"))
}
