package export

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/san-kum/dampsim/internal/metrics"
	"github.com/san-kum/dampsim/internal/physics"
	"github.com/san-kum/dampsim/internal/regime"
)

// Number is a float64 that encodes NaN and ±Inf as null. A null decodes
// back to NaN.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	v := float64(n)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

func (n *Number) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*n = Number(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Number(v)
	return nil
}

func numbers(vs []float64) []Number {
	out := make([]Number, len(vs))
	for i, v := range vs {
		out[i] = Number(v)
	}
	return out
}

type Run struct {
	Mass            Number      `json:"mass"`
	Stiffness       Number      `json:"stiffness"`
	X0              Number      `json:"x0"`
	V0              Number      `json:"v0"`
	Dt              Number      `json:"dt"`
	TMax            Number      `json:"t_max"`
	CriticalDamping Number      `json:"critical_damping"`
	Regimes         []RegimeRun `json:"regimes"`
}

type RegimeRun struct {
	Label        string            `json:"label"`
	Classified   string            `json:"classified"`
	Damping      Number            `json:"damping"`
	Samples      int               `json:"samples"`
	Finite       bool              `json:"finite"`
	Metrics      map[string]Number `json:"metrics"`
	Times        []Number          `json:"times"`
	Displacement []Number          `json:"displacement"`
	Velocity     []Number          `json:"velocity"`
}

// NewRun assembles the export record of one RunAll call.
func NewRun(cfg regime.Config, critical float64, results regime.Results) *Run {
	run := &Run{
		Mass:            Number(cfg.Mass),
		Stiffness:       Number(cfg.Stiffness),
		X0:              Number(cfg.X0),
		V0:              Number(cfg.V0),
		Dt:              Number(cfg.Grid.Dt),
		TMax:            Number(cfg.Grid.TMax),
		CriticalDamping: Number(critical),
		Regimes:         make([]RegimeRun, len(results)),
	}

	for i, res := range results {
		s := metrics.Summarize(res)

		vals := s.Values()
		m := make(map[string]Number, len(vals))
		for k, v := range vals {
			m[k] = Number(v)
		}

		run.Regimes[i] = RegimeRun{
			Label:        res.Label.Key(),
			Classified:   s.Classified.Key(),
			Damping:      Number(res.Damping),
			Samples:      s.Samples,
			Finite:       s.Finite,
			Metrics:      m,
			Times:        numbers(res.Trajectory.Times),
			Displacement: numbers(physics.Position(res.Trajectory)),
			Velocity:     numbers(physics.Velocity(res.Trajectory)),
		}
	}

	return run
}

func WriteJSON(w io.Writer, run *Run) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(run)
}

func SaveJSON(path string, run *Run) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := WriteJSON(file, run); err != nil {
		return err
	}
	return file.Close()
}
