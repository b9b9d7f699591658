package regime

import (
	"fmt"

	"github.com/san-kum/dampsim/internal/dynamo"
	"github.com/san-kum/dampsim/internal/physics"
)

type Entry struct {
	Label   Label
	Damping float64
}

// Table is an ordered mapping from regime label to damping coefficient.
type Table []Entry

// DefaultTable returns the demonstration damping values for m = k = 1.
func DefaultTable() Table {
	return Table{
		{Label: Underdamped, Damping: 0.5},
		{Label: CriticallyDamped, Damping: 2.0},
		{Label: Overdamped, Damping: 5.0},
	}
}

func (t Table) Validate() error {
	if len(t) == 0 {
		return dynamo.InvalidParameter("regimes", 0, "table is empty")
	}
	seen := make(map[Label]bool, len(t))
	for _, e := range t {
		if seen[e.Label] {
			return dynamo.InvalidParameter("regimes", float64(e.Label), fmt.Sprintf("duplicate label %s", e.Label))
		}
		seen[e.Label] = true
	}
	return nil
}

// Config holds everything shared by the regimes of one run.
type Config struct {
	Mass      float64
	Stiffness float64
	Table     Table
	X0        float64
	V0        float64
	Grid      dynamo.Grid
}

type Result struct {
	Label      Label
	Damping    float64
	Oscillator *physics.DampedOscillator
	Trajectory *dynamo.Trajectory
}

// Results are ordered like the Table that produced them.
type Results []Result

func (r Results) Get(l Label) (Result, bool) {
	for _, res := range r {
		if res.Label == l {
			return res, true
		}
	}
	return Result{}, false
}

func (r Results) Labels() []Label {
	out := make([]Label, len(r))
	for i, res := range r {
		out[i] = res.Label
	}
	return out
}

// RunAll simulates every table entry in order. The first failure aborts the
// call and no results are returned.
func RunAll(cfg Config) (Results, error) {
	if err := cfg.Table.Validate(); err != nil {
		return nil, err
	}

	x0 := dynamo.State{cfg.X0, cfg.V0}
	results := make(Results, 0, len(cfg.Table))

	for _, e := range cfg.Table {
		osc := physics.NewDampedOscillator(cfg.Mass, cfg.Stiffness, e.Damping)
		tr, err := osc.Simulate(x0, cfg.Grid)
		if err != nil {
			return nil, fmt.Errorf("regime %s: %w", e.Label, err)
		}
		results = append(results, Result{
			Label:      e.Label,
			Damping:    e.Damping,
			Oscillator: osc,
			Trajectory: tr,
		})
	}

	return results, nil
}
