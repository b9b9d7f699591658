package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/dampsim/internal/dynamo"
	"github.com/san-kum/dampsim/internal/physics"
	"github.com/san-kum/dampsim/internal/regime"
)

func trajectory(xs ...float64) *dynamo.Trajectory {
	tr := &dynamo.Trajectory{}
	for i, x := range xs {
		tr.Times = append(tr.Times, float64(i))
		tr.States = append(tr.States, dynamo.State{x, 0})
	}
	return tr
}

func TestZeroCrossings(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		want float64
	}{
		{"monotone", []float64{1, 0.5, 0.25}, 0},
		{"one crossing", []float64{1, -0.5, -0.25}, 1},
		{"through zero", []float64{1, 0, -1, 0, 1}, 2},
		{"oscillating", []float64{1, -1, 1, -1}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(trajectory(tt.xs...), NewZeroCrossings(0))["zero_crossings"]
			if got != tt.want {
				t.Errorf("zero crossings = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSettlingTime(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		want float64
	}{
		{"settles", []float64{1, 0.5, 0.01, 0.005}, 2},
		{"leaves and returns", []float64{1, 0.01, 0.5, 0.01, 0.0}, 3},
		{"never settles", []float64{1, 0.9, 0.8}, math.Inf(1)},
		{"starts at rest", []float64{0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(trajectory(tt.xs...), NewSettlingTime(0, 0.02))["settling_time"]
			if got != tt.want {
				t.Errorf("settling time = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOvershoot(t *testing.T) {
	got := Evaluate(trajectory(2, -0.5, 0.2, -1.0, 0), NewOvershoot(0))["overshoot"]
	if got != 0.5 {
		t.Errorf("overshoot = %v, want 0.5", got)
	}

	got = Evaluate(trajectory(-2, 1, 0), NewOvershoot(0))["overshoot"]
	if got != 0.5 {
		t.Errorf("overshoot from negative start = %v, want 0.5", got)
	}

	got = Evaluate(trajectory(1, 0.5, 0.1), NewOvershoot(0))["overshoot"]
	if got != 0 {
		t.Errorf("monotone decay overshoot = %v, want 0", got)
	}
}

func TestEnergyMetrics(t *testing.T) {
	osc := physics.NewDampedOscillator(1, 1, 0)
	tr := &dynamo.Trajectory{
		Times:  []float64{0, 1, 2},
		States: []dynamo.State{{1, 0}, {0, 2}, {0, 1}},
	}

	vals := Evaluate(tr, NewEnergyRatio(osc), NewEnergyDrift(osc))
	if vals["energy_ratio"] != 1.0 {
		t.Errorf("energy ratio = %v, want 1", vals["energy_ratio"])
	}
	if vals["energy_drift"] != 3.0 {
		t.Errorf("energy drift = %v, want 3", vals["energy_drift"])
	}
}

func TestEvaluateResets(t *testing.T) {
	z := NewZeroCrossings(0)
	tr := trajectory(1, -1, 1)

	first := Evaluate(tr, z)["zero_crossings"]
	second := Evaluate(tr, z)["zero_crossings"]
	if first != 2 || second != 2 {
		t.Errorf("expected 2 crossings on both runs, got %v and %v", first, second)
	}
}

func TestSummarizeDemo(t *testing.T) {
	results, err := regime.RunAll(regime.Config{
		Mass:      1,
		Stiffness: 1,
		Table:     regime.DefaultTable(),
		X0:        1,
		Grid:      dynamo.Grid{TMax: 20, Dt: 0.01},
	})
	if err != nil {
		t.Fatal(err)
	}

	sums := SummarizeAll(results)
	if len(sums) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(sums))
	}

	for _, s := range sums {
		if s.Classified != s.Label {
			t.Errorf("%s classified as %s", s.Label, s.Classified)
		}
		if s.Samples != 2001 || !s.Finite {
			t.Errorf("%s: samples %d, finite %v", s.Label, s.Samples, s.Finite)
		}
		if s.EnergyRatio >= 1 {
			t.Errorf("%s: damped energy ratio %v should be below 1", s.Label, s.EnergyRatio)
		}
	}

	under, crit := sums[0], sums[1]
	if under.ZeroCrossings < 4 {
		t.Errorf("underdamped run should oscillate, got %d crossings", under.ZeroCrossings)
	}
	if under.DominantFrequency <= 0 {
		t.Error("underdamped run should report a dominant frequency")
	}
	if crit.ZeroCrossings != 0 || crit.DominantFrequency != 0 || crit.Overshoot != 0 {
		t.Errorf("critically damped run should not oscillate: %+v", crit)
	}
	if crit.DampingRatio != 1 {
		t.Errorf("critical damping ratio = %v, want 1", crit.DampingRatio)
	}
	if math.IsInf(crit.SettlingTime, 1) || crit.SettlingTime <= 0 {
		t.Errorf("critically damped run should settle, got %v", crit.SettlingTime)
	}
}
