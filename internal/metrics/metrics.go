package metrics

import (
	"github.com/san-kum/dampsim/internal/analysis"
	"github.com/san-kum/dampsim/internal/dynamo"
	"github.com/san-kum/dampsim/internal/physics"
	"github.com/san-kum/dampsim/internal/regime"
)

// SettlingBand is the fraction of |x0| used for settling time.
const SettlingBand = 0.02

type Metric interface {
	Name() string
	Observe(x dynamo.State, t float64)
	Value() float64
	Reset()
}

// Evaluate resets every metric, feeds it the whole trajectory in time order
// and returns the values by name.
func Evaluate(tr *dynamo.Trajectory, ms ...Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for i := range tr.Times {
		for _, m := range ms {
			m.Observe(tr.States[i], tr.Times[i])
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

type Summary struct {
	Label             regime.Label
	Classified        regime.Label
	Damping           float64
	DampingRatio      float64
	Samples           int
	FinalPosition     float64
	FinalVelocity     float64
	EnergyRatio       float64
	EnergyDrift       float64
	ZeroCrossings     int
	SettlingTime      float64
	Overshoot         float64
	DominantFrequency float64
	Finite            bool
}

// Values returns the numeric metrics keyed like the exported JSON.
func (s Summary) Values() map[string]float64 {
	return map[string]float64{
		"damping_ratio":      s.DampingRatio,
		"energy_ratio":       s.EnergyRatio,
		"energy_drift":       s.EnergyDrift,
		"zero_crossings":     float64(s.ZeroCrossings),
		"settling_time":      s.SettlingTime,
		"overshoot":          s.Overshoot,
		"dominant_frequency": s.DominantFrequency,
	}
}

func Summarize(res regime.Result) Summary {
	osc, tr := res.Oscillator, res.Trajectory

	vals := Evaluate(tr,
		NewEnergyRatio(osc),
		NewEnergyDrift(osc),
		NewZeroCrossings(physics.PositionIndex),
		NewSettlingTime(physics.PositionIndex, SettlingBand),
		NewOvershoot(physics.PositionIndex),
	)

	final := tr.Final()
	s := Summary{
		Label:         res.Label,
		Classified:    regime.Classify(osc.Mass, osc.Stiffness, osc.Damping),
		Damping:       res.Damping,
		DampingRatio:  osc.DampingRatio(),
		Samples:       tr.Len(),
		FinalPosition: final.X[physics.PositionIndex],
		FinalVelocity: final.X[physics.VelocityIndex],
		EnergyRatio:   vals["energy_ratio"],
		EnergyDrift:   vals["energy_drift"],
		ZeroCrossings: int(vals["zero_crossings"]),
		SettlingTime:  vals["settling_time"],
		Overshoot:     vals["overshoot"],
		Finite:        tr.Finite(),
	}

	// a spectrum peak only means something once the motion has oscillated
	if s.ZeroCrossings >= 2 && tr.Len() > 1 {
		s.DominantFrequency = analysis.DominantFrequency(physics.Position(tr), tr.Times[1])
	}

	return s
}

func SummarizeAll(results regime.Results) []Summary {
	out := make([]Summary, len(results))
	for i, res := range results {
		out[i] = Summarize(res)
	}
	return out
}
