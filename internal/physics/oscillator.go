package physics

import (
	"math"

	"github.com/san-kum/dampsim/internal/dynamo"
)

const (
	DefaultMass      = 1.0
	DefaultStiffness = 1.0
)

// State layout of the oscillator.
const (
	PositionIndex = 0
	VelocityIndex = 1
)

// DampedOscillator is a single mass on a linear spring with viscous damping.
// The receiver is never mutated by a simulation run.
type DampedOscillator struct {
	Mass      float64
	Stiffness float64
	Damping   float64
}

func NewDampedOscillator(mass, stiffness, damping float64) *DampedOscillator {
	return &DampedOscillator{
		Mass:      mass,
		Stiffness: stiffness,
		Damping:   damping,
	}
}

func (o *DampedOscillator) StateDim() int { return 2 }

// Validate rejects m <= 0, k < 0, c < 0 and non-finite values.
func (o *DampedOscillator) Validate() error {
	if !finite(o.Mass) || o.Mass <= 0 {
		return dynamo.InvalidParameter("mass", o.Mass, "must be positive and finite")
	}
	if !finite(o.Stiffness) || o.Stiffness < 0 {
		return dynamo.InvalidParameter("stiffness", o.Stiffness, "must be non-negative and finite")
	}
	if !finite(o.Damping) || o.Damping < 0 {
		return dynamo.InvalidParameter("damping", o.Damping, "must be non-negative and finite")
	}
	return nil
}

// Derive returns {v, a} with a = -(c/m)·v - (k/m)·x.
func (o *DampedOscillator) Derive(x dynamo.State) dynamo.State {
	pos, vel := x[PositionIndex], x[VelocityIndex]
	acc := -float64((o.Damping/o.Mass)*vel) - float64((o.Stiffness/o.Mass)*pos)
	return dynamo.State{vel, acc}
}

func (o *DampedOscillator) Energy(x dynamo.State) float64 {
	pos, vel := x[PositionIndex], x[VelocityIndex]
	return 0.5*o.Mass*vel*vel + 0.5*o.Stiffness*pos*pos
}

// NaturalFrequency returns the undamped angular frequency √(k/m) in rad/s.
func (o *DampedOscillator) NaturalFrequency() float64 {
	return math.Sqrt(o.Stiffness / o.Mass)
}

// NaturalPeriod returns 2π√(m/k), or +Inf without a spring.
func (o *DampedOscillator) NaturalPeriod() float64 {
	if o.Stiffness == 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi * math.Sqrt(o.Mass/o.Stiffness)
}

// DampingRatio returns ζ = c / (2√(km)).
func (o *DampedOscillator) DampingRatio() float64 {
	crit := 2 * math.Sqrt(o.Stiffness*o.Mass)
	if crit == 0 {
		return math.Inf(1)
	}
	return o.Damping / crit
}

// DampedFrequency returns the angular frequency of the decaying oscillation,
// or 0 when the system does not oscillate.
func (o *DampedOscillator) DampedFrequency() float64 {
	w0 := o.NaturalFrequency()
	decay := o.Damping / (2 * o.Mass)
	d := w0*w0 - decay*decay
	if d <= 0 {
		return 0
	}
	return math.Sqrt(d)
}

func (o *DampedOscillator) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":      o.Mass,
		"stiffness": o.Stiffness,
		"damping":   o.Damping,
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
