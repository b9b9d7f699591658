package physics

import (
	"github.com/san-kum/dampsim/internal/dynamo"
	"github.com/san-kum/dampsim/internal/integrators"
)

// Simulate integrates m·x'' + c·x' + k·x = 0 from (x0, v0) with explicit
// Euler on floor(tMax/dt)+1 samples.
func Simulate(m, k, c, x0, v0, tMax, dt float64) (*dynamo.Trajectory, error) {
	osc := NewDampedOscillator(m, k, c)
	return osc.Simulate(dynamo.State{x0, v0}, dynamo.Grid{TMax: tMax, Dt: dt})
}

func (o *DampedOscillator) Simulate(x0 dynamo.State, grid dynamo.Grid) (*dynamo.Trajectory, error) {
	return dynamo.New(o, integrators.NewEuler()).Run(x0, grid)
}

// Position returns the displacement series of an oscillator trajectory.
func Position(tr *dynamo.Trajectory) []float64 {
	return tr.Series(PositionIndex)
}

// Velocity returns the velocity series of an oscillator trajectory.
func Velocity(tr *dynamo.Trajectory) []float64 {
	return tr.Series(VelocityIndex)
}
