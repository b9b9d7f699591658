package integrators

import "github.com/san-kum/dampsim/internal/dynamo"

// Euler is the explicit (forward) Euler scheme: x(t+dt) = x(t) + dt*f(x(t)).
// Every component of the new state depends on the previous state only, so
// for a mechanical system the position advances with the old velocity.
// It is first order and only conditionally stable.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, t float64, dt float64) dynamo.State {
	dx := dyn.Derive(x)
	result := make(dynamo.State, len(x))
	for i := range x {
		// explicit conversion rounds the product, forbidding a fused multiply-add
		result[i] = x[i] + float64(dx[i]*dt)
	}
	return result
}
