// Package physics provides the damped harmonic oscillator model.
//
// [DampedOscillator] implements [dynamo.System] for
//
//	m·x'' + c·x' + k·x = 0
//
// with state {x, v}. It also implements [dynamo.Hamiltonian] for the
// mechanical energy ½mv² + ½kx² and [dynamo.Validator] for parameter checks.
//
// [Simulate] is the one-call entry point: it integrates the oscillator with
// explicit Euler on a uniform grid. [CriticalDamping] gives the closed-form
// damping value 2√(km) separating oscillatory from non-oscillatory decay.
//
// # Stability
//
// Explicit Euler is conditionally stable. Keep dt well below the natural
// period 2π√(m/k):
//
//	osc := physics.NewDampedOscillator(m, k, c)
//	if dt > osc.NaturalPeriod()/10 {
//	    // expect visible energy growth or divergence
//	}
package physics
