// Package dynamo provides core simulation primitives for dynamical systems.
//
// The package defines the fundamental interfaces and types for fixed-step
// numerical simulation of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X))
//   - [Integrator]: numerical stepping scheme
//   - [Grid]: uniform sample grid from 0 to TMax
//   - [Trajectory]: fully populated time series produced by a run
//   - [Simulator]: orchestrates one simulation run
//
// # Example
//
//	osc := physics.NewDampedOscillator(1, 1, 0.5)
//	sim := dynamo.New(osc, integrators.NewEuler())
//	tr, err := sim.Run(dynamo.State{1, 0}, dynamo.Grid{TMax: 20, Dt: 0.01})
//
// # Stability
//
// The simulator never inspects the values it produces. A stepping scheme
// that is unstable for the chosen Dt yields a diverging trajectory; that is a
// reproducible result, not an error. Use [Trajectory.Finite] to detect it.
package dynamo
