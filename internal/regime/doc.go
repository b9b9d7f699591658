// Package regime runs the damped oscillator once per damping regime.
//
// A [Table] is an ordered association list from [Label] to a damping
// coefficient. [RunAll] simulates every entry with the same mass, stiffness,
// initial condition and grid, so only the damping differs between the
// resulting trajectories. Order is preserved so legends and exports list the
// regimes the way the table does.
package regime
