// Package export writes the trajectories of one run to CSV or JSON.
//
// CSV is long format, one row per sample per regime. JSON carries the run
// parameters, the critical damping and per-regime arrays with metrics; NaN
// and Inf are written as null.
package export
