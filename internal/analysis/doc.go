// Package analysis provides spectral tools for sampled trajectories.
//
//   - [PowerSpectrum]: magnitude spectrum of a real series
//   - [DominantFrequency]: strongest non-DC frequency in Hz
//
// Both remove the mean before transforming so a decaying offset does not
// mask the oscillation.
package analysis
