// Package analysis inspects recorded wall runs.
//
//   - [PowerSpectrum] and [DominantFrequency]: spectral content of a strip trace
//   - [Portrait]: rotation of one strip against the pointer that drove it
//   - [SettlingTime]: how long a trace takes to stay inside a band
//
// With a still pointer the only motion left is the idle wave, so the
// dominant frequency of a strip's rotation comes out near
// 0.5/(2π) ≈ 0.08 Hz:
//
//	series := result.Series(3, sim.RotationY)
//	hz := analysis.DominantFrequency(series, float64(fps))
package analysis
