// Package analysis provides post-processing for sampled trajectories.
//
// Available tools:
//   - [FitCircle]: least-squares circle through projected positions
//   - [Rotation]: sense of rotation of a planar path
//   - [SpeedDrift]: relative deviation of |v| from its initial value
//   - [DominantFrequency], [PowerSpectrum]: FFT of a coordinate series
//
// # Example
//
//	xs, ys := tr.Project(trajectory.PlaneXY, 1)
//	c, err := analysis.FitCircle(xs, ys)
//	fmt.Printf("radius %.3g m, %s\n", c.R, analysis.Rotation(xs, ys))
package analysis
