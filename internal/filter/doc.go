// Package filter provides the reconstruction filters used by the resampler.
//
// The cubic family implemented here is the two-parameter BC-spline described
// by Mitchell and Netravali ("Reconstruction Filters in Computer Graphics",
// SIGGRAPH 1988). Common members:
//   - B=0, C=0.5: Catmull-Rom (sharp, interpolating)
//   - B=1/3, C=1/3: Mitchell (balanced, the paper's recommendation)
//   - B=1, C=0: cubic B-spline (smooth, approximating)
//   - B=0, C=0: Hermite
//
// All weight functions are pure and allocation-free so they can sit on the
// per-tap hot path of a sampling loop.
package filter
