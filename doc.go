// Package resample computes single output pixels with a Mitchell-Netravali
// cubic filter, and builds image resizing and affine warping on top of it.
//
// # Overview
//
// A kernel call blends a small neighborhood of source pixels around a
// continuous sample point. The filter shape is selected by the two
// coefficients B and C; well-known members are available as CatmullRom,
// Mitchell, BSpline and Hermite.
//
//	out := make([]byte, src.Format().BytesPerPixel())
//	err := resample.Sample2D(src, resample.CatmullRom.B, resample.CatmullRom.C, 12.3, 7.8, out)
//
// # Kernels
//
// Sample2D scans a 4x4 window and weights each tap by its Euclidean
// distance from the sample point. SampleHorizontal and SampleVertical scan
// four taps along one axis and are the building blocks of separable
// filtering; SampleDirectional selects one of them by Direction.
//
// Taps outside the image are dropped and the remaining weights renormalized,
// so sampling at the border never reads out of bounds. A uniform
// neighborhood is reproduced exactly for every (B, C).
//
// # Precision
//
// Channels are accumulated in float64 whatever the pixel format. Fixed-point
// formats (8 and 16 bits per channel) are rounded to nearest and clamped once
// when the result is written; float formats are stored unclamped.
//
// # Drivers
//
// Resize and Warp call the kernels once per destination pixel, with rows
// spread over a worker pool. Both take a context.Context and stop early when
// it is cancelled.
//
//	dst, err := resample.Resize(ctx, src, 320, 240, resample.WithCoefficients(resample.Mitchell))
//
// # Errors
//
// Invalid arguments wrap ErrInvalidArgument, an unknown Direction wraps
// ErrNotImplemented. StatusOf reduces any returned error to a Status.
//
// # Logging
//
// The package is silent by default. Call SetLogger with an *slog.Logger to
// see driver activity at debug level.
package resample
