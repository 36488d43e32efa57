package resample

import (
	"fmt"
	"math"

	"github.com/gogpu/resample/internal/filter"
	"github.com/gogpu/resample/internal/image"
)

// metric selects how a tap's distance from the sample point is measured.
type metric uint8

const (
	metricEuclidean metric = iota
	metricAxisX
	metricAxisY
)

// window is the set of integer tap offsets scanned around floor(x), floor(y).
type window struct {
	x0, x1 int // inclusive horizontal offset range
	y0, y1 int // inclusive vertical offset range
	metric metric
}

// The 2-D window spans {-1..2} on both axes while the 1-D windows span
// {-2..1}. The two shapes are offset by one tap, so a separable pass does not
// reproduce Sample2D exactly; both are kept as they are.
var (
	window2D         = window{x0: -1, x1: 2, y0: -1, y1: 2, metric: metricEuclidean}
	windowHorizontal = window{x0: -2, x1: 1, y0: 0, y1: 0, metric: metricAxisX}
	windowVertical   = window{x0: 0, x1: 0, y0: -2, y1: 1, metric: metricAxisY}
)

// distance returns the tap distance for the deltas dx, dy.
func (w window) distance(dx, dy float64) float64 {
	switch w.metric {
	case metricAxisX:
		return math.Abs(dx)
	case metricAxisY:
		return math.Abs(dy)
	default:
		return math.Sqrt(dx*dx + dy*dy)
	}
}

// scan accumulates the weighted channels of every in-bounds tap and returns
// the running total together with the sum of the weights used.
//
// Taps outside the image are skipped: they add neither value nor weight, so
// normalizing by the returned sum renormalizes over the surviving taps.
func (w window) scan(src Source, b, c, x, y float64) (image.Block, float64) {
	format := src.Format()
	data := src.Data()
	bpp := format.BytesPerPixel()
	width, height := src.Width(), src.Height()

	fx := int(math.Floor(x))
	fy := int(math.Floor(y))

	total := image.NewBlock(format)
	weightSum := 0.0

	for j := w.y0; j <= w.y1; j++ {
		ty := fy + j
		if ty < 0 || ty > height-1 {
			continue
		}
		for i := w.x0; i <= w.x1; i++ {
			tx := fx + i
			if tx < 0 || tx > width-1 {
				continue
			}

			weight := filter.CubicWeight(b, c, w.distance(x-float64(tx), y-float64(ty)))

			off := src.PixelOffset(tx, ty)
			total.Accumulate(weight, image.Decode(data[off:off+bpp], format))
			weightSum += weight
		}
	}

	return total, weightSum
}

// sample is the body shared by Sample2D, SampleHorizontal and SampleVertical.
func sample(src Source, b, c, x, y float64, w window, out []byte) error {
	if err := validateSource(src); err != nil {
		return err
	}
	format := src.Format()
	if err := validateOutput(out, format); err != nil {
		return err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return fmt.Errorf("%w: sample coordinate (%v, %v)", ErrInvalidArgument, x, y)
	}

	total, weightSum := w.scan(src, b, c, x, y)
	if weightSum == 0 {
		return fmt.Errorf("%w at (%g, %g)", ErrDegenerateWindow, x, y)
	}
	total.Scale(1 / weightSum)

	return image.Encode(total, format, out)
}

// Sample2D computes the cubic-filtered pixel at (x, y) from the 4x4
// neighborhood of taps at offsets {-1, 0, 1, 2} around (floor(x), floor(y)),
// weighting each tap by its Euclidean distance from (x, y). The result is
// written to out in src's pixel format.
//
// b and c are the Mitchell-Netravali shape coefficients. The sample point
// should lie within [0, w-1] x [0, h-1], the span of pixel centers; taps
// falling outside the image are dropped and the remaining weights
// renormalized. Past the last pixel center some coefficients (Hermite, for
// one) leave no weighted tap and the call fails with ErrDegenerateWindow.
// out must hold at least one pixel.
func Sample2D(src Source, b, c, x, y float64, out []byte) error {
	return sample(src, b, c, x, y, window2D, out)
}

// SampleHorizontal computes a 1-D cubic-filtered pixel along row floor(y),
// from the taps at x offsets {-2, -1, 0, 1} around floor(x). Only the
// horizontal distance contributes to the weights.
func SampleHorizontal(src Source, b, c, x, y float64, out []byte) error {
	return sample(src, b, c, x, y, windowHorizontal, out)
}

// SampleVertical computes a 1-D cubic-filtered pixel along column floor(x),
// from the taps at y offsets {-2, -1, 0, 1} around floor(y). Only the
// vertical distance contributes to the weights.
func SampleVertical(src Source, b, c, x, y float64, out []byte) error {
	return sample(src, b, c, x, y, windowVertical, out)
}
