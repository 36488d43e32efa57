package resample

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/resample/internal/parallel"
)

// Warp renders a width x height image whose pixel (x, y) is the cubic sample
// of src at m applied to (x, y). m therefore maps destination pixels back to
// source pixels; use Invert to turn a forward transform into one.
//
// Destination pixels whose source point falls outside the source pixel area
// are left zero, as are pixels whose mapped point overflows to NaN. Points
// within half a pixel of the border are clamped onto
// the edge pixel. Warp always samples in 2-D and ignores WithMode.
func Warp(ctx context.Context, src Source, width, height int, m f64.Aff3, opts ...Option) (*ImageBuf, error) {
	if err := validateSource(src); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: destination size %dx%d", ErrInvalidArgument, width, height)
	}
	for _, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite transform %v", ErrInvalidArgument, m)
		}
	}
	o := applyOptions(opts)

	dst, err := NewImageBuf(width, height, src.Format())
	if err != nil {
		return nil, fmt.Errorf("resample: allocate destination: %w", err)
	}

	pool := parallel.NewWorkerPool(o.workers)
	defer pool.Close()

	start := time.Now()
	Logger().Debug("resample: warp",
		"src", fmt.Sprintf("%dx%d", src.Width(), src.Height()),
		"dst", fmt.Sprintf("%dx%d", width, height),
		"filter", o.coeffs,
		"workers", pool.Workers())

	maxX := float64(src.Width()) - 0.5
	maxY := float64(src.Height()) - 0.5

	err = forEachRow(ctx, pool, height, func(y int) error {
		for x := range width {
			sx, sy := Apply(m, float64(x), float64(y))
			if math.IsNaN(sx) || math.IsNaN(sy) {
				continue
			}
			if sx < -0.5 || sx > maxX || sy < -0.5 || sy > maxY {
				continue
			}
			sx = clamp(sx, 0, float64(src.Width()-1))
			sy = clamp(sy, 0, float64(src.Height()-1))
			if err := Sample2D(src, o.coeffs.B, o.coeffs.C, sx, sy, dst.PixelBytes(x, y)); err != nil {
				return fmt.Errorf("resample: pixel (%d, %d): %w", x, y, err)
			}
		}
		return nil
	})
	if err != nil {
		logDriverError("warp", err)
		return nil, err
	}

	Logger().Debug("resample: warp done", "elapsed", time.Since(start))
	return dst, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Identity returns the identity transform.
func Identity() f64.Aff3 {
	return f64.Aff3{1, 0, 0, 0, 1, 0}
}

// Translate returns a transform that shifts points by (tx, ty).
func Translate(tx, ty float64) f64.Aff3 {
	return f64.Aff3{1, 0, tx, 0, 1, ty}
}

// Scale returns a transform that scales by (sx, sy) about the origin.
func Scale(sx, sy float64) f64.Aff3 {
	return f64.Aff3{sx, 0, 0, 0, sy, 0}
}

// RotateAt returns a rotation by angle radians about (cx, cy).
func RotateAt(angle, cx, cy float64) f64.Aff3 {
	sin, cos := math.Sincos(angle)
	rot := f64.Aff3{cos, -sin, 0, sin, cos, 0}
	return Multiply(Translate(cx, cy), Multiply(rot, Translate(-cx, -cy)))
}

// Multiply returns a*b, the transform that applies b first and then a.
func Multiply(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

// Invert returns the inverse of m. It returns false if m is singular.
func Invert(m f64.Aff3) (f64.Aff3, bool) {
	det := m[0]*m[4] - m[1]*m[3]
	if math.Abs(det) < 1e-10 {
		return f64.Aff3{}, false
	}
	inv := 1 / det
	return f64.Aff3{
		m[4] * inv,
		-m[1] * inv,
		(m[1]*m[5] - m[2]*m[4]) * inv,
		-m[3] * inv,
		m[0] * inv,
		(m[2]*m[3] - m[0]*m[5]) * inv,
	}, true
}

// Apply transforms the point (x, y) by m.
func Apply(m f64.Aff3, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}
