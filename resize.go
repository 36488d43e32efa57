package resample

import (
	"context"
	"fmt"
	"time"

	"github.com/gogpu/resample/internal/parallel"
)

// Resize scales src to width x height with the cubic filter and returns a new
// image in src's format.
//
// Destination pixel centers are mapped onto the source grid and clamped to
// its pixel range, so every sample point lies inside the source. Rows are
// filled in parallel; cancelling ctx stops scheduling new rows and Resize
// returns ctx.Err().
func Resize(ctx context.Context, src Source, width, height int, opts ...Option) (*ImageBuf, error) {
	if err := validateSource(src); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: destination size %dx%d", ErrInvalidArgument, width, height)
	}
	o := applyOptions(opts)

	dst, err := NewImageBuf(width, height, src.Format())
	if err != nil {
		return nil, fmt.Errorf("resample: allocate destination: %w", err)
	}

	pool := parallel.NewWorkerPool(o.workers)
	defer pool.Close()

	start := time.Now()
	Logger().Debug("resample: resize",
		"src", fmt.Sprintf("%dx%d", src.Width(), src.Height()),
		"dst", fmt.Sprintf("%dx%d", width, height),
		"format", src.Format(),
		"texture", src.Format().TextureFormat(),
		"filter", o.coeffs,
		"mode", o.mode,
		"workers", pool.Workers())

	switch o.mode {
	case ModeFull:
		err = resizeFull(ctx, pool, src, dst, o.coeffs)
	case ModeSeparable:
		err = resizeSeparable(ctx, pool, src, dst, o.coeffs)
	default:
		err = fmt.Errorf("%w: resize mode %v", ErrNotImplemented, o.mode)
	}
	if err != nil {
		logDriverError("resize", err)
		return nil, err
	}

	Logger().Debug("resample: resize done", "elapsed", time.Since(start))
	return dst, nil
}

// sourceCoord maps destination index i of an axis of length dstLen onto a
// source axis of length srcLen, pixel center to pixel center, clamped to
// [0, srcLen-1].
func sourceCoord(i, dstLen, srcLen int) float64 {
	s := (float64(i)+0.5)*float64(srcLen)/float64(dstLen) - 0.5
	if s < 0 {
		return 0
	}
	if maxS := float64(srcLen - 1); s > maxS {
		return maxS
	}
	return s
}

func resizeFull(ctx context.Context, pool *parallel.WorkerPool, src Source, dst *ImageBuf, k Coefficients) error {
	srcW, srcH := src.Width(), src.Height()
	dstW, dstH := dst.Width(), dst.Height()

	return forEachRow(ctx, pool, dstH, func(y int) error {
		sy := sourceCoord(y, dstH, srcH)
		for x := range dstW {
			sx := sourceCoord(x, dstW, srcW)
			if err := Sample2D(src, k.B, k.C, sx, sy, dst.PixelBytes(x, y)); err != nil {
				return fmt.Errorf("resample: pixel (%d, %d): %w", x, y, err)
			}
		}
		return nil
	})
}

func resizeSeparable(ctx context.Context, pool *parallel.WorkerPool, src Source, dst *ImageBuf, k Coefficients) error {
	srcW, srcH := src.Width(), src.Height()
	dstW, dstH := dst.Width(), dst.Height()

	tmp, err := NewImageBuf(dstW, srcH, src.Format())
	if err != nil {
		return fmt.Errorf("resample: allocate intermediate: %w", err)
	}

	err = forEachRow(ctx, pool, srcH, func(y int) error {
		for x := range dstW {
			sx := sourceCoord(x, dstW, srcW)
			if err := SampleDirectional(src, k.B, k.C, sx, float64(y), Horizontal, tmp.PixelBytes(x, y)); err != nil {
				return fmt.Errorf("resample: horizontal pass (%d, %d): %w", x, y, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return forEachRow(ctx, pool, dstH, func(y int) error {
		sy := sourceCoord(y, dstH, srcH)
		for x := range dstW {
			if err := SampleDirectional(tmp, k.B, k.C, float64(x), sy, Vertical, dst.PixelBytes(x, y)); err != nil {
				return fmt.Errorf("resample: vertical pass (%d, %d): %w", x, y, err)
			}
		}
		return nil
	})
}
