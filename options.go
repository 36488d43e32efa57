package resample

import "fmt"

// Mode selects how Resize applies the cubic filter.
type Mode uint8

const (
	// ModeFull samples every destination pixel with Sample2D.
	ModeFull Mode = iota

	// ModeSeparable runs a horizontal pass into an intermediate image and a
	// vertical pass over it. The intermediate is stored in the source format,
	// so fixed-point formats are rounded between the passes.
	ModeSeparable
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "Full"
	case ModeSeparable:
		return "Separable"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Option configures Resize and Warp.
//
// Example:
//
//	dst, err := resample.Resize(ctx, src, 640, 480,
//		resample.WithCoefficients(resample.Mitchell),
//		resample.WithMode(resample.ModeSeparable))
type Option func(*options)

// options holds the driver configuration.
type options struct {
	coeffs  Coefficients
	mode    Mode
	workers int
}

// defaultOptions returns Catmull-Rom, full 2-D sampling and one worker per
// available CPU.
func defaultOptions() options {
	return options{
		coeffs:  CatmullRom,
		mode:    ModeFull,
		workers: 0, // GOMAXPROCS
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithCoefficients sets the B and C shape coefficients of the cubic filter.
func WithCoefficients(c Coefficients) Option {
	return func(o *options) {
		o.coeffs = c
	}
}

// WithMode selects full 2-D or separable sampling. Warp ignores it and always
// samples in 2-D.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithWorkers sets the number of goroutines used to fill the destination.
// Values <= 0 use runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
