package resample

import (
	"errors"
	"fmt"
)

// Kernel errors. Every error returned by the sampling functions wraps one of
// these and can be tested with errors.Is.
var (
	// ErrInvalidArgument is returned when the output buffer is missing or too
	// small, the source image fails structural validation, or the sample
	// coordinate is not finite.
	ErrInvalidArgument = errors.New("resample: invalid argument")

	// ErrNotImplemented is returned by SampleDirectional for a Direction
	// outside {Horizontal, Vertical}.
	ErrNotImplemented = errors.New("resample: not implemented")

	// ErrDegenerateWindow is returned when no in-bounds tap carries weight,
	// so the weighted sum cannot be normalized. It wraps ErrInvalidArgument:
	// the caller sampled outside the image or chose coefficients whose
	// weights cancel.
	ErrDegenerateWindow = fmt.Errorf("%w: kernel weights sum to zero", ErrInvalidArgument)
)

// Status is the three-state outcome of a kernel call.
type Status uint8

const (
	// StatusSuccess means the output pixel was written.
	StatusSuccess Status = iota

	// StatusInvalidArgument means the call was rejected before any write.
	StatusInvalidArgument

	// StatusNotImplemented means the dispatcher received an unknown direction.
	StatusNotImplemented
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusInvalidArgument:
		return "invalid-argument"
	case StatusNotImplemented:
		return "not-implemented"
	default:
		return "unknown"
	}
}

// StatusOf maps an error returned by this package to its Status.
// A nil error is StatusSuccess; errors outside the kernel taxonomy (for
// example a cancelled context from a driver) report StatusInvalidArgument.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrNotImplemented):
		return StatusNotImplemented
	default:
		return StatusInvalidArgument
	}
}
