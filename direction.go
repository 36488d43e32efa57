package resample

import "fmt"

// Direction selects the axis of a one-dimensional pass.
type Direction uint8

const (
	// Horizontal filters along a row.
	Horizontal Direction = iota

	// Vertical filters along a column.
	Vertical
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// SampleDirectional runs SampleHorizontal or SampleVertical depending on dir.
// It is the entry point for separable two-pass filtering.
//
// Arguments are validated first, so an invalid source reports
// ErrInvalidArgument even when dir is unknown. A dir outside
// {Horizontal, Vertical} reports ErrNotImplemented.
func SampleDirectional(src Source, b, c, x, y float64, dir Direction, out []byte) error {
	if err := validateSource(src); err != nil {
		return err
	}
	if err := validateOutput(out, src.Format()); err != nil {
		return err
	}

	switch dir {
	case Horizontal:
		return SampleHorizontal(src, b, c, x, y, out)
	case Vertical:
		return SampleVertical(src, b, c, x, y, out)
	default:
		return fmt.Errorf("%w: direction %v", ErrNotImplemented, dir)
	}
}
