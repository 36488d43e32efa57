package filter

import "fmt"

// Coefficients selects a member of the Mitchell-Netravali cubic family.
type Coefficients struct {
	B float64
	C float64
}

// Predefined members of the cubic family.
var (
	// CatmullRom is the interpolating Catmull-Rom spline (B=0, C=0.5).
	CatmullRom = Coefficients{B: 0, C: 0.5}

	// Mitchell is the filter recommended by Mitchell and Netravali (B=C=1/3).
	Mitchell = Coefficients{B: 1.0 / 3.0, C: 1.0 / 3.0}

	// BSpline is the smoothing cubic B-spline (B=1, C=0).
	BSpline = Coefficients{B: 1, C: 0}

	// Hermite is the cubic Hermite filter (B=0, C=0).
	Hermite = Coefficients{B: 0, C: 0}
)

// String returns a short description of the coefficients.
func (c Coefficients) String() string {
	return fmt.Sprintf("B=%.4g C=%.4g", c.B, c.C)
}

// Weight returns the filter response at distance d.
func (c Coefficients) Weight(d float64) float64 {
	return CubicWeight(c.B, c.C, d)
}

// Peak returns the filter response at distance 0.
func (c Coefficients) Peak() float64 {
	return (6 - 2*c.B) / 6
}

// Support is the radius beyond which every cubic weight is zero.
const Support = 2.0

// CubicWeight computes the Mitchell-Netravali cubic response for a
// non-negative distance d and shape coefficients b and c.
//
//	d < 1:      ((12-9B-6C)d³ + (-18+12B+6C)d² + (6-2B)) / 6
//	1 <= d < 2: ((-B-6C)d³ + (6B+30C)d² + (-12B-48C)d + (8B+24C)) / 6
//	d >= 2:     0
//
// Negative distances are mirrored so the function stays total.
func CubicWeight(b, c, d float64) float64 {
	if d < 0 {
		d = -d
	}
	d2 := d * d
	d3 := d2 * d
	if d < 1 {
		return ((12-9*b-6*c)*d3 + (-18+12*b+6*c)*d2 + (6 - 2*b)) / 6
	}
	if d < Support {
		return ((-b-6*c)*d3 + (6*b+30*c)*d2 + (-12*b-48*c)*d + (8*b + 24*c)) / 6
	}
	return 0
}
