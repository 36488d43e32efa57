package filter

import (
	"math"
	"testing"
)

const epsilon = 1e-12

func TestCubicWeightPeak(t *testing.T) {
	tests := []struct {
		name string
		c    Coefficients
		want float64
	}{
		{"CatmullRom", CatmullRom, 1.0},
		{"Mitchell", Mitchell, 8.0 / 9.0},
		{"BSpline", BSpline, 2.0 / 3.0},
		{"Hermite", Hermite, 1.0},
		{"Custom", Coefficients{B: 0.5, C: 0.25}, 5.0 / 6.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CubicWeight(tt.c.B, tt.c.C, 0)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("CubicWeight(%v, 0) = %v, want %v", tt.c, got, tt.want)
			}
			if math.Abs(tt.c.Peak()-got) > epsilon {
				t.Errorf("Peak() = %v, want %v", tt.c.Peak(), got)
			}
		})
	}
}

func TestCubicWeightCatmullRomKnots(t *testing.T) {
	// Catmull-Rom interpolates: 1 at 0, 0 at every other integer.
	for _, d := range []float64{1, 2, 3} {
		if got := CatmullRom.Weight(d); math.Abs(got) > epsilon {
			t.Errorf("CatmullRom.Weight(%v) = %v, want 0", d, got)
		}
	}
	// Known value at the midpoint: 1.5*0.125 - 2.5*0.25 + 1
	if got := CatmullRom.Weight(0.5); math.Abs(got-0.5625) > epsilon {
		t.Errorf("CatmullRom.Weight(0.5) = %v, want 0.5625", got)
	}
	// Negative lobe between 1 and 2
	if got := CatmullRom.Weight(1.5); got >= 0 {
		t.Errorf("CatmullRom.Weight(1.5) = %v, want negative", got)
	}
}

func TestCubicWeightContinuousAtOne(t *testing.T) {
	for _, c := range []Coefficients{CatmullRom, Mitchell, BSpline, Hermite} {
		below := c.Weight(1 - 1e-9)
		above := c.Weight(1 + 1e-9)
		if math.Abs(below-above) > 1e-6 {
			t.Errorf("%v: discontinuity at 1: %v vs %v", c, below, above)
		}
	}
}

func TestCubicWeightZeroOutsideSupport(t *testing.T) {
	for _, d := range []float64{2, 2.5, 2.83, 10} {
		if got := Mitchell.Weight(d); got != 0 {
			t.Errorf("Mitchell.Weight(%v) = %v, want 0", d, got)
		}
	}
}

func TestCubicWeightMirrorsNegative(t *testing.T) {
	for _, d := range []float64{0.25, 0.75, 1.25, 1.75} {
		if CubicWeight(0.3, 0.4, d) != CubicWeight(0.3, 0.4, -d) {
			t.Errorf("CubicWeight not symmetric at %v", d)
		}
	}
}

func TestCubicWeightPartitionOfUnity(t *testing.T) {
	// For B + 2C = 1 the integer-shifted weights sum to 1 for any phase.
	for _, c := range []Coefficients{CatmullRom, Mitchell, BSpline} {
		for _, phase := range []float64{0, 0.1, 0.25, 0.5, 0.9} {
			sum := 0.0
			for i := -2; i <= 2; i++ {
				sum += c.Weight(math.Abs(phase - float64(i)))
			}
			if math.Abs(sum-1) > 1e-9 {
				t.Errorf("%v phase %v: sum = %v, want 1", c, phase, sum)
			}
		}
	}
}

func TestCoefficientsString(t *testing.T) {
	if got := CatmullRom.String(); got != "B=0 C=0.5" {
		t.Errorf("String() = %q, want %q", got, "B=0 C=0.5")
	}
}

func BenchmarkCubicWeight(b *testing.B) {
	var sink float64
	for i := 0; b.Loop(); i++ {
		sink += CubicWeight(1.0/3.0, 1.0/3.0, float64(i%256)/64)
	}
	_ = sink
}
