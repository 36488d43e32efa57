package resample

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/nfnt/resize"

	imgbuf "github.com/gogpu/resample/internal/image"
)

func TestResize_InvalidArguments(t *testing.T) {
	src := newGrayImage(t, 4, 4, func(x, y int) byte { return byte(x + y) })

	tests := []struct {
		name string
		src  Source
		w, h int
	}{
		{"nil source", nil, 2, 2},
		{"zero width", src, 0, 2},
		{"negative height", src, 2, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst, err := Resize(context.Background(), tt.src, tt.w, tt.h)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Resize() error = %v, want ErrInvalidArgument", err)
			}
			if dst != nil {
				t.Error("Resize() returned an image on failure")
			}
		})
	}
}

func TestResize_SizeAndFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     Format
		srcW, srcH int
		dstW, dstH int
		mode       Mode
	}{
		{"upscale gray full", FormatGray8, 4, 3, 9, 7, ModeFull},
		{"downscale rgba separable", FormatRGBA8, 16, 10, 5, 3, ModeSeparable},
		{"float to one pixel", FormatRGBAF32, 6, 6, 1, 1, ModeFull},
		{"one pixel to many", FormatGray16, 1, 1, 4, 4, ModeSeparable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := NewImageBuf(tt.srcW, tt.srcH, tt.format)
			if err != nil {
				t.Fatal(err)
			}
			dst, err := Resize(context.Background(), src, tt.dstW, tt.dstH, WithMode(tt.mode))
			if err != nil {
				t.Fatalf("Resize() error = %v", err)
			}
			if dst.Width() != tt.dstW || dst.Height() != tt.dstH {
				t.Errorf("size = %dx%d, want %dx%d", dst.Width(), dst.Height(), tt.dstW, tt.dstH)
			}
			if dst.Format() != tt.format {
				t.Errorf("Format() = %v, want %v", dst.Format(), tt.format)
			}
		})
	}
}

func TestResize_PreservesUniform(t *testing.T) {
	fill := imgbuf.Block{Precision: imgbuf.PrecisionFixed, Channels: 4, Values: [4]float64{12, 34, 56, 200}}

	for _, mode := range []Mode{ModeFull, ModeSeparable} {
		for _, coeffs := range coefficientSets {
			src := newUniformImage(t, 7, 5, FormatRGBA8, fill)
			for _, size := range [][2]int{{14, 10}, {3, 2}, {7, 5}, {1, 9}} {
				dst, err := Resize(context.Background(), src, size[0], size[1],
					WithMode(mode), WithCoefficients(coeffs))
				if err != nil {
					t.Fatalf("%v %v: Resize() error = %v", mode, coeffs, err)
				}
				for y := range dst.Height() {
					for x := range dst.Width() {
						if got := dst.Block(x, y); got != fill {
							t.Fatalf("%v %v %v: pixel (%d,%d) = %v, want %v",
								mode, coeffs, size, x, y, got.Values, fill.Values)
						}
					}
				}
			}
		}
	}
}

func TestResize_SameSizeIsIdentity(t *testing.T) {
	src := newGrayImage(t, 9, 6, func(x, y int) byte { return byte(x*25 + y*7) })

	tests := []struct {
		name   string
		mode   Mode
		coeffs Coefficients
	}{
		// Hermite has no weight at distance >= 1, so the 2-D kernel at an
		// integer point returns that pixel.
		{"full hermite", ModeFull, Hermite},
		// Catmull-Rom interpolates: 1-D taps at integer distances vanish.
		{"separable catmull-rom", ModeSeparable, CatmullRom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst, err := Resize(context.Background(), src, 9, 6, WithMode(tt.mode), WithCoefficients(tt.coeffs))
			if err != nil {
				t.Fatalf("Resize() error = %v", err)
			}
			if !bytes.Equal(dst.Data(), src.Data()) {
				t.Errorf("same-size resize changed pixels:\n got %v\nwant %v", dst.Data(), src.Data())
			}
		})
	}
}

func TestResize_WorkerCountDoesNotChangeOutput(t *testing.T) {
	src := newGrayImage(t, 23, 17, func(x, y int) byte { return byte((x*x + 3*y) % 256) })

	var first []byte
	for _, workers := range []int{1, 2, 7, 0} {
		dst, err := Resize(context.Background(), src, 40, 31, WithWorkers(workers), WithCoefficients(Mitchell))
		if err != nil {
			t.Fatalf("workers=%d: Resize() error = %v", workers, err)
		}
		if first == nil {
			first = dst.Data()
			continue
		}
		if !bytes.Equal(dst.Data(), first) {
			t.Errorf("workers=%d produced different output", workers)
		}
	}
}

func TestResize_Cancelled(t *testing.T) {
	src := newGrayImage(t, 32, 32, func(x, y int) byte { return byte(x ^ y) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, mode := range []Mode{ModeFull, ModeSeparable} {
		dst, err := Resize(ctx, src, 64, 64, WithMode(mode))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("%v: error = %v, want context.Canceled", mode, err)
		}
		if dst != nil {
			t.Errorf("%v: returned an image after cancellation", mode)
		}
	}
}

func TestResize_UnknownMode(t *testing.T) {
	src := newGrayImage(t, 4, 4, func(_, _ int) byte { return 1 })
	if _, err := Resize(context.Background(), src, 2, 2, WithMode(Mode(9))); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("Resize() error = %v, want ErrNotImplemented", err)
	}
}

func TestResize_KernelErrorStopsDriver(t *testing.T) {
	// B=3 puts zero weight at distance 0, the only tap of a 1x1 source.
	src := newGrayImage(t, 1, 1, func(_, _ int) byte { return 1 })
	_, err := Resize(context.Background(), src, 3, 3, WithCoefficients(Coefficients{B: 3, C: 0}))
	if !errors.Is(err, ErrDegenerateWindow) {
		t.Errorf("Resize() error = %v, want ErrDegenerateWindow", err)
	}
}

func TestSourceCoord(t *testing.T) {
	tests := []struct {
		i, dst, src int
		want        float64
	}{
		{0, 4, 4, 0},
		{3, 4, 4, 3},
		{0, 2, 4, 0.5},
		{1, 2, 4, 2.5},
		{0, 8, 4, 0},
		{7, 8, 4, 3},
		{3, 8, 4, 1.25},
		{0, 1, 5, 2},
	}
	for _, tt := range tests {
		if got := sourceCoord(tt.i, tt.dst, tt.src); got != tt.want {
			t.Errorf("sourceCoord(%d, %d, %d) = %v, want %v", tt.i, tt.dst, tt.src, got, tt.want)
		}
	}
}

// TestResize_MatchesReferenceOnUniform checks a flat image against
// github.com/nfnt/resize, which must also leave it unchanged.
func TestResize_MatchesReferenceOnUniform(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 12, 9))
	for i := range img.Pix {
		img.Pix[i] = 173
	}

	for _, size := range [][2]uint{{24, 18}, {5, 4}, {12, 9}} {
		ref := resize.Resize(size[0], size[1], img, resize.Bicubic)

		dst, err := Resize(context.Background(), FromStdImage(img), int(size[0]), int(size[1]))
		if err != nil {
			t.Fatalf("Resize() error = %v", err)
		}
		got := dst.ToStdImage()

		if got.Bounds().Size() != ref.Bounds().Size() {
			t.Fatalf("size = %v, reference %v", got.Bounds().Size(), ref.Bounds().Size())
		}
		gb, rb := got.Bounds(), ref.Bounds()
		for y := range gb.Dy() {
			for x := range gb.Dx() {
				g := color.GrayModel.Convert(got.At(gb.Min.X+x, gb.Min.Y+y)).(color.Gray)
				r := color.GrayModel.Convert(ref.At(rb.Min.X+x, rb.Min.Y+y)).(color.Gray)
				if g != r {
					t.Fatalf("%v: pixel (%d,%d) = %d, reference %d", size, x, y, g.Y, r.Y)
				}
			}
		}
	}
}

func BenchmarkResize(b *testing.B) {
	src := newGrayImage(b, 256, 256, func(x, y int) byte { return byte(x ^ y) })
	ctx := context.Background()

	for _, mode := range []Mode{ModeFull, ModeSeparable} {
		b.Run(mode.String(), func(b *testing.B) {
			for b.Loop() {
				if _, err := Resize(ctx, src, 512, 384, WithMode(mode)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
