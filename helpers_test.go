package resample

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/resample/internal/image"
)

// newFloatImage returns a GrayF32 image with pixel (x, y) set to f(x, y).
func newFloatImage(t testing.TB, w, h int, f func(x, y int) float64) *ImageBuf {
	t.Helper()
	buf, err := NewImageBuf(w, h, FormatGrayF32)
	if err != nil {
		t.Fatalf("NewImageBuf() error = %v", err)
	}
	for y := range h {
		for x := range w {
			blk := image.Block{Precision: image.PrecisionFloat, Channels: 1, Values: [4]float64{f(x, y)}}
			if err := buf.SetBlock(x, y, blk); err != nil {
				t.Fatalf("SetBlock(%d, %d) error = %v", x, y, err)
			}
		}
	}
	return buf
}

// newGrayImage returns a Gray8 image with pixel (x, y) set to f(x, y).
func newGrayImage(t testing.TB, w, h int, f func(x, y int) byte) *ImageBuf {
	t.Helper()
	buf, err := NewImageBuf(w, h, FormatGray8)
	if err != nil {
		t.Fatalf("NewImageBuf() error = %v", err)
	}
	for y := range h {
		for x := range w {
			_ = buf.SetPixelBytes(x, y, []byte{f(x, y)})
		}
	}
	return buf
}

// newUniformImage returns an image of the given format filled with blk.
func newUniformImage(t testing.TB, w, h int, format Format, blk image.Block) *ImageBuf {
	t.Helper()
	buf, err := NewImageBuf(w, h, format)
	if err != nil {
		t.Fatalf("NewImageBuf() error = %v", err)
	}
	if err := buf.Fill(blk); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	return buf
}

func readF32(b []byte) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
}

// fakeSource is a Source with arbitrary, possibly inconsistent, geometry.
type fakeSource struct {
	w, h   int
	format Format
	stride int
	data   []byte
}

func (s fakeSource) Width() int     { return s.w }
func (s fakeSource) Height() int    { return s.h }
func (s fakeSource) Format() Format { return s.format }
func (s fakeSource) Data() []byte   { return s.data }

func (s fakeSource) PixelOffset(x, y int) int {
	return y*s.stride + x*s.format.BytesPerPixel()
}
