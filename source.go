package resample

import (
	"fmt"
	stdimage "image"

	"github.com/gogpu/resample/internal/filter"
	"github.com/gogpu/resample/internal/image"
)

// Source is the read-only image a kernel samples from.
//
// PixelOffset must return the byte offset of pixel (x, y) in Data for every
// in-bounds coordinate; the kernels never call it out of bounds.
// *ImageBuf implements Source.
type Source interface {
	Width() int
	Height() int
	Format() Format
	PixelOffset(x, y int) int
	Data() []byte
}

// Format is a pixel storage format.
type Format = image.Format

// Supported pixel formats.
const (
	FormatGray8      = image.FormatGray8
	FormatGray16     = image.FormatGray16
	FormatRGB8       = image.FormatRGB8
	FormatRGBA8      = image.FormatRGBA8
	FormatRGBAPremul = image.FormatRGBAPremul
	FormatBGRA8      = image.FormatBGRA8
	FormatBGRAPremul = image.FormatBGRAPremul
	FormatGrayF32    = image.FormatGrayF32
	FormatRGBAF32    = image.FormatRGBAF32
)

// ImageBuf is a strided pixel buffer. See NewImageBuf and FromRaw.
type ImageBuf = image.ImageBuf

// NewImageBuf allocates a zeroed image of the given size and format.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	return image.NewImageBuf(width, height, format)
}

// FromRaw wraps existing pixel data without copying.
func FromRaw(data []byte, width, height int, format Format, stride int) (*ImageBuf, error) {
	return image.FromRaw(data, width, height, format, stride)
}

// LoadImageFromBytes decodes an encoded PNG, JPEG, BMP or TIFF image.
func LoadImageFromBytes(data []byte) (*ImageBuf, error) {
	return image.LoadImageFromBytes(data)
}

// ParseFormat looks up a format by name, ignoring case ("rgba8", "GrayF32").
func ParseFormat(name string) (Format, bool) {
	return image.ParseFormat(name)
}

// LoadImage reads a PNG, JPEG, BMP or TIFF file.
func LoadImage(path string) (*ImageBuf, error) {
	return image.LoadImage(path)
}

// FromStdImage copies a standard library image into an ImageBuf, choosing the
// closest pixel format.
func FromStdImage(img stdimage.Image) *ImageBuf {
	return image.FromStdImage(img)
}

// Coefficients selects a member of the Mitchell-Netravali cubic family.
type Coefficients = filter.Coefficients

// Common cubic filters.
var (
	CatmullRom = filter.CatmullRom
	Mitchell   = filter.Mitchell
	BSpline    = filter.BSpline
	Hermite    = filter.Hermite
)

// Weight returns the cubic filter response for shape coefficients b, c at
// a non-negative distance d.
func Weight(b, c, d float64) float64 {
	return filter.CubicWeight(b, c, d)
}

// validateSource checks that src is structurally usable: positive
// dimensions, a known format, and backing storage that holds every pixel.
func validateSource(src Source) error {
	if src == nil {
		return fmt.Errorf("%w: nil source image", ErrInvalidArgument)
	}
	if buf, ok := src.(*ImageBuf); ok && buf == nil {
		return fmt.Errorf("%w: nil source image", ErrInvalidArgument)
	}

	w, h := src.Width(), src.Height()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: source dimensions %dx%d", ErrInvalidArgument, w, h)
	}
	f := src.Format()
	if !f.IsValid() {
		return fmt.Errorf("%w: source format %v", ErrInvalidArgument, f)
	}
	data := src.Data()
	if data == nil {
		return fmt.Errorf("%w: source has no pixel data", ErrInvalidArgument)
	}
	first, last := src.PixelOffset(0, 0), src.PixelOffset(w-1, h-1)
	if first < 0 || last < first || last+f.BytesPerPixel() > len(data) {
		return fmt.Errorf("%w: source data is %d bytes, last pixel at offset %d", ErrInvalidArgument, len(data), last)
	}
	return nil
}

// validateOutput checks that out can hold one pixel of format f.
func validateOutput(out []byte, f Format) error {
	if out == nil {
		return fmt.Errorf("%w: nil output buffer", ErrInvalidArgument)
	}
	if need := f.BytesPerPixel(); len(out) < need {
		return fmt.Errorf("%w: output buffer is %d bytes, need %d", ErrInvalidArgument, len(out), need)
	}
	return nil
}
