// Package image provides the pixel storage layer used by the resampler: a
// catalog of pixel formats, a raw-byte codec to and from channel blocks, and
// a strided image buffer.
package image

import (
	"strings"

	"github.com/gogpu/gputypes"
)

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 Format = iota

	// FormatGray16 is 16-bit grayscale, little endian (2 bytes per pixel).
	FormatGray16

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// FormatRGBA8 is 32-bit RGBA in sRGB color space (4 bytes per pixel).
	// This is the standard format for most operations.
	FormatRGBA8

	// FormatRGBAPremul is 32-bit RGBA with premultiplied alpha (4 bytes per pixel).
	FormatRGBAPremul

	// FormatBGRA8 is 32-bit BGRA in sRGB color space (4 bytes per pixel).
	// Common on Windows and some GPU formats.
	FormatBGRA8

	// FormatBGRAPremul is 32-bit BGRA with premultiplied alpha (4 bytes per pixel).
	FormatBGRAPremul

	// FormatGrayF32 is single-channel 32-bit float, little endian (4 bytes per pixel).
	FormatGrayF32

	// FormatRGBAF32 is four 32-bit floats, little endian (16 bytes per pixel).
	FormatRGBAF32

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of color channels.
	Channels int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool

	// IsPremultiplied indicates if alpha is premultiplied.
	IsPremultiplied bool

	// IsGrayscale indicates if this is a grayscale format.
	IsGrayscale bool

	// IsFloat indicates channels are stored as IEEE 754 floats.
	IsFloat bool

	// BitsPerChannel is the number of bits per color channel.
	BitsPerChannel int
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8: {
		BytesPerPixel:  1,
		Channels:       1,
		IsGrayscale:    true,
		BitsPerChannel: 8,
	},
	FormatGray16: {
		BytesPerPixel:  2,
		Channels:       1,
		IsGrayscale:    true,
		BitsPerChannel: 16,
	},
	FormatRGB8: {
		BytesPerPixel:  3,
		Channels:       3,
		BitsPerChannel: 8,
	},
	FormatRGBA8: {
		BytesPerPixel:  4,
		Channels:       4,
		HasAlpha:       true,
		BitsPerChannel: 8,
	},
	FormatRGBAPremul: {
		BytesPerPixel:   4,
		Channels:        4,
		HasAlpha:        true,
		IsPremultiplied: true,
		BitsPerChannel:  8,
	},
	FormatBGRA8: {
		BytesPerPixel:  4,
		Channels:       4,
		HasAlpha:       true,
		BitsPerChannel: 8,
	},
	FormatBGRAPremul: {
		BytesPerPixel:   4,
		Channels:        4,
		HasAlpha:        true,
		IsPremultiplied: true,
		BitsPerChannel:  8,
	},
	FormatGrayF32: {
		BytesPerPixel:  4,
		Channels:       1,
		IsGrayscale:    true,
		IsFloat:        true,
		BitsPerChannel: 32,
	},
	FormatRGBAF32: {
		BytesPerPixel:  16,
		Channels:       4,
		HasAlpha:       true,
		IsFloat:        true,
		BitsPerChannel: 32,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// Channels returns the number of color channels.
func (f Format) Channels() int {
	return f.Info().Channels
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsPremultiplied returns true if alpha is premultiplied.
func (f Format) IsPremultiplied() bool {
	return f.Info().IsPremultiplied
}

// IsGrayscale returns true if this is a grayscale format.
func (f Format) IsGrayscale() bool {
	return f.Info().IsGrayscale
}

// IsFloat returns true if channels are stored as floats.
func (f Format) IsFloat() bool {
	return f.Info().IsFloat
}

// BitsPerChannel returns the number of bits per color channel.
func (f Format) BitsPerChannel() int {
	return f.Info().BitsPerChannel
}

// Precision returns the accumulation precision used for this format's channels.
// Unknown formats report PrecisionNone.
func (f Format) Precision() Precision {
	switch {
	case !f.IsValid():
		return PrecisionNone
	case f.IsFloat():
		return PrecisionFloat
	default:
		return PrecisionFixed
	}
}

// MaxValue returns the largest channel magnitude of a fixed-point format.
// Float formats return 0 (unbounded).
func (f Format) MaxValue() float64 {
	info := f.Info()
	if info.IsFloat || info.BitsPerChannel == 0 {
		return 0
	}
	return float64(uint32(1)<<info.BitsPerChannel - 1)
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatGray16:
		return "Gray16"
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	case FormatRGBAPremul:
		return "RGBAPremul"
	case FormatBGRA8:
		return "BGRA8"
	case FormatBGRAPremul:
		return "BGRAPremul"
	case FormatGrayF32:
		return "GrayF32"
	case FormatRGBAF32:
		return "RGBAF32"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// TextureFormat returns the GPU texture format with the same memory layout.
// FormatRGB8 has no 3-byte GPU equivalent and returns TextureFormatUndefined,
// as do unknown formats. Premultiplication is not part of a texture format,
// so premultiplied variants map to their straight counterparts.
func (f Format) TextureFormat() gputypes.TextureFormat {
	switch f {
	case FormatGray8:
		return gputypes.TextureFormatR8Unorm
	case FormatGray16:
		return gputypes.TextureFormatR16Unorm
	case FormatRGBA8, FormatRGBAPremul:
		return gputypes.TextureFormatRGBA8Unorm
	case FormatBGRA8, FormatBGRAPremul:
		return gputypes.TextureFormatBGRA8Unorm
	case FormatGrayF32:
		return gputypes.TextureFormatR32Float
	case FormatRGBAF32:
		return gputypes.TextureFormatRGBA32Float
	default:
		return gputypes.TextureFormatUndefined
	}
}

// ParseFormat returns the format whose String matches name, ignoring case.
func ParseFormat(name string) (Format, bool) {
	for f := range formatCount {
		if strings.EqualFold(f.String(), name) {
			return f, true
		}
	}
	return 0, false
}
