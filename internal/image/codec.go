package image

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrEmptyBlock is returned when encoding a block with no precision tag.
var ErrEmptyBlock = errors.New("image: empty channel block")

// Decode converts the raw bytes of one pixel in format f into a Block.
// Channels are returned in storage order (BGRA stays BGRA).
// An unknown format or a short pixel slice yields an empty block.
func Decode(pixel []byte, f Format) Block {
	bpp := f.BytesPerPixel()
	if bpp == 0 || len(pixel) < bpp {
		return Block{}
	}

	blk := NewBlock(f)
	switch f {
	case FormatGray8, FormatRGB8, FormatRGBA8, FormatRGBAPremul, FormatBGRA8, FormatBGRAPremul:
		for c := range blk.Channels {
			blk.Values[c] = float64(pixel[c])
		}
	case FormatGray16:
		blk.Values[0] = float64(binary.LittleEndian.Uint16(pixel))
	case FormatGrayF32, FormatRGBAF32:
		for c := range blk.Channels {
			bits := binary.LittleEndian.Uint32(pixel[c*4:])
			blk.Values[c] = float64(math.Float32frombits(bits))
		}
	}
	return blk
}

// Encode writes b into dst as one pixel of format f.
//
// Fixed-point channels are rounded to the nearest integer and clamped to the
// format's range; NaN encodes as 0. Float channels are narrowed to float32
// without clamping.
func Encode(b Block, f Format, dst []byte) error {
	if !f.IsValid() {
		return ErrInvalidFormat
	}
	if b.IsEmpty() {
		return ErrEmptyBlock
	}
	if len(dst) < f.BytesPerPixel() {
		return ErrDataTooSmall
	}

	switch f {
	case FormatGray8, FormatRGB8, FormatRGBA8, FormatRGBAPremul, FormatBGRA8, FormatBGRAPremul:
		for c := range f.Channels() {
			dst[c] = byte(quantize(b.Values[c], 255))
		}
	case FormatGray16:
		binary.LittleEndian.PutUint16(dst, uint16(quantize(b.Values[0], 65535)))
	case FormatGrayF32, FormatRGBAF32:
		for c := range f.Channels() {
			binary.LittleEndian.PutUint32(dst[c*4:], math.Float32bits(float32(b.Values[c])))
		}
	}
	return nil
}

// quantize rounds v to the nearest integer in [0, maxVal].
func quantize(v, maxVal float64) uint32 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= maxVal {
		return uint32(maxVal)
	}
	return uint32(math.Round(v))
}
