package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	// Register additional decoders with image.Decode.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ErrEmptyData is returned when image data is empty.
var ErrEmptyData = errors.New("image: empty data")

// LoadImage loads an image from the given file path, detecting the format
// from its content. Supported formats: PNG, JPEG, BMP, TIFF.
func LoadImage(path string) (*ImageBuf, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeImage(f)
}

// LoadImageFromBytes loads an image from a byte slice, auto-detecting the format.
func LoadImageFromBytes(data []byte) (*ImageBuf, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return DecodeImage(bytes.NewReader(data))
}

// DecodeImage decodes an image from the given reader, auto-detecting the format.
func DecodeImage(r io.Reader) (*ImageBuf, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img), nil
}

// SavePNG saves the image as a PNG file.
func (b *ImageBuf) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// SaveJPEG saves the image as a JPEG file with the given quality (1-100).
func (b *ImageBuf) SaveJPEG(path string, quality int) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := b.EncodeJPEG(f, quality); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// EncodePNG encodes the image as PNG to the given writer.
func (b *ImageBuf) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// EncodeJPEG encodes the image as JPEG to the given writer.
func (b *ImageBuf) EncodeJPEG(w io.Writer, quality int) error {
	quality = max(1, min(quality, 100))
	if err := jpeg.Encode(w, b.ToStdImage(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("image: encode JPEG: %w", err)
	}
	return nil
}

// FromStdImage creates an ImageBuf from a standard library image.Image.
//
// Gray and Gray16 images keep their single channel, *image.RGBA becomes
// FormatRGBAPremul, and every other image is converted to FormatRGBA8.
func FromStdImage(img image.Image) *ImageBuf {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		buf, _ := NewImageBuf(width, height, FormatGray8)
		copyRows(buf, src.Pix, src.Stride)
		return buf

	case *image.Gray16:
		buf, _ := NewImageBuf(width, height, FormatGray16)
		for y := range height {
			row := buf.RowBytes(y)
			srcRow := src.Pix[y*src.Stride:]
			for x := range width {
				// image.Gray16 is big endian
				row[x*2] = srcRow[x*2+1]
				row[x*2+1] = srcRow[x*2]
			}
		}
		return buf

	case *image.RGBA:
		buf, _ := NewImageBuf(width, height, FormatRGBAPremul)
		copyRows(buf, src.Pix, src.Stride)
		return buf

	case *image.NRGBA:
		buf, _ := NewImageBuf(width, height, FormatRGBA8)
		copyRows(buf, src.Pix, src.Stride)
		return buf
	}

	buf, _ := NewImageBuf(width, height, FormatRGBA8)
	for y := range height {
		row := buf.RowBytes(y)
		for x := range width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			copy(row[x*4:], []byte{c.R, c.G, c.B, c.A})
		}
	}
	return buf
}

// copyRows copies tightly packed rows from a std image pixel slice.
func copyRows(buf *ImageBuf, pix []byte, stride int) {
	rowLen := buf.format.RowBytes(buf.width)
	for y := range buf.height {
		copy(buf.RowBytes(y), pix[y*stride:y*stride+rowLen])
	}
}

// ToStdImage converts the ImageBuf to a standard library image.Image.
// Float formats are clamped to [0, 1] and widened to 16 bits per channel.
func (b *ImageBuf) ToStdImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)

	switch b.format {
	case FormatGray8:
		gray := image.NewGray(rect)
		for y := range b.height {
			copy(gray.Pix[y*gray.Stride:], b.RowBytes(y))
		}
		return gray

	case FormatGray16:
		gray16 := image.NewGray16(rect)
		for y := range b.height {
			row := b.RowBytes(y)
			dstStart := y * gray16.Stride
			for x := range b.width {
				gray16.Pix[dstStart+x*2] = row[x*2+1]
				gray16.Pix[dstStart+x*2+1] = row[x*2]
			}
		}
		return gray16

	case FormatGrayF32:
		gray16 := image.NewGray16(rect)
		for y := range b.height {
			for x := range b.width {
				v := unitToU16(b.Block(x, y).Values[0])
				gray16.SetGray16(x, y, color.Gray16{Y: v})
			}
		}
		return gray16

	case FormatRGBAF32:
		nrgba := image.NewNRGBA64(rect)
		for y := range b.height {
			for x := range b.width {
				v := b.Block(x, y).Values
				nrgba.SetNRGBA64(x, y, color.NRGBA64{
					R: unitToU16(v[0]), G: unitToU16(v[1]), B: unitToU16(v[2]), A: unitToU16(v[3]),
				})
			}
		}
		return nrgba

	case FormatRGBAPremul:
		rgba := image.NewRGBA(rect)
		for y := range b.height {
			copy(rgba.Pix[y*rgba.Stride:], b.RowBytes(y))
		}
		return rgba

	case FormatBGRA8, FormatBGRAPremul:
		var pix []byte
		var stride int
		var out image.Image
		if b.format == FormatBGRAPremul {
			rgba := image.NewRGBA(rect)
			pix, stride, out = rgba.Pix, rgba.Stride, rgba
		} else {
			nrgba := image.NewNRGBA(rect)
			pix, stride, out = nrgba.Pix, nrgba.Stride, nrgba
		}
		for y := range b.height {
			row := b.RowBytes(y)
			dst := pix[y*stride:]
			for x := range b.width {
				off := x * 4
				dst[off] = row[off+2]
				dst[off+1] = row[off+1]
				dst[off+2] = row[off]
				dst[off+3] = row[off+3]
			}
		}
		return out

	case FormatRGB8:
		nrgba := image.NewNRGBA(rect)
		for y := range b.height {
			row := b.RowBytes(y)
			dst := nrgba.Pix[y*nrgba.Stride:]
			for x := range b.width {
				copy(dst[x*4:], row[x*3:x*3+3])
				dst[x*4+3] = 255
			}
		}
		return nrgba

	default:
		nrgba := image.NewNRGBA(rect)
		for y := range b.height {
			copy(nrgba.Pix[y*nrgba.Stride:], b.RowBytes(y))
		}
		return nrgba
	}
}

// unitToU16 maps a [0, 1] float channel to 16 bits.
func unitToU16(v float64) uint16 {
	return uint16(quantize(v*65535, 65535))
}

// EncodeToBytes encodes the image to PNG format and returns the bytes.
func (b *ImageBuf) EncodeToBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
