package image

import "errors"

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// ImageBuf is an image buffer storing pixels of a single Format in a
// contiguous byte slice, with an optional row stride for alignment.
//
// Thread safety: ImageBuf is safe for concurrent read access. Writes to
// distinct pixels may run concurrently; anything else requires external
// synchronization.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewImageBuf creates a new image buffer with the given dimensions and format.
// Returns an error if dimensions are invalid or format is unknown.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	return NewImageBufWithStride(width, height, format, format.RowBytes(width))
}

// NewImageBufWithStride creates a new image buffer with custom stride for alignment.
// Stride must be at least format.RowBytes(width).
func NewImageBufWithStride(width, height int, format Format, stride int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return nil, ErrInvalidStride
	}

	return &ImageBuf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRaw creates an ImageBuf from existing data without copying.
// The caller must ensure data remains valid for the lifetime of the ImageBuf.
// Stride must be at least format.RowBytes(width).
func FromRaw(data []byte, width, height int, format Format, stride int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return nil, ErrInvalidStride
	}

	requiredSize := stride * height
	if len(data) < requiredSize {
		return nil, ErrDataTooSmall
	}

	return &ImageBuf{
		data:   data[:requiredSize],
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Stride returns the number of bytes per row (including padding).
func (b *ImageBuf) Stride() int {
	return b.stride
}

// Format returns the pixel format.
func (b *ImageBuf) Format() Format {
	return b.format
}

// Bounds returns the image dimensions as (width, height).
func (b *ImageBuf) Bounds() (int, int) {
	return b.width, b.height
}

// Data returns the raw pixel data slice.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// RowBytes returns a slice of the pixel data for row y.
// Returns nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	end := start + b.format.RowBytes(b.width)
	return b.data[start:end]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *ImageBuf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// PixelBytes returns a slice of the raw bytes for pixel (x, y).
// Returns nil if coordinates are out of bounds.
func (b *ImageBuf) PixelBytes(x, y int) []byte {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return nil
	}
	return b.data[offset : offset+b.format.BytesPerPixel()]
}

// SetPixelBytes sets the raw bytes for pixel (x, y).
// Returns ErrOutOfBounds if coordinates are outside image bounds.
func (b *ImageBuf) SetPixelBytes(x, y int, pixel []byte) error {
	dst := b.PixelBytes(x, y)
	if dst == nil {
		return ErrOutOfBounds
	}
	copy(dst, pixel)
	return nil
}

// Block decodes pixel (x, y). Returns an empty block if out of bounds.
func (b *ImageBuf) Block(x, y int) Block {
	pixel := b.PixelBytes(x, y)
	if pixel == nil {
		return Block{}
	}
	return Decode(pixel, b.format)
}

// SetBlock encodes blk into pixel (x, y).
func (b *ImageBuf) SetBlock(x, y int, blk Block) error {
	dst := b.PixelBytes(x, y)
	if dst == nil {
		return ErrOutOfBounds
	}
	return Encode(blk, b.format, dst)
}

// Fill sets every pixel to blk.
func (b *ImageBuf) Fill(blk Block) error {
	bpp := b.format.BytesPerPixel()
	pixel := make([]byte, bpp)
	if err := Encode(blk, b.format, pixel); err != nil {
		return err
	}
	for y := range b.height {
		row := b.RowBytes(y)
		for x := 0; x < len(row); x += bpp {
			copy(row[x:x+bpp], pixel)
		}
	}
	return nil
}

// SubImage returns a view into a rectangular region of the image.
// The returned ImageBuf shares the underlying data with the original.
// Returns nil if the bounds are invalid or outside the image.
func (b *ImageBuf) SubImage(x, y, width, height int) *ImageBuf {
	if x < 0 || y < 0 || width <= 0 || height <= 0 {
		return nil
	}
	if x+width > b.width || y+height > b.height {
		return nil
	}

	bpp := b.format.BytesPerPixel()
	offset := y*b.stride + x*bpp
	// Total bytes needed: (height-1)*stride + width*bpp
	endOffset := (y+height-1)*b.stride + (x+width)*bpp

	return &ImageBuf{
		data:   b.data[offset:endOffset],
		width:  width,
		height: height,
		stride: b.stride,
		format: b.format,
	}
}
