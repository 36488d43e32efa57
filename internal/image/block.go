package image

// Precision tags how a Block's channel values are stored in pixel memory.
type Precision uint8

const (
	// PrecisionNone marks an empty block that has not been tied to a format.
	PrecisionNone Precision = iota

	// PrecisionFixed channels are unsigned integers in the format's native
	// range (0..255 for 8-bit, 0..65535 for 16-bit).
	PrecisionFixed

	// PrecisionFloat channels are IEEE 754 floats with no fixed range.
	PrecisionFloat
)

// String returns a string representation of the precision.
func (p Precision) String() string {
	switch p {
	case PrecisionNone:
		return "None"
	case PrecisionFixed:
		return "Fixed"
	case PrecisionFloat:
		return "Float"
	default:
		return "Unknown"
	}
}

// MaxChannels is the number of channel slots in a Block.
const MaxChannels = 4

// Block holds the decoded channels of one pixel, or a running weighted sum of
// several pixels of the same format.
//
// Values are kept as float64 for both precisions. Fixed-point magnitudes are
// only converted back to integers by Encode, so a weighted sum is rounded
// once rather than on every accumulation step.
type Block struct {
	Precision Precision
	Channels  int
	Values    [MaxChannels]float64
}

// NewBlock returns a zero block carrying the precision and channel count of f.
func NewBlock(f Format) Block {
	return Block{
		Precision: f.Precision(),
		Channels:  f.Channels(),
	}
}

// IsEmpty reports whether the block has no precision tag.
func (b Block) IsEmpty() bool {
	return b.Precision == PrecisionNone
}

// Accumulate adds weight*s to b channel by channel.
// Only the first b.Channels slots are touched.
func (b *Block) Accumulate(weight float64, s Block) {
	for c := range b.Channels {
		b.Values[c] += weight * s.Values[c]
	}
}

// Scale multiplies every populated channel by factor.
func (b *Block) Scale(factor float64) {
	for c := range b.Channels {
		b.Values[c] *= factor
	}
}
