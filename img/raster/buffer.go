package raster

import (
	"fmt"
	"math"
)

// Epsilon is the absolute per-sample tolerance used by [Buffer.Equal].
const Epsilon = 1e-6

// Buffer is a greyscale image of float64 samples.
type Buffer struct {
	width   int
	height  int
	samples []float64
}

// CheckSize reports whether a width×height buffer can be represented:
// both dimensions non-negative and width*height within int range.
func CheckSize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrInvalidArgument, width, height)
	}
	if width > 0 && height > math.MaxInt/width {
		return fmt.Errorf("%w: size %dx%d overflows", ErrInvalidArgument, width, height)
	}
	return nil
}

// New returns a zero-filled buffer of the given size. A non-positive width or
// height, or a size rejected by [CheckSize], yields an empty buffer.
func New(width, height int) *Buffer {
	if width <= 0 || height <= 0 || CheckSize(width, height) != nil {
		return &Buffer{}
	}
	return &Buffer{
		width:   width,
		height:  height,
		samples: make([]float64, width*height),
	}
}

// FromSamples returns a buffer holding a copy of samples, interpreted
// row-major. len(samples) must equal width*height.
func FromSamples(width, height int, samples []float64) (*Buffer, error) {
	if err := CheckSize(width, height); err != nil {
		return nil, err
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("%w: %d samples for %dx%d", ErrDimensionMismatch, len(samples), width, height)
	}

	b := New(width, height)
	copy(b.samples, samples)
	return b, nil
}

// FromRows builds a buffer from equally long rows.
func FromRows(rows [][]float64) (*Buffer, error) {
	if len(rows) == 0 {
		return &Buffer{}, nil
	}

	width := len(rows[0])
	b := New(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d samples, want %d", ErrDimensionMismatch, y, len(row), width)
		}
		copy(b.samples[y*width:], row)
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Buffer) Height() int {
	return b.height
}

// Len returns the number of samples, width*height.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// IsEmpty reports whether the buffer holds no samples.
func (b *Buffer) IsEmpty() bool {
	return b == nil || len(b.samples) == 0
}

// AspectRatio returns width/height, or 0 for an empty buffer.
func (b *Buffer) AspectRatio() float64 {
	if b.IsEmpty() {
		return 0
	}
	return float64(b.width) / float64(b.height)
}

// SameShape reports whether b and other have identical dimensions.
func (b *Buffer) SameShape(other *Buffer) bool {
	return b.width == other.width && b.height == other.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// At returns the sample at column x, row y.
func (b *Buffer) At(x, y int) (float64, error) {
	if !b.inBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
	}
	return b.samples[y*b.width+x], nil
}

// Set stores v at column x, row y.
func (b *Buffer) Set(x, y int, v float64) error {
	if !b.inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
	}
	b.samples[y*b.width+x] = v
	return nil
}

// Samples returns a copy of the samples in row-major order.
func (b *Buffer) Samples() []float64 {
	s := make([]float64, len(b.samples))
	copy(s, b.samples)
	return s
}

// Row returns a copy of row y.
func (b *Buffer) Row(y int) ([]float64, error) {
	if y < 0 || y >= b.height {
		return nil, fmt.Errorf("%w: row %d of %d", ErrOutOfBounds, y, b.height)
	}
	row := make([]float64, b.width)
	copy(row, b.samples[y*b.width:(y+1)*b.width])
	return row, nil
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	s := make([]float64, len(b.samples))
	copy(s, b.samples)
	return &Buffer{width: b.width, height: b.height, samples: s}
}

// Reset releases the samples and returns the buffer to the empty state.
func (b *Buffer) Reset() {
	b.width, b.height, b.samples = 0, 0, nil
}

// Fill sets every sample to v.
func (b *Buffer) Fill(v float64) {
	for i := range b.samples {
		b.samples[i] = v
	}
}

// Min returns the smallest sample.
func (b *Buffer) Min() (float64, error) {
	lo, _, err := b.MinMax()
	return lo, err
}

// Max returns the largest sample.
func (b *Buffer) Max() (float64, error) {
	_, hi, err := b.MinMax()
	return hi, err
}

// MinMax returns the smallest and largest sample in one scan.
func (b *Buffer) MinMax() (lo, hi float64, err error) {
	if b.IsEmpty() {
		return 0, 0, ErrEmptyBuffer
	}

	lo, hi = b.samples[0], b.samples[0]
	for _, v := range b.samples[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, nil
}

// Equal reports whether b and other have the same dimensions and every pair
// of samples differs by at most [Epsilon]. A nil buffer equals an empty one.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return b.IsEmpty() && other.IsEmpty()
	}
	if !b.SameShape(other) {
		return false
	}
	for i, v := range b.samples {
		if math.Abs(v-other.samples[i]) > Epsilon {
			return false
		}
	}
	return true
}

// String returns a short description such as "Buffer(640x480)".
func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer(%dx%d)", b.width, b.height)
}
