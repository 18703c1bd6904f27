package raster

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

func checkPair(a, b *Buffer) error {
	if a.IsEmpty() || b.IsEmpty() {
		return ErrEmptyBuffer
	}
	if !a.SameShape(b) {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, a.width, a.height, b.width, b.height)
	}
	return nil
}

func checkDivisor(d float64) error {
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return fmt.Errorf("%w: divisor %v", ErrInvalidArgument, d)
	}
	return nil
}

// Add returns a + b.
func Add(a, b *Buffer) (*Buffer, error) {
	if err := checkPair(a, b); err != nil {
		return nil, err
	}
	out := New(a.width, a.height)
	vecmath.AddBlock(out.samples, a.samples, b.samples)
	return out, nil
}

// Sub returns a - b.
func Sub(a, b *Buffer) (*Buffer, error) {
	if err := checkPair(a, b); err != nil {
		return nil, err
	}
	out := New(a.width, a.height)
	vecmath.ScaleBlock(out.samples, b.samples, -1)
	vecmath.AddBlockInPlace(out.samples, a.samples)
	return out, nil
}

// AddInPlace adds src to b sample by sample.
func (b *Buffer) AddInPlace(src *Buffer) error {
	if err := checkPair(b, src); err != nil {
		return err
	}
	vecmath.AddBlockInPlace(b.samples, src.samples)
	return nil
}

// SubInPlace subtracts src from b sample by sample.
func (b *Buffer) SubInPlace(src *Buffer) error {
	if err := checkPair(b, src); err != nil {
		return err
	}
	for i, v := range src.samples {
		b.samples[i] -= v
	}
	return nil
}

// AddScalar returns b with v added to every sample.
func AddScalar(b *Buffer, v float64) *Buffer {
	out := b.Clone()
	out.AddScalarInPlace(v)
	return out
}

// SubScalar returns b with v subtracted from every sample.
func SubScalar(b *Buffer, v float64) *Buffer {
	return AddScalar(b, -v)
}

// Scale returns b with every sample multiplied by k.
func Scale(b *Buffer, k float64) *Buffer {
	out := New(b.width, b.height)
	vecmath.ScaleBlock(out.samples, b.samples, k)
	return out
}

// Divide returns b with every sample divided by d.
func Divide(b *Buffer, d float64) (*Buffer, error) {
	if err := checkDivisor(d); err != nil {
		return nil, err
	}
	out := b.Clone()
	for i := range out.samples {
		out.samples[i] /= d
	}
	return out, nil
}

// AddScalarInPlace adds v to every sample.
func (b *Buffer) AddScalarInPlace(v float64) {
	for i := range b.samples {
		b.samples[i] += v
	}
}

// ScaleInPlace multiplies every sample by k.
func (b *Buffer) ScaleInPlace(k float64) {
	vecmath.ScaleBlockInPlace(b.samples, k)
}

// DivideInPlace divides every sample by d.
func (b *Buffer) DivideInPlace(d float64) error {
	if err := checkDivisor(d); err != nil {
		return err
	}
	for i := range b.samples {
		b.samples[i] /= d
	}
	return nil
}

// ShiftScale returns (v + shift) * scale for every sample v.
func ShiftScale(b *Buffer, shift, scale float64) *Buffer {
	out := b.Clone()
	out.ShiftScaleInPlace(shift, scale)
	return out
}

// ShiftScaleInPlace replaces every sample v with (v + shift) * scale.
func (b *Buffer) ShiftScaleInPlace(shift, scale float64) {
	for i, v := range b.samples {
		b.samples[i] = (v + shift) * scale
	}
}

// Map returns a new buffer with f applied to every sample.
func Map(b *Buffer, f func(float64) float64) *Buffer {
	out := New(b.width, b.height)
	for i, v := range b.samples {
		out.samples[i] = f(v)
	}
	return out
}
