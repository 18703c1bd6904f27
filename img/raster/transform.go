package raster

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Abs returns the elementwise absolute value of b.
func Abs(b *Buffer) (*Buffer, error) {
	if b.IsEmpty() {
		return nil, ErrEmptyBuffer
	}
	return Map(b, math.Abs), nil
}

// Normalize maps the sample range [min, max] of b onto [0, 1].
func Normalize(b *Buffer) (*Buffer, error) {
	lo, hi, err := b.MinMax()
	if err != nil {
		return nil, err
	}
	if hi == lo {
		return nil, fmt.Errorf("%w: constant image (%v)", ErrDegenerateInput, lo)
	}
	return ShiftScale(b, -lo, 1/(hi-lo)), nil
}

// Invert mirrors every sample inside the image's own range, so the darkest
// pixel becomes the brightest and vice versa: v' = min + max - v.
// The dynamic range is preserved and a constant image is returned unchanged.
func Invert(b *Buffer) (*Buffer, error) {
	lo, hi, err := b.MinMax()
	if err != nil {
		return nil, err
	}
	out := New(b.width, b.height)
	for i, v := range b.samples {
		out.samples[i] = lo + hi - v
	}
	return out, nil
}

// Blend returns (1-alpha)*a + alpha*b.
func Blend(a, b *Buffer, alpha float64) (*Buffer, error) {
	if err := checkPair(a, b); err != nil {
		return nil, err
	}
	out := New(a.width, a.height)
	tmp := make([]float64, len(a.samples))
	vecmath.ScaleBlock(out.samples, a.samples, 1-alpha)
	vecmath.ScaleBlock(tmp, b.samples, alpha)
	vecmath.AddBlockInPlace(out.samples, tmp)
	return out, nil
}

// ROI copies the width×height region whose top-left corner is (x, y).
// Pixels of the region that fall outside b are left at zero.
func ROI(b *Buffer, x, y, width, height int) (*Buffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative region %dx%d", ErrInvalidArgument, width, height)
	}

	roi := New(width, height)
	for ry := 0; ry < roi.height; ry++ {
		sy := y + ry
		if sy < 0 || sy >= b.height {
			continue
		}
		for rx := 0; rx < roi.width; rx++ {
			sx := x + rx
			if sx < 0 || sx >= b.width {
				continue
			}
			roi.samples[ry*roi.width+rx] = b.samples[sy*b.width+sx]
		}
	}
	return roi, nil
}
