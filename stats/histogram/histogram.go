// Package histogram bins the samples of a greyscale buffer into equal-width
// bins spanning the buffer's own [min, max] range.
//
// Bin j < n-1 covers the half-open interval [min + j*w, min + (j+1)*w) and
// the last bin covers [min + (n-1)*w, max] inclusive, so the maximum sample is
// always counted and the counts sum to the number of pixels. A constant image
// puts every pixel into bin 0.
package histogram

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-img/img/core"
	"github.com/cwbudde/algo-img/img/raster"
)

// Bins holds per-bin pixel counts.
type Bins []uint64

// Total returns the sum of all counts.
func (b Bins) Total() uint64 {
	var n uint64
	for _, c := range b {
		n += c
	}
	return n
}

// Layout describes the bin boundaries of a histogram.
type Layout struct {
	Min   float64
	Max   float64
	Width float64 // zero when Min == Max
	Count int
}

// NewLayout returns the bin layout for binCount bins over b's sample range.
// Buffers holding NaN or infinite samples are rejected with
// raster.ErrInvalidArgument since they have no finite range to bin.
func NewLayout(b *raster.Buffer, binCount int) (Layout, error) {
	if binCount <= 0 {
		return Layout{}, fmt.Errorf("%w: bin count %d", raster.ErrInvalidArgument, binCount)
	}
	lo, hi, err := b.MinMax()
	if err != nil {
		return Layout{}, err
	}
	for i, v := range b.Samples() {
		if !core.IsFinite(v) {
			return Layout{}, fmt.Errorf("%w: non-finite sample %v at index %d", raster.ErrInvalidArgument, v, i)
		}
	}

	n := float64(binCount)
	return Layout{
		Min: lo,
		Max: hi,
		// hi-lo can exceed the float64 range; the scaled difference cannot.
		Width: hi/n - lo/n,
		Count: binCount,
	}, nil
}

// Edge returns the lower edge of bin j.
func (l Layout) Edge(j int) float64 {
	e := l.Min + float64(j)*l.Width
	if math.IsInf(e, 0) {
		e = 2 * (l.Min/2 + float64(j)*(l.Width/2))
	}
	return e
}

// Edges returns the lower edge of every bin.
func (l Layout) Edges() []float64 {
	edges := make([]float64, l.Count)
	for j := range edges {
		edges[j] = l.Edge(j)
	}
	return edges
}

// Index returns the bin that v falls into. Values outside [Min, Max] are
// clamped to the first or last bin; NaN maps to bin 0.
func (l Layout) Index(v float64) int {
	if l.Width == 0 || !(v > l.Min) {
		return 0
	}
	last := l.Count - 1
	if v >= l.Max {
		return last
	}

	j := last
	if pos := v/l.Width - l.Min/l.Width; pos < float64(last) {
		j = max(int(math.Floor(pos)), 0)
	}
	// The division can land off by a bin near a boundary; settle the tie
	// against the edges as Edge computes them.
	for j > 0 && v < l.Edge(j) {
		j--
	}
	for j < last && v >= l.Edge(j+1) {
		j++
	}
	return j
}

// Compute returns the histogram of b with binCount bins.
func Compute(b *raster.Buffer, binCount int) (Bins, error) {
	l, err := NewLayout(b, binCount)
	if err != nil {
		return nil, err
	}

	bins := make(Bins, binCount)
	for _, v := range b.Samples() {
		bins[l.Index(v)]++
	}
	return bins, nil
}

// Edges returns the lower edge of each of the binCount bins of b.
func Edges(b *raster.Buffer, binCount int) ([]float64, error) {
	l, err := NewLayout(b, binCount)
	if err != nil {
		return nil, err
	}
	return l.Edges(), nil
}
