package filter

import (
	"slices"

	"github.com/cwbudde/algo-img/img/conv"
	"github.com/cwbudde/algo-img/img/raster"
)

// medianIndex is the middle of the nine sorted neighbourhood samples.
const medianIndex = conv.Size * conv.Size / 2

// Median replaces every pixel with the median of its clamp-to-edge 3×3
// neighbourhood.
func Median(b *raster.Buffer) (*raster.Buffer, error) {
	if b.IsEmpty() {
		return nil, raster.ErrEmptyBuffer
	}

	w := b.Width()
	out := make([]float64, b.Len())

	var window [conv.Size * conv.Size]float64
	err := conv.ForEachNeighborhood(b, func(x, y int, n *[9]float64) {
		window = *n
		slices.Sort(window[:])
		out[y*w+x] = window[medianIndex]
	})
	if err != nil {
		return nil, err
	}

	return raster.FromSamples(w, b.Height(), out)
}
