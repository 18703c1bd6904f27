package conv

import (
	"fmt"

	"github.com/cwbudde/algo-img/img/core"
	"github.com/cwbudde/algo-img/img/raster"
)

// Convolve applies k to every pixel of b with clamp-to-edge borders and
// returns a new buffer of the same size.
func Convolve(b *raster.Buffer, k Kernel, opts ...Option) (*raster.Buffer, error) {
	if b.IsEmpty() {
		return nil, raster.ErrEmptyBuffer
	}

	cfg := ApplyOptions(opts...)
	if cfg.Divisor <= 0 || !core.IsFinite(cfg.Divisor) {
		return nil, fmt.Errorf("%w: divisor %v", raster.ErrInvalidArgument, cfg.Divisor)
	}

	var (
		out []float64
		err error
	)
	strategy := cfg.Strategy
	if strategy == StrategyAuto {
		strategy = StrategyDirect
		if cfg.FFTThreshold > 0 && b.Len() >= cfg.FFTThreshold {
			strategy = StrategyFFT
		}
	}

	switch strategy {
	case StrategyDirect:
		out = directSamples(b, k)
	case StrategyFFT:
		out, err = fftSamples(b, k)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: strategy %v", raster.ErrInvalidArgument, cfg.Strategy)
	}

	if cfg.Divisor != 1 {
		for i := range out {
			out[i] /= cfg.Divisor
		}
	}

	return raster.FromSamples(b.Width(), b.Height(), out)
}

// Direct is Convolve with StrategyDirect and no post-scaling.
func Direct(b *raster.Buffer, k Kernel) (*raster.Buffer, error) {
	return Convolve(b, k, WithStrategy(StrategyDirect))
}

// FFT is Convolve with StrategyFFT and no post-scaling.
func FFT(b *raster.Buffer, k Kernel) (*raster.Buffer, error) {
	return Convolve(b, k, WithStrategy(StrategyFFT))
}

func directSamples(b *raster.Buffer, k Kernel) []float64 {
	out := make([]float64, b.Len())
	w := b.Width()

	// b is known to be non-empty here.
	_ = ForEachNeighborhood(b, func(x, y int, n *[9]float64) {
		var sum float64
		for i, c := range k {
			sum += c * n[i]
		}
		out[y*w+x] = sum
	})
	return out
}

// ForEachNeighborhood calls fn for every pixel of b in row-major order with
// the pixel's 3×3 neighbourhood, laid out like a [Kernel]: n[kr*3+kc] holds
// the sample at (x+kc-1, y+kr-1), each axis clamped independently to the
// image. fn must not retain n.
func ForEachNeighborhood(b *raster.Buffer, fn func(x, y int, n *[9]float64)) error {
	if b.IsEmpty() {
		return raster.ErrEmptyBuffer
	}

	w, h := b.Width(), b.Height()
	src := b.Samples()

	// Clamped column offsets for every x.
	cols := make([][Size]int, w)
	for x := range cols {
		for kc := 0; kc < Size; kc++ {
			cols[x][kc] = core.ClampIndex(x+kc-1, w)
		}
	}

	var n [9]float64
	for y := 0; y < h; y++ {
		var rows [Size]int
		for kr := 0; kr < Size; kr++ {
			rows[kr] = core.ClampIndex(y+kr-1, h) * w
		}
		for x := 0; x < w; x++ {
			cx := &cols[x]
			for kr := 0; kr < Size; kr++ {
				base := rows[kr]
				n[kr*Size] = src[base+cx[0]]
				n[kr*Size+1] = src[base+cx[1]]
				n[kr*Size+2] = src[base+cx[2]]
			}
			fn(x, y, &n)
		}
	}
	return nil
}
