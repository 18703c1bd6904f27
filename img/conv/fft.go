package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-img/img/core"
	"github.com/cwbudde/algo-img/img/raster"
)

// plan2D holds the row and column plans of a 2-D transform.
type plan2D struct {
	width, height int
	rows          *algofft.Plan[complex128]
	cols          *algofft.Plan[complex128]
	column        []complex128
}

func newPlan2D(width, height int) (*plan2D, error) {
	rows, err := algofft.NewPlan64(width)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	cols := rows
	if height != width {
		cols, err = algofft.NewPlan64(height)
		if err != nil {
			return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
		}
	}

	return &plan2D{
		width:  width,
		height: height,
		rows:   rows,
		cols:   cols,
		column: make([]complex128, height),
	}, nil
}

// transform runs the 2-D FFT of grid (row-major, width×height) in place.
func (p *plan2D) transform(grid []complex128, inverse bool) error {
	rowFn, colFn := p.rows.Forward, p.cols.Forward
	if inverse {
		rowFn, colFn = p.rows.Inverse, p.cols.Inverse
	}

	for y := 0; y < p.height; y++ {
		row := grid[y*p.width : (y+1)*p.width]
		if err := rowFn(row, row); err != nil {
			return fmt.Errorf("conv: row FFT failed: %w", err)
		}
	}

	for x := 0; x < p.width; x++ {
		for y := 0; y < p.height; y++ {
			p.column[y] = grid[y*p.width+x]
		}
		if err := colFn(p.column, p.column); err != nil {
			return fmt.Errorf("conv: column FFT failed: %w", err)
		}
		for y := 0; y < p.height; y++ {
			grid[y*p.width+x] = p.column[y]
		}
	}
	return nil
}

// fftSamples computes the clamp-to-edge convolution through the frequency
// domain. The image is padded by one replicated pixel on each side, so the
// linear convolution of the padded image with the flipped kernel, read at
// offset (+2, +2), equals the direct neighbourhood sum.
func fftSamples(b *raster.Buffer, k Kernel) ([]float64, error) {
	w, h := b.Width(), b.Height()
	pw, ph := w+2, h+2

	// Full linear convolution of the padded image with a 3×3 kernel needs
	// (pw+2)×(ph+2) samples to avoid circular wrap-around.
	fw := core.NextPowerOf2(pw + Size - 1)
	fh := core.NextPowerOf2(ph + Size - 1)

	plan, err := newPlan2D(fw, fh)
	if err != nil {
		return nil, err
	}

	src := b.Samples()
	img := make([]complex128, fw*fh)
	for py := 0; py < ph; py++ {
		sy := core.ClampIndex(py-1, h)
		for px := 0; px < pw; px++ {
			sx := core.ClampIndex(px-1, w)
			img[py*fw+px] = complex(src[sy*w+sx], 0)
		}
	}

	flipped := k.Flip()
	ker := make([]complex128, fw*fh)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			ker[r*fw+c] = complex(flipped.At(r, c), 0)
		}
	}

	if err := plan.transform(img, false); err != nil {
		return nil, err
	}
	if err := plan.transform(ker, false); err != nil {
		return nil, err
	}
	for i := range img {
		img[i] *= ker[i]
	}
	if err := plan.transform(img, true); err != nil {
		return nil, err
	}

	out := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[y*w+x] = real(img[(y+2)*fw+x+2])
		}
	}
	return out, nil
}
