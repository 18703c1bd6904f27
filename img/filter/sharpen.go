package filter

import (
	"github.com/cwbudde/algo-img/img/conv"
	"github.com/cwbudde/algo-img/img/raster"
)

// Sharpener applies unsharp masking:
//
//	detail = b - gaussian(b)
//	out    = b + Amount*detail
//
// A Sharpener with a pool reuses its scratch buffer across calls and is safe
// for concurrent use as long as the pool is.
type Sharpener struct {
	Amount float64

	pool *raster.Pool
	opts []conv.Option
}

// NewSharpener returns a Sharpener. pool may be nil, in which case scratch
// buffers are allocated per call. opts are forwarded to the Gaussian pass.
func NewSharpener(amount float64, pool *raster.Pool, opts ...conv.Option) *Sharpener {
	return &Sharpener{
		Amount: amount,
		pool:   pool,
		opts:   opts,
	}
}

// Apply returns the sharpened copy of b.
func (s *Sharpener) Apply(b *raster.Buffer) (*raster.Buffer, error) {
	blurred, err := Gaussian(b, s.opts...)
	if err != nil {
		return nil, err
	}

	var detail *raster.Buffer
	if s.pool != nil {
		detail = s.pool.Get(b.Width(), b.Height())
		defer s.pool.Put(detail)
		detail.CopyFrom(b)
	} else {
		detail = b.Clone()
	}

	if err := detail.SubInPlace(blurred); err != nil {
		return nil, err
	}
	detail.ScaleInPlace(s.Amount)

	out := b.Clone()
	if err := out.AddInPlace(detail); err != nil {
		return nil, err
	}
	return out, nil
}

// Sharpen applies unsharp masking with the given amount.
func Sharpen(b *raster.Buffer, amount float64, opts ...conv.Option) (*raster.Buffer, error) {
	return NewSharpener(amount, nil, opts...).Apply(b)
}
