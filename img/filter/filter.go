package filter

import (
	"github.com/cwbudde/algo-img/img/conv"
	"github.com/cwbudde/algo-img/img/raster"
)

// withDivisor appends a divisor option without touching the caller's slice.
func withDivisor(opts []conv.Option, d float64) []conv.Option {
	out := make([]conv.Option, 0, len(opts)+1)
	out = append(out, opts...)
	return append(out, conv.WithDivisor(d))
}

// Mean applies a 3×3 box blur.
func Mean(b *raster.Buffer, opts ...conv.Option) (*raster.Buffer, error) {
	return conv.Convolve(b, MeanKernel, withDivisor(opts, meanDivisor)...)
}

// Gaussian applies the 3×3 binomial approximation of a Gaussian blur.
func Gaussian(b *raster.Buffer, opts ...conv.Option) (*raster.Buffer, error) {
	return conv.Convolve(b, GaussianKernel, withDivisor(opts, gaussianDivisor)...)
}

// Laplacian returns the second-derivative response of b.
func Laplacian(b *raster.Buffer, opts ...conv.Option) (*raster.Buffer, error) {
	return conv.Convolve(b, LaplacianKernel, opts...)
}

// Sobel returns the gradient magnitude approximation |Gx| + |Gy| using the
// Sobel kernels.
func Sobel(b *raster.Buffer, opts ...conv.Option) (*raster.Buffer, error) {
	return Gradient(b, SobelX, SobelY, opts...)
}

// Prewitt returns |Gx| + |Gy| using the Prewitt kernels.
func Prewitt(b *raster.Buffer, opts ...conv.Option) (*raster.Buffer, error) {
	return Gradient(b, PrewittX, PrewittY, opts...)
}

// Gradient convolves b with gx and gy and combines the two passes as
// |Gx| + |Gy| per pixel.
func Gradient(b *raster.Buffer, gx, gy conv.Kernel, opts ...conv.Option) (*raster.Buffer, error) {
	x, err := conv.Convolve(b, gx, opts...)
	if err != nil {
		return nil, err
	}
	y, err := conv.Convolve(b, gy, opts...)
	if err != nil {
		return nil, err
	}

	ax, err := Abs(x)
	if err != nil {
		return nil, err
	}
	ay, err := Abs(y)
	if err != nil {
		return nil, err
	}
	return raster.Add(ax, ay)
}

// Abs returns the elementwise absolute value of b.
func Abs(b *raster.Buffer) (*raster.Buffer, error) {
	return raster.Abs(b)
}

// Threshold maps every sample strictly greater than t to 1 and all others to 0.
func Threshold(b *raster.Buffer, t float64) (*raster.Buffer, error) {
	if b.IsEmpty() {
		return nil, raster.ErrEmptyBuffer
	}
	return raster.Map(b, func(v float64) float64 {
		if v > t {
			return 1
		}
		return 0
	}), nil
}
