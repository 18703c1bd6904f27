// Package filter implements the named 3×3 image filters: mean, gaussian,
// laplacian, sobel and prewitt edge detectors, unsharp-mask sharpening,
// thresholding and the median filter.
//
// Linear filters are thin wrappers around [conv.Convolve] with a fixed kernel
// and, for the blurs, a divisor that normalises the kernel to unit gain:
//
//	Mean       all ones                 ÷ 9
//	Gaussian   1 2 1 / 2 4 2 / 1 2 1    ÷ 16
//	Laplacian  0 1 0 / 1 -4 1 / 0 1 0
//
// Sobel and Prewitt run a horizontal and a vertical gradient pass and combine
// them as |Gx| + |Gy|. Median sorts each clamp-to-edge neighbourhood and keeps
// the 5th of 9 values (index 4).
//
// Every filter returns a new buffer and fails with [raster.ErrEmptyBuffer] for
// an empty input. Options are forwarded to the convolution engine, so
//
//	out, err := filter.Sobel(img, conv.WithStrategy(conv.StrategyFFT))
//
// computes the edge map through the FFT path.
package filter
