// Package conv applies fixed 3×3 kernels to greyscale buffers.
//
// Every output pixel (x, y) is the weighted sum of the 3×3 neighbourhood
// centred on (x, y):
//
//	out(x, y) = Σ k[kr*3+kc] · in(x+kc-1, y+kr-1)
//
// Neighbour coordinates that fall outside the image are clamped to the
// nearest edge, each axis independently (clamp-to-edge, also called
// replicate). The output always has the dimensions of the input and no
// normalisation is applied unless requested with [WithDivisor].
//
// # Usage
//
//	out, err := conv.Convolve(img, conv.Kernel{1, 2, 1, 2, 4, 2, 1, 2, 1}, conv.WithDivisor(16))
//
// # Strategies
//
// Two implementations produce the same result within floating point round-off:
//
//   - StrategyDirect: spatial sum over the neighbourhood, 9 multiply-adds per pixel.
//   - StrategyFFT: the image is edge-padded by one pixel, transformed with a
//     2-D FFT built from row and column passes, multiplied by the kernel
//     spectrum and transformed back.
//
// StrategyAuto resolves to StrategyDirect unless [WithFFTThreshold] is set.
// FFT round-off scales with the largest magnitude in the whole image and a
// single NaN spreads to every output pixel, so the FFT path is opt-in. It is
// kept as an independent cross-check and for benchmarking.
//
// The clamp-to-edge neighbourhood walk is exported as [ForEachNeighborhood] so
// order-statistic filters (median) share the exact same border policy.
package conv
