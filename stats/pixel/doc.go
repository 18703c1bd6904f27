// Package pixel computes aggregate statistics of a greyscale buffer and
// pairwise comparison metrics between two buffers of the same shape.
//
// Aggregates use population formulas (divide by N). Sums are Kahan
// compensated and the variance is computed in two passes around the mean, so
// images with a large DC offset keep their precision.
//
// Comparison metrics:
//
//   - SAE: sum of absolute errors, Σ|a-b|.
//   - MAE: mean absolute error, SAE/N.
//   - NCC: normalised cross-correlation, (1/N) Σ (a-ā)(b-b̄) / (σa σb), in [-1, 1].
//
// NCC is invariant to positive affine intensity changes, NCC(a, k*a+c) = 1 for
// k > 0, and flips sign for k < 0. It is undefined for a constant image and
// reports [raster.ErrDegenerateInput] in that case.
package pixel
