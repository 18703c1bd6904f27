// Package raster provides the single-channel pixel buffer shared by every
// image package in this module, together with the elementwise collaborators
// built on top of it (arithmetic, region of interest, normalisation,
// inversion and blending).
//
// A [Buffer] owns a width×height slice of float64 samples stored row-major,
// index = y*width + x. Buffers have value semantics: constructors and
// [Buffer.Clone] deep-copy, [Buffer.Samples] returns a copy, and no function in
// this module ever hands out a slice that aliases a buffer's storage. The zero
// value is an empty buffer.
//
// # Errors
//
// All packages of the module report failures with the sentinel errors declared
// here, wrapped with context where useful. Match them with [errors.Is]:
//
//	if errors.Is(err, raster.ErrEmptyBuffer) { ... }
//
// A function that returns an error never leaves its receiver or arguments
// partially modified.
package raster
