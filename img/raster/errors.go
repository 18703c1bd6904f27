package raster

import "errors"

// Error kinds reported by raster, conv, filter and the stats packages.
var (
	// ErrEmptyBuffer is returned when an operation needs at least one sample.
	ErrEmptyBuffer = errors.New("raster: empty buffer")

	// ErrOutOfBounds is returned for coordinates outside the buffer extent.
	ErrOutOfBounds = errors.New("raster: coordinate out of bounds")

	// ErrDimensionMismatch is returned when two buffers (or a buffer and a
	// sample slice) do not have the same shape.
	ErrDimensionMismatch = errors.New("raster: dimension mismatch")

	// ErrDegenerateInput is returned when a statistic is undefined for the
	// input, e.g. correlation of a constant image.
	ErrDegenerateInput = errors.New("raster: degenerate input")

	// ErrInvalidArgument is returned for invalid scalar arguments such as a
	// zero bin count or a zero divisor.
	ErrInvalidArgument = errors.New("raster: invalid argument")
)
