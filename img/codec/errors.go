package codec

import "errors"

var (
	// ErrInvalidFormat is returned when input data does not follow the
	// expected layout of its format.
	ErrInvalidFormat = errors.New("codec: invalid format")

	// ErrUnsupportedFormat is returned for unknown file extensions or
	// format variants this package does not handle.
	ErrUnsupportedFormat = errors.New("codec: unsupported format")
)
