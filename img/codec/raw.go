package codec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-img/img/raster"
)

const sampleSize = 8

// ReadRaw decodes width*height little-endian float64 samples. The stream
// must hold exactly that many bytes.
func ReadRaw(r io.Reader, width, height int) (*raster.Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: raw size %dx%d", raster.ErrInvalidArgument, width, height)
	}

	if err := raster.CheckSize(width, height); err != nil {
		return nil, err
	}
	n := width * height
	if n > math.MaxInt/sampleSize-1 {
		return nil, fmt.Errorf("%w: raw size %dx%d too large", raster.ErrInvalidArgument, width, height)
	}

	// One extra byte detects trailing data; reading through a limit keeps a
	// short stream from allocating the full size up front.
	want := n * sampleSize
	data, err := io.ReadAll(io.LimitReader(r, int64(want+1)))
	if err != nil {
		return nil, fmt.Errorf("codec: read raw: %w", err)
	}
	switch {
	case len(data) < want:
		return nil, fmt.Errorf("%w: raw: %d bytes, want %d", ErrInvalidFormat, len(data), want)
	case len(data) > want:
		return nil, fmt.Errorf("%w: raw: trailing data after %d bytes", ErrInvalidFormat, want)
	}

	samples := make([]float64, n)
	for i := range samples {
		samples[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*sampleSize:]))
	}
	return raster.FromSamples(width, height, samples)
}

// WriteRaw encodes the samples of b as little-endian float64 values in
// row-major order, without a header.
func WriteRaw(w io.Writer, b *raster.Buffer) error {
	if b.IsEmpty() {
		return raster.ErrEmptyBuffer
	}
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, b.Samples()); err != nil {
		return fmt.Errorf("codec: write raw: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("codec: write raw: %w", err)
	}
	return nil
}
