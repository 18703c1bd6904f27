package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-img/img/raster"
)

// ReadASCII decodes a matrix of whitespace-separated numbers, one image row
// per line. Blank lines are skipped; all rows must have the same length.
func ReadASCII(r io.Reader) (*raster.Buffer, error) {
	var (
		samples []float64
		width   int
		height  int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if height == 0 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, fmt.Errorf("%w: ascii line %d has %d values, want %d", ErrInvalidFormat, line, len(fields), width)
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: ascii line %d: %q", ErrInvalidFormat, line, f)
			}
			samples = append(samples, v)
		}
		height++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("codec: read ascii: %w", err)
	}
	if height == 0 {
		return nil, fmt.Errorf("%w: ascii: no data", ErrInvalidFormat)
	}
	return raster.FromSamples(width, height, samples)
}

// WriteASCII encodes b as space-separated rows, one per line, using the
// shortest representation that reads back to the same float64.
func WriteASCII(w io.Writer, b *raster.Buffer) error {
	if b.IsEmpty() {
		return raster.ErrEmptyBuffer
	}

	bw := bufio.NewWriter(w)
	width := b.Width()
	for i, v := range b.Samples() {
		bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		if (i+1)%width == 0 {
			bw.WriteByte('\n')
		} else {
			bw.WriteByte(' ')
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("codec: write ascii: %w", err)
	}
	return nil
}
