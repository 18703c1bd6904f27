package codec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/cwbudde/algo-img/img/raster"
)

const (
	pgmMaxVal = 255

	// readChunk caps the sample capacity reserved before any pixel data
	// has been read.
	readChunk = 1 << 16
)

// pixelCount returns width*height after checking that the image and its
// encoded size of bytesPerSample bytes per pixel fit in an int.
func pixelCount(width, height, bytesPerSample int) (int, error) {
	if err := raster.CheckSize(width, height); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	n := width * height
	if n > math.MaxInt/bytesPerSample {
		return 0, fmt.Errorf("%w: %dx%d image too large", ErrInvalidFormat, width, height)
	}
	return n, nil
}

// ReadPGM decodes a P2 (plain) or P5 (binary) portable greymap. Comments
// starting with '#' may appear anywhere in the header. Binary files with
// maxval above 255 carry 16-bit big-endian samples. Sample values are
// returned as read, without scaling by maxval.
func ReadPGM(r io.Reader) (*raster.Buffer, error) {
	br := bufio.NewReader(r)
	h := headerScanner{r: br}

	magic, err := h.token()
	if err != nil {
		return nil, err
	}
	if magic != "P2" && magic != "P5" {
		return nil, fmt.Errorf("%w: pgm magic %q", ErrUnsupportedFormat, magic)
	}

	width, err := h.positive("width")
	if err != nil {
		return nil, err
	}
	height, err := h.positive("height")
	if err != nil {
		return nil, err
	}
	maxVal, err := h.positive("maxval")
	if err != nil {
		return nil, err
	}
	if maxVal > math.MaxUint16 {
		return nil, fmt.Errorf("%w: pgm maxval %d", ErrInvalidFormat, maxVal)
	}

	n, err := pixelCount(width, height, 2)
	if err != nil {
		return nil, err
	}

	// Samples are read as they arrive so a forged header cannot force a
	// large allocation ahead of the data.
	samples := make([]float64, 0, min(n, readChunk))
	if magic == "P2" {
		for len(samples) < n {
			v, err := h.number("sample")
			if err != nil {
				return nil, err
			}
			samples = append(samples, float64(v))
		}
		return raster.FromSamples(width, height, samples)
	}

	// A single whitespace byte separates the header from binary data; the
	// header scanner has already consumed it.
	bytesPerSample := 1
	if maxVal > 0xff {
		bytesPerSample = 2
	}
	data, err := io.ReadAll(io.LimitReader(br, int64(n*bytesPerSample)))
	if err != nil {
		return nil, fmt.Errorf("codec: read pgm: %w", err)
	}
	if len(data) != n*bytesPerSample {
		return nil, fmt.Errorf("%w: pgm pixel data: %d bytes, want %d", ErrInvalidFormat, len(data), n*bytesPerSample)
	}
	if bytesPerSample == 1 {
		for _, v := range data {
			samples = append(samples, float64(v))
		}
	} else {
		for i := 0; i < len(data); i += 2 {
			samples = append(samples, float64(binary.BigEndian.Uint16(data[i:])))
		}
	}
	return raster.FromSamples(width, height, samples)
}

// WritePGM encodes b as a plain (P2) greymap with maxval 255. Samples are
// truncated toward zero and clamped to [0, 255].
func WritePGM(w io.Writer, b *raster.Buffer, opts ...Option) error {
	if b.IsEmpty() {
		return raster.ErrEmptyBuffer
	}
	cfg := ApplyOptions(opts...)

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "P2")
	if cfg.Comment != "" {
		fmt.Fprintf(bw, "# %s\n", cfg.Comment)
	}
	fmt.Fprintf(bw, "%d %d\n%d\n", b.Width(), b.Height(), pgmMaxVal)

	width := b.Width()
	for i, v := range b.Samples() {
		bw.WriteString(strconv.Itoa(int(toGrey(v))))
		if (i+1)%width == 0 {
			bw.WriteByte('\n')
		} else {
			bw.WriteByte(' ')
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("codec: write pgm: %w", err)
	}
	return nil
}

// WritePGMBinary encodes b as a binary (P5) greymap with maxval 255, using
// the same sample conversion as WritePGM.
func WritePGMBinary(w io.Writer, b *raster.Buffer, opts ...Option) error {
	if b.IsEmpty() {
		return raster.ErrEmptyBuffer
	}
	cfg := ApplyOptions(opts...)

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "P5")
	if cfg.Comment != "" {
		fmt.Fprintf(bw, "# %s\n", cfg.Comment)
	}
	fmt.Fprintf(bw, "%d %d\n%d\n", b.Width(), b.Height(), pgmMaxVal)
	for _, v := range b.Samples() {
		bw.WriteByte(toGrey(v))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("codec: write pgm: %w", err)
	}
	return nil
}

// toGrey truncates v toward zero and clamps it to a byte. NaN maps to 0.
func toGrey(v float64) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= pgmMaxVal:
		return pgmMaxVal
	default:
		return uint8(v)
	}
}

// headerScanner splits PGM header and plain-format data into tokens,
// skipping whitespace and '#' comments.
type headerScanner struct {
	r *bufio.Reader
}

func (h *headerScanner) token() (string, error) {
	var tok []byte
	for {
		c, err := h.r.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", fmt.Errorf("%w: pgm: unexpected end of data", ErrInvalidFormat)
		}
		switch {
		case c == '#' && len(tok) == 0:
			if _, err := h.r.ReadString('\n'); err != nil {
				return "", fmt.Errorf("%w: pgm: unterminated comment", ErrInvalidFormat)
			}
		case isSpace(c):
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, c)
		}
	}
}

func (h *headerScanner) number(what string) (int, error) {
	tok, err := h.token()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: pgm %s %q", ErrInvalidFormat, what, tok)
	}
	return n, nil
}

func (h *headerScanner) positive(what string) (int, error) {
	n, err := h.number(what)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: pgm %s is zero", ErrInvalidFormat, what)
	}
	return n, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
