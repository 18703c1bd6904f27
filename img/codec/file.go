package codec

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-img/img/raster"
)

type kind int

const (
	kindPGM kind = iota
	kindRaw
	kindASCII
	kindPNG
	kindBMP
	kindTIFF
)

var extensions = map[string]kind{
	".pgm":   kindPGM,
	".raw":   kindRaw,
	".txt":   kindASCII,
	".ascii": kindASCII,
	".png":   kindPNG,
	".bmp":   kindBMP,
	".tif":   kindTIFF,
	".tiff":  kindTIFF,
}

func kindOf(path string) (kind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	k, ok := extensions[ext]
	if !ok {
		return 0, fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
	return k, nil
}

// Load reads the image at path, choosing the decoder by file extension.
// Raw files need [WithRawSize].
func Load(path string, opts ...Option) (*raster.Buffer, error) {
	k, err := kindOf(path)
	if err != nil {
		return nil, err
	}
	cfg := ApplyOptions(opts...)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("codec: load: %w", err)
	}
	defer f.Close()

	var b *raster.Buffer
	switch k {
	case kindPGM:
		b, err = ReadPGM(f)
	case kindRaw:
		b, err = ReadRaw(f, cfg.RawWidth, cfg.RawHeight)
	case kindASCII:
		b, err = ReadASCII(f)
	default:
		b, err = Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Save writes b to path, choosing the encoder by file extension. PGM files
// are written in the plain P2 form.
func Save(path string, b *raster.Buffer, opts ...Option) (err error) {
	k, err := kindOf(path)
	if err != nil {
		return err
	}
	if b.IsEmpty() {
		return raster.ErrEmptyBuffer
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("codec: save: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("codec: save: %w", cerr)
		}
	}()

	return write(f, b, k, opts)
}

func write(w io.Writer, b *raster.Buffer, k kind, opts []Option) error {
	switch k {
	case kindPGM:
		return WritePGM(w, b, opts...)
	case kindRaw:
		return WriteRaw(w, b)
	case kindASCII:
		return WriteASCII(w, b)
	case kindPNG:
		return Encode(w, b, FormatPNG)
	case kindBMP:
		return Encode(w, b, FormatBMP)
	default:
		return Encode(w, b, FormatTIFF)
	}
}
