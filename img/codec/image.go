package codec

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/cwbudde/algo-img/img/raster"
)

// Format identifies a standard image container.
type Format int

const (
	FormatPNG Format = iota
	FormatBMP
	FormatTIFF
)

// String returns the format's lower-case name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Decode reads a PNG, BMP or TIFF image and converts it to greyscale
// samples in [0, 255].
func Decode(r io.Reader) (*raster.Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return FromImage(img), nil
}

// FromImage converts img to a buffer. Images that are not already
// [image.Gray] are converted through the standard grey color model.
func FromImage(img image.Image) *raster.Buffer {
	bounds := img.Bounds()
	gray, ok := img.(*image.Gray)
	if !ok {
		gray = image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(gray, gray.Bounds(), img, bounds.Min, draw.Src)
		bounds = gray.Bounds()
	}

	w, h := bounds.Dx(), bounds.Dy()
	out := raster.New(w, h)
	for y := 0; y < h; y++ {
		row := gray.Pix[gray.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
		for x := 0; x < w; x++ {
			_ = out.Set(x, y, float64(row[x]))
		}
	}
	return out
}

// ToImage converts b to an 8-bit greyscale image, truncating and clamping
// samples to [0, 255].
func ToImage(b *raster.Buffer) (*image.Gray, error) {
	if b.IsEmpty() {
		return nil, raster.ErrEmptyBuffer
	}
	img := image.NewGray(image.Rect(0, 0, b.Width(), b.Height()))
	for i, v := range b.Samples() {
		img.Pix[i] = toGrey(v)
	}
	return img, nil
}

// Encode writes b in the given container format.
func Encode(w io.Writer, b *raster.Buffer, f Format) error {
	img, err := ToImage(b)
	if err != nil {
		return err
	}

	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("codec: encode %v: %w", f, err)
	}
	return nil
}
