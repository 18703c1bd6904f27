package codec

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-img/img/raster"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	b := mustBuffer(t, 3, 2, []float64{0, 64, 128, 192, 255, 31})

	for _, f := range []Format{FormatPNG, FormatBMP, FormatTIFF} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, b, f); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if d := cmp.Diff(b.Samples(), got.Samples()); d != "" {
				t.Fatalf("mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestEncodeClamps(t *testing.T) {
	b := mustBuffer(t, 3, 1, []float64{-10, 99.9, 300})
	img, err := ToImage(b)
	if err != nil {
		t.Fatalf("ToImage: %v", err)
	}
	if d := cmp.Diff([]uint8{0, 99, 255}, img.Pix); d != "" {
		t.Fatalf("mismatch (-want +got):\n%s", d)
	}
}

func TestDecodeColour(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{255, 255, 255, 255})
	src.Set(1, 0, color.RGBA{0, 0, 0, 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if d := cmp.Diff([]float64{255, 0}, got.Samples()); d != "" {
		t.Fatalf("mismatch (-want +got):\n%s", d)
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range g.Pix {
		g.Pix[i] = uint8(i)
	}
	sub := g.SubImage(image.Rect(1, 2, 3, 4)).(*image.Gray)

	got := FromImage(sub)
	if d := cmp.Diff([]float64{9, 10, 13, 14}, got.Samples()); d != "" {
		t.Fatalf("mismatch (-want +got):\n%s", d)
	}
}

func TestImageErrors(t *testing.T) {
	if _, err := Decode(strings.NewReader("not an image")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Decode: got %v, want ErrUnsupportedFormat", err)
	}
	b := mustBuffer(t, 1, 1, []float64{1})
	if err := Encode(&bytes.Buffer{}, b, Format(42)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode: got %v, want ErrUnsupportedFormat", err)
	}
	if err := Encode(&bytes.Buffer{}, raster.New(0, 0), FormatPNG); !errors.Is(err, raster.ErrEmptyBuffer) {
		t.Errorf("Encode empty: got %v, want ErrEmptyBuffer", err)
	}
}
