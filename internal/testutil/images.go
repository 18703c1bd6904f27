package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-img/img/raster"
)

func fromSamples(width, height int, s []float64) *raster.Buffer {
	b, err := raster.FromSamples(width, height, s)
	if err != nil {
		panic(err)
	}
	return b
}

// DeterministicNoise returns an image of uniform noise in [0, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, width, height int) *raster.Buffer {
	s := make([]float64, width*height)
	rng := rand.New(rand.NewSource(seed))
	for i := range s {
		s[i] = rng.Float64() * amplitude
	}
	return fromSamples(width, height, s)
}

// Constant returns an image where every pixel equals value.
func Constant(value float64, width, height int) *raster.Buffer {
	b := raster.New(width, height)
	b.Fill(value)
	return b
}

// Impulse returns a black image with a single pixel set to value.
func Impulse(width, height, x, y int, value float64) *raster.Buffer {
	b := raster.New(width, height)
	_ = b.Set(x, y, value)
	return b
}

// HorizontalRamp returns an image whose value equals the column index.
func HorizontalRamp(width, height int) *raster.Buffer {
	s := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s[y*width+x] = float64(x)
		}
	}
	return fromSamples(width, height, s)
}

// Gradient2D returns a smooth image mixing a ramp with a low-frequency
// sinusoid, in the 8-bit range.
func Gradient2D(width, height int) *raster.Buffer {
	s := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := 64 + 2*float64(x) + float64(y) + 40*math.Sin(float64(x+y)/5)
			s[y*width+x] = v
		}
	}
	return fromSamples(width, height, s)
}

// Checkerboard returns alternating lo/hi cells of the given edge length.
func Checkerboard(width, height, cell int, lo, hi float64) *raster.Buffer {
	if cell <= 0 {
		cell = 1
	}
	s := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/cell+y/cell)%2 == 0 {
				s[y*width+x] = lo
			} else {
				s[y*width+x] = hi
			}
		}
	}
	return fromSamples(width, height, s)
}
