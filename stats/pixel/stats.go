package pixel

import (
	"math"

	"github.com/cwbudde/algo-img/img/core"
	"github.com/cwbudde/algo-img/img/raster"
)

// Stats holds the aggregate statistics of a buffer.
type Stats struct {
	Width    int
	Height   int
	Count    int
	Sum      float64
	Mean     float64
	Variance float64 // population variance
	StdDev   float64
	Min      float64
	MinX     int
	MinY     int
	Max      float64
	MaxX     int
	MaxY     int
	Range    float64 // max - min
}

// Sum returns the sum of all samples.
func Sum(b *raster.Buffer) (float64, error) {
	if b.IsEmpty() {
		return 0, raster.ErrEmptyBuffer
	}
	return core.KahanSum(b.Samples()), nil
}

// Average returns the mean sample value.
func Average(b *raster.Buffer) (float64, error) {
	s, err := Sum(b)
	if err != nil {
		return 0, err
	}
	return s / float64(b.Len()), nil
}

// Variance returns the population variance, the average of (x - mean)².
func Variance(b *raster.Buffer) (float64, error) {
	if b.IsEmpty() {
		return 0, raster.ErrEmptyBuffer
	}
	_, variance := meanVariance(b.Samples())
	return variance, nil
}

// StdDev returns the population standard deviation.
func StdDev(b *raster.Buffer) (float64, error) {
	v, err := Variance(b)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// meanVariance computes the mean and population variance of a non-empty
// slice in two passes.
func meanVariance(x []float64) (mean, variance float64) {
	n := float64(len(x))
	mean = core.KahanSum(x) / n

	var sumSq, comp float64
	for _, v := range x {
		d := v - mean
		y := d*d - comp
		t := sumSq + y
		comp = (t - sumSq) - y
		sumSq = t
	}
	return mean, sumSq / n
}

// Calculate computes all aggregate statistics in a single pass using
// Welford's online algorithm.
func Calculate(b *raster.Buffer) (Stats, error) {
	if b.IsEmpty() {
		return Stats{}, raster.ErrEmptyBuffer
	}

	w := b.Width()
	samples := b.Samples()

	var (
		mean, m2 float64
		sum, c   float64
		minVal   = samples[0]
		minPos   int
		maxVal   = samples[0]
		maxPos   int
	)

	for i, x := range samples {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)

		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t

		if x < minVal {
			minVal, minPos = x, i
		}
		if x > maxVal {
			maxVal, maxPos = x, i
		}
	}

	n := len(samples)
	variance := m2 / float64(n)

	return Stats{
		Width:    w,
		Height:   b.Height(),
		Count:    n,
		Sum:      sum,
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Min:      minVal,
		MinX:     minPos % w,
		MinY:     minPos / w,
		Max:      maxVal,
		MaxX:     maxPos % w,
		MaxY:     maxPos / w,
		Range:    maxVal - minVal,
	}, nil
}
