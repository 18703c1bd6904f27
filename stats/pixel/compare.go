package pixel

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-img/img/core"
	"github.com/cwbudde/algo-img/img/raster"
)

func checkPair(a, b *raster.Buffer) error {
	if a.IsEmpty() || b.IsEmpty() {
		return raster.ErrEmptyBuffer
	}
	if !a.SameShape(b) {
		return fmt.Errorf("%w: %v vs %v", raster.ErrDimensionMismatch, a, b)
	}
	return nil
}

// SAE returns the sum of absolute differences between corresponding pixels.
func SAE(a, b *raster.Buffer) (float64, error) {
	if err := checkPair(a, b); err != nil {
		return 0, err
	}

	as, bs := a.Samples(), b.Samples()
	diff := make([]float64, len(as))
	for i := range as {
		diff[i] = math.Abs(as[i] - bs[i])
	}
	return core.KahanSum(diff), nil
}

// MAE returns the mean absolute difference, SAE divided by the pixel count.
func MAE(a, b *raster.Buffer) (float64, error) {
	sae, err := SAE(a, b)
	if err != nil {
		return 0, err
	}
	return sae / float64(a.Len()), nil
}

// NCC returns the normalised cross-correlation of a and b.
func NCC(a, b *raster.Buffer) (float64, error) {
	if err := checkPair(a, b); err != nil {
		return 0, err
	}

	ca := centered(a.Samples())
	cb := centered(b.Samples())

	n := float64(len(ca))
	sa := math.Sqrt(vecmath.DotProduct(ca, ca) / n)
	sb := math.Sqrt(vecmath.DotProduct(cb, cb) / n)
	if sa == 0 || sb == 0 {
		return 0, fmt.Errorf("%w: zero standard deviation (%v, %v)", raster.ErrDegenerateInput, sa, sb)
	}

	ncc := vecmath.DotProduct(ca, cb) / n / (sa * sb)

	// Round-off can push perfectly correlated inputs just past ±1.
	return core.Clamp(ncc, -1, 1), nil
}

// centered subtracts the mean from x in place and returns it.
func centered(x []float64) []float64 {
	mean := core.KahanSum(x) / float64(len(x))
	for i := range x {
		x[i] -= mean
	}
	return x
}
