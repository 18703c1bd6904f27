package filter

import (
	"testing"

	"github.com/cwbudde/algo-img/img/conv"
	"github.com/cwbudde/algo-img/img/raster"
	"github.com/cwbudde/algo-img/internal/testutil"
)

func TestSharpenDefinition(t *testing.T) {
	in := testutil.DeterministicNoise(5, 255, 10, 8)
	const amount = 1.5

	got, err := Sharpen(in, amount)
	if err != nil {
		t.Fatalf("Sharpen: %v", err)
	}

	blurred, err := Gaussian(in)
	if err != nil {
		t.Fatalf("Gaussian: %v", err)
	}
	detail, err := raster.Sub(in, blurred)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	want, err := raster.Add(in, raster.Scale(detail, amount))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	testutil.RequireBufferNearlyEqual(t, got, want, 1e-9)
}

func TestSharpenZeroAmountIsIdentity(t *testing.T) {
	in := testutil.Gradient2D(7, 7)
	out, err := Sharpen(in, 0)
	if err != nil {
		t.Fatalf("Sharpen: %v", err)
	}
	if !out.Equal(in) {
		t.Fatal("Sharpen(b, 0) changed the image")
	}
}

func TestSharpenerWithPool(t *testing.T) {
	pool := raster.NewPool()
	s := NewSharpener(2, pool, conv.WithStrategy(conv.StrategyFFT))
	in := testutil.DeterministicNoise(6, 255, 9, 9)

	want, err := Sharpen(in, 2)
	if err != nil {
		t.Fatalf("Sharpen: %v", err)
	}
	for i := 0; i < 3; i++ {
		got, err := s.Apply(in)
		if err != nil {
			t.Fatalf("Apply: %v", err)
		}
		testutil.RequireBufferNearlyEqual(t, got, want, 1e-7)
	}
}

func TestSharpenConstantField(t *testing.T) {
	in := testutil.Constant(42, 4, 4)
	out, err := Sharpen(in, 3)
	if err != nil {
		t.Fatalf("Sharpen: %v", err)
	}
	if !out.Equal(in) {
		t.Fatalf("Sharpen(constant) = %v", out.Samples())
	}
}
