package pixel

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-img/img/raster"
	"github.com/cwbudde/algo-img/internal/testutil"
)

func TestSAESelf(t *testing.T) {
	in := testutil.DeterministicNoise(2, 255, 13, 9)
	sae, err := SAE(in, in)
	if err != nil {
		t.Fatalf("SAE: %v", err)
	}
	if sae != 0 {
		t.Fatalf("SAE(B, B) = %v, want 0", sae)
	}
}

func TestSAEAndMAE(t *testing.T) {
	a, _ := raster.FromSamples(2, 2, []float64{1, 2, 3, 4})
	b, _ := raster.FromSamples(2, 2, []float64{2, 0, 3, 8})

	sae, err := SAE(a, b)
	if err != nil || sae != 7 {
		t.Fatalf("SAE() = %v, %v; want 7", sae, err)
	}
	mae, err := MAE(a, b)
	if err != nil || mae != 1.75 {
		t.Fatalf("MAE() = %v, %v; want 1.75", mae, err)
	}
}

func TestNCCSelfAndAffine(t *testing.T) {
	in := testutil.DeterministicNoise(4, 255, 23, 19)

	self, err := NCC(in, in)
	if err != nil {
		t.Fatalf("NCC: %v", err)
	}
	if math.Abs(self-1) > 1e-12 {
		t.Errorf("NCC(B, B) = %v, want 1", self)
	}

	affine := raster.AddScalar(raster.Scale(in, 3), 2)
	got, err := NCC(in, affine)
	if err != nil {
		t.Fatalf("NCC: %v", err)
	}
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("NCC(B, 3B+2) = %v, want 1", got)
	}

	negated := raster.Scale(in, -1)
	got, err = NCC(in, negated)
	if err != nil {
		t.Fatalf("NCC: %v", err)
	}
	if math.Abs(got+1) > 1e-9 {
		t.Errorf("NCC(B, -B) = %v, want -1", got)
	}

	inverted, err := raster.Invert(in)
	if err != nil {
		t.Fatalf("Invert: %v", err)
	}
	got, err = NCC(in, raster.AddScalar(raster.Scale(inverted, 3), 2))
	if err != nil {
		t.Fatalf("NCC: %v", err)
	}
	if math.Abs(got+1) > 1e-9 {
		t.Errorf("NCC(B, invert(B)*3+2) = %v, want -1", got)
	}
}

func TestNCCMatchesGonum(t *testing.T) {
	a := testutil.DeterministicNoise(7, 255, 16, 16)
	b := testutil.Gradient2D(16, 16)
	mix, err := raster.Blend(a, b, 0.7)
	if err != nil {
		t.Fatalf("Blend: %v", err)
	}

	got, err := NCC(a, mix)
	if err != nil {
		t.Fatalf("NCC: %v", err)
	}
	want := stat.Correlation(a.Samples(), mix.Samples(), nil)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("NCC() = %v, gonum Correlation = %v", got, want)
	}
}

func TestCompareErrors(t *testing.T) {
	a := testutil.DeterministicNoise(1, 1, 4, 4)
	b := testutil.DeterministicNoise(1, 1, 8, 2)
	empty := raster.New(0, 0)
	constant := testutil.Constant(3, 4, 4)

	if _, err := SAE(a, b); !errors.Is(err, raster.ErrDimensionMismatch) {
		t.Errorf("SAE: expected ErrDimensionMismatch, got %v", err)
	}
	if _, err := MAE(a, empty); !errors.Is(err, raster.ErrEmptyBuffer) {
		t.Errorf("MAE: expected ErrEmptyBuffer, got %v", err)
	}
	if _, err := NCC(empty, a); !errors.Is(err, raster.ErrEmptyBuffer) {
		t.Errorf("NCC: expected ErrEmptyBuffer, got %v", err)
	}
	if _, err := NCC(a, b); !errors.Is(err, raster.ErrDimensionMismatch) {
		t.Errorf("NCC: expected ErrDimensionMismatch, got %v", err)
	}
	if _, err := NCC(a, constant); !errors.Is(err, raster.ErrDegenerateInput) {
		t.Errorf("NCC: expected ErrDegenerateInput, got %v", err)
	}
	if _, err := NCC(constant, a); !errors.Is(err, raster.ErrDegenerateInput) {
		t.Errorf("NCC: expected ErrDegenerateInput, got %v", err)
	}
}
