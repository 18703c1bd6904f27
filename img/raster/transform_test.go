package raster

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAbs(t *testing.T) {
	a := mustBuffer(t, 3, 1, -2, 0, 3)
	out, err := Abs(a)
	if err != nil {
		t.Fatalf("Abs: %v", err)
	}
	if !cmp.Equal(out.Samples(), []float64{2, 0, 3}) {
		t.Fatalf("Abs = %v", out.Samples())
	}
	if _, err := Abs(New(0, 0)); !errors.Is(err, ErrEmptyBuffer) {
		t.Errorf("expected ErrEmptyBuffer, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	a := mustBuffer(t, 3, 1, 10, 15, 20)
	out, err := Normalize(a)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if d := cmp.Diff([]float64{0, 0.5, 1}, out.Samples(), approx); d != "" {
		t.Errorf("Normalize mismatch (-want +got):\n%s", d)
	}

	if _, err := Normalize(mustBuffer(t, 2, 1, 3, 3)); !errors.Is(err, ErrDegenerateInput) {
		t.Errorf("expected ErrDegenerateInput, got %v", err)
	}
	if _, err := Normalize(New(0, 0)); !errors.Is(err, ErrEmptyBuffer) {
		t.Errorf("expected ErrEmptyBuffer, got %v", err)
	}
}

func TestInvert(t *testing.T) {
	a := mustBuffer(t, 3, 1, 10, 12, 20)
	out, err := Invert(a)
	if err != nil {
		t.Fatalf("Invert: %v", err)
	}
	if d := cmp.Diff([]float64{20, 18, 10}, out.Samples(), approx); d != "" {
		t.Errorf("Invert mismatch (-want +got):\n%s", d)
	}

	c := mustBuffer(t, 2, 1, 4, 4)
	out, err = Invert(c)
	if err != nil || !out.Equal(c) {
		t.Errorf("Invert(constant) = %v, %v; want unchanged", out.Samples(), err)
	}
}

func TestBlend(t *testing.T) {
	a := mustBuffer(t, 2, 1, 0, 10)
	b := mustBuffer(t, 2, 1, 10, 0)
	out, err := Blend(a, b, 0.25)
	if err != nil {
		t.Fatalf("Blend: %v", err)
	}
	if d := cmp.Diff([]float64{2.5, 7.5}, out.Samples(), approx); d != "" {
		t.Errorf("Blend mismatch (-want +got):\n%s", d)
	}
	if _, err := Blend(a, New(1, 1), 0.5); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestROI(t *testing.T) {
	a := mustBuffer(t, 3, 3,
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)

	inner, err := ROI(a, 1, 1, 2, 2)
	if err != nil {
		t.Fatalf("ROI: %v", err)
	}
	if !cmp.Equal(inner.Samples(), []float64{5, 6, 8, 9}) {
		t.Errorf("ROI(1,1,2,2) = %v", inner.Samples())
	}

	// The part of the region past the right and bottom edges stays black.
	overhang, err := ROI(a, 2, 2, 2, 2)
	if err != nil {
		t.Fatalf("ROI: %v", err)
	}
	if !cmp.Equal(overhang.Samples(), []float64{9, 0, 0, 0}) {
		t.Errorf("ROI(2,2,2,2) = %v", overhang.Samples())
	}

	if _, err := ROI(a, 0, 0, -1, 2); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
