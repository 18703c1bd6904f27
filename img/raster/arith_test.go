package raster

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustBuffer(t *testing.T, w, h int, s ...float64) *Buffer {
	t.Helper()
	b, err := FromSamples(w, h, s)
	if err != nil {
		t.Fatalf("FromSamples: %v", err)
	}
	return b
}

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestAddSub(t *testing.T) {
	a := mustBuffer(t, 2, 2, 1, 2, 3, 4)
	b := mustBuffer(t, 2, 2, 10, 20, 30, 40)

	sum, err := Add(a, b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if diff := cmp.Diff([]float64{11, 22, 33, 44}, sum.Samples(), approx); diff != "" {
		t.Errorf("Add mismatch (-want +got):\n%s", diff)
	}

	diff, err := Sub(b, a)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if d := cmp.Diff([]float64{9, 18, 27, 36}, diff.Samples(), approx); d != "" {
		t.Errorf("Sub mismatch (-want +got):\n%s", d)
	}

	if !cmp.Equal(a.Samples(), []float64{1, 2, 3, 4}) {
		t.Errorf("Add/Sub mutated an operand: %v", a.Samples())
	}
}

func TestBinaryErrors(t *testing.T) {
	a := mustBuffer(t, 2, 2, 1, 2, 3, 4)
	b := mustBuffer(t, 4, 1, 1, 2, 3, 4)

	if _, err := Add(a, b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Add: expected ErrDimensionMismatch, got %v", err)
	}
	if _, err := Sub(a, New(0, 0)); !errors.Is(err, ErrEmptyBuffer) {
		t.Errorf("Sub: expected ErrEmptyBuffer, got %v", err)
	}
	if err := a.AddInPlace(b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("AddInPlace: expected ErrDimensionMismatch, got %v", err)
	}
	if !cmp.Equal(a.Samples(), []float64{1, 2, 3, 4}) {
		t.Errorf("failed AddInPlace mutated receiver: %v", a.Samples())
	}
}

func TestInPlace(t *testing.T) {
	a := mustBuffer(t, 2, 1, 1, 2)
	b := mustBuffer(t, 2, 1, 3, 5)

	if err := a.AddInPlace(b); err != nil {
		t.Fatalf("AddInPlace: %v", err)
	}
	if err := a.SubInPlace(mustBuffer(t, 2, 1, 1, 1)); err != nil {
		t.Fatalf("SubInPlace: %v", err)
	}
	a.AddScalarInPlace(1)
	a.ScaleInPlace(2)
	if err := a.DivideInPlace(4); err != nil {
		t.Fatalf("DivideInPlace: %v", err)
	}
	// ((1+3-1+1)*2)/4 = 2, ((2+5-1+1)*2)/4 = 3.5
	if d := cmp.Diff([]float64{2, 3.5}, a.Samples(), approx); d != "" {
		t.Errorf("in-place chain mismatch (-want +got):\n%s", d)
	}
}

func TestScalarOps(t *testing.T) {
	a := mustBuffer(t, 3, 1, -1, 0, 2)

	tests := []struct {
		name string
		got  *Buffer
		want []float64
	}{
		{"AddScalar", AddScalar(a, 2), []float64{1, 2, 4}},
		{"SubScalar", SubScalar(a, 1), []float64{-2, -1, 1}},
		{"Scale", Scale(a, 3), []float64{-3, 0, 6}},
		{"ShiftScale", ShiftScale(a, 1, 2), []float64{0, 2, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := cmp.Diff(tt.want, tt.got.Samples(), approx); d != "" {
				t.Errorf("mismatch (-want +got):\n%s", d)
			}
		})
	}

	if !cmp.Equal(a.Samples(), []float64{-1, 0, 2}) {
		t.Fatalf("scalar ops mutated their input: %v", a.Samples())
	}
}

func TestDivide(t *testing.T) {
	a := mustBuffer(t, 2, 1, 9, 18)
	out, err := Divide(a, 9)
	if err != nil {
		t.Fatalf("Divide: %v", err)
	}
	if d := cmp.Diff([]float64{1, 2}, out.Samples(), approx); d != "" {
		t.Errorf("Divide mismatch (-want +got):\n%s", d)
	}

	if _, err := Divide(a, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if err := a.DivideInPlace(0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if !cmp.Equal(a.Samples(), []float64{9, 18}) {
		t.Errorf("failed DivideInPlace mutated receiver: %v", a.Samples())
	}
}

func TestMap(t *testing.T) {
	a := mustBuffer(t, 2, 1, 1, 2)
	out := Map(a, func(v float64) float64 { return v * v })
	if !cmp.Equal(out.Samples(), []float64{1, 4}) {
		t.Fatalf("Map = %v", out.Samples())
	}
}
