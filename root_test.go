package newton

import (
	"math/cmplx"
	"testing"
)

func TestEvaluate(t *testing.T) {
	roots := []Root{
		{Value: 1},
		{Value: -1},
	}

	tests := []struct {
		name string
		z    complex128
		want complex128
	}{
		{"at root", 1, 0},
		{"origin", 0, -1},           // (0-1)(0+1) = -1
		{"z=2", 2, 3},               // (2-1)(2+1) = 3
		{"imaginary", 1i, -2},       // (i-1)(i+1) = i^2-1 = -2
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.z, roots); cmplx.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.z, got, tt.want)
			}
		})
	}

	if got := Evaluate(5, nil); got != 1 {
		t.Errorf("Evaluate with no roots = %v, want 1", got)
	}
}

// TestDerivative compares the finite-difference derivative against the
// analytic derivative of z^2 - 1. The deliberate discretization keeps them
// from agreeing exactly, but they must be close.
func TestDerivative(t *testing.T) {
	roots := []Root{{Value: 1}, {Value: -1}}

	for _, z := range []complex128{0, 3, -2 + 1i, 0.5i} {
		got := Derivative(z, roots)
		want := 2 * z
		if cmplx.Abs(got-want) > 1e-4 {
			t.Errorf("Derivative(%v) = %v, want about %v", z, got, want)
		}
	}
}

func TestEquidistantRoots(t *testing.T) {
	roots := EquidistantRoots(4)
	if len(roots) != 4 {
		t.Fatalf("got %d roots, want 4", len(roots))
	}
	for i, r := range roots {
		if d := cmplx.Abs(r.Value) - 1; d > 1e-12 || d < -1e-12 {
			t.Errorf("root %d has magnitude %g, want 1", i, cmplx.Abs(r.Value))
		}
		if r.Color != Palette[i] {
			t.Errorf("root %d color = %v, want palette entry %v", i, r.Color, Palette[i])
		}
	}

	// First root sits on the positive real axis.
	if cmplx.Abs(roots[0].Value-1) > 1e-12 {
		t.Errorf("first root = %v, want 1", roots[0].Value)
	}

	if got := EquidistantRoots(0); len(got) != 0 {
		t.Errorf("EquidistantRoots(0) returned %d roots", len(got))
	}
}
