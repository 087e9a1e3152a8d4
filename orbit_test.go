package newton

import (
	"image"
	"testing"
)

// TestTrace_AtRoot: with an odd-sized canvas the pixel (25,50) maps exactly
// onto the root at -1, so the orbit is the single starting pixel.
func TestTrace_AtRoot(t *testing.T) {
	p := threeRootParams()
	p.Size = Size{Width: 101, Height: 101}

	orbit := Trace(p, image.Pt(25, 50))
	if len(orbit) != 1 {
		t.Fatalf("orbit at a root has %d points, want 1", len(orbit))
	}
	if orbit[0] != image.Pt(25, 50) {
		t.Errorf("orbit[0] = %v, want the starting pixel", orbit[0])
	}
}

func TestTrace_Converges(t *testing.T) {
	p := threeRootParams()
	p.Size = Size{Width: 101, Height: 101}

	orbit := Trace(p, image.Pt(10, 10))
	if len(orbit) < 2 {
		t.Fatalf("orbit has %d points, want at least the start and one step", len(orbit))
	}
	if len(orbit) > p.MaxIterations+1 {
		t.Fatalf("orbit has %d points, exceeding the iteration budget %d",
			len(orbit), p.MaxIterations)
	}

	// The tail of a converged orbit sits next to a root pixel.
	last := PixelToComplex(orbit[len(orbit)-1], p.Size, p.Limits)
	it := newIterator(&p)
	if _, _, ok := it.run(last); !ok {
		t.Errorf("orbit tail %v did not land in any basin", last)
	}
}

// TestTrace_AlwaysIncludesStart: even a degenerate iteration that cannot
// move still reports the starting pixel.
func TestTrace_AlwaysIncludesStart(t *testing.T) {
	p := threeRootParams()
	p.Damping = 0

	orbit := Trace(p, image.Pt(10, 10))
	if len(orbit) != 1 || orbit[0] != image.Pt(10, 10) {
		t.Errorf("orbit = %v, want just the starting pixel", orbit)
	}
}

// TestTrace_DoesNotMutateParams: tracing clamps a private copy.
func TestTrace_DoesNotMutateParams(t *testing.T) {
	p := threeRootParams()
	p.MaxIterations = IterationCap + 1000
	Trace(p, image.Pt(10, 10))
	if p.MaxIterations != IterationCap+1000 {
		t.Errorf("Trace clamped the caller's parameters: MaxIterations = %d", p.MaxIterations)
	}
}
