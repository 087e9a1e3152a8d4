package newton

import (
	"image/color"
	"testing"
)

// threeRootParams is the reference configuration used by several tests:
// roots -1 (red), i (green), 1 (blue) over the viewport [-2,2]x[-2,2].
func threeRootParams() Parameters {
	p := DefaultParameters(0)
	p.Size = Size{Width: 100, Height: 100}
	p.Roots = []Root{
		{Value: -1, Color: color.RGBA{R: 255, A: 255}},
		{Value: 1i, Color: color.RGBA{G: 255, A: 255}},
		{Value: 1, Color: color.RGBA{B: 255, A: 255}},
	}
	p.MaxIterations = 50
	p.Limits = NewLimitsFrom(-2, 2, -2, 2)
	return p
}

// TestIterator_AtRoot: a point sitting exactly on a root converges
// immediately, to that root, with iteration count zero, and renders the
// root color at maximum brightness.
func TestIterator_AtRoot(t *testing.T) {
	p := threeRootParams()
	it := newIterator(&p)

	root, count, ok := it.run(-1)
	if !ok {
		t.Fatal("point at root did not converge")
	}
	if root != 0 || count != 0 {
		t.Errorf("got root %d after %d iterations, want root 0 after 0", root, count)
	}
	if c := it.colorFor(root, count, ok); c != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("color = %v, want full-brightness red", c)
	}
}

// TestIterator_NearRootConvergence: points within EPS of a true root
// classify to that root's index.
func TestIterator_NearRootConvergence(t *testing.T) {
	p := threeRootParams()
	it := newIterator(&p)

	for wantRoot, r := range p.Roots {
		z := r.Value + complex(EPS/4, 0)
		root, _, ok := it.run(z)
		if !ok {
			t.Errorf("point near root %d did not converge", wantRoot)
			continue
		}
		if root != wantRoot {
			t.Errorf("point near root %d classified as root %d", wantRoot, root)
		}
	}
}

// TestIterator_BasinConvergence: starting well inside a basin still reaches
// the nearest root within the budget.
func TestIterator_BasinConvergence(t *testing.T) {
	p := threeRootParams()
	it := newIterator(&p)

	root, count, ok := it.run(complex(-1.2, 0.05))
	if !ok {
		t.Fatal("basin point did not converge")
	}
	if root != 0 {
		t.Errorf("converged to root %d, want 0", root)
	}
	if count == 0 {
		t.Error("expected at least one iteration from a non-root start")
	}
	if count >= p.MaxIterations {
		t.Errorf("count %d exceeds budget %d", count, p.MaxIterations)
	}
}

// TestIterator_TieBreak: when the terminal value lies within tolerance of
// several roots, the lowest index wins by scan order. This mirrors the
// original behavior and is deliberately kept explicit.
func TestIterator_TieBreak(t *testing.T) {
	p := DefaultParameters(0)
	p.Roots = []Root{
		{Value: 0, Color: Palette[0]},
		{Value: complex(EPS/2, 0), Color: Palette[1]},
	}
	p.MaxIterations = 50
	it := newIterator(&p)

	root, _, ok := it.run(0)
	if !ok {
		t.Fatal("did not converge")
	}
	if root != 0 {
		t.Errorf("tie broke to root %d, want lowest index 0", root)
	}
}

// TestIterator_UnknownFixedPoint: a fixed point that matches no known root
// counts as non-convergence instead of crashing or misclassifying.
func TestIterator_UnknownFixedPoint(t *testing.T) {
	p := threeRootParams()
	p.Damping = 0 // forces z' == z everywhere
	it := newIterator(&p)

	_, _, ok := it.run(complex(0.3, 0.4))
	if ok {
		t.Error("fixed point away from all roots must not classify")
	}
	if c := it.colorFor(0, 0, false); c != Background {
		t.Errorf("exhausted color = %v, want background", c)
	}
}

// TestIterator_Exhaustion: a tiny budget leaves slow pixels unconverged.
func TestIterator_Exhaustion(t *testing.T) {
	p := threeRootParams()
	p.MaxIterations = 1
	it := newIterator(&p)

	if _, _, ok := it.run(complex(1.9, 1.9)); ok {
		t.Error("distant point converged within a single iteration")
	}
}

// TestIterator_AllocFree guards the per-pixel hot path against allocations.
func TestIterator_AllocFree(t *testing.T) {
	p := threeRootParams()
	it := newIterator(&p)

	allocs := testing.AllocsPerRun(100, func() {
		it.run(complex(0.7, -0.3))
	})
	if allocs != 0 {
		t.Errorf("iterator allocates %.1f times per pixel, want 0", allocs)
	}
}

// TestConvergenceSpeedShading: later convergence renders strictly darker.
func TestConvergenceSpeedShading(t *testing.T) {
	p := threeRootParams()
	it := newIterator(&p)

	fast := it.colorFor(2, 5, true)  // factor 100: unchanged blue
	slow := it.colorFor(2, 20, true) // factor 250: darkened
	if fast.B <= slow.B {
		t.Errorf("slow convergence (B=%d) not darker than fast (B=%d)", slow.B, fast.B)
	}
	if slow.R != 0 || slow.G != 0 {
		t.Errorf("darkening leaked into other channels: %v", slow)
	}
}
