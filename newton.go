package newton

import (
	"image/color"
	"math/cmplx"
)

// EPS is the fixed-point and root-classification tolerance in plane units.
const EPS = 1e-6

// derivEps is the smallest derivative magnitude the iteration divides by.
// Below this the step is treated as non-convergent instead of producing
// infinities or NaNs.
const derivEps = 0x1p-52

// iterator runs the damped Newton iteration for one parameter snapshot.
// Root values and colors are unpacked into flat slices once per frame so the
// per-pixel loop stays allocation-free.
type iterator struct {
	roots   []complex128
	colors  []color.RGBA
	damping complex128
	maxIter int
}

func newIterator(p *Parameters) iterator {
	it := iterator{
		roots:   make([]complex128, len(p.Roots)),
		colors:  make([]color.RGBA, len(p.Roots)),
		damping: p.Damping,
		maxIter: p.MaxIterations,
	}
	for i, r := range p.Roots {
		it.roots[i] = r.Value
		it.colors[i] = r.Color
	}
	return it
}

// eval is Evaluate over the unpacked root values.
func (it *iterator) eval(z complex128) complex128 {
	result := complex(1, 0)
	for _, r := range it.roots {
		result *= z - r
	}
	return result
}

// next applies one damped Newton step. ok is false when the
// finite-difference derivative is too small to divide by.
func (it *iterator) next(z complex128) (_ complex128, ok bool) {
	fz := it.eval(z)
	dz := (it.eval(z+derivStep) - fz) / derivStep
	if cmplx.Abs(dz) < derivEps {
		return z, false
	}
	return z - it.damping*fz/dz, true
}

// run iterates from z until the fixed-point tolerance or the iteration
// budget is reached. On convergence it returns the index of the first root
// within EPS of the terminal value (scan order breaks ties toward the lowest
// index) and the number of completed steps. ok is false when the pixel is
// exhausted: budget spent, degenerate derivative, or a fixed point that
// matches no known root.
func (it *iterator) run(z complex128) (root, count int, ok bool) {
	for i := 0; i < it.maxIter; i++ {
		z1, stepped := it.next(z)
		if !stepped {
			return 0, 0, false
		}
		if cmplx.Abs(z1-z) < EPS {
			for r, rv := range it.roots {
				if cmplx.Abs(z1-rv) < EPS {
					return r, i, true
				}
			}
			// Fixed point reached but it is not one of the known roots.
			return 0, 0, false
		}
		z = z1
	}
	return 0, 0, false
}

// colorFor shades a classified pixel: the root color darkened by the
// iteration count, or the background for exhausted pixels.
func (it *iterator) colorFor(root, count int, ok bool) color.RGBA {
	if !ok {
		return Background
	}
	return Darken(it.colors[root], 50+10*count)
}
