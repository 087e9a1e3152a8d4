package newton

import (
	"image/color"
	"math"
)

// Root is one root of the rendered polynomial together with the color used
// for pixels converging to it. The polynomial itself is represented
// implicitly as the product of (z - root) over all roots; root order is
// insertion order and doubles as the identity used for coloring.
type Root struct {
	Value complex128
	Color color.RGBA
}

// derivStep is the fixed offset of the finite-difference derivative. It is
// deliberately not infinitesimal: the discretized derivative is part of the
// fractal's convergence behavior, so the step must stay exactly this size
// for renders to be reproducible.
const derivStep = complex(1e-6, 1e-6)

// Evaluate returns the polynomial value at z, the product of (z - r.Value)
// over all roots. An empty root set evaluates to 1.
func Evaluate(z complex128, roots []Root) complex128 {
	result := complex(1, 0)
	for i := range roots {
		result *= z - roots[i].Value
	}
	return result
}

// Derivative approximates the polynomial derivative at z with a forward
// finite difference over derivStep.
func Derivative(z complex128, roots []Root) complex128 {
	return (Evaluate(z+derivStep, roots) - Evaluate(z, roots)) / derivStep
}

// EquidistantRoots places n roots evenly on the unit circle, colored from
// the default palette. Used as the initial configuration and by the
// interactive reset.
func EquidistantRoots(n int) []Root {
	roots := make([]Root, n)
	for i := range roots {
		angle := 2 * math.Pi * float64(i) / float64(n)
		roots[i] = Root{
			Value: complex(math.Cos(angle), math.Sin(angle)),
			Color: Palette[i%len(Palette)],
		}
	}
	return roots
}
