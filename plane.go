package newton

import (
	"image"
	"math"
)

// Mapping between pixel space and the complex plane. These functions are
// pure and are shared by the renderer, the orbit tracer and interactive
// consumers (root dragging, cursor readout), so all of them agree on where
// a pixel lands in the plane.
//
// The mapping interpolates x over [Left, Right] across [0, width-1] and
// y over [Top, Bottom] across [0, height-1]. Both image dimensions must be
// at least 2; the renderer clamps sizes accordingly before mapping.

// PixelToComplex maps a pixel position to its point on the complex plane.
func PixelToComplex(p image.Point, size Size, lim Limits) complex128 {
	re := float64(p.X)*lim.Width()/float64(size.Width-1) + lim.Left()
	im := float64(p.Y)*lim.Height()/float64(size.Height-1) + lim.Top()
	return complex(re, im)
}

// ComplexToPixel maps a plane point back to the nearest integer pixel.
// It is the inverse of PixelToComplex up to rounding.
func ComplexToPixel(z complex128, size Size, lim Limits) image.Point {
	x := (real(z) - lim.Left()) * float64(size.Width-1) / lim.Width()
	y := (imag(z) - lim.Top()) * float64(size.Height-1) / lim.Height()
	return image.Point{X: int(math.Round(x)), Y: int(math.Round(y))}
}

// DistanceToComplex scales a pixel displacement into a plane-space
// displacement. Used to translate drag distances into viewport moves.
func DistanceToComplex(delta image.Point, size Size, lim Limits) complex128 {
	re := float64(delta.X) * lim.Width() / float64(size.Width-1)
	im := float64(delta.Y) * lim.Height() / float64(size.Height-1)
	return complex(re, im)
}
