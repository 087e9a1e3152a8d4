package newton

import (
	"image"
	"math/cmplx"
)

// Trace computes the orbit of the Newton iteration started at a pixel: the
// ordered sequence of plane points visited by the iteration, projected back
// to pixel space. The sequence is finite — it stops at the fixed-point
// tolerance, on a degenerate derivative, or when the iteration budget is
// spent — and always contains the starting pixel. An orbit started exactly
// on a root is just that single pixel.
//
// The trace is recomputed from scratch for every parameter change; there is
// no incremental update.
func Trace(params Parameters, start image.Point) []image.Point {
	p := params.Clone()
	p.Clamp()
	it := newIterator(&p)

	z := PixelToComplex(start, p.Size, p.Limits)
	points := []image.Point{start}
	for i := 0; i < p.MaxIterations; i++ {
		z1, ok := it.next(z)
		if !ok || cmplx.Abs(z1-z) < EPS {
			break
		}
		z = z1
		points = append(points, ComplexToPixel(z, p.Size, p.Limits))
	}
	return points
}
