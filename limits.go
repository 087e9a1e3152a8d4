package newton

import "image"

const (
	// defaultSpan is the half-height of the default viewport.
	defaultSpan = 2.0

	// zoomStep is the per-wheel-notch zoom ratio.
	zoomStep = 1.1
)

// Limits describes the rectangle of the complex plane mapped onto the image.
// Left < Right always holds; Top holds the smaller imaginary value so that
// "top" visually means the upper edge of the image.
//
// A zero Limits is not useful; construct one with NewLimits or NewLimitsFrom.
type Limits struct {
	left, right float64
	top, bottom float64
	zoomFactor  float64
	original    *Limits
}

// NewLimits returns the default viewport for an image of the given size:
// imaginary part spanning [-2, 2] and real part scaled to the aspect ratio.
func NewLimits(size Size) Limits {
	var l Limits
	l.fit(size)
	l.zoomFactor = 1
	return l
}

// NewLimitsFrom returns a viewport with explicit bounds. The bounds are also
// recorded as the reset baseline.
func NewLimitsFrom(left, right, top, bottom float64) Limits {
	l := Limits{left: left, right: right, top: top, bottom: bottom, zoomFactor: 1}
	orig := l
	l.original = &orig
	return l
}

// RestoreLimits reassembles a viewport from persisted state: explicit
// current bounds, an accumulated zoom factor and an optional reset baseline.
// Unlike SetZoomFactor, the zoom factor is taken verbatim without rescaling
// the bounds.
func RestoreLimits(left, right, top, bottom, zoomFactor float64, original *Limits) Limits {
	if zoomFactor <= 0 {
		zoomFactor = 1
	}
	return Limits{
		left: left, right: right, top: top, bottom: bottom,
		zoomFactor: zoomFactor,
		original:   original,
	}
}

// fit sets aspect-fitted default bounds centered on the origin.
func (l *Limits) fit(size Size) {
	aspect := 1.0
	if size.Height > 0 {
		aspect = float64(size.Width) / float64(size.Height)
	}
	l.left, l.right = -defaultSpan*aspect, defaultSpan*aspect
	l.top, l.bottom = -defaultSpan, defaultSpan
}

func (l Limits) Left() float64   { return l.left }
func (l Limits) Right() float64  { return l.right }
func (l Limits) Top() float64    { return l.top }
func (l Limits) Bottom() float64 { return l.bottom }

// Width returns the real-axis extent of the viewport.
func (l Limits) Width() float64 { return l.right - l.left }

// Height returns the imaginary-axis extent of the viewport.
func (l Limits) Height() float64 { return l.bottom - l.top }

// ZoomFactor returns the accumulated zoom relative to the reset baseline.
func (l Limits) ZoomFactor() float64 { return l.zoomFactor }

// Original returns the reset baseline bounds, if this viewport has one.
func (l Limits) Original() (Limits, bool) {
	if l.original == nil {
		return Limits{}, false
	}
	return *l.original, true
}

// Set replaces the viewport bounds, keeping the reset baseline.
func (l *Limits) Set(left, right, top, bottom float64) {
	l.left, l.right = left, right
	l.top, l.bottom = top, bottom
}

// Move translates the viewport by the plane-space equivalent of the given
// pixel displacement.
func (l *Limits) Move(delta image.Point, size Size) {
	d := DistanceToComplex(delta, size, *l)
	l.left += real(d)
	l.right += real(d)
	l.top += imag(d)
	l.bottom += imag(d)
}

// Zoom rescales the viewport by one zoom step, anchored at the fractional
// focus point (xw, yw) within the current bounds. xw and yw are in [0, 1]:
// (0.5, 0.5) zooms on the center, (0, 0) on the top-left corner.
//
// Zooming in and back out returns to the original bounds only up to
// floating-point rounding.
func (l *Limits) Zoom(in bool, xw, yw float64) {
	w, h := l.Width(), l.Height()
	var nw, nh float64
	if in {
		nw, nh = w/zoomStep, h/zoomStep
		l.zoomFactor *= zoomStep
	} else {
		nw, nh = w*zoomStep, h*zoomStep
		l.zoomFactor /= zoomStep
	}
	l.left += xw * (w - nw)
	l.right = l.left + nw
	l.top += yw * (h - nh)
	l.bottom = l.top + nh
}

// SetZoomFactor rescales the viewport around its center so the accumulated
// zoom becomes factor. Non-positive factors are ignored.
func (l *Limits) SetZoomFactor(factor float64) {
	if factor <= 0 || l.zoomFactor == factor {
		return
	}
	scale := l.zoomFactor / factor
	cx := (l.left + l.right) / 2
	cy := (l.top + l.bottom) / 2
	hw := l.Width() * scale / 2
	hh := l.Height() * scale / 2
	l.left, l.right = cx-hw, cx+hw
	l.top, l.bottom = cy-hh, cy+hh
	l.zoomFactor = factor
}

// Reset restores the viewport to its baseline: the recorded original bounds
// if present, the aspect-fitted default for size otherwise. The zoom factor
// returns to 1.
func (l *Limits) Reset(size Size) {
	if l.original != nil {
		l.left, l.right = l.original.left, l.original.right
		l.top, l.bottom = l.original.top, l.original.bottom
	} else {
		l.fit(size)
	}
	l.zoomFactor = 1
}

// Resize rescales the bounds for a new canvas size so the plane center and
// the plane-units-per-pixel scale are preserved. Growing the window reveals
// more of the plane instead of stretching it.
func (l *Limits) Resize(oldSize, newSize Size) {
	if oldSize.Width < 2 || oldSize.Height < 2 || newSize.Width < 2 || newSize.Height < 2 {
		return
	}
	cx := (l.left + l.right) / 2
	cy := (l.top + l.bottom) / 2
	hw := l.Width() * float64(newSize.Width) / float64(oldSize.Width) / 2
	hh := l.Height() * float64(newSize.Height) / float64(oldSize.Height) / 2
	l.left, l.right = cx-hw, cx+hw
	l.top, l.bottom = cy-hh, cy+hh
}
