package newton

import (
	xdraw "golang.org/x/image/draw"
)

// Upscale returns pm stretched to size with bilinear interpolation. The
// interactive layer uses it to display scale-down preview frames at the full
// canvas size while a drag or resize is in progress. If pm already has the
// requested size it is returned unchanged.
func Upscale(pm *Pixmap, size Size) *Pixmap {
	if pm.Width() == size.Width && pm.Height() == size.Height {
		return pm
	}
	dst := NewPixmap(size.Width, size.Height)
	src := pm.RGBA()
	out := dst.RGBA()
	xdraw.ApproxBiLinear.Scale(out, out.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
