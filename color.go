package newton

import (
	"fmt"
	"image/color"
)

// Background is the color of pixels whose iteration never converges to a
// known root. It is a single fixed constant so repeated renders of the same
// parameters are pixel-identical.
var Background = color.RGBA{A: 255}

// Palette holds the default colors assigned to roots in insertion order:
// red, green, blue, cyan, magenta, yellow.
var Palette = [MaxRoots]color.RGBA{
	{R: 255, A: 255},
	{G: 255, A: 255},
	{B: 255, A: 255},
	{G: 255, B: 255, A: 255},
	{R: 255, B: 255, A: 255},
	{R: 255, G: 255, A: 255},
}

// Darken returns c with its brightness divided by factor percent.
// A factor of 100 leaves the color unchanged, larger factors darken it and
// factors below 100 brighten it, saturating at full brightness. Non-positive
// factors return c unchanged.
//
// The renderer shades converged pixels with Darken(rootColor, 50+10*count),
// so convergence speed maps directly onto brightness.
func Darken(c color.RGBA, factor int) color.RGBA {
	if factor <= 0 {
		return c
	}
	scale := func(v uint8) uint8 {
		s := int(v) * 100 / factor
		if s > 255 {
			return 255
		}
		return uint8(s)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// Hex parses a "#RRGGBB" color string into an opaque color.
func Hex(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("newton: invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("newton: invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// HexString formats c as a "#RRGGBB" string. The alpha channel is dropped.
func HexString(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
