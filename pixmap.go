package newton

import (
	"image"
	"image/color"
)

// Pixmap is a rectangular RGBA pixel buffer. The renderer owns the pixmap of
// an in-flight frame exclusively; on emission, ownership transfers to the
// consumer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA, 4 bytes per pixel, row-major
}

// NewPixmap creates a pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.height }

// Size returns the pixmap dimensions.
func (p *Pixmap) Size() Size { return Size{Width: p.width, Height: p.height} }

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 { return p.data }

// SetPixel sets the color of a single pixel. Out-of-bounds coordinates are
// silently ignored.
func (p *Pixmap) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// At returns the color of a single pixel. Out-of-bounds coordinates return
// the zero color.
func (p *Pixmap) At(x, y int) color.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.RGBA) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// row returns the raw bytes of scanline y. Scanlines do not overlap, so
// per-scanline workers can write their rows concurrently.
func (p *Pixmap) row(y int) []uint8 {
	i := y * p.width * 4
	return p.data[i : i+p.width*4 : i+p.width*4]
}

// RGBA returns an image.RGBA view sharing the pixmap's memory. Useful for
// PNG encoding and interoperation with the image/draw packages.
func (p *Pixmap) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}
