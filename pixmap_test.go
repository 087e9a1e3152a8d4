package newton

import (
	"image/color"
	"testing"
)

func TestPixmap_SetAndGet(t *testing.T) {
	pm := NewPixmap(4, 3)
	c := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	pm.SetPixel(2, 1, c)
	if got := pm.At(2, 1); got != c {
		t.Errorf("At(2,1) = %v, want %v", got, c)
	}
	if got := pm.At(0, 0); got != (color.RGBA{}) {
		t.Errorf("untouched pixel = %v, want zero", got)
	}
}

func TestPixmap_OutOfBounds(t *testing.T) {
	pm := NewPixmap(4, 3)
	for _, pt := range []struct{ x, y int }{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}} {
		pm.SetPixel(pt.x, pt.y, color.RGBA{R: 255, A: 255}) // must not panic
		if got := pm.At(pt.x, pt.y); got != (color.RGBA{}) {
			t.Errorf("At(%d,%d) = %v, want zero", pt.x, pt.y, got)
		}
	}
}

func TestPixmap_Clear(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Clear(Background)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if pm.At(x, y) != Background {
				t.Fatalf("pixel (%d,%d) not cleared", x, y)
			}
		}
	}
}

// TestPixmap_RGBASharesMemory: the image.RGBA view must alias the pixmap so
// PNG encoding needs no copy.
func TestPixmap_RGBASharesMemory(t *testing.T) {
	pm := NewPixmap(2, 2)
	img := pm.RGBA()
	c := color.RGBA{R: 77, G: 88, B: 99, A: 255}
	pm.SetPixel(1, 1, c)
	if got := img.RGBAAt(1, 1); got != c {
		t.Errorf("image view sees %v, want %v", got, c)
	}
	if img.Stride != 8 || img.Rect.Dx() != 2 || img.Rect.Dy() != 2 {
		t.Errorf("image view geometry %v stride %d", img.Rect, img.Stride)
	}
}

func TestPixmap_Rows(t *testing.T) {
	pm := NewPixmap(3, 2)
	r0, r1 := pm.row(0), pm.row(1)
	if len(r0) != 12 || len(r1) != 12 {
		t.Fatalf("row lengths %d, %d, want 12", len(r0), len(r1))
	}
	r1[0] = 0xAB
	if pm.At(0, 1).R != 0xAB {
		t.Error("row slice does not alias the pixmap")
	}
	if pm.At(0, 0).R != 0 {
		t.Error("write to row 1 leaked into row 0")
	}
}
