package newton

import (
	"errors"
	"fmt"

	"github.com/gofrac/newton/internal/parallel"
)

// maxFramePixels bounds a single frame's buffer. Allocation beyond it is the
// one failure that aborts a frame and surfaces to the consumer instead of
// being silently discarded.
const maxFramePixels = 1 << 28

// renderFrame computes one full frame from an already-clamped parameter
// snapshot. Scanlines are independent units of work; they are fanned across
// the pool unless the snapshot asks for serial execution. The function
// returns only after every scanline is finished, so partial frames are never
// observed.
func renderFrame(params Parameters, pool *parallel.Pool) (*Pixmap, error) {
	size := params.effectiveSize()
	if size.Pixels() > maxFramePixels {
		return nil, fmt.Errorf("newton: frame %dx%d exceeds the %d pixel buffer limit",
			size.Width, size.Height, maxFramePixels)
	}
	pm := NewPixmap(size.Width, size.Height)

	if params.Processor == ProcessorGPU {
		if a := ActiveAccelerator(); a != nil {
			target := RenderTarget{Data: pm.data, Width: size.Width, Height: size.Height, Stride: size.Width * 4}
			err := a.Render(target, params)
			if err == nil {
				return pm, nil
			}
			if !errors.Is(err, ErrFallbackToCPU) {
				Logger().Warn("accelerator frame failed, falling back to CPU",
					"accelerator", a.Name(), "error", err)
			}
		}
	}

	it := newIterator(&params)
	lines := make([]func(), size.Height)
	for y := 0; y < size.Height; y++ {
		row := pm.row(y)
		zy := float64(y)*params.Limits.Height()/float64(size.Height-1) + params.Limits.Top()
		lines[y] = func() {
			renderLine(row, zy, size, params.Limits, &it)
		}
	}

	if params.Processor == ProcessorSingle || pool == nil {
		for _, line := range lines {
			line()
		}
	} else {
		pool.ExecuteAll(lines)
	}
	return pm, nil
}

// renderLine iterates the pixels of one scanline. zy is the imaginary part
// shared by the whole line; it and the iterator are read-only here, so
// concurrent lines only ever write their own row.
func renderLine(row []uint8, zy float64, size Size, lim Limits, it *iterator) {
	for x := 0; x < size.Width; x++ {
		zx := float64(x)*lim.Width()/float64(size.Width-1) + lim.Left()
		root, count, ok := it.run(complex(zx, zy))
		c := it.colorFor(root, count, ok)
		i := x * 4
		row[i+0] = c.R
		row[i+1] = c.G
		row[i+2] = c.B
		row[i+3] = c.A
	}
}
