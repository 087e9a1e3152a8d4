package newton

import (
	"fmt"
	"image"
)

const (
	// MaxRoots is the largest supported root count, matching the default
	// palette. Parameter snapshots with more roots are truncated.
	MaxRoots = 6

	// IterationCap bounds MaxIterations. A pathological root configuration
	// combined with a huge budget can stall a frame for a long time; the cap
	// keeps a single frame finite without imposing a timeout.
	IterationCap = 10000

	// DefaultMaxIterations is the iteration budget of a fresh parameter set.
	DefaultMaxIterations = 500

	// DefaultScaleDownFactor is the resolution factor applied while an
	// interaction is in progress.
	DefaultScaleDownFactor = 0.5

	// DefaultSize is the edge length of a fresh parameter set's image.
	DefaultSize = 800
)

// Size is an image size in pixels.
type Size struct {
	Width, Height int
}

// Pixels returns the number of pixels covered by the size.
func (s Size) Pixels() int { return s.Width * s.Height }

// Processor selects the execution path for frame computation.
type Processor uint8

const (
	// ProcessorSingle renders scanlines serially on the calling worker.
	ProcessorSingle Processor = iota

	// ProcessorMulti fans scanlines across the renderer's worker pool.
	ProcessorMulti

	// ProcessorGPU dispatches frames to the registered Accelerator and
	// falls back to ProcessorMulti when none is available.
	ProcessorGPU
)

// String returns the textual name used in persisted settings.
func (p Processor) String() string {
	switch p {
	case ProcessorSingle:
		return "single"
	case ProcessorMulti:
		return "multi"
	case ProcessorGPU:
		return "gpu"
	}
	return fmt.Sprintf("Processor(%d)", uint8(p))
}

// ParseProcessor is the inverse of Processor.String.
func ParseProcessor(s string) (Processor, error) {
	switch s {
	case "single":
		return ProcessorSingle, nil
	case "multi":
		return ProcessorMulti, nil
	case "gpu":
		return ProcessorGPU, nil
	}
	return 0, fmt.Errorf("newton: unknown processor %q", s)
}

// Parameters is the full input of one frame computation. The interactive
// layer mutates its own copy freely; the renderer deep-copies the latest
// value under a lock before computing, so a snapshot handed to a frame is
// never observed partially updated.
type Parameters struct {
	// Size is the requested output size in pixels.
	Size Size

	// Roots defines the polynomial. Order is identity: index selects the
	// color and correlates with the interactive layer's per-root editors.
	Roots []Root

	// MaxIterations bounds the Newton iteration per pixel.
	MaxIterations int

	// Damping scales the Newton step. 1+0i is the undamped iteration;
	// other values slow or swirl convergence.
	Damping complex128

	// ScaleDownFactor and ScaleDown request a reduced-resolution frame
	// while an interaction is in progress. The factor is in (0, 1].
	ScaleDownFactor float64
	ScaleDown       bool

	// Limits is the viewport rectangle in plane coordinates.
	Limits Limits

	// Processor selects the execution path.
	Processor Processor

	// OrbitMode and OrbitStart configure orbit tracing from a pixel.
	OrbitMode  bool
	OrbitStart image.Point

	// Benchmark marks the parameter set as a benchmark run.
	Benchmark bool
}

// DefaultParameters returns a ready-to-render parameter set with rootCount
// equidistant roots on the unit circle.
func DefaultParameters(rootCount int) Parameters {
	size := Size{Width: DefaultSize, Height: DefaultSize}
	return Parameters{
		Size:            size,
		Roots:           EquidistantRoots(rootCount),
		MaxIterations:   DefaultMaxIterations,
		Damping:         1,
		ScaleDownFactor: DefaultScaleDownFactor,
		Limits:          NewLimits(size),
		Processor:       ProcessorMulti,
		OrbitStart:      image.Point{X: size.Width / 2, Y: size.Height / 2},
	}
}

// Clone returns a deep copy, so the copy's root list can be mutated without
// affecting the receiver.
func (p Parameters) Clone() Parameters {
	c := p
	c.Roots = make([]Root, len(p.Roots))
	copy(c.Roots, p.Roots)
	return c
}

// Clamp forces the parameter set into the supported domain: the root list is
// truncated to MaxRoots, the iteration budget to [1, IterationCap] and the
// scale-down factor to (0, 1]. Contract violations are clamped rather than
// rejected so a malformed interactive update degrades instead of failing.
func (p *Parameters) Clamp() {
	if len(p.Roots) > MaxRoots {
		p.Roots = p.Roots[:MaxRoots]
	}
	if p.MaxIterations < 1 {
		p.MaxIterations = 1
	} else if p.MaxIterations > IterationCap {
		p.MaxIterations = IterationCap
	}
	if p.ScaleDownFactor <= 0 || p.ScaleDownFactor > 1 {
		p.ScaleDownFactor = DefaultScaleDownFactor
	}
}

// AddRoot appends a root colored from the default palette and returns its
// index.
func (p *Parameters) AddRoot(value complex128) int {
	i := len(p.Roots)
	p.Roots = append(p.Roots, Root{Value: value, Color: Palette[i%len(Palette)]})
	return i
}

// RemoveRoot deletes the root at index i; roots after i shift down by one
// with values unchanged. Out-of-range indices are ignored.
func (p *Parameters) RemoveRoot(i int) {
	if i < 0 || i >= len(p.Roots) {
		return
	}
	p.Roots = append(p.Roots[:i], p.Roots[i+1:]...)
}

// SetRoot moves the root at index i to a new plane position, keeping its
// color and index. Out-of-range indices are ignored.
func (p *Parameters) SetRoot(i int, value complex128) {
	if i < 0 || i >= len(p.Roots) {
		return
	}
	p.Roots[i].Value = value
}

// MirrorRootX appends a copy of root i mirrored on the real axis.
func (p *Parameters) MirrorRootX(i int) {
	if i < 0 || i >= len(p.Roots) {
		return
	}
	v := p.Roots[i].Value
	p.AddRoot(complex(real(v), -imag(v)))
}

// MirrorRootY appends a copy of root i mirrored on the imaginary axis.
func (p *Parameters) MirrorRootY(i int) {
	if i < 0 || i >= len(p.Roots) {
		return
	}
	v := p.Roots[i].Value
	p.AddRoot(complex(-real(v), imag(v)))
}

// Resize changes the output size and rescales the viewport so the plane
// center and scale are preserved.
func (p *Parameters) Resize(size Size) {
	p.Limits.Resize(p.Size, size)
	p.Size = size
}

// effectiveSize is the actual frame size after the scale-down policy.
// Both dimensions are clamped to 2 because the plane mapping divides by
// dimension-1.
func (p Parameters) effectiveSize() Size {
	size := p.Size
	if p.ScaleDown {
		size.Width = int(float64(size.Width) * p.ScaleDownFactor)
		size.Height = int(float64(size.Height) * p.ScaleDownFactor)
	}
	if size.Width < 2 {
		size.Width = 2
	}
	if size.Height < 2 {
		size.Height = 2
	}
	return size
}
