package newton

import (
	"errors"
	"sync"
)

// ErrFallbackToCPU indicates the accelerator cannot handle this frame.
// The renderer transparently falls back to the CPU path.
var ErrFallbackToCPU = errors.New("newton: falling back to CPU rendering")

// RenderTarget provides pixel buffer access for accelerator output.
// The Data slice is in RGBA format, 4 bytes per pixel, laid out row by row
// with the given Stride.
type RenderTarget struct {
	Data          []uint8
	Width, Height int
	Stride        int // bytes per row
}

// Accelerator is an optional alternative execution substrate for frame
// computation, typically a GPU shader implementation of the same iteration.
//
// When registered via RegisterAccelerator, the renderer dispatches frames
// with Processor == ProcessorGPU to it. If the accelerator returns
// ErrFallbackToCPU or any other error, the frame is recomputed on the CPU
// path, so both substrates stay interchangeable.
type Accelerator interface {
	// Name returns the accelerator name (e.g., "wgpu", "opengl").
	Name() string

	// Init initializes accelerator resources. Called once during registration.
	Init() error

	// Close releases accelerator resources.
	Close()

	// Render computes one full frame into the target. The parameter
	// snapshot is read-only. Returns ErrFallbackToCPU if this frame cannot
	// be accelerated.
	Render(target RenderTarget, params Parameters) error
}

var (
	accelMu sync.RWMutex
	accel   Accelerator
)

// RegisterAccelerator registers an accelerator for ProcessorGPU frames.
//
// Only one accelerator can be registered; subsequent calls replace the
// previous one. The accelerator's Init method is called during registration
// and a failing Init leaves the previous registration in place.
//
// Typical usage via blank import in a backend package:
//
//	func init() {
//		newton.RegisterAccelerator(NewWGPUAccelerator())
//	}
func RegisterAccelerator(a Accelerator) error {
	if a == nil {
		return errors.New("newton: accelerator must not be nil")
	}
	if err := a.Init(); err != nil {
		return err
	}
	propagateLogger(a, Logger())
	accelMu.Lock()
	old := accel
	accel = a
	accelMu.Unlock()
	if old != nil {
		old.Close()
	}
	return nil
}

// ActiveAccelerator returns the currently registered accelerator, or nil.
func ActiveAccelerator() Accelerator {
	accelMu.RLock()
	a := accel
	accelMu.RUnlock()
	return a
}
