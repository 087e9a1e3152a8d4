package newton

// Option configures a Renderer during creation.
//
// Example:
//
//	r := newton.NewRenderer(
//		newton.WithWorkers(4),
//		newton.WithFrameFunc(onFrame),
//	)
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	workers   int
	onFrame   func(Frame)
	onError   func(error)
	frameHook func(Parameters)
}

// WithWorkers sets the size of the scanline worker pool. Zero or negative
// values size the pool to the available hardware parallelism.
func WithWorkers(n int) Option {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// WithFrameFunc sets the callback invoked with every completed frame.
// The renderer has a single consumer; the callback runs on the renderer's
// worker goroutine, so it should hand the frame off rather than block.
func WithFrameFunc(fn func(Frame)) Option {
	return func(o *rendererOptions) {
		o.onFrame = fn
	}
}

// WithErrorFunc sets the callback invoked when a frame fails (buffer
// allocation beyond the supported limit). Without it, failures are logged
// and the frame is dropped.
func WithErrorFunc(fn func(error)) Option {
	return func(o *rendererOptions) {
		o.onError = fn
	}
}

// WithFrameHook sets a hook invoked after the parameter snapshot is taken
// and before the frame is computed. Intended for tests and metrics.
func WithFrameHook(fn func(Parameters)) Option {
	return func(o *rendererOptions) {
		o.frameHook = fn
	}
}
