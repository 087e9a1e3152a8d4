package newton

import (
	"image"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrac/newton/internal/parallel"
)

// Frame is one completed render: the pixel buffer, the parameter snapshot it
// was computed from, and the achieved frame rate.
type Frame struct {
	Pixmap *Pixmap
	Params Parameters
	FPS    float64
}

// Renderer computes frames on a dedicated long-lived worker goroutine fed
// through a latest-wins mailbox: RequestRender swaps the single pending
// snapshot under a short-lived lock and never blocks the caller. Repeated
// requests coalesce — an in-flight frame always finishes and is emitted, and
// the next frame uses the newest stored parameters. Superseded requests
// produce no output, which is the engine's backpressure: a fast input stream
// cannot pile up work.
//
// All methods are safe for concurrent use.
type Renderer struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending *Parameters
	abort   bool
	started bool
	done    chan struct{}

	pool         *parallel.Pool
	benchmarking atomic.Bool

	onFrame   func(Frame)
	onError   func(error)
	frameHook func(Parameters)
}

// NewRenderer creates a renderer. The worker goroutine starts lazily with
// the first render request. Call Shutdown to release the pool and stop the
// worker.
func NewRenderer(opts ...Option) *Renderer {
	var o rendererOptions
	for _, opt := range opts {
		opt(&o)
	}
	r := &Renderer{
		pool:      parallel.NewPool(o.workers),
		done:      make(chan struct{}),
		onFrame:   o.onFrame,
		onError:   o.onError,
		frameHook: o.frameHook,
	}
	r.cond = sync.NewCond(&r.mu)
	return r
}

// RequestRender stores params as the single pending request, replacing any
// previous unstarted one, and wakes the worker if it is idle. The call is
// fire-and-forget: it copies the parameters and returns immediately.
//
// Requests are dropped while a benchmark is running or after Shutdown.
func (r *Renderer) RequestRender(params Parameters) {
	if r.benchmarking.Load() {
		Logger().Debug("render request dropped during benchmark")
		return
	}
	p := params.Clone()
	p.Clamp()

	r.mu.Lock()
	if r.abort {
		r.mu.Unlock()
		return
	}
	superseded := r.pending != nil
	r.pending = &p
	if !r.started {
		r.started = true
		go r.loop()
	}
	r.mu.Unlock()
	r.cond.Signal()

	if superseded {
		Logger().Debug("pending render request superseded")
	}
}

// Orbit traces the iteration orbit for the given parameters, starting at a
// pixel. It runs synchronously on the calling goroutine; see Trace.
func (r *Renderer) Orbit(params Parameters, start image.Point) []image.Point {
	return Trace(params, start)
}

// Shutdown stops the renderer. An in-flight frame finishes computing but its
// emission is suppressed; the worker then exits instead of picking up more
// work. Shutdown blocks until the worker has fully stopped and is safe to
// call from any goroutine, repeatedly.
func (r *Renderer) Shutdown() {
	r.mu.Lock()
	already := r.abort
	r.abort = true
	started := r.started
	r.mu.Unlock()
	r.cond.Signal()

	if started {
		<-r.done
	}
	if !already {
		r.pool.Close()
		Logger().Info("renderer shut down")
	}
}

// loop is the worker: wait for a snapshot, compute one frame, emit or
// discard, repeat. The only blocking points are the idle wait and the
// scanline barrier inside renderFrame.
func (r *Renderer) loop() {
	defer close(r.done)
	for {
		r.mu.Lock()
		for r.pending == nil && !r.abort {
			r.cond.Wait()
		}
		if r.abort {
			r.mu.Unlock()
			return
		}
		params := *r.pending
		r.pending = nil
		r.mu.Unlock()

		if r.frameHook != nil {
			r.frameHook(params)
		}

		start := time.Now()
		pm, err := renderFrame(params, r.pool)
		elapsed := time.Since(start)

		r.mu.Lock()
		aborted := r.abort
		r.mu.Unlock()
		if aborted {
			// Frame finished after Shutdown: discard silently.
			return
		}

		if err != nil {
			if r.onError != nil {
				r.onError(err)
			} else {
				Logger().Warn("frame failed", "error", err)
			}
			continue
		}

		fps := 0.0
		if elapsed > 0 {
			fps = 1 / elapsed.Seconds()
		}
		Logger().Debug("frame completed",
			"width", pm.Width(), "height", pm.Height(), "fps", fps)
		if r.onFrame != nil {
			r.onFrame(Frame{Pixmap: pm, Params: params, FPS: fps})
		}
	}
}
