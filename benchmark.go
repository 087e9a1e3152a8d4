package newton

import "time"

// BenchmarkResult reports a single timed full-resolution frame.
type BenchmarkResult struct {
	Pixmap     *Pixmap
	Elapsed    time.Duration
	PixelCount int
}

// RunBenchmark wraps exactly one full-frame computation with a wall-clock
// timer. The scale-down policy is forced off so the frame renders at full
// resolution, and interaction-triggered render requests are dropped for the
// duration. A single frame is measured: no averaging, no warm-up discard.
//
// RunBenchmark runs synchronously on the calling goroutine but shares the
// renderer's worker pool for the scanline fan-out.
func (r *Renderer) RunBenchmark(params Parameters) (BenchmarkResult, error) {
	p := params.Clone()
	p.Clamp()
	p.ScaleDown = false
	p.Benchmark = true

	r.benchmarking.Store(true)
	defer r.benchmarking.Store(false)

	start := time.Now()
	pm, err := renderFrame(p, r.pool)
	elapsed := time.Since(start)
	if err != nil {
		return BenchmarkResult{}, err
	}
	if elapsed <= 0 {
		elapsed = time.Nanosecond
	}
	Logger().Info("benchmark frame completed",
		"width", pm.Width(), "height", pm.Height(), "elapsed", elapsed)
	return BenchmarkResult{
		Pixmap:     pm,
		Elapsed:    elapsed,
		PixelCount: pm.Width() * pm.Height(),
	}, nil
}
