// Package newton provides a concurrent Newton fractal rendering engine.
//
// # Overview
//
// The engine turns a small, frequently changing parameter set (polynomial
// roots, iteration budget, viewport, resolution) into a raster image by
// running damped Newton-Raphson iteration per pixel, classifying which root
// each pixel converges to, and shading the root color by convergence speed.
//
// It is built for live interaction: a [Renderer] owns a long-lived worker
// goroutine fed through a latest-wins mailbox, so a stream of parameter
// updates (dragging, zooming, resizing) coalesces into at most one pending
// frame. In-flight frames always complete; superseded requests produce no
// output at all.
//
// # Quick Start
//
//	params := newton.DefaultParameters(3)
//
//	r := newton.NewRenderer(newton.WithFrameFunc(func(f newton.Frame) {
//		// f.Pixmap holds the finished image, f.FPS the achieved rate.
//	}))
//	defer r.Shutdown()
//
//	r.RequestRender(params)
//
// # Coordinate System
//
// Pixel coordinates use image.Point with the origin at the top-left corner.
// The [Limits] viewport maps pixels onto the complex plane; the top edge has
// the smaller imaginary value, so "up" on screen is down in imaginary part.
// Mapping between the two spaces is done by [PixelToComplex],
// [ComplexToPixel] and [DistanceToComplex].
//
// # Execution Modes
//
// [ProcessorMulti] fans scanlines across a worker pool sized to the
// available cores, [ProcessorSingle] renders serially, and [ProcessorGPU]
// dispatches to a registered [Accelerator], falling back to the CPU path
// when none is registered or the accelerator declines the frame.
//
// Besides full frames the engine can trace the orbit of a single starting
// pixel ([Trace]) and time a single full-resolution frame
// ([Renderer.RunBenchmark]).
package newton
