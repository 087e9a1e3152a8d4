package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"sync"
	"time"

	"github.com/coder/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/gofrac/newton"
)

// debounceQuiet is how long after the last interaction the preview state is
// cleared and one full-resolution frame is rendered.
const debounceQuiet = 250 * time.Millisecond

// command is a parameter edit sent by the browser.
type command struct {
	Type  string  `json:"type"`
	DX    int     `json:"dx"`
	DY    int     `json:"dy"`
	In    bool    `json:"in"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     int     `json:"w"`
	H     int     `json:"h"`
	Index int     `json:"index"`
	Re    float64 `json:"re"`
	Im    float64 `json:"im"`
	Value int     `json:"value"`
}

// status accompanies every frame as a text message.
type status struct {
	FPS        float64   `json:"fps"`
	ZoomFactor float64   `json:"zoomFactor"`
	Roots      []rootDTO `json:"roots"`
	Orbit      []pixel   `json:"orbit,omitempty"`
}

type rootDTO struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color string `json:"color"`
}

type pixel struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// session owns the live parameter set for one connection. The browser
// mutates it through commands; the renderer only ever sees immutable
// snapshots handed over via RequestRender.
type session struct {
	conn   *websocket.Conn
	r      *newton.Renderer
	frames chan newton.Frame

	mu       sync.Mutex
	params   newton.Parameters
	debounce *time.Timer
}

func newSession(conn *websocket.Conn, params newton.Parameters) *session {
	s := &session{
		conn:   conn,
		params: params,
		frames: make(chan newton.Frame, 1),
	}
	s.r = newton.NewRenderer(newton.WithFrameFunc(func(f newton.Frame) {
		// Latest frame wins; the browser never wants a stale one.
		select {
		case s.frames <- f:
		default:
			select {
			case <-s.frames:
			default:
			}
			s.frames <- f
		}
	}))
	return s
}

func (s *session) run(ctx context.Context) error {
	defer s.r.Shutdown()
	defer s.conn.Close(websocket.StatusNormalClosure, "")

	s.mu.Lock()
	s.r.RequestRender(s.params)
	s.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.readLoop(ctx) })
	g.Go(func() error { return s.writeLoop(ctx) })
	return g.Wait()
}

// readLoop decodes commands and applies them to the live parameters.
func (s *session) readLoop(ctx context.Context) error {
	for {
		_, data, err := s.conn.Read(ctx)
		if err != nil {
			return err
		}
		var cmd command
		if err := json.Unmarshal(data, &cmd); err != nil {
			return fmt.Errorf("bad command: %w", err)
		}
		s.apply(cmd)
	}
}

// apply mutates the parameter set and schedules a render. Interactive edits
// render at reduced resolution; the debounce timer triggers the final
// full-resolution frame after a quiet period.
func (s *session) apply(cmd command) {
	s.mu.Lock()
	defer s.mu.Unlock()

	interactive := true
	switch cmd.Type {
	case "move":
		s.params.Limits.Move(image.Point{X: cmd.DX, Y: cmd.DY}, s.params.Size)
	case "zoom":
		s.params.Limits.Zoom(cmd.In, cmd.X, cmd.Y)
	case "resize":
		s.params.Resize(newton.Size{Width: cmd.W, Height: cmd.H})
	case "root":
		z := newton.PixelToComplex(image.Point{X: int(cmd.X), Y: int(cmd.Y)}, s.params.Size, s.params.Limits)
		s.params.SetRoot(cmd.Index, z)
	case "addroot":
		z := newton.PixelToComplex(image.Point{X: int(cmd.X), Y: int(cmd.Y)}, s.params.Size, s.params.Limits)
		s.params.AddRoot(z)
		interactive = false
	case "removeroot":
		s.params.RemoveRoot(cmd.Index)
		interactive = false
	case "iterations":
		s.params.MaxIterations = cmd.Value
		interactive = false
	case "orbit":
		s.params.OrbitMode = !s.params.OrbitMode
		s.params.OrbitStart = image.Point{X: int(cmd.X), Y: int(cmd.Y)}
		interactive = false
	case "reset":
		s.params.Roots = newton.EquidistantRoots(len(s.params.Roots))
		s.params.Limits.Reset(s.params.Size)
		interactive = false
	default:
		return
	}

	if interactive {
		s.params.ScaleDown = true
		s.resetDebounce()
	} else {
		s.params.ScaleDown = false
	}
	s.r.RequestRender(s.params)
}

// resetDebounce (re)starts the quiet-period timer that lifts the scale-down
// flag and requests the final full-resolution frame.
func (s *session) resetDebounce() {
	if s.debounce != nil {
		s.debounce.Stop()
	}
	s.debounce = time.AfterFunc(debounceQuiet, func() {
		s.mu.Lock()
		s.params.ScaleDown = false
		s.r.RequestRender(s.params)
		s.mu.Unlock()
	})
}

// writeLoop encodes finished frames as PNG and pushes them to the browser,
// preceded by a JSON status message with fps, zoom, root markers and the
// orbit polyline when orbit mode is on.
func (s *session) writeLoop(ctx context.Context) error {
	for {
		var frame newton.Frame
		select {
		case <-ctx.Done():
			return ctx.Err()
		case frame = <-s.frames:
		}

		pm := frame.Pixmap
		if frame.Params.ScaleDown {
			// Preview frames are stretched back to canvas size.
			pm = newton.Upscale(pm, frame.Params.Size)
		}

		if err := s.writeStatus(ctx, frame); err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, pm.RGBA()); err != nil {
			return fmt.Errorf("encode frame: %w", err)
		}
		if err := s.conn.Write(ctx, websocket.MessageBinary, buf.Bytes()); err != nil {
			return err
		}
	}
}

func (s *session) writeStatus(ctx context.Context, frame newton.Frame) error {
	st := status{
		FPS:        frame.FPS,
		ZoomFactor: frame.Params.Limits.ZoomFactor(),
	}
	for _, r := range frame.Params.Roots {
		pt := newton.ComplexToPixel(r.Value, frame.Params.Size, frame.Params.Limits)
		st.Roots = append(st.Roots, rootDTO{X: pt.X, Y: pt.Y, Color: newton.HexString(r.Color)})
	}
	if frame.Params.OrbitMode {
		for _, pt := range newton.Trace(frame.Params, frame.Params.OrbitStart) {
			st.Orbit = append(st.Orbit, pixel{X: pt.X, Y: pt.Y})
		}
	}
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.conn.Write(ctx, websocket.MessageText, data)
}
