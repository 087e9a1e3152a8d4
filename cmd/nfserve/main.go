// Command nfserve serves an interactive Newton fractal viewer over HTTP.
//
// The engine itself stays headless; this command is the interactive layer:
// it owns the live parameter set, applies pan/zoom/root edits received over
// a WebSocket, runs the scale-down-while-interacting policy with a debounced
// full-resolution re-render, and streams finished frames to the browser as
// PNGs.
package main

import (
	_ "embed"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/coder/websocket"

	"github.com/gofrac/newton"
)

//go:embed index.html
var indexHTML []byte

func main() {
	var (
		addr    = flag.String("addr", ":8080", "listen address")
		size    = flag.Int("size", 800, "initial canvas size")
		roots   = flag.Int("roots", 3, "initial root count")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		newton.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})
	mux.HandleFunc("/ws", websocketHandler(*size, *roots))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("listening on http://localhost%s", *addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("nfserve: %v", err)
	}
}

// websocketHandler upgrades the connection and hands it to a session, which
// owns one renderer for the lifetime of the connection.
func websocketHandler(size, roots int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}

		params := newton.DefaultParameters(roots)
		params.Size = newton.Size{Width: size, Height: size}
		params.Limits = newton.NewLimits(params.Size)

		s := newSession(c, params)
		if err := s.run(r.Context()); err != nil {
			log.Printf("session ended: %v", err)
		}
	}
}
