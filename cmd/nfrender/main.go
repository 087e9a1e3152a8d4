// Command nfrender renders a single Newton fractal frame to a PNG file.
//
// Roots are given as a semicolon-separated list of settings-style entries,
// for example:
//
//	nfrender -roots "-1,0 : #FF0000; 0,1 : #00FF00; 1,0 : #0000FF" -o fractal.png
//
// Alternatively -settings loads a full parameter file written by the
// settings package.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gofrac/newton"
	"github.com/gofrac/newton/settings"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("nfrender: %v", err)
	}
}

func run() error {
	var (
		settingsPath = flag.String("settings", "", "parameter file to load")
		width        = flag.Int("width", newton.DefaultSize, "image width")
		height       = flag.Int("height", newton.DefaultSize, "image height")
		iterations   = flag.Int("iterations", newton.DefaultMaxIterations, "iteration budget per pixel")
		rootList     = flag.String("roots", "", "semicolon-separated roots, \"re,im : #RRGGBB\" each")
		damping      = flag.String("damping", "1,0", "damping constant, \"re,im\"")
		single       = flag.Bool("single", false, "render single-threaded")
		orbit        = flag.String("orbit", "", "also trace the orbit from pixel \"x,y\" and print it")
		output       = flag.String("o", "fractal.png", "output PNG file")
		verbose      = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		newton.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	params, err := buildParams(*settingsPath, *width, *height, *iterations, *rootList, *damping)
	if err != nil {
		return err
	}
	if *single {
		params.Processor = newton.ProcessorSingle
	}

	r := newton.NewRenderer()
	defer r.Shutdown()

	// A benchmark run is a synchronous, timed, full-resolution frame —
	// exactly what a one-shot CLI render wants.
	res, err := r.RunBenchmark(params)
	if err != nil {
		return err
	}
	log.Printf("rendered %d pixels in %s (%.2f fps equivalent)",
		res.PixelCount, res.Elapsed, 1/res.Elapsed.Seconds())

	if *orbit != "" {
		start, err := parsePixel(*orbit)
		if err != nil {
			return err
		}
		for i, pt := range r.Orbit(params, start) {
			fmt.Printf("orbit[%d] = (%d, %d)\n", i, pt.X, pt.Y)
		}
	}

	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, res.Pixmap.RGBA()); err != nil {
		return fmt.Errorf("encode %s: %w", *output, err)
	}
	log.Printf("saved %s (%dx%d)", *output, res.Pixmap.Width(), res.Pixmap.Height())
	return nil
}

func buildParams(settingsPath string, width, height, iterations int, rootList, damping string) (newton.Parameters, error) {
	if settingsPath != "" {
		return settings.Load(settingsPath)
	}

	params := newton.DefaultParameters(3)
	params.Size = newton.Size{Width: width, Height: height}
	params.Limits = newton.NewLimits(params.Size)
	params.MaxIterations = iterations

	d, err := parseComplex(damping)
	if err != nil {
		return newton.Parameters{}, fmt.Errorf("bad -damping: %w", err)
	}
	params.Damping = d

	if rootList != "" {
		params.Roots = params.Roots[:0]
		for _, entry := range strings.Split(rootList, ";") {
			root, err := settings.ParseRoot(strings.TrimSpace(entry))
			if err != nil {
				return newton.Parameters{}, err
			}
			params.Roots = append(params.Roots, root)
		}
	}
	params.Clamp()
	return params, nil
}

func parseComplex(s string) (complex128, error) {
	var re, im float64
	if _, err := fmt.Sscanf(s, "%f,%f", &re, &im); err != nil {
		return 0, err
	}
	return complex(re, im), nil
}

func parsePixel(s string) (image.Point, error) {
	var x, y int
	if _, err := fmt.Sscanf(s, "%d,%d", &x, &y); err != nil {
		return image.Point{}, fmt.Errorf("bad pixel %q: %w", s, err)
	}
	return image.Point{X: x, Y: y}, nil
}
