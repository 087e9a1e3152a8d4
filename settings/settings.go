// Package settings persists render parameter sets as grouped key/value
// files. The renderer itself never touches serialization; this package is
// the boundary that turns a settings file into a well-formed
// newton.Parameters and back.
//
// The format mirrors the record layout the engine's consumers expect:
// a [general] section with sizes and iteration settings, a [limits] section
// with the current and original viewport bounds, and a [roots] section with
// one ordered entry per root encoded as "<real>,<imag> : #RRGGBB".
package settings

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/gofrac/newton"
)

// Load reads a parameter set from the file at path. Missing keys fall back
// to the engine defaults; malformed root entries or processor names are
// reported as errors. The returned parameters are clamped, so they can be
// handed to the renderer as-is.
func Load(path string) (newton.Parameters, error) {
	f, err := ini.Load(path)
	if err != nil {
		return newton.Parameters{}, fmt.Errorf("settings: load %s: %w", path, err)
	}

	p := newton.DefaultParameters(0)

	general := f.Section("general")
	p.Size = newton.Size{
		Width:  general.Key("width").MustInt(newton.DefaultSize),
		Height: general.Key("height").MustInt(newton.DefaultSize),
	}
	p.MaxIterations = general.Key("maxIterations").MustInt(newton.DefaultMaxIterations)
	p.Damping = complex(
		general.Key("dampingReal").MustFloat64(1),
		general.Key("dampingImag").MustFloat64(0),
	)
	p.ScaleDownFactor = general.Key("scaleDownFactor").MustFloat64(newton.DefaultScaleDownFactor)
	p.ScaleDown = general.Key("scaleDown").MustBool(false)
	p.OrbitMode = general.Key("orbitMode").MustBool(false)
	p.OrbitStart = image.Point{
		X: general.Key("orbitX").MustInt(p.Size.Width / 2),
		Y: general.Key("orbitY").MustInt(p.Size.Height / 2),
	}
	if s := general.Key("processor").String(); s != "" {
		p.Processor, err = newton.ParseProcessor(s)
		if err != nil {
			return newton.Parameters{}, fmt.Errorf("settings: %w", err)
		}
	}

	p.Limits = loadLimits(f.Section("limits"), p.Size)

	roots := f.Section("roots")
	for i := 0; ; i++ {
		key := "root" + strconv.Itoa(i)
		if !roots.HasKey(key) {
			break
		}
		root, err := ParseRoot(roots.Key(key).String())
		if err != nil {
			return newton.Parameters{}, err
		}
		p.Roots = append(p.Roots, root)
	}

	p.Clamp()
	return p, nil
}

func loadLimits(sec *ini.Section, size newton.Size) newton.Limits {
	def := newton.NewLimits(size)
	var original *newton.Limits
	if sec.HasKey("originalLeft") {
		orig := newton.NewLimitsFrom(
			sec.Key("originalLeft").MustFloat64(def.Left()),
			sec.Key("originalRight").MustFloat64(def.Right()),
			sec.Key("originalTop").MustFloat64(def.Top()),
			sec.Key("originalBottom").MustFloat64(def.Bottom()),
		)
		original = &orig
	}
	return newton.RestoreLimits(
		sec.Key("left").MustFloat64(def.Left()),
		sec.Key("right").MustFloat64(def.Right()),
		sec.Key("top").MustFloat64(def.Top()),
		sec.Key("bottom").MustFloat64(def.Bottom()),
		sec.Key("zoomFactor").MustFloat64(1),
		original,
	)
}

// Save writes the parameter set to the file at path, creating or truncating
// it.
func Save(path string, p newton.Parameters) error {
	f := ini.Empty()

	general := f.Section("general")
	general.Key("width").SetValue(strconv.Itoa(p.Size.Width))
	general.Key("height").SetValue(strconv.Itoa(p.Size.Height))
	general.Key("maxIterations").SetValue(strconv.Itoa(p.MaxIterations))
	general.Key("dampingReal").SetValue(formatFloat(real(p.Damping)))
	general.Key("dampingImag").SetValue(formatFloat(imag(p.Damping)))
	general.Key("scaleDownFactor").SetValue(formatFloat(p.ScaleDownFactor))
	general.Key("scaleDown").SetValue(strconv.FormatBool(p.ScaleDown))
	general.Key("processor").SetValue(p.Processor.String())
	general.Key("orbitMode").SetValue(strconv.FormatBool(p.OrbitMode))
	general.Key("orbitX").SetValue(strconv.Itoa(p.OrbitStart.X))
	general.Key("orbitY").SetValue(strconv.Itoa(p.OrbitStart.Y))

	limits := f.Section("limits")
	limits.Key("left").SetValue(formatFloat(p.Limits.Left()))
	limits.Key("right").SetValue(formatFloat(p.Limits.Right()))
	limits.Key("top").SetValue(formatFloat(p.Limits.Top()))
	limits.Key("bottom").SetValue(formatFloat(p.Limits.Bottom()))
	limits.Key("zoomFactor").SetValue(formatFloat(p.Limits.ZoomFactor()))
	if orig, ok := p.Limits.Original(); ok {
		limits.Key("originalLeft").SetValue(formatFloat(orig.Left()))
		limits.Key("originalRight").SetValue(formatFloat(orig.Right()))
		limits.Key("originalTop").SetValue(formatFloat(orig.Top()))
		limits.Key("originalBottom").SetValue(formatFloat(orig.Bottom()))
	}

	roots := f.Section("roots")
	for i, r := range p.Roots {
		roots.Key("root" + strconv.Itoa(i)).SetValue(FormatRoot(r))
	}

	if err := f.SaveTo(path); err != nil {
		return fmt.Errorf("settings: save %s: %w", path, err)
	}
	return nil
}

// ParseRoot decodes a "<real>,<imag> : #RRGGBB" root entry. The color part
// is optional; without it the root is colored from the default palette
// later.
func ParseRoot(s string) (newton.Root, error) {
	value, colorPart, hasColor := strings.Cut(s, ":")

	re, im, found := strings.Cut(value, ",")
	if !found {
		return newton.Root{}, fmt.Errorf("settings: malformed root %q", s)
	}
	realPart, err := strconv.ParseFloat(strings.TrimSpace(re), 64)
	if err != nil {
		return newton.Root{}, fmt.Errorf("settings: malformed root %q: %w", s, err)
	}
	imagPart, err := strconv.ParseFloat(strings.TrimSpace(im), 64)
	if err != nil {
		return newton.Root{}, fmt.Errorf("settings: malformed root %q: %w", s, err)
	}

	root := newton.Root{Value: complex(realPart, imagPart), Color: newton.Palette[0]}
	if hasColor {
		root.Color, err = newton.Hex(strings.TrimSpace(colorPart))
		if err != nil {
			return newton.Root{}, fmt.Errorf("settings: malformed root %q: %w", s, err)
		}
	}
	return root, nil
}

// FormatRoot is the inverse of ParseRoot.
func FormatRoot(r newton.Root) string {
	return fmt.Sprintf("%s,%s : %s",
		formatFloat(real(r.Value)), formatFloat(imag(r.Value)), newton.HexString(r.Color))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
