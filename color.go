package paint

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/gogpu/paint/internal/blend"
)

// RGBA represents a straight (non-premultiplied) color with red, green,
// blue, and alpha components. Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: blend.Scale(c.R),
		G: blend.Scale(c.G),
		B: blend.Scale(c.B),
		A: blend.Scale(c.A),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
		A: float64(n.A) / 65535,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// WithAlpha returns c with its alpha replaced by a.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Clamp returns c with every channel clamped to [0, 1]. NaN becomes 0.
func (c RGBA) Clamp() RGBA {
	return RGBA{R: clampUnit(c.R), G: clampUnit(c.G), B: clampUnit(c.B), A: clampUnit(c.A)}
}

// premultiplied converts c to the premultiplied RGBA8 form stored in a Pixmap.
func (c RGBA) premultiplied() blend.Pixel {
	return blend.Premultiply(c.R, c.G, c.B, c.A)
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#'.
// Malformed input yields opaque black.
func Hex(hex string) RGBA {
	c, err := parseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// ParseColor parses a CSS color name (as listed in
// golang.org/x/image/colornames) or a hex string.
func ParseColor(s string) (RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return RGBA{}, fmt.Errorf("paint: color cannot be empty")
	}
	if c, ok := colornames.Map[name]; ok {
		return FromColor(c), nil
	}
	return parseHex(name)
}

func parseHex(s string) (RGBA, error) {
	hex := strings.TrimPrefix(s, "#")

	digits := make([]uint32, len(hex))
	for i := 0; i < len(hex); i++ {
		c := hex[i]
		switch {
		case '0' <= c && c <= '9':
			digits[i] = uint32(c - '0')
		case 'a' <= c && c <= 'f':
			digits[i] = uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			digits[i] = uint32(c - 'A' + 10)
		default:
			return RGBA{}, fmt.Errorf("paint: invalid color %q", s)
		}
	}

	var r, g, b uint32
	a := uint32(255)
	switch len(digits) {
	case 3, 4:
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
		if len(digits) == 4 {
			a = digits[3] * 17
		}
	case 6, 8:
		r = digits[0]<<4 | digits[1]
		g = digits[2]<<4 | digits[3]
		b = digits[4]<<4 | digits[5]
		if len(digits) == 8 {
			a = digits[6]<<4 | digits[7]
		}
	default:
		return RGBA{}, fmt.Errorf("paint: invalid color %q", s)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// clampUnit restricts a value to [0, 1]; NaN maps to 0.
func clampUnit(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA2(0, 0, 0, 0)
)
