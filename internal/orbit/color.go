package orbit

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

var (
	Red    = Color{R: 255, G: 0, B: 0}
	Blue   = Color{R: 0, G: 0, B: 255}
	Green  = Color{R: 0, G: 128, B: 0}
	Yellow = Color{R: 255, G: 255, B: 0}
	White  = Color{R: 255, G: 255, B: 255}
	Sun    = Color{R: 255, G: 204, B: 0}
)

// ParseColor accepts "#rrggbb" or "#rgb".
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("orbit: bad color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Blend mixes two colors in Lab space; t=0 gives c, t=1 gives other.
func (c Color) Blend(other Color, t float64) Color {
	r, g, b := c.Colorful().BlendLab(other.Colorful(), t).Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}
