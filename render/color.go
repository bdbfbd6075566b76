package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/lumen/vmath"
)

// Color is a straight (non-premultiplied) RGB color with float alpha in [0, 1]
// Effects compute alpha continuously (edge opacity, fades), so alpha stays a float until rasterization
type Color struct {
	R, G, B uint8
	A       float64
}

// Predefined colors
var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{255, 255, 255, 1}
)

// RGBA builds a color from channels, alpha is clamped to [0, 1]
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: vmath.Clamp01(a)}
}

// ParseHex parses "#rgb" or "#rrggbb" into an opaque color
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: 1}, nil
}

// MustHex is ParseHex for compile-time constants, panics on malformed input
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c with alpha replaced
func (c Color) WithAlpha(a float64) Color {
	c.A = vmath.Clamp01(a)
	return c
}

// Fade returns c with alpha multiplied by f
func (c Color) Fade(f float64) Color {
	c.A = vmath.Clamp01(c.A * f)
	return c
}

// Hex returns the "#rrggbb" form, alpha is dropped
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// RGBA implements image/color.Color with premultiplied alpha
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(vmath.Clamp01(c.A)*0xffff + 0.5)
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Over composites src over an opaque dst (source-over), result is opaque
func Over(dst, src Color) Color {
	if src.A <= 0 {
		dst.A = 1
		return dst
	}
	out := dst.colorful().BlendRgb(src.colorful(), vmath.Clamp01(src.A))
	r, g, b := out.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: 1}
}

// Lerp interpolates two colors in RGB including alpha
func Lerp(a, b Color, t float64) Color {
	t = vmath.Clamp01(t)
	out := a.colorful().BlendRgb(b.colorful(), t)
	r, g, bl := out.Clamped().RGB255()
	return Color{R: r, G: g, B: bl, A: vmath.Lerp(a.A, b.A, t)}
}
