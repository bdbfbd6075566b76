package visual

import (
	"github.com/lixenwraith/lumen/parameter"
	"github.com/lixenwraith/lumen/render"
)

// Page palette
var (
	ColorBackground = render.Color{R: 0x07, G: 0x08, B: 0x0b, A: 1}
	ColorAccent     = render.Color{R: 0x4f, G: 0x8e, B: 0xf7, A: 1}
	ColorAccentDark = render.Color{R: 0x3a, G: 0x7a, B: 0xe0, A: 1}
	ColorText       = render.Color{R: 0xe8, G: 0xea, B: 0xf0, A: 1}
	ColorMuted      = render.Color{R: 0xff, G: 0xff, B: 0xff, A: 0.32}
	ColorRule       = render.Color{R: 0xff, G: 0xff, B: 0xff, A: 0.1}
	ColorTrack      = render.Color{R: 0xff, G: 0xff, B: 0xff, A: 0.08}
	ColorGlow       = render.Color{R: 0x3b, G: 0x82, B: 0xf6, A: 0.1}
	ColorWhite      = render.ColorWhite
)

// Effect colors
var (
	// ColorParticle is the particle and link base color, alpha is applied per particle/link
	ColorParticle = ColorAccent

	// ColorCursorDot is the raw pointer dot
	ColorCursorDot = ColorAccent

	// ColorCursorRing is the smoothed ring at rest
	ColorCursorRing = ColorAccent.WithAlpha(parameter.CursorRingAlpha)

	// ColorCursorRingHover is the ring over an interactive element
	ColorCursorRingHover = ColorText.WithAlpha(0.7)

	// ColorGrid is the backdrop grid line color
	ColorGrid = ColorWhite.WithAlpha(parameter.GridAlpha)

	// ColorSpotlight is the wide disc under the pointer
	ColorSpotlight = ColorAccent.WithAlpha(parameter.CursorSpotlightAlpha)
)
