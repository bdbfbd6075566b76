package ebitensurface

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/lumen/render"
	"github.com/lixenwraith/lumen/render/fontface"
)

// Surface draws surface primitives onto an ebiten image in device pixels
// Bind a target with Begin before compositing each frame
type Surface struct {
	dst   *ebiten.Image
	w, h  float64
	bg    render.Color
	fonts *fontface.Fonts
}

// New creates a surface clearing to bg; fonts may be nil to drop text
func New(fonts *fontface.Fonts, bg render.Color) *Surface {
	return &Surface{fonts: fonts, bg: bg}
}

// Begin binds dst as the drawing target
func (s *Surface) Begin(dst *ebiten.Image) {
	s.dst = dst
	if dst == nil {
		s.w, s.h = 0, 0
		return
	}
	b := dst.Bounds()
	s.w, s.h = float64(b.Dx()), float64(b.Dy())
}

// SetSize records the layout size before a target is bound
func (s *Surface) SetSize(w, h float64) {
	s.w, s.h = w, h
}

// Size implements render.Surface
func (s *Surface) Size() (float64, float64) {
	return s.w, s.h
}

// Clear fills the target with the background color
func (s *Surface) Clear() {
	if s.dst == nil {
		return
	}
	s.dst.Fill(s.bg)
}

// FillCircle implements render.Surface
func (s *Surface) FillCircle(x, y, r float64, c render.Color) {
	if s.dst == nil || r <= 0 || c.A <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), c, true)
}

// StrokeCircle implements render.Surface
func (s *Surface) StrokeCircle(x, y, r, width float64, c render.Color) {
	if s.dst == nil || r <= 0 || c.A <= 0 {
		return
	}
	vector.StrokeCircle(s.dst, float32(x), float32(y), float32(r), float32(width), c, true)
}

// StrokeLine implements render.Surface
func (s *Surface) StrokeLine(x1, y1, x2, y2, width float64, c render.Color) {
	if s.dst == nil || c.A <= 0 {
		return
	}
	vector.StrokeLine(s.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}

// DrawText implements render.TextDrawer, (x, y) is the top-left of the line box
func (s *Surface) DrawText(x, y float64, str string, size float64, c render.Color) {
	if s.dst == nil || s.fonts == nil || str == "" || c.A <= 0 {
		return
	}
	face, err := s.fonts.Face(size)
	if err != nil {
		log.Printf("[ebiten] %v", err)
		return
	}
	baseline := y + s.fonts.Ascent(size)
	text.Draw(s.dst, str, face, int(x), int(baseline), c)
}

var (
	_ render.Surface    = (*Surface)(nil)
	_ render.TextDrawer = (*Surface)(nil)
)
