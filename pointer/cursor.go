package pointer

import (
	"log"
	"time"

	"github.com/lixenwraith/lumen/engine"
	"github.com/lixenwraith/lumen/events"
	"github.com/lixenwraith/lumen/parameter"
	"github.com/lixenwraith/lumen/parameter/visual"
	"github.com/lixenwraith/lumen/render"
)

// CursorStyle is the geometry and palette of the painted cursor
type CursorStyle struct {
	DotRadius       float64
	RingRadius      float64
	RingWidth       float64
	SpotlightRadius float64

	Dot       render.Color
	Ring      render.Color
	RingHover render.Color
	Spotlight render.Color
}

// DefaultCursorStyle returns the landing page cursor
func DefaultCursorStyle() CursorStyle {
	return CursorStyle{
		DotRadius:       parameter.CursorDotRadius,
		RingRadius:      parameter.CursorRingRadius,
		RingWidth:       parameter.CursorRingWidth,
		SpotlightRadius: parameter.CursorSpotlightRadius,
		Dot:             visual.ColorCursorDot,
		Ring:            visual.ColorCursorRing,
		RingHover:       visual.ColorCursorRingHover,
		Spotlight:       visual.ColorSpotlight,
	}
}

// Cursor paints a dot at the raw pointer, a lagging ring and a spotlight
// Input handlers only feed the tracker; painting happens once per frame
type Cursor struct {
	res     *engine.Resource
	tracker *Tracker
	surface render.Surface
	style   CursorStyle
	loop    *engine.AnimationLoop
	unsubs  []events.Unsubscribe

	started  bool
	disposed bool
}

type frameIntervaler interface {
	FrameInterval() time.Duration
}

// NewCursor creates an idle cursor effect
// A nil surface still tracks the pointer but paints nothing
func NewCursor(res *engine.Resource, surface render.Surface, cfg Config, style CursorStyle) *Cursor {
	interval := parameter.FrameInterval
	if fi, ok := res.Frames().(frameIntervaler); ok {
		interval = fi.FrameInterval()
	}
	if surface == nil {
		log.Printf("[pointer] no drawing surface, cursor will not be painted")
	}
	return &Cursor{
		res:     res,
		tracker: NewTracker(cfg, interval),
		surface: surface,
		style:   style,
		loop:    engine.NewAnimationLoop(res.Frames()),
	}
}

// Tracker returns the underlying tracker
func (c *Cursor) Tracker() *Tracker {
	return c.tracker
}

// Start registers pointer listeners and begins the frame loop
func (c *Cursor) Start() {
	if c.started || c.disposed {
		return
	}
	c.started = true

	if bus := c.res.Events(); bus != nil {
		c.unsubs = append(c.unsubs,
			bus.OnPointerMove(c.tracker.OnMove),
			bus.OnPointerOver(c.tracker.OnOver),
		)
	}
	c.loop.Start(c.frame)
	c.res.EffectStarted()
}

func (c *Cursor) frame(_ time.Time) {
	c.tracker.Step()
	if c.surface == nil {
		return
	}
	c.surface.Clear()
	if !c.tracker.Seen() {
		return
	}

	st := c.tracker.State()
	ring := render.Lerp(c.style.Ring, c.style.RingHover, c.tracker.HoverProgress())

	c.surface.FillCircle(st.Raw.X, st.Raw.Y, c.style.SpotlightRadius, c.style.Spotlight)
	c.surface.StrokeCircle(st.Smoothed.X, st.Smoothed.Y, c.style.RingRadius*st.Scale, c.style.RingWidth, ring)
	c.surface.FillCircle(st.Raw.X, st.Raw.Y, c.style.DotRadius, c.style.Dot)
}

// Dispose removes listeners and stops the loop; idempotent
func (c *Cursor) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.loop.Stop()
	for _, unsub := range c.unsubs {
		unsub()
	}
	c.unsubs = nil
	if c.started {
		c.res.EffectStopped()
	}
}
