package pointer

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/lumen/events"
	"github.com/lixenwraith/lumen/parameter"
	"github.com/lixenwraith/lumen/vmath"
)

// State is a snapshot of the tracked pointer
type State struct {
	Raw      vmath.Vec2 // Last reported position
	Smoothed vmath.Vec2 // Lags Raw, converging geometrically
	Hover    bool       // Over an interactive element
	Scale    float64    // Ring scale, 1 at rest
}

// Config tunes smoothing and hover behavior
type Config struct {
	// Smoothing is the fraction of the remaining gap closed per frame, in (0, 1]
	Smoothing float64
	// HoverScale is the ring scale target while hovering
	HoverScale float64
	// InteractiveKinds are node kinds that trigger hover, on the target or any ancestor
	InteractiveKinds []string
}

// DefaultConfig returns the landing page cursor tuning
func DefaultConfig() Config {
	return Config{
		Smoothing:        parameter.PointerSmoothing,
		HoverScale:       parameter.CursorHoverScale,
		InteractiveKinds: parameter.InteractiveKinds,
	}
}

// Tracker separates input capture from per-frame smoothing
// OnMove and OnOver only record input; Step advances smoothing and scale once per frame
type Tracker struct {
	state State
	seen  bool

	alpha      float64
	hoverScale float64
	kinds      map[string]struct{}

	spring   harmonica.Spring
	scaleVel float64
}

// NewTracker creates a tracker whose scale spring is stepped at frameInterval
func NewTracker(cfg Config, frameInterval time.Duration) *Tracker {
	if cfg.Smoothing <= 0 || math.IsNaN(cfg.Smoothing) {
		cfg.Smoothing = parameter.PointerSmoothing
	}
	if cfg.Smoothing > 1 {
		cfg.Smoothing = 1
	}
	if cfg.HoverScale <= 0 || math.IsNaN(cfg.HoverScale) || math.IsInf(cfg.HoverScale, 0) {
		cfg.HoverScale = 1
	}
	if frameInterval <= 0 {
		frameInterval = parameter.FrameInterval
	}

	kinds := make(map[string]struct{}, len(cfg.InteractiveKinds))
	for _, k := range cfg.InteractiveKinds {
		kinds[k] = struct{}{}
	}

	return &Tracker{
		state:      State{Scale: 1},
		alpha:      cfg.Smoothing,
		hoverScale: cfg.HoverScale,
		kinds:      kinds,
		spring:     harmonica.NewSpring(frameInterval.Seconds(), parameter.CursorScaleFrequency, parameter.CursorScaleDamping),
	}
}

// OnMove records a raw pointer position, non-finite positions are dropped
// The first position also snaps the smoothed position so the ring does not sweep in from the origin
func (t *Tracker) OnMove(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return
	}
	t.state.Raw = vmath.Vec2{X: x, Y: y}
	if !t.seen {
		t.state.Smoothed = t.state.Raw
		t.seen = true
	}
}

// OnOver records the element under the pointer
func (t *Tracker) OnOver(target events.Node) {
	t.state.Hover = t.interactive(target)
}

func (t *Tracker) interactive(n events.Node) bool {
	for ; n != nil; n = n.Parent() {
		if _, ok := t.kinds[n.Kind()]; ok {
			return true
		}
	}
	return false
}

// Step advances smoothing and the hover scale by one frame
func (t *Tracker) Step() {
	t.state.Smoothed = t.state.Smoothed.Approach(t.state.Raw, t.alpha)

	target := 1.0
	if t.state.Hover {
		target = t.hoverScale
	}
	t.state.Scale, t.scaleVel = t.spring.Update(t.state.Scale, t.scaleVel, target)
}

// State returns the current snapshot
func (t *Tracker) State() State {
	return t.state
}

// Seen reports whether any pointer position has been recorded
func (t *Tracker) Seen() bool {
	return t.seen
}

// HoverProgress maps the scale onto [0, 1] between rest and the hover target
func (t *Tracker) HoverProgress() float64 {
	if t.hoverScale == 1 {
		if t.state.Hover {
			return 1
		}
		return 0
	}
	return vmath.Clamp01((t.state.Scale - 1) / (t.hoverScale - 1))
}
