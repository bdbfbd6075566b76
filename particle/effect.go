package particle

import (
	"log"
	"time"

	"github.com/lixenwraith/lumen/engine"
	"github.com/lixenwraith/lumen/events"
	"github.com/lixenwraith/lumen/render"
	"github.com/lixenwraith/lumen/vmath"
)

// Effect animates a field on a surface: each frame clears, renders, then steps
type Effect struct {
	res      *engine.Resource
	field    *Field
	surface  render.Surface
	loop     *engine.AnimationLoop
	unsubs   []events.Unsubscribe
	started  bool
	disposed bool
}

// NewEffect seeds a field sized to surface
// A nil surface yields an effect whose Start is a no-op
func NewEffect(res *engine.Resource, surface render.Surface, cfg Config, rng vmath.Source) *Effect {
	e := &Effect{
		res:     res,
		surface: surface,
		loop:    engine.NewAnimationLoop(res.Frames()),
	}
	if surface == nil {
		log.Printf("[particle] no drawing surface, field disabled")
		return e
	}
	w, h := surface.Size()
	e.field = NewField(w, h, cfg, rng)
	return e
}

// Field returns the simulated field, nil when the effect is disabled
func (e *Effect) Field() *Field {
	return e.field
}

// Start begins the frame loop and follows viewport resizes
func (e *Effect) Start() {
	if e.started || e.disposed || e.field == nil {
		return
	}
	e.started = true

	if bus := e.res.Events(); bus != nil {
		e.unsubs = append(e.unsubs, bus.OnResize(e.field.Resize))
	}
	e.loop.Start(e.frame)
	e.res.EffectStarted()
}

func (e *Effect) frame(_ time.Time) {
	e.surface.Clear()
	e.field.Render(e.surface)
	e.field.Step()
}

// Running reports whether frames are still being requested
func (e *Effect) Running() bool {
	return e.loop.Running()
}

// Dispose stops the loop and removes listeners; idempotent
func (e *Effect) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.loop.Stop()
	for _, unsub := range e.unsubs {
		unsub()
	}
	e.unsubs = nil
	if e.started {
		e.res.EffectStopped()
	}
}
