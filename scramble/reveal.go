package scramble

import (
	"log"

	"github.com/lixenwraith/lumen/engine"
	"github.com/lixenwraith/lumen/events"
	"github.com/lixenwraith/lumen/vmath"
)

// Reveal drives an Engine with deferred ticks
// Every tick is an independent timer; Dispose cancels whichever one is pending
type Reveal struct {
	res    *engine.Resource
	engine *Engine
	cfg    Config

	pending   engine.TimerID
	listeners []func(string)
	unsubs    []events.Unsubscribe

	triggered bool
	active    bool
	disposed  bool
}

// NewReveal creates an idle reveal of target
func NewReveal(res *engine.Resource, target string, cfg Config, rng vmath.Source) *Reveal {
	return &Reveal{
		res:    res,
		engine: New(target, cfg, rng),
		cfg:    cfg,
	}
}

// Engine returns the underlying state machine
func (r *Reveal) Engine() *Engine {
	return r.engine
}

// Display returns the current text
func (r *Reveal) Display() string {
	return r.engine.Display()
}

// OnUpdate registers fn to receive the display after every change
func (r *Reveal) OnUpdate(fn func(display string)) {
	if fn != nil {
		r.listeners = append(r.listeners, fn)
	}
}

// ArmOnVisible triggers the reveal the first time the element under key becomes visible
func (r *Reveal) ArmOnVisible(key string) {
	bus := r.res.Events()
	if bus == nil || r.triggered || r.disposed {
		return
	}
	var unsub events.Unsubscribe
	unsub = bus.OnVisibility(key, func(visible bool) {
		if !visible {
			return
		}
		unsub()
		r.Trigger()
	})
	r.unsubs = append(r.unsubs, unsub)
}

// Trigger starts the reveal after the configured start delay; only the first call has effect
func (r *Reveal) Trigger() {
	if r.triggered || r.disposed {
		return
	}
	r.triggered = true

	if r.engine.State() == StateSettled {
		r.notify()
		return
	}

	timers := r.res.Timers()
	if timers == nil {
		log.Printf("[scramble] no timer scheduler, settling %q immediately", r.engine.Target())
		r.engine.Settle()
		r.notify()
		return
	}

	r.active = true
	r.res.EffectStarted()
	if r.cfg.StartDelay > 0 {
		r.pending = timers.AfterFunc(r.cfg.StartDelay, r.begin)
		return
	}
	r.begin()
}

func (r *Reveal) begin() {
	r.pending = 0
	r.engine.Start()
	r.notify()
	r.schedule()
}

func (r *Reveal) schedule() {
	r.pending = r.res.Timers().AfterFunc(r.cfg.Interval, r.tick)
}

func (r *Reveal) tick() {
	r.pending = 0
	r.engine.Step()
	r.notify()

	if r.engine.State() == StateSettled {
		r.res.PlayCue(engine.CueChime)
		r.finish()
		return
	}
	r.res.PlayCue(engine.CueTick)
	r.schedule()
}

func (r *Reveal) notify() {
	display := r.engine.Display()
	for _, fn := range r.listeners {
		fn(display)
	}
}

func (r *Reveal) finish() {
	if r.active {
		r.active = false
		r.res.EffectStopped()
	}
}

// Settled reports whether the display has reached its target
func (r *Reveal) Settled() bool {
	return r.engine.State() == StateSettled
}

// Dispose cancels the pending tick and visibility listener; idempotent
func (r *Reveal) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	if r.pending != 0 {
		r.res.Timers().CancelTimer(r.pending)
		r.pending = 0
	}
	for _, unsub := range r.unsubs {
		unsub()
	}
	r.unsubs = nil
	r.listeners = nil
	r.finish()
}
