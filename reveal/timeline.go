package reveal

import (
	"time"

	"github.com/lixenwraith/lumen/engine"
)

// Timeline gates one element's entrance: it flips to activated exactly once, delay after Arm
// It never animates by itself; consumers map the activation time through Transitions
type Timeline struct {
	timers  engine.TimerScheduler
	delay   time.Duration
	pending engine.TimerID

	armed       bool
	activated   bool
	disposed    bool
	activatedAt time.Time

	listeners []func(at time.Time)
}

// NewTimeline creates an unarmed timeline, negative delays are treated as zero
func NewTimeline(timers engine.TimerScheduler, delay time.Duration) *Timeline {
	if delay < 0 {
		delay = 0
	}
	return &Timeline{timers: timers, delay: delay}
}

// Delay returns the configured delay
func (t *Timeline) Delay() time.Duration {
	return t.delay
}

// Arm schedules the activation; only the first call has effect
// Without a scheduler the timeline activates immediately so content is never stuck hidden
func (t *Timeline) Arm() {
	if t.armed || t.disposed {
		return
	}
	t.armed = true
	if t.timers == nil {
		t.activate()
		return
	}
	t.pending = t.timers.AfterFunc(t.delay, t.fire)
}

func (t *Timeline) fire() {
	t.pending = 0
	t.activate()
}

func (t *Timeline) activate() {
	if t.activated {
		return
	}
	t.activated = true
	if t.timers != nil {
		t.activatedAt = t.timers.Now()
	}
	for _, fn := range t.listeners {
		fn(t.activatedAt)
	}
}

// Activated reports whether the timeline has fired
func (t *Timeline) Activated() bool {
	return t.activated
}

// ActivatedAt returns the activation time, false before activation
func (t *Timeline) ActivatedAt() (time.Time, bool) {
	return t.activatedAt, t.activated
}

// Elapsed returns time since activation, zero before activation
func (t *Timeline) Elapsed(now time.Time) time.Duration {
	if !t.activated {
		return 0
	}
	if t.activatedAt.IsZero() {
		// Activated without a clock: every transition counts as complete
		return time.Duration(1<<63 - 1)
	}
	return now.Sub(t.activatedAt)
}

// OnActivate registers fn to run at activation, or runs it now if already activated
func (t *Timeline) OnActivate(fn func(at time.Time)) {
	if fn == nil || t.disposed {
		return
	}
	if t.activated {
		fn(t.activatedAt)
		return
	}
	t.listeners = append(t.listeners, fn)
}

// Dispose cancels a pending activation; an activated timeline stays activated
func (t *Timeline) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	if t.pending != 0 {
		t.timers.CancelTimer(t.pending)
		t.pending = 0
	}
	t.listeners = nil
}

// Stagger builds n unarmed timelines with delays base, base+step, base+2*step, ...
func Stagger(timers engine.TimerScheduler, base, step time.Duration, n int) []*Timeline {
	if n <= 0 {
		return nil
	}
	out := make([]*Timeline, n)
	for i := range out {
		out[i] = NewTimeline(timers, base+time.Duration(i)*step)
	}
	return out
}
