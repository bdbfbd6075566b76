package counter

import (
	"log"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lixenwraith/lumen/engine"
	"github.com/lixenwraith/lumen/events"
	"github.com/lixenwraith/lumen/parameter"
)

// Value is the quadratic ease-in count at progress p: floor(p^2 * target)
// p <= 0 yields 0 and p >= 1 yields exactly target
func Value(p float64, target int) int {
	if target <= 0 || !(p > 0) {
		return 0
	}
	if p >= 1 {
		return target
	}
	v := int(math.Floor(p * p * float64(target)))
	if v > target {
		v = target
	}
	return v
}

// Config describes one count-up
type Config struct {
	Target   int
	Duration time.Duration
	Delay    time.Duration
	Prefix   string
	Suffix   string
	Locale   string // BCP 47 tag for digit grouping
}

// DefaultConfig returns a 2s count-up to target with English grouping
func DefaultConfig(target int) Config {
	return Config{
		Target:   target,
		Duration: parameter.CounterDuration,
		Locale:   parameter.CounterLocale,
	}
}

// Counter eases a displayed integer from 0 to its target once
type Counter struct {
	res     *engine.Resource
	cfg     Config
	printer *message.Printer
	loop    *engine.AnimationLoop

	start   time.Time
	value   int
	pending engine.TimerID
	unsubs  []events.Unsubscribe

	listeners []func(value int, display string)

	scheduled bool
	active    bool
	done      bool
	disposed  bool
}

// New creates an idle counter; a negative target is clamped to 0
func New(res *engine.Resource, cfg Config) *Counter {
	if cfg.Target < 0 {
		cfg.Target = 0
	}
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	return &Counter{
		res:     res,
		cfg:     cfg,
		printer: newPrinter(cfg.Locale),
		loop:    engine.NewAnimationLoop(res.Frames()),
	}
}

func newPrinter(locale string) *message.Printer {
	if locale == "" {
		locale = parameter.CounterLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		log.Printf("[counter] unknown locale %q, using English: %v", locale, err)
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// OnUpdate registers fn to receive every displayed value change
func (c *Counter) OnUpdate(fn func(value int, display string)) {
	if fn != nil {
		c.listeners = append(c.listeners, fn)
	}
}

// ArmOnVisible runs the counter the first time the element under key becomes visible
// Later visibility changes are ignored
func (c *Counter) ArmOnVisible(key string) {
	bus := c.res.Events()
	if bus == nil || c.scheduled || c.disposed {
		return
	}
	var unsub events.Unsubscribe
	unsub = bus.OnVisibility(key, func(visible bool) {
		if !visible {
			return
		}
		unsub()
		c.Run()
	})
	c.unsubs = append(c.unsubs, unsub)
}

// Run schedules the count-up after the configured delay; only the first call has effect
// A non-positive duration or missing scheduler jumps straight to the target
func (c *Counter) Run() {
	if c.scheduled || c.disposed {
		return
	}
	c.scheduled = true

	timers := c.res.Timers()
	if c.cfg.Duration <= 0 || timers == nil || c.res.Frames() == nil {
		c.finish()
		return
	}

	c.active = true
	c.res.EffectStarted()
	if c.cfg.Delay > 0 {
		c.pending = timers.AfterFunc(c.cfg.Delay, c.begin)
		return
	}
	c.begin()
}

func (c *Counter) begin() {
	c.pending = 0
	c.start = c.res.Timers().Now()
	c.loop.Start(c.frame)
}

func (c *Counter) frame(now time.Time) {
	elapsed := now.Sub(c.start)
	p := float64(elapsed) / float64(c.cfg.Duration)
	if p >= 1 {
		c.loop.Stop()
		c.finish()
		return
	}
	if v := Value(p, c.cfg.Target); v > c.value {
		c.value = v
		c.notify()
	}
}

func (c *Counter) finish() {
	c.done = true
	if c.value != c.cfg.Target {
		c.value = c.cfg.Target
		c.notify()
	}
	if c.active {
		c.active = false
		c.res.PlayCue(engine.CueChime)
		c.res.EffectStopped()
	}
}

func (c *Counter) notify() {
	display := c.Display()
	for _, fn := range c.listeners {
		fn(c.value, display)
	}
}

// Value returns the displayed integer
func (c *Counter) Value() int {
	return c.value
}

// Target returns the clamped target
func (c *Counter) Target() int {
	return c.cfg.Target
}

// Done reports whether the target has been reached
func (c *Counter) Done() bool {
	return c.done
}

// Display returns prefix, the grouped value, and suffix
func (c *Counter) Display() string {
	return c.Format(c.value)
}

// Format renders n with the counter's locale grouping and affixes
func (c *Counter) Format(n int) string {
	return c.cfg.Prefix + c.printer.Sprintf("%d", n) + c.cfg.Suffix
}

// Dispose cancels a pending start, the frame loop and the visibility gate; idempotent
func (c *Counter) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	if c.pending != 0 {
		c.res.Timers().CancelTimer(c.pending)
		c.pending = 0
	}
	c.loop.Stop()
	for _, unsub := range c.unsubs {
		unsub()
	}
	c.unsubs = nil
	c.listeners = nil
	if c.active {
		c.active = false
		c.res.EffectStopped()
	}
}
