package fittext

import (
	"github.com/lixenwraith/lumen/engine"
	"github.com/lixenwraith/lumen/events"
)

// Effect keeps a headline fitted to the viewport width minus a horizontal inset
type Effect struct {
	res       *engine.Resource
	sizer     *Sizer
	text      string
	inset     float64
	container float64

	listeners []func(size float64)
	unsubs    []events.Unsubscribe
	started   bool
	disposed  bool
}

// NewEffect creates a fitter for text inside a viewport of width, inset on both sides
func NewEffect(res *engine.Resource, m Measurer, text string, width, inset float64) *Effect {
	e := &Effect{
		res:   res,
		sizer: NewSizer(m, 0),
		text:  text,
		inset: inset,
	}
	e.container = width - 2*inset
	e.sizer.Fit(e.text, e.container)
	return e
}

// Start follows viewport resizes
func (e *Effect) Start() {
	if e.started || e.disposed {
		return
	}
	e.started = true
	if bus := e.res.Events(); bus != nil {
		e.unsubs = append(e.unsubs, bus.OnResize(func(w, _ float64) {
			e.SetContainer(w - 2*e.inset)
		}))
	}
}

// OnFit registers fn to receive every recomputed size
func (e *Effect) OnFit(fn func(size float64)) {
	if fn != nil {
		e.listeners = append(e.listeners, fn)
	}
}

// SetText replaces the content and refits
func (e *Effect) SetText(text string) {
	e.text = text
	e.refit()
}

// SetContainer changes the available width and refits
func (e *Effect) SetContainer(width float64) {
	e.container = width
	e.refit()
}

func (e *Effect) refit() {
	if e.disposed {
		return
	}
	size := e.sizer.Fit(e.text, e.container)
	for _, fn := range e.listeners {
		fn(size)
	}
}

// Size returns the fitted font size
func (e *Effect) Size() float64 {
	return e.sizer.Size()
}

// Text returns the current content
func (e *Effect) Text() string {
	return e.text
}

// Container returns the current available width
func (e *Effect) Container() float64 {
	return e.container
}

// Dispose removes the resize listener; idempotent
func (e *Effect) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	for _, unsub := range e.unsubs {
		unsub()
	}
	e.unsubs = nil
	e.listeners = nil
}
