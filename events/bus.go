package events

// Unsubscribe removes a handler, safe to call repeatedly
type Unsubscribe func()

type subscription struct {
	id      uint64
	handler Handler
	active  bool
}

// Bus dispatches host input events to subscribed handlers
//
// Architecture:
//   - Single-threaded dispatch on the runtime goroutine (hosts emit through engine.Runtime.Post)
//   - Multiple handlers can subscribe to the same event type
//   - Handlers are invoked in subscription order
//   - Unsubscribing during dispatch takes effect immediately
type Bus struct {
	handlers [eventTypeCount][]*subscription
	lastID   uint64
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h for events of type t
func (b *Bus) Subscribe(t EventType, h Handler) Unsubscribe {
	if h == nil || t < 0 || t >= eventTypeCount {
		return func() {}
	}
	b.lastID++
	sub := &subscription{id: b.lastID, handler: h, active: true}
	b.handlers[t] = append(b.handlers[t], sub)

	return func() {
		if !sub.active {
			return
		}
		sub.active = false
		list := b.handlers[t]
		for i, s := range list {
			if s == sub {
				b.handlers[t] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
	}
}

// Emit dispatches ev synchronously to the handlers subscribed at call time
func (b *Bus) Emit(ev Event) {
	if ev.Type < 0 || ev.Type >= eventTypeCount {
		return
	}
	list := b.handlers[ev.Type]
	if len(list) == 0 {
		return
	}
	snapshot := make([]*subscription, len(list))
	copy(snapshot, list)
	for _, s := range snapshot {
		if s.active {
			s.handler(ev)
		}
	}
}

// HandlerCount returns the number of handlers subscribed to t
func (b *Bus) HandlerCount(t EventType) int {
	if t < 0 || t >= eventTypeCount {
		return 0
	}
	return len(b.handlers[t])
}

// ListenerCount returns the number of handlers across all event types
func (b *Bus) ListenerCount() int {
	n := 0
	for _, list := range b.handlers {
		n += len(list)
	}
	return n
}

// --- typed helpers ---

// OnPointerMove subscribes to pointer motion
func (b *Bus) OnPointerMove(fn func(x, y float64)) Unsubscribe {
	return b.Subscribe(EventPointerMove, func(ev Event) { fn(ev.X, ev.Y) })
}

// OnPointerOver subscribes to pointer target changes
func (b *Bus) OnPointerOver(fn func(target Node)) Unsubscribe {
	return b.Subscribe(EventPointerOver, func(ev Event) { fn(ev.Target) })
}

// OnResize subscribes to viewport resizes
func (b *Bus) OnResize(fn func(width, height float64)) Unsubscribe {
	return b.Subscribe(EventResize, func(ev Event) { fn(ev.Width, ev.Height) })
}

// OnVisibility subscribes to visibility changes of the element identified by key
func (b *Bus) OnVisibility(key string, fn func(visible bool)) Unsubscribe {
	return b.Subscribe(EventVisibility, func(ev Event) {
		if ev.Key == key {
			fn(ev.Visible)
		}
	})
}

// EmitPointerMove is a convenience for hosts
func (b *Bus) EmitPointerMove(x, y float64) {
	b.Emit(Event{Type: EventPointerMove, X: x, Y: y})
}

// EmitPointerOver is a convenience for hosts
func (b *Bus) EmitPointerOver(target Node) {
	b.Emit(Event{Type: EventPointerOver, Target: target})
}

// EmitResize is a convenience for hosts
func (b *Bus) EmitResize(width, height float64) {
	b.Emit(Event{Type: EventResize, Width: width, Height: height})
}

// EmitVisibility is a convenience for hosts
func (b *Bus) EmitVisibility(key string, visible bool) {
	b.Emit(Event{Type: EventVisibility, Key: key, Visible: visible})
}
