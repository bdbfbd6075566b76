package events

// EventType represents the type of host input event
type EventType int

const (
	// EventPointerMove reports the pointer position in viewport coordinates
	// Trigger: host mouse motion | Consumer: pointer.Cursor | Payload: X, Y
	EventPointerMove EventType = iota

	// EventPointerOver reports the element under the pointer
	// Trigger: host hit test on motion | Consumer: pointer.Cursor | Payload: Target
	EventPointerOver

	// EventResize reports new viewport dimensions
	// Trigger: host window/terminal resize | Consumer: particle.Effect, fittext.Effect | Payload: Width, Height
	EventResize

	// EventVisibility reports an element entering or leaving the viewport
	// Trigger: host layout pass | Consumer: counter.Counter, scramble.Reveal | Payload: Key, Visible
	EventVisibility

	eventTypeCount
)

// String returns the event name used in logs
func (t EventType) String() string {
	switch t {
	case EventPointerMove:
		return "pointer-move"
	case EventPointerOver:
		return "pointer-over"
	case EventResize:
		return "resize"
	case EventVisibility:
		return "visibility"
	default:
		return "unknown"
	}
}

// Node is a host element in a parent chain, used for interactive-ancestor hit tests
type Node interface {
	// Kind is the element kind, e.g. "a", "button", "div"
	Kind() string
	// Parent returns the enclosing element, nil at the root
	Parent() Node
}

// Event is a single host input event, fields are populated per Type
type Event struct {
	Type EventType

	X, Y          float64
	Width, Height float64
	Target        Node
	Key           string
	Visible       bool
}

// Handler receives dispatched events
type Handler func(ev Event)

// Element is a plain Node implementation for hosts without a DOM
type Element struct {
	Tag    string
	Within *Element
}

// NewElement creates an element nested in parent, parent may be nil
func NewElement(tag string, parent *Element) *Element {
	return &Element{Tag: tag, Within: parent}
}

// Kind implements Node
func (e *Element) Kind() string {
	if e == nil {
		return ""
	}
	return e.Tag
}

// Parent implements Node
func (e *Element) Parent() Node {
	// Return an untyped nil so callers can compare against nil
	if e == nil || e.Within == nil {
		return nil
	}
	return e.Within
}
