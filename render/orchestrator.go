package render

type layerEntry struct {
	name     string
	list     *DisplayList
	priority Priority
	index    int // registration order for stable sort
	hidden   bool
}

// Orchestrator owns one display list per effect and composites them by priority
type Orchestrator struct {
	layers   []layerEntry
	regCount int
	width    float64
	height   float64
}

// NewOrchestrator creates an orchestrator for a viewport of the given extent
func NewOrchestrator(width, height float64) *Orchestrator {
	return &Orchestrator{
		layers: make([]layerEntry, 0, 8),
		width:  width,
		height: height,
	}
}

// Layer returns the display list registered under name, creating it at priority p on first use
// Maintains sorted order via insertion sort
func (o *Orchestrator) Layer(name string, p Priority) *DisplayList {
	for _, e := range o.layers {
		if e.name == name {
			return e.list
		}
	}

	entry := layerEntry{
		name:     name,
		list:     NewDisplayList(o.width, o.height),
		priority: p,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if p < e.priority || (p == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
	return entry.list
}

// Remove drops the layer registered under name
func (o *Orchestrator) Remove(name string) {
	for i, e := range o.layers {
		if e.name == name {
			o.layers = append(o.layers[:i], o.layers[i+1:]...)
			return
		}
	}
}

// SetVisible toggles whether a layer takes part in compositing
func (o *Orchestrator) SetVisible(name string, visible bool) {
	for i := range o.layers {
		if o.layers[i].name == name {
			o.layers[i].hidden = !visible
			return
		}
	}
}

// LayerNames returns layer names in composite order
func (o *Orchestrator) LayerNames() []string {
	names := make([]string, len(o.layers))
	for i, e := range o.layers {
		names[i] = e.name
	}
	return names
}

// Resize updates the extent reported by every layer
func (o *Orchestrator) Resize(width, height float64) {
	o.width, o.height = width, height
	for _, e := range o.layers {
		e.list.Resize(width, height)
	}
}

// Size returns the viewport extent
func (o *Orchestrator) Size() (float64, float64) {
	return o.width, o.height
}

// Composite clears dst and replays every visible layer in priority order
func (o *Orchestrator) Composite(dst Surface) {
	if dst == nil {
		return
	}
	dst.Clear()
	for _, e := range o.layers {
		if e.hidden {
			continue
		}
		e.list.Replay(dst)
	}
}
