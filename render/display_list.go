package render

// OpKind identifies a recorded drawing primitive
type OpKind uint8

const (
	OpFillCircle OpKind = iota
	OpStrokeCircle
	OpStrokeLine
	OpText
)

// Op is one recorded drawing primitive
type Op struct {
	Kind OpKind

	X1, Y1, X2, Y2 float64
	R              float64 // Radius for circles
	Width          float64 // Line width for strokes
	Size           float64 // Font size for text
	Text           string
	Color          Color
}

// DisplayList is a Surface that records primitives for later replay
// Each effect paints into its own list; the orchestrator replays lists onto the backend
type DisplayList struct {
	ops  []Op
	w, h float64
}

// NewDisplayList creates an empty list with the given extent
func NewDisplayList(w, h float64) *DisplayList {
	return &DisplayList{
		ops: make([]Op, 0, 64),
		w:   w,
		h:   h,
	}
}

// Resize updates the reported extent, recorded ops are kept
func (d *DisplayList) Resize(w, h float64) {
	d.w, d.h = w, h
}

// Size implements Surface
func (d *DisplayList) Size() (float64, float64) {
	return d.w, d.h
}

// Clear implements Surface, keeps capacity for reuse across frames
func (d *DisplayList) Clear() {
	d.ops = d.ops[:0]
}

// FillCircle implements Surface
func (d *DisplayList) FillCircle(x, y, r float64, c Color) {
	d.ops = append(d.ops, Op{Kind: OpFillCircle, X1: x, Y1: y, R: r, Color: c})
}

// StrokeCircle implements Surface
func (d *DisplayList) StrokeCircle(x, y, r, width float64, c Color) {
	d.ops = append(d.ops, Op{Kind: OpStrokeCircle, X1: x, Y1: y, R: r, Width: width, Color: c})
}

// StrokeLine implements Surface
func (d *DisplayList) StrokeLine(x1, y1, x2, y2, width float64, c Color) {
	d.ops = append(d.ops, Op{Kind: OpStrokeLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Color: c})
}

// DrawText implements TextDrawer
func (d *DisplayList) DrawText(x, y float64, s string, size float64, c Color) {
	d.ops = append(d.ops, Op{Kind: OpText, X1: x, Y1: y, Text: s, Size: size, Color: c})
}

// Ops returns the recorded primitives, valid until the next Clear
func (d *DisplayList) Ops() []Op {
	return d.ops
}

// Len returns the number of recorded primitives
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Count returns the number of recorded primitives of kind k
func (d *DisplayList) Count(k OpKind) int {
	n := 0
	for i := range d.ops {
		if d.ops[i].Kind == k {
			n++
		}
	}
	return n
}

// Replay draws every recorded primitive onto dst in order
// Text is skipped when dst cannot draw text
func (d *DisplayList) Replay(dst Surface) {
	td, canText := dst.(TextDrawer)
	for i := range d.ops {
		op := &d.ops[i]
		switch op.Kind {
		case OpFillCircle:
			dst.FillCircle(op.X1, op.Y1, op.R, op.Color)
		case OpStrokeCircle:
			dst.StrokeCircle(op.X1, op.Y1, op.R, op.Width, op.Color)
		case OpStrokeLine:
			dst.StrokeLine(op.X1, op.Y1, op.X2, op.Y2, op.Width, op.Color)
		case OpText:
			if canText {
				td.DrawText(op.X1, op.Y1, op.Text, op.Size, op.Color)
			}
		}
	}
}
