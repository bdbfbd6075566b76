package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrchestrator_LayerOrder(t *testing.T) {
	o := NewOrchestrator(100, 50)
	o.Layer("cursor", PriorityCursor)
	o.Layer("particles", PriorityParticle)
	o.Layer("text", PriorityText)
	o.Layer("backdrop", PriorityBackground)
	o.Layer("headline", PriorityText)

	assert.Equal(t, []string{"backdrop", "particles", "text", "headline", "cursor"}, o.LayerNames())
}

func TestOrchestrator_LayerReusedByName(t *testing.T) {
	o := NewOrchestrator(100, 50)
	a := o.Layer("particles", PriorityParticle)
	b := o.Layer("particles", PriorityDebug)

	assert.Same(t, a, b)
	assert.Len(t, o.LayerNames(), 1)
}

func TestOrchestrator_CompositeReplaysInPriorityOrder(t *testing.T) {
	o := NewOrchestrator(100, 50)
	top := o.Layer("cursor", PriorityCursor)
	bottom := o.Layer("particles", PriorityParticle)

	top.FillCircle(1, 1, 3, ColorWhite)
	bottom.StrokeLine(0, 0, 10, 10, 0.5, ColorWhite)
	bottom.FillCircle(5, 5, 1, ColorWhite)

	dst := NewDisplayList(100, 50)
	dst.FillCircle(0, 0, 1, ColorBlack) // stale content is cleared first
	o.Composite(dst)

	ops := dst.Ops()
	require.Len(t, ops, 3)
	assert.Equal(t, OpStrokeLine, ops[0].Kind)
	assert.Equal(t, OpFillCircle, ops[1].Kind)
	assert.Equal(t, 5.0, ops[1].X1)
	assert.Equal(t, 3.0, ops[2].R)
}

func TestOrchestrator_HiddenAndRemovedLayers(t *testing.T) {
	o := NewOrchestrator(100, 50)
	o.Layer("a", PriorityText).FillCircle(1, 1, 1, ColorWhite)
	o.Layer("b", PriorityText).FillCircle(2, 2, 1, ColorWhite)

	dst := NewDisplayList(100, 50)
	o.SetVisible("a", false)
	o.Composite(dst)
	require.Equal(t, 1, dst.Len())
	assert.Equal(t, 2.0, dst.Ops()[0].X1)

	o.SetVisible("a", true)
	o.Remove("b")
	o.Composite(dst)
	require.Equal(t, 1, dst.Len())
	assert.Equal(t, 1.0, dst.Ops()[0].X1)
}

func TestOrchestrator_ResizePropagates(t *testing.T) {
	o := NewOrchestrator(100, 50)
	l := o.Layer("a", PriorityText)
	o.Resize(300, 200)

	w, h := l.Size()
	assert.Equal(t, 300.0, w)
	assert.Equal(t, 200.0, h)
}

func TestDisplayList_ReplaySkipsTextOnPlainSurface(t *testing.T) {
	src := NewDisplayList(10, 10)
	src.DrawText(0, 0, "x", 12, ColorWhite)
	src.StrokeCircle(5, 5, 2, 1, ColorWhite)
	assert.Equal(t, 1, src.Count(OpText))

	dst := &plainSurface{}
	src.Replay(dst)
	assert.Equal(t, 1, dst.calls)

	src.Clear()
	assert.Zero(t, src.Len())
}

type plainSurface struct{ calls int }

func (p *plainSurface) Size() (float64, float64)                          { return 10, 10 }
func (p *plainSurface) Clear()                                            {}
func (p *plainSurface) FillCircle(x, y, r float64, c Color)               { p.calls++ }
func (p *plainSurface) StrokeCircle(x, y, r, width float64, c Color)      { p.calls++ }
func (p *plainSurface) StrokeLine(x1, y1, x2, y2, width float64, c Color) { p.calls++ }
