package scene

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/lumen/config"
	"github.com/lixenwraith/lumen/engine"
	"github.com/lixenwraith/lumen/engine/status"
	"github.com/lixenwraith/lumen/events"
	"github.com/lixenwraith/lumen/parameter"
	"github.com/lixenwraith/lumen/render"
	"github.com/lixenwraith/lumen/vmath"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type harness struct {
	rt    *engine.Runtime
	bus   *events.Bus
	res   *engine.Resource
	orch  *render.Orchestrator
	scene *Landing
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	rt := engine.NewVirtualRuntime(epoch, 10*time.Millisecond)
	bus := events.NewBus()
	res := &engine.Resource{Scheduler: rt, Bus: bus, Status: rt.Status()}
	orch := render.NewOrchestrator(800, 600)
	l := New(res, orch, config.Default(), Options{Rand: vmath.NewSeededSource(7)})
	return &harness{rt: rt, bus: bus, res: res, orch: orch, scene: l}
}

func (h *harness) activeEffects() int64 {
	return h.rt.Status().Ints.Get(status.MetricActiveEffects).Load()
}

func TestLandingRegistersLayersInPriorityOrder(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, []string{LayerBackdrop, LayerParticles, LayerContent, LayerCursor, LayerIntro}, h.orch.LayerNames())
}

func TestLandingIntroThenContent(t *testing.T) {
	h := newHarness(t)
	h.scene.Start()

	h.rt.Advance(100 * time.Millisecond)
	content := h.orch.Layer(LayerContent, render.PriorityText)
	intro := h.orch.Layer(LayerIntro, render.PriorityOverlay)
	assert.False(t, h.scene.ContentMounted())
	assert.Equal(t, 0, content.Count(render.OpText), "content hidden during intro")
	assert.Equal(t, 1, intro.Count(render.OpText))

	// Content mounts at 2.2s, the intro has faded by 1.6s + 0.9s
	h.rt.Advance(2500 * time.Millisecond)
	assert.True(t, h.scene.ContentMounted())
	assert.True(t, h.scene.IntroDone())
	assert.Equal(t, 0, intro.Len())
	assert.Greater(t, content.Count(render.OpText), 0)
}

func TestLandingHeadlineSettles(t *testing.T) {
	h := newHarness(t)
	h.scene.Start()

	h.rt.Advance(parameter.IntroContentDelay + parameter.RevealHeadingDelay + 50*time.Millisecond)
	assert.False(t, h.scene.Headline().Settled(), "scramble runs after the heading mounts")

	h.rt.Advance(parameter.ScrambleTicks*parameter.ScrambleInterval + 100*time.Millisecond)
	assert.True(t, h.scene.Headline().Settled())
	assert.Equal(t, "Invest in IT startups", h.scene.Headline().Display())
}

func TestLandingCountersReachTargets(t *testing.T) {
	h := newHarness(t)
	h.scene.Start()

	h.rt.Advance(parameter.IntroContentDelay + parameter.RevealStatsDelay + 10*time.Millisecond)
	for _, c := range h.scene.Counters() {
		assert.False(t, c.Done())
	}

	h.rt.Advance(parameter.CounterDuration + 100*time.Millisecond)
	counters := h.scene.Counters()
	require.Len(t, counters, 3)
	for _, c := range counters {
		assert.True(t, c.Done())
		assert.Equal(t, c.Target(), c.Value())
	}
	assert.Equal(t, "128+", counters[0].Display())
	assert.Equal(t, "$12,500,000", counters[1].Display())
}

func TestLandingHitTestFindsActions(t *testing.T) {
	h := newHarness(t)
	h.scene.Start()

	assert.Nil(t, h.scene.HitTest(400, 300))

	h.rt.Advance(parameter.IntroContentDelay + parameter.RevealActionDelay + time.Second)

	a := h.scene.actions[0]
	require.True(t, a.shown)
	x, y := (a.x0+a.x1)/2, (a.y0+a.y1)/2
	node := h.scene.HitTest(x, y)
	require.NotNil(t, node)
	assert.Equal(t, "a", node.Kind())

	// Feeding the hit into the bus drives the cursor hover
	h.bus.EmitPointerMove(x, y)
	h.bus.EmitPointerOver(node)
	h.rt.Advance(50 * time.Millisecond)
	assert.True(t, h.scene.Cursor().Tracker().State().Hover)
}

func TestLandingResizeFollowsViewport(t *testing.T) {
	h := newHarness(t)
	h.scene.Start()

	h.bus.EmitResize(400, 300)

	w, hh := h.orch.Size()
	assert.Equal(t, 400.0, w)
	assert.Equal(t, 300.0, hh)
	assert.Equal(t, 400-2*parameter.SceneHeadlineInset, h.scene.Fit().Container())
	fw, fh := h.scene.Particles().Field().Size()
	assert.Equal(t, 400.0, fw)
	assert.Equal(t, 300.0, fh)
}

func TestLandingDisposeIsLeakFree(t *testing.T) {
	tests := []struct {
		name  string
		after time.Duration
	}{
		{"during intro", 300 * time.Millisecond},
		{"while scrambling", parameter.IntroContentDelay + parameter.RevealHeadingDelay + 200*time.Millisecond},
		{"while counting", parameter.IntroContentDelay + parameter.RevealStatsDelay + 500*time.Millisecond},
		{"settled", 8 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.scene.Start()
			h.rt.Advance(tt.after)
			assert.Greater(t, h.activeEffects(), int64(0))

			h.scene.Dispose()
			h.scene.Dispose()

			assert.Equal(t, 0, h.rt.PendingFrames())
			assert.Equal(t, 0, h.rt.PendingTimers())
			assert.Equal(t, 0, h.bus.ListenerCount())
			assert.Equal(t, int64(0), h.activeEffects())

			// Nothing runs after dispose
			h.rt.Advance(5 * time.Second)
			assert.Equal(t, 0, h.rt.PendingFrames())
		})
	}
}

func TestLandingWithoutScheduler(t *testing.T) {
	orch := render.NewOrchestrator(800, 600)
	l := New(&engine.Resource{}, orch, nil, Options{})

	l.Start()
	defer l.Dispose()

	assert.True(t, l.ContentMounted())
	assert.True(t, l.Headline().Settled())
	for _, c := range l.Counters() {
		assert.True(t, c.Done())
	}
}
