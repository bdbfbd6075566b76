package scramble

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/lumen/engine"
	"github.com/lixenwraith/lumen/engine/status"
	"github.com/lixenwraith/lumen/events"
	"github.com/lixenwraith/lumen/vmath"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type recordingPlayer struct {
	cues []engine.Cue
}

func (p *recordingPlayer) Play(c engine.Cue) { p.cues = append(p.cues, c) }

func (p *recordingPlayer) IsMuted() bool { return false }

func newTestResource() (*engine.Runtime, *engine.Resource) {
	rt := engine.NewVirtualRuntime(epoch, 10*time.Millisecond)
	return rt, &engine.Resource{
		Scheduler: rt,
		Bus:       events.NewBus(),
		Status:    status.NewRegistry(),
	}
}

func TestReveal_TicksAtInterval(t *testing.T) {
	rt, res := newTestResource()
	player := &recordingPlayer{}
	res.Audio = player

	r := NewReveal(res, "HELLO", DefaultConfig(), vmath.NewSeededSource(1))
	var updates []string
	r.OnUpdate(func(s string) { updates = append(updates, s) })
	r.Trigger()

	require.Len(t, updates, 1, "tick 0 is shown on trigger")
	assert.Equal(t, StateScrambling, r.Engine().State())
	assert.Equal(t, int64(1), res.Status.Ints.Get(status.MetricActiveEffects).Load())

	rt.Advance(27 * 40 * time.Millisecond)
	assert.Equal(t, 27, r.Engine().Tick())
	assert.False(t, r.Settled())

	rt.Advance(40 * time.Millisecond)
	assert.True(t, r.Settled())
	assert.Equal(t, "HELLO", r.Display())
	assert.Len(t, updates, 29)
	assert.Equal(t, "HELLO", updates[len(updates)-1])

	assert.Zero(t, rt.PendingTimers())
	assert.Zero(t, res.Status.Ints.Get(status.MetricActiveEffects).Load())
	require.Len(t, player.cues, 28)
	assert.Equal(t, engine.CueChime, player.cues[27])
	assert.Equal(t, engine.CueTick, player.cues[0])
}

func TestReveal_StartDelay(t *testing.T) {
	rt, res := newTestResource()
	cfg := DefaultConfig()
	cfg.StartDelay = 300 * time.Millisecond

	r := NewReveal(res, "DELAY", cfg, vmath.NewSeededSource(1))
	r.Trigger()
	assert.Equal(t, StateIdle, r.Engine().State())

	rt.Advance(299 * time.Millisecond)
	assert.Equal(t, StateIdle, r.Engine().State())

	rt.Advance(time.Millisecond)
	assert.Equal(t, StateScrambling, r.Engine().State())
	assert.Zero(t, r.Engine().Tick())
}

func TestReveal_TriggerIsOneShot(t *testing.T) {
	rt, res := newTestResource()
	r := NewReveal(res, "ONCE", Config{Ticks: 4, Interval: 40 * time.Millisecond}, vmath.NewSeededSource(1))

	r.Trigger()
	rt.Advance(40 * time.Millisecond)
	r.Trigger()
	assert.Equal(t, 1, r.Engine().Tick())
	assert.Equal(t, 1, rt.PendingTimers())
	r.Dispose()
}

func TestReveal_ArmOnVisible(t *testing.T) {
	rt, res := newTestResource()
	r := NewReveal(res, "SEEN", Config{Ticks: 2, Interval: 40 * time.Millisecond}, vmath.NewSeededSource(1))
	r.ArmOnVisible("hero")
	require.Equal(t, 1, res.Bus.ListenerCount())

	res.Bus.EmitVisibility("other", true)
	res.Bus.EmitVisibility("hero", false)
	assert.Equal(t, StateIdle, r.Engine().State())

	res.Bus.EmitVisibility("hero", true)
	assert.Equal(t, StateScrambling, r.Engine().State())
	assert.Zero(t, res.Bus.ListenerCount(), "visibility gate is one-shot")

	rt.Advance(time.Second)
	assert.Equal(t, "SEEN", r.Display())
}

func TestReveal_DisposeCancelsPendingTick(t *testing.T) {
	rt, res := newTestResource()
	r := NewReveal(res, "TEARDOWN", DefaultConfig(), vmath.NewSeededSource(1))
	var updates int
	r.OnUpdate(func(string) { updates++ })
	r.ArmOnVisible("never")
	r.Trigger()
	rt.Advance(100 * time.Millisecond)

	r.Dispose()
	r.Dispose()
	got := updates
	assert.Zero(t, rt.PendingTimers())
	assert.Zero(t, res.Bus.ListenerCount())
	assert.Zero(t, res.Status.Ints.Get(status.MetricActiveEffects).Load())

	rt.Advance(5 * time.Second)
	assert.Equal(t, got, updates, "no tick after dispose")
	assert.Equal(t, StateScrambling, r.Engine().State(), "last state persists")
}

func TestReveal_DisposeDuringStartDelay(t *testing.T) {
	rt, res := newTestResource()
	cfg := DefaultConfig()
	cfg.StartDelay = time.Second
	r := NewReveal(res, "LATE", cfg, nil)
	r.Trigger()
	require.Equal(t, 1, rt.PendingTimers())

	r.Dispose()
	assert.Zero(t, rt.PendingTimers())
	rt.Advance(2 * time.Second)
	assert.Equal(t, StateIdle, r.Engine().State())
}

func TestReveal_NoSchedulerSettles(t *testing.T) {
	r := NewReveal(nil, "FALLBACK", DefaultConfig(), nil)
	var last string
	r.OnUpdate(func(s string) { last = s })
	r.Trigger()

	assert.True(t, r.Settled())
	assert.Equal(t, "FALLBACK", last)
	r.Dispose()
}
