package pointer

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/lumen/events"
)

func newTestTracker() *Tracker {
	return NewTracker(DefaultConfig(), 10*time.Millisecond)
}

func TestTracker_FirstMoveSnaps(t *testing.T) {
	tr := newTestTracker()
	assert.False(t, tr.Seen())

	tr.OnMove(300, 200)
	st := tr.State()
	assert.True(t, tr.Seen())
	assert.Equal(t, st.Raw, st.Smoothed)

	tr.OnMove(400, 200)
	st = tr.State()
	assert.Equal(t, 400.0, st.Raw.X)
	assert.Equal(t, 300.0, st.Smoothed.X, "later moves do not touch the smoothed position")
}

func TestTracker_ConvergesWithoutOvershoot(t *testing.T) {
	tr := newTestTracker()
	tr.OnMove(0, 0)
	tr.OnMove(100, -50)

	prevGap := math.Inf(1)
	for i := 1; i <= 200; i++ {
		tr.Step()
		st := tr.State()

		require.LessOrEqual(t, st.Smoothed.X, 100.0, "step %d overshot x", i)
		require.GreaterOrEqual(t, st.Smoothed.Y, -50.0, "step %d overshot y", i)

		gap := st.Smoothed.DistTo(st.Raw)
		require.Less(t, gap, prevGap, "step %d", i)
		prevGap = gap

		want := 100 * math.Pow(1-0.12, float64(i))
		require.InDelta(t, want, 100-st.Smoothed.X, 1e-6, "step %d", i)
	}
	assert.Less(t, prevGap, 1e-6)
}

func TestTracker_SmoothingClamped(t *testing.T) {
	tr := NewTracker(Config{Smoothing: 5}, 0)
	tr.OnMove(0, 0)
	tr.OnMove(10, 10)
	tr.Step()
	st := tr.State()
	assert.Equal(t, st.Raw, st.Smoothed, "smoothing above 1 clamps to an immediate jump")
}

func TestTracker_NonFiniteConfigAndInput(t *testing.T) {
	tr := NewTracker(Config{Smoothing: math.NaN(), HoverScale: math.NaN()}, 10*time.Millisecond)
	tr.OnMove(0, 0)
	tr.OnMove(math.NaN(), 5)
	tr.OnMove(100, 0)
	tr.Step()

	st := tr.State()
	require.False(t, math.IsNaN(st.Smoothed.X) || math.IsNaN(st.Smoothed.Y), "smoothed position must stay finite")
	assert.InDelta(t, 100*0.12, st.Smoothed.X, 1e-9, "NaN smoothing falls back to the default")
	assert.False(t, math.IsNaN(st.Scale))
}

func TestTracker_HoverWalksAncestors(t *testing.T) {
	tr := newTestTracker()

	page := events.NewElement("div", nil)
	link := events.NewElement("a", page)
	label := events.NewElement("span", link)
	text := events.NewElement("p", page)

	tr.OnOver(label)
	assert.True(t, tr.State().Hover)

	tr.OnOver(text)
	assert.False(t, tr.State().Hover)

	tr.OnOver(events.NewElement("button", nil))
	assert.True(t, tr.State().Hover)

	tr.OnOver(nil)
	assert.False(t, tr.State().Hover)
}

func TestTracker_ScaleSpring(t *testing.T) {
	tr := newTestTracker()
	tr.OnOver(events.NewElement("a", nil))

	prev := tr.State().Scale
	for i := 0; i < 300; i++ {
		tr.Step()
		s := tr.State().Scale
		require.GreaterOrEqual(t, s, prev-1e-9, "step %d", i)
		require.LessOrEqual(t, s, 2.2+1e-6, "step %d", i)
		prev = s
	}
	assert.InDelta(t, 2.2, prev, 1e-3)
	assert.InDelta(t, 1.0, tr.HoverProgress(), 1e-3)

	tr.OnOver(events.NewElement("div", nil))
	for i := 0; i < 300; i++ {
		tr.Step()
		s := tr.State().Scale
		require.LessOrEqual(t, s, prev+1e-9, "step %d", i)
		require.GreaterOrEqual(t, s, 1-1e-6, "step %d", i)
		prev = s
	}
	assert.InDelta(t, 1.0, prev, 1e-3)
	assert.InDelta(t, 0.0, tr.HoverProgress(), 1e-3)
}
