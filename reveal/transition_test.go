package reveal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/lumen/vmath"
)

func TestTransition_Progress(t *testing.T) {
	linear := Transition{Duration: 100 * time.Millisecond}
	assert.Equal(t, 0.0, linear.Progress(-time.Second))
	assert.Equal(t, 0.0, linear.Progress(0))
	assert.InDelta(t, 0.25, linear.Progress(25*time.Millisecond), 1e-9)
	assert.Equal(t, 1.0, linear.Progress(100*time.Millisecond))
	assert.Equal(t, 1.0, linear.Progress(time.Hour))

	delayed := Transition{Duration: 100 * time.Millisecond, Delay: 100 * time.Millisecond}
	assert.Equal(t, 0.0, delayed.Progress(100*time.Millisecond))
	assert.InDelta(t, 0.5, delayed.Progress(150*time.Millisecond), 1e-9)
	assert.False(t, delayed.Done(199*time.Millisecond))
	assert.True(t, delayed.Done(200*time.Millisecond))

	instant := Transition{}
	assert.Equal(t, 1.0, instant.Progress(time.Nanosecond))

	eased := Transition{Duration: time.Second, Easing: vmath.EaseInQuad}
	assert.InDelta(t, 0.25, eased.Progress(500*time.Millisecond), 1e-9)
}

func TestTransition_PresetsAreMonotonic(t *testing.T) {
	for name, tr := range map[string]Transition{
		"clip":     ClipTransition,
		"opacity":  OpacityTransition,
		"line":     LineTransition,
		"fade":     IntroFadeTransition,
		"progress": IntroProgressTransition,
	} {
		prev := 0.0
		for ms := 0; ms <= 1500; ms += 10 {
			p := tr.Progress(time.Duration(ms) * time.Millisecond)
			assert.GreaterOrEqual(t, p, prev-1e-6, "%s at %dms", name, ms)
			prev = p
		}
		assert.Equal(t, 1.0, prev, name)
	}
}

func TestEntrance_Style(t *testing.T) {
	en := DefaultEntrance()
	assert.Equal(t, Style{Opacity: 0, ClipBottom: 1, TranslateY: 10}, en.Initial())
	assert.True(t, en.Initial().Hidden())

	mid := en.At(300 * time.Millisecond)
	assert.Greater(t, mid.Opacity, 0.0)
	assert.Less(t, mid.Opacity, 1.0)
	assert.Greater(t, mid.ClipBottom, 0.0)
	assert.Less(t, mid.TranslateY, 10.0)
	assert.False(t, mid.Hidden())

	assert.Equal(t, Style{Opacity: 1, ClipBottom: 0, TranslateY: 0}, en.At(time.Second))
}

func TestTimeline_StyleFollowsActivation(t *testing.T) {
	rt := newTestRuntime()
	tl := NewTimeline(rt, 100*time.Millisecond)
	tl.Arm()
	en := DefaultEntrance()

	assert.Equal(t, en.Initial(), tl.Style(en, rt.Now()))
	assert.Zero(t, tl.Progress(LineTransition, rt.Now()))

	rt.Advance(100 * time.Millisecond)
	assert.Equal(t, en.Initial().TranslateY, tl.Style(en, rt.Now()).TranslateY, "activation instant is the transition start")

	rt.Advance(time.Second)
	assert.Equal(t, 1.0, tl.Style(en, rt.Now()).Opacity)
	line := tl.Progress(LineTransition, rt.Now())
	assert.Greater(t, line, 0.99)
	assert.Less(t, line, 1.0, "line transition is longer than one second")

	rt.Advance(time.Second)
	assert.Equal(t, 1.0, tl.Progress(LineTransition, rt.Now()))
}
