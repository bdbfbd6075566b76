package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnimationLoop_RunsUntilStop(t *testing.T) {
	rt := newTestRuntime()
	loop := NewAnimationLoop(rt)

	count := 0
	loop.Start(func(time.Time) { count++ })
	assert.True(t, loop.Running())
	assert.Equal(t, 1, rt.PendingFrames())

	rt.Advance(45 * time.Millisecond)
	assert.Equal(t, 5, count)
	assert.Equal(t, 1, rt.PendingFrames(), "exactly one outstanding request")

	loop.Stop()
	assert.False(t, loop.Running())
	assert.Zero(t, rt.PendingFrames())

	rt.Advance(100 * time.Millisecond)
	assert.Equal(t, 5, count, "no invocation after stop")
}

func TestAnimationLoop_StopIsIdempotent(t *testing.T) {
	rt := newTestRuntime()
	loop := NewAnimationLoop(rt)

	loop.Stop()
	loop.Start(func(time.Time) {})
	loop.Stop()
	loop.Stop()
	assert.Zero(t, rt.PendingFrames())
}

func TestAnimationLoop_StopFromInsideCallback(t *testing.T) {
	rt := newTestRuntime()
	loop := NewAnimationLoop(rt)

	count := 0
	loop.Start(func(time.Time) {
		count++
		if count == 3 {
			loop.Stop()
		}
	})

	rt.Advance(200 * time.Millisecond)
	assert.Equal(t, 3, count)
	assert.Zero(t, rt.PendingFrames())
}

func TestAnimationLoop_DoubleStartKeepsSingleRequest(t *testing.T) {
	rt := newTestRuntime()
	loop := NewAnimationLoop(rt)

	first, second := 0, 0
	loop.Start(func(time.Time) { first++ })
	loop.Start(func(time.Time) { second++ })

	rt.Advance(25 * time.Millisecond)
	assert.Equal(t, 3, first)
	assert.Zero(t, second)
	assert.Equal(t, 1, rt.PendingFrames())
	loop.Stop()
}

func TestAnimationLoop_NilSchedulerIsNoop(t *testing.T) {
	loop := NewAnimationLoop(nil)
	loop.Start(func(time.Time) { t.Fatal("must not run") })
	assert.False(t, loop.Running())
	loop.Stop()
}

func TestAnimationLoop_MonotonicTimestamps(t *testing.T) {
	rt := newTestRuntime()
	loop := NewAnimationLoop(rt)

	var last time.Time
	loop.Start(func(now time.Time) {
		assert.True(t, now.After(last))
		last = now
	})
	rt.Advance(500 * time.Millisecond)
	loop.Stop()
}
