package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPausableClock_FreezesWhilePaused(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	clock := NewPausableClock(mock)

	mock.Advance(time.Second)
	assert.True(t, clock.Now().Equal(epoch.Add(time.Second)))

	clock.Pause()
	mock.Advance(5 * time.Second)
	assert.True(t, clock.IsPaused())
	assert.True(t, clock.Now().Equal(epoch.Add(time.Second)))
	assert.Equal(t, 5*time.Second, clock.TotalPauseDuration())

	clock.Resume()
	mock.Advance(time.Second)
	assert.True(t, clock.Now().Equal(epoch.Add(2*time.Second)))
	assert.Equal(t, 5*time.Second, clock.TotalPauseDuration())
}

func TestPausableClock_ToggleAndRepeatedCalls(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	clock := NewPausableClock(mock)

	assert.True(t, clock.Toggle())
	clock.Pause()
	mock.Advance(time.Second)
	assert.False(t, clock.Toggle())
	clock.Resume()

	assert.Equal(t, time.Second, clock.TotalPauseDuration())
}

func TestPausableClock_HoldsRuntimeTimers(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	clock := NewPausableClock(mock)
	rt := NewRuntime(clock, 10*time.Millisecond, nil)

	fired := false
	rt.AfterFunc(100*time.Millisecond, func() { fired = true })

	clock.Pause()
	mock.Advance(time.Second)
	rt.Pump()
	assert.False(t, fired, "paused clock must hold timers")

	clock.Resume()
	mock.Advance(100 * time.Millisecond)
	rt.Pump()
	assert.True(t, fired)
}
