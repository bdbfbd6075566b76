package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock is a TimeProvider whose time stands still while paused
// A runtime on this clock freezes every effect in place; timers and frames resume where they stopped
type PausableClock struct {
	mu sync.RWMutex

	source TimeProvider

	// Pause state
	isPaused       atomic.Bool
	pauseStartTime time.Time     // Source reading when the current pause began
	totalPaused    time.Duration // Cumulative pause duration
}

// NewPausableClock wraps source, a nil source uses the monotonic clock
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = NewMonotonicTimeProvider()
	}
	return &PausableClock{source: source}
}

// Now returns source time minus all paused time, frozen during a pause
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.pauseStartTime.Add(-pc.totalPaused)
	}
	return pc.source.Now().Add(-pc.totalPaused)
}

// Pause stops time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		pc.pauseStartTime = pc.source.Now()
		pc.mu.Unlock()
	}
}

// Resume continues time advancement from the frozen reading
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		pc.totalPaused += pc.source.Now().Sub(pc.pauseStartTime)
		pc.pauseStartTime = time.Time{}
		pc.mu.Unlock()
	}
}

// Toggle flips the pause state and reports whether the clock is now paused
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPaused
	if pc.isPaused.Load() {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}
