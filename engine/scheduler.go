package engine

import "time"

// FrameID identifies an outstanding frame request
type FrameID uint64

// TimerID identifies an outstanding deferred callback
type TimerID uint64

// FrameFunc receives the frame timestamp
type FrameFunc func(now time.Time)

// FrameScheduler is the host per-frame primitive (requestAnimationFrame equivalent)
// A request made during frame N runs in frame N+1; a cancelled request never runs
type FrameScheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

// TimerScheduler is the host deferred callback primitive (setTimeout equivalent)
type TimerScheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) TimerID
	CancelTimer(id TimerID)
}

// Scheduler combines frame and timer scheduling, every effect is constructed with one
type Scheduler interface {
	FrameScheduler
	TimerScheduler
}
