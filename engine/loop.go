package engine

import "time"

// AnimationLoop wraps a FrameScheduler into a start/stop per-frame loop
// At most one frame request is outstanding; Stop cancels it so no callback runs afterwards
type AnimationLoop struct {
	frames  FrameScheduler
	pending FrameID
	cb      FrameFunc
	active  bool
	tick    func(now time.Time)
}

// NewAnimationLoop creates an idle loop, a nil scheduler yields a loop whose Start is a no-op
func NewAnimationLoop(frames FrameScheduler) *AnimationLoop {
	l := &AnimationLoop{frames: frames}
	l.tick = l.onFrame
	return l
}

// Start begins invoking cb once per frame until Stop, calling Start on a running loop is a no-op
func (l *AnimationLoop) Start(cb FrameFunc) {
	if l.active || cb == nil || l.frames == nil {
		return
	}
	l.active = true
	l.cb = cb
	l.pending = l.frames.RequestFrame(l.tick)
}

// Stop cancels the outstanding frame request, safe to call repeatedly and from inside the callback
func (l *AnimationLoop) Stop() {
	if !l.active {
		return
	}
	l.active = false
	if l.pending != 0 {
		l.frames.CancelFrame(l.pending)
		l.pending = 0
	}
	l.cb = nil
}

// Running reports whether the loop will invoke its callback again
func (l *AnimationLoop) Running() bool {
	return l.active
}

func (l *AnimationLoop) onFrame(now time.Time) {
	l.pending = 0
	if !l.active {
		return
	}
	// Request before invoking so the callback may Stop the loop it runs in
	l.pending = l.frames.RequestFrame(l.tick)
	l.cb(now)
}
