package parameter

import "time"

// Runtime & Frame Timing
const (
	// FrameInterval is the display refresh interval emulated by the runtime (~60 FPS)
	FrameInterval = time.Second / 60

	// RuntimeIdleWait is the longest the runtime sleeps when nothing is scheduled; Post wakes it early
	RuntimeIdleWait = 250 * time.Millisecond

	// VirtualAdvanceMaxSteps bounds event processing in a single virtual Advance call
	VirtualAdvanceMaxSteps = 1 << 20
)
