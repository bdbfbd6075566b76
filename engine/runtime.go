package engine

import (
	"container/heap"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/lumen/core"
	"github.com/lixenwraith/lumen/engine/status"
	"github.com/lixenwraith/lumen/parameter"
)

// Runtime is the single-threaded cooperative host for all effects
// Frame callbacks, timers and posted input run serially on one goroutine; effects never lock
// Post is the only entry point safe to call from other goroutines while the runtime is running
type Runtime struct {
	clock         TimeProvider
	mock          *MockTimeProvider // Non-nil for virtual runtimes driven by Advance
	frameInterval time.Duration

	mu sync.Mutex

	// Frame requests, order preserved for deterministic dispatch
	frames      map[FrameID]FrameFunc
	frameOrder  []FrameID
	lastFrameID FrameID

	// Deferred callbacks, min-heap on deadline then scheduling order
	timers      timerHeap
	timerIndex  map[TimerID]*timerEntry
	lastTimerID TimerID

	posted []func()

	nextFrameDeadline time.Time

	// Control channels
	wake     chan struct{}
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	pumping  atomic.Bool // Set while Pump runs callbacks on the owning goroutine

	// Cached metric pointers
	statusReg       *status.Registry
	statFrames      *atomic.Int64
	statFrameCalls  *atomic.Int64
	statTimersFired *atomic.Int64
	statPosted      *atomic.Int64
	statFPS         *status.AtomicFloat
	fpsWindowStart  time.Time
	fpsWindowFrames int
}

// NewRuntime creates a runtime on the given clock
// A non-positive frame interval falls back to the default refresh rate; a nil registry gets a private one
func NewRuntime(clock TimeProvider, frameInterval time.Duration, reg *status.Registry) *Runtime {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	if frameInterval <= 0 {
		frameInterval = parameter.FrameInterval
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	r := &Runtime{
		clock:           clock,
		frameInterval:   frameInterval,
		frames:          make(map[FrameID]FrameFunc),
		timerIndex:      make(map[TimerID]*timerEntry),
		wake:            make(chan struct{}, 1),
		stopChan:        make(chan struct{}),
		statusReg:       reg,
		statFrames:      reg.Ints.Get(status.MetricFrames),
		statFrameCalls:  reg.Ints.Get(status.MetricFrameCalls),
		statTimersFired: reg.Ints.Get(status.MetricTimersFired),
		statPosted:      reg.Ints.Get(status.MetricPosted),
		statFPS:         reg.Floats.Get(status.MetricFPS),
	}
	if m, ok := clock.(*MockTimeProvider); ok {
		r.mock = m
	}
	return r
}

// NewVirtualRuntime creates a runtime on a mock clock starting at start, driven only by Advance
func NewVirtualRuntime(start time.Time, frameInterval time.Duration) *Runtime {
	return NewRuntime(NewMockTimeProvider(start), frameInterval, nil)
}

// Now implements TimerScheduler
func (r *Runtime) Now() time.Time {
	return r.clock.Now()
}

// FrameInterval returns the emulated refresh interval
func (r *Runtime) FrameInterval() time.Duration {
	return r.frameInterval
}

// Status returns the metrics registry the runtime writes to
func (r *Runtime) Status() *status.Registry {
	return r.statusReg
}

// RequestFrame implements FrameScheduler
func (r *Runtime) RequestFrame(fn FrameFunc) FrameID {
	if fn == nil {
		return 0
	}
	r.mu.Lock()
	r.lastFrameID++
	id := r.lastFrameID
	r.frames[id] = fn
	r.frameOrder = append(r.frameOrder, id)
	r.mu.Unlock()

	r.signalOutsidePump()
	return id
}

// CancelFrame implements FrameScheduler, unknown or already-run ids are ignored
func (r *Runtime) CancelFrame(id FrameID) {
	r.mu.Lock()
	delete(r.frames, id)
	r.mu.Unlock()
}

// AfterFunc implements TimerScheduler, negative durations are treated as zero
func (r *Runtime) AfterFunc(d time.Duration, fn func()) TimerID {
	if fn == nil {
		return 0
	}
	if d < 0 {
		d = 0
	}
	deadline := r.clock.Now().Add(d)

	r.mu.Lock()
	r.lastTimerID++
	id := r.lastTimerID
	e := &timerEntry{id: id, deadline: deadline, fn: fn}
	heap.Push(&r.timers, e)
	r.timerIndex[id] = e
	r.mu.Unlock()

	r.signalOutsidePump()
	return id
}

// CancelTimer implements TimerScheduler, unknown or already-fired ids are ignored
func (r *Runtime) CancelTimer(id TimerID) {
	r.mu.Lock()
	if e, ok := r.timerIndex[id]; ok {
		e.cancelled = true
		delete(r.timerIndex, id)
	}
	r.mu.Unlock()
}

// Post queues fn to run on the runtime goroutine at the next pump
// Hosts deliver input events through Post so handlers never race frame callbacks
func (r *Runtime) Post(fn func()) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	r.posted = append(r.posted, fn)
	r.mu.Unlock()
	r.signal()
}

// PendingFrames returns the number of outstanding frame requests
func (r *Runtime) PendingFrames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

// PendingTimers returns the number of outstanding deferred callbacks
func (r *Runtime) PendingTimers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.timerIndex)
}

func (r *Runtime) signal() {
	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// signalOutsidePump wakes the loop unless the request comes from a callback inside Pump
// The loop recomputes its sleep from nextEvent after every pump, so those requests are already seen
func (r *Runtime) signalOutsidePump() {
	if r.pumping.Load() {
		return
	}
	r.signal()
}

// Pump runs everything due at the current clock reading: posted input, then timers, then one frame
// Must only be called from the goroutine that owns the runtime
func (r *Runtime) Pump() {
	r.pumping.Store(true)
	defer r.pumping.Store(false)

	now := r.clock.Now()
	r.runPosted()
	r.runTimers(now)

	r.mu.Lock()
	due := !now.Before(r.nextFrameDeadline)
	r.mu.Unlock()
	if due {
		r.runFrame(now)
	}
}

func (r *Runtime) runPosted() {
	r.mu.Lock()
	batch := r.posted
	r.posted = nil
	r.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	r.statPosted.Add(int64(len(batch)))
}

// runTimers fires timers due at now in deadline order
// Timers scheduled by these callbacks wait for the next pump even when already due
func (r *Runtime) runTimers(now time.Time) {
	r.mu.Lock()
	var batch []*timerEntry
	for r.timers.Len() > 0 {
		e := r.timers[0]
		if e.cancelled {
			heap.Pop(&r.timers)
			continue
		}
		if e.deadline.After(now) {
			break
		}
		heap.Pop(&r.timers)
		batch = append(batch, e)
	}
	r.mu.Unlock()

	for _, e := range batch {
		r.mu.Lock()
		// An earlier callback in this batch may have cancelled it
		live := !e.cancelled
		if live {
			delete(r.timerIndex, e.id)
		}
		r.mu.Unlock()

		if live {
			e.fn()
			r.statTimersFired.Add(1)
		}
	}
}

// runFrame dispatches the requests outstanding at frame start
func (r *Runtime) runFrame(now time.Time) {
	r.mu.Lock()
	batch := r.frameOrder
	r.frameOrder = nil

	// Keep the refresh grid while on time, re-anchor instead of bursting to catch up
	r.nextFrameDeadline = r.nextFrameDeadline.Add(r.frameInterval)
	if !r.nextFrameDeadline.After(now) {
		r.nextFrameDeadline = now.Add(r.frameInterval)
	}
	r.mu.Unlock()

	calls := 0
	for _, id := range batch {
		r.mu.Lock()
		fn, ok := r.frames[id]
		if ok {
			delete(r.frames, id)
		}
		r.mu.Unlock()

		// Cancelled by an earlier callback in this frame
		if !ok {
			continue
		}
		fn(now)
		calls++
	}

	if calls > 0 {
		r.statFrames.Add(1)
		r.statFrameCalls.Add(int64(calls))
		r.sampleFPS(now)
	}
}

func (r *Runtime) sampleFPS(now time.Time) {
	if r.fpsWindowStart.IsZero() {
		r.fpsWindowStart = now
	}
	r.fpsWindowFrames++
	if elapsed := now.Sub(r.fpsWindowStart); elapsed >= time.Second {
		r.statFPS.Store(float64(r.fpsWindowFrames) / elapsed.Seconds())
		r.fpsWindowStart = now
		r.fpsWindowFrames = 0
	}
}

// nextEvent returns the earliest time something is scheduled, false when idle
func (r *Runtime) nextEvent() (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var next time.Time
	found := false
	if len(r.posted) > 0 {
		return r.clock.Now(), true
	}
	if len(r.frames) > 0 {
		next = r.nextFrameDeadline
		found = true
	}
	for r.timers.Len() > 0 && r.timers[0].cancelled {
		heap.Pop(&r.timers)
	}
	if r.timers.Len() > 0 {
		d := r.timers[0].deadline
		if !found || d.Before(next) {
			next = d
		}
		found = true
	}
	return next, found
}

// Advance drives a virtual runtime forward by d, firing every frame and timer due on the way
func (r *Runtime) Advance(d time.Duration) {
	if r.mock == nil {
		log.Printf("[engine] Advance called on a real-time runtime, ignored")
		return
	}
	target := r.mock.Now().Add(d)

	for step := 0; step < parameter.VirtualAdvanceMaxSteps; step++ {
		r.Pump()
		next, ok := r.nextEvent()
		if !ok || next.After(target) {
			break
		}
		r.mock.SetTime(next)
	}
	r.mock.SetTime(target)
	r.Pump()
}

// Start begins the real-time loop on its own goroutine
func (r *Runtime) Start() {
	if r.running.CompareAndSwap(false, true) {
		r.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(r.loop)
	}
}

// Stop halts the loop and waits for the in-flight pump to finish; idempotent
func (r *Runtime) Stop() {
	r.stopOnce.Do(func() {
		if r.running.CompareAndSwap(true, false) {
			close(r.stopChan)
			r.wg.Wait()
		}
	})
}

// IsRunning reports whether the real-time loop is active
func (r *Runtime) IsRunning() bool {
	return r.running.Load()
}

func (r *Runtime) loop() {
	defer r.wg.Done()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-r.stopChan:
			return
		default:
		}

		r.Pump()

		sleepDuration := parameter.RuntimeIdleWait
		if next, ok := r.nextEvent(); ok {
			sleepDuration = next.Sub(r.clock.Now())
		}
		if sleepDuration <= 0 {
			continue
		}

		timer.Reset(sleepDuration)
		select {
		case <-timer.C:
		case <-r.wake:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		case <-r.stopChan:
			return
		}
	}
}

// --- timer heap ---

type timerEntry struct {
	id        TimerID
	deadline  time.Time
	fn        func()
	cancelled bool
}

type timerHeap []*timerEntry

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].id < h[j].id
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) { *h = append(*h, x.(*timerEntry)) }

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}
