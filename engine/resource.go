package engine

import (
	"github.com/lixenwraith/lumen/engine/status"
	"github.com/lixenwraith/lumen/events"
)

// Resource holds the shared services every effect is constructed with
// Any field may be nil; effects degrade to no-ops for the missing service
type Resource struct {
	Scheduler Scheduler
	Bus       *events.Bus

	// Telemetry
	Status *status.Registry

	// Bridged from the audio service
	Audio AudioPlayer
}

// Cue identifies a short sound effect
type Cue uint8

const (
	CueTick Cue = iota
	CueChime
)

// AudioPlayer is implemented by the audio service
type AudioPlayer interface {
	Play(cue Cue)
	IsMuted() bool
}

// Frames returns the frame scheduler, nil when unavailable
func (r *Resource) Frames() FrameScheduler {
	if r == nil || r.Scheduler == nil {
		return nil
	}
	return r.Scheduler
}

// Timers returns the timer scheduler, nil when unavailable
func (r *Resource) Timers() TimerScheduler {
	if r == nil || r.Scheduler == nil {
		return nil
	}
	return r.Scheduler
}

// Events returns the event bus, nil when unavailable
func (r *Resource) Events() *events.Bus {
	if r == nil {
		return nil
	}
	return r.Bus
}

// PlayCue plays cue when an unmuted player is attached
func (r *Resource) PlayCue(cue Cue) {
	if r == nil || r.Audio == nil || r.Audio.IsMuted() {
		return
	}
	r.Audio.Play(cue)
}

// EffectStarted counts an effect instance as active
func (r *Resource) EffectStarted() {
	if r == nil || r.Status == nil {
		return
	}
	r.Status.Ints.Get(status.MetricActiveEffects).Add(1)
}

// EffectStopped releases a count taken by EffectStarted
func (r *Resource) EffectStopped() {
	if r == nil || r.Status == nil {
		return
	}
	r.Status.Ints.Get(status.MetricActiveEffects).Add(-1)
}
