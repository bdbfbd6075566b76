package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/lumen/engine"
	"github.com/lixenwraith/lumen/parameter"
	"github.com/lixenwraith/lumen/vmath"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Cues plays short effect sounds through the speaker
// All methods are safe for concurrent use; Play is a no-op until Initialize succeeds
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	enqueue     func(beep.Streamer)
	now         func() time.Time
	lastPlayed  map[engine.Cue]time.Time
	volume      float64
	muted       bool
	initialized bool
}

// NewCues creates an uninitialized cue player at master volume in [0, 1]
func NewCues(volume float64) *Cues {
	return &Cues{
		mixer:      &beep.Mixer{},
		now:        time.Now,
		lastPlayed: make(map[engine.Cue]time.Time),
		volume:     vmath.Clamp01(volume),
	}
}

// Initialize opens the speaker and starts the mixer
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(c.mixer)

	c.enqueue = func(s beep.Streamer) {
		speaker.Lock()
		c.mixer.Add(s)
		speaker.Unlock()
	}
	c.initialized = true
	return nil
}

// Cleanup silences the mixer; the speaker itself stays open
func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.enqueue = nil
	c.initialized = false
}

// Play implements engine.AudioPlayer
// Repeats of the same cue within MinSoundGap are dropped
func (c *Cues) Play(cue engine.Cue) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.muted || c.enqueue == nil {
		return
	}

	now := c.now()
	if last, ok := c.lastPlayed[cue]; ok && now.Sub(last) < parameter.MinSoundGap {
		return
	}

	s := CueSound(cue, sampleRate, c.volume)
	if s == nil {
		return
	}
	c.lastPlayed[cue] = now
	c.enqueue(s)
}

// IsMuted implements engine.AudioPlayer
func (c *Cues) IsMuted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// SetMuted mutes or unmutes future cues
func (c *Cues) SetMuted(muted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = muted
}

// ToggleMute flips the mute state and returns the new value
func (c *Cues) ToggleMute() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = !c.muted
	return c.muted
}

// IsInitialized reports whether the speaker is open
func (c *Cues) IsInitialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}
