package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency of the speaker buffer
	AudioBufferDuration = 50 * time.Millisecond

	// MinSoundGap between consecutive cues of the same kind
	MinSoundGap = 30 * time.Millisecond
)

// Tick Cue
const (
	TickSoundDuration  = 12 * time.Millisecond
	TickSoundFrequency = 1800.0
	TickSoundVolume    = 0.08
)

// Chime Cue
const (
	ChimeSoundDuration  = 400 * time.Millisecond
	ChimeSoundFrequency = 880.0
	ChimeOvertoneRatio  = 2.0
	ChimeSoundVolume    = 0.15
)

// AudioMasterVolume scales every cue, in [0, 1]
const AudioMasterVolume = 0.6
