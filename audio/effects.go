package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/lumen/engine"
	"github.com/lixenwraith/lumen/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = math.Min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol
// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateTickSound generates the short blip played per scramble tick
func CreateTickSound(rate beep.SampleRate, master float64) beep.Streamer {
	d := parameter.TickSoundDuration
	osc := NewOscillator(parameter.TickSoundFrequency, d, WaveSquare, rate)
	shaped := NewEnvelope(osc, d, d/6, d/2, rate)
	return newVolume(shaped, parameter.TickSoundVolume*master)
}

// CreateChimeSound generates the bell played when a reveal or count-up settles
func CreateChimeSound(rate beep.SampleRate, master float64) beep.Streamer {
	d := parameter.ChimeSoundDuration

	fund := NewOscillator(parameter.ChimeSoundFrequency, d, WaveSine, rate)
	fundShaped := NewEnvelope(fund, d, 5*time.Millisecond, d-5*time.Millisecond, rate)

	over := NewOscillator(parameter.ChimeSoundFrequency*parameter.ChimeOvertoneRatio, d, WaveSine, rate)
	overShaped := NewEnvelope(over, d, 5*time.Millisecond, d/3, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, parameter.ChimeSoundVolume*master)
}

// CueSound returns the streamer for cue, nil for unknown cues
func CueSound(cue engine.Cue, rate beep.SampleRate, master float64) beep.Streamer {
	switch cue {
	case engine.CueTick:
		return CreateTickSound(rate, master)
	case engine.CueChime:
		return CreateChimeSound(rate, master)
	default:
		return nil
	}
}
