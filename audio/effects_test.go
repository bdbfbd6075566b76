package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/lumen/engine"
)

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	assert.True(t, ok)
	require.Equal(t, 100, n)
	for i := 0; i < n; i++ {
		assert.True(t, samples[i][0] >= -1 && samples[i][0] <= 1, "sample %d out of range: %f", i, samples[i][0])
		assert.Equal(t, samples[i][0], samples[i][1], "sample %d is not mono", i)
	}
	assert.NoError(t, osc.Err())
}

func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		assert.Contains(t, []float64{1, -1}, samples[i][0], "sample %d", i)
	}
}

func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, rate)

	total, _ := drain(osc)
	assert.Equal(t, rate.N(10*time.Millisecond), total)
}

// Attack starts silent and release ends near silent
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // Constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	require.Equal(t, 100, n)
	assert.Zero(t, samples[0][0])
	assert.Equal(t, 1.0, samples[50][0], "full volume in sustain")
	assert.LessOrEqual(t, samples[99][0], 0.11)
}

func TestCueSounds(t *testing.T) {
	for _, cue := range []engine.Cue{engine.CueTick, engine.CueChime} {
		s := CueSound(cue, sampleRate, 1)
		require.NotNil(t, s, "cue %d", cue)
		total, peak := drain(s)
		assert.NotZero(t, total, "cue %d", cue)
		assert.LessOrEqual(t, peak, 0.5, "cue %d must stay quiet", cue)
	}

	assert.Nil(t, CueSound(engine.Cue(99), sampleRate, 1))

	_, peak := drain(CueSound(engine.CueChime, sampleRate, 0))
	assert.Zero(t, peak, "silence at zero volume")
}
