package reveal

import (
	"time"

	"github.com/lixenwraith/lumen/parameter"
	"github.com/lixenwraith/lumen/vmath"
)

// Transition maps time since activation onto eased progress in [0, 1]
type Transition struct {
	Duration time.Duration
	Delay    time.Duration
	Easing   vmath.Easing
}

// Progress returns eased progress after elapsed; a non-positive duration completes at once
func (tr Transition) Progress(elapsed time.Duration) float64 {
	elapsed -= tr.Delay
	if elapsed <= 0 {
		return 0
	}
	if tr.Duration <= 0 || elapsed >= tr.Duration {
		return 1
	}
	p := float64(elapsed) / float64(tr.Duration)
	if tr.Easing == nil {
		return p
	}
	return vmath.Clamp01(tr.Easing(p))
}

// Done reports whether the transition has completed after elapsed
func (tr Transition) Done(elapsed time.Duration) bool {
	return elapsed >= tr.Delay+tr.Duration
}

// Entrance transitions
var (
	ClipTransition      = Transition{Duration: parameter.RevealClipDuration, Easing: vmath.EaseOutExpo}
	OpacityTransition   = Transition{Duration: parameter.RevealOpacityDuration, Easing: vmath.Ease}
	TranslateTransition = Transition{Duration: parameter.RevealTranslateDuration, Easing: vmath.EaseOutExpo}
	LineTransition      = Transition{Duration: parameter.RevealLineDuration, Easing: vmath.EaseOutExpo}
)

// Intro transitions
var (
	IntroFadeTransition     = Transition{Duration: parameter.IntroFadeDuration, Easing: vmath.EaseStandard}
	IntroProgressTransition = Transition{Duration: parameter.IntroProgressDuration, Easing: vmath.EaseInOut}
)

// Style is the visual state of a revealing element
type Style struct {
	Opacity    float64 // 0 hidden, 1 opaque
	ClipBottom float64 // Fraction of the element clipped from the bottom, 1 fully clipped
	TranslateY float64 // Downward offset in surface units
}

// Hidden reports whether nothing of the element is visible
func (s Style) Hidden() bool {
	return s.Opacity <= 0 || s.ClipBottom >= 1
}

// Entrance combines the clip, fade and settle transitions of one element
type Entrance struct {
	Clip      Transition
	Opacity   Transition
	Translate Transition
	Offset    float64
}

// DefaultEntrance returns the landing page entrance
func DefaultEntrance() Entrance {
	return Entrance{
		Clip:      ClipTransition,
		Opacity:   OpacityTransition,
		Translate: TranslateTransition,
		Offset:    parameter.RevealTranslateOffset,
	}
}

// At returns the style elapsed after activation
func (en Entrance) At(elapsed time.Duration) Style {
	return Style{
		Opacity:    en.Opacity.Progress(elapsed),
		ClipBottom: 1 - en.Clip.Progress(elapsed),
		TranslateY: en.Offset * (1 - en.Translate.Progress(elapsed)),
	}
}

// Initial is the style before activation
func (en Entrance) Initial() Style {
	return Style{Opacity: 0, ClipBottom: 1, TranslateY: en.Offset}
}

// Style returns the entrance style of t at now
func (t *Timeline) Style(en Entrance, now time.Time) Style {
	if !t.activated {
		return en.Initial()
	}
	return en.At(t.Elapsed(now))
}

// Progress returns the progress of tr for t at now, 0 before activation
func (t *Timeline) Progress(tr Transition, now time.Time) float64 {
	if !t.activated {
		return 0
	}
	return tr.Progress(t.Elapsed(now))
}
