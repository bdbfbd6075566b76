package parameter

import "time"

// Reveal Transitions
const (
	// RevealClipDuration is the clip region transition from fully clipped to open
	RevealClipDuration = 850 * time.Millisecond

	// RevealOpacityDuration is the fade-in transition
	RevealOpacityDuration = 600 * time.Millisecond

	// RevealTranslateDuration is the vertical settle transition
	RevealTranslateDuration = 850 * time.Millisecond

	// RevealTranslateOffset is the initial downward offset in surface units
	RevealTranslateOffset = 10.0

	// RevealLineDuration is the horizontal rule width transition
	RevealLineDuration = 1100 * time.Millisecond
)

// Intro Sequence
const (
	// IntroOutDelay is when the intro screen starts fading
	IntroOutDelay = 1600 * time.Millisecond

	// IntroContentDelay is when page content mounts and its reveals arm
	IntroContentDelay = 2200 * time.Millisecond

	// IntroFadeDuration is the intro screen fade
	IntroFadeDuration = 900 * time.Millisecond

	// IntroProgressDuration is the intro progress bar fill
	IntroProgressDuration = 1400 * time.Millisecond

	// IntroProgressWidth is the progress bar track width in surface units
	IntroProgressWidth = 160.0
)

// Staggered Content Delays (measured from content mount)
const (
	RevealNavDelay     = 100 * time.Millisecond
	RevealNavItemDelay = 150 * time.Millisecond
	RevealNavItemStep  = 60 * time.Millisecond
	RevealBadgeDelay   = 350 * time.Millisecond
	RevealHeadingDelay = 500 * time.Millisecond
	RevealSubDelay     = 680 * time.Millisecond
	RevealLineDelay    = 900 * time.Millisecond
	RevealColumnDelay  = 1000 * time.Millisecond
	RevealColumnStep   = 100 * time.Millisecond
	RevealLineEndDelay = 1100 * time.Millisecond
	RevealStatsDelay   = 1250 * time.Millisecond
	RevealActionDelay  = 1400 * time.Millisecond
)
