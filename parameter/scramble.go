package parameter

import "time"

// Scramble Reveal
const (
	// ScrambleTicks is the number of ticks from first scramble to settled text
	ScrambleTicks = 28

	// ScrambleInterval is the delay between ticks
	ScrambleInterval = 40 * time.Millisecond

	// ScrambleAlphabet is the glyph pool for unrevealed positions
	ScrambleAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%&*"

	// ScrambleFiller replaces every non-space glyph before the scramble starts
	ScrambleFiller = "_"
)
