package parameter

import "time"

// Count-Up
const (
	// CounterDuration is the default run length from 0 to target
	CounterDuration = 2 * time.Second

	// CounterLocale is the BCP 47 tag used for digit grouping when none is configured
	CounterLocale = "en"
)
