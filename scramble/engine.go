package scramble

import (
	"strings"
	"time"
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/lixenwraith/lumen/parameter"
	"github.com/lixenwraith/lumen/vmath"
)

// State is the scramble lifecycle: Idle -> Scrambling -> Settled
type State uint8

const (
	StateIdle State = iota
	StateScrambling
	StateSettled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateScrambling:
		return "Scrambling"
	case StateSettled:
		return "Settled"
	default:
		return "Unknown"
	}
}

// Config tunes one scramble reveal
type Config struct {
	Alphabet   string        // Glyph pool for unrevealed positions
	Filler     string        // Shown at every non-space position while idle
	Ticks      int           // Ticks from start to settled
	Interval   time.Duration // Delay between ticks
	StartDelay time.Duration // Delay between Trigger and the first tick
}

// DefaultConfig returns 28 ticks at 40ms over the default alphabet
func DefaultConfig() Config {
	return Config{
		Alphabet: parameter.ScrambleAlphabet,
		Filler:   parameter.ScrambleFiller,
		Ticks:    parameter.ScrambleTicks,
		Interval: parameter.ScrambleInterval,
	}
}

// Engine is the tick-driven scramble state machine, free of any timing
// Text is handled per grapheme cluster so combining marks and emoji never split
type Engine struct {
	target   []string
	display  []string
	space    []bool
	nonSpace int

	alphabet []string
	filler   string
	rng      vmath.Source

	tick  int
	total int
	state State
}

// New creates an idle engine for target
// An empty target or non-positive tick count yields an engine already settled on target
func New(target string, cfg Config, rng vmath.Source) *Engine {
	if rng == nil {
		rng = vmath.DefaultSource()
	}
	alphabet := graphemes(cfg.Alphabet)
	if len(alphabet) == 0 {
		alphabet = graphemes(parameter.ScrambleAlphabet)
	}
	filler := cfg.Filler
	if filler == "" {
		filler = parameter.ScrambleFiller
	}

	e := &Engine{
		target:   graphemes(target),
		alphabet: alphabet,
		filler:   filler,
		rng:      rng,
		total:    cfg.Ticks,
	}
	e.display = make([]string, len(e.target))
	e.space = make([]bool, len(e.target))
	for i, g := range e.target {
		if isSpace(g) {
			e.space[i] = true
			e.display[i] = g
			continue
		}
		e.nonSpace++
		e.display[i] = e.filler
	}

	if len(e.target) == 0 || e.total <= 0 {
		e.Settle()
	}
	return e
}

func graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

func isSpace(g string) bool {
	for _, r := range g {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Start leaves Idle and shows tick 0 with every non-space position scrambled
func (e *Engine) Start() {
	if e.state != StateIdle {
		return
	}
	e.state = StateScrambling
	e.tick = 0
	e.render()
}

// Step advances one tick, starting the engine if idle
// Reaching the final tick forces the display to the target and settles
func (e *Engine) Step() {
	switch e.state {
	case StateIdle:
		e.Start()
	case StateScrambling:
		e.tick++
		if e.tick >= e.total {
			e.Settle()
			return
		}
		e.render()
	}
}

// Settle jumps to the terminal state
func (e *Engine) Settle() {
	if e.total > 0 {
		e.tick = e.total
	}
	copy(e.display, e.target)
	e.state = StateSettled
}

// render resamples every unrevealed non-space position for the current tick
func (e *Engine) render() {
	reveal := e.RevealCount()
	seen := 0
	for i, g := range e.target {
		if e.space[i] {
			continue
		}
		if seen < reveal {
			e.display[i] = g
		} else {
			e.display[i] = e.alphabet[e.rng.IntN(len(e.alphabet))]
		}
		seen++
	}
}

// RevealCount is the number of leading non-space graphemes showing their target
func (e *Engine) RevealCount() int {
	switch e.state {
	case StateSettled:
		return e.nonSpace
	case StateIdle:
		return 0
	}
	return e.tick * e.nonSpace / e.total
}

// Display returns the current text
func (e *Engine) Display() string {
	return strings.Join(e.display, "")
}

// Target returns the text being revealed
func (e *Engine) Target() string {
	return strings.Join(e.target, "")
}

// State returns the lifecycle state
func (e *Engine) State() State {
	return e.state
}

// Tick returns the number of ticks elapsed since Start
func (e *Engine) Tick() int {
	return e.tick
}

// Total returns the configured tick count
func (e *Engine) Total() int {
	return e.total
}

// Len returns the target length in graphemes
func (e *Engine) Len() int {
	return len(e.target)
}
