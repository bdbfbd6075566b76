package reveal

import (
	"time"

	"github.com/lixenwraith/lumen/engine"
	"github.com/lixenwraith/lumen/parameter"
)

// Intro stage names
const (
	StageIntroOut = "intro-out"
	StageContent  = "content"
)

// Sequence is a set of named stages, each on its own timeline measured from Arm
type Sequence struct {
	timers engine.TimerScheduler
	stages map[string]*Timeline
	order  []string
	armed  bool
}

// NewSequence creates an empty sequence
func NewSequence(timers engine.TimerScheduler) *Sequence {
	return &Sequence{
		timers: timers,
		stages: make(map[string]*Timeline),
	}
}

// IntroSequence returns the landing intro: fade-out starts at 1.6s, content mounts at 2.2s
func IntroSequence(timers engine.TimerScheduler) *Sequence {
	s := NewSequence(timers)
	s.Stage(StageIntroOut, parameter.IntroOutDelay)
	s.Stage(StageContent, parameter.IntroContentDelay)
	return s
}

// Stage adds a named stage, or returns the existing one
// Stages added after Arm are armed immediately
func (s *Sequence) Stage(name string, delay time.Duration) *Timeline {
	if t, ok := s.stages[name]; ok {
		return t
	}
	t := NewTimeline(s.timers, delay)
	s.stages[name] = t
	s.order = append(s.order, name)
	if s.armed {
		t.Arm()
	}
	return t
}

// Get returns the stage timeline, nil if unknown
func (s *Sequence) Get(name string) *Timeline {
	return s.stages[name]
}

// Names returns stage names in declaration order
func (s *Sequence) Names() []string {
	return append([]string(nil), s.order...)
}

// Arm arms every stage
func (s *Sequence) Arm() {
	if s.armed {
		return
	}
	s.armed = true
	for _, name := range s.order {
		s.stages[name].Arm()
	}
}

// Dispose cancels every pending stage
func (s *Sequence) Dispose() {
	for _, name := range s.order {
		s.stages[name].Dispose()
	}
}
