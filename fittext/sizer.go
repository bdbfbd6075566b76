package fittext

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/lumen/parameter"
)

// Measurer reports the rendered width of text at a font size
type Measurer interface {
	Measure(text string, size float64) float64
}

// MeasureFunc adapts a function to Measurer
type MeasureFunc func(text string, size float64) float64

// Measure implements Measurer
func (f MeasureFunc) Measure(text string, size float64) float64 {
	return f(text, size)
}

// RuneMeasurer measures in terminal cells: display width times size times the per-cell advance
type RuneMeasurer struct {
	Advance float64
}

// NewRuneMeasurer returns a measurer with the default cell advance
func NewRuneMeasurer() RuneMeasurer {
	return RuneMeasurer{Advance: parameter.FitCellAdvance}
}

// Measure implements Measurer
func (m RuneMeasurer) Measure(text string, size float64) float64 {
	return float64(runewidth.StringWidth(text)) * size * m.Advance
}

// Sizer scales a font so text spans its container exactly
type Sizer struct {
	measurer Measurer
	ref      float64
	size     float64
}

// NewSizer creates a sizer measuring at ref, the size starts at ref
func NewSizer(m Measurer, ref float64) *Sizer {
	if !(ref > 0) || math.IsInf(ref, 0) {
		ref = parameter.FitReferenceSize
	}
	return &Sizer{measurer: m, ref: ref, size: ref}
}

// Fit measures text at the reference size and scales to container
// A zero natural width or non-positive container leaves the previous size unchanged
func (s *Sizer) Fit(text string, container float64) float64 {
	if s.measurer == nil || !(container > 0) || math.IsInf(container, 0) {
		return s.size
	}
	natural := s.measurer.Measure(text, s.ref)
	if !(natural > 0) || math.IsInf(natural, 0) {
		return s.size
	}
	s.size = s.ref * container / natural
	return s.size
}

// Size returns the last fitted size
func (s *Sizer) Size() float64 {
	return s.size
}

// Reference returns the measuring size
func (s *Sizer) Reference() float64 {
	return s.ref
}
