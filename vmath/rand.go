package vmath

import "math/rand/v2"

// Source is the random input consumed by simulations and text effects
// *math/rand/v2.Rand satisfies it; tests inject seeded or scripted sources
type Source interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64
	// IntN returns a uniform value in [0, n), n > 0
	IntN(n int) int
}

// RangeFloat returns a uniform value in [lo, lo+span)
func RangeFloat(src Source, lo, span float64) float64 {
	return lo + src.Float64()*span
}

// Centered returns a uniform value in [-span/2, span/2)
func Centered(src Source, span float64) float64 {
	return (src.Float64() - 0.5) * span
}

// globalSource draws from the math/rand/v2 top-level generator
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns a Source backed by the auto-seeded global generator
func DefaultSource() Source {
	return globalSource{}
}

// NewSeededSource returns a deterministic Source for reproducible runs
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
