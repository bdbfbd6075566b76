package vmath

import "math"

// Epsilon is the tolerance used by float comparisons in this package
const Epsilon = 1e-9

// --- Scalar ---

// Clamp restricts v to [lo, hi], NaN maps to lo
func Clamp(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 restricts v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Finite returns v, or fallback when v is NaN or infinite
func Finite(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// Lerp interpolates linearly between a and b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Wrap maps v into [0, size) with toroidal topology
// A non-positive size pins the result at 0
func Wrap(v, size float64) float64 {
	if size <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v >= 0 && v < size {
		return v
	}
	w := math.Mod(v, size)
	if w < 0 {
		w += size
	}
	// Mod of a tiny negative value can round up to size
	if w >= size {
		w = 0
	}
	return w
}

// Approach moves current toward target by fraction alpha of the remaining distance
// First-order exponential filter, never overshoots for alpha in (0, 1]
func Approach(current, target, alpha float64) float64 {
	return current + (target-current)*alpha
}

// --- Distance ---

// DistSq returns squared euclidean distance between two points
func DistSq(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// Dist returns euclidean distance between two points
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistSq(x1, y1, x2, y2))
}
