package vmath

import "math"

// Easing maps normalized time [0,1] to normalized progress
type Easing func(t float64) float64

// CubicBezier is a CSS timing function with fixed endpoints (0,0) and (1,1)
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// Standard timing functions
var (
	EaseLinear   Easing = func(t float64) float64 { return Clamp01(t) }
	EaseInQuad   Easing = func(t float64) float64 { t = Clamp01(t); return t * t }
	Ease                = CubicBezier{0.25, 0.1, 0.25, 1}.Ease
	EaseOutExpo         = CubicBezier{0.16, 1, 0.3, 1}.Ease
	EaseStandard        = CubicBezier{0.4, 0, 0.2, 1}.Ease
	EaseInOut           = CubicBezier{0.4, 0, 0.6, 1}.Ease
)

const (
	bezierNewtonIterations = 8
	bezierBisectIterations = 32
	bezierPrecision        = 1e-7
)

func bezierCoord(t, p1, p2 float64) float64 {
	// B(t) = 3(1-t)^2 t p1 + 3(1-t) t^2 p2 + t^3
	mt := 1 - t
	return 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t
}

func bezierSlope(t, p1, p2 float64) float64 {
	mt := 1 - t
	return 3*mt*mt*p1 + 6*mt*t*(p2-p1) + 3*t*t*(1-p2)
}

// solveT finds the curve parameter whose x coordinate equals x
func (c CubicBezier) solveT(x float64) float64 {
	t := x
	for i := 0; i < bezierNewtonIterations; i++ {
		dx := bezierCoord(t, c.X1, c.X2) - x
		if math.Abs(dx) < bezierPrecision {
			return t
		}
		slope := bezierSlope(t, c.X1, c.X2)
		if math.Abs(slope) < 1e-6 {
			break
		}
		t -= dx / slope
	}

	// Newton stalled, x(t) is monotonic for X1,X2 in [0,1] so bisection converges
	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < bezierBisectIterations; i++ {
		cx := bezierCoord(t, c.X1, c.X2)
		if math.Abs(cx-x) < bezierPrecision {
			return t
		}
		if cx < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}

// Ease evaluates the timing function at normalized time t
func (c CubicBezier) Ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if c.X1 == c.Y1 && c.X2 == c.Y2 {
		return t
	}
	return bezierCoord(c.solveT(t), c.Y1, c.Y2)
}
