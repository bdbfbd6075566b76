package vmath

import "math"

// Vec2 is a 2D point or displacement in surface units
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * f
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Len returns the magnitude of v
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// DistTo returns the distance from v to o
func (v Vec2) DistTo(o Vec2) float64 { return Dist(v.X, v.Y, o.X, o.Y) }

// Approach applies the exponential filter per axis
func (v Vec2) Approach(target Vec2, alpha float64) Vec2 {
	return Vec2{Approach(v.X, target.X, alpha), Approach(v.Y, target.Y, alpha)}
}
