// Package math2d provides 2D math primitives for the maze world.
package math2d

import "math"

// Vec2 represents a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// FromAngle returns the unit vector pointing along angle (radians).
// Angle 0 points along +X, angle π/2 along +Y.
func FromAngle(angle float64) Vec2 {
	return Vec2{math.Cos(angle), math.Sin(angle)}
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Perp returns a rotated 90° counter-clockwise.
func (a Vec2) Perp() Vec2 {
	return Vec2{-a.Y, a.X}
}

// IsFinite reports whether both components are finite numbers.
func (a Vec2) IsFinite() bool {
	return !math.IsNaN(a.X) && !math.IsInf(a.X, 0) &&
		!math.IsNaN(a.Y) && !math.IsInf(a.Y, 0)
}

// NormalizeAngle wraps an angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
