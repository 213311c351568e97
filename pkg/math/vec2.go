package math

import "math"

// Vec2 is an input axis pair: X strafes right, Y pushes forward. Mouse look
// deltas use X for yaw and Y for pitch.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Normalize returns v at unit length, or zero for a zero vector.
func (v Vec2) Normalize() Vec2 {
	if v.IsZero() {
		return v
	}
	return v.Scale(1 / v.Length())
}

// IsZero reports whether there is no input on either axis.
func (v Vec2) IsZero() bool {
	return v == Vec2{}
}
