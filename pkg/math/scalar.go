package math

import "math"

const (
	deg2Rad = math.Pi / 180
	rad2Deg = 180 / math.Pi
)

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * deg2Rad
}

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 {
	return rad * rad2Deg
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates from a to b by t without clamping t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
