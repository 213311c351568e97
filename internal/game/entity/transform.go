package entity

import "github.com/Faultbox/vanguard/pkg/math"

// Transform is a named position and orientation in the world.
//
// Holders of a *Transform do not own it. Whoever created it may Destroy it
// at any time, and observers must check Alive before use.
type Transform struct {
	Name     string
	Position math.Vec3
	Rotation math.Quat

	destroyed bool
}

// NewTransform creates an unrotated transform.
func NewTransform(name string, position math.Vec3) *Transform {
	return &Transform{
		Name:     name,
		Position: position,
		Rotation: math.QuatIdentity(),
	}
}

// Destroy marks the transform as gone.
func (t *Transform) Destroy() {
	if t != nil {
		t.destroyed = true
	}
}

// Alive reports whether t is non-nil and not destroyed.
func (t *Transform) Alive() bool {
	return t != nil && !t.destroyed
}

// Forward returns the transform's forward axis.
func (t *Transform) Forward() math.Vec3 {
	return t.Rotation.Forward()
}
