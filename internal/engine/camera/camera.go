// Package camera provides the third-person camera rig.
//
// The rig has a pivot that follows the player at PivotOffset and an arm of
// ArmLength behind it. Look input accumulates into Yaw and Pitch; each frame
// the pivot is oriented either from those accumulators or, while locked on,
// toward a look-at point.
package camera

import (
	"github.com/Faultbox/vanguard/internal/config"
	"github.com/Faultbox/vanguard/pkg/math"
)

// Rig is a third-person follow camera.
type Rig struct {
	// Look accumulators in degrees. Yaw is unbounded; Pitch is clamped to
	// [PitchMin, PitchMax]. Positive pitch looks down.
	Yaw      float32
	Pitch    float32
	PitchMin float32
	PitchMax float32

	ArmLength   float32
	PivotOffset math.Vec3

	pivot    math.Vec3
	rotation math.Quat
}

// NewRig creates a rig from camera settings and pitch limits.
func NewRig(cfg config.CameraConfig, pitchMin, pitchMax float32) *Rig {
	r := &Rig{
		Yaw:         cfg.StartYaw,
		PitchMin:    pitchMin,
		PitchMax:    pitchMax,
		ArmLength:   cfg.ArmLength,
		PivotOffset: cfg.PivotOffset,
	}
	r.Pitch = math.Clamp(cfg.StartPitch, pitchMin, pitchMax)
	r.ApplyLook()
	return r
}

// Configure updates arm and pivot settings and pitch limits, keeping the
// current heading.
func (r *Rig) Configure(cfg config.CameraConfig, pitchMin, pitchMax float32) {
	r.ArmLength = cfg.ArmLength
	r.PivotOffset = cfg.PivotOffset
	r.PitchMin = pitchMin
	r.PitchMax = pitchMax
	r.Pitch = math.Clamp(r.Pitch, pitchMin, pitchMax)
}

// AddLook accumulates a look delta: yaw += x, pitch -= y, pitch clamped.
func (r *Rig) AddLook(delta math.Vec2) {
	r.Yaw += delta.X
	r.Pitch = math.Clamp(r.Pitch-delta.Y, r.PitchMin, r.PitchMax)
}

// Follow moves the pivot to target + PivotOffset.
func (r *Rig) Follow(target math.Vec3) {
	r.pivot = target.Add(r.PivotOffset)
}

// ApplyLook orients the pivot from the accumulators.
func (r *Rig) ApplyLook() {
	r.rotation = math.QuatFromEuler(r.Pitch, r.Yaw, 0)
}

// LookAt orients the pivot toward point without touching the accumulators.
func (r *Rig) LookAt(point math.Vec3) {
	dir := point.Sub(r.pivot)
	if dir.IsZero() {
		return
	}
	r.rotation = math.LookRotation(dir)
}

// Resync re-derives the accumulators from the visible orientation.
func (r *Rig) Resync() {
	yaw, pitch := math.YawPitch(r.rotation.Forward())
	r.Yaw = yaw
	r.Pitch = math.Clamp(pitch, r.PitchMin, r.PitchMax)
}

// Rotation returns the visible orientation.
func (r *Rig) Rotation() math.Quat {
	return r.rotation
}

// Pivot returns the pivot position.
func (r *Rig) Pivot() math.Vec3 {
	return r.pivot
}

// Position returns the camera position at the end of the arm.
func (r *Rig) Position() math.Vec3 {
	return r.pivot.Sub(r.Forward().Scale(r.ArmLength))
}

// Forward returns the camera's view direction.
func (r *Rig) Forward() math.Vec3 {
	return r.rotation.Forward()
}

// Right returns the camera's right axis.
func (r *Rig) Right() math.Vec3 {
	return r.rotation.Right()
}

// FlatForward returns the view direction projected on the ground plane.
func (r *Rig) FlatForward() math.Vec3 {
	return r.Forward().Flat().Normalize()
}

// FlatRight returns the right axis projected on the ground plane.
func (r *Rig) FlatRight() math.Vec3 {
	return r.Right().Flat().Normalize()
}

// ViewMatrix returns the view matrix for the current frame.
func (r *Rig) ViewMatrix() math.Mat4 {
	pos := r.Position()
	return math.LookAt(pos, pos.Add(r.Forward()), math.Up)
}
