package task

import "github.com/Faultbox/vanguard/pkg/math"

// FloatBlend linearly interpolates a value over a fixed duration and writes
// it through set every frame. The final frame writes To exactly.
type FloatBlend struct {
	From, To float32
	Duration float32

	elapsed  float32
	set      func(float32)
	done     func()
	canceled bool
}

// NewFloatBlend creates a blend from -> to over duration seconds.
// onDone runs after the final write and is skipped if the blend is canceled.
func NewFloatBlend(from, to, duration float32, set func(float32), onDone func()) *FloatBlend {
	return &FloatBlend{From: from, To: to, Duration: duration, set: set, done: onDone}
}

// Step implements Task.
func (b *FloatBlend) Step(dt float32) bool {
	if b.canceled {
		return true
	}
	b.elapsed += dt
	if b.elapsed >= b.Duration {
		b.set(b.To)
		if b.done != nil {
			b.done()
		}
		return true
	}
	b.set(math.Lerp(b.From, b.To, b.elapsed/b.Duration))
	return false
}

// Cancel stops the blend before its next write.
func (b *FloatBlend) Cancel() {
	b.canceled = true
}

// Running reports whether the blend still has frames to write.
func (b *FloatBlend) Running() bool {
	return !b.canceled && b.elapsed < b.Duration
}

// Orientable is anything with a settable orientation.
type Orientable interface {
	Rotation() math.Quat
	SetRotation(math.Quat)
}

// RotationBlend slerps a target's orientation toward a fixed rotation.
// The start orientation is captured when the blend is created.
type RotationBlend struct {
	Start, Target math.Quat
	Duration      float32

	elapsed float32
	body    Orientable
	stale   func() bool
}

// NewRotationBlend snapshots body's current orientation and blends it to
// target over duration seconds. If stale is non-nil and reports true, the
// blend stops without writing.
func NewRotationBlend(body Orientable, target math.Quat, duration float32, stale func() bool) *RotationBlend {
	return &RotationBlend{
		Start:    body.Rotation(),
		Target:   target,
		Duration: duration,
		body:     body,
		stale:    stale,
	}
}

// Step implements Task.
func (b *RotationBlend) Step(dt float32) bool {
	if b.stale != nil && b.stale() {
		return true
	}
	b.elapsed += dt
	if b.elapsed >= b.Duration {
		// Exact target avoids residual drift from the interpolation
		b.body.SetRotation(b.Target)
		return true
	}
	b.body.SetRotation(b.Start.Slerp(b.Target, b.elapsed/b.Duration))
	return false
}
