package camera

import (
	"testing"

	"github.com/Faultbox/vanguard/internal/config"
	"github.com/Faultbox/vanguard/pkg/math"
)

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func approx(a, b, eps float32) bool {
	return abs(a-b) <= eps
}

func approxVec3(a, b math.Vec3, eps float32) bool {
	return approx(a.X, b.X, eps) && approx(a.Y, b.Y, eps) && approx(a.Z, b.Z, eps)
}

func newTestRig() *Rig {
	cfg := config.CameraConfig{ArmLength: 4, PivotOffset: math.Vec3{Y: 1.5}}
	return NewRig(cfg, -85, 85)
}

func TestPitchClamped(t *testing.T) {
	r := newTestRig()

	tests := []struct {
		name  string
		delta math.Vec2
		want  float32
	}{
		{"look up hard", math.Vec2{Y: 1000}, -85},
		{"look down hard", math.Vec2{Y: -2000}, 85},
		{"back to level", math.Vec2{Y: 85}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.AddLook(tt.delta)
			if !approx(r.Pitch, tt.want, 1e-4) {
				t.Errorf("Pitch = %f, want %f", r.Pitch, tt.want)
			}
		})
	}
}

func TestYawUnbounded(t *testing.T) {
	r := newTestRig()
	for i := 0; i < 10; i++ {
		r.AddLook(math.Vec2{X: 90})
	}
	if r.Yaw != 900 {
		t.Errorf("Yaw = %f, want 900", r.Yaw)
	}
}

func TestFlatAxesFollowYaw(t *testing.T) {
	r := newTestRig()
	r.AddLook(math.Vec2{X: 90, Y: -30})
	r.ApplyLook()

	if got := r.FlatForward(); !approxVec3(got, math.Vec3{X: 1}, 1e-4) {
		t.Errorf("FlatForward = %v, want +X", got)
	}
	if got := r.FlatRight(); !approxVec3(got, math.Vec3{Z: -1}, 1e-4) {
		t.Errorf("FlatRight = %v, want -Z", got)
	}
}

func TestPositionBehindPivot(t *testing.T) {
	r := newTestRig()
	r.Follow(math.Vec3{X: 10})
	r.ApplyLook()

	want := math.Vec3{X: 10, Y: 1.5, Z: -4}
	if got := r.Position(); !approxVec3(got, want, 1e-4) {
		t.Errorf("Position = %v, want %v", got, want)
	}
}

func TestLookAtKeepsAccumulators(t *testing.T) {
	r := newTestRig()
	r.Follow(math.Vec3{})
	r.AddLook(math.Vec2{X: 30})

	r.LookAt(math.Vec3{X: -10, Y: 1.5})

	if r.Yaw != 30 {
		t.Errorf("Yaw = %f, want 30 (accumulator untouched)", r.Yaw)
	}
	if got := r.Forward(); !approxVec3(got, math.Vec3{X: -1}, 1e-4) {
		t.Errorf("Forward = %v, want -X", got)
	}

	r.Resync()
	if !approx(r.Yaw, -90, 1e-3) {
		t.Errorf("Yaw after Resync = %f, want -90", r.Yaw)
	}
}

func TestViewMatrixCentersPivot(t *testing.T) {
	r := newTestRig()
	r.Follow(math.Vec3{X: 3, Z: -2})
	r.AddLook(math.Vec2{X: 40, Y: -20})
	r.ApplyLook()

	// The pivot sits straight ahead of the eye, one arm length down -Z.
	got := r.ViewMatrix().TransformVec3(r.Pivot())
	if want := (math.Vec3{Z: -4}); !approxVec3(got, want, 1e-4) {
		t.Errorf("pivot in view space = %v, want %v", got, want)
	}
}
