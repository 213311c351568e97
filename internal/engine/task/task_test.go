package task

import (
	"testing"

	"github.com/Faultbox/vanguard/pkg/math"
)

func TestSchedulerRunsInStartOrder(t *testing.T) {
	s := NewScheduler()
	var order []int

	s.Start(Func(func(float32) bool { order = append(order, 1); return true }))
	s.Start(Func(func(float32) bool { order = append(order, 2); return true }))
	s.Update(0.016)

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("step order = %v, want [1 2]", order)
	}
	if s.Len() != 0 {
		t.Errorf("finished tasks not dropped, Len() = %d", s.Len())
	}
}

func TestSchedulerStartDuringUpdate(t *testing.T) {
	s := NewScheduler()
	childRuns := 0

	s.Start(Func(func(float32) bool {
		s.Start(Func(func(float32) bool { childRuns++; return true }))
		return true
	}))

	s.Update(0.016)
	if childRuns != 0 {
		t.Error("task started during Update ran in the same frame")
	}
	s.Update(0.016)
	if childRuns != 1 {
		t.Errorf("child ran %d times, want 1", childRuns)
	}
}

func TestDelayFiresOnceAtDuration(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.Start(After(0.5, func() { fired++ }))

	for i := 0; i < 4; i++ {
		s.Update(0.1)
	}
	if fired != 0 {
		t.Fatalf("delay fired early after 0.4s")
	}

	s.Update(0.1)
	s.Update(0.1)
	if fired != 1 {
		t.Errorf("delay fired %d times, want 1", fired)
	}
}

func TestDelayFrameRateIndependent(t *testing.T) {
	for _, dt := range []float32{0.25, 0.125, 0.0625} {
		fired := false
		d := After(1, func() { fired = true })
		var elapsed float32
		for !fired {
			d.Step(dt)
			elapsed += dt
		}
		if elapsed != 1 {
			t.Errorf("dt=%v: fired after %v, want 1", dt, elapsed)
		}
	}
}

func TestFloatBlend(t *testing.T) {
	var value float32
	finished := false
	b := NewFloatBlend(0.5, 1, 0.5, func(v float32) { value = v }, func() { finished = true })

	if b.Step(0.25) {
		t.Fatal("blend finished halfway")
	}
	if value != 0.75 {
		t.Errorf("halfway value = %v, want 0.75", value)
	}

	if !b.Step(0.3) {
		t.Fatal("blend should finish after overshoot")
	}
	if value != 1 {
		t.Errorf("final value = %v, want exactly 1", value)
	}
	if !finished {
		t.Error("onDone not called")
	}
	if b.Running() {
		t.Error("finished blend reports Running")
	}
}

func TestFloatBlendCancel(t *testing.T) {
	writes := 0
	finished := false
	b := NewFloatBlend(1, 0.5, 1, func(float32) { writes++ }, func() { finished = true })

	b.Step(0.1)
	b.Cancel()
	if !b.Step(0.1) {
		t.Error("canceled blend should report done")
	}
	if writes != 1 {
		t.Errorf("writes = %d, want 1", writes)
	}
	if finished {
		t.Error("onDone should not run for a canceled blend")
	}
}

type body struct {
	rot    math.Quat
	writes int
}

func (b *body) Rotation() math.Quat     { return b.rot }
func (b *body) SetRotation(q math.Quat) { b.rot = q; b.writes++ }

func TestRotationBlendSnapsToTarget(t *testing.T) {
	for _, overshoot := range []float32{0, 0.013, 0.5} {
		b := &body{rot: math.QuatIdentity()}
		target := math.QuatYaw(137)
		blend := NewRotationBlend(b, target, 0.25, nil)

		steps := []float32{0.0625, 0.0625, 0.0625, 0.0625 + overshoot}
		var done bool
		for _, dt := range steps {
			done = blend.Step(dt)
		}

		if !done {
			t.Fatalf("overshoot %v: blend not done after full duration", overshoot)
		}
		if b.rot != target {
			t.Errorf("overshoot %v: final rotation %+v, want exactly %+v", overshoot, b.rot, target)
		}
	}
}

func TestRotationBlendInterpolates(t *testing.T) {
	b := &body{rot: math.QuatIdentity()}
	blend := NewRotationBlend(b, math.QuatYaw(90), 1, nil)

	blend.Step(0.5)
	if yaw := b.rot.Yaw(); yaw < 44.9 || yaw > 45.1 {
		t.Errorf("halfway yaw = %v, want ~45", yaw)
	}
}

func TestRotationBlendStaleGeneration(t *testing.T) {
	var gen Generation
	b := &body{rot: math.QuatIdentity()}

	old := NewRotationBlend(b, math.QuatYaw(90), 0.2, gen.Next())
	fresh := NewRotationBlend(b, math.QuatYaw(-90), 0.2, gen.Next())

	if !old.Step(0.05) {
		t.Error("stale blend should stop immediately")
	}
	if b.writes != 0 {
		t.Errorf("stale blend wrote %d times", b.writes)
	}
	if fresh.Step(0.05) {
		t.Error("fresh blend finished too early")
	}
	if b.writes != 1 {
		t.Errorf("fresh blend writes = %d, want 1", b.writes)
	}
}

func TestOverlappingRotationBlendsLastWriterWins(t *testing.T) {
	s := NewScheduler()
	b := &body{rot: math.QuatIdentity()}

	s.Start(NewRotationBlend(b, math.QuatYaw(90), 0.1, nil))
	s.Start(NewRotationBlend(b, math.QuatYaw(-90), 0.1, nil))
	s.Update(0.2)

	if b.rot != math.QuatYaw(-90) {
		t.Errorf("rotation = %+v, want the later blend's target", b.rot)
	}
	if b.writes != 2 {
		t.Errorf("writes = %d, want 2 (both blends write)", b.writes)
	}
}
