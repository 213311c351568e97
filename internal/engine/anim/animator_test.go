package anim

import "testing"

func TestParameters(t *testing.T) {
	a := New(DefaultClips())

	a.SetFloat("X", 0.5)
	a.SetBool("LockedOn", true)

	if got := a.Float("X"); got != 0.5 {
		t.Errorf("Float(X) = %f, want 0.5", got)
	}
	if got := a.Float("Y"); got != 0 {
		t.Errorf("unset Float(Y) = %f, want 0", got)
	}
	if !a.Bool("LockedOn") {
		t.Error("Bool(LockedOn) = false, want true")
	}
}

func TestTriggerPlaysClip(t *testing.T) {
	a := New(map[string]float32{ClipAttack: 1.0})

	if a.IsPlaying(ClipAttack) {
		t.Fatal("attack playing before trigger")
	}

	a.SetTrigger(ClipAttack)
	if !a.IsPlaying(ClipAttack) {
		t.Fatal("attack should play after trigger")
	}

	a.Update(0.5)
	if !a.IsPlaying(ClipAttack) {
		t.Error("attack should still play at 0.5s")
	}

	a.Update(0.5)
	if a.IsPlaying(ClipAttack) {
		t.Error("attack should finish at 1.0s")
	}
	if a.State() != StateLocomotion {
		t.Errorf("State() = %s, want %s", a.State(), StateLocomotion)
	}
}

func TestTriggerWithoutClip(t *testing.T) {
	a := New(nil)

	var fired []string
	a.Triggered.Connect(func(name string) { fired = append(fired, name) })

	a.SetTrigger(ClipJump)

	if a.State() != StateLocomotion {
		t.Errorf("State() = %s, want %s", a.State(), StateLocomotion)
	}
	if len(fired) != 1 || fired[0] != ClipJump {
		t.Errorf("Triggered = %v, want [Jump]", fired)
	}
}
