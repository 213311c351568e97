package player

import (
	"testing"

	"github.com/Faultbox/vanguard/internal/engine/input"
	"github.com/Faultbox/vanguard/pkg/math"
)

func TestAttackGateTiming(t *testing.T) {
	h := newHarness(testConfig()) // move delay 0.5s

	var events []AttackEvent
	h.c.AttackStarted.Connect(func(e AttackEvent) { events = append(events, e) })

	h.c.Attack(started(input.ActionAttack))
	if !h.c.Attacking() || h.c.CanMove() || h.c.CanRotate() {
		t.Fatal("attack should lock movement and rotation")
	}

	h.c.Attack(started(input.ActionAttack))
	if h.anim.count(TriggerAttack) != 1 || len(events) != 1 {
		t.Fatalf("re-entry accepted: triggers=%d events=%d", h.anim.count(TriggerAttack), len(events))
	}

	h.frames(3, 0.125)
	if !h.c.Attacking() {
		t.Fatal("attack ended before the move delay")
	}
	h.c.Attack(started(input.ActionAttack))
	if h.anim.count(TriggerAttack) != 1 {
		t.Fatal("attack accepted before the move delay")
	}

	h.frames(1, 0.125)
	if h.c.Attacking() || !h.c.CanMove() || !h.c.CanRotate() {
		t.Fatal("attack should end exactly at the move delay")
	}

	h.c.Attack(started(input.ActionAttack))
	if h.anim.count(TriggerAttack) != 2 || len(events) != 2 {
		t.Errorf("attack after recovery rejected: triggers=%d events=%d", h.anim.count(TriggerAttack), len(events))
	}
}

func TestAttackEventCarriesWeaponDamage(t *testing.T) {
	cfg := testConfig()
	cfg.WeaponDamage = 17
	h := newHarness(cfg)

	var got AttackEvent
	h.c.AttackStarted.Connect(func(e AttackEvent) { got = e })
	h.c.Attack(started(input.ActionAttack))

	if got.Damage != 17 {
		t.Errorf("Damage = %d, want 17", got.Damage)
	}
	if got.Origin != h.body.pos {
		t.Errorf("Origin = %v, want body position %v", got.Origin, h.body.pos)
	}
	if !approxVec3(got.Facing, math.Forward, 1e-5) {
		t.Errorf("Facing = %v, want +Z", got.Facing)
	}
}

func TestAttackBlockedWhileAnimatorPlaysAttack(t *testing.T) {
	h := newHarness(testConfig())
	h.anim.playing = StateAttack

	h.c.Attack(started(input.ActionAttack))

	if h.c.Attacking() {
		t.Error("attack accepted while the attack state is playing")
	}
	if len(h.anim.triggers) != 0 {
		t.Errorf("triggers = %v, want none", h.anim.triggers)
	}
}

func TestAttackFreezesMovementAndFreeRotation(t *testing.T) {
	h := newHarness(testConfig())
	h.c.Move(move(1, 0))
	h.c.Attack(started(input.ActionAttack))

	h.c.FixedUpdate(0.02)
	h.frames(2, 0.125)

	if len(h.body.moves) != 0 {
		t.Errorf("MovePosition called %d times while attacking", len(h.body.moves))
	}
	if h.body.rot != math.QuatIdentity() {
		t.Errorf("rotation changed while attacking: %v", h.body.rot)
	}
}
