package player

import (
	"time"

	"github.com/Faultbox/vanguard/internal/config"
	"github.com/Faultbox/vanguard/internal/engine/camera"
	"github.com/Faultbox/vanguard/internal/engine/input"
	"github.com/Faultbox/vanguard/internal/engine/physics"
	"github.com/Faultbox/vanguard/internal/game/entity"
	"github.com/Faultbox/vanguard/pkg/math"
)

type fakeBody struct {
	pos      math.Vec3
	rot      math.Quat
	vel      math.Vec3
	moves    []math.Vec3
	impulses []math.Vec3
}

func newFakeBody(pos math.Vec3) *fakeBody {
	return &fakeBody{pos: pos, rot: math.QuatIdentity()}
}

func (b *fakeBody) Position() math.Vec3 { return b.pos }
func (b *fakeBody) Velocity() math.Vec3 { return b.vel }
func (b *fakeBody) Rotation() math.Quat { return b.rot }
func (b *fakeBody) SetRotation(q math.Quat) { b.rot = q }
func (b *fakeBody) MovePosition(t math.Vec3) { b.moves = append(b.moves, t) }
func (b *fakeBody) AddImpulse(i math.Vec3) { b.impulses = append(b.impulses, i) }

type fakePhysics struct {
	grounded bool
	hits     []physics.Hit
	casts    int
}

func (p *fakePhysics) Raycast(_, _ math.Vec3, _ float32, mask entity.Layer) (physics.Hit, bool) {
	if mask&entity.LayerGround == 0 {
		return physics.Hit{}, false
	}
	return physics.Hit{}, p.grounded
}

func (p *fakePhysics) SphereCastAll(_, _ math.Vec3, _, _ float32, _ entity.Layer) []physics.Hit {
	p.casts++
	return p.hits
}

type fakeAnimator struct {
	floats   map[string]float32
	bools    map[string]bool
	triggers []string
	playing  string
}

func newFakeAnimator() *fakeAnimator {
	return &fakeAnimator{floats: map[string]float32{}, bools: map[string]bool{}}
}

func (a *fakeAnimator) SetFloat(name string, v float32) { a.floats[name] = v }
func (a *fakeAnimator) SetBool(name string, v bool) { a.bools[name] = v }
func (a *fakeAnimator) SetTrigger(name string) { a.triggers = append(a.triggers, name) }
func (a *fakeAnimator) IsPlaying(state string) bool { return a.playing == state }

func (a *fakeAnimator) count(trigger string) int {
	n := 0
	for _, t := range a.triggers {
		if t == trigger {
			n++
		}
	}
	return n
}

// testConfig uses durations that are exact in binary floating point so
// accumulated frame deltas land on them.
func testConfig() config.PlayerConfig {
	cfg := config.Default().Player
	cfg.WalkSpeed = 2
	cfg.SprintSpeed = 5
	cfg.SprintBlend = 250 * time.Millisecond
	cfg.RotationBlend = 250 * time.Millisecond
	cfg.AttackMoveDelay = 500 * time.Millisecond
	cfg.JumpCooldown = 250 * time.Millisecond
	cfg.LookSensitivity = 0.1
	cfg.PitchMin = -85
	cfg.PitchMax = 85
	return cfg
}

type harness struct {
	c    *Controller
	body *fakeBody
	phys *fakePhysics
	anim *fakeAnimator
	rig  *camera.Rig
}

func newHarness(cfg config.PlayerConfig) *harness {
	body := newFakeBody(math.Vec3{Y: 1})
	phys := &fakePhysics{grounded: true}
	anim := newFakeAnimator()
	rig := camera.NewRig(config.CameraConfig{ArmLength: 4, PivotOffset: math.Vec3{Y: 1.5}}, cfg.PitchMin, cfg.PitchMax)
	return &harness{
		c:    New(cfg, body, phys, anim, rig),
		body: body,
		phys: phys,
		anim: anim,
		rig:  rig,
	}
}

// frames runs n frame ticks of dt seconds.
func (h *harness) frames(n int, dt float32) {
	for i := 0; i < n; i++ {
		h.c.Update(dt)
	}
}

func started(a input.Action) input.Event {
	return input.Event{Action: a, Phase: input.PhaseStarted}
}

func canceled(a input.Action) input.Event {
	return input.Event{Action: a, Phase: input.PhaseCanceled}
}

func move(x, y float32) input.Event {
	return input.Event{Action: input.ActionMove, Phase: input.PhasePerformed, Value: math.Vec2{X: x, Y: y}}
}

func look(x, y float32) input.Event {
	return input.Event{Action: input.ActionLook, Phase: input.PhasePerformed, Value: math.Vec2{X: x, Y: y}}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func approxVec3(a, b math.Vec3, eps float32) bool {
	return abs(a.X-b.X) <= eps && abs(a.Y-b.Y) <= eps && abs(a.Z-b.Z) <= eps
}
