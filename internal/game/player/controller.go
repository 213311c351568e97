// Package player implements the third-person player controller.
//
// Input handlers mutate the controller's state as events arrive. Two ticks
// consume it: FixedUpdate moves the body at the physics rate and starts
// rotation blends; Update runs once per rendered frame and applies look,
// sprint cancel, jump cooldown and animation parameters, then advances the
// timed tasks (sprint and rotation blends, attack recovery).
package player

import (
	"go.uber.org/zap"

	"github.com/Faultbox/vanguard/internal/config"
	"github.com/Faultbox/vanguard/internal/engine/camera"
	"github.com/Faultbox/vanguard/internal/engine/input"
	"github.com/Faultbox/vanguard/internal/engine/physics"
	"github.com/Faultbox/vanguard/internal/engine/signal"
	"github.com/Faultbox/vanguard/internal/engine/task"
	"github.com/Faultbox/vanguard/internal/game/entity"
	"github.com/Faultbox/vanguard/internal/logger"
	"github.com/Faultbox/vanguard/pkg/math"
)

// Animator parameter and trigger names.
const (
	ParamStrafe  = "X"
	ParamForward = "Y"
	ParamLocked  = "LockedOn"

	TriggerJump   = "Jump"
	TriggerAttack = "Attack"

	StateAttack = "Attack"
)

// Body is the physics body the controller drives.
type Body interface {
	Position() math.Vec3
	Velocity() math.Vec3
	Rotation() math.Quat
	SetRotation(math.Quat)
	MovePosition(target math.Vec3)
	AddImpulse(impulse math.Vec3)
}

// Physics answers spatial queries.
type Physics interface {
	Raycast(origin, dir math.Vec3, maxDistance float32, mask entity.Layer) (physics.Hit, bool)
	SphereCastAll(origin, dir math.Vec3, radius, maxDistance float32, mask entity.Layer) []physics.Hit
}

// Animator receives animation parameters.
type Animator interface {
	SetFloat(name string, v float32)
	SetBool(name string, v bool)
	SetTrigger(name string)
	IsPlaying(state string) bool
}

// AttackEvent is published when an attack starts.
type AttackEvent struct {
	Damage int
	Origin math.Vec3
	Facing math.Vec3
}

// Controller is the player's locomotion and combat state machine.
type Controller struct {
	cfg     config.PlayerConfig
	body    Body
	physics Physics
	anim    Animator
	rig     *camera.Rig
	tasks   *task.Scheduler
	conns   signal.Group

	// Locomotion
	moveVector   math.Vec2
	lookVector   math.Vec2
	currentSpeed float32
	sprinting    bool
	canMove      bool
	canRotate    bool
	rotationGen  task.Generation

	// Animation projection
	animX, animY float32
	blending     bool
	sprintBlend  *task.FloatBlend

	// Combat
	isAttacking bool

	// Lock-on
	target *entity.Transform
	locked bool

	// Jump cooldown
	sinceJump float32
	jumpReady bool

	// AttackStarted fires on every accepted attack.
	AttackStarted signal.Signal[AttackEvent]

	log *zap.Logger
}

// New creates a controller at rest in walk mode.
func New(cfg config.PlayerConfig, body Body, phys Physics, anim Animator, rig *camera.Rig) *Controller {
	c := &Controller{
		cfg:          cfg,
		body:         body,
		physics:      phys,
		anim:         anim,
		rig:          rig,
		tasks:        task.NewScheduler(),
		currentSpeed: cfg.WalkSpeed,
		canMove:      true,
		canRotate:    true,
		sinceJump:    config.Seconds(cfg.JumpCooldown),
		jumpReady:    true,
		log:          logger.Named("player"),
	}
	rig.Follow(body.Position())
	rig.ApplyLook()
	return c
}

// Bind subscribes the controller to the Player action map.
func (c *Controller) Bind(router *input.Router) {
	c.conns.Add(router.On(input.MapPlayer, input.ActionMove, c.Move))
	c.conns.Add(router.On(input.MapPlayer, input.ActionLook, c.Look))
	c.conns.Add(router.On(input.MapPlayer, input.ActionJump, c.Jump))
	c.conns.Add(router.On(input.MapPlayer, input.ActionSprint, c.Sprint))
	c.conns.Add(router.On(input.MapPlayer, input.ActionAttack, c.Attack))
	c.conns.Add(router.On(input.MapPlayer, input.ActionLockOn, c.LockOn))
}

// Close unsubscribes from input and drops running tasks.
func (c *Controller) Close() {
	c.conns.Disconnect()
	c.tasks.Clear()
}

// Configure applies new tuning. Speed follows the current sprint state.
func (c *Controller) Configure(cfg config.PlayerConfig) {
	c.cfg = cfg
	c.currentSpeed = c.speedFor(c.sprinting)
}

// FixedUpdate runs once per physics step.
func (c *Controller) FixedUpdate(dt float32) {
	c.performMove(dt)

	if !c.moveVector.IsZero() || c.target.Alive() {
		c.rotate()
	}
}

// Update runs once per rendered frame.
func (c *Controller) Update(dt float32) {
	c.dropDestroyedTarget()
	c.performLook()

	if c.moveVector.IsZero() {
		c.sprinting = false
		c.currentSpeed = c.cfg.WalkSpeed
	}

	c.sinceJump += dt
	if c.sinceJump > config.Seconds(c.cfg.JumpCooldown) {
		c.jumpReady = true
	}

	c.setAnimationParams()
	c.tasks.Update(dt)
}

// Sprinting reports whether sprint is on.
func (c *Controller) Sprinting() bool { return c.sprinting }

// CurrentSpeed returns the movement speed in units per second.
func (c *Controller) CurrentSpeed() float32 { return c.currentSpeed }

// Attacking reports whether an attack is in progress.
func (c *Controller) Attacking() bool { return c.isAttacking }

// CanMove reports whether movement input is applied.
func (c *Controller) CanMove() bool { return c.canMove }

// CanRotate reports whether free-mode rotation is applied.
func (c *Controller) CanRotate() bool { return c.canRotate }

// LockedOn reports whether a target is locked.
func (c *Controller) LockedOn() bool { return c.locked }

// Target returns the locked target, or nil.
func (c *Controller) Target() *entity.Transform {
	if !c.locked {
		return nil
	}
	return c.target
}

// JumpReady reports whether the jump cooldown has elapsed.
func (c *Controller) JumpReady() bool { return c.jumpReady }

// Blending reports whether the sprint blend owns the forward parameter.
func (c *Controller) Blending() bool { return c.blending }

// MoveVector returns the latest move input.
func (c *Controller) MoveVector() math.Vec2 { return c.moveVector }

func (c *Controller) speedFor(sprinting bool) float32 {
	if sprinting {
		return c.cfg.SprintSpeed
	}
	return c.cfg.WalkSpeed
}
