package player

import (
	"github.com/Faultbox/vanguard/internal/config"
	"github.com/Faultbox/vanguard/internal/engine/input"
	"github.com/Faultbox/vanguard/internal/engine/task"
	"github.com/Faultbox/vanguard/internal/game/entity"
	"github.com/Faultbox/vanguard/pkg/math"
)

// Move records the move input. A canceled move is zero.
func (c *Controller) Move(e input.Event) {
	if e.Phase == input.PhaseCanceled {
		c.moveVector = math.Vec2{}
		return
	}
	c.moveVector = e.Value
}

// Grounded casts down from the body against the ground layer.
func (c *Controller) Grounded() bool {
	_, ok := c.physics.Raycast(c.body.Position(), math.Down, c.cfg.GroundCastDistance, entity.LayerGround)
	return ok
}

// moveDirection maps the move input onto the camera's ground axes.
func (c *Controller) moveDirection() math.Vec3 {
	forward := c.rig.FlatForward().Scale(c.moveVector.Y)
	right := c.rig.FlatRight().Scale(c.moveVector.X)
	return forward.Add(right)
}

func (c *Controller) performMove(dt float32) {
	if !c.canMove {
		return
	}
	step := c.moveDirection().Scale(c.currentSpeed * dt)
	c.body.MovePosition(c.body.Position().Add(step))
}

// rotate starts a blend toward the lock-on target or, in free mode, toward
// the move direction. Lock-on facing ignores canRotate.
func (c *Controller) rotate() {
	if c.target.Alive() {
		toTarget := c.target.Position.Sub(c.body.Position()).Flat().Normalize()
		if toTarget.IsZero() {
			return
		}
		c.startRotation(toTarget)
		return
	}

	if !c.canRotate {
		return
	}
	dir := c.moveDirection()
	if dir.LengthSq() > 0 {
		c.startRotation(dir)
	}
}

func (c *Controller) startRotation(dir math.Vec3) {
	yaw, _ := math.YawPitch(dir)
	target := math.QuatYaw(yaw)

	var stale func() bool
	if c.cfg.RotationBlendPolicy == config.RotationGeneration {
		stale = c.rotationGen.Next()
	}
	c.tasks.Start(task.NewRotationBlend(c.body, target, config.Seconds(c.cfg.RotationBlend), stale))
}
