package player

import (
	"github.com/Faultbox/vanguard/internal/engine/input"
	"github.com/Faultbox/vanguard/pkg/math"
)

// Jump applies an upward impulse when grounded and off cooldown.
// Horizontal velocity is left untouched.
func (c *Controller) Jump(e input.Event) {
	if e.Phase != input.PhaseStarted {
		return
	}
	if !c.jumpReady || !c.Grounded() {
		return
	}

	c.anim.SetTrigger(TriggerJump)
	c.body.AddImpulse(math.Vec3{Y: c.cfg.JumpForce})
	c.sinceJump = 0
	c.jumpReady = false
}
