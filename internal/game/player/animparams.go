package player

import "github.com/Faultbox/vanguard/pkg/math"

// walkLimit bounds the blend parameters while walking.
const walkLimit float32 = 0.5

// setAnimationParams projects locomotion onto the animator. Airborne
// zeroes both axes. While the sprint blend runs it is the only writer of
// the forward parameter.
func (c *Controller) setAnimationParams() {
	if !c.Grounded() {
		c.anim.SetFloat(ParamStrafe, 0)
		c.anim.SetFloat(ParamForward, 0)
		return
	}

	c.animX = c.moveVector.X
	if !c.blending {
		c.animY = c.moveVector.Y
	}

	x, y := c.animX, c.animY
	if !c.sprinting {
		x = math.Clamp(x, -walkLimit, walkLimit)
		y = math.Clamp(y, -walkLimit, walkLimit)
	}

	c.anim.SetFloat(ParamStrafe, x)
	if !c.blending {
		c.anim.SetFloat(ParamForward, y)
	}
}
