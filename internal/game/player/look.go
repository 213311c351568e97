package player

import (
	"github.com/Faultbox/vanguard/internal/engine/input"
	"github.com/Faultbox/vanguard/pkg/math"
)

// Look adds a scaled pointer delta. Deltas are consumed by the next Update.
func (c *Controller) Look(e input.Event) {
	if e.Phase == input.PhaseCanceled {
		return
	}
	c.lookVector = c.lookVector.Add(e.Value.Scale(c.cfg.LookSensitivity))
}

// performLook accumulates look input into the rig and orients it. While
// locked on, the visible orientation tracks the target but the accumulators
// keep integrating input.
func (c *Controller) performLook() {
	c.rig.Follow(c.body.Position())
	c.rig.AddLook(c.lookVector)
	c.lookVector = math.Vec2{}

	if c.target.Alive() {
		c.rig.LookAt(c.target.Position)
		return
	}
	c.rig.ApplyLook()
}
