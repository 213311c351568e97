package player

import (
	"go.uber.org/zap"

	"github.com/Faultbox/vanguard/internal/config"
	"github.com/Faultbox/vanguard/internal/engine/input"
	"github.com/Faultbox/vanguard/internal/engine/task"
)

// Forward parameter values for walking and sprinting.
const (
	walkForward   float32 = 0.5
	sprintForward float32 = 1.0
)

// Sprint handles the sprint action. In toggle mode each press flips sprint
// and releases are ignored. In hold mode a press enters sprint and a
// release leaves it.
func (c *Controller) Sprint(e input.Event) {
	switch e.Phase {
	case input.PhaseStarted:
		if c.cfg.SprintMode == config.SprintHold && c.sprinting {
			return
		}
		c.toggleSprint()
	case input.PhaseCanceled:
		if c.cfg.SprintMode == config.SprintHold && c.sprinting {
			c.toggleSprint()
		}
	}
}

func (c *Controller) toggleSprint() {
	c.sprinting = !c.sprinting
	c.currentSpeed = c.speedFor(c.sprinting)

	from, to := walkForward, sprintForward
	if !c.sprinting {
		from, to = sprintForward, walkForward
	}

	if c.sprintBlend != nil {
		c.sprintBlend.Cancel()
	}
	c.blending = true
	c.animY = from
	c.sprintBlend = task.NewFloatBlend(from, to, config.Seconds(c.cfg.SprintBlend), c.setForward, c.endSprintBlend)
	c.tasks.Start(c.sprintBlend)

	c.log.Debug("sprint", zap.Bool("on", c.sprinting), zap.Float32("speed", c.currentSpeed))
}

func (c *Controller) setForward(v float32) {
	c.animY = v
	c.anim.SetFloat(ParamForward, v)
}

func (c *Controller) endSprintBlend() {
	c.blending = false
	c.sprintBlend = nil
}
