package player

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/vanguard/internal/engine/input"
	"github.com/Faultbox/vanguard/internal/game/entity"
)

// LockOn toggles lock-on. When locked it always unlocks; otherwise it
// sweeps the view ray and locks onto the candidate nearest the camera.
func (c *Controller) LockOn(e input.Event) {
	if e.Phase != input.PhaseStarted {
		return
	}
	if c.locked {
		c.unlock()
		return
	}

	if target := c.findTarget(); target != nil {
		c.target = target
		c.locked = true
		c.anim.SetBool(ParamLocked, true)
		c.log.Debug("locked on", zap.String("target", target.Name))
		return
	}

	c.log.Debug("no lock-on target")
	c.unlock()
}

func (c *Controller) findTarget() *entity.Transform {
	origin := c.rig.Position()
	hits := c.physics.SphereCastAll(origin, c.rig.Forward(), c.cfg.LockOnRadius, c.cfg.LockOnDistance, entity.LayerTarget)

	var closest *entity.Transform
	closestDistance := float32(gomath.Inf(1))
	for _, hit := range hits {
		if !hit.Transform.Alive() {
			continue
		}
		d := origin.Distance(hit.Transform.Position)
		if d < closestDistance {
			closestDistance = d
			closest = hit.Transform
		}
	}
	return closest
}

func (c *Controller) unlock() {
	wasLocked := c.locked
	c.target = nil
	c.locked = false
	c.anim.SetBool(ParamLocked, false)
	if wasLocked && c.cfg.ResyncLookOnUnlock {
		c.rig.Resync()
	}
}

// dropDestroyedTarget unlocks when the target no longer exists.
func (c *Controller) dropDestroyedTarget() {
	if c.locked && !c.target.Alive() {
		c.log.Debug("lock-on target destroyed")
		c.unlock()
	}
}
