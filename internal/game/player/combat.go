package player

import (
	"go.uber.org/zap"

	"github.com/Faultbox/vanguard/internal/config"
	"github.com/Faultbox/vanguard/internal/engine/input"
	"github.com/Faultbox/vanguard/internal/engine/task"
)

// Attack starts an attack unless one is already running or the animator is
// still playing the attack state. Movement and free rotation stay locked
// for AttackMoveDelay.
func (c *Controller) Attack(e input.Event) {
	if e.Phase != input.PhaseStarted {
		return
	}
	if c.isAttacking || c.anim.IsPlaying(StateAttack) {
		c.log.Debug("attack dropped", zap.Bool("attacking", c.isAttacking))
		return
	}

	c.canRotate = false
	c.canMove = false
	c.anim.SetTrigger(TriggerAttack)

	c.AttackStarted.Emit(AttackEvent{
		Damage: c.cfg.WeaponDamage,
		Origin: c.body.Position(),
		Facing: c.body.Rotation().Forward(),
	})

	c.isAttacking = true
	c.tasks.Start(task.After(config.Seconds(c.cfg.AttackMoveDelay), c.endAttack))
}

func (c *Controller) endAttack() {
	c.canRotate = true
	c.canMove = true
	c.isAttacking = false
}
