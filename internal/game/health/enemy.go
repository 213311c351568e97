package health

import (
	"go.uber.org/zap"

	"github.com/Faultbox/vanguard/internal/logger"
)

// EnemyHealth is the health of a damageable target. Health never drops
// below zero and damage after death is ignored.
type EnemyHealth struct {
	pool
	name string
	log  *zap.Logger
}

// NewEnemyHealth creates full health.
func NewEnemyHealth(name string, max int) *EnemyHealth {
	return &EnemyHealth{
		pool: newPool(max),
		name: name,
		log:  logger.Named("health"),
	}
}

// TakeDamage subtracts amount.
func (h *EnemyHealth) TakeDamage(amount int) {
	if h.dead || amount <= 0 {
		return
	}
	if amount > h.current {
		amount = h.current
	}
	h.subtract(amount)
	h.log.Debug("enemy damaged",
		zap.String("name", h.name),
		zap.Int("amount", amount),
		zap.Int("health", h.current))
	if h.dead {
		h.log.Info("enemy died", zap.String("name", h.name))
	}
}
