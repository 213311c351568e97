package health

import (
	"go.uber.org/zap"

	"github.com/Faultbox/vanguard/internal/logger"
)

// TakeHitTrigger is the animator trigger fired on every hit.
const TakeHitTrigger = "Take Hit"

// Triggerer fires animator triggers.
type Triggerer interface {
	SetTrigger(name string)
}

// PlayerHealth is the player's health. Every hit plays the hit reaction and
// subtracts, even past zero; Died fires once.
type PlayerHealth struct {
	pool
	anim Triggerer
	log  *zap.Logger
}

// NewPlayerHealth creates full health.
func NewPlayerHealth(max int, anim Triggerer) *PlayerHealth {
	return &PlayerHealth{
		pool: newPool(max),
		anim: anim,
		log:  logger.Named("health"),
	}
}

// TakeDamage plays the hit reaction and subtracts amount.
func (h *PlayerHealth) TakeDamage(amount int) {
	wasDead := h.dead
	h.anim.SetTrigger(TakeHitTrigger)
	h.subtract(amount)
	h.log.Debug("player damaged", zap.Int("amount", amount), zap.Int("health", h.current))
	if h.dead && !wasDead {
		h.log.Info("player died")
	}
}
