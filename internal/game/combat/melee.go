// Package combat applies player attacks to damageable entities.
package combat

import (
	"go.uber.org/zap"

	"github.com/Faultbox/vanguard/internal/config"
	"github.com/Faultbox/vanguard/internal/engine/physics"
	"github.com/Faultbox/vanguard/internal/engine/signal"
	"github.com/Faultbox/vanguard/internal/game/entity"
	"github.com/Faultbox/vanguard/internal/game/player"
	"github.com/Faultbox/vanguard/internal/logger"
	"github.com/Faultbox/vanguard/pkg/math"
)

// Caster sweeps a sphere through the world.
type Caster interface {
	SphereCastAll(origin, dir math.Vec3, radius, maxDistance float32, mask entity.Layer) []physics.Hit
}

// MeleeResolver hits every damageable target in front of the attacker when
// an attack starts.
type MeleeResolver struct {
	world  Caster
	reach  float32
	radius float32
	conn   *signal.Conn
	log    *zap.Logger
}

// NewMeleeResolver subscribes to attacks.
func NewMeleeResolver(world Caster, cfg config.PlayerConfig, attacks *signal.Signal[player.AttackEvent]) *MeleeResolver {
	m := &MeleeResolver{
		world:  world,
		reach:  cfg.AttackReach,
		radius: cfg.AttackRadius,
		log:    logger.Named("combat"),
	}
	m.conn = attacks.Connect(func(e player.AttackEvent) { m.Resolve(e) })
	return m
}

// Configure updates reach and radius.
func (m *MeleeResolver) Configure(cfg config.PlayerConfig) {
	m.reach = cfg.AttackReach
	m.radius = cfg.AttackRadius
}

// Resolve applies e's damage to targets within reach along the attacker's
// facing and returns how many were hit.
func (m *MeleeResolver) Resolve(e player.AttackEvent) int {
	facing := e.Facing.Flat().Normalize()
	if facing.IsZero() {
		return 0
	}

	hits := m.world.SphereCastAll(e.Origin, facing, m.radius, m.reach, entity.LayerTarget)
	n := 0
	for _, hit := range hits {
		if hit.Entity == nil || hit.Entity.Damageable == nil || !hit.Entity.Alive() {
			continue
		}
		hit.Entity.Damageable.TakeDamage(e.Damage)
		n++
		m.log.Debug("melee hit",
			zap.String("target", hit.Entity.Name()),
			zap.Int("damage", e.Damage),
			zap.Float32("distance", hit.Distance))
	}
	return n
}

// Close stops listening for attacks.
func (m *MeleeResolver) Close() {
	m.conn.Disconnect()
}
