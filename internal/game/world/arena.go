// Package world assembles the playable arena.
package world

import (
	"go.uber.org/zap"

	"github.com/Faultbox/vanguard/internal/config"
	"github.com/Faultbox/vanguard/internal/engine/physics"
	"github.com/Faultbox/vanguard/internal/engine/signal"
	"github.com/Faultbox/vanguard/internal/game/entity"
	"github.com/Faultbox/vanguard/internal/game/health"
	"github.com/Faultbox/vanguard/internal/game/ui"
	"github.com/Faultbox/vanguard/internal/logger"
)

// Enemy is a damageable lock-on target with a floating health bar.
type Enemy struct {
	Entity *entity.Entity
	Health *health.EnemyHealth
	Bar    *ui.HealthBar
}

// Arena owns every entity in the scene.
type Arena struct {
	Entities *entity.Manager
	Player   *entity.Entity
	Body     *physics.Body
	Enemies  []*Enemy
	Tent     *Tent

	physics *physics.World
	conns   signal.Group
	log     *zap.Logger
}

// Build spawns the arena described by cfg into phys. Health bars attach to
// canvas and face viewer.
func Build(cfg *config.Config, phys *physics.World, canvas *ui.Canvas, viewer ui.Viewer) *Arena {
	a := &Arena{
		Entities: entity.NewManager(),
		physics:  phys,
		log:      logger.Named("world"),
	}

	a.Player = a.Entities.Spawn(&entity.Entity{
		Type:      entity.TypePlayer,
		Transform: entity.NewTransform("player", cfg.Arena.Spawn),
		Layer:     entity.LayerPlayer,
		Radius:    cfg.Player.Radius,
		Height:    cfg.Player.Height,
	})
	a.Body = phys.AddBody(a.Player, cfg.Player.Mass)

	for _, ec := range cfg.Arena.Enemies {
		a.spawnEnemy(ec, cfg.Arena, canvas, viewer)
	}

	for i, oc := range cfg.Arena.Obstacles {
		e := a.Entities.Spawn(&entity.Entity{
			Type:      entity.TypeObstacle,
			Transform: entity.NewTransform(obstacleName(i), oc.Position),
			Layer:     entity.LayerObstacle | entity.LayerGround,
			Radius:    oc.Radius,
			Height:    oc.Height,
		})
		phys.AddStatic(e)
	}

	tent := a.Entities.Spawn(&entity.Entity{
		Type:      entity.TypeProp,
		Transform: entity.NewTransform("tent", cfg.Arena.Tent.Position),
		Layer:     entity.LayerObstacle | entity.LayerGround,
		Radius:    cfg.Arena.Tent.Radius,
		Height:    cfg.Arena.Tent.Height,
	})
	phys.AddStatic(tent)
	a.Tent = &Tent{Entity: tent}

	a.log.Info("arena built",
		zap.Int("entities", a.Entities.Count()),
		zap.Int("enemies", len(a.Enemies)))
	return a
}

func (a *Arena) spawnEnemy(ec config.EnemyConfig, cfg config.ArenaConfig, canvas *ui.Canvas, viewer ui.Viewer) {
	hp := health.NewEnemyHealth(ec.Name, ec.MaxHealth)
	e := a.Entities.Spawn(&entity.Entity{
		Type:       entity.TypeMonster,
		Transform:  entity.NewTransform(ec.Name, ec.Position),
		Layer:      entity.LayerTarget,
		Radius:     ec.Radius,
		Height:     ec.Height,
		Damageable: hp,
	})
	a.physics.AddStatic(e)

	enemy := &Enemy{
		Entity: e,
		Health: hp,
		Bar:    ui.NewHealthBar(hp, e.Transform, viewer, canvas, cfg.HealthBarOffset),
	}
	a.Enemies = append(a.Enemies, enemy)

	a.conns.Add(hp.Died().Connect(func(struct{}) { a.despawn(enemy) }))
}

// despawn removes a dead enemy. The physics world drops its shape on the
// next step and lock-on releases it on the next frame.
func (a *Arena) despawn(enemy *Enemy) {
	a.log.Info("enemy despawned", zap.String("name", enemy.Entity.Name()))
	a.Entities.Remove(enemy.Entity.ID)
	for i, e := range a.Enemies {
		if e == enemy {
			a.Enemies = append(a.Enemies[:i], a.Enemies[i+1:]...)
			break
		}
	}
}

// Close releases the arena's subscriptions and health bars.
func (a *Arena) Close() {
	a.conns.Disconnect()
	for _, e := range a.Enemies {
		e.Bar.Close()
	}
}

func obstacleName(i int) string {
	return "obstacle-" + string(rune('a'+i%26))
}
