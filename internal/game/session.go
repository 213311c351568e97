package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/vanguard/internal/config"
	"github.com/Faultbox/vanguard/internal/engine/anim"
	"github.com/Faultbox/vanguard/internal/engine/camera"
	"github.com/Faultbox/vanguard/internal/engine/input"
	"github.com/Faultbox/vanguard/internal/engine/physics"
	"github.com/Faultbox/vanguard/internal/engine/signal"
	"github.com/Faultbox/vanguard/internal/game/combat"
	"github.com/Faultbox/vanguard/internal/game/health"
	"github.com/Faultbox/vanguard/internal/game/player"
	"github.com/Faultbox/vanguard/internal/game/ui"
	"github.com/Faultbox/vanguard/internal/game/world"
	"github.com/Faultbox/vanguard/internal/logger"
)

// Session is the simulation without a window: input routing, physics,
// the arena and the player. The window drives it with Advance.
type Session struct {
	cfg *config.Config

	Router   *input.Router
	Switcher *input.Switcher
	Physics  *physics.World
	Rig      *camera.Rig
	Anim     *anim.Animator
	Canvas   *ui.Canvas
	Arena    *world.Arena
	Player   *player.Controller
	Health   *health.PlayerHealth
	Melee    *combat.MeleeResolver

	accumulator time.Duration
	ticks       uint64
	conns       signal.Group
	log         *zap.Logger
}

// NewSession builds the arena and binds the player to a fresh router.
func NewSession(cfg *config.Config) *Session {
	s := &Session{
		cfg:    cfg,
		Router: input.NewRouter(),
		Canvas: ui.NewCanvas(),
		Anim:   anim.New(anim.DefaultClips()),
		log:    logger.Named("game"),
	}

	s.Physics = physics.NewWorld(cfg.Physics)
	s.Rig = camera.NewRig(cfg.Camera, cfg.Player.PitchMin, cfg.Player.PitchMax)
	s.Arena = world.Build(cfg, s.Physics, s.Canvas, s.Rig)

	s.Player = player.New(cfg.Player, s.Arena.Body, s.Physics, s.Anim, s.Rig)
	s.Player.Bind(s.Router)
	s.Health = health.NewPlayerHealth(cfg.Player.MaxHealth, s.Anim)
	s.Melee = combat.NewMeleeResolver(s.Physics, cfg.Player, &s.Player.AttackStarted)
	s.Switcher = input.NewSwitcher(s.Router, &s.Arena.Tent.OpenUI)

	s.conns.Add(s.Router.On(input.MapPlayer, input.ActionInteract, func(e input.Event) {
		if e.Phase == input.PhaseStarted {
			s.Arena.Tent.Interact(s.Arena.Body.Position())
		}
	}))
	s.conns.Add(s.Health.Died().Connect(func(struct{}) {
		s.log.Info("player died")
		s.Switcher.SwitchToUIMap()
	}))

	return s
}

// Advance runs as many fixed ticks as frame covers, then one frame tick.
// Frames longer than the configured maximum are clamped.
func (s *Session) Advance(frame time.Duration) {
	sim := s.cfg.Simulation
	if sim.MaxFrameTime > 0 && frame > sim.MaxFrameTime {
		s.log.Debug("frame clamped", zap.Duration("frame", frame))
		frame = sim.MaxFrameTime
	}

	s.accumulator += frame
	step := config.Seconds(sim.FixedStep)
	for s.accumulator >= sim.FixedStep {
		s.Player.FixedUpdate(step)
		s.Physics.Step(step)
		s.accumulator -= sim.FixedStep
		s.ticks++
	}

	dt := config.Seconds(frame)
	s.Player.Update(dt)
	s.Anim.Update(dt)
	s.Canvas.Update()
}

// Ticks returns how many fixed ticks have run.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Apply pushes reloaded tuning into the running systems. The arena layout
// and the simulation rates are read once at start.
func (s *Session) Apply(cfg *config.Config) {
	s.cfg.Player = cfg.Player
	s.cfg.Camera = cfg.Camera
	s.cfg.Physics = cfg.Physics
	s.cfg.Logging.Level = cfg.Logging.Level

	logger.SetLevel(cfg.Logging.Level)
	s.Player.Configure(cfg.Player)
	s.Rig.Configure(cfg.Camera, cfg.Player.PitchMin, cfg.Player.PitchMax)
	s.Physics.Configure(cfg.Physics)
	s.Melee.Configure(cfg.Player)

	s.log.Info("config applied",
		zap.Float32("walk_speed", cfg.Player.WalkSpeed),
		zap.Float32("sprint_speed", cfg.Player.SprintSpeed),
		zap.String("sprint_mode", cfg.Player.SprintMode))
}

// Close releases every subscription the session made.
func (s *Session) Close() {
	s.conns.Disconnect()
	s.Switcher.Close()
	s.Melee.Close()
	s.Player.Close()
	s.Arena.Close()
}
