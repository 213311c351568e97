// Package config handles game configuration loading and management.
package config

import (
	"time"

	"github.com/Faultbox/vanguard/pkg/math"
)

// Config holds all game settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Simulation SimulationConfig `yaml:"simulation"`
	Player     PlayerConfig     `yaml:"player"`
	Camera     CameraConfig     `yaml:"camera"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Arena      ArenaConfig      `yaml:"arena"`
	Audio      AudioConfig      `yaml:"audio"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	LockCursor bool   `yaml:"lock_cursor"` // Relative mouse mode while playing

	ScreenshotDir string `yaml:"screenshot_dir"`
}

// SimulationConfig holds tick rates.
type SimulationConfig struct {
	FixedStep    time.Duration `yaml:"fixed_step"`     // Physics-synchronized tick
	MaxFrameTime time.Duration `yaml:"max_frame_time"` // Clamp for long frames
	HotReload    bool          `yaml:"hot_reload"`     // Watch the config file for tuning changes
}

// Sprint modes.
const (
	SprintToggle = "toggle"
	SprintHold   = "hold"
)

// Rotation blend policies.
const (
	RotationOverlap    = "overlap"
	RotationGeneration = "generation"
)

// PlayerConfig holds locomotion, combat and targeting tuning.
type PlayerConfig struct {
	WalkSpeed   float32 `yaml:"walk_speed"`
	SprintSpeed float32 `yaml:"sprint_speed"`
	SprintMode  string  `yaml:"sprint_mode"` // toggle or hold

	SprintBlend         time.Duration `yaml:"sprint_blend"`
	RotationBlend       time.Duration `yaml:"rotation_blend"`
	RotationBlendPolicy string        `yaml:"rotation_blend_policy"` // overlap or generation

	LookSensitivity    float32 `yaml:"look_sensitivity"`
	PitchMin           float32 `yaml:"pitch_min"` // Degrees
	PitchMax           float32 `yaml:"pitch_max"` // Degrees
	ResyncLookOnUnlock bool    `yaml:"resync_look_on_unlock"`

	LockOnRadius   float32 `yaml:"lock_on_radius"`
	LockOnDistance float32 `yaml:"lock_on_distance"`

	JumpForce          float32       `yaml:"jump_force"`
	JumpCooldown       time.Duration `yaml:"jump_cooldown"`
	GroundCastDistance float32       `yaml:"ground_cast_distance"`

	AttackMoveDelay time.Duration `yaml:"attack_move_delay"`
	WeaponDamage    int           `yaml:"weapon_damage"`
	AttackReach     float32       `yaml:"attack_reach"`
	AttackRadius    float32       `yaml:"attack_radius"`

	MaxHealth int     `yaml:"max_health"`
	Mass      float32 `yaml:"mass"`
	Radius    float32 `yaml:"radius"`
	Height    float32 `yaml:"height"` // Body cylinder height; the body origin is its center
}

// CameraConfig holds the camera rig layout.
type CameraConfig struct {
	PivotOffset math.Vec3 `yaml:"pivot_offset"` // Boom pivot relative to the player
	ArmLength   float32   `yaml:"arm_length"`   // Camera distance behind the pivot
	StartYaw    float32   `yaml:"start_yaw"`
	StartPitch  float32   `yaml:"start_pitch"`
}

// PhysicsConfig holds the reference physics world settings.
type PhysicsConfig struct {
	Gravity      float32 `yaml:"gravity"`
	GroundHeight float32 `yaml:"ground_height"`
	Damping      float32 `yaml:"damping"` // Horizontal velocity decay per second while grounded
}

// ArenaConfig describes the demo scene.
type ArenaConfig struct {
	Spawn           math.Vec3        `yaml:"spawn"`
	HealthBarOffset math.Vec3        `yaml:"health_bar_offset"`
	Enemies         []EnemyConfig    `yaml:"enemies"`
	Obstacles       []ObstacleConfig `yaml:"obstacles"`
	Tent            ObstacleConfig   `yaml:"tent"`
}

// EnemyConfig places a damageable lock-on target.
type EnemyConfig struct {
	Name      string    `yaml:"name"`
	Position  math.Vec3 `yaml:"position"`
	MaxHealth int       `yaml:"max_health"`
	Radius    float32   `yaml:"radius"`
	Height    float32   `yaml:"height"`
}

// ObstacleConfig places a static cylinder.
type ObstacleConfig struct {
	Position math.Vec3 `yaml:"position"`
	Radius   float32   `yaml:"radius"`
	Height   float32   `yaml:"height"`
}

// AudioConfig holds sound cue settings.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0 to 1
	SFXVolume    float64 `yaml:"sfx_volume"`    // 0 to 1
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Vanguard",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			LockCursor: true,

			ScreenshotDir: "screenshots",
		},
		Simulation: SimulationConfig{
			FixedStep:    20 * time.Millisecond,
			MaxFrameTime: 250 * time.Millisecond,
			HotReload:    false,
		},
		Player: PlayerConfig{
			WalkSpeed:           2,
			SprintSpeed:         5,
			SprintMode:          SprintToggle,
			SprintBlend:         300 * time.Millisecond,
			RotationBlend:       200 * time.Millisecond,
			RotationBlendPolicy: RotationOverlap,
			LookSensitivity:     0.1,
			PitchMin:            -85,
			PitchMax:            85,
			LockOnRadius:        1.5,
			LockOnDistance:      20,
			JumpForce:           5,
			JumpCooldown:        200 * time.Millisecond,
			GroundCastDistance:  1.1,
			AttackMoveDelay:     800 * time.Millisecond,
			WeaponDamage:        10,
			AttackReach:         1.8,
			AttackRadius:        0.8,
			MaxHealth:           100,
			Mass:                1,
			Radius:              0.4,
			Height:              2,
		},
		Camera: CameraConfig{
			PivotOffset: math.Vec3{Y: 1.6},
			ArmLength:   4,
			StartYaw:    0,
			StartPitch:  15,
		},
		Physics: PhysicsConfig{
			Gravity:      9.81,
			GroundHeight: 0,
			Damping:      8,
		},
		Arena: ArenaConfig{
			Spawn:           math.Vec3{Y: 1},
			HealthBarOffset: math.Vec3{Y: 2.2},
			Enemies: []EnemyConfig{
				{Name: "slime", Position: math.Vec3{X: -2, Y: 0, Z: 8}, MaxHealth: 30, Radius: 0.5, Height: 1},
				{Name: "skeleton", Position: math.Vec3{X: 3, Y: 0, Z: 12}, MaxHealth: 60, Radius: 0.5, Height: 2},
			},
			Obstacles: []ObstacleConfig{
				{Position: math.Vec3{X: 5, Z: 4}, Radius: 1, Height: 3},
			},
			Tent: ObstacleConfig{Position: math.Vec3{X: -6, Z: -3}, Radius: 2, Height: 2.5},
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.8,
			SFXVolume:    1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Seconds converts a duration to the float seconds used by the simulation.
func Seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}
