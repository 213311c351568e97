package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	return LoadFile(ResolvePath())
}

// LoadFile loads defaults, merges the file at path (if non-empty), applies
// CLI flags and validates the result.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ResolvePath returns the explicit --config path, or the first config file
// found in the standard locations, or "" when there is none.
func ResolvePath() string {
	if p := ConfigPath(); p != "" {
		return p
	}
	return findConfigFile()
}

// Validate checks values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Simulation.FixedStep <= 0 {
		errs = append(errs, fmt.Errorf("simulation.fixed_step must be positive, got %s", c.Simulation.FixedStep))
	}
	switch c.Player.SprintMode {
	case SprintToggle, SprintHold:
	default:
		errs = append(errs, fmt.Errorf("player.sprint_mode %q is not %q or %q", c.Player.SprintMode, SprintToggle, SprintHold))
	}
	switch c.Player.RotationBlendPolicy {
	case RotationOverlap, RotationGeneration:
	default:
		errs = append(errs, fmt.Errorf("player.rotation_blend_policy %q is not %q or %q",
			c.Player.RotationBlendPolicy, RotationOverlap, RotationGeneration))
	}
	if c.Player.PitchMin > c.Player.PitchMax {
		errs = append(errs, fmt.Errorf("player.pitch_min %v exceeds pitch_max %v", c.Player.PitchMin, c.Player.PitchMax))
	}
	if c.Player.Mass <= 0 {
		errs = append(errs, fmt.Errorf("player.mass must be positive, got %v", c.Player.Mass))
	}
	if c.Player.Height <= 0 || c.Player.Radius <= 0 {
		errs = append(errs, fmt.Errorf("player body needs positive height and radius, got %v x %v", c.Player.Height, c.Player.Radius))
	}
	if v := c.Audio.MasterVolume; v < 0 || v > 1 {
		errs = append(errs, fmt.Errorf("audio.master_volume %v is outside [0, 1]", v))
	}
	if v := c.Audio.SFXVolume; v < 0 || v > 1 {
		errs = append(errs, fmt.Errorf("audio.sfx_volume %v is outside [0, 1]", v))
	}
	return errors.Join(errs...)
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Vanguard")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Vanguard")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "vanguard")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "vanguard")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
