package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagSprintMode = flag.String("sprint-mode", "", "Sprint input mode: toggle or hold")
	flagRotation   = flag.String("rotation-policy", "", "Rotation blend policy: overlap or generation")
	flagHotReload  = flag.Bool("hot-reload", false, "Reload tuning when the config file changes")
	flagMute       = flag.Bool("mute", false, "Disable sound cues")
	flagWrite      = flag.String("write-config", "", "Write the effective config to a path (\"user\" for the config directory) and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the --write-config target, if any.
func WriteConfigPath() string {
	return *flagWrite
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagSprintMode != "" {
		cfg.Player.SprintMode = *flagSprintMode
	}
	if *flagRotation != "" {
		cfg.Player.RotationBlendPolicy = *flagRotation
	}
	if *flagMute {
		cfg.Audio.Enabled = false
	}
	if *flagHotReload {
		cfg.Simulation.HotReload = true
	}
}
