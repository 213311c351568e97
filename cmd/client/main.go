// Package main is the entry point for the Vanguard client.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/vanguard/internal/config"
	"github.com/Faultbox/vanguard/internal/game"
	"github.com/Faultbox/vanguard/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfgPath := config.ResolvePath()
	cfg, err := config.LoadFile(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if out := config.WriteConfigPath(); out != "" {
		os.Exit(writeConfig(cfg, out))
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Vanguard ===", zap.String("config", cfgPath))
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Create and run game
	g, err := game.New(cfg, cfgPath)
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("game error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("game closed normally")
}

func writeConfig(cfg *config.Config, out string) int {
	var err error
	if out == "user" {
		out, err = cfg.Save()
	} else {
		err = cfg.SaveTo(out)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Write config: %v\n", err)
		return 1
	}
	fmt.Println("wrote", out)
	return 0
}
