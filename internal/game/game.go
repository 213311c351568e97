// Package game implements the main game loop.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/vanguard/internal/config"
	"github.com/Faultbox/vanguard/internal/engine/audio"
	"github.com/Faultbox/vanguard/internal/engine/debug"
	"github.com/Faultbox/vanguard/internal/engine/input"
	"github.com/Faultbox/vanguard/internal/engine/signal"
	"github.com/Faultbox/vanguard/internal/engine/window"
	"github.com/Faultbox/vanguard/internal/logger"
)

// Game is the main game instance.
type Game struct {
	config  *config.Config
	running bool
	window  *window.Window
	source  *input.SDLSource
	session *Session
	audio   *audio.Manager
	cues    signal.Group
	watcher *config.Watcher
	view    topDown
	shots   *debug.Screenshots
	capture bool
	log     *zap.Logger
}

// New creates the window and the session. When hot reload is enabled and
// cfgPath is set, the file is watched for tuning changes.
func New(cfg *config.Config, cfgPath string) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Named("game"),
	}
	g.log.Info("initializing game",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	var err error
	g.window, err = window.New(cfg.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g.session = NewSession(cfg)
	g.source = input.NewSDLSource(g.session.Router)
	g.view = newTopDown(cfg.Window.Width, cfg.Window.Height)
	g.source.Resized = func(width, height int) {
		g.view.resize(width, height)
	}
	g.shots = debug.NewScreenshots(cfg.Window.ScreenshotDir, "vanguard")
	g.source.Screenshot = func() { g.capture = true }

	// Relative mouse only while the Player map is active.
	g.window.SetCursorLocked(cfg.Window.LockCursor)
	g.session.Router.MapChanged.Connect(func(m input.MapName) {
		g.window.SetCursorLocked(cfg.Window.LockCursor && m == input.MapPlayer)
	})

	g.audio = audio.New()
	g.configureAudio(cfg.Audio)
	if cfg.Audio.Enabled {
		if err := g.audio.Init(); err != nil {
			g.log.Warn("audio unavailable", zap.Error(err))
		}
	}
	g.cues = bindCues(g.session, cuePlayer(g.audio, g.log))

	if cfg.Simulation.HotReload && cfgPath != "" {
		g.watcher, err = config.Watch(cfgPath)
		if err != nil {
			g.log.Warn("hot reload disabled", zap.String("path", cfgPath), zap.Error(err))
		} else {
			g.log.Info("watching config", zap.String("path", cfgPath))
		}
	}

	g.log.Info("game initialized successfully")
	return g, nil
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting game loop")

	for g.running {
		now := time.Now()
		frame := now.Sub(lastTime)
		lastTime = now

		// 1. Process input
		if g.source.Poll() {
			g.running = false
			break
		}

		// 2. Apply tuning changes between frames
		g.pollWatcher()

		// 3. Update game state
		g.session.Advance(frame)

		// 4. Render
		g.render()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.window.SetTitle(fmt.Sprintf("%s | %d fps | %s", g.config.Window.Title, frameCount, g.session.Router.Active()))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	g.log.Info("game loop ended")
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-g.watcher.Updates:
		if ok {
			g.session.Apply(cfg)
			g.configureAudio(cfg.Audio)
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warn("config reload failed", zap.Error(err))
		}
	default:
	}
}

// Close releases all game resources.
func (g *Game) Close() {
	g.log.Info("shutting down game")

	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.Warn("close watcher", zap.Error(err))
		}
	}
	g.cues.Disconnect()
	if g.audio != nil {
		g.audio.Close()
	}
	if g.session != nil {
		g.session.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

func (g *Game) configureAudio(cfg config.AudioConfig) {
	g.audio.SetMasterVolume(cfg.MasterVolume)
	g.audio.SetSFXVolume(cfg.SFXVolume)
}

func (g *Game) render() {
	g.window.Clear(colorBackground)
	g.view.draw(g.window, g.session)
	if g.capture {
		g.capture = false
		g.screenshot()
	}
	g.window.Present()
}

func (g *Game) screenshot() {
	img, err := g.window.Snapshot()
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	path, err := g.shots.Save(img)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}
