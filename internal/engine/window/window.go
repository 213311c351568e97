// Package window handles the SDL2 window and 2D renderer.
package window

import (
	"fmt"
	"image"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/vanguard/internal/config"
	"github.com/Faultbox/vanguard/internal/logger"
)

func init() {
	// SDL video calls must be made from the main thread
	runtime.LockOSThread()
}

// Window wraps an SDL2 window and its renderer.
type Window struct {
	config   config.WindowConfig
	window   *sdl.Window
	renderer *sdl.Renderer
	locked   bool
	log      *zap.Logger
}

// New creates a new window.
func New(cfg config.WindowConfig) (*Window, error) {
	w := &Window{
		config: cfg,
		log:    logger.Named("window"),
	}

	w.log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	var err error
	w.window, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.renderer, err = sdl.CreateRenderer(w.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		w.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	w.log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
	)

	return w, nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	w.log.Info("closing window")

	if w.locked {
		w.SetCursorLocked(false)
	}
	if w.renderer != nil {
		if err := w.renderer.Destroy(); err != nil {
			w.log.Warn("destroy renderer", zap.Error(err))
		}
	}
	if w.window != nil {
		if err := w.window.Destroy(); err != nil {
			w.log.Warn("destroy window", zap.Error(err))
		}
	}

	sdl.Quit()
}

// SetCursorLocked hides the cursor and reports relative mouse motion.
func (w *Window) SetCursorLocked(locked bool) {
	sdl.SetRelativeMouseMode(locked)
	w.locked = locked
	w.log.Debug("cursor lock", zap.Bool("locked", locked))
}

// CursorLocked reports whether relative mouse mode is on.
func (w *Window) CursorLocked() bool {
	return w.locked
}

// GetSize returns the current window size.
func (w *Window) GetSize() (int, int) {
	width, height := w.window.GetSize()
	return int(width), int(height)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.window.SetTitle(title)
}

// Color is an RGBA draw color.
type Color struct {
	R, G, B, A uint8
}

// Clear fills the frame with c.
func (w *Window) Clear(c Color) {
	w.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	w.renderer.Clear()
}

// FillRect draws a filled rectangle in pixels.
func (w *Window) FillRect(x, y, width, height int32, c Color) {
	w.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	w.renderer.FillRect(&sdl.Rect{X: x, Y: y, W: width, H: height})
}

// DrawLine draws a line in pixels.
func (w *Window) DrawLine(x1, y1, x2, y2 int32, c Color) {
	w.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	w.renderer.DrawLine(x1, y1, x2, y2)
}

// Present shows the frame.
func (w *Window) Present() {
	w.renderer.Present()
}

// Snapshot reads back the current frame. Call before Present.
func (w *Window) Snapshot() (*image.RGBA, error) {
	width, height, err := w.renderer.GetOutputSize()
	if err != nil {
		return nil, fmt.Errorf("output size: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	// ABGR8888 is R, G, B, A in memory on little-endian hosts.
	err = w.renderer.ReadPixels(nil, uint32(sdl.PIXELFORMAT_ABGR8888), unsafe.Pointer(&img.Pix[0]), img.Stride)
	if err != nil {
		return nil, fmt.Errorf("SDL_RenderReadPixels failed: %w", err)
	}
	return img, nil
}
