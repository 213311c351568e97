package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/vanguard/pkg/math"
)

// SDLSource converts SDL2 events into actions and dispatches them.
//
// Bindings: WASD move, mouse motion look, Space jump, Left Shift sprint,
// left mouse attack, middle mouse or Tab lock-on, E interact. In the UI map,
// arrows navigate, Return submits and Escape cancels. F12 takes a screenshot
// in either map.
type SDLSource struct {
	router *Router
	move   Composite
	nav    Composite

	// Resized is called with the new window size.
	Resized func(width, height int)
	// Screenshot is called when F12 is pressed, whatever map is active.
	Screenshot func()
}

// NewSDLSource creates a source that dispatches into router.
func NewSDLSource(router *Router) *SDLSource {
	s := &SDLSource{
		router: router,
		move:   Composite{Action: ActionMove},
		nav:    Composite{Action: ActionNavigate},
	}
	// The router cancels in-progress actions on a switch; forget held keys.
	router.MapChanged.Connect(func(MapName) {
		s.move.Reset()
		s.nav.Reset()
	})
	return s
}

var moveKeys = map[sdl.Scancode]Direction{
	sdl.SCANCODE_W: DirUp,
	sdl.SCANCODE_S: DirDown,
	sdl.SCANCODE_A: DirLeft,
	sdl.SCANCODE_D: DirRight,
}

var navKeys = map[sdl.Scancode]Direction{
	sdl.SCANCODE_UP:    DirUp,
	sdl.SCANCODE_DOWN:  DirDown,
	sdl.SCANCODE_LEFT:  DirLeft,
	sdl.SCANCODE_RIGHT: DirRight,
}

var buttonKeys = map[sdl.Scancode]Action{
	sdl.SCANCODE_SPACE:  ActionJump,
	sdl.SCANCODE_LSHIFT: ActionSprint,
	sdl.SCANCODE_TAB:    ActionLockOn,
	sdl.SCANCODE_E:      ActionInteract,
	sdl.SCANCODE_RETURN: ActionSubmit,
	sdl.SCANCODE_ESCAPE: ActionCancel,
}

var mouseButtons = map[uint8]Action{
	sdl.BUTTON_LEFT:   ActionAttack,
	sdl.BUTTON_MIDDLE: ActionLockOn,
}

// Poll drains pending SDL events. It returns true if the game should quit.
func (s *SDLSource) Poll() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED && s.Resized != nil {
				s.Resized(int(e.Data1), int(e.Data2))
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			if e.Keysym.Scancode == sdl.SCANCODE_F12 {
				if e.Type == sdl.KEYDOWN && s.Screenshot != nil {
					s.Screenshot()
				}
				continue
			}
			s.key(e.Keysym.Scancode, e.Type == sdl.KEYDOWN)

		case *sdl.MouseMotionEvent:
			// SDL reports Y growing downward; actions use Y up.
			s.router.Dispatch(Event{
				Action: ActionLook,
				Phase:  PhasePerformed,
				Value:  math.Vec2{X: float32(e.XRel), Y: -float32(e.YRel)},
			})

		case *sdl.MouseButtonEvent:
			if a, ok := mouseButtons[e.Button]; ok {
				s.button(a, e.Type == sdl.MOUSEBUTTONDOWN)
			}
		}
	}
	return false
}

func (s *SDLSource) key(code sdl.Scancode, down bool) {
	if d, ok := moveKeys[code]; ok {
		s.dispatchAll(s.move.Set(d, down))
		return
	}
	if d, ok := navKeys[code]; ok {
		s.dispatchAll(s.nav.Set(d, down))
		return
	}
	if a, ok := buttonKeys[code]; ok {
		s.button(a, down)
	}
}

func (s *SDLSource) button(a Action, down bool) {
	phase := PhaseCanceled
	if down {
		phase = PhaseStarted
	}
	s.router.Dispatch(Event{Action: a, Phase: phase})
}

func (s *SDLSource) dispatchAll(events []Event) {
	for _, e := range events {
		s.router.Dispatch(e)
	}
}
