// Package input routes device input to named gameplay actions.
//
// Devices feed Events into a Router. The router owns one action map per
// context (Player, UI) and only delivers events whose action belongs to the
// currently enabled map.
package input

import (
	"github.com/Faultbox/vanguard/pkg/math"
)

// Action names a gameplay action.
type Action string

// Player map actions.
const (
	ActionMove     Action = "Move"
	ActionLook     Action = "Look"
	ActionJump     Action = "Jump"
	ActionSprint   Action = "Sprint"
	ActionAttack   Action = "Attack"
	ActionLockOn   Action = "LockOn"
	ActionInteract Action = "Interact"
)

// UI map actions.
const (
	ActionNavigate Action = "Navigate"
	ActionSubmit   Action = "Submit"
	ActionCancel   Action = "Cancel"
)

// Phase is the stage of an action.
type Phase uint8

const (
	// PhaseStarted fires when the control is actuated.
	PhaseStarted Phase = iota
	// PhasePerformed fires when the value changes while actuated.
	PhasePerformed
	// PhaseCanceled fires when the control is released.
	PhaseCanceled
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStarted:
		return "started"
	case PhasePerformed:
		return "performed"
	case PhaseCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Event is one action phase with its value.
// Buttons carry a zero Value; Move carries the stick vector; Look carries the
// pointer delta for this event.
type Event struct {
	Action Action
	Phase  Phase
	Value  math.Vec2
}

// MapName identifies an action map.
type MapName string

const (
	MapPlayer MapName = "Player"
	MapUI     MapName = "UI"
)

// DefaultMaps returns the action membership of each built-in map.
func DefaultMaps() map[MapName][]Action {
	return map[MapName][]Action{
		MapPlayer: {ActionMove, ActionLook, ActionJump, ActionSprint, ActionAttack, ActionLockOn, ActionInteract},
		MapUI:     {ActionNavigate, ActionSubmit, ActionCancel},
	}
}
