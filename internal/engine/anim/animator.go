// Package anim provides a parameter-driven animator.
//
// The animator holds named float, bool and trigger parameters and a single
// active state. A trigger that names a clip enters that state for the clip's
// length; afterwards the animator returns to the base locomotion state,
// which is driven only by the float parameters.
package anim

import (
	"go.uber.org/zap"

	"github.com/Faultbox/vanguard/internal/engine/signal"
	"github.com/Faultbox/vanguard/internal/logger"
)

// StateLocomotion is the base state.
const StateLocomotion = "Locomotion"

// Clip names used by the player.
const (
	ClipAttack  = "Attack"
	ClipJump    = "Jump"
	ClipTakeHit = "Take Hit"
)

// DefaultClips returns clip lengths in seconds.
func DefaultClips() map[string]float32 {
	return map[string]float32{
		ClipAttack:  1.0,
		ClipJump:    0.6,
		ClipTakeHit: 0.4,
	}
}

// Animator is a minimal animation state machine.
type Animator struct {
	floats map[string]float32
	bools  map[string]bool
	clips  map[string]float32

	state     string
	remaining float32

	// Triggered fires with the trigger name on every SetTrigger.
	Triggered signal.Signal[string]

	log *zap.Logger
}

// New creates an animator with the given clip lengths.
func New(clips map[string]float32) *Animator {
	return &Animator{
		floats: make(map[string]float32),
		bools:  make(map[string]bool),
		clips:  clips,
		state:  StateLocomotion,
		log:    logger.Named("anim"),
	}
}

// SetFloat sets a float parameter.
func (a *Animator) SetFloat(name string, v float32) {
	a.floats[name] = v
}

// Float returns a float parameter, zero if unset.
func (a *Animator) Float(name string) float32 {
	return a.floats[name]
}

// SetBool sets a bool parameter.
func (a *Animator) SetBool(name string, v bool) {
	a.bools[name] = v
}

// Bool returns a bool parameter, false if unset.
func (a *Animator) Bool(name string) bool {
	return a.bools[name]
}

// SetTrigger fires a trigger. Triggers naming a clip restart that state.
func (a *Animator) SetTrigger(name string) {
	if d, ok := a.clips[name]; ok {
		a.state = name
		a.remaining = d
	}
	a.log.Debug("trigger", zap.String("name", name), zap.String("state", a.state))
	a.Triggered.Emit(name)
}

// IsPlaying reports whether the named state is active.
func (a *Animator) IsPlaying(name string) bool {
	return a.state == name
}

// State returns the active state name.
func (a *Animator) State() string {
	return a.state
}

// Update advances the active clip.
func (a *Animator) Update(dt float32) {
	if a.state == StateLocomotion {
		return
	}
	a.remaining -= dt
	if a.remaining <= 0 {
		a.state = StateLocomotion
		a.remaining = 0
	}
}
