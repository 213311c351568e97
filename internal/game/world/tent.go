package world

import (
	"go.uber.org/zap"

	"github.com/Faultbox/vanguard/internal/engine/signal"
	"github.com/Faultbox/vanguard/internal/game/entity"
	"github.com/Faultbox/vanguard/internal/logger"
	"github.com/Faultbox/vanguard/pkg/math"
)

// tentReach is how far from the tent's edge the player may interact.
const tentReach float32 = 1.5

// Tent is an interactable that opens the camp UI.
type Tent struct {
	Entity *entity.Entity

	// OpenUI fires when the player interacts in range.
	OpenUI signal.Signal[struct{}]
}

// Interact opens the UI if from is close enough. It reports whether the
// UI was opened.
func (t *Tent) Interact(from math.Vec3) bool {
	if !t.Entity.Alive() {
		return false
	}
	d := from.Flat().Distance(t.Entity.Transform.Position.Flat())
	if d > t.Entity.Radius+tentReach {
		return false
	}
	logger.Named("world").Debug("tent opened", zap.Float32("distance", d))
	t.OpenUI.Emit(struct{}{})
	return true
}
