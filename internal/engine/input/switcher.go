package input

import (
	"github.com/Faultbox/vanguard/internal/engine/signal"
)

// Switcher moves the router between the Player and UI maps.
// It starts on the Player map, switches to UI when openUI fires and back to
// Player on a UI Cancel.
type Switcher struct {
	router *Router
	conns  signal.Group
}

// NewSwitcher creates a switcher. openUI may be nil when the scene has no
// interactable that opens UI.
func NewSwitcher(router *Router, openUI *signal.Signal[struct{}]) *Switcher {
	s := &Switcher{router: router}
	s.SwitchToPlayerMap()

	if openUI != nil {
		s.conns.Add(openUI.Connect(func(struct{}) { s.SwitchToUIMap() }))
	}
	s.conns.Add(router.On(MapUI, ActionCancel, func(e Event) {
		if e.Phase == PhaseStarted {
			s.SwitchToPlayerMap()
		}
	}))
	return s
}

// SwitchToUIMap enables the UI map.
func (s *Switcher) SwitchToUIMap() {
	s.router.Enable(MapUI)
}

// SwitchToPlayerMap enables the Player map.
func (s *Switcher) SwitchToPlayerMap() {
	s.router.Enable(MapPlayer)
}

// Close releases the switcher's subscriptions.
func (s *Switcher) Close() {
	s.conns.Disconnect()
}
