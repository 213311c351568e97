package input

import (
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/vanguard/internal/engine/signal"
	"github.com/Faultbox/vanguard/internal/logger"
)

// Router dispatches events to per-action listeners of the enabled map.
type Router struct {
	maps   map[MapName]map[Action]*signal.Signal[Event]
	active MapName

	// actions of the active map between Started and Canceled
	inProgress map[Action]bool

	// MapChanged fires with the new map name after a switch.
	MapChanged signal.Signal[MapName]
}

// NewRouter creates a router with the default maps and Player enabled.
func NewRouter() *Router {
	return NewRouterWithMaps(DefaultMaps(), MapPlayer)
}

// NewRouterWithMaps creates a router with custom maps.
func NewRouterWithMaps(maps map[MapName][]Action, active MapName) *Router {
	r := &Router{
		maps:       make(map[MapName]map[Action]*signal.Signal[Event], len(maps)),
		active:     active,
		inProgress: make(map[Action]bool),
	}
	for name, actions := range maps {
		m := make(map[Action]*signal.Signal[Event], len(actions))
		for _, a := range actions {
			m[a] = &signal.Signal[Event]{}
		}
		r.maps[name] = m
	}
	return r
}

// On subscribes fn to an action of a map. It returns nil if the map does
// not define the action.
func (r *Router) On(m MapName, a Action, fn func(Event)) *signal.Conn {
	s, ok := r.maps[m][a]
	if !ok {
		logger.Log.Warn("subscribe to unknown action",
			zap.String("map", string(m)),
			zap.String("action", string(a)))
		return nil
	}
	return s.Connect(fn)
}

// Dispatch delivers e if its action belongs to the enabled map.
// It reports whether the event was delivered.
func (r *Router) Dispatch(e Event) bool {
	s, ok := r.maps[r.active][e.Action]
	if !ok {
		return false
	}
	switch e.Phase {
	case PhaseStarted:
		r.inProgress[e.Action] = true
	case PhaseCanceled:
		delete(r.inProgress, e.Action)
	}
	s.Emit(e)
	return true
}

// Enable makes m the current map. Unknown maps are ignored.
// Actions of the previous map that were started and not yet released receive
// a Canceled event before the switch.
func (r *Router) Enable(m MapName) {
	if _, ok := r.maps[m]; !ok {
		logger.Log.Warn("enable unknown action map", zap.String("map", string(m)))
		return
	}
	if r.active == m {
		return
	}
	r.cancelInProgress()
	r.active = m
	logger.Log.Debug("action map switched", zap.String("map", string(m)))
	r.MapChanged.Emit(m)
}

// Active returns the enabled map.
func (r *Router) Active() MapName {
	return r.active
}

func (r *Router) cancelInProgress() {
	m := r.maps[r.active]
	for _, a := range sortedActions(r.inProgress) {
		delete(r.inProgress, a)
		m[a].Emit(Event{Action: a, Phase: PhaseCanceled})
	}
}

func sortedActions(set map[Action]bool) []Action {
	actions := make([]Action, 0, len(set))
	for a := range set {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	return actions
}
