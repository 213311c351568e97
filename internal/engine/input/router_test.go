package input

import (
	"testing"

	"github.com/Faultbox/vanguard/internal/engine/signal"
	"github.com/Faultbox/vanguard/pkg/math"
)

func TestRouterDeliversOnlyActiveMap(t *testing.T) {
	r := NewRouter()

	var jumps, submits int
	// Enable also cancels the held jump, so count presses only.
	r.On(MapPlayer, ActionJump, func(e Event) {
		if e.Phase == PhaseStarted {
			jumps++
		}
	})
	r.On(MapUI, ActionSubmit, func(e Event) {
		if e.Phase == PhaseStarted {
			submits++
		}
	})

	if !r.Dispatch(Event{Action: ActionJump, Phase: PhaseStarted}) {
		t.Error("jump should be delivered on the Player map")
	}
	if r.Dispatch(Event{Action: ActionSubmit, Phase: PhaseStarted}) {
		t.Error("submit should not be delivered on the Player map")
	}

	r.Enable(MapUI)
	r.Dispatch(Event{Action: ActionJump, Phase: PhaseStarted})
	r.Dispatch(Event{Action: ActionSubmit, Phase: PhaseStarted})

	if jumps != 1 {
		t.Errorf("jumps = %d, want 1", jumps)
	}
	if submits != 1 {
		t.Errorf("submits = %d, want 1", submits)
	}
}

func TestRouterOnUnknownAction(t *testing.T) {
	r := NewRouter()
	if c := r.On(MapUI, ActionJump, func(Event) {}); c != nil {
		t.Error("subscribing to an action outside the map should return nil")
	}
}

func TestRouterEnableCancelsHeldActions(t *testing.T) {
	r := NewRouter()

	var got []Event
	r.On(MapPlayer, ActionMove, func(e Event) { got = append(got, e) })
	r.On(MapPlayer, ActionJump, func(e Event) { got = append(got, e) })

	r.Dispatch(Event{Action: ActionMove, Phase: PhaseStarted, Value: math.Vec2{Y: 1}})
	r.Dispatch(Event{Action: ActionJump, Phase: PhaseStarted})
	r.Dispatch(Event{Action: ActionJump, Phase: PhaseCanceled})
	got = nil

	r.Enable(MapUI)

	if len(got) != 1 {
		t.Fatalf("got %d events on switch, want 1: %v", len(got), got)
	}
	if got[0].Action != ActionMove || got[0].Phase != PhaseCanceled {
		t.Errorf("event = %+v, want Move canceled", got[0])
	}
}

func TestRouterMapChanged(t *testing.T) {
	r := NewRouter()

	var maps []MapName
	r.MapChanged.Connect(func(m MapName) { maps = append(maps, m) })

	r.Enable(MapPlayer) // already active
	r.Enable(MapUI)
	r.Enable("Vehicle") // unknown
	r.Enable(MapPlayer)

	if len(maps) != 2 || maps[0] != MapUI || maps[1] != MapPlayer {
		t.Errorf("MapChanged = %v, want [UI Player]", maps)
	}
	if r.Active() != MapPlayer {
		t.Errorf("Active() = %s, want Player", r.Active())
	}
}

func TestSwitcher(t *testing.T) {
	r := NewRouterWithMaps(DefaultMaps(), MapUI)
	var openUI signal.Signal[struct{}]

	s := NewSwitcher(r, &openUI)
	if r.Active() != MapPlayer {
		t.Fatalf("switcher should start on Player, got %s", r.Active())
	}

	openUI.Emit(struct{}{})
	if r.Active() != MapUI {
		t.Fatalf("open UI should switch to UI, got %s", r.Active())
	}

	r.Dispatch(Event{Action: ActionCancel, Phase: PhaseStarted})
	if r.Active() != MapPlayer {
		t.Fatalf("UI cancel should return to Player, got %s", r.Active())
	}

	s.Close()
	if openUI.Len() != 0 {
		t.Errorf("open UI listeners after Close = %d, want 0", openUI.Len())
	}
	openUI.Emit(struct{}{})
	if r.Active() != MapPlayer {
		t.Error("closed switcher should not react")
	}
}

func TestSwitcherWithoutInteractable(t *testing.T) {
	r := NewRouter()
	s := NewSwitcher(r, nil)
	defer s.Close()

	s.SwitchToUIMap()
	if r.Active() != MapUI {
		t.Errorf("Active() = %s, want UI", r.Active())
	}
}

func TestComposite(t *testing.T) {
	c := Composite{Action: ActionMove}

	events := c.Set(DirUp, true)
	if len(events) != 2 || events[0].Phase != PhaseStarted || events[1].Phase != PhasePerformed {
		t.Fatalf("first press = %v, want started+performed", events)
	}
	if events[0].Value != (math.Vec2{Y: 1}) {
		t.Errorf("value = %v, want (0,1)", events[0].Value)
	}

	if events := c.Set(DirUp, true); events != nil {
		t.Errorf("repeat press produced %v", events)
	}

	events = c.Set(DirRight, true)
	if len(events) != 1 || events[0].Phase != PhasePerformed {
		t.Fatalf("diagonal = %v, want performed", events)
	}
	if l := events[0].Value.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("diagonal length = %f, want 1", l)
	}

	c.Set(DirUp, false)
	events = c.Set(DirRight, false)
	if len(events) != 1 || events[0].Phase != PhaseCanceled {
		t.Fatalf("release = %v, want canceled", events)
	}
	if !c.Value().IsZero() {
		t.Errorf("value after release = %v", c.Value())
	}
}

func TestCompositeOpposingKeys(t *testing.T) {
	c := Composite{Action: ActionMove}
	c.Set(DirLeft, true)
	events := c.Set(DirRight, true)
	if len(events) != 1 || events[0].Phase != PhaseCanceled {
		t.Errorf("opposing keys = %v, want canceled", events)
	}
}
