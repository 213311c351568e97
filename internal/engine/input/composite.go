package input

import "github.com/Faultbox/vanguard/pkg/math"

// Direction is one half-axis of a 2D composite.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Composite combines four digital controls into a normalized 2D vector and
// produces the action phases for its changes.
type Composite struct {
	Action Action
	held   [4]bool
	value  math.Vec2
}

// Set updates one direction and returns the resulting events, if any.
func (c *Composite) Set(d Direction, down bool) []Event {
	if c.held[d] == down {
		return nil
	}
	c.held[d] = down

	prev := c.value
	c.value = c.compute()

	switch {
	case prev.IsZero() && !c.value.IsZero():
		return []Event{
			{Action: c.Action, Phase: PhaseStarted, Value: c.value},
			{Action: c.Action, Phase: PhasePerformed, Value: c.value},
		}
	case !prev.IsZero() && c.value.IsZero():
		return []Event{{Action: c.Action, Phase: PhaseCanceled}}
	case prev != c.value:
		return []Event{{Action: c.Action, Phase: PhasePerformed, Value: c.value}}
	}
	return nil
}

// Value returns the current vector.
func (c *Composite) Value() math.Vec2 {
	return c.value
}

// Reset releases every direction.
func (c *Composite) Reset() []Event {
	var events []Event
	for d := range c.held {
		events = append(events, c.Set(Direction(d), false)...)
	}
	return events
}

func (c *Composite) compute() math.Vec2 {
	var v math.Vec2
	if c.held[DirUp] {
		v.Y++
	}
	if c.held[DirDown] {
		v.Y--
	}
	if c.held[DirRight] {
		v.X++
	}
	if c.held[DirLeft] {
		v.X--
	}
	if v.Length() > 1 {
		v = v.Normalize()
	}
	return v
}
