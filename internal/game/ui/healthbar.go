// Package ui provides in-world user interface elements.
package ui

import (
	"github.com/Faultbox/vanguard/internal/engine/signal"
	"github.com/Faultbox/vanguard/internal/game/entity"
	"github.com/Faultbox/vanguard/internal/game/health"
	"github.com/Faultbox/vanguard/pkg/math"
)

// Slider is the displayed value of a bar.
type Slider struct {
	Max   float32
	Value float32
}

// Fraction returns Value/Max in [0, 1].
func (s Slider) Fraction() float32 {
	if s.Max <= 0 {
		return 0
	}
	return math.Clamp(s.Value/s.Max, 0, 1)
}

// Viewer is the camera a bar faces.
type Viewer interface {
	Position() math.Vec3
}

// HealthBar is a floating bar that tracks a unit and faces the camera.
//
// A bar built without a health source is disabled for good. Otherwise it
// mirrors the source until the source dies, then deactivates for good.
type HealthBar struct {
	Slider   Slider
	Position math.Vec3
	Rotation math.Quat

	source health.Source
	owner  *entity.Transform
	camera Viewer
	canvas *Canvas
	offset math.Vec3

	active bool
	conns  signal.Group
}

// NewHealthBar binds a bar to source and attaches it to canvas.
func NewHealthBar(source health.Source, owner *entity.Transform, camera Viewer, canvas *Canvas, offset math.Vec3) *HealthBar {
	b := &HealthBar{
		Rotation: math.QuatIdentity(),
		source:   source,
		owner:    owner,
		camera:   camera,
		canvas:   canvas,
		offset:   offset,
	}
	if source == nil {
		return b
	}

	b.Slider = Slider{
		Max:   float32(source.MaxHealth()),
		Value: float32(source.CurrentHealth()),
	}
	b.conns.Add(source.Damaged().Connect(func(int) { b.refresh() }))
	b.conns.Add(source.Died().Connect(func(struct{}) { b.deactivate() }))

	b.active = true
	canvas.Attach(b)
	b.Update()
	return b
}

// Active reports whether the bar is shown.
func (b *HealthBar) Active() bool {
	return b.active
}

// Update moves the bar above its owner and turns it to face away from the
// camera, so its front is readable.
func (b *HealthBar) Update() {
	if !b.active {
		return
	}
	if !b.owner.Alive() {
		b.deactivate()
		return
	}
	b.Position = b.owner.Position.Add(b.offset)
	b.Rotation = math.LookRotation(b.Position.Sub(b.camera.Position()))
}

// Close releases the bar's subscriptions and detaches it.
func (b *HealthBar) Close() {
	b.deactivate()
}

func (b *HealthBar) refresh() {
	b.Slider.Value = float32(b.source.CurrentHealth())
}

func (b *HealthBar) deactivate() {
	b.conns.Disconnect()
	if b.active {
		b.active = false
		b.canvas.Detach(b)
	}
}

// Canvas holds the bars currently shown in the world.
type Canvas struct {
	bars []*HealthBar
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Attach adds a bar.
func (c *Canvas) Attach(b *HealthBar) {
	c.bars = append(c.bars, b)
}

// Detach removes a bar.
func (c *Canvas) Detach(b *HealthBar) {
	for i, bar := range c.bars {
		if bar == b {
			c.bars = append(c.bars[:i], c.bars[i+1:]...)
			return
		}
	}
}

// Bars returns the attached bars.
func (c *Canvas) Bars() []*HealthBar {
	return c.bars
}

// Update updates every attached bar.
func (c *Canvas) Update() {
	// Bars may detach themselves while updating.
	bars := append([]*HealthBar(nil), c.bars...)
	for _, b := range bars {
		b.Update()
	}
}
