package physics

import (
	gomath "math"

	"github.com/jakecoffman/cp"

	"github.com/Faultbox/vanguard/internal/game/entity"
	"github.com/Faultbox/vanguard/pkg/math"
)

// Body is a dynamic upright cylinder. Its transform position is the
// cylinder's center.
type Body struct {
	world  *World
	entity *entity.Entity
	body   *cp.Body
	shape  *cp.Shape
	mass   float32

	halfHeight float32
	velocity   math.Vec3 // from impulses and gravity

	move    math.Vec3 // pending MovePosition displacement
	hasMove bool
}

// AddBody adds a dynamic body for e.
func (w *World) AddBody(e *entity.Entity, mass float32) *Body {
	if mass <= 0 {
		mass = 1
	}
	body := cp.NewBody(float64(mass), gomath.Inf(1))
	body.SetPosition(toCP(e.Transform.Position))
	shape := cp.NewCircle(body, float64(e.Radius), cp.Vector{})
	shape.SetFriction(0)
	shape.SetFilter(filterFor(e.Layer))
	shape.UserData = e

	w.space.AddBody(body)
	w.space.AddShape(shape)

	b := &Body{
		world:      w,
		entity:     e,
		body:       body,
		shape:      shape,
		mass:       mass,
		halfHeight: e.Height / 2,
	}
	w.bodies = append(w.bodies, b)
	return b
}

// Position returns the body center.
func (b *Body) Position() math.Vec3 {
	return b.entity.Transform.Position
}

// Velocity returns the velocity from impulses and gravity.
func (b *Body) Velocity() math.Vec3 {
	return b.velocity
}

// Rotation returns the body orientation.
func (b *Body) Rotation() math.Quat {
	return b.entity.Transform.Rotation
}

// SetRotation sets the body orientation.
func (b *Body) SetRotation(q math.Quat) {
	b.entity.Transform.Rotation = q
}

// MovePosition moves the body toward target horizontally during the next
// step, colliding on the way. Vertical motion stays under gravity.
func (b *Body) MovePosition(target math.Vec3) {
	b.move = target.Sub(b.Position()).Flat()
	b.hasMove = true
}

// AddImpulse applies an instantaneous impulse.
func (b *Body) AddImpulse(impulse math.Vec3) {
	b.velocity = b.velocity.Add(impulse.Scale(1 / b.mass))
}

// groundSnap is the landing tolerance in world units.
const groundSnap = 0.01

func (b *Body) beforeStep(dt float32) {
	v := b.velocity.Flat()
	if b.hasMove {
		v = v.Add(b.move.Scale(1 / dt))
		b.hasMove = false
	}
	b.body.SetVelocity(float64(v.X), float64(v.Z))
}

// separation limits for the post-step overlap correction.
const (
	separationSlop   = 1e-3
	separationPasses = 4
)

// separate pushes the body out of any shape it still overlaps after the
// solver ran.
func (b *Body) separate() cp.Vector {
	pos := b.body.Position()
	r := float64(b.entity.Radius)

	for i := 0; i < separationPasses; i++ {
		moved := false
		b.world.space.BBQuery(cp.NewBBForCircle(pos, r), b.shape.Filter, func(other *cp.Shape, _ interface{}) {
			if other == b.shape || other.Sensor() {
				return
			}
			info := other.PointQuery(pos)
			if pen := r - info.Distance; pen > separationSlop {
				pos = pos.Add(info.Gradient.Mult(pen))
				moved = true
			}
		}, nil)
		if !moved {
			break
		}
	}

	if pos != b.body.Position() {
		b.body.SetPosition(pos)
	}
	return pos
}

func (b *Body) afterStep(dt float32) {
	p := b.separate()
	pos := b.Position()
	pos.X = float32(p.X)
	pos.Z = float32(p.Y)

	b.velocity.Y -= b.world.cfg.Gravity * dt
	pos.Y += b.velocity.Y * dt

	feet := pos.Y - b.halfHeight
	prevFeet := b.Position().Y - b.halfHeight
	support := b.world.supportHeight(pos, maxf(prevFeet, feet)+groundSnap, b.shape)
	grounded := false
	if feet <= support && b.velocity.Y <= 0 {
		pos.Y = support + b.halfHeight
		b.velocity.Y = 0
		grounded = true
	}

	if grounded && b.world.cfg.Damping > 0 {
		decay := 1 - b.world.cfg.Damping*dt
		if decay < 0 {
			decay = 0
		}
		b.velocity.X *= decay
		b.velocity.Z *= decay
	}

	b.entity.Transform.Position = pos
	b.body.SetVelocity(0, 0)
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
