// Package physics implements a small rigid-body world for a third-person
// character.
//
// Horizontal motion and collision run in a chipmunk space mapped onto the
// ground plane (world X to cp X, world Z to cp Y). Entities are vertical
// cylinders; height is handled here: gravity, landing on the ground plane
// and on cylinder tops, and vertical extent checks for queries.
package physics

import (
	gomath "math"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/Faultbox/vanguard/internal/config"
	"github.com/Faultbox/vanguard/internal/game/entity"
	"github.com/Faultbox/vanguard/internal/logger"
	"github.com/Faultbox/vanguard/pkg/math"
)

// Hit is one query result. Entity and Transform are nil for the ground plane.
type Hit struct {
	Entity    *entity.Entity
	Transform *entity.Transform
	Distance  float32
	Point     math.Vec3
}

// World owns the chipmunk space and all bodies in it.
type World struct {
	space   *cp.Space
	cfg     config.PhysicsConfig
	bodies  []*Body
	statics map[*entity.Entity]*cp.Shape

	log *zap.Logger
}

// NewWorld creates an empty world.
func NewWorld(cfg config.PhysicsConfig) *World {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return &World{
		space:   space,
		cfg:     cfg,
		statics: make(map[*entity.Entity]*cp.Shape),
		log:     logger.Named("physics"),
	}
}

// Configure replaces the world settings.
func (w *World) Configure(cfg config.PhysicsConfig) {
	w.cfg = cfg
}

// AddStatic adds an immovable cylinder for e. The transform position is the
// center of the cylinder's base.
func (w *World) AddStatic(e *entity.Entity) {
	pos := e.Transform.Position
	shape := cp.NewCircle(w.space.StaticBody, float64(e.Radius), toCP(pos))
	shape.SetFriction(0)
	shape.SetFilter(filterFor(e.Layer))
	shape.UserData = e
	w.space.AddShape(shape)
	w.statics[e] = shape

	w.log.Debug("static added",
		zap.String("name", e.Name()),
		zap.Float32("radius", e.Radius),
		zap.Float32("height", e.Height))
}

// Remove takes e out of the world.
func (w *World) Remove(e *entity.Entity) {
	if shape, ok := w.statics[e]; ok {
		w.space.RemoveShape(shape)
		delete(w.statics, e)
		return
	}
	for i, b := range w.bodies {
		if b.entity == e {
			w.space.RemoveShape(b.shape)
			w.space.RemoveBody(b.body)
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float32) {
	if dt <= 0 {
		return
	}
	w.pruneDestroyed()

	for _, b := range w.bodies {
		b.beforeStep(dt)
	}
	w.space.Step(float64(dt))
	for _, b := range w.bodies {
		b.afterStep(dt)
	}
}

func (w *World) pruneDestroyed() {
	for e := range w.statics {
		if !e.Alive() {
			w.Remove(e)
		}
	}
}

// Raycast returns the nearest hit along a ray on the masked layers.
// dir need not be normalized.
func (w *World) Raycast(origin, dir math.Vec3, maxDistance float32, mask entity.Layer) (Hit, bool) {
	dir = dir.Normalize()
	if dir.IsZero() || maxDistance <= 0 {
		return Hit{}, false
	}

	best := Hit{Distance: float32(gomath.Inf(1))}
	found := false
	consider := func(h Hit) {
		if h.Distance >= 0 && h.Distance <= maxDistance && h.Distance < best.Distance {
			best = h
			found = true
		}
	}

	if mask&entity.LayerGround != 0 && dir.Y < 0 {
		d := (origin.Y - w.cfg.GroundHeight) / -dir.Y
		consider(Hit{Distance: d, Point: origin.Add(dir.Scale(d))})
	}

	filter := queryFilter(mask)
	if isVertical(dir) {
		// Straight up or down: only cylinder caps under the origin can be hit.
		w.shapesAt(toCP(origin), filter, func(shape *cp.Shape) {
			e, ok := shape.UserData.(*entity.Entity)
			if !ok || !e.Alive() {
				return
			}
			base := e.Transform.Position.Y
			capY := base + e.Height
			if dir.Y > 0 {
				capY = base
			}
			d := (capY - origin.Y) / dir.Y
			consider(Hit{Entity: e, Transform: e.Transform, Distance: d, Point: origin.Add(dir.Scale(d))})
		})
		return best, found
	}

	for _, h := range w.sweep(origin, dir, 0, maxDistance, filter) {
		consider(h)
	}
	return best, found
}

// SphereCastAll returns every masked entity touched by a sphere of radius
// swept from origin along dir for maxDistance, in no particular order.
func (w *World) SphereCastAll(origin, dir math.Vec3, radius, maxDistance float32, mask entity.Layer) []Hit {
	dir = dir.Normalize()
	if dir.IsZero() || maxDistance <= 0 {
		return nil
	}
	return w.sweep(origin, dir, radius, maxDistance, queryFilter(mask))
}

func (w *World) sweep(origin, dir math.Vec3, radius, maxDistance float32, filter cp.ShapeFilter) []Hit {
	start := toCP(origin)
	end := toCP(origin.Add(dir.Scale(maxDistance)))
	r := float64(radius)

	// The index only tests the bare segment, so widen the candidate box by
	// the radius and run the thick test per shape.
	bb := cp.NewBBForCircle(start, r).Merge(cp.NewBBForCircle(end, r))
	seen := make(map[*entity.Entity]bool)
	var hits []Hit

	w.space.BBQuery(bb, filter, func(shape *cp.Shape, _ interface{}) {
		e, ok := shape.UserData.(*entity.Entity)
		if !ok || !e.Alive() || seen[e] {
			return
		}
		var info cp.SegmentQueryInfo
		if !shape.SegmentQuery(start, end, r, &info) {
			return
		}
		d := float32(info.Alpha) * maxDistance
		at := origin.Add(dir.Scale(d))
		base := e.Transform.Position.Y
		if at.Y < base-radius || at.Y > base+e.Height+radius {
			return
		}
		point := info.Point
		if info.Alpha == 0 {
			// Overlapping at the start: cp leaves Point at the segment end.
			point = start
		}
		seen[e] = true
		hits = append(hits, Hit{
			Entity:    e,
			Transform: e.Transform,
			Distance:  d,
			Point:     math.Vec3{X: float32(point.X), Y: at.Y, Z: float32(point.Y)},
		})
	}, nil)
	return hits
}

// supportHeight returns the highest surface under xz that is at or below
// top, counting the ground plane and cylinder caps on the ground layer.
func (w *World) supportHeight(pos math.Vec3, top float32, self *cp.Shape) float32 {
	support := w.cfg.GroundHeight
	w.shapesAt(toCP(pos), queryFilter(entity.LayerGround), func(shape *cp.Shape) {
		if shape == self {
			return
		}
		e, ok := shape.UserData.(*entity.Entity)
		if !ok || !e.Alive() {
			return
		}
		capY := e.Transform.Position.Y + e.Height
		if capY <= top && capY > support {
			support = capY
		}
	})
	return support
}

// shapesAt calls fn for every shape containing p.
func (w *World) shapesAt(p cp.Vector, filter cp.ShapeFilter, fn func(*cp.Shape)) {
	w.space.BBQuery(cp.BB{L: p.X, B: p.Y, R: p.X, T: p.Y}, filter, func(shape *cp.Shape, _ interface{}) {
		if shape.PointQuery(p).Distance <= 0 {
			fn(shape)
		}
	}, nil)
}

func isVertical(dir math.Vec3) bool {
	return dir.X*dir.X+dir.Z*dir.Z < 1e-8
}

func toCP(v math.Vec3) cp.Vector {
	return cp.Vector{X: float64(v.X), Y: float64(v.Z)}
}

func filterFor(layer entity.Layer) cp.ShapeFilter {
	return cp.ShapeFilter{Group: cp.NO_GROUP, Categories: uint(layer), Mask: cp.ALL_CATEGORIES}
}

func queryFilter(mask entity.Layer) cp.ShapeFilter {
	return cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: uint(mask)}
}
