package game

import (
	"github.com/Faultbox/vanguard/internal/engine/window"
	"github.com/Faultbox/vanguard/internal/game/entity"
	"github.com/Faultbox/vanguard/pkg/math"
)

var (
	colorBackground = window.Color{R: 24, G: 26, B: 30, A: 255}
	colorPlayer     = window.Color{R: 90, G: 170, B: 255, A: 255}
	colorMonster    = window.Color{R: 220, G: 80, B: 70, A: 255}
	colorObstacle   = window.Color{R: 110, G: 110, B: 120, A: 255}
	colorProp       = window.Color{R: 200, G: 170, B: 90, A: 255}
	colorFacing     = window.Color{R: 255, G: 255, B: 255, A: 255}
	colorCamera     = window.Color{R: 120, G: 220, B: 120, A: 255}
	colorTarget     = window.Color{R: 255, G: 220, B: 0, A: 255}
	colorBarBack    = window.Color{R: 60, G: 20, B: 20, A: 255}
	colorBarFill    = window.Color{R: 220, G: 40, B: 40, A: 255}
)

const (
	pixelsPerUnit = 24
	barWidth      = 40
	barHeight     = 5
)

// drawer is the subset of the window the debug view draws with.
type drawer interface {
	FillRect(x, y, width, height int32, c window.Color)
	DrawLine(x1, y1, x2, y2 int32, c window.Color)
}

// topDown draws the arena from above, centered on the player.
// +X is right and +Z is up on screen.
type topDown struct {
	width, height int
}

func newTopDown(width, height int) topDown {
	return topDown{width: width, height: height}
}

func (v *topDown) resize(width, height int) {
	v.width, v.height = width, height
}

// view returns the world to screen transform with center in the middle of
// the window.
func (v topDown) view(center math.Vec3) math.Mat4 {
	return math.Translate(float32(v.width)/2, float32(v.height)/2, 0).
		Mul(math.GroundPlane(pixelsPerUnit)).
		Mul(math.Translate(-center.X, -center.Y, -center.Z))
}

// project maps a world point to screen pixels relative to center.
func (v topDown) project(p, center math.Vec3) (int32, int32) {
	s := v.view(center).TransformVec3(p)
	return int32(s.X), int32(s.Y)
}

func (v topDown) draw(dst drawer, s *Session) {
	center := s.Arena.Body.Position()

	for _, e := range s.Arena.Entities.All() {
		if !e.Alive() {
			continue
		}
		x, y := v.project(e.Transform.Position, center)
		half := int32(e.Radius * pixelsPerUnit)
		dst.FillRect(x-half, y-half, 2*half, 2*half, colorFor(e.Type))
	}

	// Player facing and camera heading.
	px, py := v.project(center, center)
	fx, fy := v.project(center.Add(s.Arena.Body.Rotation().Forward().Flat().Normalize()), center)
	dst.DrawLine(px, py, fx, fy, colorFacing)
	cx, cy := v.project(center.Add(s.Rig.FlatForward().Scale(2)), center)
	dst.DrawLine(px, py, cx, cy, colorCamera)

	if t := s.Player.Target(); t != nil {
		tx, ty := v.project(t.Position, center)
		dst.DrawLine(px, py, tx, ty, colorTarget)
	}

	for _, bar := range s.Canvas.Bars() {
		if !bar.Active() {
			continue
		}
		x, y := v.project(bar.Position, center)
		x -= barWidth / 2
		dst.FillRect(x, y, barWidth, barHeight, colorBarBack)
		dst.FillRect(x, y, int32(barWidth*bar.Slider.Fraction()), barHeight, colorBarFill)
	}
}

func colorFor(t entity.Type) window.Color {
	switch t {
	case entity.TypePlayer:
		return colorPlayer
	case entity.TypeMonster:
		return colorMonster
	case entity.TypeProp:
		return colorProp
	default:
		return colorObstacle
	}
}
