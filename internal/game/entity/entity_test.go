package entity

import (
	"testing"

	"github.com/Faultbox/vanguard/pkg/math"
)

func TestTransformAlive(t *testing.T) {
	var nilTransform *Transform
	if nilTransform.Alive() {
		t.Error("nil transform should not be alive")
	}

	tr := NewTransform("slime", math.Vec3{X: 1})
	if !tr.Alive() {
		t.Error("new transform should be alive")
	}
	tr.Destroy()
	if tr.Alive() {
		t.Error("destroyed transform should not be alive")
	}
}

func TestManagerSpawnOrder(t *testing.T) {
	m := NewManager()
	a := m.Spawn(&Entity{Type: TypeMonster, Transform: NewTransform("a", math.Vec3{})})
	b := m.Spawn(&Entity{Type: TypeObstacle, Transform: NewTransform("b", math.Vec3{})})
	c := m.Spawn(&Entity{Type: TypeMonster, Transform: NewTransform("c", math.Vec3{})})

	if a.ID == b.ID || b.ID == c.ID {
		t.Fatalf("duplicate IDs: %d %d %d", a.ID, b.ID, c.ID)
	}

	all := m.All()
	if len(all) != 3 || all[0] != a || all[1] != b || all[2] != c {
		t.Errorf("All() not in spawn order")
	}

	monsters := m.GetByType(TypeMonster)
	if len(monsters) != 2 || monsters[0] != a || monsters[1] != c {
		t.Errorf("GetByType(monster) = %v", monsters)
	}
}

func TestManagerRemoveDestroysTransform(t *testing.T) {
	m := NewManager()
	e := m.Spawn(&Entity{Type: TypeMonster, Transform: NewTransform("skeleton", math.Vec3{})})

	m.Remove(e.ID)

	if e.Alive() {
		t.Error("removed entity should not be alive")
	}
	if m.Get(e.ID) != nil {
		t.Error("removed entity still retrievable")
	}
	if m.Count() != 0 {
		t.Errorf("Count() = %d, want 0", m.Count())
	}
}
