// Package entity implements world objects the controller interacts with.
package entity

// Type represents the type of entity.
type Type uint8

const (
	TypePlayer Type = iota
	TypeMonster
	TypeObstacle
	TypeProp
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypePlayer:
		return "player"
	case TypeMonster:
		return "monster"
	case TypeObstacle:
		return "obstacle"
	case TypeProp:
		return "prop"
	default:
		return "unknown"
	}
}

// Layer is a collision/query category bitmask.
type Layer uint

const (
	LayerGround Layer = 1 << iota
	LayerTarget
	LayerObstacle
	LayerPlayer

	LayerAll Layer = ^Layer(0)
)

// Damageable receives damage from attacks.
type Damageable interface {
	TakeDamage(amount int)
}

// Entity is a world object with a transform and collision extent.
// Entities are cylinders: Radius on the ground plane, Height upward from
// the transform position.
type Entity struct {
	ID        uint32
	Type      Type
	Transform *Transform
	Layer     Layer
	Radius    float32
	Height    float32

	// Damageable is nil for entities that cannot be hurt
	Damageable Damageable
}

// Name returns the transform name.
func (e *Entity) Name() string {
	if e == nil || e.Transform == nil {
		return ""
	}
	return e.Transform.Name
}

// Alive reports whether the entity's transform still exists.
func (e *Entity) Alive() bool {
	return e != nil && e.Transform.Alive()
}

// Manager manages all entities in the scene.
type Manager struct {
	entities map[uint32]*Entity
	order    []uint32 // insertion order, for deterministic iteration
	nextID   uint32
}

// NewManager creates a new entity manager.
func NewManager() *Manager {
	return &Manager{
		entities: make(map[uint32]*Entity),
		nextID:   1,
	}
}

// Spawn assigns an ID to e and adds it.
func (m *Manager) Spawn(e *Entity) *Entity {
	e.ID = m.nextID
	m.nextID++
	m.entities[e.ID] = e
	m.order = append(m.order, e.ID)
	return e
}

// Remove removes an entity and destroys its transform.
func (m *Manager) Remove(id uint32) {
	e, ok := m.entities[id]
	if !ok {
		return
	}
	e.Transform.Destroy()
	delete(m.entities, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Get returns an entity by ID.
func (m *Manager) Get(id uint32) *Entity {
	return m.entities[id]
}

// All returns all entities in spawn order.
func (m *Manager) All() []*Entity {
	result := make([]*Entity, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.entities[id])
	}
	return result
}

// GetByType returns all entities of a specific type in spawn order.
func (m *Manager) GetByType(entityType Type) []*Entity {
	result := make([]*Entity, 0)
	for _, id := range m.order {
		if e := m.entities[id]; e.Type == entityType {
			result = append(result, e)
		}
	}
	return result
}

// Count returns the total number of entities.
func (m *Manager) Count() int {
	return len(m.entities)
}
