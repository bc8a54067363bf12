package ecs

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// World owns entities, components, and system order.
type World struct {
	entities entityStore
	stores   map[ComponentID]*SparseSet
	systems  []System
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity drops every component of e and retires its handle.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, set := range w.stores {
		set.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Len is the number of live entities.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return w.entities.alive
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		s.Update(w)
	}
}

// AddComponent attaches or replaces a component on e.
func (w *World) AddComponent(e Entity, id ComponentID, value any) error {
	if id == 0 {
		return ErrInvalidComponentKind
	}
	if value == nil {
		return ErrNilComponent
	}
	if !w.IsAlive(e) {
		return ErrEntityNotAlive
	}
	if w.stores == nil {
		w.stores = make(map[ComponentID]*SparseSet)
	}
	set := w.stores[id]
	if set == nil {
		set = &SparseSet{}
		w.stores[id] = set
	}
	set.Set(e, value)
	return nil
}

func (w *World) GetComponent(e Entity, id ComponentID) (any, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	set := w.stores[id]
	if !set.Has(e) {
		return nil, false
	}
	return set.Get(e), true
}

func (w *World) HasComponent(e Entity, id ComponentID) bool {
	return w.IsAlive(e) && w.stores[id].Has(e)
}

func (w *World) RemoveComponent(e Entity, id ComponentID) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.stores[id].Remove(e)
}
