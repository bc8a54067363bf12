package ecs

import "slices"

// IntersectEntities returns entities present in both sets.
func IntersectEntities(a, b *SparseSet) []Entity {
	if a == nil || b == nil {
		return nil
	}
	// iterate smaller set
	if len(a.denseEntities) > len(b.denseEntities) {
		a, b = b, a
	}
	out := make([]Entity, 0, len(a.denseEntities))
	for _, e := range a.denseEntities {
		if b.Has(e) {
			out = append(out, e)
		}
	}
	return out
}

// Query returns the entities holding every listed component, ordered by id
// so iteration does not depend on insertion and removal history.
func (w *World) Query(ids ...ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(ids))
	for _, id := range ids {
		set := w.stores[id]
		if set.Len() == 0 {
			return nil
		}
		sets = append(sets, set)
	}
	slices.SortFunc(sets, func(a, b *SparseSet) int { return a.Len() - b.Len() })

	var out []Entity
	if len(sets) == 1 {
		out = slices.Clone(sets[0].Entities())
	} else {
		out = IntersectEntities(sets[0], sets[1])
		for _, set := range sets[2:] {
			out = slices.DeleteFunc(out, func(e Entity) bool { return !set.Has(e) })
		}
	}
	slices.SortFunc(out, func(a, b Entity) int { return int(a.id()) - int(b.id()) })
	return out
}
