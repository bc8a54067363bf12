package ecs

func Add[T any](w *World, e Entity, handle ComponentHandle[T], value T) error {
	return w.AddComponent(e, handle.ID(), value)
}

func Remove[T any](w *World, e Entity, handle ComponentHandle[T]) bool {
	return w.RemoveComponent(e, handle.ID())
}

func Has[T any](w *World, e Entity, handle ComponentHandle[T]) bool {
	return w.HasComponent(e, handle.ID())
}

func Get[T any](w *World, e Entity, handle ComponentHandle[T]) (T, bool) {
	var zero T
	value, ok := w.GetComponent(e, handle.ID())
	if !ok {
		return zero, false
	}
	cast, ok := value.(T)
	if !ok {
		return zero, false
	}
	return cast, true
}

// First returns the lowest-id entity holding handle.
func First[T any](w *World, handle ComponentHandle[T]) (Entity, T, bool) {
	var zero T
	ents := w.Query(handle.ID())
	if len(ents) == 0 {
		return 0, zero, false
	}
	value, ok := Get(w, ents[0], handle)
	return ents[0], value, ok
}

// Each calls fn for every entity holding handle, in id order. fn may add or
// remove components.
func Each[T any](w *World, handle ComponentHandle[T], fn func(e Entity, value T)) {
	for _, e := range w.Query(handle.ID()) {
		if value, ok := Get(w, e, handle); ok {
			fn(e, value)
		}
	}
}
