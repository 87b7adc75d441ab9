package ecs

import "github.com/milk9111/jumpdontdie/ecs/component"

// Add stores a copy of value on e, replacing any previous value.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	if w == nil {
		return component.ErrEntityNotAlive
	}
	v := value
	return w.addComponent(e, handle.Kind(), &v)
}

// Get returns a pointer to e's component. Mutations through it are visible to later readers.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	value, ok := w.getComponent(e, handle.Kind())
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	return cast, ok
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	_, ok := w.getComponent(e, handle.Kind())
	return ok
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.removeComponent(e, handle.Kind())
}

// ForEach calls fn for every entity holding the component.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(e Entity, value *T)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(handle.Kind()) {
		if value, ok := Get(w, e, handle); ok {
			fn(e, value)
		}
	}
}
