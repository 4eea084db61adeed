package ecs

import (
	"reflect"
)

type singletonEntry struct {
	value any // always a *T
}

// Singleton provides access to a single value that is not associated with
// any entity. Use this for resources such as timers or asset tables.
type Singleton[T any] struct {
	world *World
	ptr   *T
}

// NewSingleton returns an accessor for the T resource of the world. If the
// resource does not exist yet it is created from initializer (or the zero value).
func NewSingleton[T any](w *World, initializer ...T) *Singleton[T] {
	typ := reflect.TypeFor[T]()

	entry, ok := w.singletons[typ]
	if !ok {
		value := new(T)
		if len(initializer) > 0 {
			*value = initializer[0]
		}
		entry = &singletonEntry{value: value}
		w.singletons[typ] = entry
	}

	return &Singleton[T]{
		world: w,
		ptr:   entry.value.(*T),
	}
}

// Get returns a pointer to the resource.
func (s *Singleton[T]) Get() *T {
	return s.ptr
}

// Exists reports whether the resource is still stored on the world.
func (s *Singleton[T]) Exists() bool {
	_, ok := s.world.singletons[reflect.TypeFor[T]()]
	return ok
}

// ReadSingleton points *out at the T resource of the world.
// It returns false if no such resource exists.
func ReadSingleton[T any](w *World, out **T) bool {
	entry, ok := w.singletons[reflect.TypeFor[T]()]
	if !ok {
		return false
	}
	*out = entry.value.(*T)
	return true
}

// RemoveSingleton drops the T resource from the world.
func RemoveSingleton[T any](w *World) {
	delete(w.singletons, reflect.TypeFor[T]())
}
