package ecs

import (
	"iter"
	"reflect"
)

// componentStore is the type-erased view of a Components[T] the world needs
// to keep stores consistent when entities die.
type componentStore interface {
	Name() string
	Len() int
	remove(index uint32)
	has(index uint32) bool
	value(index uint32) any
}

// World is the entity arena. Slots are recycled, but every reuse bumps the
// slot generation so stale ids never resolve to the new occupant.
type World struct {
	generations []uint32
	alive       []bool
	freeSlots   []uint32
	count       int

	stores     []componentStore
	singletons map[reflect.Type]*singletonEntry
}

// NewWorld creates an empty arena.
func NewWorld() *World {
	return &World{
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// Spawn allocates a new entity with no components.
func (w *World) Spawn() EntityId {
	w.count++

	if len(w.freeSlots) > 0 {
		index := w.freeSlots[len(w.freeSlots)-1]
		w.freeSlots = w.freeSlots[:len(w.freeSlots)-1]
		w.alive[index] = true
		return NewEntityId(w.generations[index], index)
	}

	index := uint32(len(w.generations))
	// generation starts at 1 so that no live entity has id 0
	w.generations = append(w.generations, 1)
	w.alive = append(w.alive, true)
	return NewEntityId(1, index)
}

// Despawn removes the entity and all of its components. It reports whether
// the id referred to a live entity.
func (w *World) Despawn(id EntityId) bool {
	if !w.Alive(id) {
		return false
	}

	index := id.Index()
	for _, store := range w.stores {
		store.remove(index)
	}

	w.alive[index] = false
	w.generations[index]++
	w.freeSlots = append(w.freeSlots, index)
	w.count--
	return true
}

// Alive reports whether id refers to a live entity.
func (w *World) Alive(id EntityId) bool {
	index := id.Index()
	if int(index) >= len(w.generations) {
		return false
	}
	return w.alive[index] && w.generations[index] == id.Generation()
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.count
}

// Entities iterates all live entities in slot order.
func (w *World) Entities() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for index, alive := range w.alive {
			if !alive {
				continue
			}
			if !yield(NewEntityId(w.generations[index], uint32(index))) {
				return
			}
		}
	}
}

// ComponentNames returns the names of the stores holding a record for id.
func (w *World) ComponentNames(id EntityId) []string {
	if !w.Alive(id) {
		return nil
	}
	var names []string
	for _, store := range w.stores {
		if store.has(id.Index()) {
			names = append(names, store.Name())
		}
	}
	return names
}

// ComponentValue is one record of an inspected entity. Value is a pointer
// to the stored record.
type ComponentValue struct {
	Name  string
	Value any
}

// Inspect returns pointers to every record of id, in store registration
// order. It is meant for debugging tools; systems should use typed stores.
func (w *World) Inspect(id EntityId) []ComponentValue {
	if !w.Alive(id) {
		return nil
	}
	var values []ComponentValue
	for _, store := range w.stores {
		if v := store.value(id.Index()); v != nil {
			values = append(values, ComponentValue{Name: store.Name(), Value: v})
		}
	}
	return values
}

// idAt rebuilds the current id of a live slot.
func (w *World) idAt(index uint32) EntityId {
	return NewEntityId(w.generations[index], index)
}
