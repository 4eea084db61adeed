package ecs

import (
	"iter"

	"github.com/kamstrup/intmap"
)

const (
	componentBlockSize = 64
)

// Components is a typed attribute store keyed by entity. Records live in
// fixed-size blocks so pointers returned by Get stay valid until the record
// is removed. Zero-size types work as tags.
type Components[T any] struct {
	name  string
	world *World

	blocks    []*[componentBlockSize]T
	owners    []*[componentBlockSize]uint32
	filled    []*[componentBlockSize]bool
	freeSlots []int
	nextSlot  int

	// entity slot index -> storage slot
	slots *intmap.Map[uint32, int]
}

// Register creates a store for T and attaches it to the world so that
// despawned entities lose their records.
func Register[T any](w *World, name string) *Components[T] {
	c := &Components[T]{
		name:  name,
		world: w,
		slots: intmap.New[uint32, int](64),
	}
	w.stores = append(w.stores, c)
	return c
}

// Name returns the name the store was registered with.
func (c *Components[T]) Name() string {
	return c.name
}

// Len returns the number of records in the store.
func (c *Components[T]) Len() int {
	return c.slots.Len()
}

// Set inserts or replaces the record for a live entity. Setting on a dead
// entity is ignored and reported as false.
func (c *Components[T]) Set(id EntityId, value T) bool {
	if !c.world.Alive(id) {
		return false
	}

	index := id.Index()
	if slot, ok := c.slots.Get(index); ok {
		c.blocks[slot/componentBlockSize][slot%componentBlockSize] = value
		return true
	}

	slot := c.allocSlot()
	blockIdx := slot / componentBlockSize
	slotIdx := slot % componentBlockSize

	c.blocks[blockIdx][slotIdx] = value
	c.owners[blockIdx][slotIdx] = index
	c.filled[blockIdx][slotIdx] = true
	c.slots.Put(index, slot)
	return true
}

func (c *Components[T]) allocSlot() int {
	if len(c.freeSlots) > 0 {
		slot := c.freeSlots[len(c.freeSlots)-1]
		c.freeSlots = c.freeSlots[:len(c.freeSlots)-1]
		return slot
	}

	slot := c.nextSlot
	c.nextSlot++
	if slot/componentBlockSize >= len(c.blocks) {
		// blocks are allocated separately so growing the index never moves records
		c.blocks = append(c.blocks, new([componentBlockSize]T))
		c.owners = append(c.owners, new([componentBlockSize]uint32))
		c.filled = append(c.filled, new([componentBlockSize]bool))
	}
	return slot
}

// Get returns a pointer to the record of id, or nil if there is none.
func (c *Components[T]) Get(id EntityId) *T {
	if !c.world.Alive(id) {
		return nil
	}
	slot, ok := c.slots.Get(id.Index())
	if !ok {
		return nil
	}
	return &c.blocks[slot/componentBlockSize][slot%componentBlockSize]
}

// Has reports whether id has a record in this store.
func (c *Components[T]) Has(id EntityId) bool {
	return c.world.Alive(id) && c.has(id.Index())
}

// Remove deletes the record of id. It reports whether a record existed.
func (c *Components[T]) Remove(id EntityId) bool {
	if !c.world.Alive(id) || !c.has(id.Index()) {
		return false
	}
	c.remove(id.Index())
	return true
}

func (c *Components[T]) has(index uint32) bool {
	_, ok := c.slots.Get(index)
	return ok
}

func (c *Components[T]) value(index uint32) any {
	slot, ok := c.slots.Get(index)
	if !ok {
		return nil
	}
	return &c.blocks[slot/componentBlockSize][slot%componentBlockSize]
}

func (c *Components[T]) remove(index uint32) {
	slot, ok := c.slots.Get(index)
	if !ok {
		return
	}
	c.slots.Del(index)

	blockIdx := slot / componentBlockSize
	slotIdx := slot % componentBlockSize

	var zero T
	c.blocks[blockIdx][slotIdx] = zero
	c.filled[blockIdx][slotIdx] = false
	c.freeSlots = append(c.freeSlots, slot)
}

// Iter yields every entity that has a record, with a pointer to it.
// Iteration order follows storage slots and is otherwise unspecified.
func (c *Components[T]) Iter() iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		for slot := 0; slot < c.nextSlot; slot++ {
			blockIdx := slot / componentBlockSize
			slotIdx := slot % componentBlockSize

			if !c.filled[blockIdx][slotIdx] {
				continue
			}

			id := c.world.idAt(c.owners[blockIdx][slotIdx])
			if !yield(id, &c.blocks[blockIdx][slotIdx]) {
				return
			}
		}
	}
}
