package ecs

import (
	"errors"
	"fmt"
	"iter"
)

// ErrNotExactlyOne is returned by Single when a store holds zero or several records.
var ErrNotExactlyOne = errors.New("expected exactly one entity")

// Pair holds the two records an entity has in a Join.
type Pair[A, B any] struct {
	A *A
	B *B
}

// Join yields the entities present in both stores. The first store drives
// the iteration, so pass the smaller (usually the tag) store first.
func Join[A, B any](a *Components[A], b *Components[B]) iter.Seq2[EntityId, Pair[A, B]] {
	return func(yield func(EntityId, Pair[A, B]) bool) {
		for id, ra := range a.Iter() {
			rb := b.Get(id)
			if rb == nil {
				continue
			}
			if !yield(id, Pair[A, B]{A: ra, B: rb}) {
				return
			}
		}
	}
}

// Count returns the number of entities yielded by seq.
func Count[V any](seq iter.Seq2[EntityId, V]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// Single returns the only entity in the store, together with its record.
func Single[T any](c *Components[T]) (EntityId, *T, error) {
	var (
		found  EntityId
		record *T
		n      int
	)
	for id, r := range c.Iter() {
		n++
		if n > 1 {
			break
		}
		found, record = id, r
	}
	if n != 1 {
		return 0, nil, fmt.Errorf("%s: %w (found %s)", c.name, ErrNotExactlyOne, countWord(n))
	}
	return found, record, nil
}

func countWord(n int) string {
	if n == 0 {
		return "none"
	}
	return "several"
}
