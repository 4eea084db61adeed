package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatcher(t *testing.T) {
	t.Run("delivers only matching type", func(t *testing.T) {
		d := NewDispatcher()
		towers := &recorder{}
		enemies := &recorder{}
		d.Subscribe(TowerPlaced, towers)
		d.Subscribe(EnemySpawned, enemies)

		d.Dispatch(Event{Type: TowerPlaced, X: 1, Y: 2, Z: 10})

		assert.Len(t, towers.got, 1)
		assert.Empty(t, enemies.got)
		assert.Equal(t, 10.0, towers.got[0].Z)
	})

	t.Run("subscription order", func(t *testing.T) {
		d := NewDispatcher()
		var order []string
		d.Subscribe(EnemySpawned, ListenerFunc(func(Event) { order = append(order, "first") }))
		d.Subscribe(EnemySpawned, ListenerFunc(func(Event) { order = append(order, "second") }))

		d.Dispatch(Event{Type: EnemySpawned})

		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("unsubscribe", func(t *testing.T) {
		d := NewDispatcher()
		a := &recorder{}
		b := &recorder{}
		subA := d.Subscribe(PointerUnavailable, a)
		d.Subscribe(PointerUnavailable, b)

		d.Unsubscribe(subA)
		d.Unsubscribe(subA)
		d.Dispatch(Event{Type: PointerUnavailable})

		assert.Empty(t, a.got)
		assert.Len(t, b.got, 1)
		assert.Equal(t, 1, d.Listeners(PointerUnavailable))
	})

	t.Run("unsubscribe during dispatch", func(t *testing.T) {
		d := NewDispatcher()
		calls := 0
		var sub Subscription
		sub = d.Subscribe(EnemyDespawned, ListenerFunc(func(Event) {
			calls++
			d.Unsubscribe(sub)
		}))
		other := &recorder{}
		d.Subscribe(EnemyDespawned, other)

		d.Dispatch(Event{Type: EnemyDespawned})
		d.Dispatch(Event{Type: EnemyDespawned})

		assert.Equal(t, 1, calls)
		assert.Len(t, other.got, 2)
	})
}
