// Package event is a small synchronous publish/subscribe hub used to tell
// hosts and cue players about gameplay happenings.
package event

import "github.com/plus3/wavetd/ecs"

// Type names a kind of event.
type Type string

const (
	EnemySpawned       Type = "EnemySpawned"
	EnemyDespawned     Type = "EnemyDespawned"
	TowerPlaced        Type = "TowerPlaced"
	PointerUnavailable Type = "PointerUnavailable"
)

// Event is delivered to listeners by value. Entity and the position are
// zero when the event has no subject.
type Event struct {
	Type    Type
	Entity  ecs.EntityId
	X, Y, Z float64
	Err     error
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(e Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Subscription identifies one Subscribe call.
type Subscription struct {
	typ Type
	id  uint64
}

type entry struct {
	id       uint64
	listener Listener
}

// Dispatcher fans events out to listeners in subscription order.
type Dispatcher struct {
	listeners map[Type][]entry
	nextID    uint64
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[Type][]entry),
	}
}

// Subscribe registers listener for events of type t.
func (d *Dispatcher) Subscribe(t Type, listener Listener) Subscription {
	d.nextID++
	d.listeners[t] = append(d.listeners[t], entry{id: d.nextID, listener: listener})
	return Subscription{typ: t, id: d.nextID}
}

// Unsubscribe removes a listener. Unknown subscriptions are ignored.
func (d *Dispatcher) Unsubscribe(sub Subscription) {
	entries := d.listeners[sub.typ]
	for i, e := range entries {
		if e.id == sub.id {
			d.listeners[sub.typ] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// Dispatch calls every listener of e.Type. Listeners added or removed while
// dispatching take effect for the next event.
func (d *Dispatcher) Dispatch(e Event) {
	for _, entry := range d.listeners[e.Type] {
		entry.listener.OnEvent(e)
	}
}

// Listeners returns how many listeners are subscribed to t.
func (d *Dispatcher) Listeners(t Type) int {
	return len(d.listeners[t])
}
