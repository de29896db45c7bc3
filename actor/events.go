package actor

import "reflect"

// LaserFired is published when a ship spawns a laser
type LaserFired struct {
	Ship  ActorId
	Laser ActorId
}

// AsteroidDestroyed is published when a laser hits an asteroid
type AsteroidDestroyed struct {
	Asteroid ActorId
	Laser    ActorId
}

// ShipHit is published every frame a ship overlaps an asteroid
type ShipHit struct {
	Ship     ActorId
	Asteroid ActorId
}

// ActorRemoved is published after an actor leaves the World
type ActorRemoved struct {
	Id ActorId
}

type eventBus struct {
	handlers map[reflect.Type][]any
}

func newEventBus() *eventBus {
	return &eventBus{handlers: make(map[reflect.Type][]any)}
}

// Subscribe registers handler for events of type T published on w.
// Handlers run synchronously in subscription order.
func Subscribe[T any](w *World, handler func(T)) {
	t := reflect.TypeFor[T]()
	w.events.handlers[t] = append(w.events.handlers[t], handler)
}

// Publish delivers event to every handler subscribed to T
func Publish[T any](w *World, event T) {
	for _, h := range w.events.handlers[reflect.TypeFor[T]()] {
		h.(func(T))(event)
	}
}
