package actor

import "fmt"

// Component is a behavior unit attached to exactly one Actor.
// Implementations embed Base, which provides owner resolution and the attach hook.
type Component interface {
	Kind() Kind
	// Start is called once, right after the component is attached to an actor
	Start()
	// Update advances the component by dt seconds. It is a no-op while unattached.
	Update(dt float64)
	// Owner resolves the owning actor, or nil when unattached or when the owner was removed
	Owner() *Actor

	attach(owner *Actor)
}

// Drawable is implemented by components that expose a sprite to the render pass.
// Gameplay components return the sprite they own.
type Drawable interface {
	Sprite() *SpriteComponent
}

// Base holds the owner handle for a component. The handle is resolved through the
// World arena on every access, so a component never holds a stale actor pointer.
type Base struct {
	owner ActorId
	world *World
}

func (b *Base) Start() {}

func (b *Base) Owner() *Actor {
	if b.world == nil || b.owner == 0 {
		return nil
	}
	return b.world.Actor(b.owner)
}

// OwnerId returns the owner's id, or 0 when unattached
func (b *Base) OwnerId() ActorId {
	return b.owner
}

func (b *Base) attach(owner *Actor) {
	if b.owner != 0 {
		panic(fmt.Sprintf("component already attached to actor %d", b.owner))
	}
	b.owner = owner.id
	b.world = owner.world
}

// GetComponent returns the first component attached to a that has type T, in attachment
// order, or the zero value of T. T may also be an interface such as Drawable.
func GetComponent[T any](a *Actor) T {
	var zero T
	if a == nil {
		return zero
	}
	for _, c := range a.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// HasComponent reports whether a has at least one component of type T
func HasComponent[T any](a *Actor) bool {
	if a == nil {
		return false
	}
	for _, c := range a.components {
		if _, ok := c.(T); ok {
			return true
		}
	}
	return false
}
