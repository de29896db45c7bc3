package actor

import "github.com/plus3/actorgame/math2d"

// Transform is the spatial state of an actor as seen by renderers
type Transform struct {
	Position math2d.Vector2
	Rotation float64
	Scale    math2d.Vector2
}

// Actor is a positioned entity that owns an ordered list of components.
// Actors are created and destroyed only by their World.
type Actor struct {
	id    ActorId
	world *World

	position math2d.Vector2
	rotation float64
	scale    math2d.Vector2
	active   bool

	components []Component
	pending    []Component
	updating   bool
}

func newActor(id ActorId, world *World) *Actor {
	return &Actor{
		id:     id,
		world:  world,
		scale:  math2d.One(),
		active: true,
	}
}

func (a *Actor) Id() ActorId {
	return a.id
}

// World returns the world that created the actor
func (a *Actor) World() *World {
	return a.world
}

// Update runs every component's Update in attachment order. Inactive actors are skipped.
// Components added while the pass is running are appended once it finishes.
func (a *Actor) Update(dt float64) {
	if !a.active {
		return
	}

	a.updating = true
	for _, c := range a.components {
		c.Update(dt)
	}
	a.updating = false

	if len(a.pending) > 0 {
		pending := a.pending
		a.pending = nil
		for _, c := range pending {
			a.components = append(a.components, c)
			c.Start()
		}
	}
}

// AddComponent attaches c to the actor. Attaching a component twice panics.
func (a *Actor) AddComponent(c Component) {
	if c == nil {
		panic("cannot attach a nil component")
	}
	c.attach(a)

	if a.updating {
		a.pending = append(a.pending, c)
		return
	}
	a.components = append(a.components, c)
	c.Start()
}

// Components returns a copy of the attached components in attachment order
func (a *Actor) Components() []Component {
	out := make([]Component, len(a.components))
	copy(out, a.components)
	return out
}

// ComponentOfKind returns the first component of kind k, or nil
func (a *Actor) ComponentOfKind(k Kind) Component {
	for _, c := range a.components {
		if c.Kind() == k {
			return c
		}
	}
	return nil
}

// Drawables returns the sprites exposed by the actor's components in attachment order
func (a *Actor) Drawables() []*SpriteComponent {
	var sprites []*SpriteComponent
	for _, c := range a.components {
		if d, ok := c.(Drawable); ok {
			if sprite := d.Sprite(); sprite != nil {
				sprites = append(sprites, sprite)
			}
		}
	}
	return sprites
}

func (a *Actor) Position() math2d.Vector2 {
	return a.position
}

func (a *Actor) SetPosition(pos math2d.Vector2) {
	a.position = pos
}

// Rotation returns the heading in radians
func (a *Actor) Rotation() float64 {
	return a.rotation
}

func (a *Actor) SetRotation(rot float64) {
	a.rotation = rot
}

func (a *Actor) Scale() math2d.Vector2 {
	return a.scale
}

func (a *Actor) SetScale(scale math2d.Vector2) {
	a.scale = scale
}

func (a *Actor) Active() bool {
	return a.active
}

// SetActive flags the actor. Inactive actors are not updated, not drawn, and are
// removed by the World at the end of the frame when sweeping is enabled.
func (a *Actor) SetActive(active bool) {
	a.active = active
}

// Forward returns the unit heading for the current rotation
func (a *Actor) Forward() math2d.Vector2 {
	return math2d.FromAngle(a.rotation)
}

func (a *Actor) Transform() Transform {
	return Transform{
		Position: a.position,
		Rotation: a.rotation,
		Scale:    a.scale,
	}
}
