package actor

import (
	"math"

	"github.com/plus3/actorgame/math2d"
)

// CreateLaser spawns a laser actor at pos heading along rot
func (w *World) CreateLaser(pos math2d.Vector2, rot float64) *Actor {
	a := w.AddActor()
	a.SetPosition(pos)
	a.SetRotation(rot)

	laser := NewLaser(w.textures)
	a.AddComponent(laser)
	a.AddComponent(NewCircleComponent(LaserRadius))

	w.noteTexture(laser.Sprite())
	return a
}

// CreateAsteroid spawns an asteroid with a random rotation speed
func (w *World) CreateAsteroid(pos math2d.Vector2, rot float64) *Actor {
	a := w.AddActor()
	a.SetPosition(pos)
	a.SetRotation(rot)

	asteroid := NewAsteroid(w.rand.FloatRange(AsteroidMinRotation, AsteroidMaxRotation), w.textures)
	a.AddComponent(asteroid)
	a.AddComponent(NewCircleComponent(AsteroidRadius))

	w.noteTexture(asteroid.Sprite())
	return a
}

// CreateShip spawns the player ship: ship, move, linked input and circle.
func (w *World) CreateShip(pos math2d.Vector2) *Actor {
	a := w.AddActor()
	a.SetPosition(pos)

	ship := NewShip(w.textures)
	move := NewMoveComponent(0, 0)
	input := NewInputComponent(w.config.ShipForwardSpeed, w.config.ShipAngularSpeed)
	input.SetMoveComponent(move)

	a.AddComponent(ship)
	a.AddComponent(move)
	a.AddComponent(input)
	a.AddComponent(NewCircleComponent(ShipRadius))

	w.noteTexture(ship.Sprite())
	return a
}

// SpawnAsteroids creates n asteroids at random positions and headings inside
// Config.Bounds, or around the origin when no bounds are set.
func (w *World) SpawnAsteroids(n int) []*Actor {
	bounds := w.config.Bounds
	if bounds == (math2d.Vector2{}) {
		bounds = math2d.Vec(1024, 768)
	}

	out := make([]*Actor, 0, n)
	for range n {
		pos := w.rand.VectorInRect(0, bounds.X, 0, bounds.Y)
		rot := w.rand.FloatRange(-math.Pi, math.Pi)
		out = append(out, w.CreateAsteroid(pos, rot))
	}
	return out
}

func (w *World) noteTexture(sprite *SpriteComponent) {
	if sprite.HasTexture() || w.missing[sprite.TextureName()] {
		return
	}
	w.missing[sprite.TextureName()] = true
	w.logger.Printf("texture %q unavailable, sprite will not be drawn", sprite.TextureName())
}
