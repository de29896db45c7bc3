package actor_test

import (
	"math"
	"testing"

	"github.com/plus3/actorgame/actor"
	"github.com/plus3/actorgame/math2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveComponent(t *testing.T) {
	w := actor.NewWorld()

	t.Run("rotate then translate along new heading", func(t *testing.T) {
		a := w.AddActor()
		a.SetPosition(math2d.Vec(10, 20))
		move := actor.NewMoveComponent(math.Pi/2, 100)
		a.AddComponent(move)

		a.Update(0.5)

		rot := math.Pi / 4
		assert.InDelta(t, rot, a.Rotation(), 1e-9)
		assert.InDelta(t, 10+math.Cos(rot)*50, a.Position().X, 1e-9)
		assert.InDelta(t, 20+math.Sin(rot)*50, a.Position().Y, 1e-9)
	})

	t.Run("zero speeds leave the actor in place", func(t *testing.T) {
		a := w.AddActor()
		a.SetPosition(math2d.Vec(3, 4))
		a.AddComponent(actor.NewMoveComponent(0, 0))

		a.Update(1)
		assert.Equal(t, math2d.Vec(3, 4), a.Position())
	})
}

func TestInputComponent(t *testing.T) {
	w := actor.NewWorld()
	a := w.AddActor()
	move := actor.NewMoveComponent(0, 0)
	input := actor.NewInputComponent(300, math.Pi)
	input.SetMoveComponent(move)
	a.AddComponent(move)
	a.AddComponent(input)

	tests := []struct {
		name    string
		keys    actor.KeySet
		forward float64
		angular float64
	}{
		{"nothing", actor.Keys(), 0, 0},
		{"forward", actor.Keys(actor.KeyForward), 300, 0},
		{"backward", actor.Keys(actor.KeyBackward), -300, 0},
		{"forward wins", actor.Keys(actor.KeyForward, actor.KeyBackward), 300, 0},
		{"right", actor.Keys(actor.KeyTurnRight), 0, math.Pi},
		{"left", actor.Keys(actor.KeyTurnLeft), 0, -math.Pi},
		{"right wins", actor.Keys(actor.KeyTurnLeft, actor.KeyTurnRight), 0, math.Pi},
		{"fire only", actor.Keys(actor.KeyFire), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input.ProcessInput(tt.keys)
			assert.Equal(t, tt.forward, move.ForwardSpeed())
			assert.Equal(t, tt.angular, move.AngularSpeed())
		})
	}

	t.Run("unlinked input does nothing", func(t *testing.T) {
		unlinked := actor.NewInputComponent(300, math.Pi)
		unlinked.ProcessInput(actor.Keys(actor.KeyForward))
		assert.Nil(t, unlinked.MoveComponent())
	})
}

func TestCircleComponent(t *testing.T) {
	w := actor.NewWorld()

	place := func(x, y, radius float64) *actor.CircleComponent {
		a := w.AddActor()
		a.SetPosition(math2d.Vec(x, y))
		c := actor.NewCircleComponent(radius)
		a.AddComponent(c)
		return c
	}

	t.Run("overlap is symmetric", func(t *testing.T) {
		a := place(0, 0, 10)
		b := place(15, 0, 6)
		assert.True(t, a.Intersect(b))
		assert.True(t, b.Intersect(a))
	})

	t.Run("touching counts", func(t *testing.T) {
		a := place(0, 0, 3)
		b := place(3, 4, 2)
		assert.True(t, a.Intersect(b))
	})

	t.Run("apart", func(t *testing.T) {
		a := place(0, 0, 1)
		b := place(100, 100, 1)
		assert.False(t, a.Intersect(b))
		assert.False(t, b.Intersect(a))
	})

	t.Run("unattached never intersects", func(t *testing.T) {
		a := place(0, 0, 10)
		free := actor.NewCircleComponent(10)
		assert.False(t, a.Intersect(free))
		assert.False(t, free.Intersect(a))
		assert.Equal(t, math2d.Zero(), free.Center())
	})
}

func TestSpriteComponent(t *testing.T) {
	w := actor.NewWorld()

	t.Run("draws at owner transform", func(t *testing.T) {
		loader := newFakeLoader()
		a := w.AddActor()
		a.SetPosition(math2d.Vec(5, 6))
		a.SetRotation(1)
		sprite := actor.NewSpriteComponent("Ship.png", 10, loader)
		a.AddComponent(sprite)

		width, height := sprite.TextureSize()
		assert.Equal(t, 32, width)
		assert.Equal(t, 16, height)

		r := &recordingRenderer{}
		sprite.Draw(r)
		require.Len(t, r.calls, 1)
		assert.Equal(t, "Ship.png", r.calls[0].texture)
		assert.Equal(t, a.Transform(), r.calls[0].transform)
	})

	t.Run("texture resolved once through the cache", func(t *testing.T) {
		loader := newFakeLoader()
		actor.NewSpriteComponent("Laser.png", 0, loader)
		actor.NewSpriteComponent("Laser.png", 0, loader)
		assert.Equal(t, 1, loader.loads)
	})

	t.Run("missing texture never draws", func(t *testing.T) {
		loader := newFakeLoader("Asteroid.png")
		a := w.AddActor()
		sprite := actor.NewSpriteComponent("Asteroid.png", 0, loader)
		a.AddComponent(sprite)

		assert.False(t, sprite.HasTexture())
		width, height := sprite.TextureSize()
		assert.Zero(t, width)
		assert.Zero(t, height)

		r := &recordingRenderer{}
		sprite.Draw(r)
		assert.Empty(t, r.calls)
	})

	t.Run("unattached never draws", func(t *testing.T) {
		sprite := actor.NewSpriteComponent("Ship.png", 0, newFakeLoader())
		r := &recordingRenderer{}
		sprite.Draw(r)
		sprite.Draw(nil)
		assert.Empty(t, r.calls)
	})
}

func TestAsteroid(t *testing.T) {
	w := actor.NewWorld()
	a := w.AddActor()
	a.SetRotation(0)
	asteroid := actor.NewAsteroid(math.Pi/2, nil)
	a.AddComponent(asteroid)

	a.Update(1)

	assert.InDelta(t, math.Pi/2, a.Rotation(), 1e-9)
	assert.InDelta(t, 0, a.Position().X, 1e-9)
	assert.InDelta(t, actor.AsteroidSpeed, a.Position().Y, 1e-9)
	assert.Equal(t, actor.AsteroidTexture, asteroid.Sprite().TextureName())
}

func TestLaser(t *testing.T) {
	t.Run("expires on the tick that exhausts the timer", func(t *testing.T) {
		w := actor.NewWorld()
		a := w.AddActor()
		laser := actor.NewLaser(nil)
		a.AddComponent(laser)

		for range 62 {
			a.Update(0.016)
		}
		assert.True(t, a.Active())
		assert.InDelta(t, 0.008, laser.DeathTimer(), 1e-9)

		a.Update(0.016)
		assert.False(t, a.Active())
		assert.InDelta(t, 63*0.016*actor.LaserSpeed, a.Position().X, 1e-6)
	})

	t.Run("flies along its heading", func(t *testing.T) {
		w := actor.NewWorld()
		a := w.AddActor()
		a.SetRotation(math.Pi / 2)
		a.AddComponent(actor.NewLaser(nil))

		a.Update(0.5)
		assert.InDelta(t, 0, a.Position().X, 1e-9)
		assert.InDelta(t, 400, a.Position().Y, 1e-9)
	})

	t.Run("unattached laser only ticks", func(t *testing.T) {
		laser := actor.NewLaser(nil)
		laser.Update(0.25)
		assert.Equal(t, 0.75, laser.DeathTimer())
	})
}

func TestShip(t *testing.T) {
	t.Run("cooldown gates fire", func(t *testing.T) {
		w := actor.NewWorld()
		a := w.AddActor()
		a.SetPosition(math2d.Vec(7, 8))
		a.SetRotation(0.5)
		ship := actor.NewShip(nil)
		a.AddComponent(ship)

		id, fired := ship.ShootLaser(w)
		require.True(t, fired)
		laser := w.Actor(id)
		require.NotNil(t, laser)
		assert.Equal(t, a.Position(), laser.Position())
		assert.Equal(t, a.Rotation(), laser.Rotation())
		assert.True(t, actor.HasComponent[*actor.Laser](laser))
		assert.True(t, actor.HasComponent[*actor.CircleComponent](laser))

		_, fired = ship.ShootLaser(w)
		assert.False(t, fired)

		a.Update(0.25)
		assert.False(t, ship.CanShoot())
		assert.Equal(t, 0.25, ship.Cooldown())

		a.Update(0.25)
		assert.True(t, ship.CanShoot())

		_, fired = ship.ShootLaser(w)
		assert.True(t, fired)
		assert.Equal(t, 3, w.Len())
	})

	t.Run("timer stops at zero", func(t *testing.T) {
		w := actor.NewWorld()
		a := w.AddActor()
		ship := actor.NewShip(nil)
		a.AddComponent(ship)

		a.Update(10)
		assert.Equal(t, 0.0, ship.Cooldown())
		assert.True(t, ship.CanShoot())
	})

	t.Run("unattached ship cannot fire", func(t *testing.T) {
		w := actor.NewWorld()
		_, fired := actor.NewShip(nil).ShootLaser(w)
		assert.False(t, fired)
		assert.Equal(t, 0, w.Len())
	})
}
