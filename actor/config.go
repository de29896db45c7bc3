package actor

import (
	"math"

	"github.com/plus3/actorgame/math2d"
)

// Config holds the World tunables
type Config struct {
	// MaxDeltaTime clamps SetDeltaTime. Zero disables clamping.
	MaxDeltaTime float64
	// Bounds is the playfield size. Ships and asteroids wrap around it; zero disables wrapping.
	Bounds math2d.Vector2
	// SweepInactive removes inactive actors at the end of every frame.
	SweepInactive bool
	// Seed drives the World's random source.
	Seed uint64

	ShipStart        math2d.Vector2
	ShipForwardSpeed float64
	ShipAngularSpeed float64
}

func DefaultConfig() Config {
	return Config{
		SweepInactive:    true,
		Seed:             1,
		ShipStart:        math2d.Vec(100, 100),
		ShipForwardSpeed: 300,
		ShipAngularSpeed: math.Pi,
	}
}
