package math2d

import (
	"math"
	"math/rand/v2"
)

// Rand is a seeded random source for gameplay values. A World owns one so that
// runs with the same seed spawn identical asteroids.
type Rand struct {
	r *rand.Rand
}

// NewRand creates a Rand from a seed
func NewRand(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

// FloatRange returns a value uniformly drawn from [min, max)
func (r *Rand) FloatRange(min, max float64) float64 {
	return min + r.r.Float64()*(max-min)
}

// IntRange returns a value uniformly drawn from [min, max]
func (r *Rand) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.r.IntN(max-min+1)
}

// Float returns a value in [-1, 1)
func (r *Rand) Float() float64 {
	return r.FloatRange(-1, 1)
}

// Vector returns a unit vector pointing in a random direction
func (r *Rand) Vector() Vector2 {
	return FromAngle(r.FloatRange(0, 2*math.Pi))
}

func (r *Rand) VectorWithLength(length float64) Vector2 {
	return r.Vector().Mul(length)
}

// VectorInRect returns a point uniformly drawn from the rectangle
func (r *Rand) VectorInRect(minX, maxX, minY, maxY float64) Vector2 {
	return Vector2{
		X: r.FloatRange(minX, maxX),
		Y: r.FloatRange(minY, maxY),
	}
}
