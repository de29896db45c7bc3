package math2d_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/plus3/actorgame/math2d"
	"github.com/stretchr/testify/assert"
)

func TestVectorAlgebra(t *testing.T) {
	a := math2d.Vec(3, 4)
	b := math2d.Vec(1, -2)

	assert.Equal(t, math2d.Vec(4, 2), a.Add(b))
	assert.Equal(t, math2d.Vec(2, 6), a.Sub(b))
	assert.Equal(t, math2d.Vec(6, 8), a.Mul(2))
	assert.Equal(t, math2d.Vec(1.5, 2), a.Div(2))
	assert.Equal(t, -5.0, a.Dot(b))
	assert.Equal(t, 5.0, a.Length())
	assert.Equal(t, 25.0, a.LengthSquared())

	// operands are untouched
	assert.Equal(t, math2d.Vec(3, 4), a)
}

func TestNormalize(t *testing.T) {
	vectors := []math2d.Vector2{
		math2d.Vec(3, 4),
		math2d.Vec(-0.001, 0.002),
		math2d.Vec(1e6, -3e5),
		math2d.Vec(0, 7),
	}

	for _, v := range vectors {
		t.Run(fmt.Sprintf("%v", v), func(t *testing.T) {
			assert.InDelta(t, 1.0, v.Normalized().Length(), 1e-5)

			inPlace := v
			inPlace.Normalize()
			assert.Equal(t, v.Normalized(), inPlace)
		})
	}

	t.Run("zero vector is a no-op", func(t *testing.T) {
		z := math2d.Zero()
		z.Normalize()
		assert.Equal(t, math2d.Zero(), z)
		assert.Equal(t, math2d.Zero(), math2d.Zero().Normalized())
		assert.False(t, math.IsNaN(z.X))
	})
}

func TestFromAngle(t *testing.T) {
	v := math2d.FromAngle(math.Pi / 2)
	assert.InDelta(t, 0.0, v.X, 1e-12)
	assert.InDelta(t, 1.0, v.Y, 1e-12)
	assert.Equal(t, math2d.Vec(1, 0), math2d.FromAngle(0))
}
