// Package math2d provides the 2D vector algebra and scalar helpers used by the actor runtime.
package math2d

import "math"

// Vector2 is a 2D vector value. All operations return a new value except Normalize.
type Vector2 struct {
	X, Y float64
}

// Vec creates a Vector2 from its components
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Zero returns (0, 0)
func Zero() Vector2 {
	return Vector2{}
}

// One returns (1, 1)
func One() Vector2 {
	return Vector2{X: 1, Y: 1}
}

// FromAngle returns the unit heading (cos, sin) for an angle in radians
func FromAngle(rad float64) Vector2 {
	return Vector2{X: math.Cos(rad), Y: math.Sin(rad)}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul scales the vector by s
func (v Vector2) Mul(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Div divides both components by s. Dividing by zero yields infinities, as with plain floats.
func (v Vector2) Div(s float64) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the Euclidean distance between v and o
func (v Vector2) Distance(o Vector2) float64 {
	return v.Sub(o).Length()
}

// Normalize scales v to unit length in place. The zero vector is left unchanged.
func (v *Vector2) Normalize() {
	length := v.Length()
	if length > 0 {
		v.X /= length
		v.Y /= length
	}
}

// Normalized returns a unit-length copy of v, or v itself when it is the zero vector
func (v Vector2) Normalized() Vector2 {
	n := v
	n.Normalize()
	return n
}

// Angle returns the heading of v in radians
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}
