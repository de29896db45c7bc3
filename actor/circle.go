package actor

import "github.com/plus3/actorgame/math2d"

// CircleComponent is a collision circle centred on its owner
type CircleComponent struct {
	Base
	radius float64
}

func NewCircleComponent(radius float64) *CircleComponent {
	return &CircleComponent{radius: radius}
}

func (c *CircleComponent) Kind() Kind { return KindCircle }

func (c *CircleComponent) Update(float64) {}

func (c *CircleComponent) Radius() float64 {
	return c.radius
}

func (c *CircleComponent) SetRadius(radius float64) {
	c.radius = radius
}

// Center returns the owner's position, or the origin when unattached
func (c *CircleComponent) Center() math2d.Vector2 {
	if owner := c.Owner(); owner != nil {
		return owner.Position()
	}
	return math2d.Zero()
}

// Intersect reports whether the two circles overlap or touch. It is false when
// either circle has no owner.
func (c *CircleComponent) Intersect(other *CircleComponent) bool {
	if other == nil {
		return false
	}
	a, b := c.Owner(), other.Owner()
	if a == nil || b == nil {
		return false
	}

	distSq := a.Position().Sub(b.Position()).LengthSquared()
	radii := c.radius + other.radius
	return distSq <= radii*radii
}
