package actor

// CollisionRule reacts to overlapping circles between an actor carrying a component of
// kind A and one carrying kind B. Both actors need a CircleComponent.
type CollisionRule struct {
	A, B   Kind
	Handle func(w *World, a, b *Actor)
}

// DefaultCollisionRules returns the asteroid game rules: lasers destroy asteroids,
// ships report contact with asteroids.
func DefaultCollisionRules() []CollisionRule {
	return []CollisionRule{
		{
			A: KindLaser,
			B: KindAsteroid,
			Handle: func(w *World, laser, asteroid *Actor) {
				laser.SetActive(false)
				asteroid.SetActive(false)
				Publish(w, AsteroidDestroyed{Asteroid: asteroid.Id(), Laser: laser.Id()})
			},
		},
		{
			A: KindShip,
			B: KindAsteroid,
			Handle: func(w *World, ship, asteroid *Actor) {
				Publish(w, ShipHit{Ship: ship.Id(), Asteroid: asteroid.Id()})
			},
		},
	}
}

func (w *World) resolveCollisions() {
	actors := w.snapshot()
	for _, rule := range w.rules {
		for _, a := range actors {
			if !a.active || a.ComponentOfKind(rule.A) == nil {
				continue
			}
			circleA := GetComponent[*CircleComponent](a)
			if circleA == nil {
				continue
			}

			for _, b := range actors {
				if !a.active {
					break
				}
				if a == b || !b.active || b.ComponentOfKind(rule.B) == nil {
					continue
				}
				circleB := GetComponent[*CircleComponent](b)
				if circleB == nil || !circleA.Intersect(circleB) {
					continue
				}
				rule.Handle(w, a, b)
			}
		}
	}
}
