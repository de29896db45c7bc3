package actor

import "math"

// Gameplay tuning shared by the factories and the gameplay components.

// Asteroids
const (
	AsteroidSpeed       = 150.0 // units per second
	AsteroidRadius      = 40.0
	AsteroidMinRotation = -math.Pi / 2
	AsteroidMaxRotation = math.Pi / 2
)

// Lasers
const (
	LaserLifetime = 1.0   // seconds
	LaserSpeed    = 800.0 // units per second
	LaserRadius   = 11.0
)

// Ship
const (
	ShipLaserCooldown = 0.5 // seconds
	ShipRadius        = 30.0
)

// Textures and paint order
const (
	ShipTexture     = "Ship.png"
	LaserTexture    = "Laser.png"
	AsteroidTexture = "Asteroid.png"

	DefaultDrawOrder = 100
)
