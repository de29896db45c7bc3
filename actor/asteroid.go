package actor

// Asteroid spins at a fixed rate and drifts forward along its heading
type Asteroid struct {
	Base
	rotationSpeed float64
	sprite        *SpriteComponent
}

func NewAsteroid(rotationSpeed float64, loader TextureLoader) *Asteroid {
	return &Asteroid{
		rotationSpeed: rotationSpeed,
		sprite:        NewSpriteComponent(AsteroidTexture, DefaultDrawOrder, loader),
	}
}

func (a *Asteroid) Kind() Kind { return KindAsteroid }

func (a *Asteroid) attach(owner *Actor) {
	a.Base.attach(owner)
	a.sprite.attach(owner)
}

func (a *Asteroid) Sprite() *SpriteComponent {
	return a.sprite
}

func (a *Asteroid) RotationSpeed() float64 {
	return a.rotationSpeed
}

func (a *Asteroid) Update(dt float64) {
	owner := a.Owner()
	if owner == nil {
		return
	}

	owner.SetRotation(owner.Rotation() + a.rotationSpeed*dt)
	owner.SetPosition(owner.Position().Add(owner.Forward().Mul(AsteroidSpeed * dt)))
}
