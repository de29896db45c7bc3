package actor

// Laser flies straight ahead and deactivates its owner when its lifetime runs out
type Laser struct {
	Base
	deathTimer   float64
	forwardSpeed float64
	sprite       *SpriteComponent
}

func NewLaser(loader TextureLoader) *Laser {
	return &Laser{
		deathTimer:   LaserLifetime,
		forwardSpeed: LaserSpeed,
		sprite:       NewSpriteComponent(LaserTexture, DefaultDrawOrder, loader),
	}
}

func (l *Laser) Kind() Kind { return KindLaser }

func (l *Laser) attach(owner *Actor) {
	l.Base.attach(owner)
	l.sprite.attach(owner)
}

func (l *Laser) Sprite() *SpriteComponent {
	return l.sprite
}

// DeathTimer returns the remaining lifetime in seconds
func (l *Laser) DeathTimer() float64 {
	return l.deathTimer
}

// Update moves the laser and flags the owner inactive in the same call that
// exhausts the timer.
func (l *Laser) Update(dt float64) {
	l.deathTimer -= dt
	expired := l.deathTimer <= 0

	owner := l.Owner()
	if owner == nil {
		return
	}

	owner.SetPosition(owner.Position().Add(owner.Forward().Mul(l.forwardSpeed * dt)))
	if expired {
		owner.SetActive(false)
	}
}
