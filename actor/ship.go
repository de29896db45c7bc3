package actor

// Ship gates laser fire behind a cooldown. It never fires on its own; the World
// calls ShootLaser while the fire key is held.
type Ship struct {
	Base
	laserCooldown      float64
	laserCooldownTimer float64
	sprite             *SpriteComponent
}

func NewShip(loader TextureLoader) *Ship {
	return &Ship{
		laserCooldown: ShipLaserCooldown,
		sprite:        NewSpriteComponent(ShipTexture, DefaultDrawOrder, loader),
	}
}

func (s *Ship) Kind() Kind { return KindShip }

func (s *Ship) attach(owner *Actor) {
	s.Base.attach(owner)
	s.sprite.attach(owner)
}

func (s *Ship) Sprite() *SpriteComponent {
	return s.sprite
}

func (s *Ship) Update(dt float64) {
	if s.laserCooldownTimer > 0 {
		s.laserCooldownTimer -= dt
	}
}

// Cooldown returns the remaining time before the next shot is allowed
func (s *Ship) Cooldown() float64 {
	if s.laserCooldownTimer < 0 {
		return 0
	}
	return s.laserCooldownTimer
}

func (s *Ship) CanShoot() bool {
	return s.laserCooldownTimer <= 0
}

// ShootLaser asks w to spawn a laser at the ship's transform when the cooldown has
// elapsed, then restarts the cooldown. It returns the new laser's id and whether it fired.
func (s *Ship) ShootLaser(w *World) (ActorId, bool) {
	if !s.CanShoot() || w == nil {
		return 0, false
	}
	owner := s.Owner()
	if owner == nil {
		return 0, false
	}

	laser := w.CreateLaser(owner.Position(), owner.Rotation())
	s.laserCooldownTimer = s.laserCooldown

	Publish(w, LaserFired{Ship: owner.Id(), Laser: laser.Id()})
	return laser.Id(), true
}
