package actor

// MoveComponent turns and drives its owner every frame
type MoveComponent struct {
	Base
	angularSpeed float64 // radians per second
	forwardSpeed float64 // units per second
}

func NewMoveComponent(angularSpeed, forwardSpeed float64) *MoveComponent {
	return &MoveComponent{
		angularSpeed: angularSpeed,
		forwardSpeed: forwardSpeed,
	}
}

func (m *MoveComponent) Kind() Kind { return KindMove }

// Update rotates first and then translates along the new heading.
func (m *MoveComponent) Update(dt float64) {
	owner := m.Owner()
	if owner == nil {
		return
	}

	owner.SetRotation(owner.Rotation() + m.angularSpeed*dt)
	owner.SetPosition(owner.Position().Add(owner.Forward().Mul(m.forwardSpeed * dt)))
}

func (m *MoveComponent) AngularSpeed() float64 {
	return m.angularSpeed
}

func (m *MoveComponent) SetAngularSpeed(speed float64) {
	m.angularSpeed = speed
}

func (m *MoveComponent) ForwardSpeed() float64 {
	return m.forwardSpeed
}

func (m *MoveComponent) SetForwardSpeed(speed float64) {
	m.forwardSpeed = speed
}
