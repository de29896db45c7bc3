package actor

// InputComponent translates pressed keys into speeds on a linked MoveComponent.
// The World pumps it once per frame before the update pass; its own Update does nothing.
type InputComponent struct {
	Base
	maxForwardSpeed float64
	maxAngularSpeed float64
	move            *MoveComponent
}

func NewInputComponent(maxForwardSpeed, maxAngularSpeed float64) *InputComponent {
	return &InputComponent{
		maxForwardSpeed: maxForwardSpeed,
		maxAngularSpeed: maxAngularSpeed,
	}
}

func (c *InputComponent) Kind() Kind { return KindInput }

func (c *InputComponent) Update(float64) {}

// SetMoveComponent links the MoveComponent driven by this input. The link is never discovered automatically.
func (c *InputComponent) SetMoveComponent(move *MoveComponent) {
	c.move = move
}

func (c *InputComponent) MoveComponent() *MoveComponent {
	return c.move
}

func (c *InputComponent) MaxForwardSpeed() float64 {
	return c.maxForwardSpeed
}

func (c *InputComponent) MaxAngularSpeed() float64 {
	return c.maxAngularSpeed
}

// ProcessInput sets the linked move speeds from the pressed keys. Forward wins over
// backward and right wins over left; with neither pressed the speed drops to zero.
func (c *InputComponent) ProcessInput(keys KeySet) {
	if c.move == nil {
		return
	}

	switch {
	case keys.Has(KeyForward):
		c.move.SetForwardSpeed(c.maxForwardSpeed)
	case keys.Has(KeyBackward):
		c.move.SetForwardSpeed(-c.maxForwardSpeed)
	default:
		c.move.SetForwardSpeed(0)
	}

	switch {
	case keys.Has(KeyTurnRight):
		c.move.SetAngularSpeed(c.maxAngularSpeed)
	case keys.Has(KeyTurnLeft):
		c.move.SetAngularSpeed(-c.maxAngularSpeed)
	default:
		c.move.SetAngularSpeed(0)
	}
}
