package actor

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind is the closed set of component variants known to the runtime.
type Kind uint8

const (
	KindMove Kind = iota
	KindInput
	KindCircle
	KindSprite
	KindShip
	KindLaser
	KindAsteroid
)
