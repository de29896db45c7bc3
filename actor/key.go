package actor

//go:generate go tool stringer -type=Key -trimprefix=Key

// Key is a logical input key. Adapters translate physical keys into these.
type Key uint8

const (
	KeyForward Key = iota
	KeyBackward
	KeyTurnLeft
	KeyTurnRight
	KeyFire

	keyCount
)

// KeySet is a set of currently pressed keys
type KeySet uint8

// Keys builds a KeySet from the given keys
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

func (s KeySet) Has(k Key) bool {
	return k < keyCount && s&(1<<k) != 0
}

func (s KeySet) With(k Key) KeySet {
	if k >= keyCount {
		return s
	}
	return s | 1<<k
}

func (s KeySet) Without(k Key) KeySet {
	if k >= keyCount {
		return s
	}
	return s &^ (1 << k)
}

// Slice returns the pressed keys in declaration order
func (s KeySet) Slice() []Key {
	keys := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		if s.Has(k) {
			keys = append(keys, k)
		}
	}
	return keys
}
