package ebitenrender

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/actorgame/actor"
)

// DefaultBindings maps WASD, the arrows and space to game keys
func DefaultBindings() map[ebiten.Key]actor.Key {
	return map[ebiten.Key]actor.Key{
		ebiten.KeyW:          actor.KeyForward,
		ebiten.KeyArrowUp:    actor.KeyForward,
		ebiten.KeyS:          actor.KeyBackward,
		ebiten.KeyArrowDown:  actor.KeyBackward,
		ebiten.KeyA:          actor.KeyTurnLeft,
		ebiten.KeyArrowLeft:  actor.KeyTurnLeft,
		ebiten.KeyD:          actor.KeyTurnRight,
		ebiten.KeyArrowRight: actor.KeyTurnRight,
		ebiten.KeySpace:      actor.KeyFire,
	}
}

// KeySource forwards keyboard transitions to a World
type KeySource struct {
	bindings map[ebiten.Key]actor.Key
	pressed  []ebiten.Key
	released []ebiten.Key
}

func NewKeySource(bindings map[ebiten.Key]actor.Key) *KeySource {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &KeySource{bindings: bindings}
}

// Poll reads this tick's key transitions and applies them to w
func (s *KeySource) Poll(w *actor.World) {
	s.pressed = inpututil.AppendJustPressedKeys(s.pressed[:0])
	s.released = inpututil.AppendJustReleasedKeys(s.released[:0])

	down, up := s.Translate(s.pressed, s.released, ebiten.IsKeyPressed)
	for _, k := range down {
		w.PressKey(k)
	}
	for _, k := range up {
		w.ReleaseKey(k)
	}
}

// Translate maps physical transitions to game key transitions. A game key is only
// released once none of its bound physical keys is held.
func (s *KeySource) Translate(pressed, released []ebiten.Key, held func(ebiten.Key) bool) (down, up []actor.Key) {
	for _, key := range pressed {
		if k, ok := s.bindings[key]; ok {
			down = append(down, k)
		}
	}

	for _, key := range released {
		k, ok := s.bindings[key]
		if !ok || s.anyHeld(k, held) {
			continue
		}
		up = append(up, k)
	}
	return down, up
}

func (s *KeySource) anyHeld(k actor.Key, held func(ebiten.Key) bool) bool {
	for key, bound := range s.bindings {
		if bound == k && held(key) {
			return true
		}
	}
	return false
}
