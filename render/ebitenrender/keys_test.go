package ebitenrender_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/actorgame/actor"
	"github.com/plus3/actorgame/render/ebitenrender"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	s := ebitenrender.NewKeySource(nil)
	nothingHeld := func(ebiten.Key) bool { return false }

	t.Run("press", func(t *testing.T) {
		down, up := s.Translate([]ebiten.Key{ebiten.KeyW, ebiten.KeySpace, ebiten.KeyQ}, nil, nothingHeld)
		assert.ElementsMatch(t, []actor.Key{actor.KeyForward, actor.KeyFire}, down)
		assert.Empty(t, up)
	})

	t.Run("release", func(t *testing.T) {
		down, up := s.Translate(nil, []ebiten.Key{ebiten.KeyArrowLeft}, nothingHeld)
		assert.Empty(t, down)
		assert.Equal(t, []actor.Key{actor.KeyTurnLeft}, up)
	})

	t.Run("release while another binding is held", func(t *testing.T) {
		held := func(k ebiten.Key) bool { return k == ebiten.KeyArrowUp }
		_, up := s.Translate(nil, []ebiten.Key{ebiten.KeyW}, held)
		assert.Empty(t, up)
	})

	t.Run("custom bindings", func(t *testing.T) {
		custom := ebitenrender.NewKeySource(map[ebiten.Key]actor.Key{ebiten.KeyJ: actor.KeyFire})
		down, _ := custom.Translate([]ebiten.Key{ebiten.KeyJ, ebiten.KeySpace}, nil, nothingHeld)
		assert.Equal(t, []actor.Key{actor.KeyFire}, down)
	})
}

func TestDefaultBindings(t *testing.T) {
	bindings := ebitenrender.DefaultBindings()

	counts := make(map[actor.Key]int)
	for _, k := range bindings {
		counts[k]++
	}
	assert.Equal(t, 2, counts[actor.KeyForward])
	assert.Equal(t, 2, counts[actor.KeyTurnRight])
	assert.Equal(t, 1, counts[actor.KeyFire])
}
