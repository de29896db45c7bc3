package ebitenrender_test

import (
	"testing"

	"github.com/plus3/actorgame/actor"
	"github.com/plus3/actorgame/render/ebitenrender"
	"github.com/stretchr/testify/assert"
)

func TestTextureManagerMissing(t *testing.T) {
	m := ebitenrender.NewTextureManager(t.TempDir())

	tex, err := m.LoadTexture(actor.ShipTexture)
	assert.Nil(t, tex)
	assert.ErrorIs(t, err, actor.ErrTextureNotFound)

	_, ok := m.Texture(actor.ShipTexture)
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())

	// sprites built against the manager stay invisible
	sprite := actor.NewSpriteComponent(actor.ShipTexture, 0, m)
	assert.False(t, sprite.HasTexture())
}
