package ebitenrender

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/actorgame/actor"
)

var (
	shipColor     = color.RGBA{179, 229, 252, 255}
	laserColor    = color.RGBA{255, 179, 186, 255}
	asteroidColor = color.RGBA{169, 169, 169, 255}
)

// RegisterPlaceholders generates simple shapes for the gameplay textures that
// could not be loaded from disk. It returns the names it generated.
func (m *TextureManager) RegisterPlaceholders() []string {
	placeholders := []struct {
		name string
		draw func() *ebiten.Image
	}{
		{actor.ShipTexture, shipImage},
		{actor.LaserTexture, laserImage},
		{actor.AsteroidTexture, asteroidImage},
	}

	var generated []string
	for _, p := range placeholders {
		if _, err := m.LoadTexture(p.name); err == nil {
			continue
		}
		m.Register(p.name, p.draw())
		generated = append(generated, p.name)
	}
	return generated
}

// ship points along +X, the zero heading
func shipImage() *ebiten.Image {
	size := float32(actor.ShipRadius * 2)
	img := ebiten.NewImage(int(size), int(size))
	vector.StrokeLine(img, 2, 2, size-2, size/2, 2, shipColor, true)
	vector.StrokeLine(img, size-2, size/2, 2, size-2, 2, shipColor, true)
	vector.StrokeLine(img, 2, size-2, size/4, size/2, 2, shipColor, true)
	vector.StrokeLine(img, size/4, size/2, 2, 2, 2, shipColor, true)
	return img
}

func laserImage() *ebiten.Image {
	img := ebiten.NewImage(24, 4)
	vector.DrawFilledRect(img, 0, 0, 24, 4, laserColor, false)
	return img
}

func asteroidImage() *ebiten.Image {
	size := float32(actor.AsteroidRadius * 2)
	img := ebiten.NewImage(int(size), int(size))
	vector.DrawFilledCircle(img, size/2, size/2, size/2-1, asteroidColor, true)
	return img
}
