package ebitenrender

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/actorgame/actor"
)

// Renderer draws sprites centred on their actor, rotated and scaled
type Renderer struct {
	target *ebiten.Image
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// SetTarget sets the image the next DrawSprite calls draw onto
func (r *Renderer) SetTarget(target *ebiten.Image) {
	r.target = target
}

func (r *Renderer) DrawSprite(tex actor.Texture, t actor.Transform) {
	texture, ok := tex.(*Texture)
	if !ok || r.target == nil {
		return
	}

	w, h := texture.Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(t.Scale.X, t.Scale.Y)
	op.GeoM.Rotate(t.Rotation)
	op.GeoM.Translate(t.Position.X, t.Position.Y)
	op.Filter = ebiten.FilterLinear

	r.target.DrawImage(texture.image, op)
}

// DrawColliders outlines the collision circle of every active actor
func (r *Renderer) DrawColliders(w *actor.World, clr color.Color) {
	if r.target == nil {
		return
	}
	for a := range w.Actors() {
		if !a.Active() {
			continue
		}
		circle := actor.GetComponent[*actor.CircleComponent](a)
		if circle == nil {
			continue
		}
		center := circle.Center()
		vector.StrokeCircle(r.target, float32(center.X), float32(center.Y), float32(circle.Radius()), 1, clr, true)
	}
}
