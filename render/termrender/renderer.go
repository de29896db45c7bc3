package termrender

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/actorgame/actor"
	"github.com/plus3/actorgame/math2d"
)

// Renderer scales world coordinates into the screen's cell grid
type Renderer struct {
	screen tcell.Screen
	world  math2d.Vector2
}

// NewRenderer draws onto screen, mapping a world of the given size onto the whole grid
func NewRenderer(screen tcell.Screen, world math2d.Vector2) *Renderer {
	return &Renderer{screen: screen, world: world}
}

// Cell returns the grid cell for a world position and whether it is on screen
func (r *Renderer) Cell(pos math2d.Vector2) (int, int, bool) {
	cols, rows := r.screen.Size()
	if r.world.X <= 0 || r.world.Y <= 0 || cols == 0 || rows == 0 {
		return 0, 0, false
	}

	x := int(pos.X / r.world.X * float64(cols))
	y := int(pos.Y / r.world.Y * float64(rows))
	if pos.X < 0 || pos.Y < 0 || x >= cols || y >= rows {
		return x, y, false
	}
	return x, y, true
}

func (r *Renderer) DrawSprite(tex actor.Texture, t actor.Transform) {
	glyph, ok := tex.(*Glyph)
	if !ok {
		return
	}
	x, y, visible := r.Cell(t.Position)
	if !visible {
		return
	}
	r.screen.SetContent(x, y, glyph.RuneFor(t.Rotation), nil, glyph.Style)
}

// DrawText writes s starting at column x of row y
func (r *Renderer) DrawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
