package ebitenrender

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/plus3/actorgame/actor"
	"golang.org/x/image/font/basicfont"
)

// Overlay is drawn over the game. The debug UI implements it.
type Overlay interface {
	Update(w *actor.World)
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
	WantsKeyboard() bool
}

// Game implements ebiten.Game on top of a World
type Game struct {
	World    *actor.World
	Renderer *Renderer
	Keys     *KeySource
	Overlay  Overlay

	Width, Height int
	ShowHUD       bool
	ShowColliders bool
	Background    color.Color

	face       *text.GoXFace
	lastUpdate time.Time
	score      int
	hits       int
}

func NewGame(w *actor.World, width, height int) *Game {
	g := &Game{
		World:      w,
		Renderer:   NewRenderer(),
		Keys:       NewKeySource(nil),
		Width:      width,
		Height:     height,
		ShowHUD:    true,
		Background: color.RGBA{20, 20, 30, 255},
		face:       text.NewGoXFace(basicfont.Face7x13),
	}

	actor.Subscribe(w, func(actor.AsteroidDestroyed) { g.score++ })
	actor.Subscribe(w, func(actor.ShipHit) { g.hits++ })
	return g
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		g.World.Shutdown()
	}
	if !g.World.Running() {
		return ebiten.Termination
	}

	now := time.Now()
	dt := 1.0 / float64(ebiten.TPS())
	if !g.lastUpdate.IsZero() {
		dt = now.Sub(g.lastUpdate).Seconds()
	}
	g.lastUpdate = now

	if g.Overlay == nil || !g.Overlay.WantsKeyboard() {
		g.Keys.Poll(g.World)
	}
	g.World.SetDeltaTime(dt)
	g.World.RunFrame()

	if g.Overlay != nil {
		g.Overlay.Update(g.World)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.Background)

	g.Renderer.SetTarget(screen)
	g.World.Present(g.Renderer)

	if g.ShowColliders {
		g.Renderer.DrawColliders(g.World, color.RGBA{120, 255, 120, 255})
	}
	if g.ShowHUD {
		g.drawHUD(screen)
	}
	if g.Overlay != nil {
		g.Overlay.Draw(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := []string{
		fmt.Sprintf("score %d  hits %d", g.score, g.hits),
		fmt.Sprintf("actors %d  fps %.0f", g.World.Len(), ebiten.ActualFPS()),
	}

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, float64(8+i*16))
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, g.face, op)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Overlay != nil {
		g.Overlay.Layout(outsideWidth, outsideHeight)
	}
	return g.Width, g.Height
}

// Score returns the number of asteroids destroyed
func (g *Game) Score() int {
	return g.score
}
