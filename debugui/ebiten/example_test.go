package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/actorgame/actor"
	"github.com/plus3/actorgame/debugui"
	debugui_ebiten "github.com/plus3/actorgame/debugui/ebiten"
	"github.com/plus3/actorgame/render/ebitenrender"
)

// Game implements ebiten.Game and draws the debug overlay over the world.
type Game struct {
	world    *actor.World
	renderer *ebitenrender.Renderer
	overlay  *debugui_ebiten.Overlay
}

func (g *Game) Update() error {
	g.world.SetDeltaTime(1.0 / 60.0)
	g.world.RunFrame()

	// ImGui frame wraps the debug windows
	g.overlay.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	g.world.Present(g.renderer)

	// Overlay on top
	g.overlay.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.overlay.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Create Ebiten window and ImGui backend
	backend := debugui_ebiten.NewImguiBackend("Actor ImGui Example", 1280, 720)

	textures := ebitenrender.NewTextureManager("assets")
	textures.RegisterPlaceholders()

	world := actor.NewWorld(actor.WithTextures(textures))
	world.CreateShip(world.Config().ShipStart)
	world.SpawnAsteroids(4)

	// Debug windows plus a custom one
	ui := debugui.NewOverlay()
	ui.Add(func() {
		imgui.Begin("Debug Window")
		imgui.Text("Hello from the actor world!")
		imgui.End()
	})

	game := &Game{
		world:    world,
		renderer: ebitenrender.NewRenderer(),
		overlay:  debugui_ebiten.NewOverlay(backend, ui),
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}

// The overlay also plugs into the ready-made ebitenrender.Game.
func Example_game() {
	backend := debugui_ebiten.NewImguiBackend("Asteroids", 1024, 768)

	world := actor.NewWorld()
	world.CreateShip(world.Config().ShipStart)

	game := ebitenrender.NewGame(world, 1024, 768)
	game.Overlay = debugui_ebiten.NewOverlay(backend, debugui.NewOverlay())

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
