package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/actorgame/actor"
	"github.com/plus3/actorgame/audio"
	"github.com/plus3/actorgame/debugui"
	debugui_ebiten "github.com/plus3/actorgame/debugui/ebiten"
	"github.com/plus3/actorgame/math2d"
	"github.com/plus3/actorgame/render/ebitenrender"
)

const (
	ScreenWidth  = 1024
	ScreenHeight = 768
)

func main() {
	assets := flag.String("assets", "Assets", "Directory holding Ship.png, Laser.png and Asteroid.png.")
	asteroidCount := flag.Int("asteroids", 20, "The number of asteroids spawned at start.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for asteroid placement and spin.")
	maxDeltaTime := flag.Float64("max-dt", 0.06, "Upper bound for a frame's delta time in seconds.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay.")
	colliders := flag.Bool("colliders", false, "Outline collision circles.")
	mute := flag.Bool("mute", false, "Disable sound.")
	flag.Parse()

	logger := log.Default()

	var overlay *debugui_ebiten.Overlay
	if *debug {
		backend := debugui_ebiten.NewImguiBackend("Asteroids", ScreenWidth, ScreenHeight)
		overlay = debugui_ebiten.NewOverlay(backend, debugui.NewOverlay())
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle("Asteroids")
	}
	ebiten.SetWindowClosingHandled(true)

	textures := ebitenrender.NewTextureManager(*assets)
	if generated := textures.RegisterPlaceholders(); len(generated) > 0 {
		logger.Printf("Using generated placeholders for %v", generated)
	}

	cfg := actor.DefaultConfig()
	cfg.Bounds = math2d.Vec(ScreenWidth, ScreenHeight)
	cfg.MaxDeltaTime = *maxDeltaTime
	cfg.Seed = *seed

	world := actor.NewWorld(
		actor.WithConfig(cfg),
		actor.WithTextures(textures),
		actor.WithLogger(logger),
	)
	world.CreateShip(cfg.ShipStart)
	world.SpawnAsteroids(*asteroidCount)

	if !*mute {
		cues := audio.NewCues(logger)
		if err := cues.Init(); err == nil {
			defer cues.Close()
			cues.Attach(world)
		}
	}

	game := ebitenrender.NewGame(world, ScreenWidth, ScreenHeight)
	game.ShowColliders = *colliders
	if overlay != nil {
		game.Overlay = overlay
	}

	logger.Printf("Starting with %d asteroids (seed %d)", *asteroidCount, *seed)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatalf("Game stopped: %v", err)
	}
	logger.Printf("Final score: %d", game.Score())
}
