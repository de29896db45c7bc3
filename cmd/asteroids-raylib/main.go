package main

import (
	"flag"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/actorgame/actor"
	"github.com/plus3/actorgame/math2d"
	"github.com/plus3/actorgame/render/raylibrender"
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
	flag.Parse()

	logger := log.Default()

	rl.InitWindow(ScreenWidth, ScreenHeight, "Asteroids")
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	textures := raylibrender.NewTextureCache(*assets)
	defer textures.Unload()
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

	score := 0
	actor.Subscribe(world, func(actor.AsteroidDestroyed) { score++ })

	renderer := raylibrender.Renderer{}
	lastTime := rl.GetTime()

	for world.Running() {
		if rl.WindowShouldClose() {
			world.Shutdown()
			break
		}

		currentTime := rl.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		raylibrender.PollKeys(world)
		world.SetDeltaTime(deltaTime)
		world.RunFrame()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(20, 20, 30, 255))
		world.Present(renderer)
		raylibrender.DrawHUD(world, score)
		rl.EndDrawing()
	}

	logger.Printf("Final score: %d", score)
}
