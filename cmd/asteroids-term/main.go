package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/actorgame/actor"
	"github.com/plus3/actorgame/math2d"
	"github.com/plus3/actorgame/render/termrender"
)

func main() {
	asteroidCount := flag.Int("asteroids", 12, "The number of asteroids spawned at start.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for asteroid placement and spin.")
	maxDeltaTime := flag.Float64("max-dt", 0.06, "Upper bound for a frame's delta time in seconds.")
	logPath := flag.String("log", "", "Write the game log to this file; the terminal is busy drawing.")
	flag.Parse()

	logger := log.New(io.Discard, "", log.LstdFlags)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	cfg := actor.DefaultConfig()
	cfg.Bounds = math2d.Vec(1024, 768)
	cfg.MaxDeltaTime = *maxDeltaTime
	cfg.Seed = *seed

	world := actor.NewWorld(
		actor.WithConfig(cfg),
		actor.WithTextures(termrender.DefaultGlyphs()),
		actor.WithLogger(logger),
	)
	world.CreateShip(cfg.ShipStart)
	world.SpawnAsteroids(*asteroidCount)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Printf("Starting with %d asteroids (seed %d)", *asteroidCount, *seed)
	termrender.NewLoop(screen, world, cfg.Bounds).Run(ctx)
	world.Shutdown()
}
