package main

import (
	"context"
	"log"
	"math"
	"runtime"
	"time"

	"github.com/plus3/actorgame/actor"
	"github.com/plus3/actorgame/math2d"
)

type StressConfig struct {
	Duration       time.Duration
	Asteroids      int
	Ships          int
	Seed           uint64
	GCPauseMetrics bool
	Logger         *log.Logger
}

// runStress fills a World with firing ships and asteroids and runs frames as fast as
// possible until ctx is done. Destroyed asteroids are replaced every frame.
func runStress(ctx context.Context, cfg StressConfig) *Report {
	worldConfig := actor.DefaultConfig()
	worldConfig.Bounds = math2d.Vec(4096, 4096)
	worldConfig.Seed = cfg.Seed

	w := actor.NewWorld(actor.WithConfig(worldConfig))

	report := &Report{
		Duration:       cfg.Duration,
		Asteroids:      cfg.Asteroids,
		Ships:          cfg.Ships,
		GCPauseMetrics: cfg.GCPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	actor.Subscribe(w, func(actor.LaserFired) { report.LasersFired++ })
	actor.Subscribe(w, func(actor.AsteroidDestroyed) { report.AsteroidsDestroyed++ })

	logf(cfg.Logger, "Populating world with %d ships and %d asteroids...", cfg.Ships, cfg.Asteroids)
	rand := w.Rand()
	for i := range cfg.Ships {
		ship := w.CreateShip(rand.VectorInRect(0, worldConfig.Bounds.X, 0, worldConfig.Bounds.Y))
		ship.SetRotation(float64(i) * 2 * math.Pi / float64(max(cfg.Ships, 1)))
	}
	w.SpawnAsteroids(cfg.Asteroids)
	w.PressKey(actor.KeyFire)
	w.PressKey(actor.KeyTurnLeft)

	runtime.ReadMemStats(&report.MemStatsStart)

	logf(cfg.Logger, "Running simulation for %s...", cfg.Duration)
	startTime := time.Now()
	lastFrameTime := time.Now()
	asteroids := cfg.Asteroids

	actor.Subscribe(w, func(actor.AsteroidDestroyed) { asteroids-- })

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			w.SetDeltaTime(deltaTime.Seconds())
			w.RunFrame()
			if missing := cfg.Asteroids - asteroids; missing > 0 {
				w.SpawnAsteroids(missing)
				asteroids += missing
			}
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Phases = w.Stats().Phases
	report.FinalActors = w.Len()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logf(cfg.Logger, "Simulation finished.")
	return report
}

func logf(logger *log.Logger, format string, args ...any) {
	if logger != nil {
		logger.Printf(format, args...)
	}
}
