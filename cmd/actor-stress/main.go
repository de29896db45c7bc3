package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/profile"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	asteroidCount := flag.Int("asteroids", 2000, "The number of asteroids kept alive.")
	shipCount := flag.Int("ships", 50, "The number of ships firing lasers.")
	seed := flag.Uint64("seed", 1, "Seed for spawn positions and asteroid spin.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	profileMode := flag.String("profile", "", "Write a profile to the working directory: cpu or mem.")
	flag.Parse()

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("Unknown profile mode %q", *profileMode)
	}

	log.Println("Starting actor stress test...")

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	report := runStress(ctx, StressConfig{
		Duration:       *duration,
		Asteroids:      *asteroidCount,
		Ships:          *shipCount,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
		Logger:         log.Default(),
	})

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
