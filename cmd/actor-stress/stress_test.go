package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 5 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestRunStress(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	report := runStress(ctx, StressConfig{
		Duration:       200 * time.Millisecond,
		Asteroids:      100,
		Ships:          5,
		Seed:           3,
		GCPauseMetrics: true,
	})

	assert.Greater(t, report.TotalUpdates, int64(0))
	assert.Equal(t, 5, report.LasersFired, "every ship fires once before its cooldown")
	assert.Len(t, report.Phases, 5)
	assert.GreaterOrEqual(t, report.FinalActors, 105)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	assert.Contains(t, buf.String(), "# Actor Stress Test Report")
	assert.Contains(t, buf.String(), "**Input:**")
	assert.Contains(t, buf.String(), "## GC Pause Durations")
}
