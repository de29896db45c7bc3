package actor

import "time"

//go:generate go tool stringer -type=Phase -trimprefix=Phase

// Phase is a step of the per-frame pipeline
type Phase uint8

const (
	PhaseInput Phase = iota
	PhaseUpdate
	PhaseCollide
	PhaseCleanup
	PhaseOutput

	phaseCount
)

// FrameStats provides statistics about frame execution.
type FrameStats struct {
	Frames     int64
	ActorCount int
	LastFrame  time.Duration
	Phases     []PhaseStats
}

// PhaseStats provides execution statistics for a single pipeline phase.
type PhaseStats struct {
	Phase          Phase
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type phaseStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type frameStats struct {
	frames    int64
	lastFrame time.Duration
	phases    [phaseCount]phaseStatsInternal
}

func newFrameStats() *frameStats {
	s := &frameStats{}
	for i := range s.phases {
		s.phases[i].minDuration = time.Duration(1<<63 - 1)
	}
	return s
}

func (s *frameStats) record(phase Phase, duration time.Duration) {
	stats := &s.phases[phase]
	stats.executionCount++
	stats.lastDuration = duration
	stats.totalDuration += duration

	if duration < stats.minDuration {
		stats.minDuration = duration
	}
	if duration > stats.maxDuration {
		stats.maxDuration = duration
	}
}

func (s *frameStats) snapshot(actorCount int) *FrameStats {
	out := &FrameStats{
		Frames:     s.frames,
		ActorCount: actorCount,
		LastFrame:  s.lastFrame,
		Phases:     make([]PhaseStats, phaseCount),
	}

	for i, internal := range s.phases {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		out.Phases[i] = PhaseStats{
			Phase:          Phase(i),
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}
	return out
}
