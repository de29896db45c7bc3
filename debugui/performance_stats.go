package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/actorgame/actor"
)

// PerformanceStats shows per-phase timings and a frame time graph
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	lastFrame     int64
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

// Record appends the last frame duration once per simulated frame
func (ps *PerformanceStats) Record(stats *actor.FrameStats) {
	if stats.Frames == ps.lastFrame {
		return
	}
	ps.lastFrame = stats.Frames
	ps.frameHistory[ps.frameIndex] = float32(stats.LastFrame.Seconds() * 1000.0)
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

// Average returns the mean of the recorded frame times in milliseconds
func (ps *PerformanceStats) Average() float32 {
	var total float32
	for _, ft := range ps.frameHistory {
		total += ft
	}
	return total / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render(w *actor.World) {
	stats := w.Stats()
	ps.Record(stats)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Actors: %d", stats.ActorCount))
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.3f ms", ps.Average()))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Phases") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PhaseStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Phase")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Min")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, phase := range stats.Phases {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(phase.Phase.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", phase.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(phase.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(phase.MinDuration.String())
				imgui.TableNextColumn()
				imgui.Text(phase.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
