package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/wavetd/ecs"
)

func NewSystemTimingsComponent(historyFrames int) SystemTimingsComponent {
	return SystemTimingsComponent{
		historyFrames: historyFrames,
		history:       make(map[string][]float32),
	}
}

// Render lists every system with its execution count and durations and
// plots the recent latency of each one.
func (st *SystemTimingsComponent) Render(scheduler *ecs.Scheduler) {
	if !imgui.BeginV("System Timings", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := scheduler.GetStats()
	st.record(stats)

	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))
	imgui.Text(fmt.Sprintf("Frames: %d", stats.FrameCount))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Last")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, system := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(system.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", system.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(system.LastDuration.String())
			imgui.TableNextColumn()
			imgui.Text(system.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(system.MaxDuration.String())
		}

		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Latency (us)") {
		for _, system := range stats.Systems {
			samples := st.history[system.Name]
			imgui.PlotLinesFloatPtr(system.Name, &samples[0], int32(len(samples)))
		}
		imgui.TreePop()
	}

	imgui.End()
}

// record appends the last duration of every system to its ring buffer.
func (st *SystemTimingsComponent) record(stats *ecs.SchedulerStats) {
	for _, system := range stats.Systems {
		samples, ok := st.history[system.Name]
		if !ok {
			samples = make([]float32, st.historyFrames)
			st.history[system.Name] = samples
		}
		samples[st.frameIndex] = float32(system.LastDuration.Microseconds())
	}
	st.frameIndex = (st.frameIndex + 1) % st.historyFrames
}
