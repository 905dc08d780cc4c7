package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/invasion/ecs"
	"github.com/plus3/invasion/invasion"
)

// Columns of the system timing table.
const (
	columnName = iota
	columnAvg
	columnMin
	columnMax
)

// SystemStatsWindow lists per-system timings of the update scheduler.
type SystemStatsWindow struct {
	game *invasion.Game
}

func NewSystemStatsWindow(g *invasion.Game) *SystemStatsWindow {
	return &SystemStatsWindow{game: g}
}

func (w *SystemStatsWindow) Render() {
	stats := w.game.SchedulerStats()

	imgui.SetNextWindowPosV(imgui.NewVec2(340, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(400, 220), imgui.CondOnce)

	if !imgui.BeginV("System Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("System Count: %d", stats.SystemCount))
	imgui.Text(fmt.Sprintf("Executions: %d", stats.TotalExecutions))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsSizingFixedFit
	if imgui.BeginTableV("Systems", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Avg (ms)")
		imgui.TableSetupColumn("Min (ms)")
		imgui.TableSetupColumn("Max (ms)")
		imgui.TableHeadersRow()

		systems := stats.Systems
		if sortSpecs := imgui.TableGetSortSpecs(); sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sortSystems(systems, int(spec.ColumnIndex()), spec.SortDirection() == imgui.SortDirectionDescending)
		}

		for _, sys := range systems {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(sys.Name)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", float64(sys.AvgDuration.Microseconds())/1000.0))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", float64(sys.MinDuration.Microseconds())/1000.0))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", float64(sys.MaxDuration.Microseconds())/1000.0))
		}
		imgui.EndTable()
	}

	imgui.End()
}

func sortSystems(systems []ecs.SystemStats, column int, descending bool) {
	sort.SliceStable(systems, func(i, j int) bool {
		left, right := systems[i], systems[j]
		if descending {
			left, right = right, left
		}

		switch column {
		case columnAvg:
			return left.AvgDuration < right.AvgDuration
		case columnMin:
			return left.MinDuration < right.MinDuration
		case columnMax:
			return left.MaxDuration < right.MaxDuration
		default:
			return left.Name < right.Name
		}
	})
}
