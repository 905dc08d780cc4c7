package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/invasion/invasion"
)

// GameStatsWindow shows the player's state and the fleet.
type GameStatsWindow struct {
	game *invasion.Game
}

func NewGameStatsWindow(g *invasion.Game) *GameStatsWindow {
	return &GameStatsWindow{game: g}
}

func (w *GameStatsWindow) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 200), imgui.CondOnce)

	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	g := w.game
	stats := g.Stats()
	ship := g.Ship()

	imgui.Text(fmt.Sprintf("Session: %s", g.Session()))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Ships Left: %d", stats.ShipsLeft))
	if stats.GameActive {
		imgui.Text("State: active")
	} else {
		imgui.Text("State: game over")
	}
	imgui.Text(fmt.Sprintf("Ship: (%.1f, %.1f)", ship.X, ship.Y))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Bullets: %d / %d", g.Bullets().Len(), g.Settings().BulletsAllowed))
	imgui.Text(fmt.Sprintf("Aliens: %d", g.Fleet().Aliens.Len()))
	imgui.Text(fmt.Sprintf("Fleet Direction: %+d", g.Fleet().Direction))

	imgui.End()
}
