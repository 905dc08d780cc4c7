// Package debugui draws a Dear ImGui overlay with live game, pool and
// scheduler statistics.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/invasion/invasion"
)

// Window renders one ImGui window. It runs between the backend's BeginFrame and EndFrame.
type Window interface {
	Render()
}

// WindowFunc adapts a plain function to Window.
type WindowFunc func()

func (f WindowFunc) Render() { f() }

// InputState reports whether ImGui is consuming mouse or keyboard input this frame.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is the set of debug windows drawn over the game.
type Overlay struct {
	Windows []Window
	Input   InputState
}

// NewOverlay creates the standard overlay for g: game state, frame timing and
// per-system timings.
func NewOverlay(g *invasion.Game) *Overlay {
	return &Overlay{
		Windows: []Window{
			NewGameStatsWindow(g),
			NewPerformanceStats(g, 120),
			NewSystemStatsWindow(g),
		},
	}
}

// Render updates the input capture state and draws every window.
func (o *Overlay) Render() {
	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, w := range o.Windows {
		w.Render()
	}
}
