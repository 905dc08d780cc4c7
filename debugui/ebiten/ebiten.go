// Package ebiten hosts the debug overlay on the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/invasion/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. imgui.ini is not written.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: b}
}

// Update builds one ImGui frame from the overlay's windows.
func (b *ImguiBackend) Update(o *debugui.Overlay) {
	b.BeginFrame()
	o.Render()
	b.EndFrame()
}

// DrawOver draws the last built frame on top of screen.
func (b *ImguiBackend) DrawOver(screen *ebiten.Image) {
	b.Draw(screen)
}
