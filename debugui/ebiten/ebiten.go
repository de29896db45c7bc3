// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/actorgame/actor"
	"github.com/plus3/actorgame/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. imgui.ini persistence is disabled.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}

// Overlay draws the debug windows on top of an ebiten game
type Overlay struct {
	Backend *ImguiBackend
	UI      *debugui.Overlay
}

func NewOverlay(backend *ImguiBackend, ui *debugui.Overlay) *Overlay {
	return &Overlay{Backend: backend, UI: ui}
}

// Update runs one ImGui frame around the debug windows
func (o *Overlay) Update(w *actor.World) {
	o.Backend.BeginFrame()
	o.UI.Render(w)
	o.Backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.Backend.Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.Backend.Layout(outsideWidth, outsideHeight)
}

// WantsKeyboard reports whether ImGui consumed keyboard input last frame
func (o *Overlay) WantsKeyboard() bool {
	return o.UI.Input.WantCaptureKeyboard
}
