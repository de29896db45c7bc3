// Package debugui provides Dear ImGui windows for inspecting a running World.
// Every Render method must be called between the backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/actorgame/actor"
)

// Item holds a custom Dear ImGui render function drawn with the overlay.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay groups the debug windows of one World.
type Overlay struct {
	Browser     *ActorBrowser
	Inspector   *ComponentInspector
	Performance *PerformanceStats
	Items       []Item
	Input       InputState
	Visible     bool
}

func NewOverlay() *Overlay {
	return &Overlay{
		Browser:     NewActorBrowser(100),
		Inspector:   NewComponentInspector(),
		Performance: NewPerformanceStats(120),
		Visible:     true,
	}
}

// Add registers a custom render function
func (o *Overlay) Add(render func()) {
	o.Items = append(o.Items, Item{Render: render})
}

// Render updates the input capture state and draws every window.
func (o *Overlay) Render(w *actor.World) {
	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	if !o.Visible {
		return
	}

	o.Browser.Render(w)
	o.Inspector.Render(w, o.Browser.Selected())
	o.Performance.Render(w)

	for _, item := range o.Items {
		item.Render()
	}
}
