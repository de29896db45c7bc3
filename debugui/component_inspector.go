package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/actorgame/actor"
	"github.com/plus3/actorgame/math2d"
)

// ComponentInspector edits the selected actor's transform and lists its components' fields
type ComponentInspector struct {
	selectedActorId actor.ActorId
}

func NewComponentInspector() *ComponentInspector {
	return &ComponentInspector{}
}

func (ci *ComponentInspector) Render(w *actor.World, selected actor.ActorId) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ci.selectedActorId = selected

	if ci.selectedActorId == 0 {
		imgui.Text("No actor selected")
		imgui.End()
		return
	}

	a := w.Actor(ci.selectedActorId)
	if a == nil {
		imgui.Text(fmt.Sprintf("Actor %d not found (removed)", ci.selectedActorId))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Actor ID: %d", a.Id()))
	imgui.Separator()
	ci.renderTransform(a)
	imgui.Separator()

	for i, c := range a.Components() {
		if imgui.TreeNodeStr(fmt.Sprintf("%d: %s", i, c.Kind())) {
			for _, field := range globalReflectionCache.Describe(c) {
				imgui.Text(fmt.Sprintf("%s: %s", field.Name, field.Value))
			}
			imgui.TreePop()
		}
	}

	imgui.End()
}

func (ci *ComponentInspector) renderTransform(a *actor.Actor) {
	pos := a.Position()
	x, y := float32(pos.X), float32(pos.Y)

	imgui.Text("Position:")
	imgui.SameLine()
	imgui.SetNextItemWidth(100)
	changedX := imgui.InputFloat("##posx", &x)
	imgui.SameLine()
	imgui.SetNextItemWidth(100)
	changedY := imgui.InputFloat("##posy", &y)
	if changedX || changedY {
		a.SetPosition(math2d.Vec(float64(x), float64(y)))
	}

	rot := float32(math2d.ToDeg(a.Rotation()))
	imgui.Text("Rotation:")
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
	if imgui.InputFloat("##rot", &rot) {
		a.SetRotation(math2d.ToRad(float64(rot)))
	}

	active := a.Active()
	if imgui.Checkbox("Active", &active) {
		a.SetActive(active)
	}
}
