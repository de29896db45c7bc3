package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/actorgame/actor"
)

type ActorInfo struct {
	ID             actor.ActorId
	Active         bool
	Kinds          []string
	ComponentCount int
}

type actorBrowserCache struct {
	actors        []ActorInfo
	lastFrame     int64
	sortColumn    int
	sortAscending bool
}

// ActorBrowser lists the World's actors in a sortable, filterable table
type ActorBrowser struct {
	cache            *actorBrowserCache
	selectedActorId  actor.ActorId
	filterText       string
	maxActorsPerPage int
	currentPage      int
}

func NewActorBrowser(maxActorsPerPage int) *ActorBrowser {
	return &ActorBrowser{
		cache: &actorBrowserCache{
			lastFrame:     -1,
			sortColumn:    0,
			sortAscending: true,
		},
		maxActorsPerPage: maxActorsPerPage,
	}
}

func (ab *ActorBrowser) Render(w *actor.World) {
	if !imgui.BeginV("Actor Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ab.rebuildCacheIfNeeded(w)

	imgui.InputTextWithHint("##search", "Search...", &ab.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		ab.filterText = ""
	}

	filtered := FilterActors(ab.cache.actors, ab.filterText)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ActorTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Actor ID")
		imgui.TableSetupColumn("Active")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			ab.cache.sortColumn = int(spec.ColumnIndex())
			ab.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			SortActors(ab.cache.actors, ab.cache.sortColumn, ab.cache.sortAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		startIdx := ab.currentPage * ab.maxActorsPerPage
		endIdx := min(startIdx+ab.maxActorsPerPage, len(filtered))

		for i := startIdx; i < endIdx; i++ {
			info := filtered[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := ab.selectedActorId == info.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", info.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				ab.selectedActorId = info.ID
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%t", info.Active))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(info.Kinds, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.ComponentCount))
		}

		imgui.EndTable()
	}

	if len(filtered) > ab.maxActorsPerPage {
		totalPages := (len(filtered) + ab.maxActorsPerPage - 1) / ab.maxActorsPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d actors)", ab.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && ab.currentPage > 0 {
			ab.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && ab.currentPage < totalPages-1 {
			ab.currentPage++
		}
	} else {
		ab.currentPage = 0
		imgui.Text(fmt.Sprintf("Total: %d actors", len(filtered)))
	}

	imgui.End()
}

// actors come and go every frame; the table is rebuilt once per frame at most
func (ab *ActorBrowser) rebuildCacheIfNeeded(w *actor.World) {
	frame := w.Stats().Frames
	if ab.cache.actors != nil && ab.cache.lastFrame == frame {
		return
	}
	ab.cache.lastFrame = frame
	ab.cache.actors = CollectActors(w)
	SortActors(ab.cache.actors, ab.cache.sortColumn, ab.cache.sortAscending)
}

// Selected returns the selected actor id, or 0
func (ab *ActorBrowser) Selected() actor.ActorId {
	return ab.selectedActorId
}

func (ab *ActorBrowser) Select(id actor.ActorId) {
	ab.selectedActorId = id
}

// CollectActors snapshots every live actor in id order
func CollectActors(w *actor.World) []ActorInfo {
	infos := make([]ActorInfo, 0, w.Len())
	for a := range w.Actors() {
		components := a.Components()
		kinds := make([]string, len(components))
		for i, c := range components {
			kinds[i] = c.Kind().String()
		}
		infos = append(infos, ActorInfo{
			ID:             a.Id(),
			Active:         a.Active(),
			Kinds:          kinds,
			ComponentCount: len(components),
		})
	}
	return infos
}

// SortActors orders infos by column: 0 id, 1 active, 2 kinds, 3 component count
func SortActors(infos []ActorInfo, column int, ascending bool) {
	less := func(a, b ActorInfo) bool {
		switch column {
		case 1:
			return !a.Active && b.Active
		case 2:
			return strings.Join(a.Kinds, ",") < strings.Join(b.Kinds, ",")
		case 3:
			return a.ComponentCount < b.ComponentCount
		default:
			return a.ID < b.ID
		}
	}

	sort.SliceStable(infos, func(i, j int) bool {
		if !ascending {
			return less(infos[j], infos[i])
		}
		return less(infos[i], infos[j])
	})
}

// FilterActors keeps the actors whose id or component kinds contain text, ignoring case
func FilterActors(infos []ActorInfo, text string) []ActorInfo {
	if text == "" {
		return infos
	}

	filtered := make([]ActorInfo, 0, len(infos))
	filterLower := strings.ToLower(text)

	for _, info := range infos {
		idStr := fmt.Sprintf("%d", info.ID)
		kindsStr := strings.ToLower(strings.Join(info.Kinds, " "))

		if !strings.Contains(idStr, filterLower) && !strings.Contains(kindsStr, filterLower) {
			continue
		}
		filtered = append(filtered, info)
	}
	return filtered
}
