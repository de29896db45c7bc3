package debugui_test

import (
	"testing"
	"time"

	"github.com/plus3/actorgame/actor"
	"github.com/plus3/actorgame/debugui"
	"github.com/plus3/actorgame/math2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	cache := debugui.NewReflectionCache()

	t.Run("unexported fields are formatted", func(t *testing.T) {
		fields := cache.Describe(actor.NewMoveComponent(1.5, 300))
		assert.Equal(t, []debugui.FieldValue{
			{Name: "angularSpeed", Value: "1.500"},
			{Name: "forwardSpeed", Value: "300.000"},
		}, fields)
	})

	t.Run("pointers and interfaces", func(t *testing.T) {
		fields := cache.Describe(actor.NewLaser(nil))
		require.Len(t, fields, 3)
		assert.Equal(t, debugui.FieldValue{Name: "deathTimer", Value: "1.000"}, fields[0])
		assert.Equal(t, debugui.FieldValue{Name: "sprite", Value: "*actor.SpriteComponent"}, fields[2])

		sprite := cache.Describe(actor.NewSpriteComponent("Laser.png", 100, nil))
		assert.Equal(t, []debugui.FieldValue{
			{Name: "textureName", Value: `"Laser.png"`},
			{Name: "drawOrder", Value: "100"},
			{Name: "texture", Value: "nil"},
		}, sprite)
	})

	t.Run("embedded base is skipped and fields are cached", func(t *testing.T) {
		ship := actor.NewShip(nil)
		first := cache.Describe(ship)
		for _, f := range first {
			assert.NotEqual(t, "Base", f.Name)
		}
		assert.Equal(t, first, cache.Describe(ship))
	})
}

func newWorld() *actor.World {
	w := actor.NewWorld()
	w.CreateShip(math2d.Vec(10, 10))
	w.CreateAsteroid(math2d.Vec(500, 500), 0)
	laser := w.CreateLaser(math2d.Vec(900, 900), 0)
	laser.SetActive(false)
	return w
}

func TestCollectActors(t *testing.T) {
	infos := debugui.CollectActors(newWorld())
	require.Len(t, infos, 3)

	assert.Equal(t, actor.ActorId(1), infos[0].ID)
	assert.Equal(t, []string{"Ship", "Move", "Input", "Circle"}, infos[0].Kinds)
	assert.Equal(t, 4, infos[0].ComponentCount)
	assert.True(t, infos[0].Active)

	assert.Equal(t, []string{"Laser", "Circle"}, infos[2].Kinds)
	assert.False(t, infos[2].Active)
}

func TestSortAndFilterActors(t *testing.T) {
	infos := debugui.CollectActors(newWorld())

	t.Run("by component count", func(t *testing.T) {
		debugui.SortActors(infos, 3, false)
		assert.Equal(t, actor.ActorId(1), infos[0].ID)
	})

	t.Run("by active", func(t *testing.T) {
		debugui.SortActors(infos, 1, true)
		assert.False(t, infos[0].Active)
	})

	t.Run("by id", func(t *testing.T) {
		debugui.SortActors(infos, 0, true)
		assert.Equal(t, []actor.ActorId{1, 2, 3}, []actor.ActorId{infos[0].ID, infos[1].ID, infos[2].ID})
	})

	t.Run("filter", func(t *testing.T) {
		assert.Len(t, debugui.FilterActors(infos, ""), 3)

		asteroids := debugui.FilterActors(infos, "ASTEROID")
		require.Len(t, asteroids, 1)
		assert.Equal(t, actor.ActorId(2), asteroids[0].ID)

		circles := debugui.FilterActors(infos, "circle")
		assert.Len(t, circles, 3)

		byId := debugui.FilterActors(infos, "3")
		require.Len(t, byId, 1)
		assert.Equal(t, actor.ActorId(3), byId[0].ID)
	})
}

func TestPerformanceStatsRecord(t *testing.T) {
	ps := debugui.NewPerformanceStats(4)

	ps.Record(&actor.FrameStats{Frames: 1, LastFrame: 4 * time.Millisecond})
	ps.Record(&actor.FrameStats{Frames: 1, LastFrame: 4 * time.Millisecond})
	ps.Record(&actor.FrameStats{Frames: 2, LastFrame: 8 * time.Millisecond})

	assert.InDelta(t, 3.0, ps.Average(), 1e-6)
}
