package actor

import (
	"cmp"
	"context"
	"io"
	"iter"
	"log"
	"math"
	"slices"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/actorgame/math2d"
)

// World owns every actor and runs the frame pipeline: input, update, collide, cleanup.
// Rendering is driven separately by the adapter through Present.
type World struct {
	config   Config
	actors   *intmap.Map[ActorId, *Actor]
	nextId   ActorId
	rules    []CollisionRule
	commands *Commands
	events   *eventBus
	stats    *frameStats
	rand     *math2d.Rand
	textures TextureLoader
	logger   *log.Logger

	deltaTime float64
	pressed   KeySet
	running   bool
	inFrame   bool

	// actors taking part in the current frame, sorted by id
	frame   []*Actor
	missing map[string]bool
}

func NewWorld(opts ...Option) *World {
	w := &World{
		config:   DefaultConfig(),
		actors:   intmap.New[ActorId, *Actor](64),
		nextId:   1,
		rules:    DefaultCollisionRules(),
		commands: newCommands(),
		events:   newEventBus(),
		stats:    newFrameStats(),
		logger:   log.New(io.Discard, "", 0),
		running:  true,
		missing:  make(map[string]bool),
	}

	for _, opt := range opts {
		opt(w)
	}
	w.rand = math2d.NewRand(w.config.Seed)

	return w
}

func (w *World) Config() Config {
	return w.config
}

// Rand returns the World's seeded random source
func (w *World) Rand() *math2d.Rand {
	return w.rand
}

func (w *World) Logger() *log.Logger {
	return w.logger
}

// Commands returns the buffer applied during the cleanup phase
func (w *World) Commands() *Commands {
	return w.commands
}

// AddActor creates an actor and registers it under a fresh id. Actors added while a
// frame runs are reachable through Actor immediately but only join the pipeline next frame.
func (w *World) AddActor() *Actor {
	a := newActor(w.nextId, w)
	w.nextId++
	w.actors.Put(a.id, a)
	return a
}

// RemoveActor removes the actor with the given id. During a frame the removal is
// deferred to the cleanup phase. Removing an unknown id does nothing.
func (w *World) RemoveActor(id ActorId) {
	if w.inFrame {
		w.commands.Remove(id)
		return
	}
	w.removeNow(id)
}

func (w *World) removeNow(id ActorId) {
	if !w.actors.Has(id) {
		return
	}
	w.actors.Del(id)
	Publish(w, ActorRemoved{Id: id})
}

// Actor returns the live actor with the given id, or nil
func (w *World) Actor(id ActorId) *Actor {
	a, ok := w.actors.Get(id)
	if !ok {
		return nil
	}
	return a
}

// Actors iterates live actors in id order
func (w *World) Actors() iter.Seq[*Actor] {
	return func(yield func(*Actor) bool) {
		for _, a := range w.sorted() {
			if !yield(a) {
				return
			}
		}
	}
}

func (w *World) Len() int {
	return w.actors.Len()
}

func (w *World) sorted() []*Actor {
	out := make([]*Actor, 0, w.actors.Len())
	for a := range w.actors.Values() {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b *Actor) int {
		return cmp.Compare(a.id, b.id)
	})
	return out
}

// snapshot returns the actors taking part in the running frame, or every live actor outside a frame
func (w *World) snapshot() []*Actor {
	if w.inFrame {
		return w.frame
	}
	return w.sorted()
}

func (w *World) PressKey(k Key) {
	if !w.pressed.Has(k) {
		w.logger.Printf("key down: %s", k)
	}
	w.pressed = w.pressed.With(k)
}

func (w *World) ReleaseKey(k Key) {
	if w.pressed.Has(k) {
		w.logger.Printf("key up: %s", k)
	}
	w.pressed = w.pressed.Without(k)
}

func (w *World) PressedKeys() KeySet {
	return w.pressed
}

// SetDeltaTime sets the seconds the next frame advances. Negative and NaN values become zero
// and values above Config.MaxDeltaTime are clamped when a maximum is set.
func (w *World) SetDeltaTime(dt float64) {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	if w.config.MaxDeltaTime > 0 && dt > w.config.MaxDeltaTime {
		dt = w.config.MaxDeltaTime
	}
	w.deltaTime = dt
}

func (w *World) DeltaTime() float64 {
	return w.deltaTime
}

// RunFrame advances the simulation by the current delta time. It does nothing after Shutdown.
func (w *World) RunFrame() {
	if !w.running {
		return
	}

	frameStart := time.Now()
	w.inFrame = true
	w.frame = w.sorted()

	w.timed(PhaseInput, w.processInput)
	w.timed(PhaseUpdate, w.updateActors)
	w.timed(PhaseCollide, w.resolveCollisions)

	w.inFrame = false
	w.frame = nil
	w.timed(PhaseCleanup, w.cleanup)

	w.stats.frames++
	w.stats.lastFrame = time.Since(frameStart)
}

func (w *World) timed(phase Phase, fn func()) {
	start := time.Now()
	fn()
	w.stats.record(phase, time.Since(start))
}

func (w *World) processInput() {
	keys := w.pressed
	for _, a := range w.frame {
		if !a.active {
			continue
		}
		if input := GetComponent[*InputComponent](a); input != nil {
			input.ProcessInput(keys)
		}
		if keys.Has(KeyFire) {
			if ship := GetComponent[*Ship](a); ship != nil {
				ship.ShootLaser(w)
			}
		}
	}
}

func (w *World) updateActors() {
	for _, a := range w.frame {
		a.Update(w.deltaTime)
	}
}

func (w *World) cleanup() {
	w.commands.Flush(w)

	if w.config.Bounds != (math2d.Vector2{}) {
		w.wrapActors()
	}

	if w.config.SweepInactive {
		for _, a := range w.sorted() {
			if !a.active {
				w.removeNow(a.id)
			}
		}
	}
}

func (w *World) wrapActors() {
	bounds := w.config.Bounds
	for a := range w.actors.Values() {
		if a.ComponentOfKind(KindShip) == nil && a.ComponentOfKind(KindAsteroid) == nil {
			continue
		}
		a.position = math2d.Vec(
			math2d.Wrap(a.position.X, bounds.X),
			math2d.Wrap(a.position.Y, bounds.Y),
		)
	}
}

// DrawItem is one entry of the draw list
type DrawItem struct {
	Actor  *Actor
	Sprite *SpriteComponent
}

// DrawList returns the sprites of every active actor, stable sorted by draw order,
// then actor id, then attachment order.
func (w *World) DrawList() []DrawItem {
	var items []DrawItem
	for _, a := range w.sorted() {
		if !a.active {
			continue
		}
		for _, sprite := range a.Drawables() {
			items = append(items, DrawItem{Actor: a, Sprite: sprite})
		}
	}

	slices.SortStableFunc(items, func(x, y DrawItem) int {
		return cmp.Compare(x.Sprite.DrawOrder(), y.Sprite.DrawOrder())
	})
	return items
}

// Present draws the current draw list through r
func (w *World) Present(r Renderer) {
	start := time.Now()
	for _, item := range w.DrawList() {
		item.Sprite.Draw(r)
	}
	w.stats.record(PhaseOutput, time.Since(start))
}

// Stats returns a snapshot of the frame statistics
func (w *World) Stats() *FrameStats {
	return w.stats.snapshot(w.actors.Len())
}

// Run drives RunFrame from a ticker until ctx is cancelled or the World shuts down.
// The delta time of each frame is the wall time since the previous tick.
func (w *World) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for w.running {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			w.SetDeltaTime(now.Sub(lastTime).Seconds())
			lastTime = now
			w.RunFrame()
		}
	}
}

// Shutdown stops the World. It is terminal and safe to call more than once.
func (w *World) Shutdown() {
	if !w.running {
		return
	}
	w.running = false
	w.logger.Printf("world shut down after %d frames with %d actors", w.stats.frames, w.actors.Len())
}

func (w *World) Running() bool {
	return w.running
}
