package termrender

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/actorgame/actor"
	"github.com/plus3/actorgame/math2d"
)

// Loop runs a World in a terminal
type Loop struct {
	Screen   tcell.Screen
	World    *actor.World
	Renderer *Renderer
	Keys     *HeldKeys
	Interval time.Duration
	ShowHUD  bool

	score int
}

// NewLoop draws w on screen, mapping a world of the given size onto the grid
func NewLoop(screen tcell.Screen, w *actor.World, size math2d.Vector2) *Loop {
	l := &Loop{
		Screen:   screen,
		World:    w,
		Renderer: NewRenderer(screen, size),
		Keys:     NewHeldKeys(DefaultHold),
		Interval: 16 * time.Millisecond,
		ShowHUD:  true,
	}
	actor.Subscribe(w, func(actor.AsteroidDestroyed) { l.score++ })
	return l
}

// Run polls terminal events on a separate goroutine and drives frames from a ticker
// until ctx is done, the World shuts down, or a quit key is pressed. The World is
// only touched from the calling goroutine.
func (l *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(l.Interval)
	defer ticker.Stop()

	quit := make(chan struct{})
	defer close(quit)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := l.Screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	lastTime := time.Now()

	for l.World.Running() {
		select {
		case <-ctx.Done():
			return

		case ev := <-events:
			l.handleEvent(ev)

		case now := <-ticker.C:
			l.Keys.Expire(l.World, now)
			l.World.SetDeltaTime(now.Sub(lastTime).Seconds())
			lastTime = now
			l.World.RunFrame()
			l.draw()
		}
	}
}

func (l *Loop) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuit(ev) {
			l.World.Shutdown()
			return
		}
		if k, ok := KeyFromEvent(ev); ok {
			l.Keys.Press(l.World, k, time.Now())
		}
	case *tcell.EventResize:
		l.Screen.Sync()
	}
}

func (l *Loop) draw() {
	l.Screen.Clear()
	l.World.Present(l.Renderer)
	if l.ShowHUD {
		l.Renderer.DrawText(0, 0, fmt.Sprintf("score %d  actors %d", l.score, l.World.Len()), tcell.StyleDefault)
	}
	l.Screen.Show()
}
