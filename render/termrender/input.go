package termrender

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/actorgame/actor"
)

// DefaultHold is how long a key stays down after its last terminal event
const DefaultHold = 150 * time.Millisecond

// KeyFromEvent maps a terminal key event to a game key
func KeyFromEvent(ev *tcell.EventKey) (actor.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return actor.KeyForward, true
	case tcell.KeyDown:
		return actor.KeyBackward, true
	case tcell.KeyLeft:
		return actor.KeyTurnLeft, true
	case tcell.KeyRight:
		return actor.KeyTurnRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return actor.KeyForward, true
		case 's', 'S':
			return actor.KeyBackward, true
		case 'a', 'A':
			return actor.KeyTurnLeft, true
		case 'd', 'D':
			return actor.KeyTurnRight, true
		case ' ':
			return actor.KeyFire, true
		}
	}
	return 0, false
}

// IsQuit reports whether ev asks to leave the game
func IsQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'))
}

// HeldKeys emulates key-up events. Terminals only report presses and auto-repeat,
// so a key is released once no event refreshed it within the hold window.
type HeldKeys struct {
	hold      time.Duration
	deadlines map[actor.Key]time.Time
}

func NewHeldKeys(hold time.Duration) *HeldKeys {
	return &HeldKeys{
		hold:      hold,
		deadlines: make(map[actor.Key]time.Time),
	}
}

// Press marks k down until now plus the hold window
func (h *HeldKeys) Press(w *actor.World, k actor.Key, now time.Time) {
	h.deadlines[k] = now.Add(h.hold)
	w.PressKey(k)
}

// Expire releases every key whose hold window ended before now
func (h *HeldKeys) Expire(w *actor.World, now time.Time) {
	for k, deadline := range h.deadlines {
		if now.Before(deadline) {
			continue
		}
		delete(h.deadlines, k)
		w.ReleaseKey(k)
	}
}
