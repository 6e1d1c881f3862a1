package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"snek/internal/game"
)

// DefaultKeyTimeout is how long a key counts as held after its last event.
// Terminals send repeats while a key is down and nothing on release.
const DefaultKeyTimeout = 150 * time.Millisecond

type action uint8

const (
	actUp action = iota
	actDown
	actLeft
	actRight
	actBoost
	actGrow
	actQuit
	actNone
)

func actionOf(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyUp:
		return actUp
	case tcell.KeyDown:
		return actDown
	case tcell.KeyLeft:
		return actLeft
	case tcell.KeyRight:
		return actRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return actUp
		case 's', 'S':
			return actDown
		case 'a', 'A':
			return actLeft
		case 'd', 'D':
			return actRight
		case ' ':
			return actBoost
		case 'g', 'G':
			return actGrow
		case 'q', 'Q':
			return actQuit
		}
	}
	return actNone
}

// KeyState turns key events into held-key input with a timeout.
type KeyState struct {
	Timeout time.Duration

	last map[action]time.Time
	now  func() time.Time
}

func NewKeyState(timeout time.Duration) *KeyState {
	if timeout <= 0 {
		timeout = DefaultKeyTimeout
	}
	return &KeyState{
		Timeout: timeout,
		last:    make(map[action]time.Time),
		now:     time.Now,
	}
}

// Handle records ev and reports whether it asks to quit.
func (k *KeyState) Handle(ev *tcell.EventKey) (quit bool) {
	a := actionOf(ev)
	switch a {
	case actQuit:
		return true
	case actNone:
		return false
	}
	// A new heading replaces every other held heading at once.
	if a <= actRight {
		for d := actUp; d <= actRight; d++ {
			delete(k.last, d)
		}
	}
	k.last[a] = k.now()
	return false
}

func (k *KeyState) held(a action, now time.Time) bool {
	t, ok := k.last[a]
	return ok && now.Sub(t) < k.Timeout
}

func (k *KeyState) Poll() game.Input {
	now := k.now()
	return game.Input{
		Up:    k.held(actUp, now),
		Down:  k.held(actDown, now),
		Left:  k.held(actLeft, now),
		Right: k.held(actRight, now),
		Boost: k.held(actBoost, now),
		Grow:  k.held(actGrow, now),
	}
}

var _ game.InputSource = (*KeyState)(nil)
