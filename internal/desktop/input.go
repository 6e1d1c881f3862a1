package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"snek/internal/game"
)

// Keyboard polls the window's key state once per tick.
type Keyboard struct {
	window *glfw.Window
}

func NewKeyboard(window *glfw.Window) *Keyboard {
	return &Keyboard{window: window}
}

func (k *Keyboard) down(keys ...glfw.Key) bool {
	for _, key := range keys {
		if k.window.GetKey(key) == glfw.Press {
			return true
		}
	}
	return false
}

// Poll maps arrows/WASD, Shift/Space and G onto the simulation input.
func (k *Keyboard) Poll() game.Input {
	return game.Input{
		Up:    k.down(glfw.KeyUp, glfw.KeyW),
		Down:  k.down(glfw.KeyDown, glfw.KeyS),
		Left:  k.down(glfw.KeyLeft, glfw.KeyA),
		Right: k.down(glfw.KeyRight, glfw.KeyD),
		Boost: k.down(glfw.KeyLeftShift, glfw.KeyRightShift, glfw.KeySpace),
		Grow:  k.down(glfw.KeyG),
	}
}
var _ game.InputSource = (*Keyboard)(nil)
