// Package desktop is the windowed frontend: GLFW for the window, key state
// and clock, OpenGL point sprites and a bitmap font for drawing.
package desktop

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"snek/internal/game"
)

const (
	collisionShake     = 3.0 // world pixels
	collisionShakeTime = 0.4 // seconds
)

// Options configures a desktop session.
type Options struct {
	Scale  int // window pixels per world pixel
	Logger *slog.Logger
}

// Run opens a window and drives scene until the window closes or Esc is pressed.
func Run(scene *game.Scene, opts Options) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	cfg := scene.Config()
	scale := max(opts.Scale, 1)

	window, err := initWindow(cfg.Width*scale, cfg.Height*scale)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Debug("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	keys := NewKeyboard(window)
	var cam Camera
	shakeRng := game.NewRand(scene.Session.Seed ^ 0x5eed)
	scene.Bus().Subscribe(game.EventSelfCollision, func(game.Event) {
		cam.AddShake(collisionShake, collisionShakeTime)
	})
	var frame game.Frame

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > game.MaxFrameDT {
			dt = game.MaxFrameDT
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		scene.Step(keys.Poll(), dt)

		cam.Fit(cfg.Width, cfg.Height, fbW, fbH)
		cam.UpdateShake(dt, shakeRng)
		frame.Reset()
		scene.Render(&frame)

		rend.BeginFrame(game.Palette.Background, fbW, fbH)
		rend.DrawFrame(&frame, cam, fbW, fbH)
		window.SwapBuffers()
	}
	log.Info("window closed", "ticks", scene.Session.Tick, "score", scene.Session.Score)
	return nil
}
