// Package term is the terminal frontend: tcell for drawing and key events,
// a ticker for the frame clock.
package term

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"snek/internal/game"
)

const DefaultFPS = 30

type Options struct {
	FPS        int
	KeyTimeout time.Duration
	Logger     *slog.Logger
}

// Run drives scene on screen until ctx is done, the user quits or the
// screen stops delivering events. The caller owns Init and Fini of screen.
func Run(ctx context.Context, screen tcell.Screen, scene *game.Scene, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	cfg := scene.Config()

	// Only this goroutine touches the terminal event queue; the scene stays on the caller's.
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	wantW, wantH := Size(cfg)
	if w, h := screen.Size(); w < wantW || h < wantH {
		log.Warn("terminal smaller than playfield", "width", w, "height", h, "want_width", wantW, "want_height", wantH)
	}

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	keys := NewKeyState(opts.KeyTimeout)
	var frame game.Frame
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if keys.Handle(ev) {
					log.Debug("quit key")
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
			continue
		case <-ticker.C:
		}

		now := time.Now()
		dt := min(now.Sub(last).Seconds(), game.MaxFrameDT)
		last = now

		scene.Step(keys.Poll(), dt)
		frame.Reset()
		scene.Render(&frame)
		Draw(screen, &frame, cfg)
	}
}
