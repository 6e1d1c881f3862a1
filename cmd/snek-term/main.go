// Command snek-term runs the simulation in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"snek/internal/cli"
	"snek/internal/game"
	"snek/internal/term"
)

func main() {
	var (
		seed    uint64
		model   string
		fps     int
		logPath string
		verbose bool
	)
	flag.Uint64Var(&seed, "seed", 0, "RNG seed (0 = wall clock; "+cli.SeedEnv+" overrides)")
	flag.StringVar(&model, "model", "continuous", "movement model: continuous or grid")
	flag.IntVar(&fps, "fps", term.DefaultFPS, "frames per second")
	flag.StringVar(&logPath, "log", "", "log file (default: discard while the screen is up)")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	if err := run(seed, model, fps, logPath, verbose); err != nil {
		fmt.Fprintln(os.Stderr, "snek-term:", err)
		os.Exit(1)
	}
}

func run(seed uint64, model string, fps int, logPath string, verbose bool) error {
	// The screen owns stdout and stderr; logs go to a file or nowhere.
	var w io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		w = f
	}
	log := cli.NewLogger(w, verbose)

	cfg, err := cli.Config(seed, model)
	if err != nil {
		return err
	}
	bus := game.NewEventBus()
	cli.LogEvents(bus, log)
	scene, err := game.NewScene(cfg, bus)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting", "seed", scene.Session.Seed, "model", cfg.Model, "fps", fps)
	err = term.Run(ctx, screen, scene, term.Options{FPS: fps, Logger: log})
	log.LogAttrs(ctx, slog.LevelInfo, "finished",
		slog.Int("score", scene.Session.Score),
		slog.Int("length", scene.Snake.Len()),
		slog.String("state", scene.Session.State.String()))
	return err
}
