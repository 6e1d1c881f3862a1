// Command snek runs the simulation in a desktop window.
package main

import (
	"flag"
	"os"

	"snek/internal/cli"
	"snek/internal/desktop"
	"snek/internal/game"
)

func main() {
	var (
		seed    uint64
		model   string
		scale   int
		verbose bool
	)
	flag.Uint64Var(&seed, "seed", 0, "RNG seed (0 = wall clock; "+cli.SeedEnv+" overrides)")
	flag.StringVar(&model, "model", "continuous", "movement model: continuous or grid")
	flag.IntVar(&scale, "scale", 3, "window pixels per world pixel")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	log := cli.NewLogger(os.Stderr, verbose)

	cfg, err := cli.Config(seed, model)
	if err != nil {
		log.Error("bad configuration", "err", err)
		os.Exit(2)
	}

	bus := game.NewEventBus()
	cli.LogEvents(bus, log)
	scene, err := game.NewScene(cfg, bus)
	if err != nil {
		log.Error("new scene", "err", err)
		os.Exit(1)
	}
	log.Info("starting", "seed", scene.Session.Seed, "model", cfg.Model)

	if err := desktop.Run(scene, desktop.Options{Scale: scale, Logger: log}); err != nil {
		log.Error("desktop", "err", err)
		os.Exit(1)
	}
	log.Info("finished", "score", scene.Session.Score, "length", scene.Snake.Len(), "state", scene.Session.State)
}
