// Package cli holds the flag and logging plumbing shared by the commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"snek/internal/game"
)

// SeedEnv overrides the -seed flag when set.
const SeedEnv = "SNEK_SEED"

// NewLogger returns a text logger on w, at debug level when verbose.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Config builds a validated game config from flag values. A set SNEK_SEED
// wins over seed.
func Config(seed uint64, model string) (game.Config, error) {
	cfg := game.DefaultConfig()
	m, err := game.ParseMoveModel(model)
	if err != nil {
		return cfg, err
	}
	cfg.Model = m
	cfg.Seed = seed
	if s := os.Getenv(SeedEnv); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s=%q: %w", SeedEnv, s, err)
		}
		cfg.Seed = v
	}
	return cfg, cfg.Validate()
}

// LogEvents logs every scene event at debug level, and self-collisions at info.
func LogEvents(bus *game.EventBus, log *slog.Logger) {
	bus.SubscribeAll(func(e game.Event) {
		level := slog.LevelDebug
		if e.Type == game.EventSelfCollision {
			level = slog.LevelInfo
		}
		log.Log(context.Background(), level, e.Type.String(),
			"tick", e.Tick, "x", e.X, "y", e.Y, "score", e.Data)
	})
}
