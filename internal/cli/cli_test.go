package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"snek/internal/game"
)

func TestConfigSeedOverride(t *testing.T) {
	t.Setenv(SeedEnv, "")
	cfg, err := Config(5, "grid")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if cfg.Seed != 5 || cfg.Model != game.MoveGrid {
		t.Fatalf("unexpected seed=%d model=%s", cfg.Seed, cfg.Model)
	}

	t.Setenv(SeedEnv, "99")
	cfg, err = Config(5, "continuous")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if cfg.Seed != 99 {
		t.Fatalf("expected env seed 99, got %d", cfg.Seed)
	}

	t.Setenv(SeedEnv, "banana")
	if _, err := Config(5, "continuous"); err == nil {
		t.Fatal("expected an error for a non-numeric seed")
	}
}

func TestConfigRejectsUnknownModel(t *testing.T) {
	t.Setenv(SeedEnv, "")
	if _, err := Config(1, "hex"); !errors.Is(err, game.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLogEvents(t *testing.T) {
	var buf bytes.Buffer
	bus := game.NewEventBus()
	LogEvents(bus, NewLogger(&buf, false))

	bus.Emit(game.Event{Type: game.EventFoodEaten, Tick: 3})
	if buf.Len() != 0 {
		t.Fatalf("food events are debug only, got %q", buf.String())
	}
	bus.Emit(game.Event{Type: game.EventSelfCollision, Tick: 9, Data: 20})
	out := buf.String()
	if !strings.Contains(out, "self_collision") || !strings.Contains(out, "tick=9") || !strings.Contains(out, "score=20") {
		t.Fatalf("unexpected log line %q", out)
	}

	buf.Reset()
	bus = game.NewEventBus()
	LogEvents(bus, NewLogger(&buf, true))
	bus.Emit(game.Event{Type: game.EventFoodEaten, Tick: 3})
	if !strings.Contains(buf.String(), "food_eaten") {
		t.Fatalf("verbose logger dropped a debug event: %q", buf.String())
	}
}
