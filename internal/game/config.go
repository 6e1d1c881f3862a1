package game

import (
	"errors"
	"fmt"
)

// Playfield dimensions (in world pixels) and grid cell size.
const (
	WorldWidth  = 320
	WorldHeight = 240
	BlockSize   = 10
)

// Window defaults.
const (
	WindowScale = 3
	MaxFrameDT  = 0.1 // clamp for long frames (window drag, breakpoints)
)

// Snake constants.
const (
	SnakeStartLength  = 8
	SnakeBaseSpeed    = 120.0 // px/s, continuous model
	SnakeSteerDelta   = 0.12  // rad per tick
	SnakeStepInterval = 0.05  // s per grid step, discrete model
)

// Boost reserve.
const (
	MaxBoost   = 100
	MinBoost   = 5 // reserve must exceed this for the multiplier to apply
	BoostMult  = 2.3
	BoostDrain = 1 // per tick while boost is held
	BoostRegen = 1 // per tick while boost is released
)

// Collectibles.
const (
	FoodScore        = 1
	SpecialFoodScore = 3
	SpawnTimer       = 8.0 // s dormant before the special food appears
	AliveTimer       = 3.5 // s the special food stays up
)

// Particles.
const (
	EmitterPopulation = 45
	BurstPopulation   = 45
	ParticleAccel     = 22.0
	ParticleSpin      = 0.7 // rotation per tick
)

// MoveModel selects how the snake head advances.
type MoveModel int

const (
	MoveContinuous MoveModel = iota // heading angle + velocity
	MoveGrid                        // 4-way, one cell per step interval
)

func (m MoveModel) String() string {
	switch m {
	case MoveContinuous:
		return "continuous"
	case MoveGrid:
		return "grid"
	}
	return fmt.Sprintf("MoveModel(%d)", int(m))
}

// ParseMoveModel maps a flag value to a MoveModel.
func ParseMoveModel(s string) (MoveModel, error) {
	switch s {
	case "continuous", "":
		return MoveContinuous, nil
	case "grid", "discrete":
		return MoveGrid, nil
	}
	return 0, fmt.Errorf("move model %q: %w", s, ErrInvalidConfig)
}

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the world extent and tuning of one session.
type Config struct {
	Width, Height int
	Cell          int
	Seed          uint64 // 0 = seed from the wall clock
	Model         MoveModel

	StartLength  int
	BaseSpeed    float64
	SteerDelta   float64
	StepInterval float64

	MaxBoost   int
	MinBoost   int
	BoostMult  float64
	BoostDrain int
	BoostRegen int

	SpawnTimer float64
	AliveTimer float64

	EmitterPopulation int
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Width:             WorldWidth,
		Height:            WorldHeight,
		Cell:              BlockSize,
		Model:             MoveContinuous,
		StartLength:       SnakeStartLength,
		BaseSpeed:         SnakeBaseSpeed,
		SteerDelta:        SnakeSteerDelta,
		StepInterval:      SnakeStepInterval,
		MaxBoost:          MaxBoost,
		MinBoost:          MinBoost,
		BoostMult:         BoostMult,
		BoostDrain:        BoostDrain,
		BoostRegen:        BoostRegen,
		SpawnTimer:        SpawnTimer,
		AliveTimer:        AliveTimer,
		EmitterPopulation: EmitterPopulation,
	}
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	switch {
	case c.Cell <= 0:
		return fmt.Errorf("cell size %d: %w", c.Cell, ErrInvalidConfig)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("world %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	case c.Width%c.Cell != 0 || c.Height%c.Cell != 0:
		return fmt.Errorf("world %dx%d not a multiple of cell %d: %w", c.Width, c.Height, c.Cell, ErrInvalidConfig)
	case c.StartLength < 2:
		return fmt.Errorf("start length %d: %w", c.StartLength, ErrInvalidConfig)
	case c.StartLength*c.Cell > c.Width/2:
		return fmt.Errorf("start length %d does not fit half of width %d: %w", c.StartLength, c.Width, ErrInvalidConfig)
	case c.BaseSpeed <= 0 || c.StepInterval <= 0 || c.SteerDelta <= 0:
		return fmt.Errorf("speed %.2f / step %.3f / steer %.3f: %w", c.BaseSpeed, c.StepInterval, c.SteerDelta, ErrInvalidConfig)
	case c.MaxBoost < 0 || c.MinBoost < 0 || c.MinBoost > c.MaxBoost:
		return fmt.Errorf("boost range [%d,%d]: %w", c.MinBoost, c.MaxBoost, ErrInvalidConfig)
	case c.BoostMult < 1:
		return fmt.Errorf("boost multiplier %.2f: %w", c.BoostMult, ErrInvalidConfig)
	case c.BoostDrain < 0 || c.BoostRegen < 0:
		return fmt.Errorf("boost drain %d / regen %d: %w", c.BoostDrain, c.BoostRegen, ErrInvalidConfig)
	case c.SpawnTimer <= 0 || c.AliveTimer <= 0:
		return fmt.Errorf("special timers %.2f/%.2f: %w", c.SpawnTimer, c.AliveTimer, ErrInvalidConfig)
	case c.EmitterPopulation < 0:
		return fmt.Errorf("emitter population %d: %w", c.EmitterPopulation, ErrInvalidConfig)
	}
	return nil
}

// Bounds is the playfield as a rectangle.
func (c Config) Bounds() Rect {
	return Rect{W: float64(c.Width), H: float64(c.Height)}
}
