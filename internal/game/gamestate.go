package game

import "fmt"

type GameState int

const (
	StatePlaying  GameState = iota // main gameplay
	StateGameOver                  // snake ran into itself; terminal until a new session
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game-over"
	}
	return fmt.Sprintf("GameState(%d)", int(s))
}

// Boost is the speed-up reserve, always within [0, Max].
type Boost struct {
	Reserve int
	Max     int
}

func (b *Boost) Drain(n int) { b.Reserve = clamp(b.Reserve-n, 0, b.Max) }
func (b *Boost) Regen(n int) { b.Reserve = clamp(b.Reserve+n, 0, b.Max) }

// Fraction is the reserve as 0..1 for the HUD.
func (b *Boost) Fraction() float64 {
	if b.Max <= 0 {
		return 0
	}
	return float64(b.Reserve) / float64(b.Max)
}

// GameSession holds the per-session counters. The scene mutates the score,
// the snake mutates the boost reserve, the HUD only reads.
type GameSession struct {
	State GameState
	Score int
	Boost Boost
	Tick  int
	Seed  uint64
}

func NewGameSession(cfg Config, seed uint64) *GameSession {
	return &GameSession{
		State: StatePlaying,
		Boost: Boost{Reserve: cfg.MaxBoost, Max: cfg.MaxBoost},
		Seed:  seed,
	}
}

// AddScore credits points. The score never goes down.
func (s *GameSession) AddScore(n int) {
	mustf(n >= 0, "negative score delta %d", n)
	s.Score += n
}

func (s *GameSession) GameOver() bool { return s.State == StateGameOver }

// endGame flags the terminal state and reports whether this call set it.
func (s *GameSession) endGame() bool {
	if s.State == StateGameOver {
		return false
	}
	s.State = StateGameOver
	return true
}
