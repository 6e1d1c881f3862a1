package game

import (
	"math"
	"testing"
)

func newTestSnake(t *testing.T, model MoveModel) (*Config, *Boost, *Snake) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Model = model
	boost := &Boost{Reserve: cfg.MaxBoost, Max: cfg.MaxBoost}
	s := NewSnake(&cfg, boost, Vec2{X: 160, Y: 120}, DirLeft)
	return &cfg, boost, s
}

// requireBodyInvariants checks alignment, bounds and 4-connectivity.
func requireBodyInvariants(t *testing.T, cfg *Config, s *Snake, tick int) {
	t.Helper()
	c := float64(cfg.Cell)
	w := float64(cfg.Width)
	h := float64(cfg.Height)
	for i, seg := range s.Body {
		if math.Mod(seg.X, c) != 0 || math.Mod(seg.Y, c) != 0 {
			t.Fatalf("tick %d: segment %d off grid at %+v", tick, i, seg)
		}
		if seg.X < 0 || seg.X > w-c || seg.Y < 0 || seg.Y > h-c {
			t.Fatalf("tick %d: segment %d outside playfield at %+v", tick, i, seg)
		}
	}
	for i := 1; i < len(s.Body); i++ {
		dx := math.Abs(s.Body[i].X - s.Body[i-1].X)
		dy := math.Abs(s.Body[i].Y - s.Body[i-1].Y)
		stepX := dx == c || dx == w-c
		stepY := dy == c || dy == h-c
		if !(stepX && dy == 0) && !(stepY && dx == 0) {
			t.Fatalf("tick %d: segments %d and %d not adjacent: %+v %+v", tick, i-1, i, s.Body[i-1], s.Body[i])
		}
	}
}

func TestSnakeStartLayout(t *testing.T) {
	cfg, _, s := newTestSnake(t, MoveContinuous)
	if s.Len() != cfg.StartLength {
		t.Fatalf("expected length %d, got %d", cfg.StartLength, s.Len())
	}
	if s.Head() != (Vec2{X: 160, Y: 120}) || s.Tail() != (Vec2{X: 230, Y: 120}) {
		t.Fatalf("unexpected layout head=%+v tail=%+v", s.Head(), s.Tail())
	}
	if s.Heading != math.Pi {
		t.Fatalf("expected heading pi, got %.3f", s.Heading)
	}
	if s.SelfColliding() {
		t.Fatal("a straight snake must not collide with its neck")
	}
}

func TestContinuousWrapKeepsBodyOnGrid(t *testing.T) {
	for _, dir := range []Direction{DirLeft, DirUp, DirRight, DirDown} {
		t.Run(dir.String(), func(t *testing.T) {
			cfg, _, s := newTestSnake(t, MoveContinuous)
			in := Input{}
			switch dir {
			case DirUp:
				in.Up = true
			case DirDown:
				in.Down = true
			case DirLeft:
				in.Left = true
			case DirRight:
				in.Right = true
			}
			s.Control(in)
			for tick := 1; tick <= 1200; tick++ {
				s.Update(1.0 / 60)
				requireBodyInvariants(t, cfg, s, tick)
				p := s.Position()
				if p.X < -float64(cfg.Cell) || p.X > float64(cfg.Width+cfg.Cell) ||
					p.Y < -float64(cfg.Cell) || p.Y > float64(cfg.Height+cfg.Cell) {
					t.Fatalf("tick %d: precise head escaped to %+v", tick, p)
				}
			}
		})
	}
}

func TestContinuousSteerTurnsGradually(t *testing.T) {
	cfg, _, s := newTestSnake(t, MoveContinuous)
	s.Control(Input{Up: true})
	s.Update(1.0 / 60)
	if got := math.Abs(angDiff(math.Pi, s.Heading)); math.Abs(got-cfg.SteerDelta) > 1e-9 {
		t.Fatalf("expected one steer step of %.2f, turned %.4f", cfg.SteerDelta, got)
	}
	turns := int(math.Ceil((math.Pi / 2) / cfg.SteerDelta))
	for i := 1; i < turns; i++ {
		s.Update(1.0 / 60)
	}
	if s.Heading != DirUp.Angle() {
		t.Fatalf("expected heading to settle on up after %d ticks, got %.4f", turns, s.Heading)
	}
}

func TestContinuousCommitsOneCellPerCellTravelled(t *testing.T) {
	cfg, _, s := newTestSnake(t, MoveContinuous)
	// 120 px/s for one second is 12 cells.
	for range 60 {
		s.Update(1.0 / 60)
	}
	want := 160 - 12*float64(cfg.Cell)
	if s.Head().X != want || s.Head().Y != 120 {
		t.Fatalf("expected head at (%.0f,120), got %+v", want, s.Head())
	}
	if s.Len() != cfg.StartLength {
		t.Fatalf("moving must not change length, got %d", s.Len())
	}
}

func TestGrowAppendsAwayFromSecondToLast(t *testing.T) {
	_, _, s := newTestSnake(t, MoveContinuous)
	s.Grow()
	if s.Len() != SnakeStartLength+1 || s.Tail() != (Vec2{X: 240, Y: 120}) {
		t.Fatalf("expected new tail at (240,120), got %+v (len %d)", s.Tail(), s.Len())
	}

	tests := []struct {
		name string
		prev Vec2
		tail Vec2
		want Vec2
	}{
		{"down", Vec2{X: 50, Y: 50}, Vec2{X: 50, Y: 60}, Vec2{X: 50, Y: 70}},
		{"up", Vec2{X: 50, Y: 50}, Vec2{X: 50, Y: 40}, Vec2{X: 50, Y: 30}},
		{"left wraps", Vec2{X: 10, Y: 50}, Vec2{X: 0, Y: 50}, Vec2{X: 310, Y: 50}},
		{"across seam", Vec2{X: 0, Y: 50}, Vec2{X: 310, Y: 50}, Vec2{X: 300, Y: 50}},
		{"bottom wraps", Vec2{X: 50, Y: 220}, Vec2{X: 50, Y: 230}, Vec2{X: 50, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, s := newTestSnake(t, MoveContinuous)
			s.Body = []Vec2{tt.prev, tt.tail}
			s.Grow()
			if s.Tail() != tt.want {
				t.Fatalf("expected tail %+v, got %+v", tt.want, s.Tail())
			}
		})
	}
}

func TestGrowWithOverlappingTailFollowsHeading(t *testing.T) {
	_, _, s := newTestSnake(t, MoveContinuous)
	s.Body = []Vec2{{X: 50, Y: 50}, {X: 50, Y: 50}}
	s.Grow()
	// Heading left, so the tail trails to the right.
	if s.Tail() != (Vec2{X: 60, Y: 50}) {
		t.Fatalf("expected tail (60,50), got %+v", s.Tail())
	}
}

func TestSelfColliding(t *testing.T) {
	_, _, s := newTestSnake(t, MoveContinuous)
	s.Body = []Vec2{
		{X: 100, Y: 100}, {X: 110, Y: 100}, {X: 110, Y: 110}, {X: 100, Y: 110}, {X: 100, Y: 100},
	}
	if !s.SelfColliding() {
		t.Fatal("expected head on its own tail to collide")
	}
	s.Body = []Vec2{
		{X: 100, Y: 100}, {X: 110, Y: 100}, {X: 110, Y: 110}, {X: 100, Y: 110}, {X: 90, Y: 110},
	}
	if s.SelfColliding() {
		t.Fatal("segments touching only at edges must not collide")
	}
}

func TestGridStepsOnInterval(t *testing.T) {
	_, _, s := newTestSnake(t, MoveGrid)
	s.Update(1.0 / 32)
	if s.Head() != (Vec2{X: 160, Y: 120}) {
		t.Fatalf("moved before the step interval: %+v", s.Head())
	}
	s.Update(1.0 / 32)
	if s.Head() != (Vec2{X: 150, Y: 120}) {
		t.Fatalf("expected one step left, got %+v", s.Head())
	}
	s.Update(1.0 / 32)
	if s.Head() != (Vec2{X: 150, Y: 120}) {
		t.Fatalf("move timer was not reset: %+v", s.Head())
	}
}

func TestGridHeldKeyOverridesHeading(t *testing.T) {
	_, _, s := newTestSnake(t, MoveGrid)
	s.Control(Input{Down: true})
	s.Update(0.0625)
	if s.Head() != (Vec2{X: 160, Y: 130}) || s.Dir != DirDown {
		t.Fatalf("expected step down, got %+v dir=%s", s.Head(), s.Dir)
	}
	s.Control(Input{})
	s.Update(0.0625)
	if s.Head() != (Vec2{X: 160, Y: 140}) {
		t.Fatalf("released keys must keep the heading, got %+v", s.Head())
	}
}

func TestGridWrapLagsOneStep(t *testing.T) {
	tests := []struct {
		name  string
		dir   Direction
		head  Vec2
		off   Vec2
		after Vec2
	}{
		{"left", DirLeft, Vec2{X: 0, Y: 120}, Vec2{X: -10, Y: 120}, Vec2{X: 310, Y: 120}},
		{"right", DirRight, Vec2{X: 310, Y: 120}, Vec2{X: 320, Y: 120}, Vec2{X: 0, Y: 120}},
		{"up", DirUp, Vec2{X: 160, Y: 0}, Vec2{X: 160, Y: -10}, Vec2{X: 160, Y: 230}},
		{"down", DirDown, Vec2{X: 160, Y: 230}, Vec2{X: 160, Y: 240}, Vec2{X: 160, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, s := newTestSnake(t, MoveGrid)
			back := tt.dir.Step(cfg.Cell).Scale(-1)
			for i := range s.Body {
				s.Body[i] = tt.head.Add(back.Scale(float64(i)))
			}
			s.Dir = tt.dir
			s.Update(0.0625)
			if s.Head() != tt.off {
				t.Fatalf("expected head one cell outside at %+v, got %+v", tt.off, s.Head())
			}
			s.Update(0.0625)
			if s.Head() != tt.after {
				t.Fatalf("expected wrapped head at %+v, got %+v", tt.after, s.Head())
			}
		})
	}
}

func TestBoostDrainAndRegen(t *testing.T) {
	cfg, boost, s := newTestSnake(t, MoveContinuous)
	s.Control(Input{Boost: true})
	s.Update(1.0 / 60)
	if boost.Reserve != cfg.MaxBoost-cfg.BoostDrain || !s.Boosted {
		t.Fatalf("expected boosted tick with reserve %d, got %d boosted=%v", cfg.MaxBoost-1, boost.Reserve, s.Boosted)
	}
	if s.Speed != cfg.BaseSpeed*cfg.BoostMult {
		t.Fatalf("expected boosted speed %.1f, got %.1f", cfg.BaseSpeed*cfg.BoostMult, s.Speed)
	}

	s.Control(Input{})
	s.Update(1.0 / 60)
	s.Update(1.0 / 60)
	if boost.Reserve != cfg.MaxBoost || s.Boosted || s.Speed != cfg.BaseSpeed {
		t.Fatalf("expected regen to cap at %d at base speed, got %d speed=%.1f", cfg.MaxBoost, boost.Reserve, s.Speed)
	}

	boost.Reserve = cfg.MinBoost
	s.Control(Input{Boost: true})
	s.Update(1.0 / 60)
	if s.Boosted || boost.Reserve != cfg.MinBoost-1 {
		t.Fatalf("reserve at the minimum must not boost, boosted=%v reserve=%d", s.Boosted, boost.Reserve)
	}
}

func TestContinuousHeadOnHalfCellSeam(t *testing.T) {
	tests := []struct {
		name    string
		heading float64
		dir     Direction
		headX   float64
		first   Vec2
	}{
		{"right edge", 0, DirRight, 315, Vec2{X: 0, Y: 120}},
		{"left edge", math.Pi, DirLeft, -5, Vec2{X: 0, Y: 120}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, s := newTestSnake(t, MoveContinuous)
			c := float64(cfg.Cell)
			start := 310.0
			step := -c
			if tt.dir == DirLeft {
				start, step = 0, c
			}
			for i := range s.Body {
				s.Body[i] = Vec2{X: start + step*float64(i), Y: 120}
			}
			s.Heading = tt.heading
			s.Dir = tt.dir
			s.cellX, s.cellY = int(start/c), 12
			s.head = Vec2{X: tt.headX, Y: 120}

			for tick := 1; tick <= 3; tick++ {
				s.Update(0)
				requireBodyInvariants(t, cfg, s, tick)
				if s.SelfColliding() {
					t.Fatalf("tick %d: head on the seam folded into its own body: %+v", tick, s.Body[:3])
				}
			}
			if s.Head() != tt.first {
				t.Fatalf("expected head at %+v, got %+v", tt.first, s.Head())
			}
		})
	}
}
