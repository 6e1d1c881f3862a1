package game

import "math"

// Snake is the player-controlled body of grid cells, index 0 = head.
//
// In the continuous model the head keeps a precise position that moves along
// Heading every tick; a new cell is committed each time that position enters
// a neighbouring cell, one axis step at a time, so the body stays 4-connected.
// In the grid model the head jumps one cell per step interval.
type Snake struct {
	Body    []Vec2
	Heading float64   // radians, y down
	Dir     Direction // grid model heading
	Speed   float64   // px/s used by the last tick
	Boosted bool      // last tick ran with the boost multiplier

	cfg       *Config
	boost     *Boost
	in        Input
	moveTimer float64
	head      Vec2 // precise head, continuous model
	cellX     int  // cell of the precise head, unwrapped until folded
	cellY     int
	minLen    int
}

// NewSnake lays StartLength cells out behind start, opposite to dir.
func NewSnake(cfg *Config, boost *Boost, start Vec2, dir Direction) *Snake {
	step := dir.Step(cfg.Cell)
	body := make([]Vec2, cfg.StartLength, cfg.StartLength*4)
	for i := range body {
		body[i] = start.Add(step.Scale(-float64(i)))
	}
	cell := float64(cfg.Cell)
	return &Snake{
		Body:    body,
		Heading: dir.Angle(),
		Dir:     dir,
		Speed:   cfg.BaseSpeed,
		cfg:     cfg,
		boost:   boost,
		head:    start,
		cellX:   int(math.Round(start.X / cell)),
		cellY:   int(math.Round(start.Y / cell)),
		minLen:  cfg.StartLength,
	}
}

// Control sets the input used by the next Update.
func (s *Snake) Control(in Input) { s.in = in }

func (s *Snake) Len() int { return len(s.Body) }

func (s *Snake) Head() Vec2 { return s.Body[0] }

func (s *Snake) Tail() Vec2 { return s.Body[len(s.Body)-1] }

// HeadRect is the box used by every collision test.
func (s *Snake) HeadRect() Rect { return cellRect(s.Body[0], s.cfg.Cell) }

// Position is the precise head position (continuous model) or the head cell.
func (s *Snake) Position() Vec2 {
	if s.cfg.Model == MoveGrid {
		return s.Body[0]
	}
	return s.head
}

// Update advances the snake by dt seconds.
func (s *Snake) Update(dt float64) {
	mult := s.updateBoost()
	switch s.cfg.Model {
	case MoveGrid:
		s.updateGrid(dt, mult)
	default:
		s.updateContinuous(dt, mult)
	}
	mustf(len(s.Body) >= s.minLen, "snake length %d below minimum %d", len(s.Body), s.minLen)
}

// updateBoost spends or refills the reserve and returns the speed multiplier.
// The multiplier is decided on the reserve as it was before this tick's drain.
func (s *Snake) updateBoost() float64 {
	mult := 1.0
	s.Boosted = false
	if s.in.Boost {
		if s.boost.Reserve > s.cfg.MinBoost {
			mult = s.cfg.BoostMult
			s.Boosted = true
		}
		s.boost.Drain(s.cfg.BoostDrain)
	} else {
		s.boost.Regen(s.cfg.BoostRegen)
	}
	return mult
}

// Steer turns the heading toward the held direction by at most SteerDelta.
func (s *Snake) steer() {
	dir, ok := s.in.Direction()
	if !ok {
		return
	}
	target := dir.Angle()
	diff := angDiff(s.Heading, target)
	maxTurn := s.cfg.SteerDelta
	if math.Abs(diff) <= maxTurn {
		s.Heading = target
	} else if diff > 0 {
		s.Heading += maxTurn
	} else {
		s.Heading -= maxTurn
	}
	s.Heading = normAngle(s.Heading)
}

func (s *Snake) updateContinuous(dt, mult float64) {
	s.steer()
	s.Speed = s.cfg.BaseSpeed * mult
	vel := Vec2{X: math.Cos(s.Heading) * s.Speed, Y: math.Sin(s.Heading) * s.Speed}
	s.head = s.head.Add(vel.Scale(dt))

	cell := float64(s.cfg.Cell)
	// Round half up on both sides of zero so a head folded across the seam
	// lands in the same cell it left.
	tx := int(math.Floor(s.head.X/cell + 0.5))
	ty := int(math.Floor(s.head.Y/cell + 0.5))
	for s.cellX != tx || s.cellY != ty {
		dx := tx - s.cellX
		dy := ty - s.cellY
		if abs(dx) >= abs(dy) {
			s.cellX += sign(dx)
		} else {
			s.cellY += sign(dy)
		}
		s.advance(s.committedCell())
	}

	// Fold the precise head back into the playfield once its cell wrapped.
	cols := s.cfg.Width / s.cfg.Cell
	rows := s.cfg.Height / s.cfg.Cell
	if shift := wrapIndex(s.cellX, cols) - s.cellX; shift != 0 {
		s.cellX += shift
		s.head.X += float64(shift) * cell
	}
	if shift := wrapIndex(s.cellY, rows) - s.cellY; shift != 0 {
		s.cellY += shift
		s.head.Y += float64(shift) * cell
	}
}

// committedCell maps the unwrapped head cell to a playfield cell: cell -1 is
// the last column/row, one past the last is 0.
func (s *Snake) committedCell() Vec2 {
	cell := s.cfg.Cell
	return Vec2{
		X: float64(wrapIndex(s.cellX, s.cfg.Width/cell) * cell),
		Y: float64(wrapIndex(s.cellY, s.cfg.Height/cell) * cell),
	}
}

// updateGrid takes one cell step once the move timer passes the step interval.
// The edge test looks at the previous head, so a head that just stepped off
// the playfield is wrapped on the following step.
func (s *Snake) updateGrid(dt, mult float64) {
	s.Speed = float64(s.cfg.Cell) / s.cfg.StepInterval * mult
	s.moveTimer += dt
	if s.moveTimer < s.cfg.StepInterval/mult {
		return
	}
	if dir, ok := s.in.Direction(); ok {
		s.Dir = dir
	}
	s.Heading = s.Dir.Angle()

	prev := s.Body[0]
	next := prev.Add(s.Dir.Step(s.cfg.Cell))
	c := float64(s.cfg.Cell)
	w := float64(s.cfg.Width)
	h := float64(s.cfg.Height)
	if prev.X < 0 {
		next.X = w - c
	}
	if prev.X+c > w {
		next.X = 0
	}
	if prev.Y < 0 {
		next.Y = h - c
	}
	if prev.Y+c > h {
		next.Y = 0
	}

	s.advance(next)
	s.head = next
	s.moveTimer = 0
}

// advance prepends a head cell and drops the tail.
func (s *Snake) advance(head Vec2) {
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = head
}

// Grow appends one cell past the tail, on the side away from the
// second-to-last segment.
func (s *Snake) Grow() {
	n := len(s.Body)
	tail := s.Body[n-1]
	prev := s.Body[n-2]
	c := float64(s.cfg.Cell)
	dx := stepSign(tail.X-prev.X, c)
	dy := stepSign(tail.Y-prev.Y, c)
	if dx == 0 && dy == 0 {
		// Overlapping tail pair: trail straight behind the heading.
		hx, hy := -math.Cos(s.Heading), -math.Sin(s.Heading)
		if math.Abs(hx) >= math.Abs(hy) {
			dx = int(math.Copysign(1, hx))
		} else {
			dy = int(math.Copysign(1, hy))
		}
	}
	nt := Vec2{X: tail.X + float64(dx)*c, Y: tail.Y + float64(dy)*c}
	s.Body = append(s.Body, s.wrapPos(nt))
}

// stepSign is the sign of a tail delta; a jump longer than one cell crossed
// the wrap seam and points the other way.
func stepSign(d, cell float64) int {
	switch {
	case d == 0:
		return 0
	case math.Abs(d) > cell:
		return -int(math.Copysign(1, d))
	}
	return int(math.Copysign(1, d))
}

func (s *Snake) wrapPos(p Vec2) Vec2 {
	w := float64(s.cfg.Width)
	h := float64(s.cfg.Height)
	if p.X < 0 {
		p.X += w
	} else if p.X >= w {
		p.X -= w
	}
	if p.Y < 0 {
		p.Y += h
	} else if p.Y >= h {
		p.Y -= h
	}
	return p
}

// SelfColliding reports whether the head overlaps any other segment.
func (s *Snake) SelfColliding() bool {
	head := s.HeadRect()
	for _, seg := range s.Body[1:] {
		if head.Overlaps(cellRect(seg, s.cfg.Cell)) {
			return true
		}
	}
	return false
}

func (s *Snake) Render(f *Frame) {
	for i := len(s.Body) - 1; i >= 1; i-- {
		f.solid(LayerSnake, cellRect(s.Body[i], s.cfg.Cell), Palette.Snake)
	}
	f.solid(LayerSnake, s.HeadRect(), Palette.SnakeHead)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
