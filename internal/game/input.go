package game

import (
	"fmt"
	"math"
)

// Input is the control state observed at the start of one tick.
// Only the current state matters; nothing is queued between ticks.
type Input struct {
	Up, Down, Left, Right bool
	Boost                 bool
	Grow                  bool // debug: add a tail segment
}

// InputSource is polled once per tick by a frontend loop.
type InputSource interface {
	Poll() Input
}

// Direction is one of the four cardinal headings.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Angle is the heading in radians, y pointing down.
func (d Direction) Angle() float64 {
	switch d {
	case DirUp:
		return -math.Pi / 2
	case DirDown:
		return math.Pi / 2
	case DirLeft:
		return math.Pi
	}
	return 0
}

// Step is one cell of movement in this direction.
func (d Direction) Step(cell int) Vec2 {
	c := float64(cell)
	switch d {
	case DirUp:
		return Vec2{Y: -c}
	case DirDown:
		return Vec2{Y: c}
	case DirLeft:
		return Vec2{X: -c}
	}
	return Vec2{X: c}
}

// Direction returns the held cardinal key; up wins over down over left over right.
func (in Input) Direction() (Direction, bool) {
	switch {
	case in.Up:
		return DirUp, true
	case in.Down:
		return DirDown, true
	case in.Left:
		return DirLeft, true
	case in.Right:
		return DirRight, true
	}
	return 0, false
}
