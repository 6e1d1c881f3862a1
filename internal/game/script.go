package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadPattern = errors.New("bad steer pattern")

// ScriptedInput plays a fixed input sequence back, one entry per Poll, and
// loops when it runs out. An empty script holds no keys.
type ScriptedInput struct {
	Steps []Input
	Boost bool // forced on every polled input

	i int
}

func NewScriptedInput(steps []Input, boost bool) *ScriptedInput {
	return &ScriptedInput{Steps: steps, Boost: boost}
}

func (s *ScriptedInput) Poll() Input {
	var in Input
	if len(s.Steps) > 0 {
		in = s.Steps[s.i%len(s.Steps)]
		s.i++
	}
	if s.Boost {
		in.Boost = true
	}
	return in
}

// Polled is the number of inputs handed out so far.
func (s *ScriptedInput) Polled() int { return s.i }

// ParseSteer expands a pattern such as "LLUURRDD" into inputs, each letter
// held for hold ticks. U, D, L and R steer, B boosts, G grows, '.' releases
// every key. Case and spaces are ignored.
func ParseSteer(pattern string, hold int) ([]Input, error) {
	if hold <= 0 {
		return nil, fmt.Errorf("hold %d: %w", hold, ErrBadPattern)
	}
	var steps []Input
	for i, ch := range strings.ToUpper(pattern) {
		var in Input
		switch ch {
		case ' ':
			continue
		case 'U':
			in.Up = true
		case 'D':
			in.Down = true
		case 'L':
			in.Left = true
		case 'R':
			in.Right = true
		case 'B':
			in.Boost = true
		case 'G':
			in.Grow = true
		case '.':
		default:
			return nil, fmt.Errorf("%q at %d: %w", ch, i, ErrBadPattern)
		}
		for range hold {
			steps = append(steps, in)
		}
	}
	return steps, nil
}
