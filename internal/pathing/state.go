package pathing

import "fmt"

// Motion is the phase of movement a node represents.
type Motion uint8

const (
	Walking Motion = iota
	Backtracking
	Jumping
	Falling
)

// Bias is the horizontal drift of a jump or fall.
type Bias int8

const (
	Straight Bias = iota
	Right
	Left
)

// Dx returns the column offset the bias applies per step.
func (b Bias) Dx() int {
	switch b {
	case Right:
		return 1
	case Left:
		return -1
	}
	return 0
}

func (b Bias) String() string {
	switch b {
	case Right:
		return "right"
	case Left:
		return "left"
	}
	return "straight"
}

// State is a motion state. Step is only meaningful while Jumping and counts
// rows climbed since the jump started.
type State struct {
	Motion Motion
	Bias   Bias
	Step   int
}

// Grounded is the state of walking right (or standing) on solid ground.
func Grounded() State { return State{Motion: Walking} }

// Backtrack is the state of walking left.
func Backtrack() State { return State{Motion: Backtracking} }

// Jump returns the jump state with the given drift and arc step.
func Jump(b Bias, step int) State { return State{Motion: Jumping, Bias: b, Step: step} }

// Fall returns the fall state with the given drift.
func Fall(b Bias) State { return State{Motion: Falling, Bias: b} }

// IsJump reports whether s is any jump state.
func (s State) IsJump() bool { return s.Motion == Jumping }

// IsLaunch reports whether s is the first step of a jump.
func (s State) IsLaunch() bool { return s.Motion == Jumping && s.Step == 0 }

func (s State) String() string {
	switch s.Motion {
	case Walking:
		return "walk"
	case Backtracking:
		return "backtrack"
	case Jumping:
		return fmt.Sprintf("jump-%s/%d", s.Bias, s.Step)
	case Falling:
		return "fall-" + s.Bias.String()
	}
	return "unknown"
}

// Arrow bits, one per direction, clockwise from up.
const (
	ArrowUp        uint8 = 1
	ArrowUpRight   uint8 = 2
	ArrowRight     uint8 = 4
	ArrowDownRight uint8 = 8
	ArrowDown      uint8 = 16
	ArrowDownLeft  uint8 = 32
	ArrowLeft      uint8 = 64
	ArrowUpLeft    uint8 = 128
)

// ArrowID returns the arrow bit for the move that produced a node in state s.
func ArrowID(s State) uint8 {
	switch s.Motion {
	case Walking:
		return ArrowRight
	case Backtracking:
		return ArrowLeft
	case Jumping:
		switch s.Bias {
		case Right:
			return ArrowUpRight
		case Left:
			return ArrowUpLeft
		}
		return ArrowUp
	case Falling:
		switch s.Bias {
		case Right:
			return ArrowDownRight
		case Left:
			return ArrowDownLeft
		}
		return ArrowDown
	}
	return 0
}
