// Package pathing explores every (cell, motion state) a player can reach in
// a tile grid. Movement follows a small state machine of walking, jumping
// and falling; the Board keeps the best node per slot and records the
// dominated arrivals as joiners so paths can be counted afterwards.
package pathing

import (
	"github.com/vovakirdan/litetux-lab/internal/tilegrid"
	"github.com/vovakirdan/litetux-lab/internal/tiles"
)

// DefaultBudget is the score a search starts with.
const DefaultBudget = 1000

// Params tunes the movement model.
type Params struct {
	JumpHeight    int `yaml:"jump_height"`
	JumpCost      int `yaml:"jump_cost"`
	BacktrackCost int `yaml:"backtrack_cost"`
	Budget        int `yaml:"budget"`
}

// RequiredJumpParams makes jumps and backtracking expensive, so the best
// path only jumps when it has to.
func RequiredJumpParams() Params {
	return Params{JumpHeight: 4, JumpCost: 2, BacktrackCost: 2, Budget: DefaultBudget}
}

// FreeJumpParams prices every move the same.
func FreeJumpParams() Params {
	return Params{JumpHeight: 4, JumpCost: 1, BacktrackCost: 1, Budget: DefaultBudget}
}

// Candidate is a child proposed by the machine before it joins a board.
type Candidate struct {
	X, Y  int
	State State
	Score int
}

// Machine applies the movement rules for one parameter set and tile set.
type Machine struct {
	p     Params
	tiles *tiles.Set
}

// NewMachine creates a machine. A jump height below one is raised to one.
func NewMachine(p Params, set *tiles.Set) *Machine {
	if p.JumpHeight < 1 {
		p.JumpHeight = 1
	}
	if set == nil {
		set = tiles.LiteTux()
	}
	return &Machine{p: p, tiles: set}
}

// Params returns the machine's parameters.
func (m *Machine) Params() Params { return m.p }

// Tiles returns the tile set the machine reads the grid with.
func (m *Machine) Tiles() *tiles.Set { return m.tiles }

// NumStates is the size of the flat state numbering.
func (m *Machine) NumStates() int {
	return 2 + 3*m.p.JumpHeight + 3
}

// Index maps s to its flat number: walk 0, backtrack 1, then a block of
// JumpHeight steps each for straight, right and left jumps, then the
// straight, right and left falls.
func (m *Machine) Index(s State) int {
	h := m.p.JumpHeight
	switch s.Motion {
	case Walking:
		return 0
	case Backtracking:
		return 1
	case Jumping:
		return 2 + biasBlock(s.Bias)*h + s.Step
	case Falling:
		return 2 + 3*h + biasBlock(s.Bias)
	}
	return -1
}

// StateAt is the inverse of Index.
func (m *Machine) StateAt(i int) (State, bool) {
	h := m.p.JumpHeight
	switch {
	case i == 0:
		return Grounded(), true
	case i == 1:
		return Backtrack(), true
	case i >= 2 && i < 2+3*h:
		j := i - 2
		return Jump(blockBias(j/h), j%h), true
	case i >= 2+3*h && i < m.NumStates():
		return Fall(blockBias(i - 2 - 3*h)), true
	}
	return State{}, false
}

func biasBlock(b Bias) int {
	switch b {
	case Right:
		return 1
	case Left:
		return 2
	}
	return 0
}

func blockBias(i int) Bias {
	switch i {
	case 1:
		return Right
	case 2:
		return Left
	}
	return Straight
}

// IsJumping reports whether n is still climbing: it is mid-jump, has arc
// left, and nothing solid is overhead.
func (m *Machine) IsJumping(n Node, g *tilegrid.Grid) bool {
	if m.tiles.Solid(g.Get(n.X, n.Y-1)) {
		return false
	}
	return n.State.Motion == Jumping && n.State.Step < m.p.JumpHeight-1
}

// IsFalling reports whether n has nothing to stand on and is not climbing.
func (m *Machine) IsFalling(n Node, g *tilegrid.Grid) bool {
	below := g.Get(n.X, n.Y+1)
	if m.tiles.Solid(below) && !m.tiles.PassThrough(below) {
		return false
	}
	return !m.IsJumping(n, g)
}

// CanEnter reports whether (x, y) is inside g and enterable.
func (m *Machine) CanEnter(x, y int, g *tilegrid.Grid) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return m.tiles.Enterable(g.Get(x, y))
}

// IsAlive reports whether n survives where it stands. Inside a deadly tile
// the player lives only if it got there moving up from parent; elsewhere
// the bottom row is fatal.
func (m *Machine) IsAlive(n Node, parent *Node, g *tilegrid.Grid) bool {
	if m.tiles.Deadly(g.Get(n.X, n.Y)) {
		return parent != nil && n.Y < parent.Y
	}
	return n.Y < g.H-1
}

// ForcesJump reports whether n stands on a non-solid deadly tile, which
// bounces the player upward.
func (m *Machine) ForcesJump(n Node, g *tilegrid.Grid) bool {
	below := g.Get(n.X, n.Y+1)
	return !m.tiles.Solid(below) && m.tiles.Deadly(below)
}

// Cost is the score spent entering state s.
func (m *Machine) Cost(s State) int {
	switch {
	case s.IsLaunch():
		return m.p.JumpCost
	case s.Motion == Backtracking, s.Motion == Falling && s.Bias == Left:
		return m.p.BacktrackCost
	}
	return 1
}

// Weight is the frontier priority of n; higher is expanded first.
func (m *Machine) Weight(n Node, g *tilegrid.Grid) int {
	return n.Score + n.X - g.W
}

// Children appends the legal successors of n to dst and returns it.
// parent is n's parent node, or nil for the root.
func (m *Machine) Children(dst []Candidate, n Node, parent *Node, g *tilegrid.Grid) []Candidate {
	if !m.IsAlive(n, parent, g) {
		return dst
	}
	// Only a landing player bounces; a rising one passes the tile by.
	forced := m.IsFalling(n, g) && m.ForcesJump(n, g)

	emit := func(x, y int, s State) {
		if !m.CanEnter(x, y, g) {
			return
		}
		c := Candidate{X: x, Y: y, State: s, Score: n.Score - m.Cost(s)}
		if forced && m.CanEnter(x, y-1, g) {
			c.Y = y - 1
			c.State = Jump(Straight, 0)
		}
		dst = append(dst, c)
	}

	switch {
	case m.IsFalling(n, g):
		for _, b := range [...]Bias{Left, Straight, Right} {
			emit(n.X+b.Dx(), n.Y+1, Fall(b))
		}
	case m.IsJumping(n, g):
		step := n.State.Step + 1
		y := max(0, n.Y-1)
		for _, b := range [...]Bias{Left, Straight, Right} {
			emit(n.X+b.Dx(), y, Jump(b, step))
		}
	default:
		emit(n.X+1, n.Y, Grounded())
		emit(n.X-1, n.Y, Backtrack())
		emit(n.X-1, n.Y-1, Jump(Left, 0))
		emit(n.X, n.Y-1, Jump(Straight, 0))
		emit(n.X+1, n.Y-1, Jump(Right, 0))
	}
	return dst
}
