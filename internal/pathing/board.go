package pathing

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/litetux-lab/internal/tilegrid"
)

// ErrBoardUsed is returned when a board is asked to search a second time.
var ErrBoardUsed = errors.New("pathing: board already searched")

// NodeID indexes a node in a board's arena.
type NodeID int32

// None marks an empty best slot or a root's missing parent.
const None NodeID = -1

// Node is one arrival at a cell in a given motion state.
type Node struct {
	ID      NodeID
	X, Y    int
	State   State
	Score   int
	Parent  NodeID
	Joiners []NodeID
}

// IsRoot reports whether the node has no parent.
func (n Node) IsRoot() bool { return n.Parent == None }

// Board runs one exhaustive search over a private snapshot of a grid.
// Boards are single-use and not safe for concurrent use.
type Board struct {
	grid *tilegrid.Grid
	m    *Machine

	nodes    []Node
	best     []NodeID
	expanded []bool
	open     frontier
	scratch  []Candidate
	searched bool
}

// NewBoard prepares a search of g. The board reads a non-wrapping copy of g
// whose outside cells are solid, so later changes to g have no effect.
func NewBoard(g *tilegrid.Grid, m *Machine) *Board {
	snap := g.Clone()
	snap.Wrap = false
	snap.Outside = tilegrid.DefaultOutside()

	best := make([]NodeID, m.NumStates()*snap.W*snap.H)
	for i := range best {
		best[i] = None
	}
	return &Board{grid: snap, m: m, best: best}
}

// Machine returns the movement rules the board searches with.
func (b *Board) Machine() *Machine { return b.m }

// Width returns the searched grid's width.
func (b *Board) Width() int { return b.grid.W }

// Height returns the searched grid's height.
func (b *Board) Height() int { return b.grid.H }

// ProcessAllPaths expands every reachable node from (x, y).
func (b *Board) ProcessAllPaths(x, y int) {
	if err := b.ProcessAllPathsContext(context.Background(), x, y); err != nil {
		log.Warn("pathing: search skipped", "error", err)
	}
}

// ProcessAllPathsContext is ProcessAllPaths with cancellation checked
// between frontier pops. A cancelled board keeps the nodes found so far.
func (b *Board) ProcessAllPathsContext(ctx context.Context, x, y int) error {
	if b.searched {
		return ErrBoardUsed
	}
	b.searched = true

	if !b.grid.InBounds(x, y) {
		log.Warn("pathing: start outside grid", "x", x, "y", y, "w", b.grid.W, "h", b.grid.H)
		return nil
	}

	b.addNode(Candidate{X: x, Y: y, State: Grounded(), Score: b.m.p.Budget}, None)
	for b.open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		b.expand(b.open.next())
	}
	return nil
}

func (b *Board) expand(id NodeID) {
	b.expanded[id] = true
	n := b.nodes[id]

	var parent *Node
	if n.Parent != None {
		p := b.nodes[n.Parent]
		parent = &p
	}

	b.scratch = b.m.Children(b.scratch[:0], n, parent, b.grid)
	for _, c := range b.scratch {
		b.addNode(c, id)
	}
}

// addNode files c under its slot. A strictly better score takes the slot
// and demotes the previous best to a joiner; anything else joins the best.
func (b *Board) addNode(c Candidate, parent NodeID) {
	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, Node{
		ID:     id,
		X:      c.X,
		Y:      c.Y,
		State:  c.State,
		Score:  c.Score,
		Parent: parent,
	})
	b.expanded = append(b.expanded, false)

	slot := b.slot(c.State, c.X, c.Y)
	cur := b.best[slot]
	switch {
	case cur == None:
		b.best[slot] = id
		b.open.add(id, b.m.Weight(b.nodes[id], b.grid))
	case b.nodes[cur].Score < c.Score:
		b.nodes[id].Joiners = append(b.nodes[id].Joiners, cur)
		b.open.remove(cur)
		b.best[slot] = id
		b.open.add(id, b.m.Weight(b.nodes[id], b.grid))
	default:
		b.nodes[cur].Joiners = append(b.nodes[cur].Joiners, id)
	}
}

func (b *Board) slot(s State, x, y int) int {
	return (b.m.Index(s)*b.grid.H+y)*b.grid.W + x
}

// Len returns the number of nodes created, joiners included.
func (b *Board) Len() int { return len(b.nodes) }

// FrontierLen returns the number of queued, unexpanded nodes.
func (b *Board) FrontierLen() int { return b.open.Len() }

// Expanded reports whether the node's children were generated.
func (b *Board) Expanded(id NodeID) bool {
	return id >= 0 && int(id) < len(b.expanded) && b.expanded[id]
}

// Node returns the node with the given id.
func (b *Board) Node(id NodeID) (Node, bool) {
	if id < 0 || int(id) >= len(b.nodes) {
		return Node{}, false
	}
	return b.nodes[id], true
}

// Parent returns n's parent.
func (b *Board) Parent(n Node) (Node, bool) {
	return b.Node(n.Parent)
}

// Best returns the best node for state s at (x, y).
func (b *Board) Best(s State, x, y int) (Node, bool) {
	if !b.grid.InBounds(x, y) {
		return Node{}, false
	}
	i := b.m.Index(s)
	if i < 0 || i >= b.m.NumStates() {
		return Node{}, false
	}
	return b.Node(b.best[b.slot(s, x, y)])
}

// NodesAt returns the best node of every state present at (x, y).
func (b *Board) NodesAt(x, y int) []Node {
	if !b.grid.InBounds(x, y) {
		return nil
	}
	var out []Node
	for i := 0; i < b.m.NumStates(); i++ {
		if id := b.best[(i*b.grid.H+y)*b.grid.W+x]; id != None {
			out = append(out, b.nodes[id])
		}
	}
	return out
}

// Reachable reports whether any node stands at (x, y).
func (b *Board) Reachable(x, y int) bool {
	if !b.grid.InBounds(x, y) {
		return false
	}
	for i := 0; i < b.m.NumStates(); i++ {
		if b.best[(i*b.grid.H+y)*b.grid.W+x] != None {
			return true
		}
	}
	return false
}

// NodesInColumn returns the best nodes in column x, top row first.
func (b *Board) NodesInColumn(x int) []Node {
	if x < 0 || x >= b.grid.W {
		return nil
	}
	var out []Node
	for y := 0; y < b.grid.H; y++ {
		out = append(out, b.NodesAt(x, y)...)
	}
	return out
}

// BestNodes returns every best node, column by column.
func (b *Board) BestNodes() []Node {
	var out []Node
	for x := 0; x < b.grid.W; x++ {
		out = append(out, b.NodesInColumn(x)...)
	}
	return out
}

// Path returns the chain from the root to n.
func (b *Board) Path(n Node) []Node {
	var rev []Node
	for cur, ok := n, true; ok; cur, ok = b.Parent(cur) {
		rev = append(rev, cur)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// CountPaths estimates how many distinct routes end at n: one for the best
// chain plus one per joiner recorded along it.
func (b *Board) CountPaths(n Node) int {
	count := 1
	for cur, ok := n, true; ok; cur, ok = b.Parent(cur) {
		count += len(cur.Joiners)
	}
	return count
}

// ArrowMap draws, for every best node, the arrow of the move that produced
// it into its parent's cell. Roots draw into their own cell.
func ArrowMap(b *Board) *tilegrid.Grid {
	arrows := tilegrid.New(b.grid.W, b.grid.H)
	for _, n := range b.BestNodes() {
		at := n
		if p, ok := b.Parent(n); ok {
			at = p
		}
		arrows.Set(at.X, at.Y, arrows.Get(at.X, at.Y)|int(ArrowID(n.State)))
	}
	return arrows
}
