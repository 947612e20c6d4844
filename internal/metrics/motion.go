package metrics

import "github.com/vovakirdan/litetux-lab/internal/pathing"

// Completable reports whether the required-jumps search reaches the last column.
func (m *Metrics) Completable() bool {
	return m.grid.W > 0 && len(m.required.NodesInColumn(m.grid.W-1)) > 0
}

// FurthestReachableColumn returns one plus the rightmost column the player
// reaches, or 0 when nothing is reached.
func (m *Metrics) FurthestReachableColumn() int {
	for x := m.grid.W - 1; x >= 0; x-- {
		if len(m.required.NodesInColumn(x)) > 0 {
			return x + 1
		}
	}
	return 0
}

// Jumps counts jump launches on the best route of the free-jumps search.
func (m *Metrics) Jumps() int {
	return countJumpsInBestPath(m.free)
}

// RequiredJumps counts jump launches on the best route of the required-jumps search.
func (m *Metrics) RequiredJumps() int {
	return countJumpsInBestPath(m.required)
}

// countJumpsInBestPath counts launches on the route to the highest-scoring
// node in the rightmost reached column. Among equal scores the route with
// the fewest launches wins, so a jump that costs no more than walking is
// not counted.
func countJumpsInBestPath(b *pathing.Board) int {
	for x := b.Width() - 1; x >= 0; x-- {
		nodes := b.NodesInColumn(x)
		if len(nodes) == 0 {
			continue
		}
		best, jumps := nodes[0].Score, launches(b, nodes[0])
		for _, n := range nodes[1:] {
			switch {
			case n.Score > best:
				best, jumps = n.Score, launches(b, n)
			case n.Score == best:
				jumps = min(jumps, launches(b, n))
			}
		}
		return jumps
	}
	return 0
}

func launches(b *pathing.Board, end pathing.Node) int {
	n := 0
	for _, p := range b.Path(end) {
		if p.State.IsLaunch() {
			n++
		}
	}
	return n
}

// RewardJumps sums the reward-jump value of every reward the player can
// collect mid-jump: the jump must pass through the reward's cell, or the
// cell below it for rewards released by bumping.
func (m *Metrics) RewardJumps() int {
	total := 0
	for x := 0; x < m.grid.W; x++ {
		for y := 0; y < m.grid.H-1; y++ {
			d, ok := m.tiles.Def(m.grid.Get(x, y))
			if !ok || d.RewardJump == 0 {
				continue
			}
			at := y
			if d.RewardFromBelow {
				at = y + 1
			}
			if hasJumpingNode(m.required.NodesAt(x, at)) {
				total += d.RewardJump
			}
		}
	}
	return total
}

func hasJumpingNode(nodes []pathing.Node) bool {
	for _, n := range nodes {
		if n.State.IsJump() {
			return true
		}
	}
	return false
}

// EndPaths counts routes that finish in the last column.
func (m *Metrics) EndPaths() int {
	if m.grid.W == 0 {
		return 0
	}
	return m.pathsThrough(m.required.NodesInColumn(m.grid.W - 1))
}

func (m *Metrics) pathsThrough(nodes []pathing.Node) int {
	n := 0
	for _, node := range nodes {
		n += m.required.CountPaths(node)
	}
	return n
}

func (m *Metrics) pathsAt(x, y int) int {
	return m.pathsThrough(m.required.NodesAt(x, y))
}
