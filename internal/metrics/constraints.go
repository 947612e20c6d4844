package metrics

import "github.com/vovakirdan/litetux-lab/internal/tiles"

// PlacementViolations counts cells, bottom row excluded, whose tile breaks
// one of its placement rules.
func (m *Metrics) PlacementViolations() int {
	count := 0
	for x := 0; x < m.grid.W; x++ {
		for y := 0; y < m.grid.H-1; y++ {
			d, ok := m.tiles.Def(m.grid.Get(x, y))
			if ok && !m.placementOK(d.Placement, x, y) {
				count++
			}
		}
	}
	return count
}

func (m *Metrics) placementOK(rules tiles.Placement, x, y int) bool {
	solid := func(x, y int) bool { return m.tiles.Solid(m.grid.Get(x, y)) }

	if rules&tiles.EmptyAbove != 0 && y > 0 && solid(x, y-1) {
		return false
	}
	if rules&tiles.SolidAbove != 0 && y > 0 && !solid(x, y-1) {
		return false
	}
	if rules&tiles.EmptyBelow != 0 && y < m.grid.H-1 && solid(x, y+1) {
		return false
	}
	if rules&tiles.OnSolid != 0 && y < m.grid.H-1 && !solid(x, y+1) {
		return false
	}
	if rules&tiles.AboveSolid != 0 {
		grounded := false
		for i := y + 1; i < m.grid.H; i++ {
			if solid(x, i) {
				grounded = true
				break
			}
		}
		if !grounded {
			return false
		}
	}
	return true
}

// UsageViolations counts cells, bottom row excluded, whose tile cannot be
// used the way its usage rules require, judged by the required-jumps search.
func (m *Metrics) UsageViolations() int {
	count := 0
	for x := 0; x < m.grid.W; x++ {
		for y := 0; y < m.grid.H-1; y++ {
			d, ok := m.tiles.Def(m.grid.Get(x, y))
			if ok && !m.usageOK(d.Usage, x, y) {
				count++
			}
		}
	}
	return count
}

func (m *Metrics) usageOK(rules tiles.Usage, x, y int) bool {
	reach := m.required.Reachable

	if rules&tiles.Reachable != 0 && !reach(x, y) {
		return false
	}
	if rules&tiles.AbovePath != 0 {
		below := false
		for _, n := range m.required.NodesInColumn(x) {
			if n.Y > y {
				below = true
				break
			}
		}
		if !below {
			return false
		}
	}
	if rules&tiles.RightOfPath != 0 && !reach(x-1, y) {
		return false
	}
	if rules&tiles.BesidePath != 0 && !reach(x-1, y) && !reach(x+1, y) {
		return false
	}
	if rules&tiles.Bumpable != 0 && !reach(x, y+1) {
		return false
	}
	if rules&tiles.Walkable != 0 && !reach(x, y-1) {
		return false
	}
	return true
}
