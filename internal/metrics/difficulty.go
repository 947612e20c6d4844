package metrics

import "github.com/vovakirdan/litetux-lab/internal/tiles"

// DeathPaths counts routes that end in a death: falling out of the level
// through a hole in the bottom row, or touching a deadly tile from one of
// the sides it kills from.
func (m *Metrics) DeathPaths() int {
	if m.grid.H == 0 {
		return 0
	}
	deathRow := m.grid.H - 1
	count := 0

	for x := 0; x < m.grid.W; x++ {
		if !m.tiles.Solid(m.grid.Get(x, deathRow)) {
			count += m.pathsAt(x, deathRow-1)
		}
	}

	for x := 0; x < m.grid.W; x++ {
		for y := 0; y < deathRow; y++ {
			d, ok := m.tiles.Def(m.grid.Get(x, y))
			if !ok || d.DeathFrom == 0 {
				continue
			}
			if d.DeathFrom&tiles.FromLeft != 0 && x > 0 {
				count += m.pathsAt(x-1, y)
			}
			if d.DeathFrom&tiles.FromRight != 0 && x+1 < m.grid.W {
				count += m.pathsAt(x+1, y)
			}
			if d.DeathFrom&tiles.FromBelow != 0 {
				count += m.pathsAt(x, y+1)
			}
			if d.DeathFrom&tiles.FromAbove != 0 && y > 0 {
				count += m.pathsAt(x, y-1)
			}
		}
	}
	return count
}

// PathLeniency is death paths per end path, or 0 when no path ends.
func (m *Metrics) PathLeniency() float64 {
	end := m.EndPaths()
	if end == 0 {
		return 0
	}
	return float64(m.DeathPaths()) / float64(end)
}
