package metrics

import "github.com/vovakirdan/litetux-lab/internal/tiles"

// TileCount returns how many cells hold code.
func (m *Metrics) TileCount(code int) int {
	if code < 0 || code >= len(m.counts) {
		return 0
	}
	return m.counts[code]
}

// InvalidTiles returns how many cells hold a code the tile set does not define.
func (m *Metrics) InvalidTiles() int { return m.invalid }

// TotalTiles returns the number of cells.
func (m *Metrics) TotalTiles() int { return m.grid.W * m.grid.H }

func (m *Metrics) countTagged(tag tiles.Tag) int {
	n := 0
	for code, c := range m.counts {
		if c > 0 && m.tiles.Is(code, tag) {
			n += c
		}
	}
	return n
}

// EmptySpaceCount counts open tiles.
func (m *Metrics) EmptySpaceCount() int { return m.countTagged(tiles.TagEmpty) }

// InterestingCount counts tiles tagged interesting.
func (m *Metrics) InterestingCount() int { return m.countTagged(tiles.TagInteresting) }

// EnemiesCount counts enemy tiles.
func (m *Metrics) EnemiesCount() int { return m.countTagged(tiles.TagEnemy) }

// HazardCount counts hazard tiles.
func (m *Metrics) HazardCount() int { return m.countTagged(tiles.TagHazard) }

// RewardsCount counts reward tiles.
func (m *Metrics) RewardsCount() int { return m.countTagged(tiles.TagReward) }

// GapCount counts bottom-row cells with nothing to stand on.
func (m *Metrics) GapCount() int {
	if m.grid.H == 0 {
		return 0
	}
	bottom := m.grid.H - 1
	n := 0
	for x := 0; x < m.grid.W; x++ {
		if m.tiles.Gap(m.grid.Get(x, bottom)) {
			n++
		}
	}
	return n
}

// BaseLeniency is gaps + hazards + enemies - rewards.
func (m *Metrics) BaseLeniency() int {
	return m.GapCount() + m.HazardCount() + m.EnemiesCount() - m.RewardsCount()
}

// AdjustedLeniency weights each tile by its leniency value and each gap by
// the tile set's gap weight. Rewards carry negative weights.
func (m *Metrics) AdjustedLeniency() float64 {
	total := float64(m.GapCount()) * m.tiles.GapWeight()
	for code, c := range m.counts {
		if c == 0 {
			continue
		}
		if d, ok := m.tiles.Def(code); ok {
			total += float64(c) * d.Leniency
		}
	}
	return total
}
