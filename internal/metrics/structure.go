package metrics

import (
	"math"

	"github.com/vovakirdan/litetux-lab/internal/tiles"
)

// Linearity is the squared correlation of the solid cells' x and y
// coordinates, in [0, 1]. Levels with no spread on either axis score 0.
func (m *Metrics) Linearity() float64 {
	var sumX, sumX2, sumY, sumY2, sumXY, n float64
	for y := 0; y < m.grid.H; y++ {
		for x := 0; x < m.grid.W; x++ {
			if !m.tiles.Solid(m.grid.Get(x, y)) {
				continue
			}
			fx, fy := float64(x), float64(y)
			sumX += fx
			sumX2 += fx * fx
			sumY += fy
			sumY2 += fy * fy
			sumXY += fx * fy
			n++
		}
	}

	ds := (n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY)
	if ds <= 0 {
		return 0
	}
	r := (n*sumXY - sumX*sumY) / math.Sqrt(ds)
	return math.Min(1, math.Max(0, r*r))
}

// NegativeSpace is the share of open cells the player can reach.
func (m *Metrics) NegativeSpace() float64 {
	open, reached := 0, 0
	for y := 0; y < m.grid.H; y++ {
		for x := 0; x < m.grid.W; x++ {
			if !m.tiles.Is(m.grid.Get(x, y), tiles.TagEmpty) {
				continue
			}
			open++
			if m.required.Reachable(x, y) {
				reached++
			}
		}
	}
	if open == 0 {
		return 0
	}
	return float64(reached) / float64(open)
}

// Density is the mean number of surfaces per column, a surface being a
// solid cell with an open cell directly above it.
func (m *Metrics) Density() float64 {
	if m.grid.W == 0 {
		return 0
	}
	surfaces := 0
	for x := 0; x < m.grid.W; x++ {
		for y := 1; y < m.grid.H; y++ {
			if m.tiles.Solid(m.grid.Get(x, y)) && !m.tiles.Solid(m.grid.Get(x, y-1)) {
				surfaces++
			}
		}
	}
	return float64(surfaces) / float64(m.grid.W)
}
