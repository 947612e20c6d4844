// Package metrics measures a level: tile makeup, difficulty, structure and
// motion. Each Metrics value searches its own snapshot of the grid twice,
// once pricing jumps high ("required jumps") and once pricing them like
// any other move ("free jumps"). Queries never fail; degenerate input
// yields zero values.
package metrics

import (
	"context"

	"github.com/vovakirdan/litetux-lab/internal/pathing"
	"github.com/vovakirdan/litetux-lab/internal/tilegrid"
	"github.com/vovakirdan/litetux-lab/internal/tiles"
)

// Options configures an analysis.
type Options struct {
	Tiles    *tiles.Set
	Start    tilegrid.Coord
	Required pathing.Params
	Free     pathing.Params
}

// DefaultOptions starts the player in the top-left cell with the LiteTux tiles.
func DefaultOptions() Options {
	return Options{
		Tiles:    tiles.LiteTux(),
		Start:    tilegrid.C(0, 0),
		Required: pathing.RequiredJumpParams(),
		Free:     pathing.FreeJumpParams(),
	}
}

// Metrics holds the searched boards for one level.
type Metrics struct {
	grid     *tilegrid.Grid
	tiles    *tiles.Set
	required *pathing.Board
	free     *pathing.Board

	counts  []int
	invalid int
}

// New analyses g. The grid is copied; later changes to g are not seen.
func New(g *tilegrid.Grid, opts Options) *Metrics {
	m, _ := NewContext(context.Background(), g, opts)
	return m
}

// NewContext is New with cancellation. On error the returned Metrics is
// still usable but reflects a partial search.
func NewContext(ctx context.Context, g *tilegrid.Grid, opts Options) (*Metrics, error) {
	if opts.Tiles == nil {
		opts.Tiles = tiles.LiteTux()
	}
	snap := g.Clone()
	m := &Metrics{
		grid:     snap,
		tiles:    opts.Tiles,
		required: pathing.NewBoard(snap, pathing.NewMachine(opts.Required, opts.Tiles)),
		free:     pathing.NewBoard(snap, pathing.NewMachine(opts.Free, opts.Tiles)),
		counts:   make([]int, opts.Tiles.MaxCode()+1),
	}
	m.countTiles()

	if err := m.required.ProcessAllPathsContext(ctx, opts.Start.X, opts.Start.Y); err != nil {
		return m, err
	}
	if err := m.free.ProcessAllPathsContext(ctx, opts.Start.X, opts.Start.Y); err != nil {
		return m, err
	}
	return m, nil
}

func (m *Metrics) countTiles() {
	for _, code := range m.grid.Cells {
		if m.tiles.Valid(code) {
			m.counts[code]++
		} else {
			m.invalid++
		}
	}
}

// Grid returns the analysed snapshot.
func (m *Metrics) Grid() *tilegrid.Grid { return m.grid }

// Tiles returns the tile set the level was analysed with.
func (m *Metrics) Tiles() *tiles.Set { return m.tiles }

// RequiredBoard returns the search that prices jumps high.
func (m *Metrics) RequiredBoard() *pathing.Board { return m.required }

// FreeBoard returns the search that prices every move the same.
func (m *Metrics) FreeBoard() *pathing.Board { return m.free }

// Report gathers every metric.
type Report struct {
	Width  int
	Height int

	Empty       int
	Interesting int
	Enemies     int
	Hazards     int
	Rewards     int

	Leniency         int
	AdjustedLeniency float64
	PathLeniency     float64
	Completable      bool

	Linearity     float64
	NegativeSpace float64
	Density       float64
	Gaps          int

	Jumps         int
	RequiredJumps int
	RewardJumps   int

	PlacementViolations int
	UsageViolations     int
	FurthestColumn      int
}

// Report computes every metric.
func (m *Metrics) Report() Report {
	return Report{
		Width:               m.grid.W,
		Height:              m.grid.H,
		Empty:               m.EmptySpaceCount(),
		Interesting:         m.InterestingCount(),
		Enemies:             m.EnemiesCount(),
		Hazards:             m.HazardCount(),
		Rewards:             m.RewardsCount(),
		Leniency:            m.BaseLeniency(),
		AdjustedLeniency:    m.AdjustedLeniency(),
		PathLeniency:        m.PathLeniency(),
		Completable:         m.Completable(),
		Linearity:           m.Linearity(),
		NegativeSpace:       m.NegativeSpace(),
		Density:             m.Density(),
		Gaps:                m.GapCount(),
		Jumps:               m.Jumps(),
		RequiredJumps:       m.RequiredJumps(),
		RewardJumps:         m.RewardJumps(),
		PlacementViolations: m.PlacementViolations(),
		UsageViolations:     m.UsageViolations(),
		FurthestColumn:      m.FurthestReachableColumn(),
	}
}
