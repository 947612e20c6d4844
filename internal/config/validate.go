package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/litetux-lab/internal/metrics"
	"github.com/vovakirdan/litetux-lab/internal/pathing"
	"github.com/vovakirdan/litetux-lab/internal/tiles"
)

// Validate checks the configuration for values the analysis cannot use.
// All problems are reported together.
func (c Config) Validate() error {
	var errs []error

	if c.TileSet == "" {
		errs = append(errs, errors.New("tileset must be set"))
	} else if !tiles.Exists(c.TileSet) && !c.definesTileSet(c.TileSet) {
		errs = append(errs, fmt.Errorf("unknown tileset %q", c.TileSet))
	}
	if c.Start.X < 0 || c.Start.Y < 0 {
		errs = append(errs, fmt.Errorf("start (%d,%d) must not be negative", c.Start.X, c.Start.Y))
	}

	errs = append(errs, validateParams("search.required", c.Search.Required)...)
	errs = append(errs, validateParams("search.free", c.Search.Free)...)

	known := metrics.BundleKeys()
	for name := range c.Fitness.Metrics {
		if !slices.Contains(known, name) {
			errs = append(errs, fmt.Errorf("fitness: unknown metric %q", name))
		}
	}
	if c.Fitness.PoolSize < 1 {
		errs = append(errs, fmt.Errorf("fitness.pool_size must be at least 1, got %d", c.Fitness.PoolSize))
	}
	if c.Batch.Workers < 0 {
		errs = append(errs, fmt.Errorf("batch.workers must not be negative, got %d", c.Batch.Workers))
	}

	if _, err := c.buildTileSets(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func validateParams(field string, p pathing.Params) []error {
	var errs []error
	if p.JumpHeight < 1 {
		errs = append(errs, fmt.Errorf("%s.jump_height must be at least 1, got %d", field, p.JumpHeight))
	}
	if p.JumpCost < 0 || p.BacktrackCost < 0 {
		errs = append(errs, fmt.Errorf("%s: costs must not be negative", field))
	}
	if p.Budget <= 0 {
		errs = append(errs, fmt.Errorf("%s.budget must be positive, got %d", field, p.Budget))
	}
	return errs
}

func (c Config) definesTileSet(name string) bool {
	for _, ts := range c.TileSets {
		if ts.Name == name {
			return true
		}
	}
	return false
}
