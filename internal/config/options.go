package config

import (
	"github.com/vovakirdan/litetux-lab/internal/fitness"
	"github.com/vovakirdan/litetux-lab/internal/metrics"
	"github.com/vovakirdan/litetux-lab/internal/tilegrid"
	"github.com/vovakirdan/litetux-lab/internal/tiles"
)

// MetricsOptions returns analysis options for the given tile set.
func (c Config) MetricsOptions(set *tiles.Set) metrics.Options {
	return metrics.Options{
		Tiles:    set,
		Start:    tilegrid.C(c.Start.X, c.Start.Y),
		Required: c.Search.Required,
		Free:     c.Search.Free,
	}
}

// Evaluator returns the configured fitness evaluator: the script when one
// is set, otherwise a calculator over the configured weighers.
func (c Config) Evaluator() (fitness.Evaluator, error) {
	if c.Fitness.Script != "" {
		return fitness.LoadScript(c.Fitness.Script)
	}
	return fitness.NewCalculator(c.Fitness.Metrics), nil
}
