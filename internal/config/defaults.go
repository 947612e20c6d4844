package config

import (
	_ "embed"

	"github.com/vovakirdan/litetux-lab/internal/fitness"
	"github.com/vovakirdan/litetux-lab/internal/pathing"
	"github.com/vovakirdan/litetux-lab/internal/tiles"
)

//go:embed defaults/litetux.yaml
var defaultYAML []byte

// DefaultDBPath is where reports are stored unless configured otherwise.
const DefaultDBPath = "~/.litetux/reports.db"

// DefaultPoolSize is the number of levels kept by a fitness ranking.
const DefaultPoolSize = 10

// Default returns the default configuration.
func Default() Config {
	return Config{
		TileSet: tiles.LiteTuxName,
		Search: SearchConfig{
			Required: pathing.RequiredJumpParams(),
			Free:     pathing.FreeJumpParams(),
		},
		Fitness: FitnessConfig{
			Metrics:  fitness.DefaultWeighers(),
			PoolSize: DefaultPoolSize,
		},
		Storage: StorageConfig{Path: DefaultDBPath},
	}
}
