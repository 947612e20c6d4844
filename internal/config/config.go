// Package config provides YAML-based configuration for level analysis:
// search parameters, fitness weights, batch settings and custom tile sets.
package config

import (
	"github.com/vovakirdan/litetux-lab/internal/fitness"
	"github.com/vovakirdan/litetux-lab/internal/pathing"
)

// Config contains all configuration for the analysis tools.
type Config struct {
	TileSet  string          `yaml:"tileset"`
	Start    Point           `yaml:"start"`
	Search   SearchConfig    `yaml:"search"`
	Fitness  FitnessConfig   `yaml:"fitness"`
	Batch    BatchConfig     `yaml:"batch"`
	Storage  StorageConfig   `yaml:"storage"`
	TileSets []TileSetConfig `yaml:"tilesets,omitempty"`
}

// Point is a cell position.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SearchConfig holds the parameters of the two searches every analysis runs.
type SearchConfig struct {
	Required pathing.Params `yaml:"required"`
	Free     pathing.Params `yaml:"free"`
}

// FitnessConfig selects how levels are scored.
// A non-empty Script takes precedence over Metrics.
type FitnessConfig struct {
	Metrics  map[string]fitness.Weigher `yaml:"metrics"`
	Script   string                     `yaml:"script,omitempty"`
	PoolSize int                        `yaml:"pool_size"`
}

// BatchConfig defines parallel analysis settings.
type BatchConfig struct {
	Workers int `yaml:"workers"` // 0 = one per CPU
}

// StorageConfig defines where analysis reports are kept.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// TileSetConfig defines a custom tile set. Extends names a set whose tiles
// are copied first; Tiles then add or replace codes. Unset SolidFrom and
// GapWeight are inherited from the extended set.
type TileSetConfig struct {
	Name      string       `yaml:"name"`
	Title     string       `yaml:"title,omitempty"`
	Extends   string       `yaml:"extends,omitempty"`
	SolidFrom *int         `yaml:"solid_from,omitempty"`
	GapWeight *float64     `yaml:"gap_weight,omitempty"`
	Tiles     []TileConfig `yaml:"tiles"`
}

// TileConfig defines one tile of a custom set. Flag lists use the
// snake_case names accepted by the tiles package.
type TileConfig struct {
	Code            int      `yaml:"code"`
	Name            string   `yaml:"name"`
	Tags            []string `yaml:"tags,omitempty"`
	Placement       []string `yaml:"placement,omitempty"`
	Usage           []string `yaml:"usage,omitempty"`
	Leniency        float64  `yaml:"leniency,omitempty"`
	PassThrough     bool     `yaml:"pass_through,omitempty"`
	DeathFrom       []string `yaml:"death_from,omitempty"`
	RewardJump      int      `yaml:"reward_jump,omitempty"`
	RewardFromBelow bool     `yaml:"reward_from_below,omitempty"`
}
