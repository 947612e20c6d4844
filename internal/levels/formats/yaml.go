// Package formats provides level file parsers and encoders.
package formats

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/litetux-lab/internal/tilegrid"
)

// ErrBadRow is returned for a row containing something other than hex digits.
var ErrBadRow = errors.New("formats: bad tile row")

// YAMLLevel is the on-disk YAML shape of a level. Each row is a string of
// hex digits, one per tile, top row first.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name,omitempty"`
	TileSet  string            `yaml:"tileset,omitempty"`
	Start    *YAMLPoint        `yaml:"start,omitempty"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLPoint is a cell position in YAML form.
type YAMLPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Level is a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	TileSet  string
	Start    tilegrid.Coord
	HasStart bool
	Grid     *tilegrid.Grid
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	rows := make([][]int, len(yl.Rows))
	for i, r := range yl.Rows {
		row, err := parseRow(r)
		if err != nil {
			return Level{}, fmt.Errorf("row %d: %w", i, err)
		}
		rows[i] = row
	}
	g, err := tilegrid.FromRows(rows)
	if err != nil {
		return Level{}, err
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		TileSet:  yl.TileSet,
		Grid:     g,
		Metadata: yl.Metadata,
	}
	if yl.Start != nil {
		level.Start = tilegrid.C(yl.Start.X, yl.Start.Y)
		level.HasStart = true
	}
	return level, nil
}

// FormatYAML renders a level in the form ParseYAML reads.
func FormatYAML(l Level) ([]byte, error) {
	yl := YAMLLevel{
		ID:       l.ID,
		Name:     l.Name,
		TileSet:  l.TileSet,
		Metadata: l.Metadata,
	}
	if l.HasStart {
		yl.Start = &YAMLPoint{X: l.Start.X, Y: l.Start.Y}
	}
	if l.Grid != nil {
		for _, row := range l.Grid.Rows() {
			var sb strings.Builder
			for _, code := range row {
				sb.WriteByte(hexDigit(code))
			}
			yl.Rows = append(yl.Rows, sb.String())
		}
	}
	return yaml.Marshal(yl)
}

// parseRow reads one tile row. Spaces are ignored so wide rows can be grouped.
func parseRow(s string) ([]int, error) {
	row := make([]int, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' {
			continue
		}
		v, ok := hexValue(c)
		if !ok {
			return nil, fmt.Errorf("%w: %q at column %d", ErrBadRow, c, i)
		}
		row = append(row, v)
	}
	return row, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".lvl"}
}
