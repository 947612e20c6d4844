// Package levels loads level files from disk.
// This package depends on the analysis core but the core does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/litetux-lab/internal/levels/formats"
	"github.com/vovakirdan/litetux-lab/internal/tilegrid"
)

// Level is a complete level definition.
type Level struct {
	ID       string
	Name     string
	TileSet  string
	Start    tilegrid.Coord
	HasStart bool
	Grid     *tilegrid.Grid
	Metadata map[string]string
	FilePath string
}

// Snapshot returns a private copy of the level grid for one analysis.
func (l *Level) Snapshot() *tilegrid.Grid {
	return l.Grid.Clone()
}

// StartOr returns the level's start point, or def when the file names none.
func (l *Level) StartOr(def tilegrid.Coord) tilegrid.Coord {
	if l.HasStart {
		return l.Start
	}
	return def
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsLevelFile(path) {
			return nil
		}

		level, err := LoadFile(path)
		if err != nil {
			log.Warn("skipping level file", "path", path, "err", err)
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// ErrNotFound is returned by LoadByID when no file under the root has the ID.
var ErrNotFound = errors.New("levels: level not found")

// LoadByID scans the root and returns the level with the given ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	i := sort.Search(len(all), func(i int) bool { return all[i].ID >= id })
	if i == len(all) || all[i].ID != id {
		return Level{}, fmt.Errorf("%w: %s in %s", ErrNotFound, id, l.Root)
	}
	return all[i], nil
}

// LoadFile loads a single level file. A file without an id takes its base
// name as the ID.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	lvl := FromParsed(parsed)
	lvl.FilePath = path
	if lvl.ID == "" {
		lvl.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return lvl, nil
}

// FromParsed converts a parsed file into a Level.
func FromParsed(p formats.Level) Level {
	return Level{
		ID:       p.ID,
		Name:     p.Name,
		TileSet:  p.TileSet,
		Start:    p.Start,
		HasStart: p.HasStart,
		Grid:     p.Grid,
		Metadata: p.Metadata,
	}
}

// ToParsed converts a Level back into its file form.
func (l *Level) ToParsed() formats.Level {
	return formats.Level{
		ID:       l.ID,
		Name:     l.Name,
		TileSet:  l.TileSet,
		Start:    l.Start,
		HasStart: l.HasStart,
		Grid:     l.Grid,
		Metadata: l.Metadata,
	}
}

// IsLevelFile reports whether path has a supported level extension.
func IsLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".lvl":
		return formats.ParseCode(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
