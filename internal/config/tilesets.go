package config

import (
	"fmt"

	"github.com/vovakirdan/litetux-lab/internal/tiles"
)

// Build converts the definition into a tile set. base resolves the name in
// Extends.
func (ts TileSetConfig) Build(base func(name string) (*tiles.Set, error)) (*tiles.Set, error) {
	solidFrom, gapWeight := tiles.Ground, 0.0
	byCode := map[int]tiles.Def{}
	var order []int

	if ts.Extends != "" {
		parent, err := base(ts.Extends)
		if err != nil {
			return nil, fmt.Errorf("tileset %q extends: %w", ts.Name, err)
		}
		solidFrom, gapWeight = parent.SolidFrom(), parent.GapWeight()
		for _, d := range parent.Defs() {
			byCode[d.Code] = d
			order = append(order, d.Code)
		}
	}
	if ts.SolidFrom != nil {
		solidFrom = *ts.SolidFrom
	}
	if ts.GapWeight != nil {
		gapWeight = *ts.GapWeight
	}

	for _, tc := range ts.Tiles {
		d, err := tc.def()
		if err != nil {
			return nil, fmt.Errorf("tileset %q tile %d: %w", ts.Name, tc.Code, err)
		}
		if _, ok := byCode[d.Code]; !ok {
			order = append(order, d.Code)
		}
		byCode[d.Code] = d
	}

	defs := make([]tiles.Def, 0, len(order))
	for _, code := range order {
		defs = append(defs, byCode[code])
	}
	return tiles.NewSet(ts.Name, solidFrom, gapWeight, defs)
}

func (tc TileConfig) def() (tiles.Def, error) {
	tags, err := tiles.ParseTags(tc.Tags)
	if err != nil {
		return tiles.Def{}, err
	}
	placement, err := tiles.ParsePlacement(tc.Placement)
	if err != nil {
		return tiles.Def{}, err
	}
	usage, err := tiles.ParseUsage(tc.Usage)
	if err != nil {
		return tiles.Def{}, err
	}
	death, err := tiles.ParseSides(tc.DeathFrom)
	if err != nil {
		return tiles.Def{}, err
	}
	return tiles.Def{
		Code:            tc.Code,
		Name:            tc.Name,
		Tags:            tags,
		Placement:       placement,
		Usage:           usage,
		Leniency:        tc.Leniency,
		PassThrough:     tc.PassThrough,
		DeathFrom:       death,
		RewardJump:      tc.RewardJump,
		RewardFromBelow: tc.RewardFromBelow,
	}, nil
}

// buildTileSets builds every custom set in order. A set may extend a
// registered set or one defined earlier in the list.
func (c Config) buildTileSets() ([]*tiles.Set, error) {
	built := map[string]*tiles.Set{}
	resolve := func(name string) (*tiles.Set, error) {
		if s, ok := built[name]; ok {
			return s, nil
		}
		return tiles.Lookup(name)
	}

	sets := make([]*tiles.Set, 0, len(c.TileSets))
	for i, ts := range c.TileSets {
		if ts.Name == "" {
			return nil, fmt.Errorf("tilesets[%d]: name must be set", i)
		}
		if _, dup := built[ts.Name]; dup {
			return nil, fmt.Errorf("tilesets[%d]: duplicate name %q", i, ts.Name)
		}
		s, err := ts.Build(resolve)
		if err != nil {
			return nil, fmt.Errorf("tilesets[%d]: %w", i, err)
		}
		built[ts.Name] = s
		sets = append(sets, s)
	}
	return sets, nil
}

// RegisterTileSets installs the custom tile sets in the tiles registry,
// replacing any set of the same name.
func (c Config) RegisterTileSets() error {
	sets, err := c.buildTileSets()
	if err != nil {
		return err
	}
	for i, s := range sets {
		title := c.TileSets[i].Title
		if title == "" {
			title = s.Name()
		}
		tiles.Put(s.Name(), title, func() *tiles.Set { return s })
	}
	return nil
}

// ResolveTileSet looks up the configured tile set, or override when it is
// non-empty.
func (c Config) ResolveTileSet(override string) (*tiles.Set, error) {
	name := c.TileSet
	if override != "" {
		name = override
	}
	return tiles.Lookup(name)
}
