// Package tiles describes what each tile code means to the analyser: its
// category tags, solidity, hazards, rewards and placement rules.
// Sets are immutable once built and may be shared between goroutines.
package tiles

import (
	"fmt"
	"sort"
)

// LiteTux tile codes.
const (
	Empty = iota
	FallingSpike
	Cloud
	Owl
	Coin
	Snowball
	LargeCoin
	MrIceblock
	Ground
	GroundSpike
	BreakableBrick
	SlipperyGround
	Coinbox
	CollapsingWall
	PowerUp
	Cannon
)

// Tag is a category bit set.
type Tag uint8

const (
	TagEmpty Tag = 1 << iota
	TagHazard
	TagInteresting
	TagEnemy
	TagReward
	TagSolid
)

// Placement is a set of neighbour requirements checked against the grid.
type Placement uint8

const (
	EmptyAbove Placement = 1 << iota
	SolidAbove
	EmptyBelow
	OnSolid
	AboveSolid
)

// Usage is a set of requirements checked against path reachability.
type Usage uint8

const (
	Reachable Usage = 1 << iota
	AbovePath
	RightOfPath
	BesidePath
	Bumpable
	Walkable
)

// Side is a set of directions from which a tile can kill the player.
type Side uint8

const (
	FromLeft Side = 1 << iota
	FromRight
	FromAbove
	FromBelow
)

// Def describes one tile code.
type Def struct {
	Code      int
	Name      string
	Tags      Tag
	Placement Placement
	Usage     Usage

	// Leniency is the tile's contribution to adjusted leniency.
	// Rewards carry negative values.
	Leniency float64

	// PassThrough tiles are solid but can be entered and fallen into.
	PassThrough bool

	// DeathFrom lists the neighbouring cells whose paths count as deaths.
	DeathFrom Side

	// RewardJump is the reward-jump value of collecting the tile with a jump.
	// RewardFromBelow means the jump must reach the cell beneath the tile.
	RewardJump      int
	RewardFromBelow bool
}

// Has reports whether the definition carries every bit in t.
func (d Def) Has(t Tag) bool {
	return d.Tags&t == t
}

// Set is an immutable tile table.
type Set struct {
	name      string
	solidFrom int
	gapWeight float64
	defs      []Def
	known     []bool
}

// NewSet builds a tile set. Codes must be non-negative and unique.
// solidFrom is the first code treated as solid; gapWeight scales bottom-row
// gaps in adjusted leniency.
func NewSet(name string, solidFrom int, gapWeight float64, defs []Def) (*Set, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("tiles: set %q has no tiles", name)
	}
	maxCode := 0
	for _, d := range defs {
		if d.Code < 0 {
			return nil, fmt.Errorf("tiles: set %q: negative code %d", name, d.Code)
		}
		if d.Code > maxCode {
			maxCode = d.Code
		}
	}
	s := &Set{
		name:      name,
		solidFrom: solidFrom,
		gapWeight: gapWeight,
		defs:      make([]Def, maxCode+1),
		known:     make([]bool, maxCode+1),
	}
	for _, d := range defs {
		if s.known[d.Code] {
			return nil, fmt.Errorf("tiles: set %q: duplicate code %d", name, d.Code)
		}
		s.defs[d.Code] = d
		s.known[d.Code] = true
	}
	return s, nil
}

// Name returns the set's registry name.
func (s *Set) Name() string { return s.name }

// SolidFrom returns the first solid code.
func (s *Set) SolidFrom() int { return s.solidFrom }

// GapWeight returns the adjusted-leniency weight of a gap.
func (s *Set) GapWeight() float64 { return s.gapWeight }

// Def returns the definition for code.
func (s *Set) Def(code int) (Def, bool) {
	if !s.Valid(code) {
		return Def{}, false
	}
	return s.defs[code], true
}

// Valid reports whether code is defined in the set.
func (s *Set) Valid(code int) bool {
	return code >= 0 && code < len(s.defs) && s.known[code]
}

// Defs returns every definition ordered by code.
func (s *Set) Defs() []Def {
	out := make([]Def, 0, len(s.defs))
	for code, d := range s.defs {
		if s.known[code] {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// MaxCode returns the largest code the set can describe.
func (s *Set) MaxCode() int { return len(s.defs) - 1 }

// Is reports whether code is defined and carries tag.
func (s *Set) Is(code int, tag Tag) bool {
	d, ok := s.Def(code)
	return ok && d.Tags&tag != 0
}

// Solid reports whether code blocks movement. Negative codes (out of bounds
// sentinels) are solid.
func (s *Set) Solid(code int) bool {
	return code < 0 || code >= s.solidFrom
}

// PassThrough reports whether code is solid but enterable.
func (s *Set) PassThrough(code int) bool {
	d, ok := s.Def(code)
	return ok && d.PassThrough
}

// Enterable reports whether the player may occupy a cell holding code.
func (s *Set) Enterable(code int) bool {
	return !s.Solid(code) || s.PassThrough(code)
}

// Deadly reports whether touching code can kill the player.
func (s *Set) Deadly(code int) bool {
	return s.Is(code, TagHazard|TagEnemy)
}

// Gap reports whether a bottom-row cell holding code leaves nothing to stand on.
func (s *Set) Gap(code int) bool {
	return !s.Solid(code) && !s.Deadly(code)
}
