package tiles

import (
	"fmt"
	"strings"
)

var tagNames = map[string]Tag{
	"empty":       TagEmpty,
	"hazard":      TagHazard,
	"interesting": TagInteresting,
	"enemy":       TagEnemy,
	"reward":      TagReward,
	"solid":       TagSolid,
}

var placementNames = map[string]Placement{
	"empty_above": EmptyAbove,
	"solid_above": SolidAbove,
	"empty_below": EmptyBelow,
	"on_solid":    OnSolid,
	"above_solid": AboveSolid,
}

var usageNames = map[string]Usage{
	"reachable":     Reachable,
	"above_path":    AbovePath,
	"right_of_path": RightOfPath,
	"beside_path":   BesidePath,
	"bumpable":      Bumpable,
	"walkable":      Walkable,
}

var sideNames = map[string]Side{
	"left":  FromLeft,
	"right": FromRight,
	"above": FromAbove,
	"below": FromBelow,
}

// ParseTags converts tag names such as "hazard" into a Tag set.
func ParseTags(names []string) (Tag, error) {
	return parseBits(names, tagNames, "tag")
}

// ParsePlacement converts names such as "on_solid" into a Placement set.
func ParsePlacement(names []string) (Placement, error) {
	return parseBits(names, placementNames, "placement rule")
}

// ParseUsage converts names such as "reachable" into a Usage set.
func ParseUsage(names []string) (Usage, error) {
	return parseBits(names, usageNames, "usage rule")
}

// ParseSides converts names such as "left" into a Side set.
func ParseSides(names []string) (Side, error) {
	return parseBits(names, sideNames, "side")
}

// TagNames returns the names of the bits set in t, in declaration order.
func TagNames(t Tag) []string {
	return bitNames(t, tagNames, []string{"empty", "hazard", "interesting", "enemy", "reward", "solid"})
}

// PlacementNames returns the names of the rules set in p.
func PlacementNames(p Placement) []string {
	return bitNames(p, placementNames, []string{"empty_above", "solid_above", "empty_below", "on_solid", "above_solid"})
}

// UsageNames returns the names of the rules set in u.
func UsageNames(u Usage) []string {
	return bitNames(u, usageNames, []string{"reachable", "above_path", "right_of_path", "beside_path", "bumpable", "walkable"})
}

// SideNames returns the names of the sides set in s.
func SideNames(s Side) []string {
	return bitNames(s, sideNames, []string{"left", "right", "above", "below"})
}

func bitNames[T ~uint8](bits T, table map[string]T, order []string) []string {
	var out []string
	for _, name := range order {
		if bits&table[name] != 0 {
			out = append(out, name)
		}
	}
	return out
}

func parseBits[T ~uint8](names []string, table map[string]T, kind string) (T, error) {
	var bits T
	for _, n := range names {
		b, ok := table[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			return 0, fmt.Errorf("tiles: unknown %s %q", kind, n)
		}
		bits |= b
	}
	return bits, nil
}
