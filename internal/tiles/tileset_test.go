package tiles_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/litetux-lab/internal/tiles"
)

func TestLiteTuxPredicates(t *testing.T) {
	s := tiles.LiteTux()

	testCases := []struct {
		code      int
		solid     bool
		enterable bool
		deadly    bool
		gap       bool
	}{
		{tiles.Empty, false, true, false, true},
		{tiles.FallingSpike, false, true, true, false},
		{tiles.Cloud, false, true, false, true},
		{tiles.Owl, false, true, true, false},
		{tiles.Coin, false, true, false, true},
		{tiles.LargeCoin, false, true, false, true},
		{tiles.Ground, true, false, false, false},
		{tiles.GroundSpike, true, true, true, false},
		{tiles.Coinbox, true, false, false, false},
		{tiles.Cannon, true, false, true, false},
		{-1, true, false, false, false},
	}

	for _, tc := range testCases {
		if got := s.Solid(tc.code); got != tc.solid {
			t.Errorf("Solid(%d): expected %v, got %v", tc.code, tc.solid, got)
		}
		if got := s.Enterable(tc.code); got != tc.enterable {
			t.Errorf("Enterable(%d): expected %v, got %v", tc.code, tc.enterable, got)
		}
		if got := s.Deadly(tc.code); got != tc.deadly {
			t.Errorf("Deadly(%d): expected %v, got %v", tc.code, tc.deadly, got)
		}
		if got := s.Gap(tc.code); got != tc.gap {
			t.Errorf("Gap(%d): expected %v, got %v", tc.code, tc.gap, got)
		}
	}
}

func TestLiteTuxDeadlyMatchesOddCodes(t *testing.T) {
	s := tiles.LiteTux()
	for code := 0; code < 16; code++ {
		if got, want := s.Deadly(code), code%2 == 1; got != want {
			t.Errorf("Deadly(%d): expected %v, got %v", code, want, got)
		}
	}
}

func TestLiteTuxTags(t *testing.T) {
	s := tiles.LiteTux()

	testCases := []struct {
		code int
		tags tiles.Tag
	}{
		{tiles.Empty, tiles.TagEmpty},
		{tiles.Cloud, tiles.TagEmpty | tiles.TagInteresting},
		{tiles.Owl, tiles.TagEnemy | tiles.TagInteresting},
		{tiles.LargeCoin, tiles.TagReward | tiles.TagInteresting},
		{tiles.Cannon, tiles.TagEnemy | tiles.TagHazard | tiles.TagSolid | tiles.TagInteresting},
	}

	for _, tc := range testCases {
		d, ok := s.Def(tc.code)
		if !ok {
			t.Fatalf("code %d missing", tc.code)
		}
		if d.Tags != tc.tags {
			t.Errorf("code %d: expected tags %v, got %v", tc.code, tiles.TagNames(tc.tags), tiles.TagNames(d.Tags))
		}
	}
}

func TestNewSetValidation(t *testing.T) {
	if _, err := tiles.NewSet("x", 8, 2, nil); err == nil {
		t.Error("expected error for empty set")
	}
	if _, err := tiles.NewSet("x", 8, 2, []tiles.Def{{Code: 1}, {Code: 1}}); err == nil {
		t.Error("expected error for duplicate code")
	}
	if _, err := tiles.NewSet("x", 8, 2, []tiles.Def{{Code: -2}}); err == nil {
		t.Error("expected error for negative code")
	}

	s, err := tiles.NewSet("tiny", 2, 1, []tiles.Def{{Code: 0, Name: "air"}, {Code: 3, Name: "rock"}})
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	if s.Valid(1) || !s.Valid(3) {
		t.Error("only declared codes should be valid")
	}
	if !s.Solid(2) || s.Solid(1) {
		t.Error("solid threshold not applied")
	}
}

func TestParseNames(t *testing.T) {
	tags, err := tiles.ParseTags([]string{"Hazard", " enemy"})
	if err != nil || tags != tiles.TagHazard|tiles.TagEnemy {
		t.Errorf("ParseTags: got %v, %v", tags, err)
	}
	if _, err := tiles.ParseUsage([]string{"flying"}); err == nil {
		t.Error("expected error for unknown usage rule")
	}
	sides, err := tiles.ParseSides([]string{"left", "below"})
	if err != nil || sides != tiles.FromLeft|tiles.FromBelow {
		t.Errorf("ParseSides: got %v, %v", sides, err)
	}
	if got := strings.Join(tiles.SideNames(sides), ","); got != "left,below" {
		t.Errorf("SideNames = %q, want left,below", got)
	}
	usage, _ := tiles.ParseUsage([]string{"walkable", "reachable"})
	if got := strings.Join(tiles.UsageNames(usage), ","); got != "reachable,walkable" {
		t.Errorf("UsageNames = %q, want reachable,walkable", got)
	}
	if got := tiles.PlacementNames(0); len(got) != 0 {
		t.Errorf("PlacementNames(0) = %v, want none", got)
	}
}

func TestRegistry(t *testing.T) {
	if !tiles.Exists(tiles.LiteTuxName) {
		t.Fatal("default set not registered")
	}
	s, err := tiles.Lookup(tiles.LiteTuxName)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if s.MaxCode() != 15 {
		t.Errorf("expected max code 15, got %d", s.MaxCode())
	}
	if _, err := tiles.Lookup("missing"); err == nil {
		t.Error("expected error for unknown set")
	}

	found := false
	for _, info := range tiles.List() {
		if info.Name == tiles.LiteTuxName {
			found = true
		}
	}
	if !found {
		t.Error("List does not include the default set")
	}
}
