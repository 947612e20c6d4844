package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/litetux-lab/internal/analysis"
	"github.com/vovakirdan/litetux-lab/internal/levels"
)

const flatYAML = "rows:\n  - \"00000\"\n  - \"00000\"\n  - \"88888\"\n"

func writeLevelFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(flatYAML), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollectLevels(t *testing.T) {
	dir := t.TempDir()
	writeLevelFile(t, filepath.Join(dir, "a.yaml"))
	writeLevelFile(t, filepath.Join(dir, "sub", "b.yaml"))
	single := filepath.Join(t.TempDir(), "c.yml")
	writeLevelFile(t, single)

	lvls, err := collectLevels([]string{dir, single})
	if err != nil {
		t.Fatalf("collectLevels() failed: %v", err)
	}
	var ids []string
	for _, l := range lvls {
		ids = append(ids, l.ID)
	}
	if len(ids) != 3 || ids[0] != "a" || ids[1] != "b" || ids[2] != "c" {
		t.Errorf("ids = %v, want [a b c]", ids)
	}

	if _, err := collectLevels([]string{t.TempDir()}); err == nil {
		t.Error("expected error for a directory without levels")
	}
	if _, err := collectLevels([]string{filepath.Join(dir, "missing.yaml")}); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestDirGroups(t *testing.T) {
	root := "levels"
	result := func(path string) analysis.Result {
		return analysis.Result{Level: levels.Level{FilePath: path}}
	}
	results := []analysis.Result{
		result("levels/top.yaml"),
		result("levels/gen2/a.yaml"),
		result("levels/gen1/b.yaml"),
		result("levels/gen2/c.yaml"),
	}

	group := dirGroups(root, results)
	want := []int{0, 2, 1, 2}
	for i, res := range results {
		if got := group(res); got != want[i] {
			t.Errorf("group(%s) = %d, want %d", res.Level.FilePath, got, want[i])
		}
	}
}
