package analysis_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/litetux-lab/internal/analysis"
	"github.com/vovakirdan/litetux-lab/internal/fitness"
	"github.com/vovakirdan/litetux-lab/internal/levels"
	"github.com/vovakirdan/litetux-lab/internal/metrics"
	"github.com/vovakirdan/litetux-lab/internal/tilegrid"
	"github.com/vovakirdan/litetux-lab/internal/tiles"
)

func flatLevel(t *testing.T, id string, width int) levels.Level {
	t.Helper()
	rows := [][]int{make([]int, width), make([]int, width), make([]int, width)}
	for x := range rows[2] {
		rows[2][x] = tiles.Ground
	}
	g, err := tilegrid.FromRows(rows)
	require.NoError(t, err)
	return levels.Level{ID: id, Grid: g, Start: tilegrid.C(0, 1), HasStart: true}
}

func TestAnalyzeFlatLevel(t *testing.T) {
	r := analysis.NewRunner(metrics.DefaultOptions(), analysis.WithEvaluator(fitness.NewCalculator(nil)))

	lvl := flatLevel(t, "flat", 5)
	res, err := r.Analyze(context.Background(), lvl)
	require.NoError(t, err)
	require.NoError(t, res.Err)
	assert.NoError(t, res.Warning)

	assert.Equal(t, tiles.LiteTuxName, res.TileSet)
	assert.True(t, res.Report.Completable)
	assert.Equal(t, 5, res.Report.FurthestColumn)
	assert.True(t, res.HasFitness)
	require.NotNil(t, res.Metrics)
	assert.NotSame(t, lvl.Grid, res.Metrics.Grid(), "analysis must run on a snapshot")
}

func TestAnalyzeUsesDefaultStart(t *testing.T) {
	lvl := flatLevel(t, "flat", 5)
	lvl.HasStart = false

	opts := metrics.DefaultOptions()
	opts.Start = tilegrid.C(0, 2) // inside the ground
	res, err := analysis.NewRunner(opts).Analyze(context.Background(), lvl)
	require.NoError(t, err)
	assert.False(t, res.Report.Completable)
}

func TestAnalyzeReportsLevelProblems(t *testing.T) {
	r := analysis.NewRunner(metrics.DefaultOptions())

	lvl := flatLevel(t, "odd", 3)
	lvl.TileSet = "no-such-set"
	res, err := r.Analyze(context.Background(), lvl)
	require.NoError(t, err)
	assert.Error(t, res.Err)

	lvl = flatLevel(t, "outside", 3)
	lvl.Start = tilegrid.C(9, 9)
	res, err = r.Analyze(context.Background(), lvl)
	require.NoError(t, err)
	var ve levels.ValidationError
	require.ErrorAs(t, res.Warning, &ve)
	assert.Equal(t, "START_OUT_OF_RANGE", ve.Code)
	assert.Zero(t, res.Report.FurthestColumn)

	res, err = r.Analyze(context.Background(), levels.Level{ID: "nogrid"})
	require.NoError(t, err)
	assert.Error(t, res.Err)
}

func TestAnalyzeAllKeepsOrder(t *testing.T) {
	var lvls []levels.Level
	for w := 1; w <= 12; w++ {
		lvls = append(lvls, flatLevel(t, "w", w))
	}

	r := analysis.NewRunner(metrics.DefaultOptions(), analysis.WithWorkers(3))
	assert.Equal(t, 3, r.Workers())

	results, err := r.AnalyzeAll(context.Background(), lvls)
	require.NoError(t, err)
	require.Len(t, results, len(lvls))
	for i, res := range results {
		assert.Equal(t, i+1, res.Report.Width)
	}

	// Parallel and sequential runs agree.
	for i, lvl := range lvls {
		single, err := r.Analyze(context.Background(), lvl)
		require.NoError(t, err)
		assert.Equal(t, single.Report, results[i].Report)
	}
}

func TestAnalyzeAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := analysis.NewRunner(metrics.DefaultOptions())
	_, err := r.AnalyzeAll(ctx, []levels.Level{flatLevel(t, "a", 4), flatLevel(t, "b", 4)})
	require.ErrorIs(t, err, context.Canceled)
}

func TestWatcherReportsLevelFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := analysis.NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lvl.yaml"), []byte("rows: [\"08\"]\n"), 0o644))

	select {
	case path := <-w.Events:
		assert.Equal(t, "lvl.yaml", filepath.Base(path))
	case <-time.After(3 * time.Second):
		t.Fatal("no event for level file")
	}
}

func TestWatcherClose(t *testing.T) {
	w, err := analysis.NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, ok := <-w.Events
	assert.False(t, ok, "Events should be closed")
}

func TestFollowAnalysesChangedFiles(t *testing.T) {
	dir := t.TempDir()
	staging := t.TempDir()
	w, err := analysis.NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan analysis.Result, 4)
	done := make(chan error, 1)
	r := analysis.NewRunner(metrics.DefaultOptions())
	go func() {
		done <- r.Follow(ctx, w, func(path string, res analysis.Result, err error) {
			if err == nil {
				got <- res
			}
		})
	}()

	src := filepath.Join(staging, "live.yaml")
	require.NoError(t, os.WriteFile(src, []byte("start: {x: 0, y: 1}\nrows: [\"000\", \"000\", \"888\"]\n"), 0o644))
	require.NoError(t, os.Rename(src, filepath.Join(dir, "live.yaml")))

	select {
	case res := <-got:
		assert.Equal(t, "live", res.Level.ID)
		assert.True(t, res.Report.Completable)
	case <-time.After(3 * time.Second):
		t.Fatal("file change was not analysed")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(3 * time.Second):
		t.Fatal("Follow did not stop")
	}
}
