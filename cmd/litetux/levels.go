package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/litetux-lab/internal/analysis"
	"github.com/vovakirdan/litetux-lab/internal/config"
	"github.com/vovakirdan/litetux-lab/internal/fitness"
	"github.com/vovakirdan/litetux-lab/internal/levels"
	"github.com/vovakirdan/litetux-lab/internal/storage"
)

// collectLevels loads every path: level files directly, directories
// recursively through a Loader.
func collectLevels(paths []string) ([]levels.Level, error) {
	var out []levels.Level
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			lvls, err := levels.NewLoader(p).LoadAll()
			if err != nil {
				return nil, err
			}
			out = append(out, lvls...)
			continue
		}
		lvl, err := levels.LoadFile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, lvl)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no level files found")
	}
	return out, nil
}

// newRunner builds a runner from the loaded configuration. A non-nil
// evaluator overrides the configured one.
func newRunner(withFitness bool, ev fitness.Evaluator) (*analysis.Runner, error) {
	set, err := cfg.ResolveTileSet(flagTileSet)
	if err != nil {
		return nil, err
	}
	options := []analysis.Option{
		analysis.WithWorkers(cfg.Batch.Workers),
		analysis.WithLogger(logger),
	}
	if withFitness {
		if ev == nil {
			ev, err = cfg.Evaluator()
			if err != nil {
				return nil, err
			}
		}
		options = append(options, analysis.WithEvaluator(ev))
	}
	return analysis.NewRunner(cfg.MetricsOptions(set), options...), nil
}

// openStore opens the report database named by --db or the config.
func openStore() (*storage.Store, error) {
	path := flagDBPath
	if path == "" {
		path = cfg.Storage.Path
	}
	if path == "" {
		path = config.DefaultDBPath
	}
	return storage.Open(path)
}

// saveResults stores every successful result and returns how many were saved.
func saveResults(results []analysis.Result) (int, error) {
	store, err := openStore()
	if err != nil {
		return 0, err
	}
	defer store.Close()

	saved := 0
	for _, res := range results {
		if res.Err != nil || res.Metrics == nil {
			continue
		}
		_, err := store.SaveReport(storage.ReportEntry{
			LevelID:    res.Level.ID,
			TileSet:    res.TileSet,
			Source:     res.Level.FilePath,
			Report:     res.Report,
			Fitness:    res.Fitness,
			HasFitness: res.HasFitness,
		})
		if err != nil {
			return saved, err
		}
		saved++
	}
	return saved, nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
