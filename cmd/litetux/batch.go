package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/litetux-lab/internal/analysis"
)

var (
	flagBatchOut     string
	flagBatchGroup   int
	flagBatchByDir   bool
	flagBatchSave    bool
	flagBatchWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Analyse every level in a directory and write CSV",
	Long: `Analyse every level file under a directory in parallel and write one
CSV row per level. Rows keep the order of the level IDs.

The groupID column is --group for every row, or with --by-dir the index
of the subdirectory holding the level (0 for the directory itself).

Examples:
  litetux batch levels/
  litetux batch levels/ --out report.csv --workers 4
  litetux batch generations/ --by-dir --save`,
	Args: cobra.ExactArgs(1),
	Run:  runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&flagBatchOut, "out", "o", "", "Write CSV to file instead of stdout")
	batchCmd.Flags().IntVar(&flagBatchGroup, "group", 0, "groupID for every row")
	batchCmd.Flags().BoolVar(&flagBatchByDir, "by-dir", false, "Number groups by subdirectory")
	batchCmd.Flags().BoolVar(&flagBatchSave, "save", false, "Store the reports in the database")
	batchCmd.Flags().IntVar(&flagBatchWorkers, "workers", 0, "Parallel analyses (default from config)")
}

func runBatch(cmd *cobra.Command, args []string) {
	root := args[0]
	lvls, err := collectLevels([]string{root})
	if err != nil {
		fail("%v", err)
	}
	if flagBatchWorkers > 0 {
		cfg.Batch.Workers = flagBatchWorkers
	}
	runner, err := newRunner(false, nil)
	if err != nil {
		fail("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := runner.AnalyzeAll(ctx, lvls)
	if err != nil {
		fail("%v", err)
	}
	logger.Info("batch finished", "levels", len(results), "workers", runner.Workers(), "elapsed", time.Since(start).Round(time.Millisecond))

	group := func(analysis.Result) int { return flagBatchGroup }
	if flagBatchByDir {
		group = dirGroups(root, results)
	}

	out := os.Stdout
	if flagBatchOut != "" {
		f, err := os.Create(flagBatchOut)
		if err != nil {
			fail("%v", err)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	printCSV(w, results, group)
	if err := w.Flush(); err != nil {
		fail("writing CSV: %v", err)
	}

	if flagBatchSave {
		n, err := saveResults(results)
		if err != nil {
			fail("saving reports: %v", err)
		}
		logger.Info("saved reports", "count", n)
	}
}

// dirGroups numbers the directories holding the results, in sorted order.
// Levels directly under root are group 0.
func dirGroups(root string, results []analysis.Result) func(analysis.Result) int {
	dirOf := func(res analysis.Result) string {
		rel, err := filepath.Rel(root, filepath.Dir(res.Level.FilePath))
		if err != nil {
			return "."
		}
		return rel
	}

	seen := map[string]bool{}
	var dirs []string
	for _, res := range results {
		d := dirOf(res)
		if d != "." && !seen[d] {
			seen[d] = true
			dirs = append(dirs, d)
		}
	}
	sort.Strings(dirs)

	ids := map[string]int{".": 0}
	for i, d := range dirs {
		ids[d] = i + 1
	}
	return func(res analysis.Result) int { return ids[dirOf(res)] }
}
