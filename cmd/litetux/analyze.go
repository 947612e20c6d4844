package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/litetux-lab/internal/analysis"
	"github.com/vovakirdan/litetux-lab/internal/metrics"
	"github.com/vovakirdan/litetux-lab/internal/pathing"
	"github.com/vovakirdan/litetux-lab/internal/platform/tui"
	"github.com/vovakirdan/litetux-lab/internal/tilegrid"
)

var (
	flagAnalyzeCSV    bool
	flagAnalyzeArrows bool
	flagAnalyzeGrid   bool
	flagAnalyzeSave   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file|dir>...",
	Short: "Show metrics for level files",
	Long: `Analyse level files and print their metrics: tile statistics,
difficulty, structure and motion. Directories are scanned recursively.

Examples:
  litetux analyze levels/intro.yaml
  litetux analyze levels/intro.yaml --arrows
  litetux analyze levels/ --csv
  litetux analyze levels/intro.yaml --save`,
	Args: cobra.MinimumNArgs(1),
	Run:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&flagAnalyzeCSV, "csv", false, "Print CSV rows instead of tables")
	analyzeCmd.Flags().BoolVar(&flagAnalyzeGrid, "grid", true, "Draw the level above its metrics")
	analyzeCmd.Flags().BoolVar(&flagAnalyzeArrows, "arrows", false, "Overlay the moves found by the required-jumps search")
	analyzeCmd.Flags().BoolVar(&flagAnalyzeSave, "save", false, "Store the reports in the database")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	lvls, err := collectLevels(args)
	if err != nil {
		fail("%v", err)
	}
	runner, err := newRunner(false, nil)
	if err != nil {
		fail("%v", err)
	}

	results, err := runner.AnalyzeAll(context.Background(), lvls)
	if err != nil {
		fail("%v", err)
	}

	if flagAnalyzeCSV {
		printCSV(os.Stdout, results, func(analysis.Result) int { return 0 })
	} else {
		width, _ := terminalSize()
		for i, res := range results {
			if i > 0 {
				fmt.Println()
			}
			printResult(res, width)
		}
	}

	if flagAnalyzeSave {
		n, err := saveResults(results)
		if err != nil {
			fail("saving reports: %v", err)
		}
		logger.Info("saved reports", "count", n)
	}
}

func printResult(res analysis.Result, width int) {
	fmt.Printf("%s", res.Level.ID)
	if res.Level.Name != "" {
		fmt.Printf(" - %s", res.Level.Name)
	}
	fmt.Printf(" [%s]\n", res.TileSet)

	if res.Err != nil {
		fmt.Printf("  error: %v\n", res.Err)
		return
	}
	if res.Warning != nil {
		fmt.Printf("  warning: %v\n", res.Warning)
	}
	fmt.Println()

	if flagAnalyzeGrid {
		var arrows *tilegrid.Grid
		if flagAnalyzeArrows {
			arrows = pathing.ArrowMap(res.Metrics.RequiredBoard())
		}
		fmt.Println(tui.RenderGrid(res.Metrics.Grid(), res.Metrics.Tiles(), arrows, 0, width/2))
		fmt.Println()
	}
	fmt.Println(tui.RenderMetrics(res.Report, width))
	if res.HasFitness {
		fmt.Printf("\nFitness: %.4f\n", res.Fitness)
	}
}

// printCSV writes the header and one row per analysed level.
func printCSV(w io.StringWriter, results []analysis.Result, group func(analysis.Result) int) {
	w.WriteString(metrics.CSVHeader() + "\n")
	for _, res := range results {
		if res.Err != nil || res.Metrics == nil {
			logger.Warn("skipping level", "level", res.Level.ID, "err", res.Err)
			continue
		}
		w.WriteString(res.Report.CSVRow(res.Level.ID, group(res)) + "\n")
	}
}
