package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/litetux-lab/internal/analysis"
)

var flagWatchSave bool

var watchCmd = &cobra.Command{
	Use:   "watch <dir>...",
	Short: "Re-analyse level files as they change",
	Long: `Watch directories for level files being written and print a summary
line for each analysis. Stop with Ctrl+C.

Examples:
  litetux watch levels/
  litetux watch levels/ --save`,
	Args: cobra.MinimumNArgs(1),
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&flagWatchSave, "save", false, "Store every report in the database")
}

func runWatch(cmd *cobra.Command, args []string) {
	runner, err := newRunner(true, nil)
	if err != nil {
		fail("%v", err)
	}
	w, err := analysis.NewWatcher(args...)
	if err != nil {
		fail("%v", err)
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching for level changes", "dirs", args)
	err = runner.Follow(ctx, w, func(path string, res analysis.Result, err error) {
		if err != nil {
			fmt.Printf("%-24s  error: %v\n", path, err)
			return
		}
		r := res.Report
		line := fmt.Sprintf("%-24s  %dx%d  completable=%t  reachable=%d  jumps=%d  leniency=%d",
			path, r.Width, r.Height, r.Completable, r.FurthestColumn, r.RequiredJumps, r.Leniency)
		if res.HasFitness {
			line += fmt.Sprintf("  fitness=%.4f", res.Fitness)
		}
		fmt.Println(line)

		if flagWatchSave {
			if _, err := saveResults([]analysis.Result{res}); err != nil {
				logger.Error("saving report", "level", res.Level.ID, "err", err)
			}
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fail("%v", err)
	}
}
