package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/litetux-lab/internal/fitness"
)

var (
	flagFitnessScript string
	flagFitnessTop    int
	flagFitnessSave   bool
)

var fitnessCmd = &cobra.Command{
	Use:   "fitness <file|dir>...",
	Short: "Score levels and rank the fittest",
	Long: `Score every level with the configured fitness weighers, or with a tengo
script, and print the fittest levels best first. Equal scores keep the
order the levels were loaded in.

A script reads the map "metrics" and assigns a number to "fitness":

  math := import("math")
  fitness = 10 - math.abs(metrics.reachable - 18)

Examples:
  litetux fitness levels/
  litetux fitness levels/ --top 3
  litetux fitness levels/ --script score.tengo --save`,
	Args: cobra.MinimumNArgs(1),
	Run:  runFitness,
}

func init() {
	fitnessCmd.Flags().StringVar(&flagFitnessScript, "script", "", "tengo script computing the fitness")
	fitnessCmd.Flags().IntVar(&flagFitnessTop, "top", 0, "Levels to rank (default from config)")
	fitnessCmd.Flags().BoolVar(&flagFitnessSave, "save", false, "Store the reports in the database")
}

func runFitness(cmd *cobra.Command, args []string) {
	lvls, err := collectLevels(args)
	if err != nil {
		fail("%v", err)
	}

	var ev fitness.Evaluator
	if flagFitnessScript != "" {
		ev, err = fitness.LoadScript(flagFitnessScript)
		if err != nil {
			fail("%v", err)
		}
	}
	runner, err := newRunner(true, ev)
	if err != nil {
		fail("%v", err)
	}

	results, err := runner.AnalyzeAll(context.Background(), lvls)
	if err != nil {
		fail("%v", err)
	}

	top := flagFitnessTop
	if top <= 0 {
		top = cfg.Fitness.PoolSize
	}
	pool := fitness.NewPool(top)
	for _, res := range results {
		if !res.HasFitness {
			logger.Warn("level not scored", "level", res.Level.ID, "err", res.Err)
			continue
		}
		pool.Add(fitness.Entry{Name: res.Level.ID, Fitness: res.Fitness, Report: res.Report})
	}

	fmt.Printf("Fittest levels (%d of %d)\n", pool.Len(), len(results))
	fmt.Println()
	if pool.Len() == 0 {
		fmt.Println("No level could be scored.")
		return
	}

	nameWidth := len("Level")
	for _, e := range pool.Entries() {
		nameWidth = max(nameWidth, len(e.Name))
	}
	fmt.Printf("  %-4s  %-*s  %10s  %-11s  %s\n", "Rank", nameWidth, "Level", "Fitness", "Completable", "Reachable")
	fmt.Printf("  %-4s  %-*s  %10s  %-11s  %s\n", "----", nameWidth, "-----", "-------", "-----------", "---------")
	for i, e := range pool.Entries() {
		fmt.Printf("  %-4d  %-*s  %10.4f  %-11t  %d\n", i+1, nameWidth, e.Name, e.Fitness, e.Report.Completable, e.Report.FurthestColumn)
	}

	if flagFitnessSave {
		n, err := saveResults(results)
		if err != nil {
			fail("saving reports: %v", err)
		}
		logger.Info("saved reports", "count", n)
	}
}
