package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/litetux-lab/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [level-id]",
	Short: "Show stored analysis reports",
	Long: `Without a level ID, list every analysed level with its best fitness and
the best scored reports overall. With a level ID, list the reports stored
for that level, newest first.

Reports are stored by 'analyze', 'batch', 'fitness' and 'watch' with --save.

Examples:
  litetux history
  litetux history lvl01 --limit 5
  litetux history lvl01 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Reports to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the stored reports (all levels without a level ID)")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := openStore()
	if err != nil {
		fail("opening report database: %v", err)
	}
	defer store.Close()

	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
	}

	if flagHistoryClear {
		if err := store.ClearReports(levelID); err != nil {
			fail("clearing reports: %v", err)
		}
		if levelID == "" {
			fmt.Println("Cleared all reports.")
		} else {
			fmt.Printf("Cleared reports for %s.\n", levelID)
		}
		return
	}

	if levelID != "" {
		showLevelHistory(store, levelID)
		return
	}
	showOverview(store)
}

func showLevelHistory(store *storage.Store, levelID string) {
	entries, err := store.ReportsForLevel(levelID, flagHistoryLimit)
	if err != nil {
		fail("retrieving reports: %v", err)
	}

	fmt.Printf("Reports - %s\n", levelID)
	fmt.Println()
	if len(entries) == 0 {
		fmt.Println("No reports recorded yet.")
		fmt.Println()
		fmt.Println("Run 'litetux analyze <file> --save' to store one.")
		return
	}

	fmt.Printf("  %-16s  %-10s  %-11s  %-9s  %-5s  %s\n", "Date", "Fitness", "Completable", "Reachable", "Jumps", "Tile set")
	fmt.Printf("  %-16s  %-10s  %-11s  %-9s  %-5s  %s\n", "----", "-------", "-----------", "---------", "-----", "--------")
	for _, e := range entries {
		fmt.Printf("  %-16s  %-10s  %-11t  %-9d  %-5d  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"), fitnessText(e), e.Report.Completable,
			e.Report.FurthestColumn, e.Report.RequiredJumps, e.TileSet)
	}
}

func showOverview(store *storage.Store) {
	stats, err := store.AllLevelStats()
	if err != nil {
		fail("retrieving level stats: %v", err)
	}
	if len(stats) == 0 {
		fmt.Println("No reports recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	idWidth := len("Level")
	for id := range stats {
		ids = append(ids, id)
		idWidth = max(idWidth, len(id))
	}
	sort.Strings(ids)

	fmt.Println("Analysed levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-8s  %-11s  %-12s  %s\n", idWidth, "Level", "Analyses", "Completable", "Best fitness", "Last analysed")
	fmt.Printf("  %-*s  %-8s  %-11s  %-12s  %s\n", idWidth, "-----", "--------", "-----------", "------------", "-------------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-*s  %-8d  %-11d  %-12.4f  %s\n", idWidth, id, s.Analyses, s.Completable, s.BestFitness,
			s.LastAnalyzed.Format("2006-01-02 15:04"))
	}

	best, err := store.BestReports(flagHistoryLimit)
	if err != nil {
		fail("retrieving best reports: %v", err)
	}
	if len(best) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Best scored reports:")
	fmt.Println()
	fmt.Printf("  %-4s  %-*s  %-10s  %s\n", "Rank", idWidth, "Level", "Fitness", "Date")
	fmt.Printf("  %-4s  %-*s  %-10s  %s\n", "----", idWidth, "-----", "-------", "----")
	for i, e := range best {
		fmt.Printf("  %-4d  %-*s  %-10s  %s\n", i+1, idWidth, e.LevelID, fitnessText(e), e.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func fitnessText(e storage.ReportEntry) string {
	if !e.HasFitness {
		return "-"
	}
	return fmt.Sprintf("%.4f", e.Fitness)
}
