package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/litetux-lab/internal/platform/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view <file|dir>...",
	Short: "Open the interactive analysis screen",
	Long: `Show each level with the moves the player can make drawn over it and its
metrics below. Scroll with the arrow keys, switch levels with tab, toggle
the move overlay with 'a' and the search it comes from with 'b'.

Examples:
  litetux view levels/intro.yaml
  litetux view levels/`,
	Args: cobra.MinimumNArgs(1),
	Run:  runView,
}

func runView(cmd *cobra.Command, args []string) {
	lvls, err := collectLevels(args)
	if err != nil {
		fail("%v", err)
	}
	runner, err := newRunner(true, nil)
	if err != nil {
		fail("%v", err)
	}
	results, err := runner.AnalyzeAll(context.Background(), lvls)
	if err != nil {
		fail("%v", err)
	}

	width, height := terminalSize()
	if err := tui.RunViewer(results, width, height); err != nil {
		fail("%v", err)
	}
}
