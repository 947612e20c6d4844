package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/litetux-lab/internal/tiles"
)

var tilesetsCmd = &cobra.Command{
	Use:   "tilesets [name]",
	Short: "List tile sets or show one tile table",
	Long: `Without a name, list every registered tile set, including those defined
in the config file. With a name, print the tile table of that set.

Examples:
  litetux tilesets
  litetux tilesets litetux`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTileSets,
}

func runTileSets(cmd *cobra.Command, args []string) {
	if len(args) == 1 {
		set, err := tiles.Lookup(args[0])
		if err != nil {
			fail("%v", err)
		}
		printTileTable(set)
		return
	}

	sets := tiles.List()
	if len(sets) == 0 {
		fmt.Println("No tile sets available.")
		return
	}

	fmt.Println("Available tile sets:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, s := range sets {
		maxNameLen = max(maxNameLen, len(s.Name))
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Title")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----")
	for _, s := range sets {
		fmt.Printf("  %-*s  %s\n", maxNameLen, s.Name, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'litetux tilesets <name>' to see a tile table.")
}

func printTileTable(set *tiles.Set) {
	fmt.Printf("Tile set %s (solid from %d, gap weight %g)\n", set.Name(), set.SolidFrom(), set.GapWeight())
	fmt.Println()

	rows := [][]string{{"Code", "Name", "Tags", "Leniency", "Placement", "Usage", "Death from", "Reward jump"}}
	for _, d := range set.Defs() {
		reward := "-"
		if d.RewardJump != 0 {
			reward = strconv.Itoa(d.RewardJump)
			if d.RewardFromBelow {
				reward += " (below)"
			}
		}
		name := d.Name
		if d.PassThrough {
			name += "*"
		}
		rows = append(rows, []string{
			strconv.Itoa(d.Code),
			name,
			joinNames(tiles.TagNames(d.Tags)),
			strconv.FormatFloat(d.Leniency, 'g', -1, 64),
			joinNames(tiles.PlacementNames(d.Placement)),
			joinNames(tiles.UsageNames(d.Usage)),
			joinNames(tiles.SideNames(d.DeathFrom)),
			reward,
		})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}
	for _, row := range rows {
		var sb strings.Builder
		sb.WriteString(" ")
		for i, cell := range row {
			fmt.Fprintf(&sb, " %-*s", widths[i], cell)
		}
		fmt.Println(strings.TrimRight(sb.String(), " "))
	}

	fmt.Println()
	fmt.Println("* can be entered although solid")
}

func joinNames(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}
