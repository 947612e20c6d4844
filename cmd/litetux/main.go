// litetux analyses LiteTux platformer levels from the terminal.
//
// Usage:
//
//	litetux analyze <file...>   - Show metrics for level files
//	litetux batch <dir>         - Analyse every level in a directory, CSV out
//	litetux fitness <file...>   - Score levels and rank the best ones
//	litetux watch <dir>         - Re-analyse level files as they change
//	litetux view <file...>      - Interactive analysis screen
//	litetux history [level-id]  - Show stored reports
//	litetux tilesets [name]     - List tile sets or show one tile table
//	litetux code <file>         - Convert between level files and level codes
//
// Global flags:
//
//	--config <path>     - Configuration file (default: search order)
//	--db <path>         - Report database (default: from config)
//	--log-level <level> - debug, info, warn or error (default: info)
//	--tileset <name>    - Tile set for levels that name none
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/litetux-lab/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagTileSet  string

	// Set up before any subcommand runs.
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "litetux",
	Short: "LiteTux level analysis toolkit",
	Long: `litetux measures LiteTux platformer levels: it searches every way the
player can move through a level and reports difficulty, structure and
motion metrics, fitness scores and level codes.

Available commands:
  analyze   - Metrics for one or more level files
  batch     - Parallel analysis of a directory, CSV output
  fitness   - Fitness scores and top-N ranking
  watch     - Re-analyse level files as they change
  view      - Interactive analysis screen
  history   - Stored analysis reports
  tilesets  - Registered tile sets
  code      - Level code conversion

Examples:
  litetux analyze levels/intro.yaml
  litetux batch levels/ --out report.csv
  litetux fitness levels/*.yaml --top 5
  litetux view levels/intro.yaml
  litetux code --decode BQMAAAAAAIiIgA==`,
	SilenceUsage:     true,
	PersistentPreRun: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to report database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagTileSet, "tileset", "", "Tile set for levels that name none")

	// Add subcommands
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(fitnessCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(tilesetsCmd)
	rootCmd.AddCommand(codeCmd)
}

// setup builds the logger and loads the configuration.
func setup(cmd *cobra.Command, args []string) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "litetux",
		Level:           level,
	})
	log.SetDefault(logger)

	cfg, err = config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.RegisterTileSets(); err != nil {
		fmt.Fprintf(os.Stderr, "Error registering tile sets: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("configuration loaded", "tileset", cfg.TileSet, "workers", cfg.Batch.Workers)
}

// fail prints an error the way every command reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
