// trace is a letter tracing game for the terminal. Drag with the mouse to
// trace each stroke of a letter; finished letters earn a reward sticker.
//
// Usage:
//
//	trace list                     - List game modes
//	trace play [letter]            - Trace letters (optionally starting at one)
//	trace menu                     - Pick a mode interactively
//	trace rewards                  - Show earned rewards
//	trace serve                    - Start SSH server for remote play
//	trace catalog validate [path]  - Check letter files
//	trace catalog export           - Write the active letters as YAML or TOML
//	trace catalog show <letter>    - Print one letter as YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible letter order
//	--db <path>         - Set database path (default: ~/.trace/rewards.db)
//	--config <path>     - Use a specific tracing.yaml
//	--catalog <dir>     - Load extra letter files from a directory
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-trace/internal/games/trace"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagCatalog  string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trace",
	Short: "Trace letters in your terminal",
	Long: `Trace is a letter tracing game for young learners.

Each letter is made of strokes. Hold the left mouse button and drag
through the highlighted zone starting at GO; once enough of the zone is
covered the next stroke unlocks. Finish every stroke to earn the letter's
reward.

Available commands:
  list     - Show game modes
  play     - Trace letters
  menu     - Interactive mode picker
  rewards  - Show earned rewards
  serve    - Start SSH server for remote play
  catalog  - Validate, export or show letter files

Examples:
  trace play
  trace play b --abc
  trace menu
  trace serve --ssh :2222
  trace catalog export --format toml`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "trace",
			Level:           level,
		})

		trace.SetConfigPath(flagConfig)
		trace.SetCatalogDir(flagCatalog)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.trace/rewards.db", "Path to rewards database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tracing.yaml")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Directory of extra letter files (.yaml, .yml, .toml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(rewardsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(catalogCmd)
}
