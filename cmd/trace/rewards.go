package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-trace/internal/registry"
	"github.com/vovakirdan/tui-trace/internal/storage"
)

var (
	flagRewardsLimit int
	flagClear        bool
)

var rewardsCmd = &cobra.Command{
	Use:   "rewards [mode]",
	Short: "Show earned rewards",
	Long: `Display the most recent completed letters and a per-letter tally.

Without a mode, rewards from every mode are shown.

Examples:
  trace rewards
  trace rewards trace_abc
  trace rewards --limit 50
  trace rewards trace --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRewards,
}

func init() {
	rewardsCmd.Flags().IntVar(&flagRewardsLimit, "limit", 20, "Number of recent rewards to show")
	rewardsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the rewards instead of showing them")
}

func runRewards(_ *cobra.Command, args []string) {
	gameID := ""
	title := "All modes"
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'trace list' to see available modes.")
			os.Exit(1)
		}
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}
		title = game.Title()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rewards database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRewards(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing rewards: %v\n", err)
			return
		}
		logger.Info("rewards cleared", "mode", title)
		fmt.Printf("Cleared rewards - %s\n", title)
		return
	}

	rewards, err := store.RecentRewards(gameID, flagRewardsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rewards: %v\n", err)
		return
	}

	fmt.Printf("Rewards - %s\n", title)
	fmt.Println()

	if len(rewards) == 0 {
		fmt.Println("No rewards earned yet.")
		fmt.Println()
		fmt.Println("Play 'trace play' to earn the first sticker!")
		return
	}

	fmt.Printf("  %-6s  %-10s  %-7s  %-7s  %s\n", "Letter", "Word", "Strokes", "Time", "Date")
	fmt.Printf("  %-6s  %-10s  %-7s  %-7s  %s\n", "------", "----", "-------", "----", "----")
	for _, r := range rewards {
		elapsed := (time.Duration(r.ElapsedMS) * time.Millisecond).Round(100 * time.Millisecond)
		fmt.Printf("  %-6s  %-10s  %-7d  %-7s  %s\n",
			r.Glyph, r.Word, r.Strokes, elapsed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	// The tally covers every mode, like the sticker strip in the TUI.
	letters, err := store.GetLetterStats()
	if err != nil || len(letters) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Sticker book:")
	for _, ls := range letters {
		fastest := (time.Duration(ls.FastestMS) * time.Millisecond).Round(100 * time.Millisecond)
		fmt.Printf("  %s %s x%d (fastest %s)\n", ls.Reward, ls.Glyph, ls.Count, fastest)
	}
}
