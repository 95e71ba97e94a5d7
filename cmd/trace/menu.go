package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-trace/internal/platform/tui"
	"github.com/vovakirdan/tui-trace/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a tracing mode from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Pressing B or Esc during a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Rewards board
  Q            - Quit

Examples:
  trace menu
  trace menu --fps 60
  trace menu --db ./rewards.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	if _, _, err := loadCatalog(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading letters: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsRewards {
			goBack, rwErr := tui.RunRewards(store, cfg.ScreenW, cfg.ScreenH)
			if rwErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", rwErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from the rewards board
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		game, err := registry.Create(gameID)
		if err != nil {
			logger.Error("could not create game", "game", gameID, "err", err)
			continue
		}

		// Fresh letter order for each game unless a seed was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		quit, err := tui.Run(game, store, cfg, logger.With("game", gameID))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if quit {
			break
		}
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
