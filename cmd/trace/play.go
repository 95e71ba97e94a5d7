package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-trace/internal/catalog"
	"github.com/vovakirdan/tui-trace/internal/catalog/formats"
	"github.com/vovakirdan/tui-trace/internal/config"
	"github.com/vovakirdan/tui-trace/internal/core"
	"github.com/vovakirdan/tui-trace/internal/games/trace"
	"github.com/vovakirdan/tui-trace/internal/platform/tui"
	"github.com/vovakirdan/tui-trace/internal/registry"
	"github.com/vovakirdan/tui-trace/internal/storage"
)

var flagABC bool

var playCmd = &cobra.Command{
	Use:   "play [letter]",
	Short: "Trace letters",
	Long: `Start tracing letters.

Hold the left mouse button and drag through the highlighted stroke,
starting at GO. Strokes unlock one at a time.

Controls:
  Mouse drag     - Trace
  N/Enter/Space  - Next letter (after finishing one)
  R              - Restart the letter
  S              - Say the letter's sound and word
  D              - Toggle demo (watch it trace itself)
  P              - Pause
  B/Esc          - Back
  Q/Ctrl+C       - Quit

Examples:
  trace play
  trace play m
  trace play --abc
  trace play q --seed 42
  trace play --catalog ./letters`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagABC, "abc", false, "Walk the letters in order instead of the configured selection")
}

// loadCatalog builds the same config and catalog the game will use so bad
// files are reported before the terminal switches to the alt screen.
func loadCatalog() (config.TracingConfig, *catalog.Catalog, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	dir := cfg.Session.CatalogDir
	if flagCatalog != "" {
		dir = flagCatalog
	}
	cat, err := catalog.Load(dir, cfg.Params())
	if err != nil {
		return cfg, nil, err
	}
	return cfg, cat, nil
}

// runtimeConfig sizes the session to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the rewards ledger; the game still works without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open rewards database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	_, cat, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading letters: %v\n", err)
		os.Exit(1)
	}

	if len(args) == 1 {
		glyph := formats.NormalizeGlyph(args[0])
		if _, ok := cat.ByGlyph(glyph); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown letter %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'trace list' to see available letters.")
			os.Exit(1)
		}
		trace.SetLetter(glyph)
	}

	gameID := "trace"
	if flagABC {
		gameID = "trace_abc"
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	_, runErr := tui.Run(game, store, runtimeConfig(), logger.With("game", gameID))

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
