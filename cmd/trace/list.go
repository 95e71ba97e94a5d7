package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-trace/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and letters",
	Long:  `Shows the registered game modes and every letter in the active catalog.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	fmt.Println("Game modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	_, cat, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading letters: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Letters (%d):\n", cat.Len())
	fmt.Println()
	fmt.Printf("  %-6s  %-7s  %-10s  %s\n", "Letter", "Strokes", "Word", "Sound")
	fmt.Printf("  %-6s  %-7s  %-10s  %s\n", "------", "-------", "----", "-----")
	for _, l := range cat.Letters() {
		fmt.Printf("  %-6s  %-7d  %-10s  %s\n", l.Glyph, l.StrokeCount(), l.Word, l.Sound)
	}

	fmt.Println()
	fmt.Println("Run 'trace play <letter>' to start with a letter.")
}
