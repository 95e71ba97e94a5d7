package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-trace/internal/catalog"
	"github.com/vovakirdan/tui-trace/internal/catalog/formats"
	"github.com/vovakirdan/tui-trace/internal/config"
	"github.com/vovakirdan/tui-trace/internal/tracing"
)

var (
	flagExportFormat string
	flagExportOutput string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Validate or export letter files",
	Long: `Work with letter definition files.

Letter files are YAML (.yaml, .yml) or TOML (.toml). Each letter has a
glyph, a sound, a word, a reward and one or more strokes. A stroke zone
is either a list of points or a shape (line, arc) that is expanded into
a band of points.`,
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check letter files against the engine rules",
	Long: `Parse and validate letter files.

With a file or directory argument only those letters are checked.
Without one, the built-in letters merged with the configured catalog
directory are checked, exactly as a game would load them.

Examples:
  trace catalog validate
  trace catalog validate ./letters
  trace catalog validate ./letters/q.toml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCatalogValidate,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the active letters as YAML or TOML",
	Long: `Export the active catalog with every zone written out as points.

The output is a valid letter file and a starting point for custom letters.

Examples:
  trace catalog export
  trace catalog export --format toml -o letters.toml`,
	Args: cobra.NoArgs,
	Run:  runCatalogExport,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <letter>",
	Short: "Print one letter of the active catalog as YAML",
	Long: `Print a single letter, with every zone written out as points.

Examples:
  trace catalog show a
  trace catalog show q --catalog ./letters`,
	Args: cobra.ExactArgs(1),
	Run:  runCatalogShow,
}

func init() {
	catalogExportCmd.Flags().StringVar(&flagExportFormat, "format", "yaml", "Output format: yaml or toml")
	catalogExportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Output file (default: stdout)")

	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	catalogCmd.AddCommand(catalogShowCmd)
}

func runCatalogValidate(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		_, cat, err := loadCatalog()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("OK: %d letters (%s)\n", cat.Len(), strings.Join(cat.Glyphs(), " "))
		return
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	letters, err := readLetters(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		os.Exit(1)
	}

	cat, err := catalog.New(letters, cfg.Params())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		os.Exit(1)
	}
	for _, l := range cat.Letters() {
		logger.Debug("letter ok", "glyph", l.Glyph, "strokes", l.StrokeCount())
	}
	fmt.Printf("OK: %d letters in %s\n", cat.Len(), args[0])
}

// readLetters loads one file or every letter file below a directory.
func readLetters(path string) ([]tracing.Letter, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return catalog.NewLoader(path).LoadAll()
	}
	return catalog.NewLoader("").LoadFile(path)
}

func runCatalogExport(_ *cobra.Command, _ []string) {
	_, cat, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading letters: %v\n", err)
		os.Exit(1)
	}

	var out io.Writer = os.Stdout
	if flagExportOutput != "" {
		f, err := os.Create(flagExportOutput)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	doc := formats.FromLetters(cat.Letters())
	switch strings.ToLower(flagExportFormat) {
	case "yaml", "yml":
		err = formats.EncodeYAML(out, doc)
	case "toml":
		err = formats.EncodeTOML(out, doc)
	default:
		err = fmt.Errorf("unknown format %q (want yaml or toml)", flagExportFormat)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting letters: %v\n", err)
		os.Exit(1)
	}
	if flagExportOutput != "" {
		logger.Info("letters exported", "path", flagExportOutput, "count", cat.Len())
	}
}

func runCatalogShow(_ *cobra.Command, args []string) {
	_, cat, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading letters: %v\n", err)
		os.Exit(1)
	}

	l, ok := cat.ByGlyph(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown letter %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'trace list' to see available letters.")
		os.Exit(1)
	}

	out, err := formats.MarshalYAML(formats.FromLetters([]tracing.Letter{l}))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
