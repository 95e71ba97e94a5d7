package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-trace/internal/catalog/formats"
	"github.com/vovakirdan/tui-trace/internal/tracing"
)

// Loader reads letter files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a new letter loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively loads every supported letter file under Root.
// Letters are returned sorted by glyph. A broken file fails the whole load.
func (l *Loader) LoadAll() ([]tracing.Letter, error) {
	var letters []tracing.Letter

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		loaded, err := l.LoadFile(path)
		if err != nil {
			return err
		}
		letters = append(letters, loaded...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.SliceStable(letters, func(i, j int) bool {
		return letters[i].Glyph < letters[j].Glyph
	})
	return letters, nil
}

// LoadFile loads the letters of a single file.
func (l *Loader) LoadFile(path string) ([]tracing.Letter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	f, err := formats.Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}

	letters, err := f.Build()
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return letters, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
