// Package catalog holds the validated, read-only set of tracing letters and
// the policies that pick which letter a session traces next.
package catalog

import (
	_ "embed"
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-trace/internal/catalog/formats"
	"github.com/vovakirdan/tui-trace/internal/tracing"
)

//go:embed defaults/alphabet.yaml
var alphabetYAML []byte

// Catalog is an ordered, validated set of letters. It is never mutated after
// construction, so one catalog can back any number of sessions.
type Catalog struct {
	letters []tracing.Letter
	index   map[string]int
}

// New validates letters against params and builds a catalog.
func New(letters []tracing.Letter, params tracing.Params) (*Catalog, error) {
	if len(letters) == 0 {
		return nil, fmt.Errorf("catalog: no letters")
	}
	if err := tracing.ValidateLetters(letters, params); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	c := &Catalog{
		letters: make([]tracing.Letter, len(letters)),
		index:   make(map[string]int, len(letters)),
	}
	for i, l := range letters {
		c.letters[i] = l.Clone()
		c.index[l.Glyph] = i
	}
	return c, nil
}

// BuiltinLetters parses the embedded A-Z table.
func BuiltinLetters() ([]tracing.Letter, error) {
	f, err := formats.ParseYAML(alphabetYAML)
	if err != nil {
		return nil, fmt.Errorf("catalog: builtin: %w", err)
	}
	letters, err := f.Build()
	if err != nil {
		return nil, fmt.Errorf("catalog: builtin: %w", err)
	}
	return letters, nil
}

// Builtin returns the validated A-Z catalog.
func Builtin(params tracing.Params) (*Catalog, error) {
	letters, err := BuiltinLetters()
	if err != nil {
		return nil, err
	}
	return New(letters, params)
}

// Load builds the catalog for a session: the built-in letters, with any
// letters found under dir replacing built-ins of the same glyph and new
// glyphs appended in glyph order. An empty dir yields the built-in catalog.
func Load(dir string, params tracing.Params) (*Catalog, error) {
	letters, err := BuiltinLetters()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return New(letters, params)
	}

	extra, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}
	return New(Merge(letters, extra), params)
}

// Merge overlays extra letters onto base by glyph.
func Merge(base, extra []tracing.Letter) []tracing.Letter {
	out := append([]tracing.Letter(nil), base...)
	pos := make(map[string]int, len(out))
	for i, l := range out {
		pos[l.Glyph] = i
	}
	for _, l := range extra {
		if i, ok := pos[l.Glyph]; ok {
			out[i] = l
			continue
		}
		pos[l.Glyph] = len(out)
		out = append(out, l)
	}
	return out
}

// Len returns the number of letters.
func (c *Catalog) Len() int {
	return len(c.letters)
}

// At returns a copy of the i-th letter.
func (c *Catalog) At(i int) tracing.Letter {
	return c.letters[i].Clone()
}

// Letters returns copies of all letters in catalog order.
func (c *Catalog) Letters() []tracing.Letter {
	out := make([]tracing.Letter, len(c.letters))
	for i, l := range c.letters {
		out[i] = l.Clone()
	}
	return out
}

// Glyphs returns the glyphs in catalog order.
func (c *Catalog) Glyphs() []string {
	out := make([]string, len(c.letters))
	for i, l := range c.letters {
		out[i] = l.Glyph
	}
	return out
}

// ByGlyph looks a letter up case-insensitively.
func (c *Catalog) ByGlyph(glyph string) (tracing.Letter, bool) {
	i, ok := c.index[formats.NormalizeGlyph(glyph)]
	if !ok {
		return tracing.Letter{}, false
	}
	return c.letters[i].Clone(), true
}

// IndexOf returns the position of a glyph, or -1.
func (c *Catalog) IndexOf(glyph string) int {
	if i, ok := c.index[formats.NormalizeGlyph(glyph)]; ok {
		return i
	}
	return -1
}

// Selection names a letter selection policy.
type Selection string

const (
	SelectRandom     Selection = "random"
	SelectSequential Selection = "sequential"
)

// ParseSelection validates a selection name.
func ParseSelection(s string) (Selection, error) {
	switch Selection(strings.ToLower(strings.TrimSpace(s))) {
	case SelectRandom, "":
		return SelectRandom, nil
	case SelectSequential:
		return SelectSequential, nil
	default:
		return "", fmt.Errorf("unknown selection %q (want random or sequential)", s)
	}
}

// Selector picks the letter for each new session round.
type Selector struct {
	cat  *Catalog
	mode Selection
	rng  *rand.Rand
	next int
	last int
}

// NewSelector creates a selector over cat. The seed drives random selection.
func NewSelector(cat *Catalog, mode Selection, seed int64) *Selector {
	return &Selector{
		cat:  cat,
		mode: mode,
		rng:  rand.New(rand.NewSource(seed)),
		last: -1,
	}
}

// Next returns a copy of the next letter. Random selection avoids repeating
// the previous letter when the catalog has more than one.
func (s *Selector) Next() tracing.Letter {
	var i int
	switch s.mode {
	case SelectSequential:
		i = s.next % s.cat.Len()
		s.next = i + 1
	default:
		i = s.rng.Intn(s.cat.Len())
		if i == s.last && s.cat.Len() > 1 {
			i = (i + 1 + s.rng.Intn(s.cat.Len()-1)) % s.cat.Len()
		}
	}
	s.last = i
	return s.cat.At(i)
}

// Seek makes the next sequential pick start at glyph. Unknown glyphs are ignored.
func (s *Selector) Seek(glyph string) {
	if i := s.cat.IndexOf(glyph); i >= 0 {
		s.next = i
	}
}
