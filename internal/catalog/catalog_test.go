package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-trace/internal/core"
	"github.com/vovakirdan/tui-trace/internal/tracing"
)

func builtin(t *testing.T) *Catalog {
	t.Helper()
	cat, err := Builtin(tracing.DefaultParams())
	if err != nil {
		t.Fatalf("Builtin() error: %v", err)
	}
	return cat
}

func TestBuiltinAlphabet(t *testing.T) {
	cat := builtin(t)

	if cat.Len() != 26 {
		t.Fatalf("Len() = %d, expected 26", cat.Len())
	}
	if got := strings.Join(cat.Glyphs(), ""); got != "ABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		t.Errorf("Glyphs() = %s", got)
	}

	strokes := map[string]int{
		"A": 3, "B": 3, "C": 1, "D": 2, "E": 4, "F": 3, "G": 2, "H": 3, "I": 3,
		"J": 3, "K": 3, "L": 2, "M": 4, "N": 3, "O": 1, "P": 2, "Q": 2, "R": 3,
		"S": 1, "T": 2, "U": 1, "V": 2, "W": 4, "X": 2, "Y": 3, "Z": 3,
	}
	for _, l := range cat.Letters() {
		if l.StrokeCount() != strokes[l.Glyph] {
			t.Errorf("%s has %d strokes, expected %d", l.Glyph, l.StrokeCount(), strokes[l.Glyph])
		}
		if l.Word == "" || l.Sound == "" || l.Reward == "" {
			t.Errorf("%s is missing word, sound or reward", l.Glyph)
		}
		if !strings.HasPrefix(l.Word, l.Glyph) {
			t.Errorf("%s word %q does not start with its glyph", l.Glyph, l.Word)
		}
	}
}

func TestBuiltinThresholds(t *testing.T) {
	cat := builtin(t)

	tests := []struct {
		glyph  string
		stroke int
		want   float64
	}{
		{"A", 0, 0.75},
		{"O", 0, 0.7},
		{"Q", 0, 0.7},
		{"Q", 1, 0.75},
		{"S", 0, 0.7},
		{"T", 1, 0.25},
		{"U", 0, 0.2},
		{"W", 3, 0.25},
		{"Z", 2, 0.25},
	}
	for _, tc := range tests {
		l, ok := cat.ByGlyph(tc.glyph)
		if !ok {
			t.Fatalf("ByGlyph(%s) not found", tc.glyph)
		}
		if got := l.Strokes[tc.stroke].CompletionThreshold; got != tc.want {
			t.Errorf("%s stroke %d threshold = %v, expected %v", tc.glyph, tc.stroke, got, tc.want)
		}
	}
}

func TestBuiltinStartIndicators(t *testing.T) {
	cat := builtin(t)

	tests := []struct {
		glyph  string
		stroke int
		want   core.Point
	}{
		{"A", 2, core.P(25, 55)},
		{"B", 2, core.P(25, 46)},
		{"C", 0, core.P(80, 25)},
		{"G", 1, core.P(85, 50)},
		{"M", 0, core.P(15, 90)},
		{"S", 0, core.P(75, 15)},
	}
	for _, tc := range tests {
		l, _ := cat.ByGlyph(tc.glyph)
		if got := l.Strokes[tc.stroke].StartIndicator; got != tc.want {
			t.Errorf("%s stroke %d start = %v, expected %v", tc.glyph, tc.stroke, got, tc.want)
		}
	}
}

func TestEveryBuiltinLetterIsTraceable(t *testing.T) {
	cat := builtin(t)
	params := tracing.DefaultParams()

	for _, l := range cat.Letters() {
		c := tracing.NewController(l, params)
		for i, s := range l.Strokes {
			if c.CurrentStroke() != i {
				t.Fatalf("%s: current stroke %d, expected %d", l.Glyph, c.CurrentStroke(), i)
			}
			for _, p := range tracing.NewCoverageGrid(s.Zone, params.GridSize).ValidCellCenters() {
				if c.HandleTouch(p) >= tracing.EventStrokeComplete {
					break
				}
			}
		}
		if !c.IsComplete() {
			t.Errorf("%s could not be completed", l.Glyph)
		}
	}
}

func TestTraceLAlongDisplayPaths(t *testing.T) {
	l, ok := builtin(t).ByGlyph("l")
	if !ok {
		t.Fatal("ByGlyph(l) not found")
	}
	c := tracing.NewController(l, tracing.DefaultParams())

	for _, s := range l.Strokes {
		path, err := core.ParsePath(s.DisplayPath)
		if err != nil {
			t.Fatal(err)
		}
		for _, p := range path.Flatten(2) {
			c.HandleTouch(p)
		}
	}
	if !c.IsComplete() {
		t.Errorf("L not complete after tracing its paths, snapshot %+v", c.Snapshot())
	}
}

func TestCatalogCopiesLetters(t *testing.T) {
	cat := builtin(t)

	l := cat.At(0)
	l.Strokes[0].CompletionThreshold = 0.01
	l.Strokes[0].Zone[0] = core.P(-5, -5)

	again := cat.At(0)
	if again.Strokes[0].CompletionThreshold != 0.75 || again.Strokes[0].Zone[0] == core.P(-5, -5) {
		t.Error("catalog letter was mutated through a copy")
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	if _, err := New(nil, tracing.DefaultParams()); err == nil {
		t.Error("New(nil) should fail")
	}

	letters, err := BuiltinLetters()
	if err != nil {
		t.Fatal(err)
	}
	letters[3].Strokes[0].CompletionThreshold = 2
	if _, err := New(letters, tracing.DefaultParams()); err == nil {
		t.Error("New() should reject a bad threshold")
	}
}

func TestSelectorSequential(t *testing.T) {
	cat := builtin(t)
	sel := NewSelector(cat, SelectSequential, 1)

	var got []string
	for i := 0; i < 28; i++ {
		got = append(got, sel.Next().Glyph)
	}
	if got[0] != "A" || got[25] != "Z" || got[26] != "A" || got[27] != "B" {
		t.Errorf("sequential order = %v", got)
	}

	sel.Seek("m")
	if g := sel.Next().Glyph; g != "M" {
		t.Errorf("Next() after Seek(m) = %s, expected M", g)
	}
}

func TestSelectorRandomDeterministic(t *testing.T) {
	cat := builtin(t)
	a := NewSelector(cat, SelectRandom, 42)
	b := NewSelector(cat, SelectRandom, 42)

	prev := ""
	for i := 0; i < 50; i++ {
		ga, gb := a.Next().Glyph, b.Next().Glyph
		if ga != gb {
			t.Fatalf("same seed diverged at %d: %s vs %s", i, ga, gb)
		}
		if ga == prev {
			t.Fatalf("random selection repeated %s", ga)
		}
		prev = ga
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		in      string
		want    Selection
		wantErr bool
	}{
		{"", SelectRandom, false},
		{"random", SelectRandom, false},
		{"Sequential", SelectSequential, false},
		{"alphabetical", "", true},
	}
	for _, tc := range tests {
		got, err := ParseSelection(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParseSelection(%q) = %q, %v", tc.in, got, err)
		}
	}
}

const extraLetter = `
letters:
  - glyph: "a"
    word: Ant
    strokes:
      - id: bar
        threshold: 0.5
        straight: {from: {x: 20, y: 50}, to: {x: 80, y: 50}}
`

const extraTOML = `
[[letters]]
glyph = "1"
word = "One"

[[letters.strokes]]
id = "stem"
threshold = 0.5

[letters.strokes.straight]
from = { x = 50.0, y = 10.0 }
to = { x = 50.0, y = 90.0 }
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ant.yaml", extraLetter)
	writeFile(t, dir, "nested/one.toml", extraTOML)
	writeFile(t, dir, "notes.txt", "not a letter")

	loader := NewLoader(dir)
	letters, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	if len(letters) != 2 || letters[0].Glyph != "1" || letters[1].Glyph != "A" {
		t.Fatalf("LoadAll() = %v", letters)
	}

	if letters[1].Word != "Ant" {
		t.Errorf("LoadAll()[1].Word = %q, expected Ant", letters[1].Word)
	}
}

func TestLoaderBrokenFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.yaml", "letters: [unterminated")

	if _, err := NewLoader(dir).LoadAll(); err == nil {
		t.Error("LoadAll() should fail on a broken file")
	}
}

func TestLoadMergesDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ant.yaml", extraLetter)
	writeFile(t, dir, "one.toml", extraTOML)

	cat, err := Load(dir, tracing.DefaultParams())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cat.Len() != 27 {
		t.Errorf("Len() = %d, expected 27", cat.Len())
	}
	a, _ := cat.ByGlyph("A")
	if a.Word != "Ant" || a.StrokeCount() != 1 {
		t.Errorf("A was not replaced: %+v", a)
	}
	if cat.IndexOf("A") != 0 || cat.IndexOf("1") != 26 {
		t.Errorf("IndexOf() = %d, %d", cat.IndexOf("A"), cat.IndexOf("1"))
	}

	plain, err := Load("", tracing.DefaultParams())
	if err != nil || plain.Len() != 26 {
		t.Errorf("Load(\"\") = %v, %v", plain, err)
	}
}
