// Package formats provides the letter file codecs (YAML and TOML).
// Both codecs share one document shape; zones are either explicit point
// lists or generated from a straight or arc centreline.
package formats

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vovakirdan/tui-trace/internal/core"
	"github.com/vovakirdan/tui-trace/internal/tracing"
)

// DefaultWidth is the zone width used when neither the stroke nor the file sets one.
const DefaultWidth = 25.0

// File is the on-disk document: an optional default width and a list of letters.
type File struct {
	Width   float64      `yaml:"width,omitempty" toml:"width,omitempty"`
	Letters []LetterSpec `yaml:"letters" toml:"letters"`
}

// LetterSpec is one letter as authored.
type LetterSpec struct {
	Glyph   string       `yaml:"glyph" toml:"glyph"`
	Sound   string       `yaml:"sound,omitempty" toml:"sound,omitempty"`
	Word    string       `yaml:"word,omitempty" toml:"word,omitempty"`
	Reward  string       `yaml:"reward,omitempty" toml:"reward,omitempty"`
	Strokes []StrokeSpec `yaml:"strokes" toml:"strokes"`
}

// StrokeSpec is one stroke as authored. Exactly one of Points, Straight or
// Arc describes the zone.
type StrokeSpec struct {
	ID        string        `yaml:"id" toml:"id"`
	Path      string        `yaml:"path,omitempty" toml:"path,omitempty"`
	Start     *core.Point   `yaml:"start,omitempty" toml:"start,omitempty"`
	Threshold float64       `yaml:"threshold" toml:"threshold"`
	Points    []core.Point  `yaml:"points,omitempty" toml:"points,omitempty"`
	Straight  *StraightSpec `yaml:"straight,omitempty" toml:"straight,omitempty"`
	Arc       *ArcSpec      `yaml:"arc,omitempty" toml:"arc,omitempty"`
}

// StraightSpec generates a rectangular zone around a segment.
type StraightSpec struct {
	From  core.Point `yaml:"from" toml:"from"`
	To    core.Point `yaml:"to" toml:"to"`
	Width float64    `yaml:"width,omitempty" toml:"width,omitempty"`
}

// ArcSpec generates an annular sector zone. Angles are in degrees from +X
// towards +Y (clockwise on screen).
type ArcSpec struct {
	Center   core.Point `yaml:"center" toml:"center"`
	Radius   float64    `yaml:"radius" toml:"radius"`
	StartDeg float64    `yaml:"start_deg" toml:"start_deg"`
	EndDeg   float64    `yaml:"end_deg" toml:"end_deg"`
	Width    float64    `yaml:"width,omitempty" toml:"width,omitempty"`
	Steps    int        `yaml:"steps,omitempty" toml:"steps,omitempty"`
}

// NormalizeGlyph trims and upper-cases a glyph so "a" and "A" name the same letter.
func NormalizeGlyph(g string) string {
	// Casers are stateful, so build one per call.
	return cases.Upper(language.Und).String(strings.TrimSpace(g))
}

// Build converts a parsed document to engine letters. It checks document
// shape only; engine-level validation is the caller's job.
func (f File) Build() ([]tracing.Letter, error) {
	width := f.Width
	if width <= 0 {
		width = DefaultWidth
	}

	out := make([]tracing.Letter, 0, len(f.Letters))
	for _, ls := range f.Letters {
		l, err := ls.build(width)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

func (ls LetterSpec) build(width float64) (tracing.Letter, error) {
	l := tracing.Letter{
		Glyph:   NormalizeGlyph(ls.Glyph),
		Sound:   ls.Sound,
		Word:    ls.Word,
		Reward:  ls.Reward,
		Strokes: make([]tracing.Stroke, 0, len(ls.Strokes)),
	}
	for i, ss := range ls.Strokes {
		s, err := ss.build(width)
		if err != nil {
			return tracing.Letter{}, fmt.Errorf("letter %q stroke %d: %w", ls.Glyph, i, err)
		}
		l.Strokes = append(l.Strokes, s)
	}
	return l, nil
}

func (ss StrokeSpec) build(width float64) (tracing.Stroke, error) {
	s := tracing.Stroke{
		ID:                  ss.ID,
		DisplayPath:         ss.Path,
		CompletionThreshold: ss.Threshold,
	}

	set := 0
	if len(ss.Points) > 0 {
		set++
	}
	if ss.Straight != nil {
		set++
	}
	if ss.Arc != nil {
		set++
	}
	if set != 1 {
		return tracing.Stroke{}, fmt.Errorf("zone needs exactly one of points, straight or arc (got %d)", set)
	}

	var start core.Point
	switch {
	case ss.Straight != nil:
		st := ss.Straight
		if st.From == st.To {
			return tracing.Stroke{}, fmt.Errorf("straight zone has identical endpoints %v", st.From)
		}
		s.Zone = core.StraightZone(st.From, st.To, pick(st.Width, width))
		start = st.From
	case ss.Arc != nil:
		a := ss.Arc
		steps := a.Steps
		if steps <= 0 {
			steps = core.ArcSteps
		}
		from, to := a.StartDeg*math.Pi/180, a.EndDeg*math.Pi/180
		s.Zone = core.ArcZoneSteps(a.Center, a.Radius, from, to, pick(a.Width, width), steps)
		start = core.Point{X: a.Center.X + a.Radius*math.Cos(from), Y: a.Center.Y + a.Radius*math.Sin(from)}
	default:
		s.Zone = append([]core.Point(nil), ss.Points...)
		start = s.Zone[0]
	}

	switch {
	case ss.Start != nil:
		s.StartIndicator = *ss.Start
	case ss.Path != "":
		if p, err := core.ParsePath(ss.Path); err == nil && len(p.Segments) > 0 {
			s.StartIndicator = p.Segments[0].Points[0]
		} else {
			s.StartIndicator = start
		}
	default:
		s.StartIndicator = start
	}

	return s, nil
}

func pick(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}

// FromLetters converts engine letters back to a document with explicit
// point zones, preserving letter and stroke order.
func FromLetters(letters []tracing.Letter) File {
	f := File{Letters: make([]LetterSpec, 0, len(letters))}
	for _, l := range letters {
		ls := LetterSpec{
			Glyph:   l.Glyph,
			Sound:   l.Sound,
			Word:    l.Word,
			Reward:  l.Reward,
			Strokes: make([]StrokeSpec, 0, len(l.Strokes)),
		}
		for _, s := range l.Strokes {
			start := s.StartIndicator
			ls.Strokes = append(ls.Strokes, StrokeSpec{
				ID:        s.ID,
				Path:      s.DisplayPath,
				Start:     &start,
				Threshold: s.CompletionThreshold,
				Points:    roundPoints(s.Zone),
			})
		}
		f.Letters = append(f.Letters, ls)
	}
	return f
}

// roundPoints trims float noise from generated vertices for readable exports.
func roundPoints(pts []core.Point) []core.Point {
	out := make([]core.Point, len(pts))
	for i, p := range pts {
		out[i] = core.Point{X: round4(p.X), Y: round4(p.Y)}
	}
	return out
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

// Parse routes to the parser for a file extension.
func Parse(data []byte, ext string) (File, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return File{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
