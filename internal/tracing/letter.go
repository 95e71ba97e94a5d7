// Package tracing implements the stroke-activation tracing engine.
//
// A letter is an ordered list of strokes. Each stroke owns a wide polygon
// zone in normalized 0-100 space. Pointer samples that land inside the live
// stroke's zone stamp a round brush onto a coarse coverage grid; once the
// fraction of activated zone cells reaches the stroke's threshold, the next
// stroke unlocks. There is no failure state: anything outside the live zone
// is ignored.
package tracing

import "github.com/vovakirdan/tui-trace/internal/core"

// Default engine resolution.
const (
	DefaultGridSize    = 12 // Coverage grid is GridSize x GridSize over the whole space
	DefaultTouchRadius = 8  // Brush radius in grid cells
)

// Stroke is one unit of tracing work within a letter.
type Stroke struct {
	// ID is unique within its letter.
	ID string

	// Zone is the touch-acceptance polygon (at least 3 points).
	Zone []core.Point

	// DisplayPath describes the reveal visual. Never read by the engine.
	DisplayPath string

	// StartIndicator is where the "begin here" marker is drawn.
	StartIndicator core.Point

	// CompletionThreshold is the coverage ratio in (0, 1] that completes the stroke.
	CompletionThreshold float64
}

// Letter is an ordered sequence of strokes plus presentation metadata.
type Letter struct {
	Glyph   string // Displayed character, e.g. "A"
	Sound   string // Phonetic cue, e.g. "ahh"
	Word    string // Exemplar word, e.g. "Apple"
	Reward  string // Reward glyph shown on completion
	Strokes []Stroke
}

// StrokeCount returns the number of strokes in the letter.
func (l Letter) StrokeCount() int {
	return len(l.Strokes)
}

// Clone returns a deep copy so a session can own its letter outright.
func (l Letter) Clone() Letter {
	out := l
	out.Strokes = make([]Stroke, len(l.Strokes))
	for i, s := range l.Strokes {
		s.Zone = append([]core.Point(nil), s.Zone...)
		out.Strokes[i] = s
	}
	return out
}

// WithThresholdScale returns a copy with every threshold multiplied by
// factor and clamped back into (0, 1]. Used for assist presets.
func (l Letter) WithThresholdScale(factor float64) Letter {
	out := l.Clone()
	if factor <= 0 {
		return out
	}
	for i := range out.Strokes {
		t := out.Strokes[i].CompletionThreshold * factor
		if t > 1 {
			t = 1
		}
		if t <= 0 {
			t = out.Strokes[i].CompletionThreshold
		}
		out.Strokes[i].CompletionThreshold = t
	}
	return out
}

// Params controls the coverage grid resolution and brush size.
type Params struct {
	GridSize    int
	TouchRadius int
}

// DefaultParams returns the stock 12x12 grid with a radius-8 brush.
func DefaultParams() Params {
	return Params{
		GridSize:    DefaultGridSize,
		TouchRadius: DefaultTouchRadius,
	}
}

// normalized defaults a non-positive GridSize and clamps a negative
// TouchRadius to 0. A zero radius is kept: it stamps a single cell.
func (p Params) normalized() Params {
	if p.GridSize <= 0 {
		p.GridSize = DefaultGridSize
	}
	if p.TouchRadius < 0 {
		p.TouchRadius = 0
	}
	return p
}
