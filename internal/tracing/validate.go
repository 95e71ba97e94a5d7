package tracing

import (
	"fmt"

	"github.com/vovakirdan/tui-trace/internal/core"
)

// Validation error codes.
const (
	CodeNoStrokes      = "NO_STROKES"
	CodeDegenerateZone = "DEGENERATE_ZONE"
	CodeBadThreshold   = "BAD_THRESHOLD"
	CodeEmptyZone      = "EMPTY_ZONE"
	CodeDuplicateID    = "DUPLICATE_ID"
	CodeBadPath        = "BAD_PATH"
	CodeEmptyGlyph     = "EMPTY_GLYPH"
	CodeDuplicateGlyph = "DUPLICATE_GLYPH"
)

// Display paths may overshoot the normalized square, but not by more than
// its own size on either side.
const (
	pathMin = -core.NormalizedSize
	pathMax = 2 * core.NormalizedSize
)

// ValidationError describes a letter authoring defect.
type ValidationError struct {
	Code    string
	Letter  string
	Stroke  string
	Message string
}

func (e ValidationError) Error() string {
	where := e.Letter
	if e.Stroke != "" {
		where += "/" + e.Stroke
	}
	if where == "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, where, e.Message)
}

// ValidateLetter checks a letter for defects that would make it untraceable:
//   - at least one stroke, non-empty glyph
//   - unique stroke IDs
//   - every zone has at least 3 points and at least one valid grid cell
//   - every threshold is in (0, 1]
//   - every display path parses and stays near the normalized square
//
// These checks run at catalog load so touch handling never fails.
func ValidateLetter(l Letter, p Params) error {
	p = p.normalized()

	if l.Glyph == "" {
		return ValidationError{Code: CodeEmptyGlyph, Message: "letter has no glyph"}
	}
	if len(l.Strokes) == 0 {
		return ValidationError{Code: CodeNoStrokes, Letter: l.Glyph, Message: "letter has no strokes"}
	}

	seen := make(map[string]bool, len(l.Strokes))
	for i, s := range l.Strokes {
		name := s.ID
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		fail := func(code, format string, args ...any) error {
			return ValidationError{Code: code, Letter: l.Glyph, Stroke: name, Message: fmt.Sprintf(format, args...)}
		}

		if s.ID != "" && seen[s.ID] {
			return fail(CodeDuplicateID, "stroke id used twice")
		}
		seen[s.ID] = true

		if len(s.Zone) < 3 {
			return fail(CodeDegenerateZone, "zone has %d points, need at least 3", len(s.Zone))
		}
		if !(s.CompletionThreshold > 0 && s.CompletionThreshold <= 1) {
			return fail(CodeBadThreshold, "completion threshold %v outside (0,1]", s.CompletionThreshold)
		}
		if valid := CountValidCells(s.Zone, p.GridSize); valid == 0 {
			return fail(CodeEmptyZone, "zone covers no cell centres on a %dx%d grid", p.GridSize, p.GridSize)
		}
		if s.DisplayPath != "" {
			path, err := core.ParsePath(s.DisplayPath)
			if err != nil {
				return fail(CodeBadPath, "display path: %v", err)
			}
			if err := path.CheckBounds(pathMin, pathMax); err != nil {
				return fail(CodeBadPath, "display path: %v", err)
			}
		}
	}

	return nil
}

// ValidateLetters validates every letter and checks glyph uniqueness.
func ValidateLetters(letters []Letter, p Params) error {
	glyphs := make(map[string]bool, len(letters))
	for _, l := range letters {
		if err := ValidateLetter(l, p); err != nil {
			return err
		}
		if glyphs[l.Glyph] {
			return ValidationError{Code: CodeDuplicateGlyph, Letter: l.Glyph, Message: "glyph defined twice"}
		}
		glyphs[l.Glyph] = true
	}
	return nil
}
