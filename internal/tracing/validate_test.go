package tracing

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-trace/internal/core"
)

func TestValidateLetter(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Letter)
		code   string
	}{
		{"valid", func(*Letter) {}, ""},
		{"empty glyph", func(l *Letter) { l.Glyph = "" }, CodeEmptyGlyph},
		{"no strokes", func(l *Letter) { l.Strokes = nil }, CodeNoStrokes},
		{"duplicate id", func(l *Letter) { l.Strokes[1].ID = "top" }, CodeDuplicateID},
		{"degenerate zone", func(l *Letter) { l.Strokes[0].Zone = l.Strokes[0].Zone[:2] }, CodeDegenerateZone},
		{"zero threshold", func(l *Letter) { l.Strokes[0].CompletionThreshold = 0 }, CodeBadThreshold},
		{"threshold above one", func(l *Letter) { l.Strokes[1].CompletionThreshold = 1.2 }, CodeBadThreshold},
		{"threshold of one", func(l *Letter) { l.Strokes[1].CompletionThreshold = 1 }, ""},
		{"empty zone", func(l *Letter) {
			l.Strokes[0].Zone = []core.Point{core.P(1, 1), core.P(2, 1), core.P(2, 2)}
		}, CodeEmptyZone},
		{"bad display path", func(l *Letter) { l.Strokes[0].DisplayPath = "L 10 10" }, CodeBadPath},
		{"good display path", func(l *Letter) { l.Strokes[0].DisplayPath = "M 10 20 L 90 20" }, ""},
		{"overshooting display path", func(l *Letter) { l.Strokes[0].DisplayPath = "M -20 50 L 120 50" }, ""},
		{"far away display path", func(l *Letter) { l.Strokes[0].DisplayPath = "M 0 0 L 3e7 0" }, CodeBadPath},
		{"huge arc radius", func(l *Letter) { l.Strokes[0].DisplayPath = "M 10 50 A 1e6 1e6 0 1 1 20 50" }, CodeBadPath},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := twoBarLetter().Clone()
			tc.mutate(&l)

			err := ValidateLetter(l, DefaultParams())
			if tc.code == "" {
				if err != nil {
					t.Fatalf("ValidateLetter() error: %v", err)
				}
				return
			}

			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ValidateLetter() = %v, expected ValidationError", err)
			}
			if verr.Code != tc.code {
				t.Errorf("Code = %s, expected %s", verr.Code, tc.code)
			}
		})
	}
}

func TestValidateLettersDuplicateGlyph(t *testing.T) {
	a := twoBarLetter()
	b := twoBarLetter()

	err := ValidateLetters([]Letter{a, b}, DefaultParams())
	var verr ValidationError
	if !errors.As(err, &verr) || verr.Code != CodeDuplicateGlyph {
		t.Errorf("ValidateLetters() = %v, expected %s", err, CodeDuplicateGlyph)
	}

	b.Glyph = "-"
	if err := ValidateLetters([]Letter{a, b}, DefaultParams()); err != nil {
		t.Errorf("ValidateLetters() error: %v", err)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidationError{Code: CodeBadThreshold, Letter: "A", Stroke: "left", Message: "too high"}
	if got, want := err.Error(), "[BAD_THRESHOLD] A/left: too high"; got != want {
		t.Errorf("Error() = %q, expected %q", got, want)
	}

	err = ValidationError{Code: CodeEmptyGlyph, Message: "letter has no glyph"}
	if got, want := err.Error(), "[EMPTY_GLYPH] letter has no glyph"; got != want {
		t.Errorf("Error() = %q, expected %q", got, want)
	}
}

func TestWithThresholdScale(t *testing.T) {
	l := twoBarLetter()
	l.Strokes[1].CompletionThreshold = 0.9

	strict := l.WithThresholdScale(1.2)
	if got := strict.Strokes[0].CompletionThreshold; got < 0.899 || got > 0.901 {
		t.Errorf("scaled threshold = %v, expected 0.9", got)
	}
	if got := strict.Strokes[1].CompletionThreshold; got != 1 {
		t.Errorf("scaled threshold = %v, expected clamp to 1", got)
	}
	if l.Strokes[0].CompletionThreshold != 0.75 {
		t.Error("WithThresholdScale() modified the source letter")
	}

	same := l.WithThresholdScale(0)
	if same.Strokes[0].CompletionThreshold != 0.75 {
		t.Errorf("factor 0 changed threshold to %v", same.Strokes[0].CompletionThreshold)
	}
}

func TestCloneIsDeep(t *testing.T) {
	l := twoBarLetter()
	c := l.Clone()
	c.Strokes[0].Zone[0] = core.P(-1, -1)
	c.Strokes[1].ID = "changed"

	if l.Strokes[0].Zone[0] == core.P(-1, -1) || l.Strokes[1].ID == "changed" {
		t.Error("Clone() shares storage with the original")
	}
}

func TestParamsNormalized(t *testing.T) {
	tests := []struct {
		in, want Params
	}{
		{Params{}, Params{GridSize: DefaultGridSize, TouchRadius: 0}},
		{Params{GridSize: -3, TouchRadius: -1}, Params{GridSize: DefaultGridSize, TouchRadius: 0}},
		{Params{GridSize: 16, TouchRadius: 4}, Params{GridSize: 16, TouchRadius: 4}},
	}
	for _, tc := range tests {
		if got := tc.in.normalized(); got != tc.want {
			t.Errorf("%+v.normalized() = %+v, expected %+v", tc.in, got, tc.want)
		}
	}
}
