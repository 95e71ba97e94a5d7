package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-trace/internal/tracing"
)

// AssistPreset represents a named completion-threshold level.
type AssistPreset string

const (
	AssistGentle AssistPreset = "gentle"
	AssistNormal AssistPreset = "normal"
	AssistStrict AssistPreset = "strict"
)

// ParseAssistPreset validates a preset name. Empty means normal.
func ParseAssistPreset(s string) (AssistPreset, error) {
	switch p := AssistPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return AssistNormal, nil
	case AssistGentle, AssistNormal, AssistStrict:
		return p, nil
	default:
		return "", fmt.Errorf("unknown assist preset %q (want gentle, normal or strict)", s)
	}
}

// ThresholdScaleForPreset returns the factor applied to every completion threshold.
func ThresholdScaleForPreset(preset AssistPreset) float64 {
	switch preset {
	case AssistGentle:
		return 0.8
	case AssistStrict:
		return 1.2
	default:
		return 1.0
	}
}

// ApplyAssist returns the session's copy of a letter with the configured
// preset applied. The catalog's letter is left untouched.
func (c TracingConfig) ApplyAssist(l tracing.Letter) tracing.Letter {
	preset, err := ParseAssistPreset(c.Assist.Preset)
	if err != nil {
		preset = AssistNormal
	}
	return l.WithThresholdScale(ThresholdScaleForPreset(preset))
}
