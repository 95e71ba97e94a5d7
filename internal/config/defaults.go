package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-trace/internal/tracing"
)

//go:embed defaults/tracing.yaml
var defaultTracingYAML []byte

// DefaultTracingConfig returns the hard-coded configuration used when the
// embedded YAML cannot be read.
func DefaultTracingConfig() TracingConfig {
	return TracingConfig{
		Engine: EngineConfig{
			GridSize:    tracing.DefaultGridSize,
			TouchRadius: tracing.DefaultTouchRadius,
		},
		Session: SessionConfig{
			Selection: "random",
		},
		Assist: AssistConfig{
			Preset: string(AssistNormal),
		},
		Display: DisplayConfig{
			ShowCoverage: true,
			ShowZone:     true,
			CellAspect:   2.0,
		},
		Demo: DemoConfig{
			SamplesPerTick: 3,
		},
	}
}
