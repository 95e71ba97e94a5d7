// Package config provides YAML-based configuration loading for the tracing
// game, with embedded defaults, environment overrides and assist presets.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-trace/internal/catalog"
	"github.com/vovakirdan/tui-trace/internal/tracing"
)

// TracingConfig contains all configuration for a tracing session.
type TracingConfig struct {
	Engine  EngineConfig  `yaml:"engine"`
	Session SessionConfig `yaml:"session"`
	Assist  AssistConfig  `yaml:"assist"`
	Display DisplayConfig `yaml:"display"`
	Demo    DemoConfig    `yaml:"demo"`
}

// EngineConfig defines the coverage grid parameters.
type EngineConfig struct {
	GridSize    int `yaml:"grid_size" env:"TRACE_GRID_SIZE"`
	TouchRadius int `yaml:"touch_radius" env:"TRACE_TOUCH_RADIUS"` // In grid cells
}

// SessionConfig defines how letters are chosen and where extra letters live.
type SessionConfig struct {
	Selection  string `yaml:"selection" env:"TRACE_SELECTION"` // "random" or "sequential"
	CatalogDir string `yaml:"catalog_dir" env:"TRACE_CATALOG_DIR"`
}

// AssistConfig selects how forgiving completion thresholds are.
type AssistConfig struct {
	Preset string `yaml:"preset" env:"TRACE_ASSIST"`
}

// DisplayConfig defines rendering options.
type DisplayConfig struct {
	ShowCoverage bool    `yaml:"show_coverage"`
	ShowZone     bool    `yaml:"show_zone"`
	CellAspect   float64 `yaml:"cell_aspect"` // Terminal cell height / width
}

// DemoConfig defines the simulated pointer.
type DemoConfig struct {
	SamplesPerTick int `yaml:"samples_per_tick"`
}

// Params returns the engine parameters.
func (c TracingConfig) Params() tracing.Params {
	return tracing.Params{
		GridSize:    c.Engine.GridSize,
		TouchRadius: c.Engine.TouchRadius,
	}
}

// Selection returns the parsed selection policy.
func (c TracingConfig) Selection() catalog.Selection {
	sel, err := catalog.ParseSelection(c.Session.Selection)
	if err != nil {
		return catalog.SelectRandom
	}
	return sel
}

// Validate rejects values the engine or host cannot run with.
func (c TracingConfig) Validate() error {
	if c.Engine.GridSize < 1 {
		return fmt.Errorf("engine.grid_size must be at least 1, got %d", c.Engine.GridSize)
	}
	if c.Engine.TouchRadius < 0 {
		return fmt.Errorf("engine.touch_radius must not be negative, got %d", c.Engine.TouchRadius)
	}
	if _, err := catalog.ParseSelection(c.Session.Selection); err != nil {
		return fmt.Errorf("session.selection: %w", err)
	}
	if _, err := ParseAssistPreset(c.Assist.Preset); err != nil {
		return fmt.Errorf("assist.preset: %w", err)
	}
	if c.Display.CellAspect <= 0 {
		return fmt.Errorf("display.cell_aspect must be positive, got %v", c.Display.CellAspect)
	}
	if c.Demo.SamplesPerTick < 1 {
		return fmt.Errorf("demo.samples_per_tick must be at least 1, got %d", c.Demo.SamplesPerTick)
	}
	return nil
}
