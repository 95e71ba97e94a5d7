// Package registry maps tracing mode IDs ("trace", "trace_abc") to game
// factories. Modes register from init so the CLI, the menu and the SSH
// server can list and start them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-trace/internal/core"
)

// Game is the core interface that every tracing game mode implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "trace", "trace_abc").
	// Used for CLI commands and the reward ledger.
	ID() string

	// Title returns a human-readable name for display (e.g., "Letter Tracing").
	Title() string

	// Reset initializes the game state and picks the first letter.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions and pointer samples.
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (letters done, complete, paused).
	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize
// without losing progress. Other games are Reset on resize.
type Resizer interface {
	Resize(width, height int)
}

// GameInfo is a mode as shown in the menu and the rewards board.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh, un-Reset game. Each session gets its own instance
// so no tracing state is shared.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a tracing mode. The title is read once from a throwaway
// instance. Registering an ID twice, or a factory whose games report a
// different ID, panics: rewards are filed under Game.ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	if g.ID() != id {
		panic(fmt.Sprintf("registry: factory for %q builds %q", id, g.ID()))
	}

	factories[id] = f
	titles[id] = g.Title()
}

// List returns the registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a new session for the mode id. The returned game must be
// Reset before its first Step.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists reports whether id names a registered mode.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
