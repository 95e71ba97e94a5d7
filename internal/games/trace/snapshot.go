package trace

import "github.com/vovakirdan/tui-trace/internal/tracing"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateTracing     GameStateType = "tracing"
	StateComplete    GameStateType = "complete"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
	StateError       GameStateType = "error"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Mode        string
	LettersDone int
	Demo        bool
	Message     string
	State       GameStateType
	Engine      tracing.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.tick,
		Mode:        string(g.mode),
		LettersDone: g.lettersDone,
		Demo:        g.demo != nil,
		Message:     g.message,
	}

	switch {
	case g.ctrl == nil:
		s.State = StateError
		return s
	case g.tooSmall:
		s.State = StatePausedSmall
	case g.paused:
		s.State = StatePaused
	case g.ctrl.IsComplete():
		s.State = StateComplete
	default:
		s.State = StateTracing
	}
	s.Engine = g.ctrl.Snapshot()
	return s
}
