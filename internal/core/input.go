package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionNext           // Enter, N - next letter after completion
	ActionRestart        // R - start the current letter over
	ActionCue            // S - repeat the letter's phonetic cue
	ActionDemo           // D - toggle the simulated pointer
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNext:
		return "Next"
	case ActionRestart:
		return "Restart"
	case ActionCue:
		return "Cue"
	case ActionDemo:
		return "Demo"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// PointerSample is one pointer position in screen cells, as delivered by the
// terminal while the primary button is held.
type PointerSample struct {
	X, Y int
}

// InputFrame represents the input gathered during one host tick.
// It contains all actions that were triggered and every pointer sample in
// arrival order.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer holds drag samples for the single active pointer.
	Pointer []PointerSample
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddPointer appends a pointer sample.
func (f *InputFrame) AddPointer(x, y int) {
	f.Pointer = append(f.Pointer, PointerSample{X: x, Y: y})
}

// Clear resets all actions and samples for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = append([]PointerSample(nil), f.Pointer...)
	return clone
}
