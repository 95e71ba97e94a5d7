package tracing

import "github.com/vovakirdan/tui-trace/internal/core"

// Event reports what a single HandleTouch call changed.
type Event int

const (
	EventNone           Event = iota // Sample ignored or added nothing
	EventProgress                    // Coverage grew but stayed below threshold
	EventStrokeComplete              // Stroke finished, next stroke unlocked
	EventLetterComplete              // Last stroke finished
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventProgress:
		return "progress"
	case EventStrokeComplete:
		return "stroke_complete"
	case EventLetterComplete:
		return "letter_complete"
	default:
		return "unknown"
	}
}

// Controller sequences strokes for one tracing session.
//
// States are Idle(i) for i in [0, N) and the terminal AllComplete. Only the
// current stroke accumulates coverage; its grid is created on the first
// sample and dropped the moment the stroke completes. The controller never
// moves backwards except through Reset.
//
// A Controller is not safe for concurrent use; each session owns one.
type Controller struct {
	letter Letter
	params Params

	current   int
	completed []int
	grid      *CoverageGrid // nil until the current stroke's first sample
	coverage  float64
}

// NewController starts a session in Idle(0) for a validated letter.
func NewController(letter Letter, params Params) *Controller {
	return &Controller{
		letter: letter,
		params: params.normalized(),
	}
}

// Letter returns the letter being traced.
func (c *Controller) Letter() Letter {
	return c.letter
}

// Params returns the grid resolution and brush radius in use.
func (c *Controller) Params() Params {
	return c.params
}

// HandleTouch feeds one normalized pointer sample to the current stroke.
// Samples outside the current zone, and all samples after completion, are
// no-ops. The call fully updates coverage and, on reaching the threshold,
// advances to the next stroke before returning.
func (c *Controller) HandleTouch(p core.Point) Event {
	if c.IsComplete() || c.current >= len(c.letter.Strokes) {
		return EventNone
	}

	stroke := c.letter.Strokes[c.current]
	grid := c.ensureGrid()
	if grid.ValidCells() == 0 {
		return EventNone
	}

	if grid.Stamp(p, c.params.TouchRadius) == 0 {
		return EventNone
	}

	c.coverage = grid.Coverage()
	if c.coverage < stroke.CompletionThreshold {
		return EventProgress
	}

	c.completed = append(c.completed, c.current)
	c.current++
	c.grid = nil
	c.coverage = 0

	if c.IsComplete() {
		return EventLetterComplete
	}
	return EventStrokeComplete
}

// ensureGrid lazily builds the coverage grid for the current stroke.
func (c *Controller) ensureGrid() *CoverageGrid {
	if c.grid == nil {
		c.grid = NewCoverageGrid(c.letter.Strokes[c.current].Zone, c.params.GridSize)
	}
	return c.grid
}

// Reset returns to Idle(0) with an empty completed log and no grid.
func (c *Controller) Reset() {
	c.current = 0
	c.completed = nil
	c.grid = nil
	c.coverage = 0
}

// CurrentStroke returns the index of the live stroke. After completion it
// equals the stroke count.
func (c *Controller) CurrentStroke() int {
	return c.current
}

// CurrentZone returns the live stroke, or false when the letter is complete.
func (c *Controller) CurrentZone() (Stroke, bool) {
	if c.current >= len(c.letter.Strokes) {
		return Stroke{}, false
	}
	return c.letter.Strokes[c.current], true
}

// CompletedStrokes returns a copy of the completed stroke log in completion order.
func (c *Controller) CompletedStrokes() []int {
	return append([]int(nil), c.completed...)
}

// IsStrokeCompleted reports whether stroke i has been traced.
func (c *Controller) IsStrokeCompleted(i int) bool {
	for _, idx := range c.completed {
		if idx == i {
			return true
		}
	}
	return false
}

// Coverage returns the live coverage ratio of the current stroke.
func (c *Controller) Coverage() float64 {
	return c.coverage
}

// IsComplete reports whether every stroke has been traced.
func (c *Controller) IsComplete() bool {
	return len(c.completed) == len(c.letter.Strokes)
}

// Grid returns the live coverage grid, or nil if the current stroke has not
// received a sample yet. Callers must treat it as read-only.
func (c *Controller) Grid() *CoverageGrid {
	return c.grid
}
