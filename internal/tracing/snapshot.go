package tracing

// CellState is one cell of the live coverage grid as seen by a renderer.
type CellState struct {
	Col, Row  int
	Activated bool
}

// Snapshot is an immutable view of a controller for rendering and HUDs.
// It shares nothing with the controller.
type Snapshot struct {
	Glyph     string
	Current   int   // Index of the live stroke; equals Total when complete
	Total     int   // Stroke count
	Completed []int // Completed stroke log in completion order
	Coverage  float64
	Threshold float64 // Live stroke's threshold, 0 when complete
	Complete  bool

	GridSize int
	Cells    []CellState // Valid cells of the live grid; empty before the first sample
}

// Snapshot captures the controller's observable state.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Glyph:     c.letter.Glyph,
		Current:   c.current,
		Total:     len(c.letter.Strokes),
		Completed: c.CompletedStrokes(),
		Coverage:  c.coverage,
		Complete:  c.IsComplete(),
		GridSize:  c.params.GridSize,
	}
	if stroke, ok := c.CurrentZone(); ok {
		s.Threshold = stroke.CompletionThreshold
	}

	if g := c.grid; g != nil {
		s.Cells = make([]CellState, 0, g.ValidCells())
		for row := 0; row < g.size; row++ {
			for col := 0; col < g.size; col++ {
				if g.Valid(col, row) {
					s.Cells = append(s.Cells, CellState{Col: col, Row: row, Activated: g.Activated(col, row)})
				}
			}
		}
	}
	return s
}

// Progress returns overall letter progress in [0, 1], counting the live
// stroke's coverage toward the next whole stroke.
func (s Snapshot) Progress() float64 {
	if s.Total == 0 {
		return 0
	}
	if s.Complete {
		return 1
	}
	return (float64(len(s.Completed)) + s.Coverage) / float64(s.Total)
}
