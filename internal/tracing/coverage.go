package tracing

import (
	"math"

	"github.com/vovakirdan/tui-trace/internal/core"
)

// CoverageGrid tracks how much of one stroke's zone has been swept.
// A size x size grid is laid over the whole normalized space; cells whose
// centres fall inside the zone are valid and form the denominator.
// Cells are stored in row-major order: index = row*size + col.
type CoverageGrid struct {
	size      int
	cellSize  float64
	zone      []core.Point
	valid     []bool
	activated []bool

	validCount     int
	activatedCount int
}

// NewCoverageGrid classifies every cell of a fresh grid against zone.
// This is the expensive step and runs once per stroke.
func NewCoverageGrid(zone []core.Point, size int) *CoverageGrid {
	if size <= 0 {
		size = DefaultGridSize
	}
	g := &CoverageGrid{
		size:      size,
		cellSize:  core.NormalizedSize / float64(size),
		zone:      zone,
		valid:     make([]bool, size*size),
		activated: make([]bool, size*size),
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if core.PointInPolygon(g.CellCenter(col, row), zone) {
				g.valid[g.index(col, row)] = true
				g.validCount++
			}
		}
	}
	return g
}

// CountValidCells returns how many cell centres of a size x size grid fall
// inside zone, without allocating a grid.
func CountValidCells(zone []core.Point, size int) int {
	if size <= 0 {
		size = DefaultGridSize
	}
	cell := core.NormalizedSize / float64(size)
	count := 0
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := core.Point{X: (float64(col) + 0.5) * cell, Y: (float64(row) + 0.5) * cell}
			if core.PointInPolygon(c, zone) {
				count++
			}
		}
	}
	return count
}

func (g *CoverageGrid) index(col, row int) int {
	return row*g.size + col
}

func (g *CoverageGrid) inBounds(col, row int) bool {
	return col >= 0 && col < g.size && row >= 0 && row < g.size
}

// Size returns the grid resolution per axis.
func (g *CoverageGrid) Size() int {
	return g.size
}

// CellCenter returns the normalized centre of a cell.
func (g *CoverageGrid) CellCenter(col, row int) core.Point {
	return core.Point{
		X: (float64(col) + 0.5) * g.cellSize,
		Y: (float64(row) + 0.5) * g.cellSize,
	}
}

// CellAt returns the cell containing a normalized point. The result may be
// outside the grid for points outside [0, 100).
func (g *CoverageGrid) CellAt(p core.Point) (col, row int) {
	return int(math.Floor(p.X / g.cellSize)), int(math.Floor(p.Y / g.cellSize))
}

// Valid reports whether a cell's centre lies inside the zone.
func (g *CoverageGrid) Valid(col, row int) bool {
	return g.inBounds(col, row) && g.valid[g.index(col, row)]
}

// Activated reports whether a cell has been swept.
func (g *CoverageGrid) Activated(col, row int) bool {
	return g.inBounds(col, row) && g.activated[g.index(col, row)]
}

// ValidCells returns the denominator of the coverage ratio.
func (g *CoverageGrid) ValidCells() int {
	return g.validCount
}

// ActivatedCells returns the number of valid cells swept so far.
func (g *CoverageGrid) ActivatedCells() int {
	return g.activatedCount
}

// Coverage returns activated/valid, or 0 when the zone has no valid cells.
func (g *CoverageGrid) Coverage() float64 {
	if g.validCount == 0 {
		return 0
	}
	return float64(g.activatedCount) / float64(g.validCount)
}

// Stamp applies one pointer sample with a brush of the given radius in cells.
// Samples outside the zone are ignored. Every valid, not yet activated cell
// whose cell distance from the sample's cell is within radius becomes
// activated. Returns the number of newly activated cells.
func (g *CoverageGrid) Stamp(p core.Point, radius int) int {
	if !core.PointInPolygon(p, g.zone) {
		return 0
	}

	cx, cy := g.CellAt(p)
	r2 := radius * radius
	added := 0

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			col, row := cx+dx, cy+dy
			if !g.inBounds(col, row) {
				continue
			}
			i := g.index(col, row)
			if g.activated[i] || !g.valid[i] {
				continue
			}
			if dx*dx+dy*dy <= r2 {
				g.activated[i] = true
				g.activatedCount++
				added++
			}
		}
	}
	return added
}

// ValidCellCenters returns the centres of all valid cells in row-major order.
func (g *CoverageGrid) ValidCellCenters() []core.Point {
	out := make([]core.Point, 0, g.validCount)
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			if g.valid[g.index(col, row)] {
				out = append(out, g.CellCenter(col, row))
			}
		}
	}
	return out
}
