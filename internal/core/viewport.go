package core

import "math"

// Viewport maps between screen cells and normalized letter space.
// The letter square is fitted into the area with a uniform scale that
// preserves aspect ratio, then centred. Terminal cells are taller than they
// are wide, so rows are stretched by CellAspect before fitting.
type Viewport struct {
	Scale      float64 // Pixels per normalized unit
	OffsetX    float64 // Pixel offset of normalized x=0
	OffsetY    float64 // Pixel offset of normalized y=0
	CellAspect float64 // Cell height divided by cell width
}

// FitViewport computes the viewport for a letter drawn inside area.
// A non-positive cellAspect is treated as square cells.
func FitViewport(area Rect, cellAspect float64) Viewport {
	if cellAspect <= 0 {
		cellAspect = 1
	}
	w := float64(area.W)
	h := float64(area.H) * cellAspect

	scale := math.Min(w, h) / NormalizedSize
	if scale <= 0 {
		scale = 1
	}

	return Viewport{
		Scale:      scale,
		OffsetX:    float64(area.X) + (w-NormalizedSize*scale)/2,
		OffsetY:    float64(area.Y)*cellAspect + (h-NormalizedSize*scale)/2,
		CellAspect: cellAspect,
	}
}

// ToNormalized converts a pixel coordinate to normalized space.
func (v Viewport) ToNormalized(px, py float64) Point {
	return Point{
		X: (px - v.OffsetX) / v.Scale,
		Y: (py - v.OffsetY) / v.Scale,
	}
}

// ToPixels converts a normalized point to pixel coordinates.
func (v Viewport) ToPixels(p Point) (float64, float64) {
	return p.X*v.Scale + v.OffsetX, p.Y*v.Scale + v.OffsetY
}

// CellToNormalized returns the normalized position of a cell's centre.
func (v Viewport) CellToNormalized(cx, cy int) Point {
	return v.ToNormalized(float64(cx)+0.5, (float64(cy)+0.5)*v.aspect())
}

// ToCell returns the screen cell containing a normalized point.
func (v Viewport) ToCell(p Point) (int, int) {
	px, py := v.ToPixels(p)
	return int(math.Floor(px)), int(math.Floor(py / v.aspect()))
}

func (v Viewport) aspect() float64 {
	if v.CellAspect <= 0 {
		return 1
	}
	return v.CellAspect
}
