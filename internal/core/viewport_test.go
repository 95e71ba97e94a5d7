package core

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFitViewport(t *testing.T) {
	tests := []struct {
		name       string
		area       Rect
		aspect     float64
		scale      float64
		offX, offY float64
	}{
		{"square pixels square area", NewRect(0, 0, 200, 200), 1, 2, 0, 0},
		{"wide area centres horizontally", NewRect(0, 0, 300, 100), 1, 1, 100, 0},
		{"tall area centres vertically", NewRect(0, 0, 100, 300), 1, 1, 0, 100},
		{"terminal cells", NewRect(0, 0, 100, 50), 2, 1, 0, 0},
		{"offset area", NewRect(10, 5, 100, 50), 2, 1, 10, 10},
		{"zero aspect treated as square", NewRect(0, 0, 100, 100), 0, 1, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := FitViewport(tc.area, tc.aspect)
			if !approx(v.Scale, tc.scale) {
				t.Errorf("Scale = %v, expected %v", v.Scale, tc.scale)
			}
			if !approx(v.OffsetX, tc.offX) || !approx(v.OffsetY, tc.offY) {
				t.Errorf("Offset = (%v, %v), expected (%v, %v)", v.OffsetX, v.OffsetY, tc.offX, tc.offY)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := FitViewport(NewRect(0, 0, 300, 100), 1)

	p := P(25, 75)
	px, py := v.ToPixels(p)
	back := v.ToNormalized(px, py)
	if !approx(back.X, p.X) || !approx(back.Y, p.Y) {
		t.Errorf("ToNormalized(ToPixels(%v)) = %v", p, back)
	}
}

func TestViewportCells(t *testing.T) {
	v := FitViewport(NewRect(0, 0, 100, 50), 2)

	p := v.CellToNormalized(49, 24)
	if !approx(p.X, 49.5) || !approx(p.Y, 49) {
		t.Errorf("CellToNormalized(49, 24) = %v, expected (49.50,49.00)", p)
	}

	cx, cy := v.ToCell(p)
	if cx != 49 || cy != 24 {
		t.Errorf("ToCell(%v) = (%d, %d), expected (49, 24)", p, cx, cy)
	}

	// Letter origin and far corner land inside the area
	if cx, cy := v.ToCell(P(0, 0)); cx != 0 || cy != 0 {
		t.Errorf("ToCell(0,0) = (%d, %d), expected (0, 0)", cx, cy)
	}
	if cx, cy := v.ToCell(P(99.9, 99.9)); cx != 99 || cy != 49 {
		t.Errorf("ToCell(99.9,99.9) = (%d, %d), expected (99, 49)", cx, cy)
	}
}
