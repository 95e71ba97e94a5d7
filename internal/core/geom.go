// Package core provides fundamental types and utilities for the tracing platform.
// It contains no external UI dependencies (especially no Bubble Tea) to keep
// engine and game logic pure and testable.
package core

import (
	"fmt"
	"math"
)

// NormalizedSize is the extent of the letter coordinate space on both axes.
// All letter geometry is authored in [0, NormalizedSize].
const NormalizedSize = 100.0

// ArcSteps is the default number of angular subdivisions per arc edge.
const ArcSteps = 8

// Point is a coordinate pair in normalized letter space.
// X increases to the right, Y increases downward (screen coordinates).
type Point struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// P is a convenience constructor for Point.
func P(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y)
}

// Add returns the point offset by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Dist returns the Euclidean distance to another point.
func (p Point) Dist(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Lerp interpolates between p and other by t in [0, 1].
func (p Point) Lerp(other Point, t float64) Point {
	return Point{X: p.X + (other.X-p.X)*t, Y: p.Y + (other.Y-p.Y)*t}
}

// PointInPolygon reports whether p lies inside poly using a horizontal
// ray-casting parity test. An edge counts as crossed only when exactly one of
// its endpoints lies strictly below p.Y, so shared vertices are never counted
// twice and horizontal edges never reach the division.
// Polygons with fewer than 3 points contain nothing.
func PointInPolygon(p Point, poly []Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := poly[i].X, poly[i].Y
		xj, yj := poly[j].X, poly[j].Y

		// The straddle check must short-circuit before the intersection
		// formula: when yi == yj both sides are equal and we never divide.
		if (yi > p.Y) != (yj > p.Y) &&
			p.X < (xj-xi)*(p.Y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// StraightZone builds a rectangle of the given total width centred on the
// segment start->end. Vertices are ordered start+n, end+n, end-n, start-n where
// n is the half-width normal. start must differ from end.
func StraightZone(start, end Point, width float64) []Point {
	dx := end.X - start.X
	dy := end.Y - start.Y
	length := math.Hypot(dx, dy)

	// Perpendicular scaled to half the width
	px := (-dy / length) * (width / 2)
	py := (dx / length) * (width / 2)

	return []Point{
		{X: start.X + px, Y: start.Y + py},
		{X: end.X + px, Y: end.Y + py},
		{X: end.X - px, Y: end.Y - py},
		{X: start.X - px, Y: start.Y - py},
	}
}

// ArcZone builds an annular sector around center with ArcSteps subdivisions.
// Angles are in radians, measured from +X towards +Y.
func ArcZone(center Point, radius, startAngle, endAngle, width float64) []Point {
	return ArcZoneSteps(center, radius, startAngle, endAngle, width, ArcSteps)
}

// ArcZoneSteps is ArcZone with an explicit subdivision count.
// The outer arc is sampled forward and the inner arc backward, producing
// 2*(steps+1) vertices.
func ArcZoneSteps(center Point, radius, startAngle, endAngle, width float64, steps int) []Point {
	if steps < 1 {
		steps = 1
	}
	inner := radius - width/2
	outer := radius + width/2
	span := endAngle - startAngle

	points := make([]Point, 0, 2*(steps+1))
	for i := 0; i <= steps; i++ {
		t := startAngle + span*float64(i)/float64(steps)
		points = append(points, Point{
			X: center.X + outer*math.Cos(t),
			Y: center.Y + outer*math.Sin(t),
		})
	}
	for i := steps; i >= 0; i-- {
		t := startAngle + span*float64(i)/float64(steps)
		points = append(points, Point{
			X: center.X + inner*math.Cos(t),
			Y: center.Y + inner*math.Sin(t),
		})
	}
	return points
}

// Centroid returns the vertex average of a polygon.
// For convex polygons this point is always inside.
func Centroid(poly []Point) Point {
	if len(poly) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, p := range poly {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(poly))
	return Point{X: sx / n, Y: sy / n}
}

// Bounds returns the axis-aligned bounding box of a polygon as min and max corners.
func Bounds(poly []Point) (lo, hi Point) {
	if len(poly) == 0 {
		return Point{}, Point{}
	}
	lo, hi = poly[0], poly[0]
	for _, p := range poly[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}

// Rect represents an axis-aligned box of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center cell of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
