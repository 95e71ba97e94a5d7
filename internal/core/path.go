package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// PathOp identifies a drawing command in a display path.
type PathOp byte

const (
	OpMove  PathOp = 'M'
	OpLine  PathOp = 'L'
	OpQuad  PathOp = 'Q'
	OpCubic PathOp = 'C'
	OpArc   PathOp = 'A'
	OpClose PathOp = 'Z'
)

// PathSegment is one absolute drawing command.
// Points holds the control/end points; arcs keep their SVG parameters.
type PathSegment struct {
	Op     PathOp
	Points []Point

	// Arc parameters (OpArc only)
	RX, RY   float64
	Rotation float64 // Degrees
	LargeArc bool
	Sweep    bool
}

// Path is a parsed display path: a small subset of the SVG path mini-language
// (M L H V Q C A Z, absolute and relative).
type Path struct {
	Segments []PathSegment
}

// argCounts holds the number of numeric arguments each command consumes.
var argCounts = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1, 'Q': 4, 'C': 6, 'A': 7, 'Z': 0,
}

// ParsePath parses a display path string.
func ParsePath(d string) (Path, error) {
	toks, err := tokenizePath(d)
	if err != nil {
		return Path{}, err
	}
	if len(toks) == 0 {
		return Path{}, fmt.Errorf("path: empty")
	}

	var (
		path    Path
		cur     Point
		start   Point
		cmd     byte
		hasMove bool
	)

	i := 0
	for i < len(toks) {
		if toks[i].isCmd {
			cmd = toks[i].cmd
			i++
		} else if cmd == 0 {
			return Path{}, fmt.Errorf("path: number before first command")
		}

		upper := byte(unicode.ToUpper(rune(cmd)))
		rel := cmd != upper
		n := argCounts[upper]

		if upper != 'M' && !hasMove {
			return Path{}, fmt.Errorf("path: %c before initial move", cmd)
		}

		if upper == 'Z' {
			path.Segments = append(path.Segments, PathSegment{Op: OpClose, Points: []Point{start}})
			cur = start
			cmd = 0
			continue
		}

		args := make([]float64, n)
		for k := 0; k < n; k++ {
			if i >= len(toks) || toks[i].isCmd {
				return Path{}, fmt.Errorf("path: %c expects %d arguments", cmd, n)
			}
			args[k] = toks[i].num
			i++
		}

		pt := func(x, y float64) Point {
			if rel {
				return Point{X: cur.X + x, Y: cur.Y + y}
			}
			return Point{X: x, Y: y}
		}

		switch upper {
		case 'M':
			cur = pt(args[0], args[1])
			start = cur
			hasMove = true
			path.Segments = append(path.Segments, PathSegment{Op: OpMove, Points: []Point{cur}})
			// Subsequent coordinate pairs are implicit line-tos
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L':
			cur = pt(args[0], args[1])
			path.Segments = append(path.Segments, PathSegment{Op: OpLine, Points: []Point{cur}})
		case 'H':
			x := args[0]
			if rel {
				x += cur.X
			}
			cur = Point{X: x, Y: cur.Y}
			path.Segments = append(path.Segments, PathSegment{Op: OpLine, Points: []Point{cur}})
		case 'V':
			y := args[0]
			if rel {
				y += cur.Y
			}
			cur = Point{X: cur.X, Y: y}
			path.Segments = append(path.Segments, PathSegment{Op: OpLine, Points: []Point{cur}})
		case 'Q':
			c1 := pt(args[0], args[1])
			end := pt(args[2], args[3])
			path.Segments = append(path.Segments, PathSegment{Op: OpQuad, Points: []Point{c1, end}})
			cur = end
		case 'C':
			c1 := pt(args[0], args[1])
			c2 := pt(args[2], args[3])
			end := pt(args[4], args[5])
			path.Segments = append(path.Segments, PathSegment{Op: OpCubic, Points: []Point{c1, c2, end}})
			cur = end
		case 'A':
			end := pt(args[5], args[6])
			path.Segments = append(path.Segments, PathSegment{
				Op:       OpArc,
				Points:   []Point{end},
				RX:       math.Abs(args[0]),
				RY:       math.Abs(args[1]),
				Rotation: args[2],
				LargeArc: args[3] != 0,
				Sweep:    args[4] != 0,
			})
			cur = end
		}
	}

	return path, nil
}

type pathToken struct {
	isCmd bool
	cmd   byte
	num   float64
}

// tokenizePath splits a path string into commands and numbers.
// Separators are whitespace and commas; a sign starts a new number.
func tokenizePath(d string) ([]pathToken, error) {
	var toks []pathToken
	i := 0
	for i < len(d) {
		c := d[i]
		switch {
		case c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r':
			i++
		case strings.IndexByte("MLHVQCAZmlhvqcaz", c) >= 0:
			toks = append(toks, pathToken{isCmd: true, cmd: c})
			i++
		case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
			j := i + 1
			seenDot := c == '.'
			for j < len(d) {
				cj := d[j]
				if cj >= '0' && cj <= '9' {
					j++
					continue
				}
				if cj == '.' && !seenDot {
					seenDot = true
					j++
					continue
				}
				if (cj == 'e' || cj == 'E') && j+1 < len(d) {
					j++
					if d[j] == '-' || d[j] == '+' {
						j++
					}
					continue
				}
				break
			}
			v, err := strconv.ParseFloat(d[i:j], 64)
			if err != nil {
				return nil, fmt.Errorf("path: bad number %q: %w", d[i:j], err)
			}
			toks = append(toks, pathToken{num: v})
			i = j
		default:
			return nil, fmt.Errorf("path: unexpected character %q", c)
		}
	}
	return toks, nil
}

// Sample flattens the path into polylines with roughly step spacing.
// Each move starts a new polyline.
func (p Path) Sample(step float64) [][]Point {
	if step <= 0 {
		step = 1
	}

	var (
		lines [][]Point
		line  []Point
		cur   Point
	)

	flush := func() {
		if len(line) > 0 {
			lines = append(lines, line)
		}
		line = nil
	}

	for _, seg := range p.Segments {
		switch seg.Op {
		case OpMove:
			flush()
			cur = seg.Points[0]
			line = []Point{cur}
		case OpLine, OpClose:
			end := seg.Points[0]
			line = append(line, sampleLine(cur, end, step)...)
			cur = end
		case OpQuad:
			c1, end := seg.Points[0], seg.Points[1]
			n := curveSteps(cur.Dist(c1)+c1.Dist(end), step)
			for k := 1; k <= n; k++ {
				t := float64(k) / float64(n)
				a := cur.Lerp(c1, t)
				b := c1.Lerp(end, t)
				line = append(line, a.Lerp(b, t))
			}
			cur = end
		case OpCubic:
			c1, c2, end := seg.Points[0], seg.Points[1], seg.Points[2]
			n := curveSteps(cur.Dist(c1)+c1.Dist(c2)+c2.Dist(end), step)
			for k := 1; k <= n; k++ {
				t := float64(k) / float64(n)
				mt := 1 - t
				line = append(line, Point{
					X: mt*mt*mt*cur.X + 3*mt*mt*t*c1.X + 3*mt*t*t*c2.X + t*t*t*end.X,
					Y: mt*mt*mt*cur.Y + 3*mt*mt*t*c1.Y + 3*mt*t*t*c2.Y + t*t*t*end.Y,
				})
			}
			cur = end
		case OpArc:
			end := seg.Points[0]
			line = append(line, sampleArc(cur, seg, step)...)
			cur = end
		}
	}
	flush()

	return lines
}

// Flatten returns all sampled points of the path in drawing order.
func (p Path) Flatten(step float64) []Point {
	var out []Point
	for _, line := range p.Sample(step) {
		out = append(out, line...)
	}
	return out
}

// maxSegmentSteps caps the samples drawn for one segment.
const maxSegmentSteps = 1024

func curveSteps(approxLen, step float64) int {
	steps := math.Ceil(approxLen / step)
	if !(steps >= 1) { // Also catches NaN
		return 1
	}
	if steps > maxSegmentSteps {
		return maxSegmentSteps
	}
	return int(steps)
}

// CheckBounds reports the first point or arc radius of the path that lies
// outside [lo, hi] on either axis.
func (p Path) CheckBounds(lo, hi float64) error {
	in := func(v float64) bool { return v >= lo && v <= hi }
	for i, seg := range p.Segments {
		for _, pt := range seg.Points {
			if !in(pt.X) || !in(pt.Y) {
				return fmt.Errorf("path: segment %d point %v outside [%g, %g]", i, pt, lo, hi)
			}
		}
		if seg.Op == OpArc && (math.Abs(seg.RX) > hi-lo || math.Abs(seg.RY) > hi-lo) {
			return fmt.Errorf("path: segment %d arc radius (%g, %g) larger than %g", i, seg.RX, seg.RY, hi-lo)
		}
	}
	return nil
}

func sampleLine(from, to Point, step float64) []Point {
	n := curveSteps(from.Dist(to), step)
	out := make([]Point, 0, n)
	for k := 1; k <= n; k++ {
		out = append(out, from.Lerp(to, float64(k)/float64(n)))
	}
	return out
}

// sampleArc converts an endpoint-parameterised elliptical arc to centre form
// and samples it. Degenerate radii fall back to a straight line.
func sampleArc(from Point, seg PathSegment, step float64) []Point {
	to := seg.Points[0]
	rx, ry := seg.RX, seg.RY
	if rx == 0 || ry == 0 || (from.X == to.X && from.Y == to.Y) {
		return sampleLine(from, to, step)
	}

	phi := seg.Rotation * math.Pi / 180
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	dx := (from.X - to.X) / 2
	dy := (from.Y - to.Y) / 2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	// Scale radii up when the endpoints are too far apart
	lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := 0.0
	if den != 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if seg.LargeArc == seg.Sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	cx := cosPhi*cx1 - sinPhi*cy1 + (from.X+to.X)/2
	cy := sinPhi*cx1 + cosPhi*cy1 + (from.Y+to.Y)/2

	theta1 := vecAngle(1, 0, (x1-cx1)/rx, (y1-cy1)/ry)
	dtheta := vecAngle((x1-cx1)/rx, (y1-cy1)/ry, (-x1-cx1)/rx, (-y1-cy1)/ry)
	if !seg.Sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if seg.Sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}

	n := curveSteps(math.Abs(dtheta)*math.Max(rx, ry), step)
	out := make([]Point, 0, n)
	for k := 1; k <= n; k++ {
		t := theta1 + dtheta*float64(k)/float64(n)
		ex, ey := rx*math.Cos(t), ry*math.Sin(t)
		out = append(out, Point{
			X: cosPhi*ex - sinPhi*ey + cx,
			Y: sinPhi*ex + cosPhi*ey + cy,
		})
	}
	return out
}

// vecAngle returns the signed angle from vector u to vector v.
func vecAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}
