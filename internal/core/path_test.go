package core

import (
	"math"
	"testing"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name string
		d    string
		ops  []PathOp
		last Point
	}{
		{"line", "M 10 10 L 90 10", []PathOp{OpMove, OpLine}, P(90, 10)},
		{"commas and implicit line", "M10,10 20,20 30,10", []PathOp{OpMove, OpLine, OpLine}, P(30, 10)},
		{"relative", "m 10 10 l 80 0 v 5 h -10", []PathOp{OpMove, OpLine, OpLine, OpLine}, P(80, 15)},
		{"close returns to start", "M 10 10 L 50 10 L 50 50 Z", []PathOp{OpMove, OpLine, OpLine, OpClose}, P(10, 10)},
		{"quadratic", "M 20 20 Q 50 0 80 20", []PathOp{OpMove, OpQuad}, P(80, 20)},
		{"cubic", "M 20 20 C 30 0 70 0 80 20", []PathOp{OpMove, OpCubic}, P(80, 20)},
		{"arc", "M 15 50 A 35 35 0 1 1 85 50", []PathOp{OpMove, OpArc}, P(85, 50)},
		{"negative without separator", "M10-5L20-5", []PathOp{OpMove, OpLine}, P(20, -5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path, err := ParsePath(tc.d)
			if err != nil {
				t.Fatalf("ParsePath(%q) error: %v", tc.d, err)
			}
			if len(path.Segments) != len(tc.ops) {
				t.Fatalf("ParsePath(%q) = %d segments, expected %d", tc.d, len(path.Segments), len(tc.ops))
			}
			for i, op := range tc.ops {
				if path.Segments[i].Op != op {
					t.Errorf("segment %d op = %c, expected %c", i, path.Segments[i].Op, op)
				}
			}
			last := path.Segments[len(path.Segments)-1]
			end := last.Points[len(last.Points)-1]
			if end != tc.last {
				t.Errorf("last point = %v, expected %v", end, tc.last)
			}
		})
	}
}

func TestParsePathErrors(t *testing.T) {
	bad := []string{
		"",
		"   ",
		"L 10 10",
		"M 10",
		"M 10 10 L 20",
		"M 10 10 X 5 5",
		"10 10",
	}

	for _, d := range bad {
		if _, err := ParsePath(d); err == nil {
			t.Errorf("ParsePath(%q) should fail", d)
		}
	}
}

func TestPathSampleLine(t *testing.T) {
	path, err := ParsePath("M 10 10 L 90 10")
	if err != nil {
		t.Fatal(err)
	}

	lines := path.Sample(10)
	if len(lines) != 1 {
		t.Fatalf("Sample() = %d polylines, expected 1", len(lines))
	}
	pts := lines[0]
	if len(pts) != 9 {
		t.Fatalf("Sample() = %d points, expected 9", len(pts))
	}
	if pts[0] != P(10, 10) || pts[8] != P(90, 10) {
		t.Errorf("endpoints = %v, %v", pts[0], pts[8])
	}
}

func TestPathSampleSubpaths(t *testing.T) {
	path, err := ParsePath("M 10 10 L 10 90 M 50 10 L 50 90")
	if err != nil {
		t.Fatal(err)
	}
	if n := len(path.Sample(5)); n != 2 {
		t.Errorf("Sample() = %d polylines, expected 2", n)
	}
	if flat := path.Flatten(5); len(flat) < 4 {
		t.Errorf("Flatten() = %d points, expected at least 4", len(flat))
	}
}

func TestPathSampleArc(t *testing.T) {
	path, err := ParsePath("M 15 50 A 35 35 0 1 1 85 50")
	if err != nil {
		t.Fatal(err)
	}

	pts := path.Flatten(2)
	if len(pts) < 10 {
		t.Fatalf("arc sampled into %d points, expected many", len(pts))
	}
	for _, p := range pts {
		if d := p.Dist(P(50, 50)); math.Abs(d-35) > 1e-6 {
			t.Fatalf("arc point %v at radius %v, expected 35", p, d)
		}
	}
	end := pts[len(pts)-1]
	if end.Dist(P(85, 50)) > 1e-6 {
		t.Errorf("arc ends at %v, expected (85,50)", end)
	}
}

func TestPathSampleIsCapped(t *testing.T) {
	path, err := ParsePath("M 0 0 L 3e7 0")
	if err != nil {
		t.Fatal(err)
	}
	pts := path.Flatten(1)
	if len(pts) > maxSegmentSteps+1 {
		t.Errorf("Flatten() = %d points, expected at most %d", len(pts), maxSegmentSteps+1)
	}
	if end := pts[len(pts)-1]; end != P(3e7, 0) {
		t.Errorf("Flatten() ends at %v, expected (3e+07,0)", end)
	}
}

func TestPathCheckBounds(t *testing.T) {
	tests := []struct {
		d  string
		ok bool
	}{
		{"M 10 10 L 90 90", true},
		{"M -100 50 L 200 50", true},
		{"M 0 0 L 3e7 0", false},
		{"M 50 50 Q 50 -500 60 50", false},
		{"M 10 50 A 1e6 1e6 0 1 1 20 50", false},
	}

	for _, tc := range tests {
		path, err := ParsePath(tc.d)
		if err != nil {
			t.Fatalf("ParsePath(%q) error: %v", tc.d, err)
		}
		if err := path.CheckBounds(-100, 200); (err == nil) != tc.ok {
			t.Errorf("CheckBounds(%q) = %v, expected ok=%v", tc.d, err, tc.ok)
		}
	}
}
