package raster

import (
	"math"
	"testing"
)

func fillOutline(t *testing.T, w, h int, polys []Polyline) *testSurface {
	t.Helper()
	s := newTestSurface(w, h)
	Fill(s, polys, FillRuleNonZero, solidSampler(Color{A: 1}))
	return s
}

func TestStrokeOutlineHorizontalLine(t *testing.T) {
	line := Polyline{Points: []Point{{5, 10}, {25, 10}}}
	outline := StrokeOutline([]Polyline{line}, 4, LineCapButt)
	if len(outline) != 1 {
		t.Fatalf("got %d outlines, want 1", len(outline))
	}
	if !outline[0].Closed {
		t.Fatal("stroke outline must be closed")
	}

	s := fillOutline(t, 30, 20, outline)
	if got := s.coverage(15, 10); math.Abs(got-1) > 1e-6 {
		t.Errorf("stroke center coverage = %v, want 1", got)
	}
	if got := s.coverage(15, 5); got != 0 {
		t.Errorf("above stroke = %v, want 0", got)
	}
	if got := s.coverage(2, 10); got != 0 {
		t.Errorf("before butt cap = %v, want 0", got)
	}
}

func TestStrokeOutlineRoundCap(t *testing.T) {
	line := Polyline{Points: []Point{{10, 10}, {20, 10}}}
	s := fillOutline(t, 30, 20, StrokeOutline([]Polyline{line}, 6, LineCapRound))

	// The round cap reaches 3 pixels past the endpoint.
	if got := s.coverage(22, 10); got < 0.5 {
		t.Errorf("inside round cap = %v, want high coverage", got)
	}
	if got := s.coverage(25, 10); got != 0 {
		t.Errorf("beyond round cap = %v, want 0", got)
	}
}

func TestStrokeOutlineSquareCap(t *testing.T) {
	line := Polyline{Points: []Point{{10, 10}, {20, 10}}}
	s := fillOutline(t, 30, 20, StrokeOutline([]Polyline{line}, 6, LineCapSquare))

	if got := s.coverage(22, 12); got < 0.5 {
		t.Errorf("square cap corner = %v, want high coverage", got)
	}
}

func TestStrokeOutlineCornerSingleCoverage(t *testing.T) {
	// An L-shaped path overlaps itself at the corner; the outline must
	// still yield plain single coverage there under non-zero winding.
	path := Polyline{Points: []Point{{5, 15}, {20, 15}, {20, 30}}}
	s := fillOutline(t, 40, 40, StrokeOutline([]Polyline{path}, 8, LineCapButt))

	corner := s.coverage(20, 15)
	straight := s.coverage(12, 15)
	if math.Abs(corner-straight) > 0.02 {
		t.Errorf("corner coverage %v differs from straight coverage %v", corner, straight)
	}
}

func TestStrokeOutlineClosedRing(t *testing.T) {
	square := Polyline{
		Points: []Point{{10, 10}, {30, 10}, {30, 30}, {10, 30}},
		Closed: true,
	}
	outline := StrokeOutline([]Polyline{square}, 4, LineCapButt)
	if len(outline) == 0 {
		t.Fatal("closed stroke produced no outline")
	}

	s := fillOutline(t, 40, 40, outline)
	if got := s.coverage(20, 10); math.Abs(got-1) > 1e-6 {
		t.Errorf("on the stroked edge = %v, want 1", got)
	}
	if got := s.coverage(20, 20); got != 0 {
		t.Errorf("ring interior = %v, want hollow", got)
	}
	if got := s.coverage(2, 2); got != 0 {
		t.Errorf("outside ring = %v, want 0", got)
	}
}

func TestStrokeOutlineDegenerate(t *testing.T) {
	if out := StrokeOutline([]Polyline{{Points: []Point{{5, 5}}}}, 4, LineCapRound); len(out) != 0 {
		t.Errorf("single-point stroke produced %d outlines", len(out))
	}
	if out := StrokeOutline([]Polyline{{Points: []Point{{0, 0}, {10, 10}}}}, 0, LineCapButt); out != nil {
		t.Errorf("zero-width stroke produced %d outlines", len(out))
	}
}
