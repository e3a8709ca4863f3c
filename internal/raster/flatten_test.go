package raster

import (
	"math"
	"testing"
)

func TestFlattenLinesPreserveSubpaths(t *testing.T) {
	elements := []Element{
		{Kind: ElemMoveTo, Pts: [3]Point{{0, 0}}},
		{Kind: ElemLineTo, Pts: [3]Point{{10, 0}}},
		{Kind: ElemLineTo, Pts: [3]Point{{10, 10}}},
		{Kind: ElemClose},
		{Kind: ElemMoveTo, Pts: [3]Point{{20, 20}}},
		{Kind: ElemLineTo, Pts: [3]Point{{30, 20}}},
	}

	polys := Flatten(elements)
	if len(polys) != 2 {
		t.Fatalf("got %d subpaths, want 2", len(polys))
	}
	if !polys[0].Closed {
		t.Error("first subpath should be closed")
	}
	if polys[1].Closed {
		t.Error("second subpath should be open")
	}
	if len(polys[0].Points) != 3 {
		t.Errorf("first subpath has %d points, want 3", len(polys[0].Points))
	}
}

func TestFlattenDropsDegenerateSubpaths(t *testing.T) {
	elements := []Element{
		{Kind: ElemMoveTo, Pts: [3]Point{{5, 5}}},
		{Kind: ElemMoveTo, Pts: [3]Point{{9, 9}}},
		{Kind: ElemLineTo, Pts: [3]Point{{9, 9}}},
	}
	if polys := Flatten(elements); len(polys) != 0 {
		t.Fatalf("got %d subpaths from degenerate input, want 0", len(polys))
	}
}

func TestFlattenCubicWithinTolerance(t *testing.T) {
	// Quarter-circle approximation of radius 100.
	const k = 0.5522847498307936
	elements := []Element{
		{Kind: ElemMoveTo, Pts: [3]Point{{100, 0}}},
		{Kind: ElemCubicTo, Pts: [3]Point{{100, 100 * k}, {100 * k, 100}, {0, 100}}},
	}

	polys := Flatten(elements)
	if len(polys) != 1 {
		t.Fatalf("got %d subpaths, want 1", len(polys))
	}
	pts := polys[0].Points
	if len(pts) < 8 {
		t.Fatalf("curve flattened to only %d points", len(pts))
	}

	// Every flattened point must lie near the true circle.
	for _, p := range pts {
		r := math.Hypot(p.X, p.Y)
		if math.Abs(r-100) > 0.5 {
			t.Fatalf("point (%v,%v) deviates from arc by %v", p.X, p.Y, math.Abs(r-100))
		}
	}

	first := pts[0]
	last := pts[len(pts)-1]
	if first != (Point{100, 0}) {
		t.Errorf("curve start = %v", first)
	}
	if last != (Point{0, 100}) {
		t.Errorf("curve end = %v", last)
	}
}

func TestFlattenQuadEndpoints(t *testing.T) {
	elements := []Element{
		{Kind: ElemMoveTo, Pts: [3]Point{{0, 0}}},
		{Kind: ElemQuadTo, Pts: [3]Point{{50, 100}, {100, 0}}},
	}
	polys := Flatten(elements)
	if len(polys) != 1 {
		t.Fatalf("got %d subpaths, want 1", len(polys))
	}
	pts := polys[0].Points
	if pts[0] != (Point{0, 0}) || pts[len(pts)-1] != (Point{100, 0}) {
		t.Errorf("endpoints %v .. %v", pts[0], pts[len(pts)-1])
	}
	// Peak of the parabola is at y = 50.
	peak := 0.0
	for _, p := range pts {
		if p.Y > peak {
			peak = p.Y
		}
	}
	if math.Abs(peak-50) > 1 {
		t.Errorf("flattened peak = %v, want ~50", peak)
	}
}

func TestFlattenSkipsDuplicatePoints(t *testing.T) {
	elements := []Element{
		{Kind: ElemMoveTo, Pts: [3]Point{{0, 0}}},
		{Kind: ElemLineTo, Pts: [3]Point{{0, 0}}},
		{Kind: ElemLineTo, Pts: [3]Point{{10, 0}}},
		{Kind: ElemLineTo, Pts: [3]Point{{10, 0}}},
		{Kind: ElemLineTo, Pts: [3]Point{{10, 10}}},
	}
	polys := Flatten(elements)
	if len(polys) != 1 {
		t.Fatalf("got %d subpaths, want 1", len(polys))
	}
	if got := len(polys[0].Points); got != 3 {
		t.Errorf("got %d points, want 3 after dedup", got)
	}
}
