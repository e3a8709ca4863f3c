package raster

import "math"

// Element kinds for path flattening input.
const (
	// ElemMoveTo starts a new subpath at Pts[0].
	ElemMoveTo = iota
	// ElemLineTo adds a line to Pts[0].
	ElemLineTo
	// ElemQuadTo adds a quadratic Bezier with control Pts[0] and end Pts[1].
	ElemQuadTo
	// ElemCubicTo adds a cubic Bezier with controls Pts[0], Pts[1] and end Pts[2].
	ElemCubicTo
	// ElemClose closes the current subpath.
	ElemClose
)

// Element is one path command in device coordinates.
type Element struct {
	Kind int
	Pts  [3]Point
}

// FlattenTolerance is the maximum allowed distance between a curve and
// its polyline approximation, in device pixels.
const FlattenTolerance = 0.1

// maxRecursionDepth bounds curve subdivision for degenerate control
// polygons.
const maxRecursionDepth = 16

// Flatten converts a sequence of path elements into polylines, one per
// subpath. Curves are subdivided recursively until they are within
// FlattenTolerance of the true curve. Subpath boundaries and closed
// flags are preserved.
func Flatten(elements []Element) []Polyline {
	var polys []Polyline
	var cur []Point

	flush := func(closed bool) {
		if len(cur) >= 2 {
			polys = append(polys, Polyline{Points: cur, Closed: closed})
		}
		cur = nil
	}

	for _, e := range elements {
		switch e.Kind {
		case ElemMoveTo:
			flush(false)
			cur = append(cur, e.Pts[0])

		case ElemLineTo:
			if len(cur) == 0 {
				cur = append(cur, e.Pts[0])
				continue
			}
			cur = appendPoint(cur, e.Pts[0])

		case ElemQuadTo:
			if len(cur) == 0 {
				continue
			}
			start := cur[len(cur)-1]
			cur = flattenQuad(cur, start, e.Pts[0], e.Pts[1], 0)
			cur = appendPoint(cur, e.Pts[1])

		case ElemCubicTo:
			if len(cur) == 0 {
				continue
			}
			start := cur[len(cur)-1]
			cur = flattenCubic(cur, start, e.Pts[0], e.Pts[1], e.Pts[2], 0)
			cur = appendPoint(cur, e.Pts[2])

		case ElemClose:
			flush(true)
		}
	}
	flush(false)
	return polys
}

// appendPoint adds p unless it duplicates the last point. Zero-length
// segments would otherwise produce degenerate stroke offsets.
func appendPoint(pts []Point, p Point) []Point {
	if n := len(pts); n > 0 {
		last := pts[n-1]
		if math.Abs(last.X-p.X) < 1e-12 && math.Abs(last.Y-p.Y) < 1e-12 {
			return pts
		}
	}
	return append(pts, p)
}

// flattenQuad subdivides a quadratic Bezier with de Casteljau splitting
// until the control point lies within tolerance of the chord. The end
// point is not appended; the caller adds it.
func flattenQuad(pts []Point, p0, p1, p2 Point, depth int) []Point {
	if depth >= maxRecursionDepth || quadFlatEnough(p0, p1, p2) {
		return pts
	}

	// Split at t = 0.5.
	p01 := midpoint(p0, p1)
	p12 := midpoint(p1, p2)
	mid := midpoint(p01, p12)

	pts = flattenQuad(pts, p0, p01, mid, depth+1)
	pts = appendPoint(pts, mid)
	return flattenQuad(pts, mid, p12, p2, depth+1)
}

// flattenCubic subdivides a cubic Bezier until both control points lie
// within tolerance of the chord. The end point is not appended.
func flattenCubic(pts []Point, p0, p1, p2, p3 Point, depth int) []Point {
	if depth >= maxRecursionDepth || cubicFlatEnough(p0, p1, p2, p3) {
		return pts
	}

	p01 := midpoint(p0, p1)
	p12 := midpoint(p1, p2)
	p23 := midpoint(p2, p3)
	p012 := midpoint(p01, p12)
	p123 := midpoint(p12, p23)
	mid := midpoint(p012, p123)

	pts = flattenCubic(pts, p0, p01, p012, mid, depth+1)
	pts = appendPoint(pts, mid)
	return flattenCubic(pts, mid, p123, p23, p3, depth+1)
}

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// quadFlatEnough reports whether the control point deviates from the
// chord by no more than the flattening tolerance.
func quadFlatEnough(p0, p1, p2 Point) bool {
	return distToSegment(p1, p0, p2) <= FlattenTolerance
}

// cubicFlatEnough reports whether both control points deviate from the
// chord by no more than the flattening tolerance.
func cubicFlatEnough(p0, p1, p2, p3 Point) bool {
	return distToSegment(p1, p0, p3) <= FlattenTolerance &&
		distToSegment(p2, p0, p3) <= FlattenTolerance
}

// distToSegment returns the distance from p to the segment ab.
func distToSegment(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}
