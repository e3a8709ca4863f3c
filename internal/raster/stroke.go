package raster

import "math"

// discSteps is the number of polygon sides used to approximate join
// and cap discs.
const discSteps = 16

// StrokeOutline expands stroked subpaths into closed polygons: one quad
// per segment plus a disc at every join, and caps at open endpoints.
// The pieces overlap, but they are meant to be filled together in a
// single non-zero fill, so each covered pixel blends exactly once and
// translucent strokes never darken where segments meet.
func StrokeOutline(polys []Polyline, width float64, lineCap LineCap) []Polyline {
	half := width / 2
	if half <= 0 {
		return nil
	}

	var out []Polyline
	for _, poly := range polys {
		pts := poly.Points
		if len(pts) < 2 {
			continue
		}

		if poly.Closed {
			n := len(pts)
			for i := 0; i < n; i++ {
				out = append(out, segmentQuad(pts[i], pts[(i+1)%n], half))
				out = append(out, disc(pts[i], half))
			}
			continue
		}

		start := pts[0]
		end := pts[len(pts)-1]
		if lineCap == LineCapSquare {
			// Square caps extend the end segments by half the width.
			start = extend(pts[1], pts[0], half)
			end = extend(pts[len(pts)-2], pts[len(pts)-1], half)
		}

		for i := 0; i < len(pts)-1; i++ {
			a := pts[i]
			b := pts[i+1]
			if i == 0 {
				a = start
			}
			if i == len(pts)-2 {
				b = end
			}
			out = append(out, segmentQuad(a, b, half))
		}
		for i := 1; i < len(pts)-1; i++ {
			out = append(out, disc(pts[i], half))
		}
		if lineCap == LineCapRound {
			out = append(out, disc(pts[0], half))
			out = append(out, disc(pts[len(pts)-1], half))
		}
	}
	return out
}

// segmentQuad returns the rectangle covering a stroked segment.
func segmentQuad(a, b Point, half float64) Polyline {
	d := direction(a, b)
	nx := d.Y * half
	ny := -d.X * half
	return Polyline{
		Points: []Point{
			{X: a.X + nx, Y: a.Y + ny},
			{X: b.X + nx, Y: b.Y + ny},
			{X: b.X - nx, Y: b.Y - ny},
			{X: a.X - nx, Y: a.Y - ny},
		},
		Closed: true,
	}
}

// disc returns a regular polygon approximating a circle of radius r.
func disc(center Point, r float64) Polyline {
	pts := make([]Point, discSteps)
	for i := 0; i < discSteps; i++ {
		a := 2 * math.Pi * float64(i) / discSteps
		pts[i] = Point{
			X: center.X + math.Cos(a)*r,
			Y: center.Y + math.Sin(a)*r,
		}
	}
	return Polyline{Points: pts, Closed: true}
}

// extend returns b pushed past itself along the a->b direction.
func extend(a, b Point, dist float64) Point {
	d := direction(a, b)
	return Point{X: b.X + d.X*dist, Y: b.Y + d.Y*dist}
}

// direction returns the unit vector from a to b.
func direction(a, b Point) Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return Point{}
	}
	return Point{X: dx / length, Y: dy / length}
}
