// Package raster provides the CPU scanline rasterizer used by the canvas
// layer: polygon fills with analytic horizontal coverage and vertical
// supersampling, plus stroke-to-outline expansion.
package raster

import (
	"math"
	"sort"
)

// Point represents a 2D point.
type Point struct {
	X, Y float64
}

// Color is a straight-alpha RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// FillRule selects the winding rule used to classify interior spans.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// LineCap specifies the shape of stroke endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat cap at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound specifies a semicircular cap.
	LineCapRound
	// LineCapSquare specifies a square cap extended by half the line width.
	LineCapSquare
)

// Polyline is a flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Surface is the blending target for rasterization. Implementations
// must silently clip writes outside their bounds.
type Surface interface {
	Width() int
	Height() int
	// BlendPixel composites c over the pixel at (x, y) with the given
	// coverage in [0, 1] using source-over blending.
	BlendPixel(x, y int, c Color, coverage float64)
}

// Sampler returns the source color for a pixel center. Fills sample the
// brush through this so gradients resolve per pixel.
type Sampler func(x, y float64) Color

// subsamples is the number of scan rows evaluated per pixel row.
// Coverage within each row is analytic, so a handful of vertical samples
// give smooth edges at a fraction of full supersampling cost.
const subsamples = 4

// edge is a non-horizontal polygon edge prepared for scanline
// intersection. dir carries the winding contribution.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dir    int
}

// crossing is an edge intersection with a scan row.
type crossing struct {
	x   float64
	dir int
}

// Fill rasterizes the given subpaths onto dst, sampling the source color
// per pixel. Open subpaths are implicitly closed, matching the usual
// vector fill semantics. All writes are clipped to dst bounds.
func Fill(dst Surface, polys []Polyline, rule FillRule, sample Sampler) {
	w := dst.Width()
	h := dst.Height()
	if w <= 0 || h <= 0 {
		return
	}

	edges, minX, minY, maxX, maxY := buildEdges(polys)
	if len(edges) == 0 {
		return
	}

	yLo := clampInt(int(math.Floor(minY)), 0, h-1)
	yHi := clampInt(int(math.Ceil(maxY)), 0, h-1)
	xLo := clampInt(int(math.Floor(minX)), 0, w-1)
	xHi := clampInt(int(math.Ceil(maxX)), 0, w-1)
	if maxY < 0 || minY > float64(h) || maxX < 0 || minX > float64(w) {
		return
	}

	cov := make([]float64, w)
	crossings := make([]crossing, 0, 32)

	for y := yLo; y <= yHi; y++ {
		for x := xLo; x <= xHi; x++ {
			cov[x] = 0
		}

		for s := 0; s < subsamples; s++ {
			ys := float64(y) + (2*float64(s)+1)/(2*subsamples)
			crossings = crossings[:0]

			for i := range edges {
				e := &edges[i]
				lo, hi := e.y0, e.y1
				if lo > hi {
					lo, hi = hi, lo
				}
				// Half-open [lo, hi) so shared vertices count once.
				if ys < lo || ys >= hi {
					continue
				}
				t := (ys - e.y0) / (e.y1 - e.y0)
				crossings = append(crossings, crossing{
					x:   e.x0 + t*(e.x1-e.x0),
					dir: e.dir,
				})
			}
			if len(crossings) < 2 {
				continue
			}

			sort.Slice(crossings, func(i, j int) bool {
				return crossings[i].x < crossings[j].x
			})
			accumulateSpans(cov, crossings, rule, w)
		}

		for x := xLo; x <= xHi; x++ {
			c := cov[x]
			if c <= 0 {
				continue
			}
			if c > 1 {
				c = 1
			}
			dst.BlendPixel(x, y, sample(float64(x)+0.5, float64(y)+0.5), c)
		}
	}
}

// accumulateSpans walks the sorted crossings, classifies interior spans
// with the fill rule, and adds each span's per-pixel coverage weighted
// by one subsample row.
func accumulateSpans(cov []float64, crossings []crossing, rule FillRule, w int) {
	const weight = 1.0 / subsamples

	winding := 0
	for i := 0; i < len(crossings)-1; i++ {
		winding += crossings[i].dir

		inside := winding != 0
		if rule == FillRuleEvenOdd {
			inside = winding%2 != 0
		}
		if !inside {
			continue
		}
		addSpan(cov, crossings[i].x, crossings[i+1].x, weight, w)
	}
}

// addSpan adds the coverage of the horizontal span [xa, xb) to the row
// buffer, splitting the fractional end pixels.
func addSpan(cov []float64, xa, xb, weight float64, w int) {
	if xa < 0 {
		xa = 0
	}
	if xb > float64(w) {
		xb = float64(w)
	}
	if xb <= xa {
		return
	}

	ia := int(xa)
	ib := int(xb)
	if ia == ib {
		cov[ia] += (xb - xa) * weight
		return
	}
	cov[ia] += (float64(ia+1) - xa) * weight
	for i := ia + 1; i < ib; i++ {
		cov[i] += weight
	}
	if ib < w {
		cov[ib] += (xb - float64(ib)) * weight
	}
}

// buildEdges collects the non-horizontal edges of all subpaths together
// with the overall bounding box. Open subpaths get a closing edge.
func buildEdges(polys []Polyline) (edges []edge, minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)

	for _, poly := range polys {
		pts := poly.Points
		if len(pts) < 3 {
			continue
		}
		n := len(pts)
		for i := 0; i < n; i++ {
			p := pts[i]
			q := pts[(i+1)%n]

			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)

			if p.Y == q.Y {
				continue
			}
			dir := 1
			if q.Y < p.Y {
				dir = -1
			}
			edges = append(edges, edge{x0: p.X, y0: p.Y, x1: q.X, y1: q.Y, dir: dir})
		}
	}
	return edges, minX, minY, maxX, maxY
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
