package canvas

import (
	"math"
	"sort"
)

// Brush represents what to paint with.
// This is a sealed interface - only types in this package implement it.
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()

	// ColorAt returns the color at the given coordinates.
	// For solid brushes, this returns the same color regardless of position.
	// For gradient brushes, this samples the gradient at (x, y).
	ColorAt(x, y float64) RGBA
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	Color RGBA
}

func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// Solid creates a SolidBrush from an RGBA color.
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// SolidRGB creates an opaque SolidBrush from RGB components (0-1 range).
func SolidRGB(r, g, b float64) SolidBrush {
	return SolidBrush{Color: RGB(r, g, b)}
}

// SolidRGBA creates a SolidBrush from RGBA components (0-1 range).
func SolidRGBA(r, g, b, a float64) SolidBrush {
	return SolidBrush{Color: RGBA2(r, g, b, a)}
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// sortStops returns the stops ordered by offset without modifying the input.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// colorAtOffset returns the interpolated color at offset t.
// Offsets outside [0, 1] are clamped (pad extend). Interpolation happens
// directly in sRGB space, matching the reference renderer.
func colorAtOffset(stops []ColorStop, t float64) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	sorted := sortStops(stops)
	t = clamp01(t)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	stop1 := sorted[idx-1]
	stop2 := sorted[idx]
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return stop1.Color.Lerp(stop2.Color, localT)
}

// LinearGradientBrush represents a linear color transition between two points.
// Points beyond the gradient line are clamped to the end colors.
type LinearGradientBrush struct {
	Start Point
	End   Point
	Stops []ColorStop
}

// NewLinearGradientBrush creates a new linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradientBrush(x0, y0, x1, y1 float64) *LinearGradientBrush {
	return &LinearGradientBrush{
		Start: Pt(x0, y0),
		End:   Pt(x1, y1),
	}
}

// AddColorStop adds a color stop at the specified offset.
// Returns the gradient for method chaining.
func (g *LinearGradientBrush) AddColorStop(offset float64, c RGBA) *LinearGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

func (LinearGradientBrush) brushMarker() {}

// ColorAt returns the color at the given point.
func (g *LinearGradientBrush) ColorAt(x, y float64) RGBA {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}

	// Project the point onto the gradient line.
	px := x - g.Start.X
	py := y - g.Start.Y
	t := (px*dx + py*dy) / lengthSq

	return colorAtOffset(g.Stops, t)
}

// transformed returns a copy of the gradient with its geometry mapped
// through m.
func (g *LinearGradientBrush) transformed(m Matrix) *LinearGradientBrush {
	return &LinearGradientBrush{
		Start: m.TransformPoint(g.Start),
		End:   m.TransformPoint(g.End),
		Stops: g.Stops,
	}
}

// RadialGradientBrush represents a radial color transition.
// Colors radiate from a focal point out to a circle of EndRadius around
// Center. A focal point different from the center produces the
// asymmetric falloff used for off-axis glows.
type RadialGradientBrush struct {
	Center    Point
	Focus     Point
	EndRadius float64
	Stops     []ColorStop
}

// NewRadialGradientBrush creates a new radial gradient around (cx, cy)
// with the given outer radius. Focus defaults to the center.
func NewRadialGradientBrush(cx, cy, endRadius float64) *RadialGradientBrush {
	center := Pt(cx, cy)
	return &RadialGradientBrush{
		Center:    center,
		Focus:     center,
		EndRadius: endRadius,
	}
}

// SetFocus sets the focal point of the gradient.
// Returns the gradient for method chaining.
func (g *RadialGradientBrush) SetFocus(fx, fy float64) *RadialGradientBrush {
	g.Focus = Pt(fx, fy)
	return g
}

// AddColorStop adds a color stop at the specified offset.
// Returns the gradient for method chaining.
func (g *RadialGradientBrush) AddColorStop(offset float64, c RGBA) *RadialGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

func (RadialGradientBrush) brushMarker() {}

// ColorAt returns the color at the given point.
func (g *RadialGradientBrush) ColorAt(x, y float64) RGBA {
	if g.EndRadius <= 0 {
		return firstStopColor(g.Stops)
	}

	var t float64
	if g.Focus == g.Center {
		dx := x - g.Center.X
		dy := y - g.Center.Y
		t = math.Sqrt(dx*dx+dy*dy) / g.EndRadius
	} else {
		t = g.focalT(x, y)
	}
	return colorAtOffset(g.Stops, t)
}

// focalT computes the gradient parameter for a focal gradient by
// intersecting the ray from the focus through the point with the outer
// circle.
func (g *RadialGradientBrush) focalT(x, y float64) float64 {
	dx := x - g.Focus.X
	dy := y - g.Focus.Y

	fx := g.Center.X - g.Focus.X
	fy := g.Center.Y - g.Focus.Y

	a := dx*dx + dy*dy
	if a == 0 {
		return 0
	}
	b := -2 * (dx*fx + dy*fy)
	c := fx*fx + fy*fy - g.EndRadius*g.EndRadius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 1
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	var t float64
	switch {
	case t1 > 0 && t2 > 0:
		t = math.Min(t1, t2)
	case t1 > 0:
		t = t1
	case t2 > 0:
		t = t2
	default:
		return 0
	}

	// Ratio of the point's distance to the circle intersection distance.
	pointDist := math.Sqrt(a)
	intersectDist := t * pointDist
	if intersectDist == 0 {
		return 0
	}
	return pointDist / intersectDist
}

// transformed returns a copy of the gradient with its geometry mapped
// through m. The radius is scaled by the matrix's uniform scale factor.
func (g *RadialGradientBrush) transformed(m Matrix) *RadialGradientBrush {
	return &RadialGradientBrush{
		Center:    m.TransformPoint(g.Center),
		Focus:     m.TransformPoint(g.Focus),
		EndRadius: g.EndRadius * m.ScaleFactor(),
		Stops:     g.Stops,
	}
}

// firstStopColor returns the color of the lowest-offset stop, or
// Transparent if there are none.
func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return sortStops(stops)[0].Color
}

// transformBrush maps a brush's geometry through the given matrix.
// Gradient coordinates are specified in user space; fills and strokes
// resolve them to device space through the current transform.
func transformBrush(b Brush, m Matrix) Brush {
	if m.IsIdentity() {
		return b
	}
	switch g := b.(type) {
	case *LinearGradientBrush:
		return g.transformed(m)
	case *RadialGradientBrush:
		return g.transformed(m)
	default:
		return b
	}
}
