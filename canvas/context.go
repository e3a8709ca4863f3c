package canvas

import (
	"image"
	"image/color"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/606uotab/janus-monitor/internal/raster"
)

// Context is a 2D drawing context over a Pixmap. It carries the current
// path, paint and transformation matrix, and rasterizes fills and
// strokes with antialiased coverage. Drawing outside the pixmap is
// silently clipped.
//
// A Context is not safe for concurrent use.
type Context struct {
	pixmap *Pixmap
	path   *Path
	paint  *Paint
	matrix Matrix
	stack  []Matrix
}

// NewContext creates a drawing context backed by a new transparent
// pixmap. Returns ErrInvalidSize if either dimension is not positive.
func NewContext(width, height int) (*Context, error) {
	pixmap, err := NewPixmap(width, height)
	if err != nil {
		return nil, err
	}
	return NewContextForPixmap(pixmap), nil
}

// NewContextForPixmap creates a drawing context over an existing pixmap.
func NewContextForPixmap(pixmap *Pixmap) *Context {
	return &Context{
		pixmap: pixmap,
		path:   NewPath(),
		paint:  NewPaint(),
		matrix: Identity(),
	}
}

// Width returns the width of the underlying pixmap.
func (c *Context) Width() int { return c.pixmap.Width() }

// Height returns the height of the underlying pixmap.
func (c *Context) Height() int { return c.pixmap.Height() }

// Pixmap returns the underlying pixmap.
func (c *Context) Pixmap() *Pixmap { return c.pixmap }

// Image returns the rendered result as an image.NRGBA.
func (c *Context) Image() *image.NRGBA { return c.pixmap.ToImage() }

// EncodePNG writes the rendered result as PNG to w.
func (c *Context) EncodePNG(w io.Writer) error { return c.pixmap.EncodePNG(w) }

// SavePNG writes the rendered result to a PNG file.
func (c *Context) SavePNG(path string) error { return c.pixmap.SavePNG(path) }

// SetPixel sets a single pixel, bypassing the rasterizer.
func (c *Context) SetPixel(x, y int, col RGBA) { c.pixmap.SetPixel(x, y, col) }

// GetPixel returns the color of a single pixel.
func (c *Context) GetPixel(x, y int) RGBA { return c.pixmap.GetPixel(x, y) }

// Clear fills the whole pixmap with a color, replacing existing content.
func (c *Context) Clear(col RGBA) { c.pixmap.Clear(col) }

// Push saves the current transformation matrix on a stack.
func (c *Context) Push() {
	c.stack = append(c.stack, c.matrix)
}

// Pop restores the most recently pushed transformation matrix. Popping
// an empty stack resets the transform to identity.
func (c *Context) Pop() {
	if n := len(c.stack); n > 0 {
		c.matrix = c.stack[n-1]
		c.stack = c.stack[:n-1]
		return
	}
	c.matrix = Identity()
}

// Translate moves the origin of user space by (x, y).
func (c *Context) Translate(x, y float64) {
	c.matrix = c.matrix.Multiply(Translate(x, y))
}

// Scale scales user space by (x, y).
func (c *Context) Scale(x, y float64) {
	c.matrix = c.matrix.Multiply(Scale(x, y))
}

// Rotate rotates user space by angle radians around the current origin.
func (c *Context) Rotate(angle float64) {
	c.matrix = c.matrix.Multiply(Rotate(angle))
}

// SetColor sets a solid fill and stroke color.
func (c *Context) SetColor(col RGBA) { c.paint.Brush = Solid(col) }

// SetRGB sets an opaque solid color from components in [0, 1].
func (c *Context) SetRGB(r, g, b float64) { c.paint.Brush = SolidRGB(r, g, b) }

// SetRGBA sets a solid color with alpha from components in [0, 1].
func (c *Context) SetRGBA(r, g, b, a float64) { c.paint.Brush = SolidRGBA(r, g, b, a) }

// SetBrush sets the brush used by subsequent fills and strokes.
func (c *Context) SetBrush(b Brush) { c.paint.Brush = b }

// SetLineWidth sets the stroke width in user-space units.
func (c *Context) SetLineWidth(w float64) { c.paint.LineWidth = w }

// SetLineCap sets the stroke endpoint shape.
func (c *Context) SetLineCap(cap LineCap) { c.paint.LineCap = cap }

// SetFillRule sets the winding rule used by fills.
func (c *Context) SetFillRule(rule FillRule) { c.paint.FillRule = rule }

// NewSubPath clears the current path.
func (c *Context) NewSubPath() { c.path.Clear() }

// MoveTo starts a new subpath at (x, y).
func (c *Context) MoveTo(x, y float64) { c.path.MoveTo(x, y) }

// LineTo adds a line from the current point to (x, y).
func (c *Context) LineTo(x, y float64) { c.path.LineTo(x, y) }

// QuadraticTo adds a quadratic Bezier curve to (x, y).
func (c *Context) QuadraticTo(cx, cy, x, y float64) { c.path.QuadraticTo(cx, cy, x, y) }

// CubicTo adds a cubic Bezier curve to (x, y).
func (c *Context) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() { c.path.Close() }

// DrawRectangle adds a rectangle to the current path.
func (c *Context) DrawRectangle(x, y, w, h float64) { c.path.Rectangle(x, y, w, h) }

// DrawRoundedRectangle adds a rounded rectangle to the current path.
func (c *Context) DrawRoundedRectangle(x, y, w, h, r float64) {
	c.path.RoundedRectangle(x, y, w, h, r)
}

// DrawCircle adds a circle to the current path.
func (c *Context) DrawCircle(cx, cy, r float64) { c.path.Circle(cx, cy, r) }

// DrawArc adds a circular arc from angle1 to angle2 around (cx, cy).
func (c *Context) DrawArc(cx, cy, r, angle1, angle2 float64) {
	c.path.Arc(cx, cy, r, angle1, angle2)
}

// DrawLine adds a line segment from (x1, y1) to (x2, y2) as a new
// subpath.
func (c *Context) DrawLine(x1, y1, x2, y2 float64) {
	c.path.MoveTo(x1, y1)
	c.path.LineTo(x2, y2)
}

// Fill fills the current path with the current brush and clears the
// path.
func (c *Context) Fill() {
	c.FillPreserve()
	c.path.Clear()
}

// FillPreserve fills the current path, keeping it for further drawing.
func (c *Context) FillPreserve() {
	if c.path.IsEmpty() {
		return
	}
	polys := raster.Flatten(c.deviceElements())
	c.rasterize(polys, c.paint.FillRule)
}

// Stroke strokes the current path with the current brush and line
// settings, then clears the path.
func (c *Context) Stroke() {
	c.StrokePreserve()
	c.path.Clear()
}

// StrokePreserve strokes the current path, keeping it for further
// drawing. The stroke is expanded into a single fill outline, so
// translucent strokes blend each pixel once even where joins overlap.
func (c *Context) StrokePreserve() {
	if c.path.IsEmpty() {
		return
	}
	width := c.paint.LineWidth * c.matrix.ScaleFactor()
	polys := raster.Flatten(c.deviceElements())
	outline := raster.StrokeOutline(polys, width, raster.LineCap(c.paint.LineCap))
	c.rasterize(outline, FillRuleNonZero)
}

// rasterize fills the given device-space polylines with the current
// brush, mapping gradient geometry through the current transform.
func (c *Context) rasterize(polys []raster.Polyline, rule FillRule) {
	brush := transformBrush(c.paint.Brush, c.matrix)

	var sample raster.Sampler
	if solid, ok := brush.(SolidBrush); ok {
		col := raster.Color(solid.Color.Clamped())
		sample = func(_, _ float64) raster.Color { return col }
	} else {
		sample = func(x, y float64) raster.Color {
			return raster.Color(brush.ColorAt(x, y).Clamped())
		}
	}
	raster.Fill(surfaceAdapter{c.pixmap}, polys, raster.FillRule(rule), sample)
}

// surfaceAdapter exposes a Pixmap as a rasterizer blending target.
type surfaceAdapter struct {
	p *Pixmap
}

func (s surfaceAdapter) Width() int  { return s.p.Width() }
func (s surfaceAdapter) Height() int { return s.p.Height() }

func (s surfaceAdapter) BlendPixel(x, y int, c raster.Color, coverage float64) {
	s.p.BlendPixel(x, y, RGBA(c), coverage)
}

// deviceElements converts the current path into rasterizer elements,
// mapping every point through the current transform.
func (c *Context) deviceElements() []raster.Element {
	elements := c.path.Elements()
	out := make([]raster.Element, 0, len(elements))
	for _, e := range elements {
		switch el := e.(type) {
		case MoveTo:
			out = append(out, raster.Element{
				Kind: raster.ElemMoveTo,
				Pts:  [3]raster.Point{c.devicePoint(el.Point)},
			})
		case LineTo:
			out = append(out, raster.Element{
				Kind: raster.ElemLineTo,
				Pts:  [3]raster.Point{c.devicePoint(el.Point)},
			})
		case QuadTo:
			out = append(out, raster.Element{
				Kind: raster.ElemQuadTo,
				Pts: [3]raster.Point{
					c.devicePoint(el.Control),
					c.devicePoint(el.Point),
				},
			})
		case CubicTo:
			out = append(out, raster.Element{
				Kind: raster.ElemCubicTo,
				Pts: [3]raster.Point{
					c.devicePoint(el.Control1),
					c.devicePoint(el.Control2),
					c.devicePoint(el.Point),
				},
			})
		case Close:
			out = append(out, raster.Element{Kind: raster.ElemClose})
		}
	}
	return out
}

func (c *Context) devicePoint(p Point) raster.Point {
	t := c.matrix.TransformPoint(p)
	return raster.Point{X: t.X, Y: t.Y}
}

// PaintWithAlpha composites src over the full canvas with a uniform
// extra opacity in [0, 1]. Source pixels keep their own alpha; the
// global alpha multiplies it.
func (c *Context) PaintWithAlpha(src *Pixmap, alpha float64) {
	if src == nil || alpha <= 0 {
		return
	}
	a := clamp01(alpha)
	mask := image.NewUniform(color.Alpha16{A: uint16(math.Round(a * 0xffff))})
	xdraw.DrawMask(c.pixmap, c.pixmap.Bounds(), src.ToImage(), image.Point{}, mask, image.Point{}, xdraw.Over)
}
