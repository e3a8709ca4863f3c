package scene

import (
	"math"

	"github.com/606uotab/janus-monitor/canvas"
)

// vineSide tells a vine which canvas edge it climbs.
type vineSide int

const (
	vineLeft vineSide = iota
	vineRight
)

// drawVines hangs two vines down each side of the canvas, a thick one
// near the edge and a thinner one further in.
func drawVines(ctx *canvas.Context, rng *Rand) {
	w := float64(ctx.Width())
	h := float64(ctx.Height())

	drawVine(ctx, rng, 25, 50, h-50, vineLeft, 3)
	drawVine(ctx, rng, 15, 200, h-100, vineLeft, 1.8)
	drawVine(ctx, rng, w-25, 80, h-50, vineRight, 3)
	drawVine(ctx, rng, w-15, 250, h-100, vineRight, 1.8)
}

// drawVine draws one climbing vine: a sinuous main stem, an offset
// tendril, leaves every few segments and the occasional spiral curl.
// The right-side variant mirrors horizontally.
func drawVine(ctx *canvas.Context, rng *Rand, xBase, yStart, yEnd float64, side vineSide, thickness float64) {
	dir := 1.0
	if side == vineRight {
		dir = -1.0
	}

	var points []canvas.Point
	for y := yStart; y < yEnd; y += 3 {
		offset := math.Sin(y*0.008)*25 + math.Sin(y*0.02)*12
		points = append(points, canvas.Pt(xBase+dir*offset, y))
	}
	if len(points) < 2 {
		return
	}

	// Main stem, smoothed by running curves through every other point.
	ctx.SetLineWidth(thickness)
	ctx.SetLineCap(canvas.LineCapRound)
	ctx.SetColor(canvas.RGBA2(42.0/255, 100.0/255, 35.0/255, 0.55))
	ctx.MoveTo(points[0].X, points[0].Y)
	for i := 1; i+1 < len(points); i += 2 {
		ctx.CubicTo(points[i].X, points[i].Y, points[i].X, points[i].Y,
			points[i+1].X, points[i+1].Y)
	}
	ctx.Stroke()

	// Companion tendril, offset toward the canvas center.
	ctx.SetLineWidth(thickness * 0.5)
	ctx.SetColor(canvas.RGBA2(58.0/255, 120.0/255, 42.0/255, 0.35))
	for i := 0; i < len(points)-4; i += 3 {
		ox := 8 * dir
		j := i + 4
		if j > len(points)-1 {
			j = len(points) - 1
		}
		ctx.MoveTo(points[i].X+ox, points[i].Y)
		ctx.CubicTo(
			points[i].X+ox+15*dir, points[i].Y+20,
			points[j].X+ox+10*dir, points[j].Y-15,
			points[j].X+ox, points[j].Y)
		ctx.Stroke()
	}

	// Leaves.
	baseAngle := 0.3
	if side == vineRight {
		baseAngle = 2.8
	}
	for i := 0; i < len(points)-1; i += 18 {
		p := points[i]
		leafAngle := math.Sin(float64(i)*0.1)*0.5 + baseAngle
		leafSize := 14 + rng.Uniform(-3, 6)
		drawLeaf(ctx, rng, p.X, p.Y, leafAngle, leafSize)
	}

	// Spiral curls.
	ctx.SetLineWidth(0.8)
	ctx.SetColor(canvas.RGBA2(58.0/255, 110.0/255, 40.0/255, 0.25))
	for i := 0; i < len(points)-1; i += 35 {
		p := points[i]
		ctx.MoveTo(p.X, p.Y)
		for t := 0; t < 30; t++ {
			ang := float64(t) * 0.25
			r := float64(t) * 0.6
			ctx.LineTo(p.X+dir*(r*math.Cos(ang)+8), p.Y-r*math.Sin(ang)-5)
		}
		ctx.Stroke()
	}
}

// drawLeaf fills a lens-shaped leaf at the given position and angle,
// with a faint midrib.
func drawLeaf(ctx *canvas.Context, rng *Rand, x, y, angle, size float64) {
	ctx.Push()
	ctx.Translate(x, y)
	ctx.Rotate(angle)

	ctx.MoveTo(0, 0)
	ctx.CubicTo(size*0.4, -size*0.35, size*0.8, -size*0.15, size, 0)
	ctx.CubicTo(size*0.8, size*0.15, size*0.4, size*0.35, 0, 0)
	gv := rng.Uniform(0.85, 1.15)
	ctx.SetColor(canvas.RGBA2(0.22*gv, 0.50*gv, 0.18*gv, 0.35))
	ctx.Fill()

	ctx.SetColor(canvas.RGBA2(35.0/255, 80.0/255, 28.0/255, 0.2))
	ctx.SetLineWidth(0.5)
	ctx.DrawLine(0, 0, size*0.9, 0)
	ctx.Stroke()

	ctx.Pop()
}
