package scene

import (
	"math"

	"github.com/606uotab/janus-monitor/canvas"
)

// drawCornerOrnaments draws concentric quarter-circle arcs in the top
// corners, with two flourish curves sweeping out of the top left.
func drawCornerOrnaments(ctx *canvas.Context) {
	w := float64(ctx.Width())

	ctx.SetLineWidth(1.5)
	ctx.SetColor(canvas.RGBA2(160.0/255, 140.0/255, 50.0/255, 0.12))
	for i := 0; i < 5; i++ {
		ctx.DrawArc(0, 0, 80+float64(i)*25, 0, math.Pi/2)
		ctx.Stroke()
	}

	ctx.SetLineWidth(1)
	ctx.SetColor(canvas.RGBA2(58.0/255, 110.0/255, 40.0/255, 0.15))
	ctx.MoveTo(0, 120)
	ctx.CubicTo(40, 100, 80, 60, 120, 0)
	ctx.Stroke()
	ctx.MoveTo(0, 160)
	ctx.CubicTo(60, 140, 110, 90, 160, 0)
	ctx.Stroke()

	ctx.SetLineWidth(1.5)
	ctx.SetColor(canvas.RGBA2(160.0/255, 140.0/255, 50.0/255, 0.1))
	for i := 0; i < 5; i++ {
		ctx.DrawArc(w, 0, 80+float64(i)*25, math.Pi/2, math.Pi)
		ctx.Stroke()
	}
}

// drawFrame strokes a double border inset from the canvas edge, gold
// outside and green inside.
func drawFrame(ctx *canvas.Context) {
	w := float64(ctx.Width())
	h := float64(ctx.Height())
	const margin = 30.0

	ctx.SetLineWidth(1)
	ctx.SetColor(canvas.RGBA2(160.0/255, 140.0/255, 50.0/255, 0.08))
	ctx.DrawRectangle(margin, margin, w-2*margin, h-2*margin)
	ctx.Stroke()

	ctx.SetColor(canvas.RGBA2(58.0/255, 110.0/255, 40.0/255, 0.06))
	ctx.DrawRectangle(margin+8, margin+8, w-2*(margin+8), h-2*(margin+8))
	ctx.Stroke()
}
