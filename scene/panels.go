package scene

import "github.com/606uotab/janus-monitor/canvas"

// glassPanel places one floating stained-glass solar panel: relative
// position, half-width in pixels and tilt in radians.
type glassPanel struct {
	relX, relY float64
	size       float64
	tilt       float64
}

var glassPanels = []glassPanel{
	{relX: 0.15, relY: 0.18, size: 65, tilt: -0.15},
	{relX: 0.38, relY: 0.12, size: 50, tilt: 0.1},
	{relX: 0.60, relY: 0.22, size: 55, tilt: -0.08},
	{relX: 0.28, relY: 0.35, size: 40, tilt: 0.2},
	{relX: 0.75, relY: 0.15, size: 45, tilt: -0.12},
}

// drawGlassPanels renders the floating solar panels: a rounded glass
// pane with a teal-green gradient, a thin gold rim, leading grid lines
// and a bright diagonal highlight.
func drawGlassPanels(ctx *canvas.Context) {
	w := float64(ctx.Width())
	h := float64(ctx.Height())

	for _, p := range glassPanels {
		ctx.Push()
		ctx.Translate(w*p.relX, h*p.relY)
		ctx.Rotate(p.tilt)

		size := p.size
		ctx.DrawRoundedRectangle(-size, -size*0.7, size*2, size*1.4, 6)

		glass := canvas.NewLinearGradientBrush(-size, -size*0.7, size, size*0.7)
		glass.AddColorStop(0.0, canvas.RGBA2(0.55, 0.82, 0.75, 0.08))
		glass.AddColorStop(0.3, canvas.RGBA2(0.40, 0.75, 0.65, 0.06))
		glass.AddColorStop(0.7, canvas.RGBA2(0.50, 0.80, 0.55, 0.07))
		glass.AddColorStop(1.0, canvas.RGBA2(0.65, 0.85, 0.50, 0.05))
		ctx.SetBrush(glass)
		ctx.FillPreserve()

		ctx.SetColor(canvas.RGBA2(180.0/255, 150.0/255, 50.0/255, 0.15))
		ctx.SetLineWidth(1.5)
		ctx.Stroke()

		// Leading between the glass cells, 4 across and 3 down.
		const cellsH, cellsV = 4, 3
		cellW := size * 2 / cellsH
		cellH := size * 1.4 / cellsV
		ctx.SetLineWidth(0.5)
		ctx.SetColor(canvas.RGBA2(160.0/255, 140.0/255, 60.0/255, 0.1))
		for ci := 1; ci < cellsH; ci++ {
			x := -size + float64(ci)*cellW
			ctx.DrawLine(x, -size*0.7, x, size*0.7)
			ctx.Stroke()
		}
		for cj := 1; cj < cellsV; cj++ {
			y := -size*0.7 + float64(cj)*cellH
			ctx.DrawLine(-size, y, size, y)
			ctx.Stroke()
		}

		ctx.SetLineWidth(2)
		ctx.SetColor(canvas.RGBA2(1.0, 1.0, 240.0/255, 0.12))
		ctx.DrawLine(-size*0.6, -size*0.5, -size*0.2, -size*0.65)
		ctx.Stroke()

		ctx.Pop()
	}
}
