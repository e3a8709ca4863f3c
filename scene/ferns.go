package scene

import "github.com/606uotab/janus-monitor/canvas"

const fernCount = 60

// drawFerns scatters a carpet of ferns along the bottom edge. Each fern
// is a curved stem with alternating fronds, leaning a little left or
// right.
func drawFerns(ctx *canvas.Context, rng *Rand) {
	w := float64(ctx.Width())
	h := float64(ctx.Height())

	for i := 0; i < fernCount; i++ {
		bx := rng.Uniform(-20, w+20)
		by := h - rng.Uniform(10, 120)
		fernH := rng.Uniform(30, 80)
		lean := rng.Uniform(-0.3, 0.3)

		ctx.Push()
		ctx.Translate(bx, by)
		ctx.Rotate(lean)

		g := rng.Uniform(0.3, 0.55)
		ctx.SetColor(canvas.RGBA2(0.15, g, 0.12, 0.3))
		ctx.SetLineWidth(1.2)
		ctx.MoveTo(0, 0)
		ctx.CubicTo(3, -fernH*0.3, -2, -fernH*0.6, 1, -fernH)
		ctx.Stroke()

		for j := 0; j < int(fernH/8); j++ {
			fy := -float64(j) * 8
			frondLen := (fernH - float64(j)*8) * 0.4
			side := 1.0
			if j%2 != 0 {
				side = -1.0
			}
			ctx.SetColor(canvas.RGBA2(0.18, g*1.1, 0.15, 0.22))
			ctx.SetLineWidth(0.6)
			ctx.MoveTo(0, fy)
			ctx.CubicTo(side*frondLen*0.5, fy-3, side*frondLen, fy-1, side*frondLen, fy+2)
			ctx.Stroke()
		}

		ctx.Pop()
	}
}
