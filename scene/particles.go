package scene

import (
	"math"

	"github.com/606uotab/janus-monitor/canvas"
)

const (
	floatingLeafCount = 35
	pollenCount       = 120
	grainCount        = 3000
)

// drawFloatingLeaves scatters drifting leaves over the upper half of
// the scene.
func drawFloatingLeaves(ctx *canvas.Context, rng *Rand) {
	w := float64(ctx.Width())
	h := float64(ctx.Height())

	for i := 0; i < floatingLeafCount; i++ {
		lx := rng.Uniform(60, w-60)
		ly := rng.Uniform(80, h*0.55)
		la := rng.Uniform(0, 2*math.Pi)
		ls := rng.Uniform(8, 18)

		ctx.Push()
		ctx.Translate(lx, ly)
		ctx.Rotate(la)

		ctx.MoveTo(0, 0)
		ctx.CubicTo(ls*0.3, -ls*0.25, ls*0.7, -ls*0.12, ls, 0)
		ctx.CubicTo(ls*0.7, ls*0.12, ls*0.3, ls*0.25, 0, 0)
		g := rng.Uniform(0.35, 0.55)
		ctx.SetColor(canvas.RGBA2(0.18, g, 0.15, rng.Uniform(0.06, 0.15)))
		ctx.Fill()

		ctx.Pop()
	}
}

// drawPollen dots the air with motes, every third one golden and the
// rest soft green.
func drawPollen(ctx *canvas.Context, rng *Rand) {
	w := float64(ctx.Width())
	h := float64(ctx.Height())

	for i := 0; i < pollenCount; i++ {
		px := rng.Uniform(0, w)
		py := rng.Uniform(0, h*0.85)
		ps := rng.Uniform(0.8, 3.0)

		if i%3 == 0 {
			ctx.SetColor(canvas.RGBA2(0.85, 0.72, 0.22, rng.Uniform(0.08, 0.25)))
		} else {
			ctx.SetColor(canvas.RGBA2(0.35, rng.Uniform(0.45, 0.65), 0.28, rng.Uniform(0.06, 0.15)))
		}
		ctx.DrawCircle(px, py, ps)
		ctx.Fill()
	}
}

// drawGrain sprinkles thousands of nearly invisible specks over the
// whole image, breaking up flat gradient regions like paper texture.
func drawGrain(ctx *canvas.Context, rng *Rand) {
	w := float64(ctx.Width())
	h := float64(ctx.Height())

	for i := 0; i < grainCount; i++ {
		tx := rng.Uniform(0, w)
		ty := rng.Uniform(0, h)
		ctx.SetColor(canvas.RGBA2(0.5, 0.55, 0.4, rng.Uniform(0.01, 0.025)))
		ctx.DrawCircle(tx, ty, rng.Uniform(0.3, 1.2))
		ctx.Fill()
	}
}
