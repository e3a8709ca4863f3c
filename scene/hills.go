package scene

import (
	"math"

	"github.com/606uotab/janus-monitor/canvas"
)

// hillLayer describes one band of rolling hills. Nearer layers sit
// lower, darker and more opaque.
type hillLayer struct {
	relY  float64
	alpha float64
	color canvas.RGBA
}

var hillLayers = []hillLayer{
	{relY: 0.58, alpha: 0.14, color: canvas.RGB(0.58, 0.74, 0.48)},
	{relY: 0.64, alpha: 0.18, color: canvas.RGB(0.48, 0.68, 0.40)},
	{relY: 0.70, alpha: 0.24, color: canvas.RGB(0.38, 0.60, 0.32)},
	{relY: 0.78, alpha: 0.30, color: canvas.RGB(0.30, 0.52, 0.26)},
}

// drawHills fills four overlapping ridge lines. Each ridge is two
// superimposed sine waves; the slow wave gets a fresh random phase at
// every sample, which roughens the crest into something hand-drawn.
func drawHills(ctx *canvas.Context, rng *Rand) {
	w := float64(ctx.Width())
	h := float64(ctx.Height())

	for _, layer := range hillLayers {
		baseY := h * layer.relY

		ctx.MoveTo(0, baseY+40)
		for x := 0.0; x < w+50; x += 3 {
			cy := baseY +
				math.Sin(x*0.003+rng.Uniform(0, 1))*35 +
				math.Sin(x*0.008)*18
			ctx.LineTo(x, cy)
		}
		ctx.LineTo(w, h)
		ctx.LineTo(0, h)
		ctx.ClosePath()

		ctx.SetColor(layer.color.WithAlpha(layer.alpha))
		ctx.Fill()
	}
}
