package scene

import "github.com/606uotab/janus-monitor/canvas"

// drawHaze lays a pale gradient band over the horizon so the skyline
// reads as distant.
func drawHaze(ctx *canvas.Context) {
	w := float64(ctx.Width())
	horizonY := float64(ctx.Height()) * horizonRelY

	haze := canvas.NewLinearGradientBrush(0, horizonY-350, 0, horizonY+40)
	haze.AddColorStop(0.0, canvas.RGBA2(0.92, 0.94, 0.86, 0.5))
	haze.AddColorStop(0.4, canvas.RGBA2(0.90, 0.93, 0.84, 0.35))
	haze.AddColorStop(0.7, canvas.RGBA2(0.88, 0.92, 0.82, 0.2))
	haze.AddColorStop(1.0, canvas.RGBA2(0.85, 0.91, 0.80, 0))

	ctx.SetBrush(haze)
	ctx.DrawRectangle(0, horizonY-350, w, 400)
	ctx.Fill()
}

// drawGround darkens the bottom strip of the canvas with a soft green
// shadow fading upward.
func drawGround(ctx *canvas.Context) {
	w := float64(ctx.Width())
	h := float64(ctx.Height())

	ground := canvas.NewLinearGradientBrush(0, h-80, 0, h)
	ground.AddColorStop(0.0, canvas.RGBA2(0.25, 0.48, 0.22, 0))
	ground.AddColorStop(0.5, canvas.RGBA2(0.22, 0.42, 0.18, 0.15))
	ground.AddColorStop(1.0, canvas.RGBA2(0.18, 0.38, 0.15, 0.3))

	ctx.SetBrush(ground)
	ctx.DrawRectangle(0, h-80, w, 80)
	ctx.Fill()
}
