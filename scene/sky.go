package scene

import "github.com/606uotab/janus-monitor/canvas"

// skyStops is the vertical gradient of the morning sky, warm cream at
// the top shading into soft green at the horizon-facing bottom.
var skyStops = []canvas.ColorStop{
	{Offset: 0.00, Color: canvas.RGB(0.97, 0.96, 0.88)},
	{Offset: 0.12, Color: canvas.RGB(0.96, 0.95, 0.86)},
	{Offset: 0.30, Color: canvas.RGB(0.93, 0.95, 0.85)},
	{Offset: 0.50, Color: canvas.RGB(0.88, 0.93, 0.82)},
	{Offset: 0.70, Color: canvas.RGB(0.82, 0.90, 0.76)},
	{Offset: 1.00, Color: canvas.RGB(0.72, 0.84, 0.65)},
}

// drawSky fills the whole canvas with the sky gradient.
func drawSky(ctx *canvas.Context) {
	w := float64(ctx.Width())
	h := float64(ctx.Height())

	grad := canvas.NewLinearGradientBrush(0, 0, 0, h)
	grad.Stops = append(grad.Stops, skyStops...)

	ctx.SetBrush(grad)
	ctx.DrawRectangle(0, 0, w, h)
	ctx.Fill()
}
