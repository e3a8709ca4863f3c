package scene

import (
	"math"

	"github.com/606uotab/janus-monitor/canvas"
)

// Sun placement, relative to the canvas.
const (
	sunRelX = 0.82
	sunRelY = 0.08
)

const (
	sunGlowDiscs  = 8
	sunRayCount   = 24
	sunCoreRadius = 55
)

// drawSun renders the sun: a stack of translucent glow discs, a fan of
// thin rays, and a bright focal-gradient core with a faint rim.
func drawSun(ctx *canvas.Context, rng *Rand) {
	sunX := float64(ctx.Width()) * sunRelX
	sunY := float64(ctx.Height()) * sunRelY

	drawSunGlow(ctx, sunX, sunY)
	drawSunRays(ctx, rng, sunX, sunY)
	drawSunCore(ctx, sunX, sunY)
}

// drawSunGlow layers concentric radial-gradient discs, shrinking and
// intensifying toward the core so the halo falls off smoothly.
func drawSunGlow(ctx *canvas.Context, sunX, sunY float64) {
	for i := 0; i < sunGlowDiscs; i++ {
		r := 500 - float64(i)*30
		a := 0.03 + float64(i)*0.008

		grad := canvas.NewRadialGradientBrush(sunX, sunY, r)
		grad.AddColorStop(0.0, canvas.RGBA2(1.0, 0.92, 0.5, a*2.5))
		grad.AddColorStop(0.4, canvas.RGBA2(1.0, 0.88, 0.4, a*1.5))
		grad.AddColorStop(1.0, canvas.RGBA2(1.0, 0.85, 0.3, 0))

		ctx.SetBrush(grad)
		ctx.DrawCircle(sunX, sunY, r)
		ctx.Fill()
	}
}

// drawSunRays strokes a fan of rays around the sun. Every third ray is
// longer-lived in the eye: wider and slightly more opaque.
func drawSunRays(ctx *canvas.Context, rng *Rand, sunX, sunY float64) {
	rayColor := canvas.RGBA2(218.0/255, 180.0/255, 40.0/255, 0.08)
	boldColor := rayColor.WithAlpha(0.14)

	for i := 0; i < sunRayCount; i++ {
		angle := float64(i)*(2*math.Pi/sunRayCount) + 0.13
		length := 350 + rng.Uniform(-80, 120)

		if i%3 == 0 {
			ctx.SetColor(boldColor)
			ctx.SetLineWidth(1.5)
		} else {
			ctx.SetColor(rayColor)
			ctx.SetLineWidth(0.6)
		}

		ctx.Push()
		ctx.Translate(sunX, sunY)
		ctx.Rotate(angle)
		ctx.DrawLine(40, 0, length, 0)
		ctx.Stroke()
		ctx.Pop()
	}
}

// drawSunCore fills the sun disc with an off-center focal gradient so
// the highlight sits slightly up and left, then strokes a pale rim.
func drawSunCore(ctx *canvas.Context, sunX, sunY float64) {
	grad := canvas.NewRadialGradientBrush(sunX, sunY, sunCoreRadius)
	grad.SetFocus(sunX-8, sunY-8)
	grad.AddColorStop(0.00, canvas.RGBA2(1.0, 0.98, 0.88, 0.9))
	grad.AddColorStop(0.30, canvas.RGBA2(1.0, 0.92, 0.55, 0.7))
	grad.AddColorStop(0.60, canvas.RGBA2(0.92, 0.78, 0.25, 0.5))
	grad.AddColorStop(0.85, canvas.RGBA2(0.48, 0.78, 0.30, 0.3))
	grad.AddColorStop(1.00, canvas.RGBA2(0.24, 0.54, 0.16, 0.15))

	ctx.SetBrush(grad)
	ctx.DrawCircle(sunX, sunY, sunCoreRadius)
	ctx.Fill()

	ctx.SetColor(canvas.RGBA2(1.0, 248.0/255, 200.0/255, 0.4))
	ctx.SetLineWidth(1.2)
	ctx.DrawCircle(sunX, sunY, sunCoreRadius+1)
	ctx.Stroke()
}
