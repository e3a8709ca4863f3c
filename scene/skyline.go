package scene

import (
	"math"

	"github.com/606uotab/janus-monitor/canvas"
)

// BuildingKind enumerates the silhouette shapes of the skyline.
type BuildingKind int

const (
	KindTower BuildingKind = iota
	KindDome
	KindSpire
	KindBlock
	KindAntenna
	KindMegablock
)

// Building is one generated skyline structure. X is the left edge at
// the horizon baseline; Height extends upward from it.
type Building struct {
	X      float64
	Width  float64
	Height float64
	Kind   BuildingKind
}

// buildingKinds weights towers three times heavier than the other
// shapes, so the skyline reads as a city rather than a fairground.
var buildingKinds = []BuildingKind{
	KindTower, KindTower, KindTower,
	KindDome, KindSpire, KindBlock, KindAntenna, KindMegablock,
}

const (
	horizonRelY = 0.50

	// skylineMargin extends building placement past both canvas edges
	// so the silhouette never starts or ends with a visible gap.
	skylineMargin = 20

	maxBuildingWidth = 110
)

// Silhouette base color: dark blue-gray with a purple tinge.
var cityColor = canvas.RGB(0.18, 0.20, 0.28)

const cityAlpha = 0.22

// windowColors are the lit-window tints used on tower facades.
var windowColors = []canvas.RGBA{
	canvas.RGB(0.85, 0.75, 0.35),
	canvas.RGB(0.50, 0.70, 0.90),
	canvas.RGB(0.75, 0.50, 0.85),
	canvas.RGB(0.30, 0.80, 0.60),
}

// megablockWindowColors are the dimmer facade tints of megablocks.
var megablockWindowColors = []canvas.RGBA{
	canvas.RGB(0.85, 0.78, 0.40),
	canvas.RGB(0.45, 0.65, 0.90),
	canvas.RGB(0.70, 0.45, 0.80),
}

// GenerateBuildings lays out the skyline for a canvas of the given
// width. Buildings are placed left to right from -skylineMargin until
// the right margin is passed; each advance is a random fraction of the
// building's width, so neighbors may overlap but never leave a gap
// wider than the widest building.
func GenerateBuildings(rng *Rand, width float64) []Building {
	var buildings []Building
	x := -float64(skylineMargin)
	for x < width+skylineMargin {
		kind := Pick(rng, buildingKinds)

		var bw float64
		if kind == KindMegablock {
			bw = rng.Uniform(60, maxBuildingWidth)
		} else {
			bw = rng.Uniform(18, 55)
		}

		var bh float64
		switch kind {
		case KindTower:
			bh = rng.Uniform(80, 240)
		case KindDome:
			bh = rng.Uniform(50, 120)
		case KindSpire:
			bh = rng.Uniform(150, 320)
		case KindAntenna:
			bh = rng.Uniform(180, 350)
		case KindMegablock:
			bh = rng.Uniform(60, 160)
		default:
			bh = rng.Uniform(40, 100)
		}

		buildings = append(buildings, Building{X: x, Width: bw, Height: bh, Kind: kind})
		x += bw * rng.Uniform(0.5, 1.1)
	}
	return buildings
}

// drawSkyline renders the buildings as translucent silhouettes at the
// horizon baseline.
func drawSkyline(ctx *canvas.Context, rng *Rand, buildings []Building) {
	by := float64(ctx.Height()) * horizonRelY

	for _, b := range buildings {
		switch b.Kind {
		case KindTower:
			drawTower(ctx, rng, b, by)
		case KindDome:
			drawDome(ctx, b, by)
		case KindSpire:
			drawSpire(ctx, b, by)
		case KindAntenna:
			drawAntennaTower(ctx, rng, b, by)
		case KindMegablock:
			drawMegablock(ctx, rng, b, by)
		default:
			drawBlock(ctx, b, by)
		}
	}
}

// drawTower draws a slightly tapered tower with an optional roof
// antenna and a sparse grid of lit windows.
func drawTower(ctx *canvas.Context, rng *Rand, b Building, by float64) {
	taper := rng.Uniform(0.85, 0.98)

	ctx.MoveTo(b.X, by)
	ctx.LineTo(b.X, by-b.Height)
	ctx.LineTo(b.X+b.Width*taper, by-b.Height)
	ctx.LineTo(b.X+b.Width, by)
	ctx.ClosePath()
	ctx.SetColor(cityColor.WithAlpha(cityAlpha))
	ctx.Fill()

	if rng.Boolean(0.5) {
		ctx.MoveTo(b.X+b.Width*0.45, by-b.Height)
		ctx.LineTo(b.X+b.Width*0.48, by-b.Height-20)
		ctx.LineTo(b.X+b.Width*0.52, by-b.Height-20)
		ctx.LineTo(b.X+b.Width*0.55, by-b.Height)
		ctx.ClosePath()
		ctx.SetColor(cityColor.WithAlpha(cityAlpha * 0.9))
		ctx.Fill()
	}

	for wy := int(by - b.Height + 15); wy < int(by-10); wy += 14 {
		for wx := int(b.X + 4); wx < int(b.X+b.Width-4); wx += 8 {
			if rng.Boolean(0.6) {
				ctx.SetColor(Pick(rng, windowColors).WithAlpha(0.06))
				ctx.DrawRectangle(float64(wx), float64(wy), 3, 5)
				ctx.Fill()
			}
		}
	}
}

// drawDome draws a domed hall with three vertical ribs.
func drawDome(ctx *canvas.Context, b Building, by float64) {
	ctx.MoveTo(b.X, by)
	ctx.LineTo(b.X, by-b.Height*0.5)
	ctx.CubicTo(b.X, by-b.Height, b.X+b.Width, by-b.Height, b.X+b.Width, by-b.Height*0.5)
	ctx.LineTo(b.X+b.Width, by)
	ctx.ClosePath()
	ctx.SetColor(cityColor.WithAlpha(cityAlpha))
	ctx.Fill()

	for ri := 0; ri < 3; ri++ {
		rx := b.X + b.Width*(0.25+float64(ri)*0.25)
		ribH := b.Height * 0.7
		if ri == 1 {
			ribH = b.Height * 0.85
		}
		ctx.SetColor(canvas.RGBA2(cityColor.R*0.7, cityColor.G*0.7, cityColor.B*0.7, 0.08))
		ctx.SetLineWidth(0.8)
		ctx.DrawLine(rx, by, rx, by-ribH)
		ctx.Stroke()
	}
}

// drawSpire draws a stepped cathedral spire with a dim tip light.
func drawSpire(ctx *canvas.Context, b Building, by float64) {
	ctx.MoveTo(b.X, by)
	ctx.LineTo(b.X+b.Width*0.15, by-b.Height*0.6)
	ctx.LineTo(b.X+b.Width*0.35, by-b.Height*0.65)
	ctx.LineTo(b.X+b.Width*0.5, by-b.Height)
	ctx.LineTo(b.X+b.Width*0.65, by-b.Height*0.65)
	ctx.LineTo(b.X+b.Width*0.85, by-b.Height*0.6)
	ctx.LineTo(b.X+b.Width, by)
	ctx.ClosePath()
	ctx.SetColor(cityColor.WithAlpha(cityAlpha))
	ctx.Fill()

	ctx.SetColor(canvas.RGBA2(0.80, 0.40, 0.40, 0.12))
	ctx.DrawCircle(b.X+b.Width*0.5, by-b.Height, 2)
	ctx.Fill()
}

// drawAntennaTower draws a thin lattice mast with cross braces, a
// satellite dish and a warning light at the top.
func drawAntennaTower(ctx *canvas.Context, rng *Rand, b Building, by float64) {
	mid := b.X + b.Width*0.5

	ctx.MoveTo(mid-3, by)
	ctx.LineTo(mid-1.5, by-b.Height)
	ctx.LineTo(mid+1.5, by-b.Height)
	ctx.LineTo(mid+3, by)
	ctx.ClosePath()
	ctx.SetColor(cityColor.WithAlpha(cityAlpha * 0.8))
	ctx.Fill()

	for cy := int(by - b.Height + 30); cy < int(by-10); cy += 35 {
		ctx.SetColor(cityColor.WithAlpha(0.12))
		ctx.SetLineWidth(0.6)
		ctx.DrawLine(mid-3, float64(cy), mid+3, float64(cy))
		ctx.Stroke()
	}

	dishY := by - b.Height*rng.Uniform(0.55, 0.75)
	ctx.SetColor(cityColor.WithAlpha(0.15))
	ctx.SetLineWidth(1.5)
	ctx.DrawArc(mid+8, dishY, 8, math.Pi*0.3, math.Pi*1.3)
	ctx.Stroke()

	ctx.SetColor(canvas.RGBA2(0.9, 0.3, 0.3, 0.15))
	ctx.DrawCircle(mid, by-b.Height, 2.5)
	ctx.Fill()
}

// drawMegablock draws a wide terraced megastructure with a window grid.
func drawMegablock(ctx *canvas.Context, rng *Rand, b Building, by float64) {
	ctx.SetColor(cityColor.WithAlpha(cityAlpha * 0.9))
	ctx.DrawRectangle(b.X, by-b.Height, b.Width, b.Height)
	ctx.Fill()

	for ti := 0; ti < 3; ti++ {
		terraceH := b.Height * (0.3 + float64(ti)*0.2)
		setback := b.Width * 0.08 * float64(ti+1)
		ctx.SetColor(canvas.RGBA2(cityColor.R*0.8, cityColor.G*0.8, cityColor.B*0.8, 0.06))
		ctx.SetLineWidth(1)
		ctx.DrawLine(b.X+setback, by-terraceH, b.X+b.Width-setback, by-terraceH)
		ctx.Stroke()
	}

	for wy := int(by - b.Height + 10); wy < int(by-5); wy += 12 {
		for wx := int(b.X + 5); wx < int(b.X+b.Width-5); wx += 10 {
			if rng.Boolean(0.65) {
				ctx.SetColor(Pick(rng, megablockWindowColors).WithAlpha(0.04))
				ctx.DrawRectangle(float64(wx), float64(wy), 4, 6)
				ctx.Fill()
			}
		}
	}
}

// drawBlock draws a plain rectangular building.
func drawBlock(ctx *canvas.Context, b Building, by float64) {
	ctx.SetColor(cityColor.WithAlpha(cityAlpha * 0.85))
	ctx.DrawRectangle(b.X, by-b.Height, b.Width, b.Height)
	ctx.Fill()
}
