package scene

import (
	"fmt"

	"github.com/606uotab/janus-monitor/canvas"
	"github.com/606uotab/janus-monitor/internal/filter"
)

// Render generates the full scene and returns the finished pixmap.
// Layers are painted back to front in a fixed order: sky, sun, the
// blurred skyline, horizon haze, hills, vines, ferns, ground shadow,
// glass panels, corner ornaments, drifting leaves, pollen, the border
// frame and finally grain.
//
// All randomness comes from a single source seeded with params.Seed,
// so equal parameters always produce byte-identical images.
func Render(params Params) (*canvas.Pixmap, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	log := canvas.Logger()
	log.Debug("rendering scene",
		"width", params.Width,
		"height", params.Height,
		"seed", params.Seed,
	)

	rng := NewRand(params.Seed)

	ctx, err := canvas.NewContext(params.Width, params.Height)
	if err != nil {
		return nil, fmt.Errorf("scene: allocate canvas: %w", err)
	}

	stages := []struct {
		name string
		draw func()
	}{
		{"sky", func() { drawSky(ctx) }},
		{"sun", func() { drawSun(ctx, rng) }},
	}
	for _, s := range stages {
		s.draw()
		log.Debug("stage complete", "stage", s.name)
	}

	buildings := GenerateBuildings(rng, float64(params.Width))
	if err := compositeSkyline(ctx, rng, buildings, params); err != nil {
		return nil, fmt.Errorf("scene: skyline: %w", err)
	}
	log.Debug("stage complete", "stage", "skyline", "buildings", len(buildings))

	rest := []struct {
		name string
		draw func()
	}{
		{"haze", func() { drawHaze(ctx) }},
		{"hills", func() { drawHills(ctx, rng) }},
		{"vines", func() { drawVines(ctx, rng) }},
		{"ferns", func() { drawFerns(ctx, rng) }},
		{"ground", func() { drawGround(ctx) }},
		{"panels", func() { drawGlassPanels(ctx) }},
		{"ornaments", func() { drawCornerOrnaments(ctx) }},
		{"leaves", func() { drawFloatingLeaves(ctx, rng) }},
		{"pollen", func() { drawPollen(ctx, rng) }},
		{"frame", func() { drawFrame(ctx) }},
		{"grain", func() { drawGrain(ctx, rng) }},
	}
	for _, s := range rest {
		s.draw()
		log.Debug("stage complete", "stage", s.name)
	}

	return ctx.Pixmap(), nil
}

// compositeSkyline renders the buildings on their own transparent
// canvas, blurs that layer, and composites it over the sky at reduced
// opacity so the city sits softly behind the greenery.
func compositeSkyline(ctx *canvas.Context, rng *Rand, buildings []Building, params Params) error {
	cityCtx, err := canvas.NewContext(params.Width, params.Height)
	if err != nil {
		return fmt.Errorf("allocate city layer: %w", err)
	}
	drawSkyline(cityCtx, rng, buildings)

	blurred, err := filter.Gaussian(cityCtx.Pixmap(), params.SkylineBlurSigma)
	if err != nil {
		return fmt.Errorf("blur city layer: %w", err)
	}

	ctx.PaintWithAlpha(blurred, params.SkylineOpacity)
	return nil
}
