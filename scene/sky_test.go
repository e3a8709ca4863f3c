package scene

import (
	"math"
	"testing"

	"github.com/606uotab/janus-monitor/canvas"
)

// The sky gradient pins specific byte values at the canvas extremes:
// warm cream at the top, soft green at the bottom, fully opaque
// everywhere.
func TestSkyGradientValues(t *testing.T) {
	ctx, err := canvas.NewContext(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	drawSky(ctx)

	checkPixel := func(x, y int, r, g, b float64) {
		t.Helper()
		got := ctx.GetPixel(x, y)
		const tol = 2.0 / 255
		if math.Abs(got.R-r) > tol || math.Abs(got.G-g) > tol || math.Abs(got.B-b) > tol {
			t.Errorf("pixel (%d,%d) = (%v,%v,%v), want ~(%v,%v,%v)",
				x, y, got.R, got.G, got.B, r, g, b)
		}
		if got.A != 1 {
			t.Errorf("pixel (%d,%d) alpha = %v, want 1", x, y, got.A)
		}
	}

	checkPixel(50, 0, 247.0/255, 245.0/255, 224.0/255)
	checkPixel(50, 99, 184.0/255, 214.0/255, 166.0/255)

	// The gradient must be monotonic: green rises downward, red falls.
	top := ctx.GetPixel(50, 10)
	bottom := ctx.GetPixel(50, 90)
	if bottom.R >= top.R {
		t.Error("red should decrease toward the horizon")
	}
	if bottom.B >= top.B {
		t.Error("blue should decrease toward the horizon")
	}
}

func TestSkyCoversEveryPixel(t *testing.T) {
	ctx, err := canvas.NewContext(33, 17)
	if err != nil {
		t.Fatal(err)
	}
	drawSky(ctx)

	data := ctx.Pixmap().Data()
	for i := 3; i < len(data); i += 4 {
		if data[i] != 255 {
			t.Fatalf("pixel %d not opaque after sky fill", i/4)
		}
	}
}
