// Command solarpunkbg renders the solarpunk background illustration to
// a PNG file. The output is fully determined by the seed and the
// dimensions.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/606uotab/janus-monitor/canvas"
	"github.com/606uotab/janus-monitor/scene"
)

func main() {
	var (
		width   = flag.Int("width", scene.DefaultWidth, "output width in pixels")
		height  = flag.Int("height", scene.DefaultHeight, "output height in pixels")
		seed    = flag.Int64("seed", scene.DefaultSeed, "random seed")
		blur    = flag.Float64("blur", 8, "skyline blur sigma in pixels")
		opacity = flag.Float64("opacity", 0.85, "skyline opacity in [0, 1]")
		output  = flag.String("o", "solarpunk_bg.png", "output PNG path")
		verbose = flag.Bool("v", false, "log render progress")
	)
	flag.Parse()

	if *verbose {
		canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	params := scene.Params{
		Width:            *width,
		Height:           *height,
		Seed:             *seed,
		SkylineBlurSigma: *blur,
		SkylineOpacity:   *opacity,
	}

	pixmap, err := scene.Render(params)
	if err != nil {
		fmt.Fprintln(os.Stderr, "solarpunkbg:", err)
		os.Exit(1)
	}
	if err := pixmap.SavePNG(*output); err != nil {
		fmt.Fprintln(os.Stderr, "solarpunkbg:", err)
		os.Exit(1)
	}
	fmt.Println("saved", *output)
}
