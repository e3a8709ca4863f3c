package scene

import (
	"errors"
	"fmt"
)

// Default render parameters.
const (
	DefaultWidth  = 1800
	DefaultHeight = 1200
	DefaultSeed   = 42
)

// ErrInvalidParams indicates render parameters that cannot produce an
// image.
var ErrInvalidParams = errors.New("scene: invalid render parameters")

// Params configures a scene render.
type Params struct {
	// Width and Height are the output dimensions in pixels.
	Width  int
	Height int

	// Seed initializes the random source. Equal seeds and dimensions
	// produce byte-identical images.
	Seed int64

	// SkylineBlurSigma is the softness of the background skyline, in
	// pixels. Zero leaves the skyline sharp.
	SkylineBlurSigma float64

	// SkylineOpacity scales the blurred skyline when it is composited
	// over the sky.
	SkylineOpacity float64
}

// DefaultParams returns the standard poster-size configuration.
func DefaultParams() Params {
	return Params{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		Seed:             DefaultSeed,
		SkylineBlurSigma: 8,
		SkylineOpacity:   0.85,
	}
}

// Validate checks that the parameters describe a renderable scene.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidParams, p.Width, p.Height)
	}
	if p.SkylineBlurSigma < 0 {
		return fmt.Errorf("%w: negative blur sigma %v", ErrInvalidParams, p.SkylineBlurSigma)
	}
	if p.SkylineOpacity < 0 || p.SkylineOpacity > 1 {
		return fmt.Errorf("%w: skyline opacity %v outside [0, 1]", ErrInvalidParams, p.SkylineOpacity)
	}
	return nil
}
