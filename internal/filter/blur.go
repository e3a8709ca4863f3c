package filter

import (
	"errors"

	"github.com/606uotab/janus-monitor/canvas"
)

// ErrNilSource indicates a blur was requested on a nil pixmap.
var ErrNilSource = errors.New("filter: nil source pixmap")

// Gaussian returns a blurred copy of src using a separable Gaussian
// with the given standard deviation in pixels. The source pixmap is
// never modified. Pixels beyond the edges are treated as copies of the
// nearest edge pixel, so the image does not darken at its borders.
//
// A sigma of zero or less returns an unblurred copy.
func Gaussian(src *canvas.Pixmap, sigma float64) (*canvas.Pixmap, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	w := src.Width()
	h := src.Height()
	if w <= 0 || h <= 0 || sigma <= 0 {
		return src.Clone(), nil
	}

	kernel, half := gaussianKernel(sigma)

	// Convolve premultiplied components so translucent pixels do not
	// bleed their RGB into neighbors beyond their alpha.
	pm := premultiply(src.Data())
	tmp := make([]float64, len(pm))

	// Horizontal pass.
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			var r, g, b, a float64
			for k := -half; k <= half; k++ {
				sx := clampIndex(x+k, w)
				i := (row + sx) * 4
				wk := kernel[k+half]
				r += pm[i+0] * wk
				g += pm[i+1] * wk
				b += pm[i+2] * wk
				a += pm[i+3] * wk
			}
			i := (row + x) * 4
			tmp[i+0] = r
			tmp[i+1] = g
			tmp[i+2] = b
			tmp[i+3] = a
		}
	}

	// Vertical pass, writing back into pm.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, b, a float64
			for k := -half; k <= half; k++ {
				sy := clampIndex(y+k, h)
				i := (sy*w + x) * 4
				wk := kernel[k+half]
				r += tmp[i+0] * wk
				g += tmp[i+1] * wk
				b += tmp[i+2] * wk
				a += tmp[i+3] * wk
			}
			i := (y*w + x) * 4
			pm[i+0] = r
			pm[i+1] = g
			pm[i+2] = b
			pm[i+3] = a
		}
	}

	dst, err := canvas.NewPixmap(w, h)
	if err != nil {
		return nil, err
	}
	unpremultiply(pm, dst.Data())
	return dst, nil
}

// premultiply converts straight RGBA bytes to premultiplied float
// components in [0, 1].
func premultiply(data []uint8) []float64 {
	out := make([]float64, len(data))
	for i := 0; i < len(data); i += 4 {
		a := float64(data[i+3]) / 255
		out[i+0] = float64(data[i+0]) / 255 * a
		out[i+1] = float64(data[i+1]) / 255 * a
		out[i+2] = float64(data[i+2]) / 255 * a
		out[i+3] = a
	}
	return out
}

// unpremultiply converts premultiplied float components back to
// straight RGBA bytes.
func unpremultiply(pm []float64, data []uint8) {
	for i := 0; i < len(pm); i += 4 {
		a := pm[i+3]
		if a <= 0 {
			data[i+0] = 0
			data[i+1] = 0
			data[i+2] = 0
			data[i+3] = 0
			continue
		}
		data[i+0] = toByte(pm[i+0] / a)
		data[i+1] = toByte(pm[i+1] / a)
		data[i+2] = toByte(pm[i+2] / a)
		data[i+3] = toByte(a)
	}
}

func toByte(v float64) uint8 {
	s := v*255 + 0.5
	if s < 0 {
		return 0
	}
	if s > 255 {
		return 255
	}
	return uint8(s)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
