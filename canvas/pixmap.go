package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// Pixmap represents a rectangular pixel buffer.
// Pixels are stored as straight (non-premultiplied) RGBA, 4 bytes per
// pixel. All pixel access outside the buffer bounds is silently clipped.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
// Returns ErrInvalidSize if either dimension is not positive.
func NewPixmap(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// emptyPixmap returns a zero-dimension pixmap. Used as the degenerate
// result of operations on degenerate inputs.
func emptyPixmap() *Pixmap {
	return &Pixmap{}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (straight RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = componentByte(c.R)
	p.data[i+1] = componentByte(c.G)
	p.data[i+2] = componentByte(c.B)
	p.data[i+3] = componentByte(c.A)
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// BlendPixel composites c over the existing pixel with the given
// coverage, using standard source-over blending. Coverage and alpha are
// clamped to [0, 1] before blending.
func (p *Pixmap) BlendPixel(x, y int, c RGBA, coverage float64) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	srcAlpha := clamp01(c.A) * clamp01(coverage)
	if srcAlpha <= 0 {
		return
	}
	if srcAlpha >= 1 {
		p.SetPixel(x, y, RGBA{R: c.R, G: c.G, B: c.B, A: 1})
		return
	}

	existing := p.GetPixel(x, y)
	invSrcAlpha := 1.0 - srcAlpha

	outA := srcAlpha + existing.A*invSrcAlpha
	if outA <= 0 {
		return
	}
	outR := (c.R*srcAlpha + existing.R*existing.A*invSrcAlpha) / outA
	outG := (c.G*srcAlpha + existing.G*existing.A*invSrcAlpha) / outA
	outB := (c.B*srcAlpha + existing.B*existing.A*invSrcAlpha) / outA
	p.SetPixel(x, y, RGBA{R: outR, G: outG, B: outB, A: outA})
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := componentByte(c.R)
	g := componentByte(c.G)
	b := componentByte(c.B)
	a := componentByte(c.A)

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	clone := &Pixmap{
		width:  p.width,
		height: p.height,
		data:   make([]uint8, len(p.data)),
	}
	copy(clone.data, p.data)
	return clone
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// EncodePNG writes the pixmap as PNG to the given writer.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, p.ToImage()); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}

// SavePNG saves the pixmap to a PNG file. The image is written to a
// temporary file in the target directory and renamed into place, so a
// failed encode never leaves a partial file at path.
func (p *Pixmap) SavePNG(path string) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	tmp := f.Name()

	if err := png.Encode(f, p.ToImage()); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}
