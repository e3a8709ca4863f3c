package filter

import (
	"bytes"
	"errors"
	"testing"

	"github.com/606uotab/janus-monitor/canvas"
)

func TestGaussianNilSource(t *testing.T) {
	if _, err := Gaussian(nil, 2); !errors.Is(err, ErrNilSource) {
		t.Fatalf("Gaussian(nil) error = %v, want ErrNilSource", err)
	}
}

func TestGaussianZeroSigmaReturnsCopy(t *testing.T) {
	src, _ := canvas.NewPixmap(10, 10)
	src.SetPixel(5, 5, canvas.White)

	dst, err := Gaussian(src, 0)
	if err != nil {
		t.Fatal(err)
	}
	if dst == src {
		t.Fatal("zero-sigma blur returned the source pixmap")
	}
	if !bytes.Equal(dst.Data(), src.Data()) {
		t.Error("zero-sigma blur altered pixel data")
	}
}

func TestGaussianDoesNotModifySource(t *testing.T) {
	src, _ := canvas.NewPixmap(20, 20)
	src.SetPixel(10, 10, canvas.White)
	before := append([]uint8(nil), src.Data()...)

	if _, err := Gaussian(src, 3); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(src.Data(), before) {
		t.Error("blur modified its source")
	}
}

func TestGaussianSpreadsEnergy(t *testing.T) {
	src, _ := canvas.NewPixmap(41, 41)
	src.SetPixel(20, 20, canvas.White)

	dst, err := Gaussian(src, 2)
	if err != nil {
		t.Fatal(err)
	}

	center := dst.GetPixel(20, 20)
	neighbor := dst.GetPixel(22, 20)
	far := dst.GetPixel(0, 0)

	if center.A == 0 {
		t.Error("center lost all alpha")
	}
	if center.A >= 1 {
		t.Error("center alpha not reduced by blur")
	}
	if neighbor.A == 0 {
		t.Error("no energy spread to neighbor")
	}
	if neighbor.A >= center.A {
		t.Error("neighbor brighter than center")
	}
	if far.A != 0 {
		t.Error("energy reached pixels far beyond the kernel")
	}
}

func TestGaussianPreservesTotalAlpha(t *testing.T) {
	// A dot far from the edges must keep its total alpha within
	// quantization error, since the kernel is normalized.
	src, _ := canvas.NewPixmap(61, 61)
	for y := 28; y <= 32; y++ {
		for x := 28; x <= 32; x++ {
			src.SetPixel(x, y, canvas.White)
		}
	}

	dst, err := Gaussian(src, 2)
	if err != nil {
		t.Fatal(err)
	}

	sum := func(p *canvas.Pixmap) float64 {
		total := 0.0
		data := p.Data()
		for i := 3; i < len(data); i += 4 {
			total += float64(data[i])
		}
		return total
	}

	before := sum(src)
	after := sum(dst)
	diff := before - after
	if diff < 0 {
		diff = -diff
	}
	if diff > before*0.02 {
		t.Errorf("total alpha changed from %v to %v", before, after)
	}
}

func TestGaussianUniformImageUnchanged(t *testing.T) {
	// Edge clamping must keep a constant image constant.
	src, _ := canvas.NewPixmap(16, 16)
	src.Clear(canvas.RGB(0.3, 0.5, 0.7))

	dst, err := Gaussian(src, 4)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			got := dst.GetPixel(x, y)
			want := src.GetPixel(x, y)
			if !closeEnough(got, want) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func closeEnough(a, b canvas.RGBA) bool {
	const tol = 1.5 / 255
	abs := func(v float64) float64 {
		if v < 0 {
			return -v
		}
		return v
	}
	return abs(a.R-b.R) <= tol && abs(a.G-b.G) <= tol &&
		abs(a.B-b.B) <= tol && abs(a.A-b.A) <= tol
}

func TestGaussianRepeatable(t *testing.T) {
	src, _ := canvas.NewPixmap(12, 12)
	src.SetPixel(6, 6, canvas.RGB(1, 0, 0))

	a, err := Gaussian(src, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Gaussian(src, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Data(), b.Data()) {
		t.Error("repeated blur of the same input differs")
	}
}
