package filter

import (
	"math"
	"testing"
)

func TestGaussianKernelNormalized(t *testing.T) {
	for _, sigma := range []float64{0.5, 1, 2, 8} {
		kernel, half := gaussianKernel(sigma)

		if len(kernel) != 2*half+1 {
			t.Fatalf("sigma %v: kernel length %d, want %d", sigma, len(kernel), 2*half+1)
		}
		if want := int(math.Ceil(3 * sigma)); half != want && want >= 1 {
			t.Errorf("sigma %v: half = %d, want %d", sigma, half, want)
		}

		sum := 0.0
		for _, w := range kernel {
			sum += w
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("sigma %v: kernel sum = %v, want 1", sigma, sum)
		}
	}
}

func TestGaussianKernelSymmetric(t *testing.T) {
	kernel, half := gaussianKernel(3)
	for i := 0; i <= half; i++ {
		if kernel[half-i] != kernel[half+i] {
			t.Fatalf("kernel not symmetric at offset %d", i)
		}
	}
	for i := 1; i <= half; i++ {
		if kernel[half+i] > kernel[half+i-1] {
			t.Fatalf("kernel not monotonically decreasing at offset %d", i)
		}
	}
}
