// Package filter implements raster post-processing filters for pixmaps.
package filter

import "math"

// gaussianKernel returns a normalized 1D Gaussian kernel for the given
// standard deviation and its half-size. The kernel covers three
// standard deviations per side, which captures over 99.7% of the
// distribution; normalization makes the weights sum to exactly 1 so the
// filter preserves overall image energy.
func gaussianKernel(sigma float64) (kernel []float64, half int) {
	half = int(math.Ceil(3 * sigma))
	if half < 1 {
		half = 1
	}

	kernel = make([]float64, 2*half+1)
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := -half; i <= half; i++ {
		w := math.Exp(-float64(i*i) / twoSigmaSq)
		kernel[i+half] = w
		sum += w
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel, half
}
