package filter

import (
	"math"

	lru "github.com/hashicorp/golang-lru"
)

// GaussianKernel generates a 1D Gaussian kernel for the given sigma.
// The kernel is normalized so all values sum to 1.0.
//
// The kernel size is computed as 2 * ceil(sigma * 3) + 1, which covers
// 99.7% of the Gaussian distribution (3 standard deviations).
//
// For sigma <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1.0}
	}

	halfSize := int(math.Ceil(sigma * 3))
	size := halfSize*2 + 1

	kernel := make([]float32, size)

	// G(x) = exp(-x²/(2σ²)); the constant factor is dropped by normalization.
	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)

	for i := range size {
		x := float64(i - halfSize)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	invSum := float32(1.0 / sum)
	for i := range kernel {
		kernel[i] *= invSum
	}

	return kernel
}

// kernelCacheSize bounds the number of cached kernels.
const kernelCacheSize = 64

var kernelCache = mustCache(kernelCacheSize)

func mustCache(size int) *lru.Cache {
	c, err := lru.New(size)
	if err != nil {
		panic(err)
	}
	return c
}

// CachedGaussianKernel returns a cached Gaussian kernel for sigma.
// Sigma is quantized to 0.01.
func CachedGaussianKernel(sigma float64) []float32 {
	key := int(sigma * 100)
	if k, ok := kernelCache.Get(key); ok {
		return k.([]float32)
	}
	k := GaussianKernel(float64(key) / 100)
	kernelCache.Add(key, k)
	return k
}

// KernelRadius returns the number of pixels a blur with sigma spreads
// coverage beyond the source.
func KernelRadius(sigma float64) int {
	if sigma <= 0 {
		return 0
	}
	return int(math.Ceil(sigma * 3))
}
