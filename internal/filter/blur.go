package filter

import (
	"image"
	"sync"
)

// BlurAlpha blurs an alpha mask in place with a separable Gaussian of the
// given sigma. Pixels outside the mask are treated as transparent, so the
// mask should carry KernelRadius(sigma) pixels of padding.
//
// The two passes are:
//  1. Horizontal: convolve each row with the 1D kernel into a float buffer
//  2. Vertical: convolve each column of the buffer back into the mask
func BlurAlpha(mask *image.Alpha, sigma float64) {
	if mask == nil || sigma <= 0 {
		return
	}
	b := mask.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return
	}

	kernel := CachedGaussianKernel(sigma)
	temp := getTempBuffer(width * height)
	defer putTempBuffer(temp)

	blurHorizontal(mask, temp, width, height, kernel)
	blurVertical(temp, mask, width, height, kernel)
}

// blurHorizontal reads rows of src and writes the convolution to temp.
func blurHorizontal(src *image.Alpha, temp []float32, width, height int, kernel []float32) {
	half := len(kernel) / 2
	for y := range height {
		row := src.Pix[y*src.Stride : y*src.Stride+width]
		for x := range width {
			var a float32
			for k, weight := range kernel {
				kx := x + k - half
				if kx < 0 || kx >= width {
					continue
				}
				a += float32(row[kx]) * weight
			}
			temp[y*width+x] = a
		}
	}
}

// blurVertical reads columns of temp and writes the convolution to dst.
func blurVertical(temp []float32, dst *image.Alpha, width, height int, kernel []float32) {
	half := len(kernel) / 2
	for x := range width {
		for y := range height {
			var a float32
			for k, weight := range kernel {
				ky := y + k - half
				if ky < 0 || ky >= height {
					continue
				}
				a += temp[ky*width+x] * weight
			}
			dst.Pix[y*dst.Stride+x] = clampUint8(a)
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{data: make([]float32, 64*64)}
	},
}

// getTempBuffer retrieves a buffer of at least size elements.
func getTempBuffer(size int) []float32 {
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}
	return wrapper.data[:size]
}

// putTempBuffer returns a temporary buffer to the pool.
func putTempBuffer(buf []float32) {
	if cap(buf) <= 4*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
