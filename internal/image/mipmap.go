package image

import (
	"image"

	"golang.org/x/image/draw"
)

// rebuildMipmaps regenerates all levels below the full-size one when
// mipmaps are enabled.
func (t *Texture) rebuildMipmaps() {
	t.levels = t.levels[:1]
	if !t.flags.Has(FlagGenerateMipmaps) {
		return
	}
	bpp := t.format.BytesPerPixel()
	for {
		prev := t.levels[len(t.levels)-1]
		if prev.w == 1 && prev.h == 1 {
			return
		}
		w, h := max(1, prev.w/2), max(1, prev.h/2)
		next := level{w: w, h: h, stride: w * bpp, pix: make([]byte, w*h*bpp)}
		draw.BiLinear.Scale(t.view(next), image.Rect(0, 0, w, h), t.view(prev), image.Rect(0, 0, prev.w, prev.h), draw.Src, nil)
		t.levels = append(t.levels, next)
	}
}

// view wraps a level as a standard library image without copying.
func (t *Texture) view(lv level) draw.Image {
	r := image.Rect(0, 0, lv.w, lv.h)
	if t.format == FormatAlpha {
		return &image.Alpha{Pix: lv.pix, Stride: lv.stride, Rect: r}
	}
	return &image.RGBA{Pix: lv.pix, Stride: lv.stride, Rect: r}
}

// Image returns the full-size level as a standard library image. The image
// aliases the texture storage.
func (t *Texture) Image() image.Image {
	return t.view(t.levels[0])
}

// selectLevel picks the mipmap level for a minification factor given in
// texels per pixel.
func (t *Texture) selectLevel(texelsPerPixel float64) int {
	n := len(t.levels)
	if n == 1 || texelsPerPixel <= 1 {
		return 0
	}
	lod := 0
	for s := texelsPerPixel; s >= 2 && lod < n-1; s /= 2 {
		lod++
	}
	return lod
}
