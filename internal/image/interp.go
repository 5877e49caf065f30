package image

import "math"

// Sample returns the premultiplied color at normalized coordinates (u, v),
// where (0,0) is the top-left and (1,1) the bottom-right corner.
// texelsPerPixel selects the mipmap level; pass 1 for no minification.
// Coordinates outside [0, 1] wrap on repeating axes and clamp otherwise.
func (t *Texture) Sample(u, v, texelsPerPixel float64) (r, g, b, a float32) {
	lv := &t.levels[t.selectLevel(texelsPerPixel)]
	if t.flags.Has(FlagFlipY) {
		v = 1 - v
	}
	if t.flags.Has(FlagNearest) {
		x := t.wrap(int(math.Floor(u*float64(lv.w))), lv.w, FlagRepeatX)
		y := t.wrap(int(math.Floor(v*float64(lv.h))), lv.h, FlagRepeatY)
		return t.texel(lv, x, y)
	}

	fx := u*float64(lv.w) - 0.5
	fy := v*float64(lv.h) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := float32(fx - float64(x0))
	ty := float32(fy - float64(y0))

	x1 := t.wrap(x0+1, lv.w, FlagRepeatX)
	y1 := t.wrap(y0+1, lv.h, FlagRepeatY)
	x0 = t.wrap(x0, lv.w, FlagRepeatX)
	y0 = t.wrap(y0, lv.h, FlagRepeatY)

	r00, g00, b00, a00 := t.texel(lv, x0, y0)
	r10, g10, b10, a10 := t.texel(lv, x1, y0)
	r01, g01, b01, a01 := t.texel(lv, x0, y1)
	r11, g11, b11, a11 := t.texel(lv, x1, y1)

	r = lerp2D(r00, r10, r01, r11, tx, ty)
	g = lerp2D(g00, g10, g01, g11, tx, ty)
	b = lerp2D(b00, b10, b01, b11, tx, ty)
	a = lerp2D(a00, a10, a01, a11, tx, ty)
	return r, g, b, a
}

// wrap maps a texel index onto the texture, repeating when flag is set and
// clamping to the edge otherwise.
func (t *Texture) wrap(i, n int, flag Flags) int {
	if t.flags.Has(flag) {
		i %= n
		if i < 0 {
			i += n
		}
		return i
	}
	return clamp(i, 0, n-1)
}

func (t *Texture) texel(lv *level, x, y int) (r, g, b, a float32) {
	if t.format == FormatAlpha {
		v := float32(lv.pix[y*lv.stride+x]) / 255
		return v, v, v, v
	}
	p := lv.pix[y*lv.stride+x*4 : y*lv.stride+x*4+4 : y*lv.stride+x*4+4]
	return float32(p[0]) / 255, float32(p[1]) / 255, float32(p[2]) / 255, float32(p[3]) / 255
}

// clamp clamps an integer value to [minVal, maxVal].
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float32) float32 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}
