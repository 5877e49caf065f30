package canvas

import (
	"image"
	"math"
)

// Scissor sets the clip rectangle, in the current transform. Drawing is
// limited to it until ResetScissor or a Restore discarding it.
func (c *Context) Scissor(x, y, w, h float64) {
	st := c.state()
	w, h = math.Max(0, w), math.Max(0, h)
	st.scissor = scissor{
		xform:  TransformTranslate(x+w*0.5, y+h*0.5).Multiply(st.xform),
		extent: [2]float64{w * 0.5, h * 0.5},
	}
}

// IntersectScissor narrows the clip to its intersection with the given
// rectangle. The previous clip is projected into the current transform and
// its axis-aligned bounds are intersected, so under rotation the result
// covers the true intersection.
func (c *Context) IntersectScissor(x, y, w, h float64) {
	st := c.state()
	if !st.scissor.enabled() {
		c.Scissor(x, y, w, h)
		return
	}

	inv, err := st.xform.Inverse()
	if err != nil {
		Logger().Debug("canvas: intersect scissor under singular transform", "err", err)
	}
	p := st.scissor.xform.Multiply(inv)
	ex, ey := st.scissor.extent[0], st.scissor.extent[1]
	tex := ex*math.Abs(p[0]) + ey*math.Abs(p[2])
	tey := ex*math.Abs(p[1]) + ey*math.Abs(p[3])

	minX := math.Max(p[4]-tex, x)
	minY := math.Max(p[5]-tey, y)
	maxX := math.Min(p[4]+tex, x+w)
	maxY := math.Min(p[5]+tey, y+h)
	c.Scissor(minX, minY, maxX-minX, maxY-minY)
}

// ResetScissor removes the clip.
func (c *Context) ResetScissor() {
	c.state().scissor = noScissor()
}

// scissorMask is the device-space form of a scissor.
type scissorMask struct {
	enabled bool
	inv     Transform // device pixels to scissor space
	extent  [2]float64
	scale   [2]float64 // device pixels per scissor unit
}

// at returns the clip coverage of the pixel centered at (x, y). Edges fade
// over one device pixel.
func (m *scissorMask) at(x, y float64) float32 {
	sx, sy := m.inv.Apply(x, y)
	cx := clampf(0.5-(math.Abs(sx)-m.extent[0])*m.scale[0], 0, 1)
	cy := clampf(0.5-(math.Abs(sy)-m.extent[1])*m.scale[1], 0, 1)
	return float32(cx * cy)
}

// clip returns the pixel rectangle drawing may touch and the per-pixel
// scissor mask. The rectangle is empty when nothing can be drawn.
func (c *Context) clip() (image.Rectangle, scissorMask) {
	frame := c.back.Bounds()
	sc := c.state().scissor
	if !sc.enabled() {
		return frame, scissorMask{}
	}

	xf := sc.xform.Multiply(TransformScale(c.ratio, c.ratio))
	inv, err := xf.Inverse()
	if err != nil {
		return image.Rectangle{}, scissorMask{}
	}
	ex, ey := sc.extent[0], sc.extent[1]
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, corner := range [4][2]float64{{-ex, -ey}, {ex, -ey}, {ex, ey}, {-ex, ey}} {
		x, y := xf.Apply(corner[0], corner[1])
		minX, minY = math.Min(minX, x), math.Min(minY, y)
		maxX, maxY = math.Max(maxX, x), math.Max(maxY, y)
	}
	bounds := image.Rectangle{
		Min: image.Pt(int(math.Floor(minX)), int(math.Floor(minY))),
		Max: image.Pt(int(math.Ceil(maxX)), int(math.Ceil(maxY))),
	}
	return bounds.Intersect(frame), scissorMask{
		enabled: true,
		inv:     inv,
		extent:  sc.extent,
		scale: [2]float64{
			math.Sqrt(xf[0]*xf[0] + xf[2]*xf[2]),
			math.Sqrt(xf[1]*xf[1] + xf[3]*xf[3]),
		},
	}
}
