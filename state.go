package canvas

import (
	"github.com/gogpu/canvas/internal/blend"
	"github.com/gogpu/canvas/text"
)

// scissor is a clip rectangle stored in its own centered space so it can be
// re-projected under later transforms. A negative extent means no clip.
type scissor struct {
	xform  Transform  // scissor space to logical space
	extent [2]float64 // half width and height
}

func noScissor() scissor {
	return scissor{extent: [2]float64{-1, -1}}
}

func (s scissor) enabled() bool {
	return s.extent[0] >= 0
}

// state is the complete drawing state saved by Save.
// It holds no references, so copying it is a deep copy.
type state struct {
	xform       Transform
	scissor     scissor
	fill        Paint
	stroke      Paint
	strokeWidth float64
	miterLimit  float64
	lineCap     LineCap
	lineJoin    LineJoin
	alpha       float64
	antiAlias   bool
	composite   blend.State
	fillRule    FillRule
	text        text.Style
}

func defaultState(antiAlias bool) state {
	return state{
		xform:       TransformIdentity(),
		scissor:     noScissor(),
		fill:        ColorPaint(White),
		stroke:      ColorPaint(Black),
		strokeWidth: 1,
		miterLimit:  10,
		lineCap:     LineCapButt,
		lineJoin:    LineJoinMiter,
		alpha:       1,
		antiAlias:   antiAlias,
		composite:   compositeState(SourceOver),
		fillRule:    FillRuleNonZero,
		text:        text.DefaultStyle(),
	}
}

func (c *Context) state() *state {
	return &c.states[len(c.states)-1]
}

// Save pushes a copy of the current state.
func (c *Context) Save() {
	c.states = append(c.states, *c.state())
}

// Restore pops the state pushed by the matching Save. Without one it does
// nothing.
func (c *Context) Restore() {
	if len(c.states) <= 1 {
		Logger().Debug("canvas: restore without matching save")
		return
	}
	c.states = c.states[:len(c.states)-1]
}

// Reset installs the default state without changing the stack depth.
func (c *Context) Reset() {
	*c.state() = defaultState(c.cfg.AntiAlias)
}

// ShapeAntiAlias enables or disables anti-aliasing of fills and strokes.
func (c *Context) ShapeAntiAlias(enabled bool) {
	c.state().antiAlias = enabled
}

// StrokeColor sets the stroke to a solid color.
func (c *Context) StrokeColor(color Color) {
	c.state().stroke = ColorPaint(color)
}

// StrokePaint sets the stroke paint. The paint is fixed to the current
// transform.
func (c *Context) StrokePaint(paint Paint) {
	st := c.state()
	paint.Xform = paint.Xform.Multiply(st.xform)
	st.stroke = paint
}

// FillColor sets the fill to a solid color.
func (c *Context) FillColor(color Color) {
	c.state().fill = ColorPaint(color)
}

// FillPaint sets the fill paint. The paint is fixed to the current
// transform.
func (c *Context) FillPaint(paint Paint) {
	st := c.state()
	paint.Xform = paint.Xform.Multiply(st.xform)
	st.fill = paint
}

// MiterLimit sets the ratio of miter length to stroke width beyond which
// miter joins are beveled.
func (c *Context) MiterLimit(limit float64) {
	c.state().miterLimit = limit
}

// StrokeWidth sets the stroke width in user units.
func (c *Context) StrokeWidth(width float64) {
	c.state().strokeWidth = width
}

// LineCap sets the end cap of open subpaths.
func (c *Context) LineCap(lineCap LineCap) {
	c.state().lineCap = lineCap
}

// LineJoin sets the corner style of strokes.
func (c *Context) LineJoin(join LineJoin) {
	c.state().lineJoin = join
}

// GlobalAlpha sets the opacity applied to everything drawn.
func (c *Context) GlobalAlpha(alpha float64) {
	c.state().alpha = alpha
}

// SetFillRule sets the rule deciding which regions of a path are filled.
func (c *Context) SetFillRule(rule FillRule) {
	c.state().fillRule = rule
}

// GlobalCompositeOperation sets the composite operation.
func (c *Context) GlobalCompositeOperation(op CompositeOperation) {
	c.state().composite = compositeState(op)
}

// GlobalCompositeBlendFunc sets the composite operation to a custom blend
// function shared by color and alpha.
func (c *Context) GlobalCompositeBlendFunc(sfactor, dfactor BlendFactor) {
	c.GlobalCompositeBlendFuncSeparate(sfactor, dfactor, sfactor, dfactor)
}

// GlobalCompositeBlendFuncSeparate sets the composite operation to a custom
// blend function with separate color and alpha factors. Unknown factors
// leave the operation unchanged.
func (c *Context) GlobalCompositeBlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha BlendFactor) {
	if !srcRGB.valid() || !dstRGB.valid() || !srcAlpha.valid() || !dstAlpha.valid() {
		Logger().Warn("canvas: invalid blend factor",
			"srcRGB", srcRGB, "dstRGB", dstRGB, "srcAlpha", srcAlpha, "dstAlpha", dstAlpha)
		return
	}
	c.state().composite = blend.State{
		SrcRGB:   blend.Factor(srcRGB),
		DstRGB:   blend.Factor(dstRGB),
		SrcAlpha: blend.Factor(srcAlpha),
		DstAlpha: blend.Factor(dstAlpha),
	}
}

// ResetTransform sets the transform to identity.
func (c *Context) ResetTransform() {
	c.state().xform = TransformIdentity()
}

// Transform premultiplies the current transform by [a b c d e f].
func (c *Context) Transform(a, b, cc, d, e, f float64) {
	c.premultiply(Transform{a, b, cc, d, e, f})
}

// Translate premultiplies the current transform by a translation.
func (c *Context) Translate(x, y float64) {
	c.premultiply(TransformTranslate(x, y))
}

// Rotate premultiplies the current transform by a rotation of angle radians.
func (c *Context) Rotate(angle float64) {
	c.premultiply(TransformRotate(angle))
}

// SkewX premultiplies the current transform by a skew along x.
func (c *Context) SkewX(angle float64) {
	c.premultiply(TransformSkewX(angle))
}

// SkewY premultiplies the current transform by a skew along y.
func (c *Context) SkewY(angle float64) {
	c.premultiply(TransformSkewY(angle))
}

// Scale premultiplies the current transform by a scale.
func (c *Context) Scale(x, y float64) {
	c.premultiply(TransformScale(x, y))
}

// CurrentTransform returns the current transform.
func (c *Context) CurrentTransform() Transform {
	return c.state().xform
}

func (c *Context) premultiply(t Transform) {
	st := c.state()
	st.xform = st.xform.Premultiply(t)
}

// deviceXform maps user space to device pixels.
func (c *Context) deviceXform() Transform {
	return c.state().xform.Multiply(TransformScale(c.ratio, c.ratio))
}
