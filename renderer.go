package canvas

import (
	"github.com/gogpu/canvas/internal/blend"
	texture "github.com/gogpu/canvas/internal/image"
	"github.com/gogpu/canvas/internal/stroke"
	"github.com/gogpu/canvas/text"
)

// Renderer is the backend contract of a 2D vector renderer. Content
// producers draw through it without knowing which backend executes the
// work; Context is the software implementation.
//
// Color construction (RGB, HSL, ...) and transform arithmetic (Transform
// and its methods) are backend independent and live at package level.
type Renderer interface {
	// Frames
	BeginFrame(windowWidth, windowHeight, devicePixelRatio float64)
	CancelFrame()
	EndFrame()

	// Composite operation
	GlobalCompositeOperation(op CompositeOperation)
	GlobalCompositeBlendFunc(sfactor, dfactor BlendFactor)
	GlobalCompositeBlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha BlendFactor)

	// State handling
	Save()
	Restore()
	Reset()

	// Render styles
	ShapeAntiAlias(enabled bool)
	StrokeColor(color Color)
	StrokePaint(paint Paint)
	FillColor(color Color)
	FillPaint(paint Paint)
	MiterLimit(limit float64)
	StrokeWidth(width float64)
	LineCap(lineCap LineCap)
	LineJoin(join LineJoin)
	GlobalAlpha(alpha float64)

	// Transforms
	ResetTransform()
	Transform(a, b, c, d, e, f float64)
	Translate(x, y float64)
	Rotate(angle float64)
	SkewX(angle float64)
	SkewY(angle float64)
	Scale(x, y float64)
	CurrentTransform() Transform

	// Images
	CreateImage(filename string, flags ImageFlags) int
	CreateImageMem(flags ImageFlags, data []byte) int
	CreateImageRGBA(w, h int, flags ImageFlags, data []byte) int
	UpdateImage(image int, data []byte) error
	ImageSize(image int) (w, h int, err error)
	DeleteImage(image int) error

	// Paints
	LinearGradient(sx, sy, ex, ey float64, icol, ocol Color) Paint
	BoxGradient(x, y, w, h, r, f float64, icol, ocol Color) Paint
	RadialGradient(cx, cy, inr, outr float64, icol, ocol Color) Paint
	ImagePattern(ox, oy, ex, ey, angle float64, image int, alpha float64) Paint

	// Scissoring
	Scissor(x, y, w, h float64)
	IntersectScissor(x, y, w, h float64)
	ResetScissor()

	// Paths
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	BezierTo(c1x, c1y, c2x, c2y, x, y float64)
	QuadTo(cx, cy, x, y float64)
	ArcTo(x1, y1, x2, y2, radius float64)
	ClosePath()
	PathWinding(dir Winding)
	Arc(cx, cy, r, a0, a1 float64, dir Winding)
	Rect(x, y, w, h float64)
	RoundedRect(x, y, w, h, r float64)
	RoundedRectVarying(x, y, w, h, radTopLeft, radTopRight, radBottomRight, radBottomLeft float64)
	Ellipse(cx, cy, rx, ry float64)
	Circle(cx, cy, r float64)
	Fill() error
	Stroke() error

	// Text
	CreateFont(name, filename string) int
	CreateFontAtIndex(name, filename string, fontIndex int) int
	CreateFontMem(name string, data []byte, freeData bool) int
	CreateFontMemAtIndex(name string, data []byte, freeData bool, fontIndex int) int
	FindFont(name string) int
	AddFallbackFontID(baseFont, fallbackFont int) error
	AddFallbackFont(baseFont, fallbackFont string) error
	FontSize(size float64)
	FontBlur(blur float64)
	TextLetterSpacing(spacing float64)
	TextLineHeight(lineHeight float64)
	TextAlign(align Align)
	FontFaceID(font int)
	FontFace(font string)
	Text(x, y float64, str string) float64
	TextBox(x, y, breakRowWidth float64, str string)
	TextBounds(x, y float64, str string) (advance float64, bounds [4]float64)
	TextBoxBounds(x, y, breakRowWidth float64, str string) [4]float64
	TextGlyphPositions(x, y float64, str string, positions []GlyphPosition) int
	TextMetrics() (ascender, descender, lineHeight float64)
	TextBreakLines(str string, breakRowWidth float64, rows []TextRow) int
}

var _ Renderer = (*Context)(nil)

// Winding is the direction of a subpath or arc. In the y-down coordinate
// system CCW shapes are solid and CW shapes are holes.
type Winding int

const (
	// CCW is counter-clockwise winding, used for solid shapes.
	CCW Winding = 1
	// CW is clockwise winding, used for holes.
	CW Winding = 2

	// Solid is an alias of CCW.
	Solid = CCW
	// Hole is an alias of CW.
	Hole = CW
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

func (c LineCap) stroke() stroke.LineCap {
	switch c {
	case LineCapRound:
		return stroke.CapRound
	case LineCapSquare:
		return stroke.CapSquare
	default:
		return stroke.CapButt
	}
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

func (j LineJoin) stroke() stroke.LineJoin {
	switch j {
	case LineJoinRound:
		return stroke.JoinRound
	case LineJoinBevel:
		return stroke.JoinBevel
	default:
		return stroke.JoinMiter
	}
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// CompositeOperation is a Porter-Duff composite operation.
type CompositeOperation int

const (
	SourceOver CompositeOperation = iota
	SourceIn
	SourceOut
	Atop
	DestinationOver
	DestinationIn
	DestinationOut
	DestinationAtop
	Lighter
	Copy
	Xor
)

// BlendFactor is a factor of a custom composite blend function.
type BlendFactor int

const (
	Zero BlendFactor = iota
	One
	SrcColor
	OneMinusSrcColor
	DstColor
	OneMinusDstColor
	SrcAlpha
	OneMinusSrcAlpha
	DstAlpha
	OneMinusDstAlpha
	SrcAlphaSaturate
)

func (f BlendFactor) valid() bool {
	return f >= Zero && f <= SrcAlphaSaturate
}

// ImageFlags control how an image is stored and sampled.
type ImageFlags int

const (
	// ImageGenerateMipmaps builds a mipmap chain used when the image is
	// minified.
	ImageGenerateMipmaps ImageFlags = ImageFlags(texture.FlagGenerateMipmaps)
	// ImageRepeatX repeats the image horizontally.
	ImageRepeatX ImageFlags = ImageFlags(texture.FlagRepeatX)
	// ImageRepeatY repeats the image vertically.
	ImageRepeatY ImageFlags = ImageFlags(texture.FlagRepeatY)
	// ImageFlipY flips the image vertically when sampling.
	ImageFlipY ImageFlags = ImageFlags(texture.FlagFlipY)
	// ImagePremultiplied marks RGBA data as already premultiplied.
	ImagePremultiplied ImageFlags = ImageFlags(texture.FlagPremultiplied)
	// ImageNearest samples the nearest texel instead of interpolating.
	ImageNearest ImageFlags = ImageFlags(texture.FlagNearest)
)

// Align is a combination of one horizontal and one vertical text
// alignment flag.
type Align = text.Align

const (
	AlignLeft     = text.AlignLeft
	AlignCenter   = text.AlignCenter
	AlignRight    = text.AlignRight
	AlignTop      = text.AlignTop
	AlignMiddle   = text.AlignMiddle
	AlignBottom   = text.AlignBottom
	AlignBaseline = text.AlignBaseline
)

// GlyphPosition is the position of one character of a laid out string.
type GlyphPosition = text.GlyphPosition

// TextRow is one row of text produced by TextBreakLines.
type TextRow = text.TextRow

func compositeState(op CompositeOperation) blend.State {
	return blend.OpState(blend.Op(op))
}
