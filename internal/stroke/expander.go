package stroke

import (
	"math"

	"github.com/gogpu/canvas/internal/path"
)

// Point is a device-space point.
type Point = path.Point

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

func sub(p, q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

func add(p Point, v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (z-component of 3D cross).
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Perp returns the vector rotated 90 degrees.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Rotate returns the vector rotated by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// LineCap specifies the shape of open polyline ends.
type LineCap int

const (
	// CapButt ends the stroke flat at the endpoint.
	CapButt LineCap = iota
	// CapRound ends the stroke with a semicircle.
	CapRound
	// CapSquare extends the stroke by half its width.
	CapSquare
)

// LineJoin specifies the shape of corners.
type LineJoin int

const (
	// JoinMiter extends the outer edges to their intersection.
	JoinMiter LineJoin = iota
	// JoinRound connects the outer edges with an arc.
	JoinRound
	// JoinBevel connects the outer edges with a straight line.
	JoinBevel
)

// Style defines the stroke geometry.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// DefaultStyle returns a one pixel wide butt/miter stroke with miter limit 10.
func DefaultStyle() Style {
	return Style{
		Width:      1.0,
		Cap:        CapButt,
		Join:       JoinMiter,
		MiterLimit: 10.0,
	}
}

// minSegmentLength is the length below which a segment is treated as zero.
const minSegmentLength = 1e-9

// Expander converts polylines to outline polygons.
// An Expander can be reused; it is not safe for concurrent use.
type Expander struct {
	style Style

	// tolerance bounds the chordal error of round joins and caps.
	tolerance float64

	forward  []Point
	backward []Point
	output   [][]Point

	startPt   Point
	startTan  Vec2
	startNorm Vec2
	lastPt    Point
	lastTan   Vec2
	lastNorm  Vec2

	// joinThresh skips joins whose angle change is invisible.
	joinThresh float64
}

// NewExpander creates an expander for the given style.
func NewExpander(style Style) *Expander {
	return &Expander{
		style:     style,
		tolerance: 0.25,
	}
}

// SetTolerance sets the arc flattening tolerance in device pixels.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// SetStyle replaces the stroke style.
func (e *Expander) SetStyle(style Style) {
	e.style = style
}

// Style returns the stroke style.
func (e *Expander) Style() Style {
	return e.style
}

// Expand strokes one polyline and returns the outline polygons.
// Zero-length segments are skipped; a polyline without any non-degenerate
// segment produces no outline.
func (e *Expander) Expand(pts []Point, closed bool) [][]Point {
	e.output = nil
	e.appendPolyline(pts, closed)
	return e.output
}

// ExpandAll strokes several polylines into a single polygon set.
func (e *Expander) ExpandAll(subpaths []path.Subpath) [][]Point {
	e.output = nil
	for i := range subpaths {
		e.appendPolyline(subpaths[i].Points, subpaths[i].Closed)
	}
	return e.output
}

func (e *Expander) appendPolyline(pts []Point, closed bool) {
	if e.style.Width <= 0 || len(pts) < 2 {
		return
	}
	e.reset()

	if closed && len(pts) > 2 && sub(pts[0], pts[len(pts)-1]).Length() < minSegmentLength {
		pts = pts[:len(pts)-1]
	}

	e.startPt = pts[0]
	e.lastPt = pts[0]
	for _, p := range pts[1:] {
		e.segmentTo(p)
	}

	if closed {
		e.segmentTo(e.startPt)
		e.finishClosed()
		return
	}
	e.finish()
}

func (e *Expander) reset() {
	e.forward = e.forward[:0]
	e.backward = e.backward[:0]
	e.startTan = Vec2{}
	e.startNorm = Vec2{}
	e.lastTan = Vec2{}
	e.lastNorm = Vec2{}
	e.joinThresh = 2.0 * e.tolerance / e.style.Width
}

func (e *Expander) segmentTo(p Point) {
	tangent := sub(p, e.lastPt)
	if tangent.Length() < minSegmentLength {
		return
	}
	e.doJoin(tangent)
	e.lastTan = tangent
	e.doLine(tangent, p)
}

// normal returns the tangent's perpendicular scaled to half the width.
func (e *Expander) normal(tan Vec2) Vec2 {
	return tan.Perp().Scale(0.5 * e.style.Width / tan.Length())
}

// doJoin handles joining the current segment to the previous one.
func (e *Expander) doJoin(tan0 Vec2) {
	norm := e.normal(tan0)
	p0 := e.lastPt

	if len(e.forward) == 0 {
		e.forward = append(e.forward, add(p0, norm.Neg()))
		e.backward = append(e.backward, add(p0, norm))
		e.startTan = tan0
		e.startNorm = norm
		return
	}
	e.joinWithPrevious(p0, norm, tan0)
}

func (e *Expander) joinWithPrevious(p0 Point, norm, tan0 Vec2) {
	ab := e.lastTan
	cd := tan0
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	hypot := math.Hypot(cross, dot)

	// Nearly collinear: connect both sides without join geometry.
	if dot > 0.0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward = append(e.forward, add(p0, norm.Neg()))
		e.backward = append(e.backward, add(p0, norm))
		return
	}

	switch e.style.Join {
	case JoinBevel:
		e.forward = append(e.forward, add(p0, norm.Neg()))
		e.backward = append(e.backward, add(p0, norm))
	case JoinMiter:
		e.applyMiterJoin(p0, norm, ab, cd, cross, dot, hypot)
	case JoinRound:
		e.applyRoundJoin(p0, norm, cross, dot)
	}
}

// applyMiterJoin adds the miter tip on the outer side when the miter ratio
// 1/cos(phi/2) stays within the limit; otherwise the join is a bevel.
func (e *Expander) applyMiterJoin(p0 Point, norm, ab, cd Vec2, cross, dot, hypot float64) {
	limit := e.style.MiterLimit
	if 2.0*hypot < (hypot+dot)*limit*limit {
		lastNorm := e.normal(ab)
		if cross > 0.0 {
			fpLast := add(p0, lastNorm.Neg())
			fpThis := add(p0, norm.Neg())
			h := ab.Cross(sub(fpThis, fpLast)) / cross
			e.forward = append(e.forward, add(fpThis, cd.Scale(-h)))
			e.backward = append(e.backward, p0)
		} else if cross < 0.0 {
			fpLast := add(p0, lastNorm)
			fpThis := add(p0, norm)
			h := ab.Cross(sub(fpThis, fpLast)) / cross
			e.backward = append(e.backward, add(fpThis, cd.Scale(-h)))
			e.forward = append(e.forward, p0)
		}
	}
	e.forward = append(e.forward, add(p0, norm.Neg()))
	e.backward = append(e.backward, add(p0, norm))
}

// applyRoundJoin sweeps an arc on the outer side from the previous normal
// to the current one.
func (e *Expander) applyRoundJoin(p0 Point, norm Vec2, cross, dot float64) {
	lastNorm := e.normal(e.lastTan)
	angle := math.Atan2(cross, dot)
	if angle > 0.0 {
		e.backward = append(e.backward, p0)
		e.backward = append(e.backward, add(p0, norm))
		e.forward = e.arc(e.forward, p0, lastNorm.Neg(), angle)
	} else {
		e.forward = append(e.forward, p0)
		e.forward = append(e.forward, add(p0, norm.Neg()))
		e.backward = e.arc(e.backward, p0, lastNorm, angle)
	}
}

// doLine extends both sides to p1.
func (e *Expander) doLine(tangent Vec2, p1 Point) {
	norm := e.normal(tangent)
	e.forward = append(e.forward, add(p1, norm.Neg()))
	e.backward = append(e.backward, add(p1, norm))
	e.lastPt = p1
	e.lastNorm = norm
}

// finish completes an open polyline with caps.
func (e *Expander) finish() {
	if len(e.forward) == 0 {
		return
	}
	out := make([]Point, 0, len(e.forward)+len(e.backward)+16)
	out = append(out, e.forward...)
	out = e.applyCap(out, e.lastPt, e.lastNorm.Neg())
	for i := len(e.backward) - 1; i >= 0; i-- {
		out = append(out, e.backward[i])
	}
	out = e.applyCap(out, e.startPt, e.startNorm)
	e.output = append(e.output, out)
}

// finishClosed completes a closed polyline as two loops.
func (e *Expander) finishClosed() {
	if len(e.forward) == 0 {
		return
	}
	e.doJoin(e.startTan)

	outer := append([]Point(nil), e.forward...)
	inner := make([]Point, 0, len(e.backward))
	for i := len(e.backward) - 1; i >= 0; i-- {
		inner = append(inner, e.backward[i])
	}
	e.output = append(e.output, outer, inner)
}

// applyCap appends the cap at center. norm points toward the side the
// outline is currently on; the cap ends on the opposite side.
func (e *Expander) applyCap(out []Point, center Point, norm Vec2) []Point {
	switch e.style.Cap {
	case CapRound:
		out = e.arc(out, center, norm, math.Pi)
	case CapSquare:
		ext := norm.Perp()
		out = append(out,
			add(add(center, norm), ext),
			add(add(center, norm.Neg()), ext),
		)
	}
	return out
}

// arc appends points on the circle around center, starting after the point
// center+from and sweeping by angle radians.
func (e *Expander) arc(out []Point, center Point, from Vec2, angle float64) []Point {
	n := arcDivisions(from.Length(), math.Abs(angle), e.tolerance)
	for i := 1; i <= n; i++ {
		v := from.Rotate(angle * float64(i) / float64(n))
		out = append(out, add(center, v))
	}
	return out
}

// arcDivisions returns how many chords approximate an arc of radius r and
// sweep angle within tol.
func arcDivisions(r, angle, tol float64) int {
	if r <= tol {
		return 2
	}
	da := math.Acos(r/(r+tol)) * 2.0
	n := int(math.Ceil(angle / da))
	if n < 2 {
		n = 2
	}
	return n
}
