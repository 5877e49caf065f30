package canvas

import (
	"math"

	"github.com/gogpu/canvas/internal/path"
)

// kappa90 is the control point distance of a cubic quarter circle.
const kappa90 = 0.5522847493

// BeginPath clears the current path.
func (c *Context) BeginPath() {
	c.path.Reset()
}

// device maps a user-space point to device pixels.
func (c *Context) device(x, y float64) path.Point {
	px, py := c.deviceXform().Apply(x, y)
	return path.Point{X: px, Y: py}
}

// currentPoint returns the path's current point in user space.
func (c *Context) currentPoint() (x, y float64, ok bool) {
	p, ok := c.path.Current()
	if !ok {
		return 0, 0, false
	}
	inv, err := c.deviceXform().Inverse()
	if err != nil {
		return 0, 0, false
	}
	x, y = inv.Apply(p.X, p.Y)
	return x, y, true
}

// MoveTo starts a new subpath at (x, y).
func (c *Context) MoveTo(x, y float64) {
	c.path.MoveTo(c.device(x, y))
}

// LineTo adds a line segment from the current point to (x, y).
func (c *Context) LineTo(x, y float64) {
	c.path.LineTo(c.device(x, y))
}

// BezierTo adds a cubic Bézier segment from the current point to (x, y)
// with control points (c1x, c1y) and (c2x, c2y).
func (c *Context) BezierTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.CubicTo(c.device(c1x, c1y), c.device(c2x, c2y), c.device(x, y))
}

// QuadTo adds a quadratic Bézier segment from the current point to (x, y)
// with control point (cx, cy).
func (c *Context) QuadTo(cx, cy, x, y float64) {
	c.path.QuadTo(c.device(cx, cy), c.device(x, y))
}

// ArcTo adds an arc of the given radius tangent to the lines from the
// current point to (x1, y1) and from (x1, y1) to (x2, y2), joined to the
// current point by a straight line. Degenerate input adds a line to
// (x1, y1) instead.
func (c *Context) ArcTo(x1, y1, x2, y2, radius float64) {
	x0, y0, ok := c.currentPoint()
	if !ok {
		return
	}
	p0, p1, p2 := path.Point{X: x0, Y: y0}, path.Point{X: x1, Y: y1}, path.Point{X: x2, Y: y2}
	tol := distTolerance / math.Max(c.deviceXform().AverageScale(), 1e-6)
	if p0.Equals(p1, tol) || p1.Equals(p2, tol) || path.DistToSegment(p1, p0, p2) < tol || radius < tol {
		c.LineTo(x1, y1)
		return
	}

	dx0, dy0 := normalize(x0-x1, y0-y1)
	dx1, dy1 := normalize(x2-x1, y2-y1)
	a := math.Acos(clampf(dx0*dx1+dy0*dy1, -1, 1))
	d := radius / math.Tan(a/2)
	if d > 10000 {
		c.LineTo(x1, y1)
		return
	}

	var cx, cy, a0, a1 float64
	var dir Winding
	if dx1*dy0-dx0*dy1 > 0 {
		cx = x1 + dx0*d + dy0*radius
		cy = y1 + dy0*d - dx0*radius
		a0 = math.Atan2(dx0, -dy0)
		a1 = math.Atan2(-dx1, dy1)
		dir = CW
	} else {
		cx = x1 + dx0*d - dy0*radius
		cy = y1 + dy0*d + dx0*radius
		a0 = math.Atan2(-dx0, dy0)
		a1 = math.Atan2(dx1, -dy1)
		dir = CCW
	}
	c.Arc(cx, cy, radius, a0, a1, dir)
}

func normalize(x, y float64) (float64, float64) {
	d := math.Hypot(x, y)
	if d > 1e-6 {
		return x / d, y / d
	}
	return x, y
}

// ClosePath closes the current subpath with a line to its start.
func (c *Context) ClosePath() {
	c.path.Close()
}

// PathWinding sets the winding of the current subpath. Solid subpaths
// are filled, holes are cut out of them.
func (c *Context) PathWinding(dir Winding) {
	if dir == Hole {
		c.path.SetWinding(path.Hole)
	} else {
		c.path.SetWinding(path.Solid)
	}
}

// Arc adds a circular arc centered at (cx, cy) from angle a0 to a1
// (radians), sweeping in direction dir. With a current point the arc is
// connected to it by a line; otherwise it starts a new subpath.
func (c *Context) Arc(cx, cy, r, a0, a1 float64, dir Winding) {
	_, hasCurrent := c.path.Current()

	da := a1 - a0
	if dir == CW {
		if math.Abs(da) >= 2*math.Pi {
			da = 2 * math.Pi
		} else {
			for da < 0 {
				da += 2 * math.Pi
			}
		}
	} else {
		if math.Abs(da) >= 2*math.Pi {
			da = -2 * math.Pi
		} else {
			for da > 0 {
				da -= 2 * math.Pi
			}
		}
	}

	// At most a quarter circle per cubic.
	ndivs := max(1, min(int(math.Abs(da)/(math.Pi*0.5)+0.5), 5))
	hda := da / float64(ndivs) / 2
	kappa := 0.0
	if hda != 0 {
		kappa = math.Abs(4.0 / 3.0 * (1 - math.Cos(hda)) / math.Sin(hda))
	}
	if dir == CCW {
		kappa = -kappa
	}

	var px, py, ptanx, ptany float64
	for i := 0; i <= ndivs; i++ {
		a := a0 + da*(float64(i)/float64(ndivs))
		sin, cos := math.Sincos(a)
		x, y := cx+cos*r, cy+sin*r
		tanx, tany := -sin*r*kappa, cos*r*kappa
		switch {
		case i > 0:
			c.BezierTo(px+ptanx, py+ptany, x-tanx, y-tany, x, y)
		case hasCurrent:
			c.LineTo(x, y)
		default:
			c.MoveTo(x, y)
		}
		px, py, ptanx, ptany = x, y, tanx, tany
	}
}

// Rect adds a closed rectangle subpath.
func (c *Context) Rect(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x, y+h)
	c.LineTo(x+w, y+h)
	c.LineTo(x+w, y)
	c.ClosePath()
}

// RoundedRect adds a closed rectangle subpath with rounded corners.
func (c *Context) RoundedRect(x, y, w, h, r float64) {
	c.RoundedRectVarying(x, y, w, h, r, r, r, r)
}

// RoundedRectVarying adds a closed rectangle subpath with a separate
// radius for each corner. Radii are limited to half the rectangle size.
func (c *Context) RoundedRectVarying(x, y, w, h, radTopLeft, radTopRight, radBottomRight, radBottomLeft float64) {
	if radTopLeft < 0.1 && radTopRight < 0.1 && radBottomRight < 0.1 && radBottomLeft < 0.1 {
		c.Rect(x, y, w, h)
		return
	}
	halfw, halfh := math.Abs(w)*0.5, math.Abs(h)*0.5
	sw, sh := sign(w), sign(h)
	rxBL, ryBL := math.Min(radBottomLeft, halfw)*sw, math.Min(radBottomLeft, halfh)*sh
	rxBR, ryBR := math.Min(radBottomRight, halfw)*sw, math.Min(radBottomRight, halfh)*sh
	rxTR, ryTR := math.Min(radTopRight, halfw)*sw, math.Min(radTopRight, halfh)*sh
	rxTL, ryTL := math.Min(radTopLeft, halfw)*sw, math.Min(radTopLeft, halfh)*sh
	const k = 1 - kappa90

	c.MoveTo(x, y+ryTL)
	c.LineTo(x, y+h-ryBL)
	c.BezierTo(x, y+h-ryBL*k, x+rxBL*k, y+h, x+rxBL, y+h)
	c.LineTo(x+w-rxBR, y+h)
	c.BezierTo(x+w-rxBR*k, y+h, x+w, y+h-ryBR*k, x+w, y+h-ryBR)
	c.LineTo(x+w, y+ryTR)
	c.BezierTo(x+w, y+ryTR*k, x+w-rxTR*k, y, x+w-rxTR, y)
	c.LineTo(x+rxTL, y)
	c.BezierTo(x+rxTL*k, y, x, y+ryTL*k, x, y+ryTL)
	c.ClosePath()
}

func sign(v float64) float64 {
	if v >= 0 {
		return 1
	}
	return -1
}

// Ellipse adds a closed ellipse subpath.
func (c *Context) Ellipse(cx, cy, rx, ry float64) {
	c.MoveTo(cx-rx, cy)
	c.BezierTo(cx-rx, cy+ry*kappa90, cx-rx*kappa90, cy+ry, cx, cy+ry)
	c.BezierTo(cx+rx*kappa90, cy+ry, cx+rx, cy+ry*kappa90, cx+rx, cy)
	c.BezierTo(cx+rx, cy-ry*kappa90, cx+rx*kappa90, cy-ry, cx, cy-ry)
	c.BezierTo(cx-rx*kappa90, cy-ry, cx-rx, cy-ry*kappa90, cx-rx, cy)
	c.ClosePath()
}

// Circle adds a closed circle subpath.
func (c *Context) Circle(cx, cy, r float64) {
	c.Ellipse(cx, cy, r, r)
}
