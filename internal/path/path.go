// Package path accumulates drawing commands into flattened device-space
// subpaths.
//
// Every command arrives already transformed to device space. Curves are
// flattened immediately, so a Path only ever holds polylines. Because the
// flattening tolerance is expressed in device pixels, the chordal error of a
// curve stays below it at any zoom level.
package path

import "math"

// Point represents a 2D point in device space.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Lerp interpolates between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Len returns the distance of p from the origin.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Equals reports whether p and q are within tol of each other.
func (p Point) Equals(q Point, tol float64) bool {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return dx*dx+dy*dy < tol*tol
}

// Winding tags a subpath as solid or as a hole.
type Winding int

const (
	// Solid subpaths are normalized to positive signed area.
	Solid Winding = 1
	// Hole subpaths are normalized to negative signed area.
	Hole Winding = 2
)

// Subpath is one polyline of a Path.
type Subpath struct {
	Points  []Point
	Closed  bool
	Winding Winding
}

// Area returns the signed area of the subpath polygon.
// Solid (counter-clockwise on screen) polygons have positive area.
func (s *Subpath) Area() float64 {
	pts := s.Points
	area := 0.0
	for i := 2; i < len(pts); i++ {
		a, b, c := pts[0], pts[i-1], pts[i]
		area += (c.X-a.X)*(b.Y-a.Y) - (b.X-a.X)*(c.Y-a.Y)
	}
	return area * 0.5
}

// Reverse reverses the point order in place.
func (s *Subpath) Reverse() {
	for i, j := 0, len(s.Points)-1; i < j; i, j = i+1, j-1 {
		s.Points[i], s.Points[j] = s.Points[j], s.Points[i]
	}
}

// Path is a sequence of flattened subpaths.
// The zero value is not usable; call New.
type Path struct {
	subpaths []Subpath

	// Tolerance is the maximum chordal error of flattened curves, in device pixels.
	tolerance float64
	// distTol merges points closer than this.
	distTol float64
}

// New creates an empty path with the given flattening and point-merge tolerances.
func New(tolerance, distTol float64) *Path {
	p := &Path{}
	p.SetTolerance(tolerance, distTol)
	return p
}

// SetTolerance updates the flattening and point-merge tolerances.
// Non-positive values are ignored.
func (p *Path) SetTolerance(tolerance, distTol float64) {
	if tolerance > 0 {
		p.tolerance = tolerance
	}
	if distTol > 0 {
		p.distTol = distTol
	}
}

// Tolerance returns the flattening tolerance in device pixels.
func (p *Path) Tolerance() float64 {
	return p.tolerance
}

// Reset discards every subpath.
func (p *Path) Reset() {
	p.subpaths = p.subpaths[:0]
}

// Subpaths returns the accumulated subpaths. The slice is owned by the path.
func (p *Path) Subpaths() []Subpath {
	return p.subpaths
}

// Empty reports whether the path has no points.
func (p *Path) Empty() bool {
	for i := range p.subpaths {
		if len(p.subpaths[i].Points) > 0 {
			return false
		}
	}
	return true
}

func (p *Path) last() *Subpath {
	if len(p.subpaths) == 0 {
		return nil
	}
	return &p.subpaths[len(p.subpaths)-1]
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt Point) {
	p.subpaths = append(p.subpaths, Subpath{
		Points:  []Point{pt},
		Winding: Solid,
	})
}

// LineTo appends pt to the current subpath, starting one if needed.
// Points within the merge tolerance of the previous point are dropped.
func (p *Path) LineTo(pt Point) {
	sp := p.last()
	if sp == nil || sp.Closed {
		start := pt
		if sp != nil && len(sp.Points) > 0 {
			start = sp.Points[0]
		}
		p.MoveTo(start)
		sp = p.last()
	}
	if n := len(sp.Points); n > 0 && sp.Points[n-1].Equals(pt, p.distTol) {
		return
	}
	sp.Points = append(sp.Points, pt)
}

// CubicTo flattens the cubic Bézier from the current point and appends it.
func (p *Path) CubicTo(c1, c2, end Point) {
	start, ok := p.Current()
	if !ok {
		p.MoveTo(end)
		return
	}
	FlattenCubic(start, c1, c2, end, p.tolerance, p.LineTo)
}

// QuadTo flattens the quadratic Bézier from the current point and appends it.
func (p *Path) QuadTo(c, end Point) {
	start, ok := p.Current()
	if !ok {
		p.MoveTo(end)
		return
	}
	FlattenQuad(start, c, end, p.tolerance, p.LineTo)
}

// Close marks the current subpath closed.
func (p *Path) Close() {
	if sp := p.last(); sp != nil {
		sp.Closed = true
	}
}

// SetWinding tags the current subpath.
func (p *Path) SetWinding(w Winding) {
	if sp := p.last(); sp != nil {
		sp.Winding = w
	}
}

// Current returns the last point of the path.
func (p *Path) Current() (Point, bool) {
	sp := p.last()
	if sp == nil || len(sp.Points) == 0 {
		return Point{}, false
	}
	if sp.Closed {
		return sp.Points[0], true
	}
	return sp.Points[len(sp.Points)-1], true
}

// Bounds returns the bounding box of all points.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for i := range p.subpaths {
		for _, pt := range p.subpaths[i].Points {
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
			ok = true
		}
	}
	return minX, minY, maxX, maxY, ok
}

// FillPolygons returns the subpaths as closed polygons ready for filling.
// Subpaths with fewer than three points are skipped. Each polygon is
// reoriented to match its winding tag, so holes cancel solids under the
// nonzero rule. The returned polygons share no memory with the path.
func (p *Path) FillPolygons() [][]Point {
	polys := make([][]Point, 0, len(p.subpaths))
	for i := range p.subpaths {
		sp := p.subpaths[i]
		pts := sp.Points
		if n := len(pts); n > 1 && pts[0].Equals(pts[n-1], p.distTol) {
			pts = pts[:n-1]
		}
		if len(pts) < 3 {
			continue
		}
		poly := Subpath{Points: append([]Point(nil), pts...), Winding: sp.Winding}
		area := poly.Area()
		if (sp.Winding == Solid && area < 0) || (sp.Winding == Hole && area > 0) {
			poly.Reverse()
		}
		polys = append(polys, poly.Points)
	}
	return polys
}
