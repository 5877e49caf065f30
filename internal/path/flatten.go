package path

import "math"

// maxSegments bounds the subdivision of a single curve.
const maxSegments = 1024

// FlattenCubic flattens the cubic Bézier p0..p3 and calls emit with every
// point after p0. The segment count follows Wang's formula, which bounds the
// distance between the curve and its polyline by tol.
func FlattenCubic(p0, p1, p2, p3 Point, tol float64, emit func(Point)) {
	n := CubicSegments(p0, p1, p2, p3, tol)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		emit(EvalCubic(p0, p1, p2, p3, t))
	}
}

// FlattenQuad flattens the quadratic Bézier p0..p2.
func FlattenQuad(p0, p1, p2 Point, tol float64, emit func(Point)) {
	c1 := p0.Lerp(p1, 2.0/3.0)
	c2 := p2.Lerp(p1, 2.0/3.0)
	FlattenCubic(p0, c1, c2, p2, tol, emit)
}

// CubicSegments returns the number of line segments needed to keep the
// chordal error of the cubic below tol.
func CubicSegments(p0, p1, p2, p3 Point, tol float64) int {
	d1 := Point{X: p0.X - 2*p1.X + p2.X, Y: p0.Y - 2*p1.Y + p2.Y}
	d2 := Point{X: p1.X - 2*p2.X + p3.X, Y: p1.Y - 2*p2.Y + p3.Y}
	m := math.Max(d1.Len(), d2.Len())
	if m == 0 || tol <= 0 {
		return 1
	}
	n := math.Ceil(math.Sqrt(3 * m / (4 * tol)))
	switch {
	case math.IsNaN(n) || n < 1:
		return 1
	case n > maxSegments:
		return maxSegments
	}
	return int(n)
}

// EvalCubic evaluates the cubic Bézier at t.
func EvalCubic(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// DistToSegment returns the distance from p to the segment a-b.
func DistToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 < 1e-20 {
		return p.Sub(a).Len()
	}
	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / l2
	t = math.Max(0, math.Min(1, t))
	return p.Sub(a.Lerp(b, t)).Len()
}
