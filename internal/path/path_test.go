package path

import (
	"math"
	"testing"
)

func TestFlattenCubicTolerance(t *testing.T) {
	const tol = 0.25

	curves := []struct {
		name           string
		p0, p1, p2, p3 Point
	}{
		{"s-curve", Point{0, 0}, Point{30, 100}, Point{70, -100}, Point{100, 0}},
		{"arch", Point{0, 0}, Point{0, 50}, Point{50, 50}, Point{50, 0}},
		{"cusp", Point{0, 0}, Point{100, 100}, Point{0, 100}, Point{100, 0}},
	}

	for _, c := range curves {
		for _, scale := range []float64{0.1, 1, 10, 200} {
			p0 := Point{c.p0.X * scale, c.p0.Y * scale}
			p1 := Point{c.p1.X * scale, c.p1.Y * scale}
			p2 := Point{c.p2.X * scale, c.p2.Y * scale}
			p3 := Point{c.p3.X * scale, c.p3.Y * scale}

			poly := []Point{p0}
			FlattenCubic(p0, p1, p2, p3, tol, func(p Point) { poly = append(poly, p) })

			if got := poly[len(poly)-1]; got.Sub(p3).Len() > 1e-9 {
				t.Fatalf("%s x%g: polyline ends at %v, want %v", c.name, scale, got, p3)
			}

			// Sample the true curve densely and measure the distance to the polyline.
			worst := 0.0
			for i := 0; i <= 2000; i++ {
				q := EvalCubic(p0, p1, p2, p3, float64(i)/2000)
				best := math.Inf(1)
				for j := 1; j < len(poly); j++ {
					best = math.Min(best, DistToSegment(q, poly[j-1], poly[j]))
				}
				worst = math.Max(worst, best)
			}
			if worst > tol {
				t.Errorf("%s x%g: max deviation %.4f exceeds tolerance %.2f", c.name, scale, worst, tol)
			}
		}
	}
}

func TestCubicSegmentsStraightLine(t *testing.T) {
	n := CubicSegments(Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{3, 0}, 0.25)
	if n != 1 {
		t.Errorf("segments for a straight cubic = %d, want 1", n)
	}
}

func TestFillPolygonsOrientation(t *testing.T) {
	p := New(0.25, 0.01)

	// Clockwise on screen (negative area) but tagged solid.
	p.MoveTo(Point{0, 0})
	p.LineTo(Point{10, 0})
	p.LineTo(Point{10, 10})
	p.LineTo(Point{0, 10})
	p.Close()

	// Counter-clockwise on screen (positive area) but tagged hole.
	p.MoveTo(Point{2, 2})
	p.LineTo(Point{2, 8})
	p.LineTo(Point{8, 8})
	p.LineTo(Point{8, 2})
	p.Close()
	p.SetWinding(Hole)

	polys := p.FillPolygons()
	if len(polys) != 2 {
		t.Fatalf("got %d polygons, want 2", len(polys))
	}
	solid := Subpath{Points: polys[0]}
	hole := Subpath{Points: polys[1]}
	if solid.Area() <= 0 {
		t.Errorf("solid area = %v, want > 0", solid.Area())
	}
	if hole.Area() >= 0 {
		t.Errorf("hole area = %v, want < 0", hole.Area())
	}

	// The path itself must not be modified.
	if p.Subpaths()[0].Area() >= 0 {
		t.Error("FillPolygons mutated the source subpath")
	}
}

func TestLineToMergesClosePoints(t *testing.T) {
	p := New(0.25, 0.01)
	p.MoveTo(Point{0, 0})
	p.LineTo(Point{0.001, 0})
	p.LineTo(Point{5, 0})
	if n := len(p.Subpaths()[0].Points); n != 2 {
		t.Errorf("points = %d, want 2", n)
	}
}

func TestLineToAfterClose(t *testing.T) {
	p := New(0.25, 0.01)
	p.MoveTo(Point{1, 1})
	p.LineTo(Point{5, 1})
	p.LineTo(Point{5, 5})
	p.Close()
	p.LineTo(Point{9, 9})

	sps := p.Subpaths()
	if len(sps) != 2 {
		t.Fatalf("subpaths = %d, want 2", len(sps))
	}
	want := []Point{{1, 1}, {9, 9}}
	got := sps[1].Points
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("second subpath = %v, want %v", got, want)
	}
}

func TestCurrentAndBounds(t *testing.T) {
	p := New(0.25, 0.01)
	if _, ok := p.Current(); ok {
		t.Error("empty path reports a current point")
	}
	p.MoveTo(Point{-1, 2})
	p.CubicTo(Point{0, 10}, Point{10, 10}, Point{10, 2})

	cur, ok := p.Current()
	if !ok || cur != (Point{10, 2}) {
		t.Errorf("Current = %v, %v, want (10,2), true", cur, ok)
	}
	minX, minY, maxX, maxY, ok := p.Bounds()
	if !ok || minX != -1 || minY != 2 || maxX != 10 || maxY < 7 || maxY > 8.001 {
		t.Errorf("Bounds = (%v,%v,%v,%v), unexpected", minX, minY, maxX, maxY)
	}
}
