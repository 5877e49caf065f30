// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"math"

	"github.com/gogpu/canvas/internal/path"
)

// Point is a device-space point.
type Point = path.Point

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// SpanFunc receives the coverage of one row. cov[i] is the coverage of
// pixel (x0+i, y), in [0, 1]. The slice is reused after the call returns.
type SpanFunc func(y, x0 int, cov []float32)

type edge struct {
	x0, y0, x1, y1 float64
}

// Rasterizer accumulates polygon edges and produces coverage spans.
// A Rasterizer can be reused after Reset; it is not safe for concurrent use.
type Rasterizer struct {
	clip  image.Rectangle
	edges []edge

	minX, minY float64
	maxX, maxY float64

	acc []float32
	cov []float32
}

// NewRasterizer creates a rasterizer clipped to clip.
func NewRasterizer(clip image.Rectangle) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset discards all edges and sets a new clip rectangle.
func (r *Rasterizer) Reset(clip image.Rectangle) {
	r.clip = clip.Canon()
	r.edges = r.edges[:0]
	r.minX, r.minY = math.Inf(1), math.Inf(1)
	r.maxX, r.maxY = math.Inf(-1), math.Inf(-1)
}

// Clip returns the clip rectangle.
func (r *Rasterizer) Clip() image.Rectangle {
	return r.clip
}

// AddPolygon adds a closed polygon. The last point connects back to the
// first. Polygons with fewer than 3 points are ignored.
func (r *Rasterizer) AddPolygon(pts []Point) {
	n := len(pts)
	if n < 3 {
		return
	}
	for i := range pts {
		r.addEdge(pts[i], pts[(i+1)%n])
	}
}

// AddPolygons adds several closed polygons.
func (r *Rasterizer) AddPolygons(polys [][]Point) {
	for _, p := range polys {
		r.AddPolygon(p)
	}
}

func (r *Rasterizer) addEdge(a, b Point) {
	if a.Y == b.Y {
		return
	}
	if math.IsNaN(a.X) || math.IsNaN(a.Y) || math.IsNaN(b.X) || math.IsNaN(b.Y) {
		return
	}
	r.minX = math.Min(r.minX, math.Min(a.X, b.X))
	r.maxX = math.Max(r.maxX, math.Max(a.X, b.X))
	r.minY = math.Min(r.minY, math.Min(a.Y, b.Y))
	r.maxY = math.Max(r.maxY, math.Max(a.Y, b.Y))
	r.edges = append(r.edges, edge{x0: a.X, y0: a.Y, x1: b.X, y1: b.Y})
}

// Bounds returns the pixel rectangle that can receive coverage: the bounding
// box of all edges intersected with the clip.
func (r *Rasterizer) Bounds() image.Rectangle {
	if len(r.edges) == 0 {
		return image.Rectangle{}
	}
	b := image.Rectangle{
		Min: image.Pt(int(math.Floor(r.minX)), int(math.Floor(r.minY))),
		Max: image.Pt(int(math.Ceil(r.maxX)), int(math.Ceil(r.maxY))),
	}
	return b.Intersect(r.clip)
}

// Rasterize computes coverage for all added polygons and calls span for
// every row with non-zero coverage. Without antialiasing, coverage is
// thresholded at one half.
func (r *Rasterizer) Rasterize(rule FillRule, antiAlias bool, span SpanFunc) {
	b := r.Bounds()
	if b.Empty() {
		return
	}
	w, h := b.Dx(), b.Dy()
	stride := w + 2

	n := stride * h
	if cap(r.acc) < n {
		r.acc = make([]float32, n)
	} else {
		r.acc = r.acc[:n]
		clear(r.acc)
	}
	if cap(r.cov) < w {
		r.cov = make([]float32, w)
	}
	cov := r.cov[:w]

	ox, oy := float64(b.Min.X), float64(b.Min.Y)
	for _, e := range r.edges {
		r.accumulate(e.x0-ox, e.y0-oy, e.x1-ox, e.y1-oy, w, h, stride)
	}

	for y := range h {
		row := r.acc[y*stride : y*stride+stride]
		var sum float32
		first, last := -1, -1
		for x := range w {
			sum += row[x]
			c := coverage(sum, rule)
			if !antiAlias {
				if c >= 0.5 {
					c = 1
				} else {
					c = 0
				}
			}
			cov[x] = c
			if c > 0 {
				if first < 0 {
					first = x
				}
				last = x
			}
		}
		if first >= 0 {
			span(b.Min.Y+y, b.Min.X+first, cov[first:last+1])
		}
	}
}

func coverage(acc float32, rule FillRule) float32 {
	a := acc
	if a < 0 {
		a = -a
	}
	if rule == FillRuleEvenOdd {
		a = float32(math.Mod(float64(a), 2))
		if a > 1 {
			a = 2 - a
		}
		return a
	}
	if a > 1 {
		return 1
	}
	return a
}

// accumulate splits the edge at the left and right window borders so that
// each piece lies on one side, clamps x into [0, w] and deposits the pieces.
func (r *Rasterizer) accumulate(x0, y0, x1, y1 float64, w, h, stride int) {
	var ts [4]float64
	n := 1
	for _, bx := range [2]float64{0, float64(w)} {
		if (x0 < bx) != (x1 < bx) {
			if t := (bx - x0) / (x1 - x0); t > 0 && t < 1 {
				ts[n] = t
				n++
			}
		}
	}
	if n == 3 && ts[1] > ts[2] {
		ts[1], ts[2] = ts[2], ts[1]
	}
	ts[n] = 1
	n++

	fw := float64(w)
	for i := 0; i < n-1; i++ {
		ta, tb := ts[i], ts[i+1]
		ax := clamp(x0+(x1-x0)*ta, 0, fw)
		ay := y0 + (y1-y0)*ta
		bx := clamp(x0+(x1-x0)*tb, 0, fw)
		by := y0 + (y1-y0)*tb
		r.line(ax, ay, bx, by, h, stride)
	}
}

// line deposits the signed area of one edge piece into the accumulator.
func (r *Rasterizer) line(x0, y0, x1, y1 float64, h, stride int) {
	if y0 == y1 {
		return
	}
	dir := float32(1)
	if y0 > y1 {
		dir = -1
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	if y1 <= 0 || y0 >= float64(h) {
		return
	}
	dxdy := (x1 - x0) / (y1 - y0)
	x := x0
	if y0 < 0 {
		x -= y0 * dxdy
		y0 = 0
	}
	yEnd := min(h, int(math.Ceil(y1)))

	for y := int(y0); y < yEnd; y++ {
		line := r.acc[y*stride : y*stride+stride]
		dy := math.Min(float64(y+1), y1) - math.Max(float64(y), y0)
		xnext := x + dxdy*dy
		d := float32(dy) * dir

		xa, xb := x, xnext
		if xa > xb {
			xa, xb = xb, xa
		}
		xaFloor := math.Floor(xa)
		xai := int(xaFloor)
		xbi := int(math.Ceil(xb))

		if xbi <= xai+1 {
			// The piece stays within one pixel column.
			xmf := float32(0.5*(x+xnext) - xaFloor)
			line[xai] += d - d*xmf
			line[xai+1] += d * xmf
		} else {
			s := float32(1 / (xb - xa))
			xaf := float32(xa - xaFloor)
			a0 := 0.5 * s * (1 - xaf) * (1 - xaf)
			xbf := float32(xb - float64(xbi) + 1)
			am := 0.5 * s * xbf * xbf
			line[xai] += d * a0
			if xbi == xai+2 {
				line[xai+1] += d * (1 - a0 - am)
			} else {
				a1 := s * (1.5 - xaf)
				line[xai+1] += d * (a1 - a0)
				for xi := xai + 2; xi < xbi-1; xi++ {
					line[xi] += d * s
				}
				a2 := a1 + float32(xbi-xai-3)*s
				line[xbi-1] += d * (1 - a2 - am)
			}
			line[xbi] += d * am
		}
		x = xnext
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
