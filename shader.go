package canvas

import (
	"math"

	"github.com/gogpu/canvas/internal/blend"
	texture "github.com/gogpu/canvas/internal/image"
)

// shader evaluates a paint at device pixel centers.
type shader struct {
	empty bool // nothing visible
	solid bool // uniform color, see color

	color        blend.Color
	inner, outer blend.Color
	inv          Transform // device pixels to paint space
	extent       [2]float64
	radius       float64
	feather      float64

	tex *texture.Texture
	tpp float64 // texels per device pixel
}

// newShader prepares p for evaluation. toDevice maps paint space to device
// pixels and alpha scales both colors.
func newShader(p Paint, toDevice Transform, tex *texture.Texture, alpha float64) shader {
	inner := p.InnerColor
	outer := p.OuterColor
	inner.A *= alpha
	outer.A *= alpha
	s := shader{
		inner:   inner.premultiplied(),
		outer:   outer.premultiplied(),
		extent:  p.Extent,
		radius:  p.Radius,
		feather: p.Feather,
		tex:     tex,
	}

	if tex == nil && s.inner == s.outer {
		s.solid = true
		s.color = s.inner
		s.empty = s.color.A == 0
		return s
	}

	inv, err := toDevice.Inverse()
	if err != nil {
		s.empty = true
		return s
	}
	s.inv = inv
	if tex != nil {
		if p.Extent[0] <= 0 || p.Extent[1] <= 0 || s.inner.A == 0 {
			s.empty = true
			return s
		}
		tw, _ := tex.Size()
		if scale := toDevice.AverageScale(); scale > 0 {
			s.tpp = float64(tw) / p.Extent[0] / scale
		}
	}
	if s.feather <= 0 {
		s.feather = 1
	}
	return s
}

// at returns the premultiplied paint color at device position (x, y).
func (s *shader) at(x, y float64) blend.Color {
	if s.solid {
		return s.color
	}
	px, py := s.inv.Apply(x, y)
	if s.tex != nil {
		r, g, b, a := s.tex.Sample(px/s.extent[0], py/s.extent[1], s.tpp)
		return blend.Color{
			R: r * s.inner.R,
			G: g * s.inner.G,
			B: b * s.inner.B,
			A: a * s.inner.A,
		}
	}
	d := clampf((roundRectDist(px, py, s.extent[0], s.extent[1], s.radius)+s.feather*0.5)/s.feather, 0, 1)
	t := float32(d)
	return blend.Color{
		R: s.inner.R + (s.outer.R-s.inner.R)*t,
		G: s.inner.G + (s.outer.G-s.inner.G)*t,
		B: s.inner.B + (s.outer.B-s.inner.B)*t,
		A: s.inner.A + (s.outer.A-s.inner.A)*t,
	}
}

// roundRectDist returns the signed distance from (x, y) to a rounded
// rectangle of half-size (ex, ey) and corner radius r centered at the
// origin. It is negative inside.
func roundRectDist(x, y, ex, ey, r float64) float64 {
	dx := math.Abs(x) - (ex - r)
	dy := math.Abs(y) - (ey - r)
	return math.Min(math.Max(dx, dy), 0) + math.Hypot(math.Max(dx, 0), math.Max(dy, 0)) - r
}
