package canvas

import (
	"fmt"

	"github.com/gogpu/canvas/internal/blend"
	texture "github.com/gogpu/canvas/internal/image"
	"github.com/gogpu/canvas/internal/path"
	"github.com/gogpu/canvas/internal/raster"
	"github.com/gogpu/canvas/internal/stroke"
)

// Fill fills the current path with the fill paint. The path is kept.
func (c *Context) Fill() error {
	if err := c.drawable(); err != nil {
		return err
	}
	st := c.state()
	rule := raster.FillRuleNonZero
	if st.fillRule == FillRuleEvenOdd {
		rule = raster.FillRuleEvenOdd
	}
	return c.paintPolygons(c.path.FillPolygons(), st.fill, rule, 1)
}

// Stroke outlines the current path with the stroke paint. The path is
// kept. Strokes thinner than a device pixel are drawn one pixel wide with
// their alpha scaled by the square of the width.
func (c *Context) Stroke() error {
	if err := c.drawable(); err != nil {
		return err
	}
	st := c.state()
	width := st.strokeWidth * c.deviceXform().AverageScale()
	alpha := 1.0
	if width < 1 {
		a := clampf(width, 0, 1)
		alpha = a * a
		width = 1
	}
	if alpha == 0 {
		return nil
	}

	c.stroker.SetStyle(stroke.Style{
		Width:      width,
		Cap:        st.lineCap.stroke(),
		Join:       st.lineJoin.stroke(),
		MiterLimit: st.miterLimit,
	})
	polys := c.stroker.ExpandAll(c.path.Subpaths())
	return c.paintPolygons(polys, st.stroke, raster.FillRuleNonZero, alpha)
}

// drawable reports why drawing is impossible, if it is.
func (c *Context) drawable() error {
	switch {
	case c.closed:
		return ErrClosed
	case !c.inFrame:
		return ErrNoFrame
	}
	return nil
}

// paintPolygons fills device-space polygons with a user-space paint.
func (c *Context) paintPolygons(polys [][]path.Point, p Paint, rule raster.FillRule, alpha float64) error {
	var tex *texture.Texture
	if p.Image != 0 {
		t, err := c.images.Get(p.Image)
		if err != nil {
			return fmt.Errorf("%w: paint image %d", ErrInvalidHandle, p.Image)
		}
		tex = t
	}
	st := c.state()
	toDevice := p.Xform.Multiply(TransformScale(c.ratio, c.ratio))
	sh := newShader(p, toDevice, tex, st.alpha*alpha)
	c.rasterize(polys, rule, &sh)
	return nil
}

// rasterize composites polygons shaded by sh into the frame, honoring the
// scissor, anti-aliasing flag and composite operation of the current state.
func (c *Context) rasterize(polys [][]path.Point, rule raster.FillRule, sh *shader) {
	if sh.empty || len(polys) == 0 {
		return
	}
	bounds, mask := c.clip()
	if bounds.Empty() {
		return
	}
	st := c.state()
	comp := st.composite

	c.raster.Reset(bounds)
	c.raster.AddPolygons(polys)
	c.raster.Rasterize(rule, st.antiAlias, func(y, x0 int, cov []float32) {
		py := float64(y) + 0.5
		if mask.enabled {
			for i := range cov {
				if cov[i] > 0 {
					cov[i] *= mask.at(float64(x0+i)+0.5, py)
				}
			}
		}
		dst := c.back.row(y, x0, len(cov))
		if sh.solid {
			comp.SpanSolid(dst, sh.color, cov)
			return
		}
		if cap(c.colors) < len(cov) {
			c.colors = make([]blend.Color, len(cov))
		}
		colors := c.colors[:len(cov)]
		for i := range cov {
			if cov[i] > 0 {
				colors[i] = sh.at(float64(x0+i)+0.5, py)
			}
		}
		comp.Span(dst, colors, cov)
	})
}
