package canvas

import "math"

// Paint describes how a fill or stroke is colored.
//
// Without an image, the color blends from InnerColor to OuterColor by the
// signed distance to a rounded rectangle of half-size Extent and corner
// Radius centered at the origin of paint space, softened over Feather
// units. With an image, the image is mapped onto [0, Extent] of paint space
// and tinted by InnerColor.
//
// Xform maps paint space to user space. FillPaint and StrokePaint
// concatenate it with the current transform.
type Paint struct {
	Xform      Transform
	Extent     [2]float64
	Radius     float64
	Feather    float64
	InnerColor Color
	OuterColor Color
	Image      int
}

// largeExtent stands in for an unbounded gradient axis.
const largeExtent = 1e5

// ColorPaint returns a paint of uniform color.
func ColorPaint(c Color) Paint {
	return Paint{
		Xform:      TransformIdentity(),
		Feather:    1,
		InnerColor: c,
		OuterColor: c,
	}
}

// LinearGradient returns a gradient from icol at (sx, sy) to ocol at
// (ex, ey). Outside the segment the end colors extend indefinitely.
func LinearGradient(sx, sy, ex, ey float64, icol, ocol Color) Paint {
	dx, dy := ex-sx, ey-sy
	d := math.Hypot(dx, dy)
	if d > 0.0001 {
		dx /= d
		dy /= d
	} else {
		dx, dy = 0, 1
	}
	return Paint{
		Xform:      Transform{dy, -dx, dx, dy, sx - dx*largeExtent, sy - dy*largeExtent},
		Extent:     [2]float64{largeExtent, largeExtent + d*0.5},
		Feather:    math.Max(1, d),
		InnerColor: icol,
		OuterColor: ocol,
	}
}

// BoxGradient returns a feathered rounded rectangle gradient, useful for
// drop shadows. (x, y, w, h) is the rectangle, r the corner radius and f
// how blurry the border is. icol fills the inside, ocol the outside.
func BoxGradient(x, y, w, h, r, f float64, icol, ocol Color) Paint {
	return Paint{
		Xform:      TransformTranslate(x+w*0.5, y+h*0.5),
		Extent:     [2]float64{w * 0.5, h * 0.5},
		Radius:     r,
		Feather:    math.Max(1, f),
		InnerColor: icol,
		OuterColor: ocol,
	}
}

// RadialGradient returns a gradient centered at (cx, cy) blending icol at
// radius inr to ocol at radius outr.
func RadialGradient(cx, cy, inr, outr float64, icol, ocol Color) Paint {
	r := (inr + outr) * 0.5
	return Paint{
		Xform:      TransformTranslate(cx, cy),
		Extent:     [2]float64{r, r},
		Radius:     r,
		Feather:    math.Max(1, outr-inr),
		InnerColor: icol,
		OuterColor: ocol,
	}
}

// ImagePattern returns a paint repeating image over an ex×ey tile whose
// top-left corner is at (ox, oy), rotated by angle radians around it.
// alpha scales the image's opacity.
func ImagePattern(ox, oy, ex, ey, angle float64, image int, alpha float64) Paint {
	xf := TransformRotate(angle)
	xf[4], xf[5] = ox, oy
	white := RGBAf(1, 1, 1, alpha)
	return Paint{
		Xform:      xf,
		Extent:     [2]float64{ex, ey},
		Image:      image,
		InnerColor: white,
		OuterColor: white,
	}
}

// LinearGradient is the Context form of the package-level LinearGradient.
func (c *Context) LinearGradient(sx, sy, ex, ey float64, icol, ocol Color) Paint {
	return LinearGradient(sx, sy, ex, ey, icol, ocol)
}

// BoxGradient is the Context form of the package-level BoxGradient.
func (c *Context) BoxGradient(x, y, w, h, r, f float64, icol, ocol Color) Paint {
	return BoxGradient(x, y, w, h, r, f, icol, ocol)
}

// RadialGradient is the Context form of the package-level RadialGradient.
func (c *Context) RadialGradient(cx, cy, inr, outr float64, icol, ocol Color) Paint {
	return RadialGradient(cx, cy, inr, outr, icol, ocol)
}

// ImagePattern is the Context form of the package-level ImagePattern.
func (c *Context) ImagePattern(ox, oy, ex, ey, angle float64, image int, alpha float64) Paint {
	return ImagePattern(ox, oy, ex, ey, angle, image, alpha)
}
