package canvas

import (
	"fmt"
	"math"
)

// Transform is a 2D affine transformation [a, b, c, d, e, f] mapping
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type Transform [6]float64

// singularEpsilon is the smallest determinant Inverse accepts.
const singularEpsilon = 1e-6

// TransformIdentity returns the identity transformation.
func TransformIdentity() Transform {
	return Transform{1, 0, 0, 1, 0, 0}
}

// TransformTranslate returns a translation.
func TransformTranslate(tx, ty float64) Transform {
	return Transform{1, 0, 0, 1, tx, ty}
}

// TransformScale returns a scale.
func TransformScale(sx, sy float64) Transform {
	return Transform{sx, 0, 0, sy, 0, 0}
}

// TransformRotate returns a rotation by a radians.
func TransformRotate(a float64) Transform {
	sin, cos := math.Sincos(a)
	return Transform{cos, sin, -sin, cos, 0, 0}
}

// TransformSkewX returns a skew along the x axis by a radians.
func TransformSkewX(a float64) Transform {
	return Transform{1, 0, math.Tan(a), 1, 0, 0}
}

// TransformSkewY returns a skew along the y axis by a radians.
func TransformSkewY(a float64) Transform {
	return Transform{1, math.Tan(a), 0, 1, 0, 0}
}

// Multiply returns t*s: the transformation applying t first, then s.
func (t Transform) Multiply(s Transform) Transform {
	return Transform{
		t[0]*s[0] + t[1]*s[2],
		t[0]*s[1] + t[1]*s[3],
		t[2]*s[0] + t[3]*s[2],
		t[2]*s[1] + t[3]*s[3],
		t[4]*s[0] + t[5]*s[2] + s[4],
		t[4]*s[1] + t[5]*s[3] + s[5],
	}
}

// Premultiply returns s*t: the transformation applying s first, then t.
func (t Transform) Premultiply(s Transform) Transform {
	return s.Multiply(t)
}

// Inverse returns the inverse of t. It fails with ErrSingularTransform when
// t is not invertible, in which case the identity is returned.
func (t Transform) Inverse() (Transform, error) {
	det := t[0]*t[3] - t[2]*t[1]
	if math.Abs(det) < singularEpsilon {
		return TransformIdentity(), fmt.Errorf("%w: determinant %g", ErrSingularTransform, det)
	}
	inv := 1 / det
	return Transform{
		t[3] * inv,
		-t[1] * inv,
		-t[2] * inv,
		t[0] * inv,
		(t[2]*t[5] - t[3]*t[4]) * inv,
		(t[1]*t[4] - t[0]*t[5]) * inv,
	}, nil
}

// Apply transforms the point (x, y).
func (t Transform) Apply(x, y float64) (float64, float64) {
	return x*t[0] + y*t[2] + t[4], x*t[1] + y*t[3] + t[5]
}

// ApplyVector transforms the vector (x, y), ignoring translation.
func (t Transform) ApplyVector(x, y float64) (float64, float64) {
	return x*t[0] + y*t[2], x*t[1] + y*t[3]
}

// AverageScale returns the mean of the lengths of the transformed unit
// vectors. Stroke widths and font sizes are scaled by it.
func (t Transform) AverageScale() float64 {
	sx := math.Sqrt(t[0]*t[0] + t[2]*t[2])
	sy := math.Sqrt(t[1]*t[1] + t[3]*t[3])
	return (sx + sy) * 0.5
}

// IsIdentity reports whether t is exactly the identity.
func (t Transform) IsIdentity() bool {
	return t == TransformIdentity()
}

// IsAxisAligned reports whether t maps axis-aligned rectangles to
// axis-aligned rectangles without swapping axes.
func (t Transform) IsAxisAligned() bool {
	return t[1] == 0 && t[2] == 0
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg / 180 * math.Pi
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad / math.Pi * 180
}
