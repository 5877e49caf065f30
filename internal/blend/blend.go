// Package blend implements factor-based compositing of premultiplied colors.
//
// A composite operation is expressed as four blend factors, one pair for
// the color channels and one for alpha:
//
//	out.rgb = src.rgb*SrcRGB + dst.rgb*DstRGB
//	out.a   = src.a*SrcAlpha + dst.a*DstAlpha
//
// The Porter-Duff operators map onto fixed factor combinations (see OpState).
// Partial coverage interpolates between the destination and the blended
// result, so pixels outside a shape are never touched.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Color is a premultiplied RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Factor is a blend factor.
type Factor uint8

const (
	FactorZero Factor = iota
	FactorOne
	FactorSrcColor
	FactorOneMinusSrcColor
	FactorDstColor
	FactorOneMinusDstColor
	FactorSrcAlpha
	FactorOneMinusSrcAlpha
	FactorDstAlpha
	FactorOneMinusDstAlpha
	FactorSrcAlphaSaturate
)

// State holds separate color and alpha blend factors.
type State struct {
	SrcRGB   Factor
	DstRGB   Factor
	SrcAlpha Factor
	DstAlpha Factor
}

// factor returns the per-channel weights of f for the given colors.
// The fourth value is the alpha weight.
func factor(f Factor, src, dst Color) (r, g, b, a float32) {
	switch f {
	case FactorZero:
		return 0, 0, 0, 0
	case FactorOne:
		return 1, 1, 1, 1
	case FactorSrcColor:
		return src.R, src.G, src.B, src.A
	case FactorOneMinusSrcColor:
		return 1 - src.R, 1 - src.G, 1 - src.B, 1 - src.A
	case FactorDstColor:
		return dst.R, dst.G, dst.B, dst.A
	case FactorOneMinusDstColor:
		return 1 - dst.R, 1 - dst.G, 1 - dst.B, 1 - dst.A
	case FactorSrcAlpha:
		return src.A, src.A, src.A, src.A
	case FactorOneMinusSrcAlpha:
		s := 1 - src.A
		return s, s, s, s
	case FactorDstAlpha:
		return dst.A, dst.A, dst.A, dst.A
	case FactorOneMinusDstAlpha:
		s := 1 - dst.A
		return s, s, s, s
	case FactorSrcAlphaSaturate:
		s := min(src.A, 1-dst.A)
		return s, s, s, 1
	default:
		return 0, 0, 0, 0
	}
}

// Blend combines src with dst using the state's factors.
// The result is clamped to [0, 1].
func (s State) Blend(src, dst Color) Color {
	sr, sg, sb, _ := factor(s.SrcRGB, src, dst)
	dr, dg, db, _ := factor(s.DstRGB, src, dst)
	_, _, _, sa := factor(s.SrcAlpha, src, dst)
	_, _, _, da := factor(s.DstAlpha, src, dst)
	return Color{
		R: clamp01(src.R*sr + dst.R*dr),
		G: clamp01(src.G*sg + dst.G*dg),
		B: clamp01(src.B*sb + dst.B*db),
		A: clamp01(src.A*sa + dst.A*da),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
