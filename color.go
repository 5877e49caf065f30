package canvas

import (
	"image/color"
	"math"

	"github.com/gogpu/canvas/internal/blend"
)

// Color is a straight-alpha RGBA color. Components are nominally in [0, 1];
// values outside the range are kept and clamped on output.
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// RGBf returns an opaque color from float components.
func RGBf(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color from 8-bit components.
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// RGBAf returns a color from float components.
func RGBAf(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// LerpRGBA interpolates linearly between c0 and c1. u is clamped to [0, 1].
func LerpRGBA(c0, c1 Color, u float64) Color {
	u = clampf(u, 0, 1)
	v := 1 - u
	return Color{
		R: c0.R*v + c1.R*u,
		G: c0.G*v + c1.G*u,
		B: c0.B*v + c1.B*u,
		A: c0.A*v + c1.A*u,
	}
}

// TransRGBA returns c with its alpha replaced by a/255.
func TransRGBA(c Color, a uint8) Color {
	c.A = float64(a) / 255
	return c
}

// TransRGBAf returns c with its alpha replaced by a.
func TransRGBAf(c Color, a float64) Color {
	c.A = a
	return c
}

// HSL returns an opaque color from hue, saturation and lightness, all in
// [0, 1]. Hue wraps around.
func HSL(h, s, l float64) Color {
	return HSLA(h, s, l, 255)
}

// HSLA returns a color from hue, saturation, lightness and 8-bit alpha.
func HSLA(h, s, l float64, a uint8) Color {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	s = clampf(s, 0, 1)
	l = clampf(l, 0, 1)
	m2 := l + s - l*s
	if l <= 0.5 {
		m2 = l * (1 + s)
	}
	m1 := 2*l - m2
	return Color{
		R: clampf(hue(h+1.0/3, m1, m2), 0, 1),
		G: clampf(hue(h, m1, m2), 0, 1),
		B: clampf(hue(h-1.0/3, m1, m2), 0, 1),
		A: float64(a) / 255,
	}
}

func hue(h, m1, m2 float64) float64 {
	if h < 0 {
		h++
	}
	if h > 1 {
		h--
	}
	switch {
	case h < 1.0/6:
		return m1 + (m2-m1)*h*6
	case h < 3.0/6:
		return m2
	case h < 4.0/6:
		return m1 + (m2-m1)*(2.0/3-h)*6
	default:
		return m1
	}
}

// Hex parses a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without a
// leading '#'. Unrecognized input gives opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	a := uint32(255)

	switch len(hex) {
	case 3:
		r, g, b = parseHex(hex[0:1])*17, parseHex(hex[1:2])*17, parseHex(hex[2:3])*17
	case 4:
		r, g, b = parseHex(hex[0:1])*17, parseHex(hex[1:2])*17, parseHex(hex[2:3])*17
		a = parseHex(hex[3:4]) * 17
	case 6:
		r, g, b = parseHex(hex[0:2]), parseHex(hex[2:4]), parseHex(hex[4:6])
	case 8:
		r, g, b = parseHex(hex[0:2]), parseHex(hex[2:4]), parseHex(hex[4:6])
		a = parseHex(hex[6:8])
	default:
		return Color{A: 1}
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

func parseHex(s string) uint32 {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			v += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			v += uint32(c - 'A' + 10)
		default:
			return 0
		}
	}
	return v
}

// NRGBA converts c to a standard library color, clamping each component.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clampf(c.R, 0, 1)*255 + 0.5),
		G: uint8(clampf(c.G, 0, 1)*255 + 0.5),
		B: uint8(clampf(c.B, 0, 1)*255 + 0.5),
		A: uint8(clampf(c.A, 0, 1)*255 + 0.5),
	}
}

// FromColor converts a standard library color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

// premultiplied clamps c and converts it to the compositing representation.
func (c Color) premultiplied() blend.Color {
	a := float32(clampf(c.A, 0, 1))
	return blend.Color{
		R: float32(clampf(c.R, 0, 1)) * a,
		G: float32(clampf(c.G, 0, 1)) * a,
		B: float32(clampf(c.B, 0, 1)) * a,
		A: a,
	}
}

// Common colors.
var (
	Black       = RGBf(0, 0, 0)
	White       = RGBf(1, 1, 1)
	Red         = RGBf(1, 0, 0)
	Green       = RGBf(0, 1, 0)
	Blue        = RGBf(0, 0, 1)
	Transparent = RGBAf(0, 0, 0, 0)
)

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
