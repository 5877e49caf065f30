package canvas

import (
	"image/color"
	"math"
	"testing"
)

func colorNear(a, b Color, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol && math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol && math.Abs(a.A-b.A) <= tol
}

func TestColorConstructors(t *testing.T) {
	tests := []struct {
		name string
		got  Color
		want Color
	}{
		{"RGB", RGB(255, 0, 51), Color{1, 0, 0.2, 1}},
		{"RGBf", RGBf(0.1, 0.2, 0.3), Color{0.1, 0.2, 0.3, 1}},
		{"RGBA", RGBA(0, 255, 0, 51), Color{0, 1, 0, 0.2}},
		{"RGBAf", RGBAf(1, 2, -1, 0.5), Color{1, 2, -1, 0.5}},
		{"TransRGBA", TransRGBA(Red, 0), Color{1, 0, 0, 0}},
		{"TransRGBAf", TransRGBAf(Blue, 0.25), Color{0, 0, 1, 0.25}},
		{"Lerp mid", LerpRGBA(Black, White, 0.5), Color{0.5, 0.5, 0.5, 1}},
		{"Lerp clamped", LerpRGBA(Black, White, 2), White},
		{"Lerp negative", LerpRGBA(Black, White, -1), Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !colorNear(tt.got, tt.want, 1e-9) {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    Color
	}{
		{"red", 0, 1, 0.5, Red},
		{"green", 1.0 / 3, 1, 0.5, Green},
		{"blue", 2.0 / 3, 1, 0.5, Blue},
		{"wrapped red", 1, 1, 0.5, Red},
		{"negative hue", -2.0 / 3, 1, 0.5, Green},
		{"gray", 0.4, 0, 0.5, RGBf(0.5, 0.5, 0.5)},
		{"white", 0.7, 1, 1, White},
		{"clamped", 0, 2, 0.5, Red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSL(tt.h, tt.s, tt.l); !colorNear(got, tt.want, 1e-9) {
				t.Errorf("HSL(%v, %v, %v) = %+v, want %+v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}

	if got := HSLA(0, 1, 0.5, 51); !colorNear(got, Color{1, 0, 0, 0.2}, 1e-9) {
		t.Errorf("HSLA alpha = %+v", got)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", Red},
		{"00ff00", Green},
		{"#00f", Blue},
		{"#0000ff80", RGBA(0, 0, 255, 128)},
		{"f008", RGBA(255, 0, 0, 136)},
		{"12345", Black},
		{"", Black},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); !colorNear(got, tt.want, 1e-9) {
			t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestColorConversions(t *testing.T) {
	c := RGBAf(2, 0.5, -1, 0.5)
	n := c.NRGBA()
	if n != (color.NRGBA{R: 255, G: 128, B: 0, A: 128}) {
		t.Errorf("NRGBA() = %+v", n)
	}
	back := FromColor(n)
	if !colorNear(back, Color{1, 128.0 / 255, 0, 128.0 / 255}, 1e-9) {
		t.Errorf("FromColor() = %+v", back)
	}

	p := RGBAf(1, 0.5, 0, 0.5).premultiplied()
	if p.R != 0.5 || p.G != 0.25 || p.B != 0 || p.A != 0.5 {
		t.Errorf("premultiplied() = %+v", p)
	}
}
