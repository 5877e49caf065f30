package blend

import (
	"math"
	"testing"
)

func colorNear(a, b Color) bool {
	const eps = 1e-5
	return math.Abs(float64(a.R-b.R)) < eps &&
		math.Abs(float64(a.G-b.G)) < eps &&
		math.Abs(float64(a.B-b.B)) < eps &&
		math.Abs(float64(a.A-b.A)) < eps
}

func TestOpState_PorterDuff(t *testing.T) {
	// Half-transparent red over half-transparent blue, premultiplied.
	src := Color{R: 0.5, A: 0.5}
	dst := Color{B: 0.5, A: 0.5}

	tests := []struct {
		name string
		op   Op
		want Color
	}{
		{"source-over", OpSourceOver, Color{R: 0.5, B: 0.25, A: 0.75}},
		{"source-in", OpSourceIn, Color{R: 0.25, A: 0.25}},
		{"source-out", OpSourceOut, Color{R: 0.25, A: 0.25}},
		{"atop", OpAtop, Color{R: 0.25, B: 0.25, A: 0.5}},
		{"destination-over", OpDestinationOver, Color{R: 0.25, B: 0.5, A: 0.75}},
		{"destination-in", OpDestinationIn, Color{B: 0.25, A: 0.25}},
		{"destination-out", OpDestinationOut, Color{B: 0.25, A: 0.25}},
		{"destination-atop", OpDestinationAtop, Color{R: 0.25, B: 0.25, A: 0.5}},
		{"lighter", OpLighter, Color{R: 0.5, B: 0.5, A: 1}},
		{"copy", OpCopy, Color{R: 0.5, A: 0.5}},
		{"xor", OpXor, Color{R: 0.25, B: 0.25, A: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OpState(tt.op).Blend(src, dst)
			if !colorNear(got, tt.want) {
				t.Errorf("Blend = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOpState_UnknownFallsBackToSourceOver(t *testing.T) {
	if got, want := OpState(Op(200)), OpState(OpSourceOver); got != want {
		t.Errorf("OpState(200) = %+v, want %+v", got, want)
	}
}

func TestBlend_SeparateAlphaFactors(t *testing.T) {
	s := State{
		SrcRGB:   FactorOne,
		DstRGB:   FactorZero,
		SrcAlpha: FactorZero,
		DstAlpha: FactorOne,
	}
	got := s.Blend(Color{R: 1, A: 1}, Color{G: 0.5, A: 0.5})
	want := Color{R: 1, A: 0.5}
	if !colorNear(got, want) {
		t.Errorf("Blend = %+v, want %+v", got, want)
	}
}

func TestBlend_Factors(t *testing.T) {
	src := Color{R: 0.2, G: 0.4, B: 0.6, A: 0.8}
	dst := Color{R: 0.1, G: 0.3, B: 0.5, A: 0.6}

	tests := []struct {
		name string
		f    Factor
		want [4]float32
	}{
		{"zero", FactorZero, [4]float32{0, 0, 0, 0}},
		{"one", FactorOne, [4]float32{1, 1, 1, 1}},
		{"src color", FactorSrcColor, [4]float32{0.2, 0.4, 0.6, 0.8}},
		{"one minus src color", FactorOneMinusSrcColor, [4]float32{0.8, 0.6, 0.4, 0.2}},
		{"dst color", FactorDstColor, [4]float32{0.1, 0.3, 0.5, 0.6}},
		{"one minus dst color", FactorOneMinusDstColor, [4]float32{0.9, 0.7, 0.5, 0.4}},
		{"src alpha", FactorSrcAlpha, [4]float32{0.8, 0.8, 0.8, 0.8}},
		{"dst alpha", FactorDstAlpha, [4]float32{0.6, 0.6, 0.6, 0.6}},
		{"src alpha saturate", FactorSrcAlphaSaturate, [4]float32{0.4, 0.4, 0.4, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := factor(tt.f, src, dst)
			got := [4]float32{r, g, b, a}
			for i := range got {
				if math.Abs(float64(got[i]-tt.want[i])) > 1e-6 {
					t.Errorf("factor = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestSpan_Coverage(t *testing.T) {
	dst := []byte{
		0, 0, 255, 255,
		0, 0, 255, 255,
		0, 0, 255, 255,
	}
	src := Color{R: 1, A: 1}
	OpState(OpSourceOver).SpanSolid(dst, src, []float32{0, 0.5, 1})

	want := []byte{
		0, 0, 255, 255, // untouched
		128, 0, 128, 255,
		255, 0, 0, 255,
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}

func TestSpan_CopyOnlyTouchesCoveredPixels(t *testing.T) {
	dst := []byte{
		10, 20, 30, 255,
		10, 20, 30, 255,
	}
	src := []Color{{}, {}}
	OpState(OpCopy).Span(dst, src, []float32{0, 1})

	if dst[0] != 10 || dst[3] != 255 {
		t.Errorf("uncovered pixel changed: %v", dst[:4])
	}
	for _, v := range dst[4:] {
		if v != 0 {
			t.Errorf("covered pixel = %v, want transparent", dst[4:])
			break
		}
	}
}

func TestToByte(t *testing.T) {
	tests := []struct {
		in   float32
		want byte
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{2, 255},
	}
	for _, tt := range tests {
		if got := toByte(tt.in); got != tt.want {
			t.Errorf("toByte(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
