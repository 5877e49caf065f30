package blend

// Span composites one row. dst holds premultiplied 8-bit RGBA pixels
// (4 bytes each), src the per-pixel source colors and cov the coverage.
// All three describe the same pixel run; pixels with zero coverage are
// left unchanged.
func (s State) Span(dst []byte, src []Color, cov []float32) {
	for i, c := range cov {
		if c <= 0 {
			continue
		}
		s.pixel(dst[i*4:i*4+4:i*4+4], src[i], c)
	}
}

// SpanSolid composites a uniform color across one row.
func (s State) SpanSolid(dst []byte, src Color, cov []float32) {
	for i, c := range cov {
		if c <= 0 {
			continue
		}
		s.pixel(dst[i*4:i*4+4:i*4+4], src, c)
	}
}

func (s State) pixel(px []byte, src Color, cov float32) {
	d := Color{
		R: float32(px[0]) / 255,
		G: float32(px[1]) / 255,
		B: float32(px[2]) / 255,
		A: float32(px[3]) / 255,
	}
	out := s.Blend(src, d)
	if cov < 1 {
		out.R = d.R + (out.R-d.R)*cov
		out.G = d.G + (out.G-d.G)*cov
		out.B = d.B + (out.B-d.B)*cov
		out.A = d.A + (out.A-d.A)*cov
	}
	px[0] = toByte(out.R)
	px[1] = toByte(out.G)
	px[2] = toByte(out.B)
	px[3] = toByte(out.A)
}

func toByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}
