package text

import (
	"bytes"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontSource represents a loaded font.
//
// Outlines, metrics and the glyph map come from golang.org/x/image/font/sfnt.
// When go-text/typesetting can parse the same data, shaping goes through
// HarfBuzz; otherwise (for example a face inside a collection) the builtin
// shaper uses sfnt advances and kerning.
//
// A FontSource is not safe for concurrent use.
type FontSource struct {
	name string
	data []byte

	font *sfnt.Font
	buf  sfnt.Buffer

	hb     *gotext.Font
	hbFace *gotext.Face

	fallbacks []int
}

// NewFontSource parses face index of data, which may be a single font or a
// collection. The data slice is retained, not copied.
func NewFontSource(name string, data []byte, index int) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	c, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	if index < 0 || index >= c.NumFonts() {
		return nil, fmt.Errorf("%w: %d of %d", ErrFontIndex, index, c.NumFonts())
	}
	f, err := c.Font(index)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{name: name, data: data, font: f}
	if c.NumFonts() == 1 {
		if face, err := gotext.ParseTTF(bytes.NewReader(data)); err == nil {
			s.hb = face.Font
			s.hbFace = gotext.NewFace(face.Font)
		}
	}
	return s, nil
}

// Name returns the name the font was registered under.
func (s *FontSource) Name() string {
	return s.name
}

// FamilyName returns the family name recorded in the font, if any.
func (s *FontSource) FamilyName() string {
	if name, err := s.font.Name(&s.buf, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// NumGlyphs returns the number of glyphs in the font.
func (s *FontSource) NumGlyphs() int {
	return s.font.NumGlyphs()
}

// HasHarfBuzz reports whether shaping uses HarfBuzz for this font.
func (s *FontSource) HasHarfBuzz() bool {
	return s.hb != nil
}

// GlyphIndex returns the glyph for r, or 0 (.notdef) when the font lacks it.
func (s *FontSource) GlyphIndex(r rune) uint16 {
	idx, err := s.font.GlyphIndex(&s.buf, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// Metrics returns the ascender (positive, above the baseline), descender
// (negative, below the baseline) and line height at size.
func (s *FontSource) Metrics(size float64) (ascender, descender, lineHeight float64) {
	m, err := s.font.Metrics(&s.buf, floatToFixed(size), font.HintingNone)
	if err != nil {
		return size, 0, size
	}
	return fixedToFloat(m.Ascent), -fixedToFloat(m.Descent), fixedToFloat(m.Height)
}

// advance returns the horizontal advance of glyph id at size.
func (s *FontSource) advance(id uint16, size float64) float64 {
	adv, err := s.font.GlyphAdvance(&s.buf, sfnt.GlyphIndex(id), floatToFixed(size), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(adv)
}

// kern returns the kerning adjustment between two glyphs at size.
func (s *FontSource) kern(a, b uint16, size float64) float64 {
	k, err := s.font.Kern(&s.buf, sfnt.GlyphIndex(a), sfnt.GlyphIndex(b), floatToFixed(size), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(k)
}

// inkBounds returns the glyph's bounding box at size, y-down, relative to
// the pen position on the baseline.
func (s *FontSource) inkBounds(id uint16, size float64) (minX, minY, maxX, maxY float64, ok bool) {
	b, _, err := s.font.GlyphBounds(&s.buf, sfnt.GlyphIndex(id), floatToFixed(size), font.HintingNone)
	if err != nil || b.Empty() {
		return 0, 0, 0, 0, false
	}
	return fixedToFloat(b.Min.X), fixedToFloat(b.Min.Y), fixedToFloat(b.Max.X), fixedToFloat(b.Max.Y), true
}

// outline loads the glyph's outline at size. The segments are y-down,
// relative to the pen position, and only valid until the next call.
func (s *FontSource) outline(id uint16, size float64) (sfnt.Segments, error) {
	return s.font.LoadGlyph(&s.buf, sfnt.GlyphIndex(id), floatToFixed(size), nil)
}

// Close releases the font data.
func (s *FontSource) Close() error {
	s.data = nil
	s.font = nil
	s.hb = nil
	s.hbFace = nil
	s.fallbacks = nil
	return nil
}

// floatToFixed converts a float64 to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
