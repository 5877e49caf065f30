package text

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// shapedGlyph is one glyph of a shaped run, in user units.
type shapedGlyph struct {
	src     *FontSource
	id      uint16
	cluster int // rune index of the first rune of the cluster
	xOffset float64
	advance float64
}

// shaper converts runs of runes sharing one font into glyphs.
// It is not safe for concurrent use.
type shaper struct {
	hb   shaping.HarfbuzzShaper
	lang language.Language
}

func newShaper(lang string) *shaper {
	return &shaper{lang: language.NewLanguage(lang)}
}

// shape shapes runes with src at size. Clusters are offset by base so they
// index the caller's full rune slice.
func (s *shaper) shape(dst []shapedGlyph, src *FontSource, runes []rune, base int, size float64) []shapedGlyph {
	if len(runes) == 0 {
		return dst
	}
	if src.hbFace == nil {
		return shapeBuiltin(dst, src, runes, base, size)
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      src.hbFace,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  s.lang,
	}
	output := s.hb.Shape(input)

	for _, g := range output.Glyphs {
		dst = append(dst, shapedGlyph{
			src:     src,
			id:      uint16(g.GlyphID), //nolint:gosec // sfnt glyph indices are 16-bit
			cluster: base + g.TextIndex(),
			xOffset: fixedToFloat(g.XOffset),
			advance: fixedToFloat(g.Advance),
		})
	}
	return dst
}

// shapeBuiltin maps runes one-to-one onto glyphs, using the font's advances
// and pairwise kerning.
func shapeBuiltin(dst []shapedGlyph, src *FontSource, runes []rune, base int, size float64) []shapedGlyph {
	prev := -1
	for i, r := range runes {
		id := src.GlyphIndex(r)
		if prev >= 0 {
			dst[prev].advance += src.kern(dst[prev].id, id, size)
		}
		dst = append(dst, shapedGlyph{
			src:     src,
			id:      id,
			cluster: base + i,
			advance: src.advance(id, size),
		})
		prev = len(dst) - 1
	}
	return dst
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
