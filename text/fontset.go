package text

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/canvas/internal/handle"
)

// FontSet owns the fonts of one rendering context. Handles are positive
// integers; 0 denotes no font.
//
// FontSet is not safe for concurrent use.
type FontSet struct {
	fonts  *handle.Table[*FontSource]
	shaper *shaper

	glyphs []shapedGlyph
}

// NewFontSet creates an empty font set shaping with the "en" language.
func NewFontSet() *FontSet {
	return NewFontSetLanguage("en")
}

// NewFontSetLanguage creates an empty font set shaping with the given BCP 47
// language tag.
func NewFontSetLanguage(lang string) *FontSet {
	return &FontSet{
		fonts:  handle.NewTable[*FontSource](),
		shaper: newShaper(lang),
	}
}

// Add parses data and registers it under name. With owned set, the set
// adopts data and the caller must not modify it afterwards; otherwise data
// is copied.
func (s *FontSet) Add(name string, data []byte, index int, owned bool) (int, error) {
	if !owned {
		data = append([]byte(nil), data...)
	}
	src, err := NewFontSource(name, data, index)
	if err != nil {
		return 0, err
	}
	return s.fonts.Add(src), nil
}

// AddFile loads a font file and registers it under name.
func (s *FontSet) AddFile(name, path string, index int) (int, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return 0, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return s.Add(name, data, index, true)
}

// Font returns the font registered under h.
func (s *FontSet) Font(h int) (*FontSource, error) {
	src, err := s.fonts.Get(h)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFont, h)
	}
	return src, nil
}

// Find returns the handle of the font registered under name, or 0.
// When several fonts share a name the earliest registered wins.
func (s *FontSet) Find(name string) int {
	found := 0
	s.fonts.Each(func(h int, src *FontSource) {
		if src.name == name && (found == 0 || h < found) {
			found = h
		}
	})
	return found
}

// AddFallback appends fallback to base's fallback list.
func (s *FontSet) AddFallback(base, fallback int) error {
	src, err := s.Font(base)
	if err != nil {
		return err
	}
	if _, err := s.Font(fallback); err != nil {
		return err
	}
	src.fallbacks = append(src.fallbacks, fallback)
	return nil
}

// ResetFallbacks clears base's fallback list.
func (s *FontSet) ResetFallbacks(base int) error {
	src, err := s.Font(base)
	if err != nil {
		return err
	}
	src.fallbacks = nil
	return nil
}

// Len returns the number of registered fonts.
func (s *FontSet) Len() int {
	return s.fonts.Len()
}

// Close releases every font.
func (s *FontSet) Close() error {
	s.fonts.Each(func(_ int, src *FontSource) {
		_ = src.Close()
	})
	s.fonts.Clear()
	return nil
}

// resolve returns the font rendering r: the primary when it has the glyph,
// otherwise the first fallback that does, otherwise the primary (.notdef).
func (s *FontSet) resolve(primary *FontSource, r rune) *FontSource {
	if primary.GlyphIndex(r) != 0 || isSpace(r) {
		return primary
	}
	for _, h := range primary.fallbacks {
		fb, err := s.fonts.Get(h)
		if err != nil {
			continue
		}
		if fb.GlyphIndex(r) != 0 {
			return fb
		}
	}
	return primary
}
