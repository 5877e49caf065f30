// Package text lays out and rasterizes text for the canvas renderer.
//
// The pipeline separates concerns the same way a font stack usually does:
//
//   - FontSource: a parsed font file (golang.org/x/image/font/sfnt for
//     outlines and metrics, go-text/typesetting for HarfBuzz shaping)
//   - FontSet: the handle table of fonts owned by one rendering context,
//     with per-font fallback lists
//   - Line: the shaped, positioned glyphs of one string in user units
//   - Atlas: an alpha texture of rasterized glyph masks keyed by
//     font, glyph, pixel size and blur
//
// # Example usage
//
//	fonts := text.NewFontSet()
//	sans, err := fonts.Add("sans", goregular.TTF, 0, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	style := text.DefaultStyle()
//	style.Font = sans
//	rows := make([]text.TextRow, 8)
//	n := fonts.BreakLines("The quick brown fox", 120, style, rows)
//
// Offsets in GlyphPosition and TextRow are byte offsets into the caller's
// string; the string is never copied.
package text
