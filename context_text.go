package canvas

import (
	"fmt"
	"math"

	"github.com/gogpu/canvas/internal/path"
	"github.com/gogpu/canvas/internal/raster"
	"github.com/gogpu/canvas/text"
)

const alignHorizontal = AlignLeft | AlignCenter | AlignRight

// CreateFont loads a font file and registers it under name. It returns 0
// when the file cannot be read or parsed.
func (c *Context) CreateFont(name, filename string) int {
	return c.CreateFontAtIndex(name, filename, 0)
}

// CreateFontAtIndex loads face fontIndex of a font file or collection.
func (c *Context) CreateFontAtIndex(name, filename string, fontIndex int) int {
	h, err := c.fonts.AddFile(name, filename, fontIndex)
	if err != nil {
		Logger().Warn("canvas: create font failed", "name", name, "file", filename, "err", err)
		return 0
	}
	return h
}

// CreateFontMem registers a font held in memory. With freeData set the
// Context takes ownership of data, which must not be modified afterwards;
// otherwise data is copied.
func (c *Context) CreateFontMem(name string, data []byte, freeData bool) int {
	return c.CreateFontMemAtIndex(name, data, freeData, 0)
}

// CreateFontMemAtIndex registers face fontIndex of a font or collection
// held in memory. See CreateFontMem for the meaning of freeData.
func (c *Context) CreateFontMemAtIndex(name string, data []byte, freeData bool, fontIndex int) int {
	h, err := c.fonts.Add(name, data, fontIndex, freeData)
	if err != nil {
		Logger().Warn("canvas: create font failed", "name", name, "size", len(data), "err", err)
		return 0
	}
	return h
}

// FindFont returns the handle of the font registered under name, or 0.
func (c *Context) FindFont(name string) int {
	return c.fonts.Find(name)
}

// AddFallbackFontID makes fallbackFont supply glyphs missing from baseFont.
func (c *Context) AddFallbackFontID(baseFont, fallbackFont int) error {
	if err := c.fonts.AddFallback(baseFont, fallbackFont); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHandle, err)
	}
	return nil
}

// AddFallbackFont is AddFallbackFontID for fonts given by name.
func (c *Context) AddFallbackFont(baseFont, fallbackFont string) error {
	base, fallback := c.fonts.Find(baseFont), c.fonts.Find(fallbackFont)
	if base == 0 || fallback == 0 {
		return fmt.Errorf("%w: font %q or %q", ErrInvalidHandle, baseFont, fallbackFont)
	}
	return c.AddFallbackFontID(base, fallback)
}

// FontSize sets the font size in user units.
func (c *Context) FontSize(size float64) {
	c.state().text.Size = size
}

// FontBlur sets the blur radius of text.
func (c *Context) FontBlur(blur float64) {
	c.state().text.Blur = blur
}

// TextLetterSpacing sets extra space added after every glyph.
func (c *Context) TextLetterSpacing(spacing float64) {
	c.state().text.LetterSpacing = spacing
}

// TextLineHeight sets the row spacing of text boxes as a multiple of the
// font's line height.
func (c *Context) TextLineHeight(lineHeight float64) {
	c.state().text.LineHeight = lineHeight
}

// TextAlign sets the text alignment.
func (c *Context) TextAlign(align Align) {
	c.state().text.Align = align
}

// FontFaceID selects the font by handle.
func (c *Context) FontFaceID(font int) {
	c.state().text.Font = font
}

// FontFace selects the font by name. An unknown name selects no font.
func (c *Context) FontFace(font string) {
	c.state().text.Font = c.fonts.Find(font)
}

// fontScale returns the ratio of device pixels to user units used for
// text. Text is laid out and rasterized at the scaled size.
func (c *Context) fontScale() float64 {
	s := math.Floor(c.state().xform.AverageScale()/0.01+0.5) * 0.01
	s = math.Min(s, 4) * c.ratio
	if s <= 0 {
		return 1
	}
	return s
}

func (c *Context) scaledStyle(scale float64) text.Style {
	ts := c.state().text
	ts.Size *= scale
	ts.LetterSpacing *= scale
	ts.Blur *= scale
	return ts
}

// Text draws str with its alignment point at (x, y) and returns the x
// position after the last character.
func (c *Context) Text(x, y float64, str string) float64 {
	scale := c.fontScale()
	ts := c.scaledStyle(scale)
	line := c.fonts.Layout(str, ts)
	if line == nil {
		return x
	}
	ox := x*scale + line.AlignOffset(ts.Align)
	oy := y*scale + c.fonts.VerticalOffset(ts)
	if c.drawable() == nil && ts.Size > 0 {
		c.drawGlyphs(line, ox, oy, scale, ts)
	}
	return (ox + line.Advance) / scale
}

// drawGlyphs fills one quad per glyph with the glyph's atlas mask, tinted
// by the fill color. (ox, oy) is the pen origin in scaled text space.
func (c *Context) drawGlyphs(line *text.Line, ox, oy, scale float64, ts text.Style) {
	st := c.state()
	toDevice := TransformScale(1/scale, 1/scale).Multiply(c.deviceXform())
	aw, ah := c.atlas.Size()
	tint := Paint{
		Extent:     [2]float64{float64(aw), float64(ah)},
		InnerColor: st.fill.InnerColor,
		OuterColor: st.fill.InnerColor,
	}
	resets := c.atlas.Resets()

	quad := make([]path.Point, 4)
	polys := [][]path.Point{quad}
	for _, g := range line.Glyphs {
		ag, ok := c.atlas.Glyph(g.Source, g.ID, ts.Size, ts.Blur)
		if !ok {
			continue
		}
		gx := math.Floor(ox + g.X + float64(ag.OffX) + 0.5)
		gy := math.Floor(oy + float64(ag.OffY) + 0.5)
		gw, gh := float64(ag.W), float64(ag.H)
		for i, corner := range [4][2]float64{{gx, gy}, {gx + gw, gy}, {gx + gw, gy + gh}, {gx, gy + gh}} {
			quad[i].X, quad[i].Y = toDevice.Apply(corner[0], corner[1])
		}
		paintXf := TransformTranslate(gx-float64(ag.X), gy-float64(ag.Y)).Multiply(toDevice)
		sh := newShader(tint, paintXf, c.atlas.Texture(), st.alpha)
		c.rasterize(polys, raster.FillRuleNonZero, &sh)
	}

	if n := c.atlas.Resets(); n != resets {
		Logger().Debug("canvas: glyph atlas reset", "resets", n)
	}
}

// TextBox draws str broken into rows of at most breakRowWidth. Rows are
// aligned horizontally within breakRowWidth; the vertical alignment
// applies to every row.
func (c *Context) TextBox(x, y, breakRowWidth float64, str string) {
	st := c.state()
	if _, err := c.fonts.Font(st.text.Font); err != nil {
		return
	}
	_, _, lineh := c.TextMetrics()
	old := st.text.Align
	halign := old & alignHorizontal
	st.text.Align = AlignLeft | old&^alignHorizontal

	scale := c.fontScale()
	ts := c.scaledStyle(scale)
	c.fonts.EachRow(str, breakRowWidth*scale, ts, nil, func(row TextRow) {
		row.Width /= scale
		c.Text(x+text.RowOffset(halign, breakRowWidth, row), y, str[row.Start:row.End])
		y += lineh * st.text.LineHeight
	})

	st.text.Align = old
}

// TextBounds measures str drawn at (x, y). It returns the horizontal
// advance and the bounding box [xmin, ymin, xmax, ymax].
func (c *Context) TextBounds(x, y float64, str string) (advance float64, bounds [4]float64) {
	scale := c.fontScale()
	adv, b := c.fonts.Bounds(x*scale, y*scale, str, c.scaledStyle(scale))
	for i := range b {
		b[i] /= scale
	}
	return adv / scale, b
}

// TextBoxBounds measures str drawn by TextBox at (x, y) and returns the
// bounding box [xmin, ymin, xmax, ymax].
func (c *Context) TextBoxBounds(x, y, breakRowWidth float64, str string) [4]float64 {
	scale := c.fontScale()
	b := c.fonts.BoxBounds(x*scale, y*scale, breakRowWidth*scale, str, c.scaledStyle(scale))
	for i := range b {
		b[i] /= scale
	}
	return b
}

// TextGlyphPositions lays out str drawn at (x, y) and fills positions with
// one entry per character, returning how many were written.
func (c *Context) TextGlyphPositions(x, y float64, str string, positions []GlyphPosition) int {
	scale := c.fontScale()
	n := c.fonts.GlyphPositions(x*scale, str, c.scaledStyle(scale), positions)
	for i := range positions[:n] {
		positions[i].X /= scale
		positions[i].MinX /= scale
		positions[i].MaxX /= scale
	}
	return n
}

// TextMetrics returns the ascender, descender (negative) and line height
// of the current font and size. Without a font all three are zero.
func (c *Context) TextMetrics() (ascender, descender, lineHeight float64) {
	scale := c.fontScale()
	asc, desc, lineh, ok := c.fonts.Metrics(c.scaledStyle(scale))
	if !ok {
		return 0, 0, 0
	}
	return asc / scale, desc / scale, lineh / scale
}

// TextBreakLines splits str into rows no wider than breakRowWidth and
// writes them to rows, returning the number written. When rows fills up,
// the last row's Next is where to continue.
func (c *Context) TextBreakLines(str string, breakRowWidth float64, rows []TextRow) int {
	scale := c.fontScale()
	n := c.fonts.BreakLines(str, breakRowWidth*scale, c.scaledStyle(scale), rows)
	for i := range rows[:n] {
		rows[i].Width /= scale
		rows[i].MinX /= scale
		rows[i].MaxX /= scale
	}
	return n
}
