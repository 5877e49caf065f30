package text

import "math"

// Align is a combination of one horizontal and one vertical alignment flag.
type Align int

const (
	// AlignLeft aligns text horizontally to the left (default).
	AlignLeft Align = 1 << 0
	// AlignCenter centers text horizontally.
	AlignCenter Align = 1 << 1
	// AlignRight aligns text horizontally to the right.
	AlignRight Align = 1 << 2
	// AlignTop aligns text vertically to the top.
	AlignTop Align = 1 << 3
	// AlignMiddle centers text vertically.
	AlignMiddle Align = 1 << 4
	// AlignBottom aligns text vertically to the bottom.
	AlignBottom Align = 1 << 5
	// AlignBaseline aligns text vertically to the baseline (default).
	AlignBaseline Align = 1 << 6

	alignHorizontal = AlignLeft | AlignCenter | AlignRight
	alignVertical   = AlignTop | AlignMiddle | AlignBottom | AlignBaseline
)

// Style holds the text state of a drawing context.
type Style struct {
	Font          int
	Size          float64
	Blur          float64
	LetterSpacing float64
	LineHeight    float64 // proportional to the font's line height
	Align         Align
}

// DefaultStyle returns size 16, line height 1, left/baseline alignment and no
// font.
func DefaultStyle() Style {
	return Style{
		Size:       16,
		LineHeight: 1,
		Align:      AlignLeft | AlignBaseline,
	}
}

// GlyphPosition is the position of one character of a laid out string.
type GlyphPosition struct {
	Str  int     // byte offset of the character in the string
	X    float64 // pen position of the character
	MinX float64 // left edge of the character's logical and ink extent
	MaxX float64 // right edge of the character's logical and ink extent
}

// TextRow is one row produced by BreakLines.
type TextRow struct {
	Start int     // byte offset of the first character of the row
	End   int     // byte offset one past the last visible character
	Next  int     // byte offset where the next row starts
	Width float64 // logical width of the row
	MinX  float64 // ink bounds of the row, relative to its start
	MaxX  float64
}

// Glyph is a positioned glyph of a Line.
type Glyph struct {
	Source *FontSource
	ID     uint16
	X      float64 // pen position plus shaping offset, relative to the line origin
}

// runeInfo is the layout of one character.
type runeInfo struct {
	r          rune
	str, next  int     // byte offsets
	x, nextX   float64 // pen before and after the character
	minX, maxX float64 // ink extent
}

// Line is a shaped string in user units with its origin at x = 0.
type Line struct {
	runes   []runeInfo
	Glyphs  []Glyph
	Advance float64
}

// Layout shapes str with the style's font, size and letter spacing.
// It returns nil when the style's font is unknown.
func (s *FontSet) Layout(str string, st Style) *Line {
	primary, err := s.fonts.Get(st.Font)
	if err != nil {
		return nil
	}
	line := &Line{runes: make([]runeInfo, 0, len(str))}
	if str == "" {
		return line
	}

	runes := make([]rune, 0, len(str))
	for i, r := range str {
		line.runes = append(line.runes, runeInfo{r: r, str: i})
		runes = append(runes, r)
	}
	for i := range line.runes {
		if i+1 < len(line.runes) {
			line.runes[i].next = line.runes[i+1].str
		} else {
			line.runes[i].next = len(str)
		}
	}

	// Split into runs that share a font, then shape each run.
	s.glyphs = s.glyphs[:0]
	runStart := 0
	runFont := s.resolve(primary, runes[0])
	for i := 1; i <= len(runes); i++ {
		var f *FontSource
		if i < len(runes) {
			f = s.resolve(primary, runes[i])
			if f == runFont {
				continue
			}
		}
		s.glyphs = s.shaper.shape(s.glyphs, runFont, runes[runStart:i], runStart, st.Size)
		runStart, runFont = i, f
	}

	for i := range line.runes {
		line.runes[i].x = math.NaN()
	}
	x := 0.0
	for _, g := range s.glyphs {
		line.Glyphs = append(line.Glyphs, Glyph{Source: g.src, ID: g.id, X: x + g.xOffset})
		next := x + g.advance + st.LetterSpacing
		ri := &line.runes[g.cluster]
		minX, maxX := x, x
		if x0, _, x1, _, ok := g.src.inkBounds(g.id, st.Size); ok {
			minX, maxX = x+g.xOffset+x0, x+g.xOffset+x1
		}
		if math.IsNaN(ri.x) {
			ri.x, ri.nextX = x, next
			ri.minX, ri.maxX = minX, maxX
		} else {
			// Several glyphs for one character.
			ri.nextX = next
			ri.minX = math.Min(ri.minX, minX)
			ri.maxX = math.Max(ri.maxX, maxX)
		}
		x = next
	}
	// Characters merged into a preceding cluster take no space.
	pen := 0.0
	for i := range line.runes {
		ri := &line.runes[i]
		if math.IsNaN(ri.x) {
			ri.x, ri.nextX, ri.minX, ri.maxX = pen, pen, pen, pen
		}
		pen = ri.nextX
	}
	line.Advance = x
	return line
}

// alignOffset returns the horizontal shift for a line of the given advance.
func alignOffset(align Align, advance float64) float64 {
	switch {
	case align&AlignRight != 0:
		return -advance
	case align&AlignCenter != 0:
		return -advance * 0.5
	default:
		return 0
	}
}

// AlignOffset returns the horizontal shift applied to the line by align.
func (l *Line) AlignOffset(align Align) float64 {
	return alignOffset(align, l.Advance)
}

// VerticalOffset returns the baseline shift for the style's vertical
// alignment.
func (s *FontSet) VerticalOffset(st Style) float64 {
	src, err := s.fonts.Get(st.Font)
	if err != nil {
		return 0
	}
	asc, desc, _ := src.Metrics(st.Size)
	return verticalOffset(st.Align, asc, desc)
}

func verticalOffset(align Align, asc, desc float64) float64 {
	switch {
	case align&AlignTop != 0:
		return asc
	case align&AlignMiddle != 0:
		return (asc + desc) * 0.5
	case align&AlignBottom != 0:
		return desc
	default:
		return 0
	}
}

// Metrics returns the ascender, descender and line height of the style's
// font at its size. Line height is not scaled by Style.LineHeight.
func (s *FontSet) Metrics(st Style) (ascender, descender, lineHeight float64, ok bool) {
	src, err := s.fonts.Get(st.Font)
	if err != nil {
		return 0, 0, 0, false
	}
	ascender, descender, lineHeight = src.Metrics(st.Size)
	return ascender, descender, lineHeight, true
}

// GlyphPositions fills positions with the layout of str drawn at x and
// returns how many were written. One position is produced per character;
// output stops when positions is full.
func (s *FontSet) GlyphPositions(x float64, str string, st Style, positions []GlyphPosition) int {
	if len(positions) == 0 {
		return 0
	}
	line := s.Layout(str, st)
	if line == nil {
		return 0
	}
	x += line.AlignOffset(st.Align)
	n := 0
	for _, ri := range line.runes {
		if n == len(positions) {
			break
		}
		positions[n] = GlyphPosition{
			Str:  ri.str,
			X:    x + ri.x,
			MinX: x + math.Min(ri.x, ri.minX),
			MaxX: x + math.Max(ri.nextX, ri.maxX),
		}
		n++
	}
	return n
}

// Bounds measures str drawn at (x, y). It returns the horizontal advance and
// the bounding box [xmin, ymin, xmax, ymax]. The vertical extent is the line
// extent of the font, not the ink of the glyphs.
func (s *FontSet) Bounds(x, y float64, str string, st Style) (advance float64, bounds [4]float64) {
	line := s.Layout(str, st)
	if line == nil {
		return 0, [4]float64{x, y, x, y}
	}
	src, _ := s.fonts.Get(st.Font)
	asc, desc, lineh := src.Metrics(st.Size)

	minX, maxX := 0.0, 0.0
	for _, ri := range line.runes {
		minX = math.Min(minX, ri.minX)
		maxX = math.Max(maxX, ri.maxX)
	}
	off := x + line.AlignOffset(st.Align)
	minY := y + verticalOffset(st.Align, asc, desc) - asc
	return line.Advance, [4]float64{off + minX, minY, off + maxX, minY + lineh}
}

// BoxBounds measures str broken into rows of breakRowWidth at (x, y), as
// drawn by a text box.
func (s *FontSet) BoxBounds(x, y, breakRowWidth float64, str string, st Style) [4]float64 {
	src, err := s.fonts.Get(st.Font)
	if err != nil {
		return [4]float64{x, y, x, y}
	}
	asc, desc, lineh := src.Metrics(st.Size)
	halign := st.Align & alignHorizontal
	rowStyle := st
	rowStyle.Align = AlignLeft | st.Align&alignVertical

	rminY := verticalOffset(rowStyle.Align, asc, desc) - asc
	rmaxY := rminY + lineh
	minX, maxX, minY, maxY := x, x, y, y

	rows := make([]TextRow, 0, 16)
	s.EachRow(str, breakRowWidth, rowStyle, rows[:cap(rows)], func(row TextRow) {
		dx := rowOffset(halign, breakRowWidth, row.Width)
		minX = math.Min(minX, x+row.MinX+dx)
		maxX = math.Max(maxX, x+row.MaxX+dx)
		minY = math.Min(minY, y+rminY)
		maxY = math.Max(maxY, y+rmaxY)
		y += lineh * st.LineHeight
	})
	return [4]float64{minX, minY, maxX, maxY}
}

// rowOffset returns the horizontal shift of a text box row.
func rowOffset(halign Align, breakRowWidth, width float64) float64 {
	switch {
	case halign&AlignCenter != 0:
		return breakRowWidth*0.5 - width*0.5
	case halign&AlignRight != 0:
		return breakRowWidth - width
	default:
		return 0
	}
}

// RowOffset returns the horizontal shift a text box applies to a row.
func RowOffset(align Align, breakRowWidth float64, row TextRow) float64 {
	return rowOffset(align&alignHorizontal, breakRowWidth, row.Width)
}

// EachRow breaks str into rows of at most breakRowWidth, using buf as
// scratch space, and calls fn for every row in order.
func (s *FontSet) EachRow(str string, breakRowWidth float64, st Style, buf []TextRow, fn func(TextRow)) {
	if len(buf) == 0 {
		buf = make([]TextRow, 16)
	}
	base := 0
	for base < len(str) {
		n := s.BreakLines(str[base:], breakRowWidth, st, buf)
		if n == 0 {
			return
		}
		for _, row := range buf[:n] {
			row.Start += base
			row.End += base
			row.Next += base
			fn(row)
		}
		next := base + buf[n-1].Next
		if next <= base {
			return
		}
		base = next
	}
}
