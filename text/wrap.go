package text

// charClass classifies characters for line breaking.
type charClass int

const (
	classSpace charClass = iota
	classNewline
	classChar
)

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', '\n', '\r', 0x00a0, 0x0085:
		return true
	}
	return false
}

// classify returns the class of r given the previous character. A CR LF or
// LF CR pair counts as a single newline.
func classify(r, prev rune) charClass {
	switch r {
	case ' ', '\t', '\v', '\f', 0x00a0:
		return classSpace
	case '\n':
		if prev == '\r' {
			return classSpace
		}
		return classNewline
	case '\r':
		if prev == '\n' {
			return classSpace
		}
		return classNewline
	case 0x0085:
		return classNewline
	default:
		return classChar
	}
}

// BreakLines splits str into rows no wider than breakRowWidth and writes
// them to rows, returning the number written. Rows break after whitespace
// when possible; a word wider than the row is broken between characters.
// Newlines always end a row, and whitespace at the start of a row is
// skipped. When rows fills up, the last row's Next tells where to resume.
func (s *FontSet) BreakLines(str string, breakRowWidth float64, st Style, rows []TextRow) int {
	if len(rows) == 0 || str == "" {
		return 0
	}
	line := s.Layout(str, st)
	if line == nil {
		return 0
	}

	n := 0
	emit := func(row TextRow) bool {
		rows[n] = row
		n++
		return n == len(rows)
	}

	var (
		rowStartX, rowWidth, rowMinX, rowMaxX float64
		wordStartX, wordMinX                  float64
		breakWidth, breakMaxX                 float64
		lastMaxX                              float64

		rowStart  = -1
		rowEnd    = -1
		wordStart = -1
		breakEnd  = -1

		prevType = classChar
		prevRune rune
	)

	// startRow opens a row at ri.
	startRow := func(ri runeInfo) {
		rowStartX = ri.x
		rowStart = ri.str
		rowEnd = ri.next
		rowWidth = ri.nextX - rowStartX
		rowMinX = ri.minX - rowStartX
		rowMaxX = ri.maxX - rowStartX
		wordStart = ri.str
		wordStartX = ri.x
		wordMinX = rowMinX
		breakEnd = rowStart
		breakWidth, breakMaxX = 0, 0
	}

	for _, ri := range line.runes {
		typ := classify(ri.r, prevRune)

		if typ == classNewline {
			start := rowStart
			if rowStart == -1 {
				start = ri.str
			}
			if rowEnd == -1 {
				rowEnd = ri.str
			}
			if emit(TextRow{
				Start: start,
				End:   rowEnd,
				Next:  ri.next,
				Width: rowWidth,
				MinX:  rowMinX,
				MaxX:  rowMaxX,
			}) {
				return n
			}
			breakEnd = rowStart
			breakWidth, breakMaxX = 0, 0
			rowStart, rowEnd = -1, -1
			rowWidth, rowMinX, rowMaxX = 0, 0, 0
		} else if rowStart == -1 {
			if typ == classChar {
				startRow(ri)
			}
		} else {
			nextWidth := ri.nextX - rowStartX
			prevWidth, prevMaxX := rowWidth, rowMaxX

			// Track the last non-whitespace character.
			if typ == classChar {
				rowEnd = ri.next
				rowWidth = ri.nextX - rowStartX
				rowMaxX = ri.maxX - rowStartX
			}
			// Track the last end of a word.
			if prevType == classChar && typ == classSpace {
				breakEnd = ri.str
				breakWidth = rowWidth
				breakMaxX = rowMaxX
			}
			// Track the last beginning of a word. wordMinX is relative to
			// the word start.
			if prevType == classSpace && typ == classChar {
				wordStart = ri.str
				wordStartX = ri.x
				wordMinX = ri.minX - ri.x
			}

			// Zero-advance chars such as combining marks stay with their base.
			if typ == classChar && nextWidth > breakRowWidth && ri.nextX > ri.x {
				if breakEnd == rowStart {
					// The word is wider than the row: break before this char.
					if emit(TextRow{
						Start: rowStart,
						End:   ri.str,
						Next:  ri.str,
						Width: prevWidth,
						MinX:  rowMinX,
						MaxX:  prevMaxX,
					}) {
						return n
					}
					startRow(ri)
				} else {
					// Break after the last word; the new row starts at the current word.
					if emit(TextRow{
						Start: rowStart,
						End:   breakEnd,
						Next:  wordStart,
						Width: breakWidth,
						MinX:  rowMinX,
						MaxX:  breakMaxX,
					}) {
						return n
					}
					if wordStart < ri.str && ri.nextX-wordStartX > breakRowWidth {
						// The carried part of the word plus this char does not
						// fit either: it becomes a row of its own.
						if emit(TextRow{
							Start: wordStart,
							End:   ri.str,
							Next:  ri.str,
							Width: ri.x - wordStartX,
							MinX:  wordMinX,
							MaxX:  lastMaxX - wordStartX,
						}) {
							return n
						}
						startRow(ri)
					} else {
						rowStartX = wordStartX
						rowStart = wordStart
						rowEnd = ri.next
						rowWidth = ri.nextX - rowStartX
						rowMinX = wordMinX
						rowMaxX = ri.maxX - rowStartX
						breakEnd = rowStart
						breakWidth, breakMaxX = 0, 0
					}
				}
			}
		}

		if typ == classChar {
			lastMaxX = ri.maxX
		}
		prevRune = ri.r
		prevType = typ
	}

	if rowStart != -1 {
		emit(TextRow{
			Start: rowStart,
			End:   rowEnd,
			Next:  len(str),
			Width: rowWidth,
			MinX:  rowMinX,
			MaxX:  rowMaxX,
		})
	}
	return n
}
