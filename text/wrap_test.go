package text

import (
	"strings"
	"testing"
	"unicode/utf8"
)

const paragraph = "The quick brown fox jumps over the lazy dog. " +
	"Pack my box with five dozen liquor jugs, then wander off somewhere quiet."

func TestClassify(t *testing.T) {
	tests := []struct {
		r, prev rune
		want    charClass
	}{
		{'a', 0, classChar},
		{' ', 'a', classSpace},
		{'\t', 'a', classSpace},
		{'\n', 'a', classNewline},
		{'\r', 'a', classNewline},
		{'\n', '\r', classSpace},
		{'\r', '\n', classSpace},
		{0x0085, 'a', classNewline},
		{0x00a0, 'a', classSpace},
	}
	for _, tt := range tests {
		if got := classify(tt.r, tt.prev); got != tt.want {
			t.Errorf("classify(%q, %q) = %v, want %v", tt.r, tt.prev, got, tt.want)
		}
	}
}

func TestBreakLines_Width(t *testing.T) {
	s, h := newTestSet(t)
	st := testStyle(h)

	for _, width := range []float64{40, 80, 150, 300} {
		rows := make([]TextRow, 64)
		n := s.BreakLines(paragraph, width, st, rows)
		if n == 0 {
			t.Fatalf("width %v: no rows", width)
		}
		for i, row := range rows[:n] {
			text := paragraph[row.Start:row.End]
			if row.Width > width+1e-9 && utf8.RuneCountInString(text) > 1 {
				t.Errorf("width %v: row %d %q is %v wide", width, i, text, row.Width)
			}
			if strings.HasPrefix(text, " ") {
				t.Errorf("width %v: row %d %q starts with a space", width, i, text)
			}
			if i > 0 && row.Start < rows[i-1].Next {
				t.Errorf("width %v: row %d overlaps the previous row", width, i)
			}
		}
		if rows[n-1].Next != len(paragraph) {
			t.Errorf("width %v: last row ends at %d, want %d", width, rows[n-1].Next, len(paragraph))
		}
	}
}

func TestBreakLines_LongWord(t *testing.T) {
	s, h := newTestSet(t)
	st := testStyle(h)
	word := strings.Repeat("m", 30)

	rows := make([]TextRow, 32)
	n := s.BreakLines(word, 60, st, rows)
	if n < 2 {
		t.Fatalf("rows = %d, want the word split", n)
	}
	total := 0
	for i, row := range rows[:n] {
		if row.Width > 60 {
			t.Errorf("row %d width %v exceeds 60", i, row.Width)
		}
		if row.End <= row.Start {
			t.Errorf("row %d is empty", i)
		}
		total += row.End - row.Start
	}
	if total != len(word) {
		t.Errorf("rows cover %d bytes, want %d", total, len(word))
	}
}

func TestBreakLines_WordMovedToNewRow(t *testing.T) {
	s, h := newTestSet(t)
	st := testStyle(h)
	const str = "a WWWWWWWWWWWWWWWWWWWW b"

	for width := 5.0; width <= 300; width += 3 {
		rows := make([]TextRow, 64)
		n := s.BreakLines(str, width, st, rows)
		covered := 0
		for i, row := range rows[:n] {
			text := str[row.Start:row.End]
			if row.Width > width+1e-9 && utf8.RuneCountInString(text) > 1 {
				t.Errorf("width %v: row %d %q is %v wide", width, i, text, row.Width)
			}
			covered += strings.Count(text, "W")
		}
		if covered != 20 {
			t.Errorf("width %v: rows hold %d of 20 W", width, covered)
		}
	}
}

func TestBreakLines_CombiningMark(t *testing.T) {
	s, h := newTestSet(t)
	st := testStyle(h)
	const str = "a\u0301b"

	rows := make([]TextRow, 8)
	n := s.BreakLines(str, 10, st, rows)
	if n != 2 {
		t.Fatalf("rows = %d, want 2", n)
	}
	if got := str[rows[0].Start:rows[0].End]; got != "a\u0301" {
		t.Errorf("row 0 = %q, want the letter with its mark", got)
	}
	if got := str[rows[1].Start:rows[1].End]; got != "b" {
		t.Errorf("row 1 = %q, want %q", got, "b")
	}
}

func TestBreakLines_Newlines(t *testing.T) {
	s, h := newTestSet(t)
	st := testStyle(h)

	tests := []struct {
		name string
		str  string
		want []string
	}{
		{"LF", "ab\ncd", []string{"ab", "cd"}},
		{"CRLF", "ab\r\ncd", []string{"ab", "cd"}},
		{"LFCR", "ab\n\rcd", []string{"ab", "cd"}},
		{"blank line", "ab\n\ncd", []string{"ab", "", "cd"}},
		{"trailing spaces", "ab   \ncd", []string{"ab", "cd"}},
		{"leading spaces", "   ab", []string{"ab"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := make([]TextRow, 8)
			n := s.BreakLines(tt.str, 1000, st, rows)
			if n != len(tt.want) {
				t.Fatalf("rows = %d, want %d", n, len(tt.want))
			}
			for i, row := range rows[:n] {
				if got := tt.str[row.Start:row.End]; got != tt.want[i] {
					t.Errorf("row %d = %q, want %q", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestBreakLines_Limits(t *testing.T) {
	s, h := newTestSet(t)
	st := testStyle(h)

	if n := s.BreakLines("", 100, st, make([]TextRow, 4)); n != 0 {
		t.Errorf("empty string: %d rows", n)
	}
	if n := s.BreakLines("abc", 100, st, nil); n != 0 {
		t.Errorf("no output slots: %d rows", n)
	}
	if n := s.BreakLines("abc", 100, DefaultStyle(), make([]TextRow, 4)); n != 0 {
		t.Errorf("no font: %d rows", n)
	}

	// Resuming from Next covers the rest of the text.
	rows := make([]TextRow, 2)
	n := s.BreakLines(paragraph, 80, st, rows)
	if n != 2 {
		t.Fatalf("rows = %d, want 2", n)
	}
	var all []string
	s.EachRow(paragraph, 80, st, rows, func(row TextRow) {
		all = append(all, paragraph[row.Start:row.End])
	})
	if len(all) <= 2 {
		t.Fatalf("EachRow produced %d rows", len(all))
	}
	if !strings.HasSuffix(paragraph, all[len(all)-1]) {
		t.Errorf("last row %q does not end the paragraph", all[len(all)-1])
	}
}
