package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func newTestSet(t *testing.T) (*FontSet, int) {
	t.Helper()
	s := NewFontSet()
	h, err := s.Add("sans", goregular.TTF, 0, false)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	return s, h
}

func TestFontSet_Add(t *testing.T) {
	s, h := newTestSet(t)
	if h <= 0 {
		t.Fatalf("handle = %d, want > 0", h)
	}
	src, err := s.Font(h)
	if err != nil {
		t.Fatalf("Font() error = %v", err)
	}
	if src.Name() != "sans" {
		t.Errorf("Name() = %q, want sans", src.Name())
	}
	if src.FamilyName() == "" {
		t.Error("FamilyName() is empty")
	}
	if src.NumGlyphs() == 0 {
		t.Error("NumGlyphs() = 0")
	}
	if !src.HasHarfBuzz() {
		t.Error("single-face font should shape with HarfBuzz")
	}
}

func TestFontSet_AddErrors(t *testing.T) {
	s := NewFontSet()

	tests := []struct {
		name    string
		data    []byte
		index   int
		wantErr error
	}{
		{"empty", nil, 0, ErrEmptyFontData},
		{"index out of range", goregular.TTF, 1, ErrFontIndex},
		{"negative index", goregular.TTF, -1, ErrFontIndex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Add("x", tt.data, tt.index, false)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Add() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := s.Add("garbage", []byte("not a font"), 0, false); err == nil {
		t.Error("Add(garbage) succeeded")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after failures, want 0", s.Len())
	}
}

func TestFontSet_Ownership(t *testing.T) {
	s := NewFontSet()

	borrowed := append([]byte(nil), goregular.TTF...)
	h, err := s.Add("copy", borrowed, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	src, _ := s.Font(h)
	if &src.data[0] == &borrowed[0] {
		t.Error("font without ownership should copy its data")
	}

	owned := append([]byte(nil), goregular.TTF...)
	h, err = s.Add("owned", owned, 0, true)
	if err != nil {
		t.Fatal(err)
	}
	src, _ = s.Font(h)
	if &src.data[0] != &owned[0] {
		t.Error("owned font should adopt its data")
	}

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if src.data != nil {
		t.Error("Close() should release font data")
	}
	if _, err := s.Font(h); !errors.Is(err, ErrInvalidFont) {
		t.Errorf("Font() after Close error = %v, want ErrInvalidFont", err)
	}
}

func TestFontSet_AddFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "mono.ttf")
	if err := os.WriteFile(file, gomono.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	s := NewFontSet()
	h, err := s.AddFile("mono", file, 0)
	if err != nil {
		t.Fatalf("AddFile() error = %v", err)
	}
	if got := s.Find("mono"); got != h {
		t.Errorf("Find(mono) = %d, want %d", got, h)
	}
	if _, err := s.AddFile("missing", filepath.Join(dir, "missing.ttf"), 0); err == nil {
		t.Error("AddFile(missing) succeeded")
	}
}

func TestFontSet_Find(t *testing.T) {
	s, h := newTestSet(t)
	if _, err := s.Add("mono", gomono.TTF, 0, false); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add("sans", gomono.TTF, 0, false); err != nil {
		t.Fatal(err)
	}

	if got := s.Find("sans"); got != h {
		t.Errorf("Find(sans) = %d, want first registration %d", got, h)
	}
	if got := s.Find("serif"); got != 0 {
		t.Errorf("Find(serif) = %d, want 0", got)
	}
}

func TestFontSet_Fallbacks(t *testing.T) {
	s, sans := newTestSet(t)
	mono, _ := s.Add("mono", gomono.TTF, 0, false)

	if err := s.AddFallback(sans, mono); err != nil {
		t.Fatalf("AddFallback() error = %v", err)
	}
	if err := s.AddFallback(sans, 99); !errors.Is(err, ErrInvalidFont) {
		t.Errorf("AddFallback(unknown) error = %v, want ErrInvalidFont", err)
	}
	if err := s.AddFallback(99, sans); !errors.Is(err, ErrInvalidFont) {
		t.Errorf("AddFallback(unknown base) error = %v, want ErrInvalidFont", err)
	}

	primary, _ := s.Font(sans)
	if got := s.resolve(primary, 'A'); got != primary {
		t.Error("rune present in the primary font should not fall back")
	}
	// Private use: no font has it, the primary's .notdef is used.
	if got := s.resolve(primary, '\ue000'); got != primary {
		t.Error("rune missing everywhere should resolve to the primary font")
	}

	if err := s.ResetFallbacks(sans); err != nil {
		t.Fatal(err)
	}
	if len(primary.fallbacks) != 0 {
		t.Errorf("fallbacks after reset = %v", primary.fallbacks)
	}
}

func TestFontSource_Metrics(t *testing.T) {
	s, h := newTestSet(t)
	src, _ := s.Font(h)

	asc, desc, lineh := src.Metrics(20)
	if asc <= 0 {
		t.Errorf("ascender = %v, want > 0", asc)
	}
	if desc >= 0 {
		t.Errorf("descender = %v, want < 0", desc)
	}
	if lineh < asc-desc-0.5 {
		t.Errorf("line height %v smaller than ascender-descender %v", lineh, asc-desc)
	}

	asc2, _, _ := src.Metrics(40)
	if asc2 < asc*1.9 || asc2 > asc*2.1 {
		t.Errorf("ascender does not scale with size: %v at 20, %v at 40", asc, asc2)
	}
}
