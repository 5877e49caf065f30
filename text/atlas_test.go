package text

import "testing"

func TestAtlas_Glyph(t *testing.T) {
	s, h := newTestSet(t)
	src, _ := s.Font(h)
	a, err := NewAtlas(256, 256, 128)
	if err != nil {
		t.Fatal(err)
	}

	id := src.GlyphIndex('A')
	g, ok := a.Glyph(src, id, 24, 0)
	if !ok {
		t.Fatal("Glyph(A) not ok")
	}
	if g.W <= 2 || g.H <= 2 {
		t.Errorf("mask %dx%d too small", g.W, g.H)
	}
	if g.OffY >= 0 {
		t.Errorf("OffY = %d, want the mask above the baseline", g.OffY)
	}

	var sum int
	tw, th := a.Size()
	tex := a.Texture()
	for y := g.Y; y < g.Y+g.H; y++ {
		for x := g.X; x < g.X+g.W; x++ {
			_, _, _, alpha := tex.Sample((float64(x)+0.5)/float64(tw), (float64(y)+0.5)/float64(th), 0)
			if alpha > 0.5 {
				sum++
			}
		}
	}
	if sum == 0 {
		t.Error("glyph mask is empty")
	}

	again, ok := a.Glyph(src, id, 24, 0)
	if !ok || again != g {
		t.Errorf("cached Glyph() = %+v, want %+v", again, g)
	}

	if _, ok := a.Glyph(src, src.GlyphIndex(' '), 24, 0); ok {
		t.Error("space should have no ink")
	}
}

func TestAtlas_Blur(t *testing.T) {
	s, h := newTestSet(t)
	src, _ := s.Font(h)
	a, _ := NewAtlas(256, 256, 128)

	id := src.GlyphIndex('o')
	sharp, _ := a.Glyph(src, id, 24, 0)
	blurred, ok := a.Glyph(src, id, 24, 4)
	if !ok {
		t.Fatal("blurred glyph not ok")
	}
	if blurred.W <= sharp.W || blurred.H <= sharp.H {
		t.Errorf("blurred mask %dx%d not larger than %dx%d", blurred.W, blurred.H, sharp.W, sharp.H)
	}
	if blurred.X == sharp.X && blurred.Y == sharp.Y {
		t.Error("blurred glyph shares the sharp glyph's slot")
	}
}

func TestAtlas_ResetWhenFull(t *testing.T) {
	s, h := newTestSet(t)
	src, _ := s.Font(h)
	a, _ := NewAtlas(64, 64, 128)

	for _, r := range "ABCDEFGHIJKLMNOP" {
		if _, ok := a.Glyph(src, src.GlyphIndex(r), 28, 0); !ok {
			t.Fatalf("Glyph(%q) not ok", r)
		}
	}
	if a.Resets() == 0 {
		t.Error("a full atlas should have been reset")
	}

	// Too large for the atlas at all.
	if _, ok := a.Glyph(src, src.GlyphIndex('W'), 200, 0); ok {
		t.Error("oversized glyph should not fit")
	}
}

func TestAtlas_UploadFailure(t *testing.T) {
	s, h := newTestSet(t)
	src, _ := s.Font(h)
	a, _ := NewAtlas(128, 128, 128)

	// A staging buffer of the wrong size makes every texture upload fail.
	full := a.mask.Pix
	a.mask.Pix = full[:len(full)-1]

	id := src.GlyphIndex('A')
	if _, ok := a.Glyph(src, id, 24, 0); ok {
		t.Error("Glyph() ok after a failed upload")
	}
	if err := a.Reset(); err == nil {
		t.Error("Reset() error = nil, want the upload error")
	}

	a.mask.Pix = full
	if _, ok := a.Glyph(src, id, 24, 0); !ok {
		t.Error("Glyph() not ok once uploads work again")
	}
	if err := a.Reset(); err != nil {
		t.Errorf("Reset() error = %v", err)
	}
}
