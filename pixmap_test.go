package canvas

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
)

func TestPixmap_SetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)

	pm.SetPixel(5, 5, RGBA(255, 0, 0, 128))
	i := (5*10 + 5) * 4
	data := pm.Data()
	if data[i] != 128 || data[i+1] != 0 || data[i+2] != 0 || data[i+3] != 128 {
		t.Errorf("raw data = %v, want premultiplied [128 0 0 128]", data[i:i+4])
	}

	got := pm.GetPixel(5, 5)
	if !colorNear(got, Color{1, 0, 0, 128.0 / 255}, 1e-9) {
		t.Errorf("GetPixel() = %+v", got)
	}
	if got := pm.GetPixel(0, 0); got != Transparent {
		t.Errorf("untouched pixel = %+v, want transparent", got)
	}
}

func TestPixmap_OutOfBounds(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(Black)
	original := append([]uint8(nil), pm.Data()...)

	for _, p := range []struct{ x, y int }{{-1, 0}, {4, 0}, {0, -1}, {0, 4}, {100, 100}} {
		pm.SetPixel(p.x, p.y, White)
		if got := pm.GetPixel(p.x, p.y); got != Transparent {
			t.Errorf("GetPixel(%d, %d) = %+v, want transparent", p.x, p.y, got)
		}
	}
	if !bytes.Equal(pm.Data(), original) {
		t.Error("out-of-bounds SetPixel modified data")
	}
}

func TestPixmap_Clear(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.Clear(RGBAf(0, 1, 0, 0.5))
	for i := 0; i < len(pm.Data()); i += 4 {
		px := pm.Data()[i : i+4]
		if px[0] != 0 || px[1] != 128 || px[2] != 0 || px[3] != 128 {
			t.Fatalf("pixel %d = %v, want [0 128 0 128]", i/4, px)
		}
	}
}

func TestPixmap_NegativeSize(t *testing.T) {
	pm := NewPixmap(-5, 3)
	if pm.Width() != 0 || pm.Height() != 3 || len(pm.Data()) != 0 {
		t.Errorf("NewPixmap(-5, 3) = %dx%d with %d bytes", pm.Width(), pm.Height(), len(pm.Data()))
	}
}

func TestPixmap_ImageRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 3, 6, 5))
	src.SetNRGBA(2, 3, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(5, 4, color.NRGBA{B: 255, A: 128})

	pm := FromImage(src)
	if pm.Width() != 4 || pm.Height() != 2 {
		t.Fatalf("FromImage size = %dx%d, want 4x2", pm.Width(), pm.Height())
	}
	if got := pm.At(0, 0).(color.RGBA); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("At(0, 0) = %+v", got)
	}
	if got := pm.At(3, 1).(color.RGBA); got != (color.RGBA{B: 128, A: 128}) {
		t.Errorf("At(3, 1) = %+v", got)
	}

	img := pm.ToImage()
	if !bytes.Equal(img.Pix, pm.Data()) {
		t.Error("ToImage() pixels differ from pixmap data")
	}
	img.Pix[0] = 0
	if pm.Data()[0] != 255 {
		t.Error("ToImage() shares memory with the pixmap")
	}
}

func TestPixmap_PNG(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.SetPixel(1, 2, Blue)

	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if r, g, b, a := img.At(1, 2).RGBA(); r != 0 || g != 0 || b != 0xffff || a != 0xffff {
		t.Errorf("decoded pixel = (%d, %d, %d, %d), want opaque blue", r, g, b, a)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	if err := pm.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG() into a missing directory should fail")
	}
}
