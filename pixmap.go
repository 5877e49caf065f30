package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
)

// Pixmap is a rectangular buffer of premultiplied 8-bit RGBA pixels.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // premultiplied RGBA, 4 bytes per pixel
}

// Frame buffers are limited to maxPixmapSide pixels per side and
// maxPixmapBytes of pixel data.
const (
	maxPixmapSide  = 1 << 16
	maxPixmapBytes = math.MaxInt32
)

// pixmapFits reports whether a width×height pixmap is within the limits.
// NaN and infinite sizes never fit.
func pixmapFits(width, height float64) bool {
	return width <= maxPixmapSide && height <= maxPixmapSide &&
		width*height*4 <= maxPixmapBytes
}

// NewPixmap creates a transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw premultiplied pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// row returns the bytes of pixels [x0, x0+n) of row y.
func (p *Pixmap) row(y, x0, n int) []uint8 {
	i := (y*p.width + x0) * 4
	return p.data[i : i+n*4]
}

// SetPixel sets a single pixel to a straight-alpha color.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	pc := c.premultiplied()
	px := p.row(y, x, 1)
	px[0] = uint8(pc.R*255 + 0.5)
	px[1] = uint8(pc.G*255 + 0.5)
	px[2] = uint8(pc.B*255 + 0.5)
	px[3] = uint8(pc.A*255 + 0.5)
}

// GetPixel returns the straight-alpha color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	px := p.row(y, x, 1)
	a := float64(px[3]) / 255
	if a == 0 {
		return Transparent
	}
	return Color{
		R: float64(px[0]) / 255 / a,
		G: float64(px[1]) / 255 / a,
		B: float64(px[2]) / 255 / a,
		A: a,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	pc := c.premultiplied()
	r := uint8(pc.R*255 + 0.5)
	g := uint8(pc.G*255 + 0.5)
	b := uint8(pc.B*255 + 0.5)
	a := uint8(pc.A*255 + 0.5)

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// clone returns a deep copy of p.
func (p *Pixmap) clone() *Pixmap {
	return &Pixmap{width: p.width, height: p.height, data: append([]uint8(nil), p.data...)}
}

// ToImage copies the pixmap into an image.RGBA, which shares its
// premultiplied layout.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	pm := NewPixmap(b.Dx(), b.Dy())
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			copy(pm.row(y, x, 1), []uint8{c.R, c.G, c.B, c.A})
		}
	}
	return pm
}

// EncodePNG writes the pixmap as PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, p.ToImage()); err != nil {
		return fmt.Errorf("canvas: failed to encode png: %w", err)
	}
	return nil
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("canvas: failed to create %s: %w", path, err)
	}
	if err := p.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	px := p.row(y, x, 1)
	return color.RGBA{R: px[0], G: px[1], B: px[2], A: px[3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
