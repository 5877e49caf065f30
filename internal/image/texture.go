package image

import (
	"errors"
	"fmt"
	"image"
)

// Texture errors.
var (
	// ErrInvalidSize is returned for non-positive texture dimensions.
	ErrInvalidSize = errors.New("image: invalid size")

	// ErrDataSize is returned when pixel data does not match the texture size.
	ErrDataSize = errors.New("image: data size mismatch")

	// ErrInvalidFormat is returned for an unknown texture format.
	ErrInvalidFormat = errors.New("image: invalid format")
)

// level is one mipmap level sharing the texture's format.
type level struct {
	w, h   int
	stride int
	pix    []byte
}

// Texture is a premultiplied RGBA or alpha pixel buffer.
type Texture struct {
	format Format
	flags  Flags
	levels []level // levels[0] is full size
}

// New creates a texture. data may be nil, giving a transparent texture;
// otherwise it must hold exactly w*h pixels of the given format.
func New(w, h int, format Format, flags Flags, data []byte) (*Texture, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	bpp := format.BytesPerPixel()
	if bpp == 0 {
		return nil, ErrInvalidFormat
	}
	t := &Texture{
		format: format,
		flags:  flags,
		levels: []level{{w: w, h: h, stride: w * bpp, pix: make([]byte, w*h*bpp)}},
	}
	if data != nil {
		if err := t.Update(data); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// FromImage creates an RGBA texture from a decoded image.
func FromImage(img image.Image, flags Flags) (*Texture, error) {
	rgba := toRGBA(img)
	b := rgba.Bounds()
	t, err := New(b.Dx(), b.Dy(), FormatRGBA, flags, nil)
	if err != nil {
		return nil, err
	}
	lv := &t.levels[0]
	for y := range lv.h {
		copy(lv.pix[y*lv.stride:(y+1)*lv.stride], rgba.Pix[y*rgba.Stride:])
	}
	t.rebuildMipmaps()
	return t, nil
}

// Size returns the texture dimensions.
func (t *Texture) Size() (w, h int) {
	return t.levels[0].w, t.levels[0].h
}

// Format returns the storage format.
func (t *Texture) Format() Format {
	return t.format
}

// Flags returns the sampling flags.
func (t *Texture) Flags() Flags {
	return t.flags
}

// Levels returns the number of mipmap levels.
func (t *Texture) Levels() int {
	return len(t.levels)
}

// Pix returns the full-size premultiplied pixel data. The slice aliases the
// texture storage.
func (t *Texture) Pix() []byte {
	return t.levels[0].pix
}

// Update replaces the whole texture with data.
func (t *Texture) Update(data []byte) error {
	w, h := t.Size()
	return t.UpdateRegion(0, 0, w, h, data)
}

// UpdateRegion copies the rectangle (x, y, w, h) from data into the texture.
// data holds a full-size image; only the region is read. The region is
// clipped to the texture bounds.
func (t *Texture) UpdateRegion(x, y, w, h int, data []byte) error {
	lv := &t.levels[0]
	if len(data) != lv.stride*lv.h {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrDataSize, len(data), lv.stride*lv.h)
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, lv.w, lv.h))
	if r.Empty() {
		return nil
	}
	bpp := t.format.BytesPerPixel()
	premul := t.format == FormatRGBA && !t.flags.Has(FlagPremultiplied)
	for row := r.Min.Y; row < r.Max.Y; row++ {
		off := row*lv.stride + r.Min.X*bpp
		end := row*lv.stride + r.Max.X*bpp
		dst := lv.pix[off:end]
		copy(dst, data[off:end])
		if premul {
			premultiply(dst)
		}
	}
	t.rebuildMipmaps()
	return nil
}

func premultiply(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		a := uint32(pix[i+3])
		if a == 255 {
			continue
		}
		pix[i] = byte((uint32(pix[i])*a + 127) / 255)
		pix[i+1] = byte((uint32(pix[i+1])*a + 127) / 255)
		pix[i+2] = byte((uint32(pix[i+2])*a + 127) / 255)
	}
}
