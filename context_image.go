package canvas

import (
	"fmt"

	texture "github.com/gogpu/canvas/internal/image"
)

// CreateImage loads an image file (PNG, JPEG, GIF, BMP, TIFF or WebP).
// It returns 0 when the file cannot be read or decoded.
func (c *Context) CreateImage(filename string, flags ImageFlags) int {
	tex, err := texture.Load(filename, texture.Flags(flags))
	if err != nil {
		Logger().Warn("canvas: create image failed", "file", filename, "err", err)
		return 0
	}
	return c.images.Add(tex)
}

// CreateImageMem decodes an encoded image held in memory. It returns 0
// when the data cannot be decoded. data is not retained.
func (c *Context) CreateImageMem(flags ImageFlags, data []byte) int {
	tex, err := texture.Decode(data, texture.Flags(flags))
	if err != nil {
		Logger().Warn("canvas: create image from memory failed", "size", len(data), "err", err)
		return 0
	}
	return c.images.Add(tex)
}

// CreateImageRGBA creates a w×h image from RGBA pixels, 4 bytes each, row
// by row. data may be nil for a transparent image. It returns 0 on
// invalid dimensions or data length.
func (c *Context) CreateImageRGBA(w, h int, flags ImageFlags, data []byte) int {
	tex, err := texture.New(w, h, texture.FormatRGBA, texture.Flags(flags), data)
	if err != nil {
		Logger().Warn("canvas: create RGBA image failed", "width", w, "height", h, "err", err)
		return 0
	}
	return c.images.Add(tex)
}

// UpdateImage replaces the pixels of image with data, which must hold a
// full image in the image's format.
func (c *Context) UpdateImage(image int, data []byte) error {
	tex, err := c.image(image)
	if err != nil {
		return err
	}
	if err := tex.Update(data); err != nil {
		return fmt.Errorf("canvas: update image %d: %w", image, err)
	}
	return nil
}

// ImageSize returns the dimensions of image.
func (c *Context) ImageSize(image int) (w, h int, err error) {
	tex, err := c.image(image)
	if err != nil {
		return 0, 0, err
	}
	w, h = tex.Size()
	return w, h, nil
}

// DeleteImage releases image. The handle is never reused.
func (c *Context) DeleteImage(image int) error {
	if image == c.atlasImage {
		return fmt.Errorf("%w: image %d is the glyph atlas", ErrInvalidHandle, image)
	}
	if _, err := c.images.Delete(image); err != nil {
		Logger().Warn("canvas: delete image", "image", image, "err", err)
		return fmt.Errorf("%w: image %d", ErrInvalidHandle, image)
	}
	return nil
}

// FontImage returns the handle of the glyph atlas image.
func (c *Context) FontImage() int {
	return c.atlasImage
}

func (c *Context) image(h int) (*texture.Texture, error) {
	tex, err := c.images.Get(h)
	if err != nil {
		Logger().Warn("canvas: invalid image handle", "image", h)
		return nil, fmt.Errorf("%w: image %d", ErrInvalidHandle, h)
	}
	return tex, nil
}
