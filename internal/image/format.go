// Package image holds the textures referenced by image paints and the
// glyph atlas.
//
// Textures are stored premultiplied. RGBA data uploaded without the
// Premultiplied flag is converted on upload. Alpha textures hold one byte
// per pixel and sample as premultiplied white with that alpha.
package image

// Format represents a texture storage format.
type Format uint8

const (
	// FormatAlpha stores one coverage byte per pixel.
	FormatAlpha Format = iota + 1

	// FormatRGBA stores four bytes per pixel.
	FormatRGBA
)

// BytesPerPixel returns the size of one pixel in bytes.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatAlpha:
		return 1
	case FormatRGBA:
		return 4
	default:
		return 0
	}
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatAlpha:
		return "Alpha"
	case FormatRGBA:
		return "RGBA"
	default:
		return "Unknown"
	}
}

// Flags control texture sampling and upload.
type Flags int

const (
	// FlagGenerateMipmaps builds a mipmap chain used on minification.
	FlagGenerateMipmaps Flags = 1 << iota
	// FlagRepeatX repeats the texture horizontally.
	FlagRepeatX
	// FlagRepeatY repeats the texture vertically.
	FlagRepeatY
	// FlagFlipY flips the texture vertically when sampling.
	FlagFlipY
	// FlagPremultiplied marks uploaded RGBA data as premultiplied.
	FlagPremultiplied
	// FlagNearest selects nearest-neighbor sampling.
	FlagNearest
)

// Has reports whether all bits of f2 are set.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}
