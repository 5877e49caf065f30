package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidFont is returned for an unknown font handle.
	ErrInvalidFont = errors.New("text: invalid font handle")

	// ErrFontIndex is returned when a collection index is out of range.
	ErrFontIndex = errors.New("text: font index out of range")
)
