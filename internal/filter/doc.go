// Package filter provides the separable Gaussian blur used for blurred
// glyph masks.
package filter
