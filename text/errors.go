package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize is returned for font sizes that are not positive and finite.
	ErrInvalidSize = errors.New("text: font size must be positive and finite")

	// ErrUnknownFont is returned by FontLibrary for unregistered names.
	ErrUnknownFont = errors.New("text: unknown font")

	// ErrGlyphTooLarge is returned when a glyph does not fit the atlas width.
	ErrGlyphTooLarge = errors.New("text: glyph wider than atlas")
)

// GlyphTooLargeError reports the glyph that could not be packed.
type GlyphTooLargeError struct {
	Rune       rune
	Width      int
	AtlasWidth int
}

func (e *GlyphTooLargeError) Error() string {
	return fmt.Sprintf("text: glyph %q is %d px wide, atlas is %d px", e.Rune, e.Width, e.AtlasWidth)
}

func (e *GlyphTooLargeError) Unwrap() error {
	return ErrGlyphTooLarge
}
