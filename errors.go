package pixkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for pixmap construction and decoding.
var (
	// ErrInvalidDimensions is returned when a width or height is negative.
	ErrInvalidDimensions = errors.New("pixkit: invalid dimensions")

	// ErrPixelBufferSize is returned when a pixel slice does not hold
	// exactly width*height*4 bytes.
	ErrPixelBufferSize = errors.New("pixkit: pixel buffer size mismatch")
)

// PixelSizeError reports a pixel slice of the wrong length.
type PixelSizeError struct {
	Width  int
	Height int
	Got    int
}

func (e *PixelSizeError) Error() string {
	return fmt.Sprintf("pixkit: pixel buffer for %dx%d needs %d bytes, got %d",
		e.Width, e.Height, e.Width*e.Height*4, e.Got)
}

// Unwrap returns ErrPixelBufferSize.
func (e *PixelSizeError) Unwrap() error {
	return ErrPixelBufferSize
}
