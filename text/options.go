package text

import "github.com/gogpu/pixkit"

const unknownStr = "Unknown"

// Alignment specifies horizontal alignment of each line within the target
// width.
type Alignment int

const (
	// AlignLeft aligns lines to the left edge (default).
	AlignLeft Alignment = iota
	// AlignCenter centers lines.
	AlignCenter
	// AlignRight aligns lines to the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// WrapMode specifies how lines longer than the target width are broken.
// Wrapping only happens when TextOptions.TargetWidth is positive.
type WrapMode uint8

const (
	// WrapWordChar breaks at spaces first and inside a word only when the
	// word alone is wider than the target.
	WrapWordChar WrapMode = iota

	// WrapNone disables wrapping; lines may exceed the target width.
	WrapNone

	// WrapWord breaks at spaces only. Long words overflow.
	WrapWord

	// WrapChar breaks before any glyph that would overflow.
	WrapChar
)

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "None"
	case WrapWord:
		return "Word"
	case WrapChar:
		return "Char"
	case WrapWordChar:
		return "WordChar"
	default:
		return unknownStr
	}
}

// TextOptions controls layout and vertex generation for a block of text.
type TextOptions struct {
	// Scale multiplies all font metrics. Zero means 1.
	Scale float32

	// Rotation in radians, counter-clockwise about the text origin.
	Rotation float32

	// Color is written into every vertex.
	Color pixkit.Color

	// TargetWidth is the width lines are aligned within and wrapped at.
	// Zero aligns relative to the origin and disables wrapping.
	TargetWidth float32

	// Align is the horizontal line alignment.
	Align Alignment

	// Wrap selects the line breaking mode.
	Wrap WrapMode

	// Shaper computes glyph advances. Nil selects BasicShaper.
	Shaper Shaper
}

// DefaultTextOptions returns options for unscaled, unrotated, black,
// left-aligned text without wrapping.
func DefaultTextOptions() TextOptions {
	return TextOptions{
		Scale: 1,
		Color: pixkit.Black,
		Align: AlignLeft,
		Wrap:  WrapNone,
	}
}

func (o *TextOptions) scale() float32 {
	if o.Scale == 0 {
		return 1
	}
	return o.Scale
}

func (o *TextOptions) shaper() Shaper {
	if o.Shaper == nil {
		return BasicShaper{}
	}
	return o.Shaper
}
