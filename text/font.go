package text

// Font provides the glyph metrics the layout engine and vertex cache need.
// Implementations must return the same metrics for the same rune for as
// long as layouts built from them are in use.
type Font interface {
	// Glyph returns the metrics for r, or false if the font has no glyph.
	Glyph(r rune) (GlyphMetrics, bool)

	// Kern returns the extra advance between a and b, usually negative.
	Kern(a, b rune) float32

	// Metrics returns the font-wide metrics.
	Metrics() FontMetrics
}

// FontMetrics holds font-wide vertical metrics in a y-up space with the
// baseline at zero, so descent and bottom are negative.
type FontMetrics struct {
	// Size is the font size in pixels.
	Size float32
	// Top is the highest point of any glyph, such as the accent on 'É'.
	Top float32
	// Ascent is the distance from the baseline to the top of a capital.
	Ascent float32
	// Baseline is the baseline position, normally zero.
	Baseline float32
	// Descent is the lowest point of a glyph such as 'j'.
	Descent float32
	// Bottom is Descent minus the line gap.
	Bottom float32
	// Leading is the extra space between lines.
	Leading float32
	// MaxWidth is the largest advance of any glyph.
	MaxWidth float32
	// CapHeight is the height of 'E'.
	CapHeight float32
}

// EmHeight returns Ascent - Descent.
func (m FontMetrics) EmHeight() float32 {
	return m.Ascent - m.Descent
}

// LineHeight returns the distance between consecutive baselines.
func (m FontMetrics) LineHeight() float32 {
	return m.Top - m.Bottom
}
