package text

// Region is a normalized texture rectangle in the glyph atlas.
// (U, V) is the top-left corner and (U2, V2) the bottom-right corner, with V
// growing downward as in the atlas pixmap.
type Region struct {
	U, V, U2, V2 float32
}

// IsEmpty reports whether the region covers no texture area.
func (r Region) IsEmpty() bool {
	return r.U2 <= r.U || r.V2 <= r.V
}

// GlyphMetrics describes one glyph of a font at a given size.
//
// Bounds are in the y-up layout space, in unscaled font pixels: Left is the
// offset from the pen position to the left edge, Top the offset from the
// line top to the glyph's top edge (zero or negative). The glyph covers
// [Left, Left+Width] × [Top-Height, Top].
type GlyphMetrics struct {
	Code     rune
	Size     float32
	Left     float32
	Top      float32
	Width    float32
	Height   float32
	XAdvance float32

	// Region is the glyph's atlas area. Glyphs without ink have an empty
	// region.
	Region Region
}

// Right returns the x offset of the glyph's right edge.
func (g GlyphMetrics) Right() float32 { return g.Left + g.Width }

// Bottom returns the y offset of the glyph's bottom edge.
func (g GlyphMetrics) Bottom() float32 { return g.Top - g.Height }

// Visible reports whether the glyph has an area to draw.
func (g GlyphMetrics) Visible() bool { return g.Width > 0 && g.Height > 0 }
