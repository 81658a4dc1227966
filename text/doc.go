// Package text lays out text and turns it into vertex data for batched
// quad rendering.
//
// The pipeline has three stages:
//
//   - Font: glyph metrics and atlas regions. FaceFont rasterizes a
//     golang.org/x/image font.Face into a pixkit.Pixmap atlas.
//   - GlyphLayout: breaks text into lines (hard breaks and wrapping),
//     measures it with a Shaper and aligns each line.
//   - FontCache: converts layouts into a flat vertex stream of
//     (x, y, color, u, v) vertices, four per glyph, ready for a batch
//     renderer together with VertexLayout and QuadIndices.
//
// # Example usage
//
//	f, err := text.LoadFaceFont(ttf, 24)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	upload(f.Atlas().Data())
//
//	var cache text.FontCache
//	opts := text.DefaultTextOptions()
//	opts.TargetWidth = 200
//	opts.Wrap = text.WrapWordChar
//	opts.Align = text.AlignCenter
//	cache.SetText(f, "Hello, pixkit!", 10, 300, opts)
//
//	var indices buffer.Ints
//	text.QuadIndices(&indices, cache.GlyphCount())
//	draw(cache.Vertices(), indices.Slice())
//
// # Coordinates
//
// Layout and vertices use a y-up space. The point passed to SetText or
// AddText is the top-left corner of the first line; following lines are
// placed below it at decreasing y.
//
// # Shaping
//
// BasicShaper advances by glyph advance plus pair kerning from the Font.
// GoTextShaper uses HarfBuzz shaping from go-text/typesetting for OpenType
// kerning and ligatures:
//
//	s, err := text.NewGoTextShaper(ttf)
//	opts.Shaper = s
package text
