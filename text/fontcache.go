package text

import (
	"sync"

	"github.com/chewxy/math32"

	"github.com/gogpu/pixkit/buffer"
)

var layoutPool = sync.Pool{
	New: func() any { return new(GlyphLayout) },
}

// FontCache turns glyph layouts into a vertex stream for batched quad
// rendering. Text added with several AddText or AddLayout calls accumulates
// into one stream, which can then be moved as a whole with Translate.
//
// The zero value is ready to use. A FontCache is not safe for concurrent
// use.
type FontCache struct {
	vertices buffer.Floats
	layouts  []*GlyphLayout
	pooled   []*GlyphLayout
	x, y     float32
}

// NewFontCache returns a cache with room for glyphs quads before growing.
func NewFontCache(glyphs int) *FontCache {
	c := &FontCache{}
	c.vertices.Ensure(max(glyphs, 1) * FloatsPerGlyph)
	return c
}

// SetText clears the cache and adds text. See AddText.
func (c *FontCache) SetText(f Font, text string, x, y float32, opts TextOptions) {
	c.Clear()
	c.AddText(f, text, x, y, opts)
}

// SetLayout clears the cache and adds layout. See AddLayout.
func (c *FontCache) SetLayout(layout *GlyphLayout, x, y float32, opts TextOptions) {
	c.Clear()
	c.AddLayout(layout, x, y, opts)
}

// AddText lays out text with f and opts and adds the result at (x, y).
// The layout is owned by the cache until Clear.
func (c *FontCache) AddText(f Font, text string, x, y float32, opts TextOptions) {
	layout := layoutPool.Get().(*GlyphLayout)
	layout.SetText(f, text, opts)
	c.pooled = append(c.pooled, layout)
	c.AddLayout(layout, x, y, opts)
}

// AddLayout appends a quad for every glyph of layout, placing the layout
// origin at (x, y). opts supplies scale, rotation and color; layout
// options in opts are ignored. The layout must have been built with the
// same scale.
//
// Within a run the pen starts at x + run.X and moves by Advances[i] before
// glyph i is emitted. With a non-zero rotation every glyph anchor is
// rotated about (x, y) and each quad is rotated about its anchor.
func (c *FontCache) AddLayout(layout *GlyphLayout, x, y float32, opts TextOptions) {
	if layout == nil {
		return
	}
	c.layouts = append(c.layouts, layout)

	q := quadParams{
		originX: x,
		originY: y,
		scale:   opts.scale(),
		cos:     1,
		color:   opts.Color.FloatBits(),
	}
	if opts.Rotation != 0 {
		q.sin, q.cos = math32.Sincos(opts.Rotation)
		q.rotated = true
	}

	c.vertices.Ensure(layout.GlyphCount() * FloatsPerGlyph)
	for i := range layout.Runs {
		run := &layout.Runs[i]
		tx := x + run.X
		ty := y + run.Y
		for j := range run.Glyphs {
			tx += run.Advances[j]
			c.addGlyph(&run.Glyphs[j], tx, ty, &q)
		}
	}
}

type quadParams struct {
	originX, originY float32
	scale            float32
	sin, cos         float32
	rotated          bool
	color            float32
}

// placeholderUV maps a glyph without an atlas region onto the whole texture.
var placeholderUV = Region{U: 0, V: 0, U2: 1, V2: 1}

func (c *FontCache) addGlyph(g *GlyphMetrics, tx, ty float32, q *quadParams) {
	left := g.Left * q.scale
	right := left + g.Width*q.scale
	top := g.Top * q.scale
	bottom := top - g.Height*q.scale

	// Corners relative to the anchor: bottom-left, top-left, top-right,
	// bottom-right.
	x1, y1 := left, bottom
	x2, y2 := left, top
	x3, y3 := right, top
	x4, y4 := right, bottom
	if q.rotated {
		dx, dy := tx-q.originX, ty-q.originY
		tx = q.originX + dx*q.cos - dy*q.sin
		ty = q.originY + dx*q.sin + dy*q.cos
		x1, y1 = rotate(x1, y1, q.sin, q.cos)
		x2, y2 = rotate(x2, y2, q.sin, q.cos)
		x3, y3 = rotate(x3, y3, q.sin, q.cos)
		x4, y4 = rotate(x4, y4, q.sin, q.cos)
	}

	uv := g.Region
	if uv.IsEmpty() {
		uv = placeholderUV
	}
	col := q.color
	c.vertices.Add(
		tx+x1, ty+y1, col, uv.U, uv.V2,
		tx+x2, ty+y2, col, uv.U, uv.V,
		tx+x3, ty+y3, col, uv.U2, uv.V,
		tx+x4, ty+y4, col, uv.U2, uv.V2,
	)
}

func rotate(x, y, sin, cos float32) (float32, float32) {
	return x*cos - y*sin, x*sin + y*cos
}

// Translate moves the origin and every vertex by (tx, ty).
func (c *FontCache) Translate(tx, ty float32) {
	if tx == 0 && ty == 0 {
		return
	}
	c.x += tx
	c.y += ty
	v := c.vertices.Slice()
	for i := 0; i+1 < len(v); i += VertexSize {
		v[i] += tx
		v[i+1] += ty
	}
}

// SetPosition moves the origin to (px, py), translating every vertex by
// the difference.
func (c *FontCache) SetPosition(px, py float32) {
	c.Translate(px-c.x, py-c.y)
}

// Position returns the origin accumulated by Translate and SetPosition.
func (c *FontCache) Position() (x, y float32) {
	return c.x, c.y
}

// Clear empties the vertex stream, forgets all layouts and resets the
// origin to (0, 0). Layouts created by AddText are recycled.
func (c *FontCache) Clear() {
	c.vertices.Clear()
	clear(c.layouts)
	c.layouts = c.layouts[:0]
	for i, l := range c.pooled {
		l.Reset()
		layoutPool.Put(l)
		c.pooled[i] = nil
	}
	c.pooled = c.pooled[:0]
	c.x, c.y = 0, 0
}

// Vertices returns the vertex stream. The slice is valid until the next
// call that adds glyphs or clears the cache.
func (c *FontCache) Vertices() []float32 {
	return c.vertices.Slice()
}

// VertexCount returns the number of vertices in the stream.
func (c *FontCache) VertexCount() int {
	return c.vertices.Len() / VertexSize
}

// GlyphCount returns the number of glyph quads in the stream.
func (c *FontCache) GlyphCount() int {
	return c.vertices.Len() / FloatsPerGlyph
}

// Layouts returns the layouts added since the last Clear.
func (c *FontCache) Layouts() []*GlyphLayout {
	return c.layouts
}
