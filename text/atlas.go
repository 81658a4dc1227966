package text

import (
	"fmt"
	"image"
	"math"
	"slices"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/pixkit"
)

const (
	defaultAtlasWidth  = 256
	initialAtlasHeight = 32
	defaultPadding     = 1
)

// AtlasOption configures glyph atlas construction.
type AtlasOption func(*atlasOptions)

type atlasOptions struct {
	runes   []rune
	padding int
	width   int
}

func defaultAtlasOptions() atlasOptions {
	return atlasOptions{
		padding: defaultPadding,
		width:   defaultAtlasWidth,
	}
}

// WithRunes adds runes to rasterize into the atlas.
func WithRunes(runes ...rune) AtlasOption {
	return func(o *atlasOptions) {
		o.runes = append(o.runes, runes...)
	}
}

// WithRuneRange adds every rune from lo to hi inclusive.
func WithRuneRange(lo, hi rune) AtlasOption {
	return func(o *atlasOptions) {
		for r := lo; r <= hi; r++ {
			o.runes = append(o.runes, r)
		}
	}
}

// WithPadding sets the empty border kept around each glyph, in pixels.
func WithPadding(px int) AtlasOption {
	return func(o *atlasOptions) {
		o.padding = max(px, 0)
	}
}

// WithAtlasWidth sets the atlas width in pixels. The height grows as needed.
func WithAtlasWidth(px int) AtlasOption {
	return func(o *atlasOptions) {
		if px > 0 {
			o.width = px
		}
	}
}

// FaceFont is a Font backed by a golang.org/x/image font.Face whose glyphs
// are rasterized once into an atlas pixmap. Atlas pixels are white with the
// glyph coverage in the alpha channel, so vertex colors tint them directly.
//
// Glyph and Metrics are safe for concurrent use; Kern serializes access to
// the underlying face.
type FaceFont struct {
	glyphs  map[rune]GlyphMetrics
	metrics FontMetrics
	atlas   *pixkit.Pixmap

	mu   sync.Mutex
	face font.Face
}

// NewFaceFont rasterizes the requested runes of face into a new atlas.
// Without WithRunes or WithRuneRange the printable ASCII range is used.
//
// size is the em size in pixels the face was created with. font.Face does
// not report it, and shapers scale outlines by it, so it must match the face.
func NewFaceFont(face font.Face, size float32, opts ...AtlasOption) (*FaceFont, error) {
	if !validSize(float64(size)) {
		return nil, ErrInvalidSize
	}
	return newFaceFont(face, size, opts)
}

// validSize reports whether size is a usable font size.
func validSize(size float64) bool {
	return size > 0 && !math.IsInf(size, 0)
}

// LoadFaceFont parses TrueType or OpenType data and rasterizes it at size
// pixels (72 DPI, no hinting).
func LoadFaceFont(ttf []byte, size float64, opts ...AtlasOption) (*FaceFont, error) {
	if len(ttf) == 0 {
		return nil, ErrEmptyFontData
	}
	if !validSize(size) {
		return nil, ErrInvalidSize
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("text: create face: %w", err)
	}
	return newFaceFont(face, float32(size), opts)
}

func newFaceFont(face font.Face, size float32, opts []AtlasOption) (*FaceFont, error) {
	o := defaultAtlasOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.runes) == 0 {
		for r := rune(0x20); r <= 0x7e; r++ {
			o.runes = append(o.runes, r)
		}
	}

	fm := face.Metrics()
	ascent := fixedToFloat(fm.Ascent)
	descent := fixedToFloat(fm.Descent)
	gap := max(fixedToFloat(fm.Height)-ascent-descent, 0)

	ff := &FaceFont{
		glyphs: make(map[rune]GlyphMetrics, len(o.runes)),
		metrics: FontMetrics{
			Size:      size,
			Top:       ascent,
			Ascent:    ascent,
			Descent:   -descent,
			Bottom:    -descent - gap,
			Leading:   gap,
			CapHeight: fixedToFloat(fm.CapHeight),
		},
		face: face,
	}

	p := newPacker(o.width, o.padding)
	type placed struct {
		r    rune
		rect image.Rectangle
	}
	var atlasRects []placed

	seen := make(map[rune]bool, len(o.runes))
	for _, r := range o.runes {
		if seen[r] {
			continue
		}
		seen[r] = true

		dr, mask, maskp, adv, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			continue
		}
		g := GlyphMetrics{
			Code:     r,
			Size:     size,
			XAdvance: fixedToFloat(adv),
		}
		ff.metrics.MaxWidth = max(ff.metrics.MaxWidth, g.XAdvance)

		ink := inkBounds(dr, mask, maskp)
		if ink.Empty() {
			ff.glyphs[r] = g
			continue
		}
		g.Left = float32(ink.Min.X)
		g.Top = float32(-ink.Min.Y) - ff.metrics.Top
		g.Width = float32(ink.Dx())
		g.Height = float32(ink.Dy())

		dst, err := p.place(r, ink.Dx(), ink.Dy())
		if err != nil {
			return nil, err
		}
		p.blit(dst, ink, dr, mask, maskp)
		ff.glyphs[r] = g
		atlasRects = append(atlasRects, placed{r: r, rect: dst})
	}

	ff.atlas = p.atlas
	aw, ah := float32(p.atlas.Width()), float32(p.atlas.Height())
	for _, pl := range atlasRects {
		g := ff.glyphs[pl.r]
		g.Region = Region{
			U:  float32(pl.rect.Min.X) / aw,
			V:  float32(pl.rect.Min.Y) / ah,
			U2: float32(pl.rect.Max.X) / aw,
			V2: float32(pl.rect.Max.Y) / ah,
		}
		ff.glyphs[pl.r] = g
	}

	pixkit.Logger().Debug("text: glyph atlas built",
		"glyphs", len(ff.glyphs),
		"packed", len(atlasRects),
		"width", p.atlas.Width(),
		"height", p.atlas.Height())
	return ff, nil
}

// Glyph implements Font.
func (f *FaceFont) Glyph(r rune) (GlyphMetrics, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

// Kern implements Font.
func (f *FaceFont) Kern(a, b rune) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fixedToFloat(f.face.Kern(a, b))
}

// Metrics implements Font.
func (f *FaceFont) Metrics() FontMetrics {
	return f.metrics
}

// Atlas returns the glyph atlas. Callers must not modify it.
func (f *FaceFont) Atlas() *pixkit.Pixmap {
	return f.atlas
}

// Runes returns the runes with glyph metrics in ascending order.
func (f *FaceFont) Runes() []rune {
	out := make([]rune, 0, len(f.glyphs))
	for r := range f.glyphs {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// Close releases the underlying face.
func (f *FaceFont) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.face.Close()
}

// inkBounds returns the part of dr where mask has non-zero coverage.
// mask pixel maskp corresponds to dr.Min.
func inkBounds(dr image.Rectangle, mask image.Image, maskp image.Point) image.Rectangle {
	var ink image.Rectangle
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		for x := dr.Min.X; x < dr.Max.X; x++ {
			if coverage(mask, maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y) == 0 {
				continue
			}
			px := image.Rect(x, y, x+1, y+1)
			if ink.Empty() {
				ink = px
			} else {
				ink = ink.Union(px)
			}
		}
	}
	return ink
}

func coverage(mask image.Image, x, y int) uint8 {
	if a, ok := mask.(*image.Alpha); ok {
		return a.AlphaAt(x, y).A
	}
	_, _, _, a := mask.At(x, y).RGBA()
	return uint8(a >> 8)
}

// packer places glyph masks on shelves in a fixed-width atlas, doubling the
// atlas height when a shelf does not fit.
type packer struct {
	atlas   *pixkit.Pixmap
	padding int
	x, y    int // next free position on the current shelf
	shelfH  int
}

func newPacker(width, padding int) *packer {
	return &packer{
		atlas:   pixkit.NewPixmap(width, initialAtlasHeight),
		padding: padding,
		x:       padding,
		y:       padding,
	}
}

func (p *packer) place(r rune, w, h int) (image.Rectangle, error) {
	if w+2*p.padding > p.atlas.Width() {
		return image.Rectangle{}, &GlyphTooLargeError{Rune: r, Width: w, AtlasWidth: p.atlas.Width()}
	}
	if p.x+w+p.padding > p.atlas.Width() {
		p.x = p.padding
		p.y += p.shelfH + p.padding
		p.shelfH = 0
	}
	for p.y+h+p.padding > p.atlas.Height() {
		p.grow()
	}
	dst := image.Rect(p.x, p.y, p.x+w, p.y+h)
	p.x += w + p.padding
	p.shelfH = max(p.shelfH, h)
	return dst, nil
}

func (p *packer) grow() {
	old := p.atlas
	p.atlas = pixkit.NewPixmap(old.Width(), old.Height()*2)
	p.atlas.Draw(old, 0, 0, pixkit.BlitOptions{})
	pixkit.Logger().Debug("text: glyph atlas grown",
		"width", p.atlas.Width(),
		"height", p.atlas.Height())
}

// blit copies the ink part of a glyph mask to dst as white with alpha.
func (p *packer) blit(dst, ink, dr image.Rectangle, mask image.Image, maskp image.Point) {
	for y := 0; y < ink.Dy(); y++ {
		for x := 0; x < ink.Dx(); x++ {
			mx := maskp.X + ink.Min.X - dr.Min.X + x
			my := maskp.Y + ink.Min.Y - dr.Min.Y + y
			if a := coverage(mask, mx, my); a != 0 {
				p.atlas.Set(dst.Min.X+x, dst.Min.Y+y, pixkit.PackRGBA(255, 255, 255, a))
			}
		}
	}
}
