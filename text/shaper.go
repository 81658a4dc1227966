package text

// Shaper computes pen advances for a line of text.
//
// Advances returns one value per rune: the unscaled distance the pen moves
// after that rune, including kerning with the next rune. Runes the font has
// no glyph for advance by zero unless the shaper knows better.
type Shaper interface {
	Advances(f Font, runes []rune) []float32
}

// BasicShaper advances by each glyph's XAdvance plus pair kerning.
// It is the default and is safe for concurrent use.
type BasicShaper struct{}

// Advances implements Shaper.
func (BasicShaper) Advances(f Font, runes []rune) []float32 {
	out := make([]float32, len(runes))
	for i, r := range runes {
		g, ok := f.Glyph(r)
		if !ok {
			continue
		}
		adv := g.XAdvance
		if i+1 < len(runes) {
			adv += f.Kern(r, runes[i+1])
		}
		out[i] = adv
	}
	return out
}
