package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// GoTextShaper computes advances with HarfBuzz shaping from
// go-text/typesetting, picking up OpenType kerning (GPOS) and ligature
// substitution that BasicShaper ignores.
//
// A GoTextShaper is bound to the font data it was created from and shapes
// at the size reported by Font.Metrics. The advance of a multi-rune cluster,
// such as a ligature, is assigned to its first rune.
//
// GoTextShaper is safe for concurrent use. The parsed font.Font is read-only;
// a font.Face is created per call and HarfbuzzShaper instances are pooled.
type GoTextShaper struct {
	font       *font.Font
	shaperPool sync.Pool
	lang       language.Language
}

// NewGoTextShaper parses ttf (TrueType or OpenType data) for shaping.
func NewGoTextShaper(ttf []byte) (*GoTextShaper, error) {
	if len(ttf) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}
	return &GoTextShaper{
		font: face.Font,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		lang: language.NewLanguage("en"),
	}, nil
}

// Advances implements Shaper.
func (s *GoTextShaper) Advances(f Font, runes []rune) []float32 {
	out := make([]float32, len(runes))
	if len(runes) == 0 {
		return out
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(s.font),
		Size:      floatToFixed(f.Metrics().Size),
		Script:    detectScript(runes),
		Language:  s.lang,
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	for _, g := range output.Glyphs {
		idx := g.TextIndex()
		if idx < 0 || idx >= len(out) {
			continue
		}
		out[idx] += fixedToFloat(g.Advance)
	}
	return out
}

// detectScript returns the script of the first non-space rune. Mixed-script
// text should be split by the caller.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
