package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// GlyphRun is one laid out line, or the part of a line left after wrapping.
//
// X and Y are the run's origin relative to the layout origin in the y-up
// layout space. Advances is parallel to Glyphs: Advances[0] is zero and
// Advances[i] is the scaled distance from glyph i-1 to glyph i, so glyph i is
// drawn at X + Advances[0] + ... + Advances[i].
type GlyphRun struct {
	Glyphs   []GlyphMetrics
	Advances []float32
	X, Y     float32
	Width    float32
}

// GlyphLayout is the result of laying out a block of text.
//
// Lines stack downward from the origin: the first line's top edge is at
// y = 0 and line n starts at y = -n * LineHeight * scale.
// A GlyphLayout can be reused; SetText keeps the run storage.
type GlyphLayout struct {
	Runs   []GlyphRun
	Width  float32
	Height float32
}

// Reset empties the layout, keeping allocated storage.
func (l *GlyphLayout) Reset() {
	for i := range l.Runs {
		l.Runs[i].Glyphs = l.Runs[i].Glyphs[:0]
		l.Runs[i].Advances = l.Runs[i].Advances[:0]
	}
	l.Runs = l.Runs[:0]
	l.Width = 0
	l.Height = 0
}

// GlyphCount returns the number of glyphs in all runs.
func (l *GlyphLayout) GlyphCount() int {
	n := 0
	for i := range l.Runs {
		n += len(l.Runs[i].Glyphs)
	}
	return n
}

// SetText lays out text with f using the scale, target width, alignment,
// wrap mode and shaper from opts. Rotation and color are ignored.
//
// Text is normalized to NFC and split at '\n' ("\r\n" is accepted).
// Glyphs without ink, such as spaces, take up their advance but are not
// stored in a run.
func (l *GlyphLayout) SetText(f Font, text string, opts TextOptions) {
	l.Reset()
	if f == nil || text == "" {
		return
	}

	scale := opts.scale()
	shaper := opts.shaper()
	lineHeight := f.Metrics().LineHeight() * scale
	wrap := opts.Wrap != WrapNone && opts.TargetWidth > 0

	line := 0
	for _, hard := range strings.Split(norm.NFC.String(text), "\n") {
		runes := []rune(strings.TrimSuffix(hard, "\r"))
		adv := shaper.Advances(f, runes)
		for i := range adv {
			adv[i] *= scale
		}

		segs := [][2]int{{0, len(runes)}}
		if wrap {
			segs = wrapLine(runes, adv, opts.TargetWidth, opts.Wrap)
		}
		for _, seg := range segs {
			l.addRun(f, runes[seg[0]:seg[1]], adv[seg[0]:seg[1]], -float32(line)*lineHeight, opts)
			line++
		}
	}

	if line > 0 {
		m := f.Metrics()
		l.Height = float32(line-1)*lineHeight + (m.Top-m.Descent)*scale
	}
}

// addRun appends one line of runes at height y.
func (l *GlyphLayout) addRun(f Font, runes []rune, adv []float32, y float32, opts TextOptions) {
	var (
		pen, last, start float32
		width            float32
	)

	run := l.nextRun()
	for i, r := range runes {
		if g, ok := f.Glyph(r); ok && g.Visible() {
			if len(run.Glyphs) == 0 {
				start = pen
				run.Advances = append(run.Advances, 0)
			} else {
				run.Advances = append(run.Advances, pen-last)
			}
			last = pen
			run.Glyphs = append(run.Glyphs, g)
		}
		pen += adv[i]
		if !unicode.IsSpace(r) {
			width = pen
		}
	}

	l.Width = max(l.Width, width)
	if len(run.Glyphs) == 0 {
		l.Runs = l.Runs[:len(l.Runs)-1]
		return
	}

	var offset float32
	switch opts.Align {
	case AlignCenter:
		offset = (opts.TargetWidth - width) / 2
	case AlignRight:
		offset = opts.TargetWidth - width
	}
	run.X = offset + start
	run.Y = y
	run.Width = width - start
}

// nextRun grows Runs by one, reusing storage left by Reset.
func (l *GlyphLayout) nextRun() *GlyphRun {
	n := len(l.Runs)
	if n < cap(l.Runs) {
		l.Runs = l.Runs[:n+1]
	} else {
		l.Runs = append(l.Runs, GlyphRun{})
	}
	run := &l.Runs[n]
	run.Glyphs = run.Glyphs[:0]
	run.Advances = run.Advances[:0]
	run.X, run.Y, run.Width = 0, 0, 0
	return run
}

// wrapLine splits one hard line into segments no wider than maxWidth.
// Spaces never cause a break themselves; they hang past the edge and are
// dropped at the start of the next segment. Every segment holds at least
// one rune.
func wrapLine(runes []rune, adv []float32, maxWidth float32, mode WrapMode) [][2]int {
	var segs [][2]int
	start, brk := 0, -1
	var w float32

	for i := 0; i < len(runes); i++ {
		if unicode.IsSpace(runes[i]) {
			if mode != WrapChar {
				brk = i
			}
			w += adv[i]
			continue
		}
		if w+adv[i] <= maxWidth || i == start {
			w += adv[i]
			continue
		}

		switch {
		case brk > start:
			segs = append(segs, [2]int{start, brk})
			start = skipSpaces(runes, brk)
		case mode == WrapWordChar || mode == WrapChar:
			segs = append(segs, [2]int{start, i})
			start = i
		default:
			// WrapWord without a break opportunity: let the word overflow.
			w += adv[i]
			continue
		}
		brk = -1
		w = 0
		i = start - 1
	}

	if start < len(runes) || len(segs) == 0 {
		segs = append(segs, [2]int{start, len(runes)})
	}
	return segs
}

func skipSpaces(runes []rune, i int) int {
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return i
}
