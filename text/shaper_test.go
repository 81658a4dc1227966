package text

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func TestBasicShaper(t *testing.T) {
	adv := BasicShaper{}.Advances(monoFont{}, []rune("AVa\x01"))
	assert.Equal(t, []float32{4, 6, 6, 0}, adv)

	assert.Empty(t, BasicShaper{}.Advances(monoFont{}, nil))
}

func TestNewGoTextShaper_Errors(t *testing.T) {
	_, err := NewGoTextShaper(nil)
	assert.ErrorIs(t, err, ErrEmptyFontData)

	_, err = NewGoTextShaper([]byte("not a font"))
	assert.Error(t, err)
}

func TestGoTextShaper_MatchesFaceAdvances(t *testing.T) {
	f, err := LoadFaceFont(goregular.TTF, 32, WithRuneRange('a', 'z'))
	require.NoError(t, err)
	s, err := NewGoTextShaper(goregular.TTF)
	require.NoError(t, err)

	runes := []rune("abcmno")
	got := s.Advances(f, runes)
	want := BasicShaper{}.Advances(f, runes)

	require.Len(t, got, len(runes))
	for i := range runes {
		assert.InDelta(t, want[i], got[i], 1, "advance of %q", runes[i])
		assert.Greater(t, got[i], float32(0))
	}
	assert.Empty(t, s.Advances(f, nil))
}

func TestGoTextShaper_WithFaceFont(t *testing.T) {
	parsed, err := opentype.Parse(goregular.TTF)
	require.NoError(t, err)
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{Size: 18, DPI: 72, Hinting: font.HintingNone})
	require.NoError(t, err)

	f, err := NewFaceFont(face, 18, WithRuneRange('a', 'z'))
	require.NoError(t, err)
	assert.Equal(t, float32(18), f.Metrics().Size)
	assert.Greater(t, f.Metrics().LineHeight(), f.Metrics().Size, "line height is tracked separately")

	s, err := NewGoTextShaper(goregular.TTF)
	require.NoError(t, err)

	runes := []rune("mmmm")
	got := s.Advances(f, runes)
	want := BasicShaper{}.Advances(f, runes)
	for i := range runes {
		assert.InDelta(t, want[i], got[i], 0.5, "advance %d", i)
	}

	opts := DefaultTextOptions()
	opts.Shaper = s
	opts.TargetWidth = 40
	opts.Wrap = WrapWordChar
	var shaped, basic GlyphLayout
	shaped.SetText(f, "mmmm mmmm", opts)
	opts.Shaper = nil
	basic.SetText(f, "mmmm mmmm", opts)
	assert.Equal(t, len(basic.Runs), len(shaped.Runs))
}

func TestGoTextShaper_InLayout(t *testing.T) {
	f, err := LoadFaceFont(goregular.TTF, 16, WithRuneRange(' ', '~'))
	require.NoError(t, err)
	s, err := NewGoTextShaper(goregular.TTF)
	require.NoError(t, err)

	opts := DefaultTextOptions()
	opts.Shaper = s
	var shaped, basic GlyphLayout
	shaped.SetText(f, "hello world", opts)
	basic.SetText(f, "hello world", DefaultTextOptions())

	require.Len(t, shaped.Runs, 1)
	assert.Equal(t, basic.GlyphCount(), shaped.GlyphCount())
	assert.InDelta(t, basic.Width, shaped.Width, 4)
}

func TestGoTextShaper_Concurrent(t *testing.T) {
	f, err := LoadFaceFont(goregular.TTF, 20, WithRuneRange('a', 'z'))
	require.NoError(t, err)
	s, err := NewGoTextShaper(goregular.TTF)
	require.NoError(t, err)

	want := s.Advances(f, []rune("concurrent"))
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				assert.Equal(t, want, s.Advances(f, []rune("concurrent")))
			}
		}()
	}
	wg.Wait()
}
