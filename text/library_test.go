package text

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func newTestLibrary(t *testing.T, idle int) *FontLibrary {
	t.Helper()
	lib := NewFontLibrary(idle, WithRunes('a', 'b', 'c'))
	require.NoError(t, lib.Register("regular", goregular.TTF))
	return lib
}

func TestFontLibrary_Errors(t *testing.T) {
	lib := NewFontLibrary(1)

	assert.ErrorIs(t, lib.Register("empty", nil), ErrEmptyFontData)

	_, err := lib.Acquire("missing", 12)
	assert.ErrorIs(t, err, ErrUnknownFont)
	assert.Contains(t, err.Error(), `"missing"`)

	_, err = lib.Acquire("missing", 0)
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.Zero(t, lib.Stats().Len)
}

func TestFontLibrary_RejectsNonFiniteSizes(t *testing.T) {
	lib := newTestLibrary(t, 1)
	for _, size := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := lib.Acquire("regular", size)
		assert.ErrorIs(t, err, ErrInvalidSize, "size %v", size)
	}
	st := lib.Stats()
	assert.Zero(t, st.Len)
	assert.Zero(t, st.Misses, "no load is attempted")
}

func TestFontLibrary_RegisterReplacesCachedFonts(t *testing.T) {
	lib := newTestLibrary(t, 4)

	idle, err := lib.Acquire("regular", 16)
	require.NoError(t, err)
	oldIdle := idle.Value()
	lib.Release(idle)

	live, err := lib.Acquire("regular", 24)
	require.NoError(t, err)

	require.NoError(t, lib.Register("regular", gobold.TTF))
	assert.EqualValues(t, 1, lib.Stats().Evictions, "idle font built from old data is closed")

	fresh, err := lib.Acquire("regular", 16)
	require.NoError(t, err)
	assert.NotSame(t, oldIdle, fresh.Value())

	fresh24, err := lib.Acquire("regular", 24)
	require.NoError(t, err)
	assert.NotSame(t, live.Value(), fresh24.Value(), "new data is used even while an old handle is live")
	assert.EqualValues(t, 4, lib.Stats().Loads)

	// The old handle stays usable until released.
	_, ok := live.Value().Glyph('a')
	assert.True(t, ok)
	for _, h := range []*FontHandle{live, fresh, fresh24} {
		lib.Release(h)
	}

	// Registering a new name evicts nothing.
	require.NoError(t, lib.Register("bold", gobold.TTF))
	assert.EqualValues(t, 1, lib.Stats().Evictions)
}

func TestFontLibrary_SharesFonts(t *testing.T) {
	lib := newTestLibrary(t, 4)

	h1, err := lib.Acquire("regular", 16)
	require.NoError(t, err)
	h2, err := lib.Acquire("regular", 16)
	require.NoError(t, err)
	h3, err := lib.Acquire("regular", 24)
	require.NoError(t, err)

	assert.Same(t, h1.Value(), h2.Value())
	assert.NotSame(t, h1.Value(), h3.Value())
	assert.Equal(t, "regular", h3.Key().Name)
	assert.Equal(t, 24.0, h3.Key().Size)
	assert.Equal(t, float32(24), h3.Value().Metrics().Size)

	st := lib.Stats()
	assert.EqualValues(t, 2, st.Loads)
	assert.EqualValues(t, 1, st.Hits)

	for _, h := range []*FontHandle{h1, h2, h3} {
		lib.Release(h)
	}
	assert.Equal(t, 2, lib.Stats().Idle)

	// Idle fonts are served without reloading.
	h4, err := lib.Acquire("regular", 16)
	require.NoError(t, err)
	assert.EqualValues(t, 2, lib.Stats().Loads)
	lib.Release(h4)
}

func TestFontLibrary_Purge(t *testing.T) {
	lib := newTestLibrary(t, 4)

	h, err := lib.Acquire("regular", 16)
	require.NoError(t, err)
	lib.Release(h)

	lib.Purge()
	st := lib.Stats()
	assert.Zero(t, st.Len)
	assert.EqualValues(t, 1, st.Evictions)

	h, err = lib.Acquire("regular", 16)
	require.NoError(t, err)
	assert.EqualValues(t, 2, lib.Stats().Loads)
	lib.Release(h)
}

func TestFontLibrary_FontUsableWithCache(t *testing.T) {
	lib := newTestLibrary(t, 1)
	h, err := lib.Acquire("regular", 20)
	require.NoError(t, err)
	defer lib.Release(h)

	var c FontCache
	c.SetText(h.Value(), "abc", 0, 0, DefaultTextOptions())
	assert.Equal(t, 3, c.GlyphCount())
}
