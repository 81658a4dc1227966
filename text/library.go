package text

import (
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/pixkit"
	"github.com/gogpu/pixkit/cache"
)

// FontKey identifies a rasterized font in a FontLibrary.
type FontKey struct {
	Name string
	Size float64

	// gen is the registration of Name the font was built from.
	gen uint64
}

func hashFontKey(k FontKey) uint64 {
	return cache.StringHasher(k.Name) ^ math.Float64bits(k.Size)
}

// FontHandle keeps a FaceFont acquired from a FontLibrary alive.
type FontHandle = cache.Handle[FontKey, *FaceFont]

type fontData struct {
	ttf []byte
	gen uint64
}

// FontLibrary shares glyph atlases between text batches. Font data is
// registered once by name; Acquire rasterizes a (name, size) pair on first
// use and returns the shared FaceFont afterwards. Released fonts stay
// cached until more than the idle capacity of them pile up, then the least
// recently released are closed.
//
// FontLibrary is safe for concurrent use.
type FontLibrary struct {
	mu    sync.RWMutex
	data  map[string]fontData
	gen   uint64
	opts  []AtlasOption
	fonts *cache.Cache[FontKey, *FaceFont]
}

// NewFontLibrary creates a library that keeps up to idleCapacity released
// fonts per cache shard. opts apply to every atlas it builds.
func NewFontLibrary(idleCapacity int, opts ...AtlasOption) *FontLibrary {
	return &FontLibrary{
		data: make(map[string]fontData),
		opts: opts,
		fonts: cache.New(idleCapacity, hashFontKey,
			cache.WithOnEvict(func(k FontKey, f *FaceFont) {
				_ = f.Close()
			})),
	}
}

// Register adds TrueType or OpenType data under name, replacing any data
// registered before. Idle fonts built from replaced data are closed, and
// later Acquire calls build from the new data. Handles acquired earlier
// keep their font until released, after which it ages out of the cache.
func (l *FontLibrary) Register(name string, ttf []byte) error {
	if len(ttf) == 0 {
		return ErrEmptyFontData
	}
	l.mu.Lock()
	_, replaced := l.data[name]
	l.gen++
	gen := l.gen
	l.data[name] = fontData{ttf: ttf, gen: gen}
	l.mu.Unlock()

	if replaced {
		l.fonts.PurgeFunc(func(k FontKey) bool {
			return k.Name == name && k.gen != gen
		})
	}
	return nil
}

// Acquire returns a handle to the font registered as name, rasterized at
// size pixels. Release the handle when done.
func (l *FontLibrary) Acquire(name string, size float64) (*FontHandle, error) {
	if !validSize(size) {
		return nil, ErrInvalidSize
	}
	l.mu.RLock()
	d, ok := l.data[name]
	l.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}

	key := FontKey{Name: name, Size: size, gen: d.gen}
	return l.fonts.GetOrLoad(key, func() (*FaceFont, error) {
		f, err := LoadFaceFont(d.ttf, size, l.opts...)
		if err != nil {
			return nil, err
		}
		pixkit.Logger().Debug("text: font loaded", "name", name, "size", size)
		return f, nil
	})
}

// Release returns a handle obtained from Acquire.
func (l *FontLibrary) Release(h *FontHandle) {
	l.fonts.Release(h)
}

// Purge closes every font without live handles.
func (l *FontLibrary) Purge() {
	l.fonts.Purge()
}

// Stats returns the statistics of the underlying cache.
func (l *FontLibrary) Stats() cache.Stats {
	return l.fonts.Stats()
}
