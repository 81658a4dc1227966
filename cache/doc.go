// Package cache provides a reference-counted asset cache.
//
// Assets such as font atlases are expensive to build and are shared by every
// text batch that draws with them. A [Cache] loads each key once, hands out
// [Handle] values that keep the asset alive, and retains released assets in
// an idle LRU so a quick re-acquire does not reload them:
//
//	fonts := cache.New[string, *text.FaceFont](4, cache.StringHasher,
//		cache.WithOnEvict(func(name string, f *text.FaceFont) { ... }))
//
//	h, err := fonts.GetOrLoad("regular-16", func() (*text.FaceFont, error) {
//		return text.LoadFaceFont(ttf, 16)
//	})
//	if err != nil {
//		return err
//	}
//	defer fonts.Release(h)
//	draw(h.Value())
//
// An entry is only evicted after every handle to it has been released and
// more than the idle capacity of released entries have piled up behind it.
//
// # Thread Safety
//
// Cache is safe for concurrent use. Keys are spread over shards, each with
// its own mutex, and statistics are kept in atomic counters. A Cache must not
// be copied after creation.
package cache
