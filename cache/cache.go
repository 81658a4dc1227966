package cache

import (
	"errors"
	"math/bits"
	"sync"
	"sync/atomic"

	"github.com/gogpu/pixkit"
)

// DefaultShardCount is the number of shards used unless WithShardCount says
// otherwise. Shard counts are always powers of two so selection is a mask.
const DefaultShardCount = 16

var (
	// ErrNilLoader is returned by GetOrLoad when no load function is given.
	ErrNilLoader = errors.New("cache: nil load function")

	// ErrLoadPanicked is returned to callers waiting on a load that panicked.
	ErrLoadPanicked = errors.New("cache: load panicked")
)

// Option configures a Cache.
type Option[K comparable, V any] func(*options[K, V])

type options[K comparable, V any] struct {
	shards  int
	onEvict func(K, V)
}

// WithShardCount sets the number of shards, rounded up to a power of two.
// Values below one select a single shard.
func WithShardCount[K comparable, V any](n int) Option[K, V] {
	return func(o *options[K, V]) {
		o.shards = n
	}
}

// WithOnEvict registers a function called once for every evicted value,
// outside any cache lock. Use it to dispose of GPU textures or other
// resources owned by the value.
func WithOnEvict[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(o *options[K, V]) {
		o.onEvict = fn
	}
}

// Cache is a sharded, reference-counted cache.
//
// Entries in use (at least one unreleased Handle) are never evicted. Released
// entries move to a per-shard idle LRU holding at most idleCapacity entries;
// older idle entries are evicted.
type Cache[K comparable, V any] struct {
	shards       []*shard[K, V]
	mask         uint64
	hasher       Hasher[K]
	idleCapacity int
	onEvict      func(K, V)

	hits      atomic.Uint64
	misses    atomic.Uint64
	loads     atomic.Uint64
	evictions atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[K, V]
	idle    *lruList[K]
}

// entry is shared by every handle for its key. value and err are written
// once before ready is closed.
type entry[K comparable, V any] struct {
	value V
	err   error
	ready chan struct{}
	refs  int
	node  *lruNode[K] // non-nil while idle
}

// Handle is a reference to a cached value. Release it with Cache.Release
// when the value is no longer needed.
type Handle[K comparable, V any] struct {
	key      K
	value    V
	entry    *entry[K, V]
	released atomic.Bool
}

// Key returns the key the handle was acquired with.
func (h *Handle[K, V]) Key() K { return h.key }

// Value returns the cached value.
func (h *Handle[K, V]) Value() V { return h.value }

// New creates a cache that keeps up to idleCapacity released entries per
// shard. A negative idleCapacity is treated as zero, which evicts entries as
// soon as their last handle is released.
func New[K comparable, V any](idleCapacity int, hasher Hasher[K], opts ...Option[K, V]) *Cache[K, V] {
	o := options[K, V]{shards: DefaultShardCount}
	for _, opt := range opts {
		opt(&o)
	}
	n := 1
	if o.shards > 1 {
		n = 1 << bits.Len(uint(o.shards-1))
	}

	c := &Cache[K, V]{
		shards:       make([]*shard[K, V], n),
		mask:         uint64(n - 1),
		hasher:       hasher,
		idleCapacity: max(idleCapacity, 0),
		onEvict:      o.onEvict,
	}
	for i := range c.shards {
		c.shards[i] = &shard[K, V]{
			entries: make(map[K]*entry[K, V]),
			idle:    newLRUList[K](),
		}
	}
	return c
}

func (c *Cache[K, V]) shard(key K) *shard[K, V] {
	return c.shards[c.hasher(key)&c.mask]
}

// GetOrLoad returns a handle to the value for key, calling load if the key
// is not cached. Concurrent callers for the same key wait for a single load
// and share its result. A load error is returned to every waiter and is not
// cached, so the next call retries.
func (c *Cache[K, V]) GetOrLoad(key K, load func() (V, error)) (*Handle[K, V], error) {
	if load == nil {
		return nil, ErrNilLoader
	}
	s := c.shard(key)

	s.mu.Lock()
	if e, ok := s.entries[key]; ok {
		e.refs++
		if e.node != nil {
			s.idle.Remove(e.node)
			e.node = nil
		}
		s.mu.Unlock()

		<-e.ready
		if e.err != nil {
			return nil, e.err
		}
		c.hits.Add(1)
		return &Handle[K, V]{key: key, value: e.value, entry: e}, nil
	}
	e := &entry[K, V]{refs: 1, ready: make(chan struct{})}
	s.entries[key] = e
	s.mu.Unlock()
	c.misses.Add(1)

	v, err := c.load(s, key, e, load)
	if err != nil {
		return nil, err
	}

	c.loads.Add(1)
	e.value = v
	close(e.ready)
	return &Handle[K, V]{key: key, value: v, entry: e}, nil
}

// load runs fn for the pending entry e. If fn fails or panics, e is removed
// from s and its waiters are released with the error; a panic is then
// propagated to the caller.
func (c *Cache[K, V]) load(s *shard[K, V], key K, e *entry[K, V], fn func() (V, error)) (v V, err error) {
	done := false
	defer func() {
		if done && err == nil {
			return
		}
		s.mu.Lock()
		if s.entries[key] == e {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		if !done {
			e.err = ErrLoadPanicked
		} else {
			e.err = err
		}
		close(e.ready)
	}()
	v, err = fn()
	done = true
	return v, err
}

// Release drops the reference held by h. When the last reference to an
// entry is released the entry becomes idle and may be evicted. Releasing a
// nil or already released handle does nothing.
func (c *Cache[K, V]) Release(h *Handle[K, V]) {
	if h == nil || !h.released.CompareAndSwap(false, true) {
		return
	}
	s := c.shard(h.key)

	s.mu.Lock()
	e, ok := s.entries[h.key]
	if !ok || e != h.entry {
		s.mu.Unlock()
		return
	}
	e.refs--
	if e.refs > 0 {
		s.mu.Unlock()
		return
	}
	e.node = s.idle.PushFront(h.key)
	evicted := c.trim(s, c.idleCapacity)
	s.mu.Unlock()

	c.dispose(evicted)
}

type evictedEntry[K comparable, V any] struct {
	key   K
	value V
}

// trim evicts idle entries of s until at most keep remain. s.mu must be held.
func (c *Cache[K, V]) trim(s *shard[K, V], keep int) []evictedEntry[K, V] {
	var out []evictedEntry[K, V]
	for s.idle.Len() > keep {
		key, ok := s.idle.RemoveOldest()
		if !ok {
			break
		}
		e := s.entries[key]
		delete(s.entries, key)
		out = append(out, evictedEntry[K, V]{key: key, value: e.value})
	}
	return out
}

func (c *Cache[K, V]) dispose(evicted []evictedEntry[K, V]) {
	if len(evicted) == 0 {
		return
	}
	c.evictions.Add(uint64(len(evicted)))
	log := pixkit.Logger()
	for _, ev := range evicted {
		log.Debug("cache: evicted idle entry", "key", ev.key)
		if c.onEvict != nil {
			c.onEvict(ev.key, ev.value)
		}
	}
}

// Purge evicts every idle entry. Entries with live handles are kept.
func (c *Cache[K, V]) Purge() {
	for _, s := range c.shards {
		s.mu.Lock()
		evicted := c.trim(s, 0)
		s.mu.Unlock()
		c.dispose(evicted)
	}
}

// PurgeFunc evicts the idle entries whose key satisfies match. Entries with
// live handles are kept. match is called with the shard lock held and must
// not use the cache.
func (c *Cache[K, V]) PurgeFunc(match func(key K) bool) {
	for _, s := range c.shards {
		var evicted []evictedEntry[K, V]
		s.mu.Lock()
		for key, e := range s.entries {
			if e.node == nil || !match(key) {
				continue
			}
			s.idle.Remove(e.node)
			e.node = nil
			delete(s.entries, key)
			evicted = append(evicted, evictedEntry[K, V]{key: key, value: e.value})
		}
		s.mu.Unlock()
		c.dispose(evicted)
	}
}

// Len returns the number of entries, in use or idle, across all shards.
func (c *Cache[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		total += len(s.entries)
		s.mu.Unlock()
	}
	return total
}

// Stats holds cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Idle is the number of entries without live handles.
	Idle int
	// Hits counts GetOrLoad calls served from the cache.
	Hits uint64
	// Misses counts GetOrLoad calls that started a load.
	Misses uint64
	// Loads counts successful loads.
	Loads uint64
	// Evictions counts evicted idle entries.
	Evictions uint64
	// HitRate is Hits / (Hits + Misses), or 0 before the first lookup.
	HitRate float64
}

// Stats returns current cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	st := Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Loads:     c.loads.Load(),
		Evictions: c.evictions.Load(),
	}
	for _, s := range c.shards {
		s.mu.Lock()
		st.Len += len(s.entries)
		st.Idle += s.idle.Len()
		s.mu.Unlock()
	}
	if total := st.Hits + st.Misses; total > 0 {
		st.HitRate = float64(st.Hits) / float64(total)
	}
	return st
}
