package concreteness

import (
	"container/list"
	"encoding/binary"
	"hash/maphash"
	"math"
	"sync"
)

const defaultCacheMinTextBytes = 512

var cacheSeed = maphash.MakeSeed()

type cacheEntry struct {
	key   uint64
	value Result
}

type lruCache struct {
	mu    sync.Mutex
	cap   int
	ll    *list.List
	items map[uint64]*list.Element
}

func newLRU(size int) *lruCache {
	if size <= 0 {
		return nil
	}
	return &lruCache{
		cap:   size,
		ll:    list.New(),
		items: make(map[uint64]*list.Element, size),
	}
}

func (c *lruCache) Get(key uint64) (Result, bool) {
	if c == nil {
		return Result{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		c.ll.MoveToFront(elem)
		return elem.Value.(cacheEntry).value, true
	}
	return Result{}, false
}

func (c *lruCache) Add(key uint64, value Result) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		elem.Value = cacheEntry{key: key, value: value}
		c.ll.MoveToFront(elem)
		return
	}

	elem := c.ll.PushFront(cacheEntry{key: key, value: value})
	c.items[key] = elem

	if c.ll.Len() > c.cap {
		back := c.ll.Back()
		if back != nil {
			c.ll.Remove(back)
			delete(c.items, back.Value.(cacheEntry).key)
		}
	}
}

// WithCache wraps an analyzer with an LRU cache of Analyze results. Caching
// is opt-in; texts shorter than 512 bytes always go to the inner analyzer.
func WithCache(inner Analyzer, size int) Analyzer {
	if inner == nil {
		inner = DefaultAnalyzer()
	}
	cache := newLRU(size)
	if cache == nil {
		return inner
	}
	return &cachedAnalyzer{
		inner:       inner,
		cache:       cache,
		minTextSize: defaultCacheMinTextBytes,
	}
}

type cachedAnalyzer struct {
	inner       Analyzer
	cache       *lruCache
	minTextSize int
}

func (c *cachedAnalyzer) WordConcreteness(word string) Rating {
	return c.inner.WordConcreteness(word)
}

func (c *cachedAnalyzer) AvgTextConcreteness(text string, opts Options) float64 {
	return c.Analyze(text, opts).Average
}

func (c *cachedAnalyzer) ConcreteAbstractRatio(text string, opts Options) float64 {
	return c.Analyze(text, opts).Ratio
}

func (c *cachedAnalyzer) Analyze(text string, opts Options) Result {
	if len(text) < c.minTextSize {
		return c.inner.Analyze(text, opts)
	}
	key := cacheKey(text, opts)
	if val, ok := c.cache.Get(key); ok {
		return val
	}
	val := c.inner.Analyze(text, opts)
	c.cache.Add(key, val)
	return val
}

func cacheKey(text string, opts Options) uint64 {
	thresholds := resolveThresholds(opts.Thresholds)

	var h maphash.Hash
	h.SetSeed(cacheSeed)

	writeUint64(&h, boolToUint64(opts.IncludeStopwords))
	writeUint64(&h, uint64(resolveDenominator(opts.Denominator)))
	writeUint64(&h, math.Float64bits(thresholds.VeryConcrete))
	writeUint64(&h, math.Float64bits(thresholds.VeryAbstract))
	writeUint64(&h, boolToUint64(opts.Explain))

	h.WriteString(text)

	return h.Sum64()
}

func writeUint64(h *maphash.Hash, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}

func boolToUint64(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}
