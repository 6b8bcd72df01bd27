package cache

import (
	"sync"
	"time"

	"price-resolver/internal/domain/pricing"
	"price-resolver/internal/pkg/clock"
	"price-resolver/internal/pkg/config"
	"price-resolver/internal/pkg/errs"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// entry is one cached resolution input. A nil timeline records a
// backing-store "not found" (absence caching); it expires on the
// shorter negative TTL.
type entry struct {
	timeline   *pricing.Timeline
	insertedAt time.Time
}

// TimelineCache is a bounded LRU keyed by (product, brand) where an
// entry older than its TTL behaves exactly like a miss. Mutation is
// guarded by a single mutex; every critical section is O(1) in-memory
// work, the suspension point (the store fetch) always happens outside.
type TimelineCache struct {
	mu          sync.Mutex
	lru         *simplelru.LRU[Key, entry]
	ttl         time.Duration
	negativeTTL time.Duration
	clock       clock.Clock
}

func NewTimelineCache(cfg config.CacheConfig, clk clock.Clock) (*TimelineCache, error) {
	if cfg.MaxEntries <= 0 {
		return nil, errs.New("cache max entries must be positive")
	}
	if cfg.TTL <= 0 || cfg.NegativeTTL <= 0 {
		return nil, errs.New("cache ttl values must be positive")
	}
	lru, err := simplelru.NewLRU[Key, entry](cfg.MaxEntries, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build lru")
	}
	return &TimelineCache{
		lru:         lru,
		ttl:         cfg.TTL,
		negativeTTL: cfg.NegativeTTL,
		clock:       clk,
	}, nil
}

// Lookup returns the cached timeline for the key. found reports a fresh
// entry; a found-but-nil timeline means the absence of a timeline is
// itself cached. Expired entries are dropped on the way out.
func (c *TimelineCache) Lookup(key Key) (timeline *pricing.Timeline, found bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	if c.expired(e) {
		c.lru.Remove(key)
		return nil, false
	}
	return e.timeline, true
}

// Put stores a freshly fetched timeline, evicting the least recently
// used entry when the cache is full.
func (c *TimelineCache) Put(key Key, timeline *pricing.Timeline) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(key, entry{timeline: timeline, insertedAt: c.clock.Now()})
}

// PutNegative records that the backing store has no timeline for the key.
func (c *TimelineCache) PutNegative(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(key, entry{insertedAt: c.clock.Now()})
}

func (c *TimelineCache) Invalidate(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Remove(key)
}

func (c *TimelineCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func (c *TimelineCache) expired(e entry) bool {
	ttl := c.ttl
	if e.timeline == nil {
		ttl = c.negativeTTL
	}
	return c.clock.Now().Sub(e.insertedAt) >= ttl
}
