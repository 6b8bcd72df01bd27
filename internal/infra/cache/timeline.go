// Package cache holds the read-through timeline cache: a TTL-aware LRU
// in front of the backing store, with concurrent misses for the same
// key coalesced into a single fetch.
package cache

import (
	"context"
	"strconv"
	"sync"

	"price-resolver/internal/domain/pricing"
	"price-resolver/internal/infra"
	"price-resolver/internal/pkg/clock"
	"price-resolver/internal/pkg/config"
	"price-resolver/internal/pkg/errs"
	"price-resolver/internal/usecase/queries"

	"golang.org/x/sync/singleflight"
)

type Key struct {
	ProductID int64
	BrandID   int64
}

func NewKey(productID pricing.ProductID, brandID pricing.BrandID) Key {
	return Key{ProductID: productID.Int64(), BrandID: brandID.Int64()}
}

func (k Key) String() string {
	return strconv.FormatInt(k.ProductID, 10) + ":" + strconv.FormatInt(k.BrandID, 10)
}

// flight tracks one in-flight fetch: its detached context and how many
// callers are waiting on it.
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

// Source implements queries.TimelineSource: cache first, then a
// single-flight fetch from the read store. A successful fetch and an
// explicit "not found" both populate the cache; store failures never do.
type Source struct {
	cache *TimelineCache
	store queries.TimelineReadStore

	group   singleflight.Group
	mu      sync.Mutex
	flights map[string]*flight
}

func NewSource(cache *TimelineCache, store queries.TimelineReadStore) *Source {
	return &Source{
		cache:   cache,
		store:   store,
		flights: make(map[string]*flight),
	}
}

func NewSourceFromConfig(cfg config.CacheConfig, clk clock.Clock, store queries.TimelineReadStore) (*Source, error) {
	c, err := NewTimelineCache(cfg, clk)
	if err != nil {
		return nil, err
	}
	return NewSource(c, store), nil
}

func (s *Source) Load(ctx context.Context, productID pricing.ProductID, brandID pricing.BrandID) (*pricing.Timeline, error) {
	key := NewKey(productID, brandID)

	if timeline, found := s.cache.Lookup(key); found {
		if timeline == nil {
			return nil, errs.Mark(errs.New("absence cached for "+key.String()), errs.ErrTimelineNotFound)
		}
		return timeline, nil
	}

	k := key.String()
	f := s.join(ctx, k)

	ch := s.group.DoChan(k, func() (any, error) {
		defer s.settle(k, f)
		// The cache may have been populated between the miss and this
		// call winning the flight.
		if timeline, found := s.cache.Lookup(key); found {
			if timeline == nil {
				return nil, errs.Mark(errs.New("absence cached for "+k), errs.ErrTimelineNotFound)
			}
			return timeline, nil
		}
		return s.fetch(f.ctx, key, productID, brandID)
	})

	select {
	case res := <-ch:
		s.leave(k, f, false)
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*pricing.Timeline), nil
	case <-ctx.Done():
		// This waiter gives up; the shared fetch keeps running for the
		// others and is cancelled only when the last one walks away.
		s.leave(k, f, true)
		return nil, errs.Mark(ctx.Err(), errs.ErrResolveTimeout)
	}
}

func (s *Source) fetch(ctx context.Context, key Key, productID pricing.ProductID, brandID pricing.BrandID) (*pricing.Timeline, error) {
	timeline, err := s.store.FindByProductAndBrand(ctx, productID, brandID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			s.cache.PutNegative(key)
			return nil, errs.Mark(err, errs.ErrTimelineNotFound)
		}
		return nil, errs.Mark(err, errs.ErrBackingStore)
	}
	s.cache.Put(key, timeline)
	return timeline, nil
}

// join registers a waiter on the key's flight, creating the flight (and
// its detached fetch context) on first use.
func (s *Source) join(ctx context.Context, k string) *flight {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.flights[k]
	if !ok {
		fetchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		f = &flight{ctx: fetchCtx, cancel: cancel}
		s.flights[k] = f
	}
	f.waiters++
	return f
}

// leave drops a waiter. When an abandoning waiter was the last one, the
// fetch is cancelled and the flight forgotten so a later call starts
// fresh instead of inheriting a dead fetch.
func (s *Source) leave(k string, f *flight, abandoned bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f.waiters--
	if abandoned && f.waiters <= 0 && s.flights[k] == f {
		f.cancel()
		s.group.Forget(k)
		delete(s.flights, k)
	}
}

// settle tears the flight down after the fetch function returned,
// regardless of outcome. Guarded by identity so a stale call can never
// cancel a newer generation's flight.
func (s *Source) settle(k string, f *flight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f.cancel()
	if s.flights[k] == f {
		delete(s.flights, k)
	}
}
