// cache.go
//
// Multi-step job application form state service.
// Read-through TTL cache for reference data. Entries are immutable and
// swapped whole, so readers never observe a partially repopulated value.

package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a fixed-TTL read-through cache keyed by operation name. There is
// no eviction beyond expiry and explicit Clear.
type Cache struct {
	ttl     time.Duration
	entries sync.Map // string -> entry
	group   singleflight.Group
	now     func() time.Time
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// New creates a cache whose entries expire ttl after first population.
func New(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl, now: time.Now}
}

// GetOrLoad returns the cached value for key, invoking load on a miss or
// after expiry. Concurrent loads of the same key are coalesced into a
// single fetch.
func (c *Cache) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	if v, ok := c.entries.Load(key); ok {
		e := v.(entry)
		if c.now().Before(e.expiresAt) {
			return e.value, nil
		}
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// A coalesced caller may arrive after the winner already stored.
		if v, ok := c.entries.Load(key); ok {
			e := v.(entry)
			if c.now().Before(e.expiresAt) {
				return e.value, nil
			}
		}

		value, err := load(ctx)
		if err != nil {
			return nil, err
		}

		c.entries.Store(key, entry{value: value, expiresAt: c.now().Add(c.ttl)})
		return value, nil
	})

	return v, err
}

// Delete evicts a single key.
func (c *Cache) Delete(key string) {
	c.entries.Delete(key)
}

// Clear evicts every key. The next read of each key repopulates from the
// underlying store.
func (c *Cache) Clear() {
	c.entries.Range(func(key, _ interface{}) bool {
		c.entries.Delete(key)
		return true
	})
}

// Len reports the number of populated entries, expired or not.
func (c *Cache) Len() int {
	n := 0
	c.entries.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

// GetOrLoad is the typed wrapper around Cache.GetOrLoad.
func GetOrLoad[T any](c *Cache, ctx context.Context, key string, load func(ctx context.Context) (T, error)) (T, error) {
	v, err := c.GetOrLoad(ctx, key, func(ctx context.Context) (interface{}, error) {
		return load(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
