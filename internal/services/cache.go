package services

import (
	"context"
	"sync"
	"time"
)

// ttlCache is a read-through cache for a single value. Casters change
// rarely but are rendered into every match view, so a short TTL keeps the
// hot path off the database without a real staleness concern.
type ttlCache[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	value   T
	fetched time.Time
	valid   bool
}

func newTTLCache[T any](ttl time.Duration) *ttlCache[T] {
	return &ttlCache[T]{ttl: ttl}
}

// Get returns the cached value, refreshing through fetch when the TTL has
// lapsed. A failed refresh leaves any previous value in place and returns
// the error.
func (c *ttlCache[T]) Get(ctx context.Context, fetch func(context.Context) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && time.Since(c.fetched) < c.ttl {
		return c.value, nil
	}

	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.value = value
	c.fetched = time.Now()
	c.valid = true
	return value, nil
}

// Invalidate drops the cached value so the next Get refreshes.
func (c *ttlCache[T]) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
}
