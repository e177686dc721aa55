package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a typed wrapper around a ristretto cache keyed by string.
type Cache[T any] struct {
	impl       *ristretto.Cache[string, T]
	name       string
	defaultTTL time.Duration
}

// Config sizes a cache.
type Config struct {
	Name       string
	MaxCost    int64
	DefaultTTL time.Duration
}

// New creates a new cache. costFunc is used for values stored with a cost of 0.
func New[T any](cfg Config, costFunc func(T) int64) (*Cache[T], error) {
	maxCost := cfg.MaxCost
	if maxCost <= 0 {
		maxCost = 1 << 24 // 16MB
	}
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e4,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
		Cost:        costFunc,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{
		impl:       impl,
		name:       cfg.Name,
		defaultTTL: cfg.DefaultTTL,
	}, nil
}

// NewBytes creates a cache of byte slices whose cost is their length.
func NewBytes(cfg Config) (*Cache[[]byte], error) {
	return New(cfg, func(b []byte) int64 { return int64(len(b)) })
}

// Get retrieves a value from the cache
func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores a value using the cache's default TTL. A zero TTL never expires.
func (c *Cache[T]) Set(key string, value T, cost int64) bool {
	return c.impl.SetWithTTL(key, value, cost, c.defaultTTL)
}

// Clear removes all items from the cache
func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait blocks until buffered writes have been applied.
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

// Close stops the cache's background goroutines.
func (c *Cache[T]) Close() {
	c.impl.Close()
}

// Stats returns hit/miss counters for monitoring.
func (c *Cache[T]) Stats() map[string]any {
	metrics := c.impl.Metrics
	hitRate := 0.0
	total := metrics.Hits() + metrics.Misses()
	if total > 0 {
		hitRate = float64(metrics.Hits()) / float64(total) * 100
	}
	return map[string]any{
		"cache_type": c.name,
		"hits":       metrics.Hits(),
		"misses":     metrics.Misses(),
		"sets":       metrics.KeysAdded(),
		"hit_rate":   hitRate,
		"cost_added": metrics.CostAdded(),
	}
}
