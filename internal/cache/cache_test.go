package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBytes(t *testing.T) {
	c, err := NewBytes(Config{Name: "test"})
	require.NoError(t, err)
	defer c.Close()

	value := []byte("<main>hello</main>")
	c.Set("page:en", value, 0)
	c.Wait()

	got, found := c.Get("page:en")
	require.True(t, found, "expected to find cached value")
	assert.Equal(t, value, got)

	_, found = c.Get("page:ko")
	assert.False(t, found)
}

func TestDefaultTTL(t *testing.T) {
	c, err := NewBytes(Config{Name: "ttl", DefaultTTL: 50 * time.Millisecond})
	require.NoError(t, err)
	defer c.Close()

	c.Set("k", []byte("v"), 0)
	c.Wait()

	_, found := c.Get("k")
	require.True(t, found)

	assert.Eventually(t, func() bool {
		_, found := c.Get("k")
		return !found
	}, 2*time.Second, 20*time.Millisecond)
}

func TestClearAndStats(t *testing.T) {
	c, err := New[string](Config{Name: "strings"}, func(s string) int64 { return int64(len(s)) })
	require.NoError(t, err)
	defer c.Close()

	c.Set("a", "alpha", 0)
	c.Wait()
	c.Get("a")
	c.Get("missing")

	stats := c.Stats()
	assert.Equal(t, "strings", stats["cache_type"])
	assert.Equal(t, uint64(1), stats["hits"])
	assert.Equal(t, uint64(1), stats["misses"])

	c.Clear()
	_, found := c.Get("a")
	assert.False(t, found)
}
