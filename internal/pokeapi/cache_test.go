package pokeapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResponseCache(t *testing.T) {
	c := newResponseCache(2, time.Hour)

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", []byte("1"))
	body, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, []byte("1"), body)

	c.Set("b", []byte("2"))
	c.Set("c", []byte("3"))
	_, ok = c.Get("a")
	assert.False(t, ok, "oldest entry is evicted at capacity")
	assert.Equal(t, 2, c.Len())

	c.Clear()
	assert.Zero(t, c.Len())
}

func TestResponseCache_StaleVersion(t *testing.T) {
	c := newResponseCache(4, time.Hour)
	c.lru.Add("old", &cachedResponse{Version: "0.9", Body: []byte("{}")})

	_, ok := c.Get("old")
	assert.False(t, ok)
	assert.Zero(t, c.Len(), "stale entries are removed on read")
}

func TestResponseCache_Expiry(t *testing.T) {
	c := newResponseCache(4, 20*time.Millisecond)
	c.Set("a", []byte("1"))

	assert.Eventually(t, func() bool {
		_, ok := c.Get("a")
		return !ok
	}, time.Second, 10*time.Millisecond)
}
