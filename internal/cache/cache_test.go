package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetGet(t *testing.T) {
	c := &Cache{entries: map[string]entry{}, enabled: true, now: time.Now}

	etag := c.Set("players:", []byte(`[]`), time.Minute)
	data, got, ok := c.Get("players:")

	assert.True(t, ok)
	assert.Equal(t, etag, got)
	assert.Equal(t, []byte(`[]`), data)
}

func TestExpiry(t *testing.T) {
	now := time.Date(2025, 4, 13, 12, 0, 0, 0, time.UTC)
	c := &Cache{entries: map[string]entry{}, enabled: true, now: func() time.Time { return now }}

	c.Set("k", []byte("v"), time.Minute)
	now = now.Add(2 * time.Minute)

	_, _, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Stats()["expired_keys"])

	c.evict()
	assert.Equal(t, 0, c.Stats()["total_keys"])
}

func TestDisabledCacheStillComputesETag(t *testing.T) {
	c := New(false)

	etag := c.Set("k", []byte("v"), time.Minute)
	_, _, ok := c.Get("k")

	assert.False(t, ok)
	assert.Equal(t, ComputeETag([]byte("v")), etag)
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("v"))

	assert.False(t, CheckETagMatch("", etag))
	assert.True(t, CheckETagMatch("*", etag))
	assert.True(t, CheckETagMatch(etag, etag))
	assert.True(t, CheckETagMatch(`W/"0000", `+etag, etag))
	assert.False(t, CheckETagMatch(`W/"0000"`, etag))
}
