package cache

import (
	"testing"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTieredStore_LocalOnlyKeepsFullTTL(t *testing.T) {
	store := NewTieredStore("", 10)
	t.Cleanup(store.Close)

	assert.Equal(t, 5*time.Minute, store.localTTL(5*time.Minute))

	store.Set("k", []byte("v"), 5*time.Minute)
	item := store.local.Get("k")
	require.NotNil(t, item)
	assert.Greater(t, item.TTL(), time.Minute)
}

func TestTieredStore_SharedTierShortensLocalTTL(t *testing.T) {
	// memcache.New does not dial; the client is only used for its presence
	store := NewTieredStore("", 10)
	store.remote = memcache.New("127.0.0.1:1")
	t.Cleanup(store.Close)

	assert.Equal(t, sharedLocalTTL, store.localTTL(5*time.Minute))
	assert.Equal(t, time.Second, store.localTTL(time.Second))
}
