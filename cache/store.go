package cache

import (
	"errors"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
	"github.com/rs/zerolog/log"
)

// Store is a byte-oriented cache.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Delete(key string)
	Close()
}

// sharedLocalTTL bounds how long an instance serves its local copy of an
// entry once memcached is shared with other instances. Invalidation only
// reaches this instance's local tier and memcached.
const sharedLocalTTL = 5 * time.Second

// TieredStore keeps a local ccache in front of an optional memcached.
type TieredStore struct {
	local  *ccache.Cache[[]byte]
	remote *memcache.Client
}

// NewTieredStore builds the store; an empty memcachedHost disables the
// shared tier.
func NewTieredStore(memcachedHost string, maxLocalEntries int64) *TieredStore {
	s := &TieredStore{
		local: ccache.New(ccache.Configure[[]byte]().MaxSize(maxLocalEntries)),
	}
	if memcachedHost != "" {
		s.remote = memcache.New(memcachedHost)
		log.Info().Str("host", memcachedHost).Msg("cache: memcached tier enabled")
	}
	return s
}

func (s *TieredStore) Get(key string) ([]byte, bool) {
	if item := s.local.Get(key); item != nil && !item.Expired() {
		return item.Value(), true
	}
	if s.remote == nil {
		return nil, false
	}

	item, err := s.remote.Get(key)
	if err != nil {
		if !errors.Is(err, memcache.ErrCacheMiss) {
			log.Warn().Err(err).Str("key", key).Msg("cache: memcached get failed")
		}
		return nil, false
	}
	s.local.Set(key, item.Value, s.localTTL(time.Minute))
	return item.Value, true
}

func (s *TieredStore) Set(key string, value []byte, ttl time.Duration) {
	s.local.Set(key, value, s.localTTL(ttl))
	if s.remote == nil {
		return
	}
	err := s.remote.Set(&memcache.Item{
		Key:        key,
		Value:      value,
		Expiration: int32(ttl / time.Second),
	})
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache: memcached set failed")
	}
}

func (s *TieredStore) localTTL(ttl time.Duration) time.Duration {
	if s.remote != nil && ttl > sharedLocalTTL {
		return sharedLocalTTL
	}
	return ttl
}

func (s *TieredStore) Delete(key string) {
	s.local.Delete(key)
	if s.remote == nil {
		return
	}
	if err := s.remote.Delete(key); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		log.Warn().Err(err).Str("key", key).Msg("cache: memcached delete failed")
	}
}

func (s *TieredStore) Close() {
	s.local.Stop()
	if s.remote != nil {
		_ = s.remote.Close()
	}
}
