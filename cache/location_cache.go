package cache

import (
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"tourism-backend/metrics"
	"tourism-backend/models"
)

const (
	keyLocationList   = "tourism:locations:all"
	keyLocationDetail = "tourism:location:"
)

// LocationCache caches the location list and expanded location details.
// Writers invalidate after their transaction commits.
//
// Readers fill the cache with the generation they read before querying the
// store. Invalidate bumps the generation, so a fill that raced a write is
// dropped instead of bringing the old row back.
type LocationCache struct {
	store Store
	ttl   time.Duration

	mu         sync.Mutex
	generation uint64
}

func NewLocationCache(store Store, ttl time.Duration) *LocationCache {
	return &LocationCache{store: store, ttl: ttl}
}

func detailKey(id uint) string {
	return keyLocationDetail + strconv.FormatUint(uint64(id), 10)
}

func (c *LocationCache) GetList() ([]models.Location, bool) {
	var out []models.Location
	return out, c.get(keyLocationList, &out)
}

// Generation must be read before the database query whose result is
// passed to SetList or SetDetail.
func (c *LocationCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

func (c *LocationCache) SetList(generation uint64, locations []models.Location) {
	c.set(generation, keyLocationList, locations)
}

func (c *LocationCache) GetDetail(id uint) (*models.LocationDetail, bool) {
	var out models.LocationDetail
	if !c.get(detailKey(id), &out) {
		return nil, false
	}
	return &out, true
}

func (c *LocationCache) SetDetail(generation uint64, detail *models.LocationDetail) {
	c.set(generation, detailKey(detail.ID), detail)
}

// Invalidate drops the list and the details of the given locations.
func (c *LocationCache) Invalidate(ids ...uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.store.Delete(keyLocationList)
	for _, id := range ids {
		c.store.Delete(detailKey(id))
	}
}

func (c *LocationCache) get(key string, dst any) bool {
	raw, ok := c.store.Get(key)
	if !ok {
		metrics.CacheMissesTotal.Inc()
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache: dropping undecodable entry")
		c.store.Delete(key)
		metrics.CacheMissesTotal.Inc()
		return false
	}
	metrics.CacheHitsTotal.Inc()
	return true
}

func (c *LocationCache) set(generation uint64, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache: encode failed")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		log.Debug().Str("key", key).Msg("cache: skipping fill, invalidated during read")
		return
	}
	c.store.Set(key, raw, c.ttl)
}
