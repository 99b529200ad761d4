package cache

import (
	"github.com/google/uuid"

	"github.com/marcheferme/marketplace_service/internal/domain/models"
	"github.com/marcheferme/marketplace_service/pkg/logger"
)

type CacheI[K comparable, V any] interface {
	Get(key K) (value V, ok bool)
	Add(key K, value V) (evicted bool)
	Remove(key K) (present bool)
}

// OrderCache wraps the expirable LRU holding recently touched orders.
// Entries are invalidated on every status mutation; the TTL only bounds
// staleness after a missed invalidation.
type OrderCache struct {
	cache CacheI[uuid.UUID, *models.Order]
	log   logger.Logger
}

func NewOrderCache(cache CacheI[uuid.UUID, *models.Order], log logger.Logger) *OrderCache {
	return &OrderCache{
		cache: cache,
		log:   log,
	}
}

func (c *OrderCache) Add(key uuid.UUID, value *models.Order) (evicted bool) {
	return c.cache.Add(key, value)
}

func (c *OrderCache) Get(key uuid.UUID) (value *models.Order, ok bool) {
	return c.cache.Get(key)
}

func (c *OrderCache) Remove(key uuid.UUID) (present bool) {
	return c.cache.Remove(key)
}
