package storage

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"brandforge/server/internal/models"
)

// MemoryCache is the default in-process analysis cache
type MemoryCache struct {
	cache *gocache.Cache
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (*models.BrandDescription, bool) {
	v, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	brand, ok := v.(*models.BrandDescription)
	return brand, ok
}

func (c *MemoryCache) Set(_ context.Context, key string, brand *models.BrandDescription) {
	c.cache.Set(key, brand, gocache.DefaultExpiration)
}
