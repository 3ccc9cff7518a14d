package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type MemoryCache struct {
	cache *gocache.Cache
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(ttl, cleanupInterval(ttl)),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	x, found := c.cache.Get(key)
	if !found {
		return false, nil
	}
	data, ok := x.([]byte)
	if !ok {
		c.cache.Delete(key)
		return false, nil
	}
	if err := decode(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value interface{}) error {
	data, err := encode(value)
	if err != nil {
		return err
	}
	c.cache.Set(key, data, gocache.DefaultExpiration)
	return nil
}
