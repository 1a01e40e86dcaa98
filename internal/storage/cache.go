package storage

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedStore is a read-through cache in front of another store.
// Writes go to the backing store first and then refresh the cache.
type CachedStore struct {
	inner Store
	cache *expirable.LRU[string, []byte]
}

// NewCachedStore wraps inner with an LRU of size entries expiring after ttl
func NewCachedStore(inner Store, size int, ttl time.Duration) *CachedStore {
	return &CachedStore{
		inner: inner,
		cache: expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

func (c *CachedStore) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := c.cache.Get(key); ok {
		return cloneBytes(v), nil
	}

	v, err := c.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, cloneBytes(v))
	return v, nil
}

func (c *CachedStore) Put(ctx context.Context, key string, value []byte) error {
	if err := c.inner.Put(ctx, key, value); err != nil {
		c.cache.Remove(key)
		return err
	}
	c.cache.Add(key, cloneBytes(value))
	return nil
}

func (c *CachedStore) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		c.cache.Remove(k)
	}
	return c.inner.Delete(ctx, keys...)
}

func (c *CachedStore) Ping(ctx context.Context) error {
	return c.inner.Ping(ctx)
}

func (c *CachedStore) Close() error {
	c.cache.Purge()
	return c.inner.Close()
}

// Len reports the number of cached entries
func (c *CachedStore) Len() int {
	return c.cache.Len()
}
