package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lcw/v2"
)

// Backend is a ctx-aware preference storage, implemented by Store and Memory.
type Backend interface {
	KV
	Close() error
}

// cacheEntry keeps misses too, so repeated reads for visitors without a stored preference stay off the db.
type cacheEntry struct {
	value string
	found bool
}

// Cached wraps a Backend with a loading cache and satisfies Backend itself.
// Cache is populated on reads via loader function, invalidated on writes made through it.
// Writes made directly to the backend, e.g. by the theme command, show up after ttl.
type Cached struct {
	store Backend
	cache lcw.LoadingCache[cacheEntry]
}

// NewCached creates a new cached store wrapper.
// maxKeys sets the maximum number of entries in the cache, ttl limits entry age, 0 means no expiration.
func NewCached(store Backend, maxKeys int, ttl time.Duration) (*Cached, error) {
	o := lcw.NewOpts[cacheEntry]()
	var cache lcw.LoadingCache[cacheEntry]
	var err error
	if ttl > 0 {
		cache, err = lcw.NewLruCache(o.MaxKeys(maxKeys), o.TTL(ttl))
	} else {
		cache, err = lcw.NewLruCache(o.MaxKeys(maxKeys))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return &Cached{store: store, cache: cache}, nil
}

// Get retrieves the value for a key, using cache with load-through.
func (c *Cached) Get(ctx context.Context, key string) (string, error) {
	entry, err := c.cache.Get(key, func() (cacheEntry, error) {
		val, loadErr := c.store.Get(ctx, key)
		if errors.Is(loadErr, ErrNotFound) {
			return cacheEntry{}, nil
		}
		if loadErr != nil {
			return cacheEntry{}, fmt.Errorf("load from store: %w", loadErr)
		}
		return cacheEntry{value: val, found: true}, nil
	})
	if err != nil {
		return "", fmt.Errorf("cache get: %w", err)
	}
	if !entry.found {
		return "", ErrNotFound
	}
	return entry.value, nil
}

// Set stores a value and invalidates the cache entry.
func (c *Cached) Set(ctx context.Context, key, value string) error {
	if err := c.store.Set(ctx, key, value); err != nil {
		return fmt.Errorf("store set: %w", err)
	}
	c.cache.Invalidate(func(k string) bool { return k == key })
	return nil
}

// Close closes the cache and underlying store.
func (c *Cached) Close() error {
	_ = c.cache.Close()
	if err := c.store.Close(); err != nil {
		return fmt.Errorf("store close: %w", err)
	}
	return nil
}

// Stats returns cache statistics.
func (c *Cached) Stats() lcw.CacheStat {
	return c.cache.Stat()
}
