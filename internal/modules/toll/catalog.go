// README: Read-through cache for the toll-segment reference catalog.
package toll

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultCatalogTTL bounds how long a catalog snapshot is served before the
// source is read again.
const DefaultCatalogTTL = 12 * time.Hour

// CatalogLoader loads the full segment catalog from its source. A load
// error is a hard failure; an empty catalog is a valid result.
type CatalogLoader func(ctx context.Context) ([]TollSegment, error)

// FileCatalogLoader reads the catalog from a JSON document on disk, the
// format produced by the segment scraper.
func FileCatalogLoader(path string) CatalogLoader {
	return func(ctx context.Context) ([]TollSegment, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading segment catalog: %w", err)
		}
		var segments []TollSegment
		if err := json.Unmarshal(data, &segments); err != nil {
			return nil, fmt.Errorf("parsing segment catalog: %w", err)
		}
		return segments, nil
	}
}

// CatalogCache serves an immutable snapshot of the segment catalog,
// reloading through the loader once the snapshot is older than the TTL.
// Concurrent callers during a refresh share a single in-flight load.
type CatalogCache struct {
	loader CatalogLoader
	ttl    time.Duration
	now    func() time.Time

	group singleflight.Group

	mu       sync.RWMutex
	snapshot []TollSegment
	loaded   bool
	expires  time.Time
}

func NewCatalogCache(loader CatalogLoader, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = DefaultCatalogTTL
	}
	return &CatalogCache{
		loader: loader,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Segments returns the current catalog snapshot, loading it on first use
// or after expiry. The returned slice is shared and must not be mutated.
func (c *CatalogCache) Segments(ctx context.Context) ([]TollSegment, error) {
	if segments, ok := c.fresh(); ok {
		return segments, nil
	}

	result, err, _ := c.group.Do("segments", func() (any, error) {
		// A waiter that queued behind a finished load sees the fresh
		// snapshot here instead of triggering a second read.
		if segments, ok := c.fresh(); ok {
			return segments, nil
		}

		segments, err := c.loader(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.snapshot = segments
		c.loaded = true
		c.expires = c.now().Add(c.ttl)
		c.mu.Unlock()

		return segments, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]TollSegment), nil
}

func (c *CatalogCache) fresh() ([]TollSegment, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded || c.now().After(c.expires) {
		return nil, false
	}
	return c.snapshot, true
}
