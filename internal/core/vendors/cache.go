package vendors

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"ingredient-intelligence/internal/pkg/common"

	"go.uber.org/zap"
)

// CachedCatalog wraps a Catalog with an in-process TTL cache keyed on the
// full search tuple. Empty result sets are cached too: a catalog gap is just
// as expensive to re-fetch as a hit.
type CachedCatalog struct {
	next            Catalog
	ttl             time.Duration
	maxSize         int
	cleanupInterval time.Duration

	mu    sync.RWMutex
	store map[string]cacheEntry
	stats cacheStats

	stop chan struct{}
	once sync.Once
}

type cacheEntry struct {
	products    []Product
	expiresAt   time.Time
	lastAccess  time.Time
	accessCount int
}

type cacheStats struct {
	hits      int64
	misses    int64
	evictions int64
}

var _ Catalog = (*CachedCatalog)(nil)

// NewCachedCatalog wraps next with a TTL cache and starts the background
// cleanup goroutine. Call Close to stop it.
func NewCachedCatalog(next Catalog, ttl time.Duration, maxSize int, cleanupInterval time.Duration) *CachedCatalog {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}
	c := &CachedCatalog{
		next:            next,
		ttl:             ttl,
		maxSize:         maxSize,
		cleanupInterval: cleanupInterval,
		store:           make(map[string]cacheEntry),
		stop:            make(chan struct{}),
	}

	go c.startCleanup()

	common.LogInfo("vendor catalog cache initialized",
		zap.Int("max_size", maxSize),
		zap.Duration("ttl", ttl),
		zap.Duration("cleanup_interval", cleanupInterval),
	)
	return c
}

// Search serves cached results when fresh, otherwise delegates and stores.
// Upstream errors are never cached.
func (c *CachedCatalog) Search(ctx context.Context, canonicalName, category, vendorID string, tier BudgetTier) ([]Product, error) {
	key := cacheKey(canonicalName, category, vendorID, tier)

	if products, ok := c.lookup(key); ok {
		return products, nil
	}

	products, err := c.next.Search(ctx, canonicalName, category, vendorID, tier)
	if err != nil {
		return nil, err
	}

	c.put(key, products)
	return products, nil
}

func (c *CachedCatalog) lookup(key string) ([]Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.store[key]
	if !exists {
		c.stats.misses++
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.store, key)
		c.stats.evictions++
		c.stats.misses++
		return nil, false
	}

	entry.lastAccess = time.Now()
	entry.accessCount++
	c.store[key] = entry
	c.stats.hits++
	return entry.products, true
}

func (c *CachedCatalog) put(key string, products []Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxSize > 0 && len(c.store) >= c.maxSize {
		c.cleanupLocked()
		if len(c.store) >= c.maxSize {
			c.evictLRULocked()
		}
	}

	now := time.Now()
	c.store[key] = cacheEntry{
		products:   products,
		expiresAt:  now.Add(c.ttl),
		lastAccess: now,
	}
}

func cacheKey(canonicalName, category, vendorID string, tier BudgetTier) string {
	raw := fmt.Sprintf("%s|%s|%s|%s", canonicalName, category, vendorID, tier)
	hash := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(hash[:])
}

func (c *CachedCatalog) startCleanup() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			removed := c.cleanupLocked()
			c.mu.Unlock()
			if removed > 0 {
				common.LogDebug("vendor cache cleanup",
					zap.Int("removed", removed),
				)
			}
		case <-c.stop:
			return
		}
	}
}

// cleanupLocked removes expired entries; caller holds the write lock.
func (c *CachedCatalog) cleanupLocked() int {
	now := time.Now()
	removed := 0
	for key, entry := range c.store {
		if now.After(entry.expiresAt) {
			delete(c.store, key)
			c.stats.evictions++
			removed++
		}
	}
	return removed
}

// evictLRULocked drops the least-recently-used entry; caller holds the write
// lock.
func (c *CachedCatalog) evictLRULocked() {
	var oldestKey string
	var oldestAccess time.Time
	var lowestCount int

	for key, entry := range c.store {
		if oldestKey == "" ||
			entry.accessCount < lowestCount ||
			(entry.accessCount == lowestCount && entry.lastAccess.Before(oldestAccess)) {
			oldestKey = key
			oldestAccess = entry.lastAccess
			lowestCount = entry.accessCount
		}
	}

	if oldestKey != "" {
		delete(c.store, oldestKey)
		c.stats.evictions++
	}
}

// Stats reports cache counters for diagnostics.
func (c *CachedCatalog) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lookups := c.stats.hits + c.stats.misses
	hitRatio := 0.0
	if lookups > 0 {
		hitRatio = float64(c.stats.hits) / float64(lookups)
	}
	return map[string]interface{}{
		"size":      len(c.store),
		"max_size":  c.maxSize,
		"hits":      c.stats.hits,
		"misses":    c.stats.misses,
		"evictions": c.stats.evictions,
		"hit_ratio": hitRatio,
	}
}

// Close stops the cleanup goroutine and drops all entries.
func (c *CachedCatalog) Close() error {
	c.once.Do(func() { close(c.stop) })

	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]cacheEntry)

	common.LogInfo("vendor catalog cache closed",
		zap.Int64("hits", c.stats.hits),
		zap.Int64("misses", c.stats.misses),
		zap.Int64("evictions", c.stats.evictions),
	)
	return nil
}
