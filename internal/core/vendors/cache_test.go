package vendors

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingCatalog records how many times each search tuple reaches it.
type countingCatalog struct {
	mu    sync.Mutex
	calls int
	next  Catalog
}

func (c *countingCatalog) Search(ctx context.Context, name, category, vendorID string, tier BudgetTier) ([]Product, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.next.Search(ctx, name, category, vendorID, tier)
}

func TestCachedCatalogServesRepeatsFromCache(t *testing.T) {
	upstream := &countingCatalog{next: &MockCatalog{}}
	cached := NewCachedCatalog(upstream, time.Minute, 10, time.Minute)
	defer cached.Close()

	ctx := context.Background()
	first, err := cached.Search(ctx, "tomato", "", "v1", TierNormal)
	require.NoError(t, err)
	second, err := cached.Search(ctx, "tomato", "", "v1", TierNormal)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, upstream.calls)

	stats := cached.Stats()
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
}

func TestCachedCatalogKeyCoversTier(t *testing.T) {
	upstream := &countingCatalog{next: &MockCatalog{}}
	cached := NewCachedCatalog(upstream, time.Minute, 10, time.Minute)
	defer cached.Close()

	ctx := context.Background()
	_, err := cached.Search(ctx, "tomato", "", "v1", TierNormal)
	require.NoError(t, err)
	_, err = cached.Search(ctx, "tomato", "", "v1", TierPremium)
	require.NoError(t, err)

	assert.Equal(t, 2, upstream.calls)
}

func TestCachedCatalogExpiry(t *testing.T) {
	upstream := &countingCatalog{next: &MockCatalog{}}
	cached := NewCachedCatalog(upstream, time.Millisecond, 10, time.Minute)
	defer cached.Close()

	ctx := context.Background()
	_, err := cached.Search(ctx, "tomato", "", "v1", TierNormal)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = cached.Search(ctx, "tomato", "", "v1", TierNormal)
	require.NoError(t, err)
	assert.Equal(t, 2, upstream.calls)
}

func TestCachedCatalogEvictsAtCapacity(t *testing.T) {
	upstream := &countingCatalog{next: &MockCatalog{}}
	cached := NewCachedCatalog(upstream, time.Minute, 2, time.Minute)
	defer cached.Close()

	ctx := context.Background()
	for _, name := range []string{"tomato", "onion", "garlic"} {
		_, err := cached.Search(ctx, name, "", "v1", TierNormal)
		require.NoError(t, err)
	}

	stats := cached.Stats()
	assert.LessOrEqual(t, stats["size"].(int), 2)
}

func TestCachedCatalogDoesNotCacheErrors(t *testing.T) {
	upstream := &countingCatalog{next: failingCatalog{}}
	cached := NewCachedCatalog(upstream, time.Minute, 10, time.Minute)
	defer cached.Close()

	ctx := context.Background()
	_, err := cached.Search(ctx, "tomato", "", "v1", TierNormal)
	require.Error(t, err)
	_, err = cached.Search(ctx, "tomato", "", "v1", TierNormal)
	require.Error(t, err)

	assert.Equal(t, 2, upstream.calls)
}
