package pantry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qty(v float64) *float64 { return &v }
func unit(u string) *string  { return &u }

func TestSyncCreatesAndUpserts(t *testing.T) {
	store := NewStore()

	store.Sync("u1", []SyncItem{
		{Name: "tomato", Quantity: qty(3)},
		{Name: "flour", Quantity: qty(500), Unit: unit("g")},
	})
	store.Sync("u1", []SyncItem{
		{Name: "Tomato", Quantity: qty(5)},
	})

	items := store.List("u1")
	byName := make(map[string]Item, len(items))
	for _, it := range items {
		byName[it.Name] = it
	}

	tomato, ok := byName["tomato"]
	require.True(t, ok)
	assert.Equal(t, 2, tomato.ScanCount)
	require.NotNil(t, tomato.Quantity)
	assert.InDelta(t, 5, *tomato.Quantity, 1e-9)

	flour, ok := byName["flour"]
	require.True(t, ok)
	assert.Equal(t, 1, flour.ScanCount)
}

func TestSyncKeepsQuantityWhenNewSyncOmitsIt(t *testing.T) {
	store := NewStore()

	store.Sync("u1", []SyncItem{{Name: "rice", Quantity: qty(1), Unit: unit("kg")}})
	items := store.Sync("u1", []SyncItem{{Name: "rice"}})

	require.Len(t, items, 1)
	require.NotNil(t, items[0].Quantity)
	assert.InDelta(t, 1, *items[0].Quantity, 1e-9)
	require.NotNil(t, items[0].Unit)
	assert.Equal(t, "kg", *items[0].Unit)
}

func TestSyncRefreshesLastSeen(t *testing.T) {
	store := NewStore()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	store.Sync("u1", []SyncItem{{Name: "tomato"}})

	store.now = func() time.Time { return base.Add(time.Hour) }
	items := store.Sync("u1", []SyncItem{{Name: "tomato"}})

	require.Len(t, items, 1)
	assert.Equal(t, base.Add(time.Hour), items[0].LastSeen)
}

func TestListSortedAndPerUser(t *testing.T) {
	store := NewStore()

	store.Sync("u1", []SyncItem{{Name: "onion"}, {Name: "basil"}, {Name: "tomato"}})
	store.Sync("u2", []SyncItem{{Name: "rice"}})

	names := store.Names("u1")
	assert.Equal(t, []string{"basil", "onion", "tomato"}, names)
	assert.Equal(t, []string{"rice"}, store.Names("u2"))
	assert.Empty(t, store.List("unknown"))
}

func TestRemove(t *testing.T) {
	store := NewStore()
	store.Sync("u1", []SyncItem{{Name: "tomato"}})

	assert.True(t, store.Remove("u1", "Tomato"))
	assert.False(t, store.Remove("u1", "tomato"))
	assert.Empty(t, store.List("u1"))
}
