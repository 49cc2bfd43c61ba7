package pantry

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Item is one pantry entry, keyed per user by the lowercased canonical
// ingredient name. ScanCount counts how many syncs have seen the item.
type Item struct {
	Name      string    `json:"name"`
	Quantity  *float64  `json:"quantity"`
	Unit      *string   `json:"unit"`
	LastSeen  time.Time `json:"last_seen"`
	ScanCount int       `json:"scan_count"`
}

// SyncItem is one ingredient being synced into the pantry.
type SyncItem struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity"`
	Unit     *string  `json:"unit"`
}

// Store keeps per-user pantries in process memory behind an explicit
// repository surface, so the host application owns the lifecycle.
type Store struct {
	mu    sync.RWMutex
	users map[string]map[string]Item
	now   func() time.Time
}

// NewStore creates an empty pantry store.
func NewStore() *Store {
	return &Store{
		users: make(map[string]map[string]Item),
		now:   time.Now,
	}
}

func itemKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Sync upserts the given items into the user's pantry. A new key is created
// with ScanCount 1; an existing key increments ScanCount, refreshes LastSeen
// and takes the latest quantity/unit when one is provided.
func (s *Store) Sync(userID string, items []SyncItem) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	pantry, ok := s.users[userID]
	if !ok {
		pantry = make(map[string]Item)
		s.users[userID] = pantry
	}

	now := s.now()
	out := make([]Item, 0, len(items))
	for _, in := range items {
		key := itemKey(in.Name)
		if key == "" {
			continue
		}

		item, exists := pantry[key]
		if !exists {
			item = Item{Name: key}
		}
		item.ScanCount++
		item.LastSeen = now
		if in.Quantity != nil {
			item.Quantity = in.Quantity
		}
		if in.Unit != nil {
			item.Unit = in.Unit
		}
		pantry[key] = item
		out = append(out, item)
	}
	return out
}

// List returns the user's pantry sorted by name for deterministic output.
func (s *Store) List(userID string) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pantry := s.users[userID]
	out := make([]Item, 0, len(pantry))
	for _, item := range pantry {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the canonical names in the user's pantry, sorted. This is
// the "available ingredients" input to the recipe matcher.
func (s *Store) Names(userID string) []string {
	items := s.List(userID)
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}

// Remove deletes an item by name, reporting whether it existed.
func (s *Store) Remove(userID, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pantry, ok := s.users[userID]
	if !ok {
		return false
	}
	key := itemKey(name)
	if _, exists := pantry[key]; !exists {
		return false
	}
	delete(pantry, key)
	return true
}
