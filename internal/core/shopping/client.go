package shopping

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ingredient-intelligence/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// ListStore is the shopping-list storage contract: read the current items
// of a list and flip the checked flag on one item.
type ListStore interface {
	Items(ctx context.Context, listID string) ([]ListItem, error)
	Patch(ctx context.Context, itemID string, checked bool) error
}

// HTTPListStore talks to the platform's shopping-list service.
type HTTPListStore struct {
	client  *resty.Client
	baseURL string
}

var _ ListStore = (*HTTPListStore)(nil)

// NewHTTPListStore builds a list-store client against baseURL.
func NewHTTPListStore(baseURL string, timeout time.Duration) *HTTPListStore {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond)

	return &HTTPListStore{
		client:  client,
		baseURL: baseURL,
	}
}

type listItemsResponse struct {
	Items []ListItem `json:"items"`
}

func (s *HTTPListStore) Items(ctx context.Context, listID string) ([]ListItem, error) {
	var result listItemsResponse

	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("%s/v1/lists/%s/items", s.baseURL, listID))
	if err != nil {
		return nil, common.NewError(common.ErrCodeUpstream, "shopping list fetch failed", err)
	}
	if resp.StatusCode() == 404 {
		return nil, common.NewError(common.ErrCodeNotFound,
			fmt.Sprintf("shopping list %s not found", listID), nil)
	}
	if resp.IsError() {
		return nil, common.NewError(common.ErrCodeUpstream,
			fmt.Sprintf("shopping list service status %d", resp.StatusCode()), nil)
	}
	return result.Items, nil
}

func (s *HTTPListStore) Patch(ctx context.Context, itemID string, checked bool) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]bool{"checked": checked}).
		Patch(fmt.Sprintf("%s/v1/list-items/%s", s.baseURL, itemID))
	if err != nil {
		return common.NewError(common.ErrCodeUpstream, "shopping list patch failed", err)
	}
	if resp.IsError() {
		return common.NewError(common.ErrCodeUpstream,
			fmt.Sprintf("shopping list patch status %d", resp.StatusCode()), nil)
	}
	return nil
}

// MemoryListStore is an in-process ListStore for development and tests.
type MemoryListStore struct {
	mu    sync.RWMutex
	lists map[string][]ListItem
}

var _ ListStore = (*MemoryListStore)(nil)

func NewMemoryListStore() *MemoryListStore {
	return &MemoryListStore{lists: make(map[string][]ListItem)}
}

// Seed replaces the items of a list.
func (s *MemoryListStore) Seed(listID string, items []ListItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]ListItem, len(items))
	copy(copied, items)
	s.lists[listID] = copied
}

func (s *MemoryListStore) Items(_ context.Context, listID string) ([]ListItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items, ok := s.lists[listID]
	if !ok {
		return nil, common.NewError(common.ErrCodeNotFound,
			fmt.Sprintf("shopping list %s not found", listID), nil)
	}
	copied := make([]ListItem, len(items))
	copy(copied, items)
	return copied, nil
}

func (s *MemoryListStore) Patch(_ context.Context, itemID string, checked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for listID, items := range s.lists {
		for i := range items {
			if items[i].ID == itemID {
				items[i].Checked = checked
				s.lists[listID] = items
				return nil
			}
		}
	}
	return common.NewError(common.ErrCodeNotFound,
		fmt.Sprintf("shopping list item %s not found", itemID), nil)
}
