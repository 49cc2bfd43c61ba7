package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"ingredient-intelligence/internal/pkg/common"
)

var (
	// ErrSessionNotFound is returned when an operation references a session
	// id that was never created. Merging never creates sessions silently.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExists is returned by Create for an id already in use.
	ErrSessionExists = errors.New("session already exists")
)

// Repository stores recognition sessions keyed by session id. It is injected
// into the pipeline by the host application; implementations must make the
// read-modify-write in Merge safe against concurrent scans for the same id.
type Repository interface {
	Create(ctx context.Context, id string, items []common.RecognisedIngredient) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Merge(ctx context.Context, id string, items []common.RecognisedIngredient) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// MemoryRepository keeps sessions in a process-wide map for the process
// lifetime. Sessions are never expired automatically.
type MemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create registers a new session holding the first scan's ingredients.
func (r *MemoryRepository) Create(_ context.Context, id string, items []common.RecognisedIngredient) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; ok {
		return nil, ErrSessionExists
	}
	s := &Session{
		ID:          id,
		Ingredients: make(map[string]common.RecognisedIngredient),
		ScansCount:  1,
		CreatedAt:   r.now(),
	}
	mergeIngredients(s.Ingredients, items)
	r.sessions[id] = s
	return s.Clone(), nil
}

// Get returns a snapshot of the session.
func (r *MemoryRepository) Get(_ context.Context, id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s.Clone(), nil
}

// Merge folds newly recognised ingredients into an existing session under
// the write lock, so two scans for the same id cannot lose updates.
func (r *MemoryRepository) Merge(_ context.Context, id string, items []common.RecognisedIngredient) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	mergeIngredients(s.Ingredients, items)
	s.ScansCount++
	return s.Clone(), nil
}

// Delete removes a session; deleting an unknown id is a no-op.
func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}
