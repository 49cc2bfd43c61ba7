package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ingredient-intelligence/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "scan:session:"

// RedisRepository stores sessions as JSON values in Redis so multiple
// pipeline processes can share one session keyspace. Merge runs inside a
// WATCH transaction; a concurrent merge on the same key retries.
type RedisRepository struct {
	client  *redis.Client
	ttl     time.Duration
	retries int
}

var _ Repository = (*RedisRepository)(nil)

// NewRedisRepository connects to Redis and verifies the connection. A zero
// ttl keeps sessions forever, matching the in-memory behaviour.
func NewRedisRepository(addr string, ttl time.Duration) (*RedisRepository, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("session store backed by Redis",
		zap.String("addr", addr),
		zap.Duration("ttl", ttl),
	)

	return &RedisRepository{client: client, ttl: ttl, retries: 5}, nil
}

// Close releases the Redis connection.
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// Create registers a new session holding the first scan's ingredients.
func (r *RedisRepository) Create(ctx context.Context, id string, items []common.RecognisedIngredient) (*Session, error) {
	s := &Session{
		ID:          id,
		Ingredients: make(map[string]common.RecognisedIngredient),
		ScansCount:  1,
		CreatedAt:   time.Now(),
	}
	mergeIngredients(s.Ingredients, items)
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	ok, err := r.client.SetNX(ctx, sessionKey(id), data, r.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	if !ok {
		return nil, ErrSessionExists
	}
	return s, nil
}

// Get fetches and decodes a session.
func (r *RedisRepository) Get(ctx context.Context, id string) (*Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

// Merge applies the confidence-wins merge inside a WATCH transaction so two
// concurrent scans for the same session cannot lose each other's entries.
func (r *RedisRepository) Merge(ctx context.Context, id string, items []common.RecognisedIngredient) (*Session, error) {
	key := sessionKey(id)
	var merged *Session

	txn := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if err == redis.Nil {
				return ErrSessionNotFound
			}
			return err
		}

		var s Session
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}
		if s.Ingredients == nil {
			s.Ingredients = make(map[string]common.RecognisedIngredient)
		}
		mergeIngredients(s.Ingredients, items)
		s.ScansCount++

		out, err := json.Marshal(&s)
		if err != nil {
			return fmt.Errorf("failed to marshal session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, r.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		merged = &s
		return nil
	}

	for attempt := 0; attempt < r.retries; attempt++ {
		err := r.client.Watch(ctx, txn, key)
		if err == nil {
			return merged, nil
		}
		if err == redis.TxFailedErr {
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("merge for session %s kept conflicting with concurrent scans", id)
}

// Delete removes a session; deleting an unknown id is a no-op.
func (r *RedisRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKey(id)).Err()
}
