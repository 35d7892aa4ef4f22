// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists cart sessions. The Redis implementation below is the
// production one; tests substitute an in-memory fake.
type Store interface {
	Get(ctx context.Context, sessionID string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, sessionID string) error
}

const sessionTTL = 24 * time.Hour

// redisStore keeps each session cart as a JSON blob under cart:session:<id>.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed cart store
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// Get loads a session cart. A missing key yields a fresh empty session.
func (s *redisStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required for cart access")
	}

	data, err := s.client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		now := time.Now().UTC()
		return &Session{
			SessionID: sessionID,
			Items:     []LineItem{},
			CreatedAt: now,
			UpdatedAt: now,
			ExpiresAt: now.Add(sessionTTL),
		}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load cart session: %w", err)
	}

	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to decode cart session: %w", err)
	}

	return &session, nil
}

// Save writes the session back with a refreshed TTL.
func (s *redisStore) Save(ctx context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode cart session: %w", err)
	}

	return s.client.Set(ctx, cartKey(session.SessionID), data, sessionTTL).Err()
}

// Delete removes the session cart entirely.
func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, cartKey(sessionID)).Err()
}
