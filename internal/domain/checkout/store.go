// internal/domain/checkout/store.go
package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists checkout sessions. Tests substitute an in-memory fake.
type Store interface {
	Get(ctx context.Context, sessionID string) (*Session, error)
	Save(ctx context.Context, session *Session) error
}

// redisStore keeps each checkout session as a JSON blob under
// checkout:session:<id>.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed checkout session store
func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func checkoutKey(sessionID string) string {
	return fmt.Sprintf("checkout:session:%s", sessionID)
}

// Get loads a checkout session. A missing key yields a fresh machine in the
// Cart state.
func (s *redisStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required for checkout access")
	}

	data, err := s.client.Get(ctx, checkoutKey(sessionID)).Result()
	if err == redis.Nil {
		return &Session{
			SessionID: sessionID,
			State:     StateCart,
			UpdatedAt: time.Now().UTC(),
		}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load checkout session: %w", err)
	}

	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to decode checkout session: %w", err)
	}

	return &session, nil
}

// Save writes the session back with a refreshed TTL.
func (s *redisStore) Save(ctx context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode checkout session: %w", err)
	}

	return s.client.Set(ctx, checkoutKey(session.SessionID), data, s.ttl).Err()
}
