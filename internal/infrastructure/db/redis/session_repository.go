package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shivfurnitures/books-api/internal/core/domain"
)

// DefaultSessionKey is the fixed cache key the serialized identity lives
// under. One key, one session: there is no expiry, no versioning, and no
// multi-session support.
const DefaultSessionKey = "auth:user"

// SessionRepository stores the current identity as a JSON value under a
// single Redis key.
type SessionRepository struct {
	client *redis.Client
	key    string
}

// NewSessionRepository creates a SessionRepository wrapping the given Redis
// client. An empty key falls back to DefaultSessionKey.
func NewSessionRepository(client *redis.Client, key string) *SessionRepository {
	if key == "" {
		key = DefaultSessionKey
	}
	return &SessionRepository{client: client, key: key}
}

// Load reads and decodes the cached identity. Both an absent key and a
// value that fails to decode report domain.ErrSessionNotFound: cache
// entries are unversioned, so any schema drift must degrade to "no
// session" rather than an error the caller would surface.
func (r *SessionRepository) Load(ctx context.Context) (*domain.Identity, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session load: %w", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, domain.ErrSessionNotFound
	}
	return &identity, nil
}

// Save serializes the identity under the fixed key, replacing whatever was
// there.
func (r *SessionRepository) Save(ctx context.Context, identity *domain.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	if err := r.client.Set(ctx, r.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

// Delete removes the cached session entry. Deleting an absent key is fine.
func (r *SessionRepository) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}
