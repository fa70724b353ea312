package ports

import (
	"context"

	"github.com/shivfurnitures/books-api/internal/core/domain"
)

// SessionRepository persists at most one serialized Identity under a fixed
// cache key. There is no expiry, no versioning, and no multi-session
// support; a malformed stored value is reported as ErrSessionNotFound.
type SessionRepository interface {
	Load(ctx context.Context) (*domain.Identity, error)
	Save(ctx context.Context, identity *domain.Identity) error
	Delete(ctx context.Context) error
}
