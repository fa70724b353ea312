package ports

import (
	"context"

	"github.com/shivfurnitures/books-api/internal/core/domain"
)

// LoginResult carries the outcome of a successful login.
type LoginResult struct {
	Token    string
	Identity *domain.Identity
}

// SessionService is the single source of truth for "who is logged in".
type SessionService interface {
	// Restore rehydrates the session from the cache once at startup.
	// Malformed or absent cached data yields an empty session, not an
	// error; the loading flag is cleared either way.
	Restore(ctx context.Context) (*domain.Identity, error)

	// Login authenticates with the role policy applied (explicit role
	// wins, else inferred from the email). It fails on malformed input
	// and on supersession by a concurrent logout or newer login.
	Login(ctx context.Context, email, password, role string) (*LoginResult, error)

	// Logout clears the session and the cache entry. Idempotent.
	Logout(ctx context.Context) error

	// Current returns the identity (nil when unauthenticated) and the
	// loading flag. While loading is true, role-based decisions must be
	// suspended.
	Current() (*domain.Identity, bool)

	// Subscribe registers an observer notified after every state change
	// with the new identity (nil on logout).
	Subscribe(fn func(*domain.Identity))
}
