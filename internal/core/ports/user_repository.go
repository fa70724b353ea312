package ports

import (
	"context"

	"github.com/shivfurnitures/books-api/internal/core/domain"
)

// UserRepository persists directory accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByLoginID(ctx context.Context, loginID string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
