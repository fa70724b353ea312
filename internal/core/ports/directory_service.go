package ports

import (
	"context"

	"github.com/shivfurnitures/books-api/internal/core/domain"
)

// CreateUserInput carries an admin's new-user form.
type CreateUserInput struct {
	Name            string
	LoginID         string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
}

// DirectoryService manages the durable user directory (admin only).
type DirectoryService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
