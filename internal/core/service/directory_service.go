package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shivfurnitures/books-api/internal/api/metrics"
	"github.com/shivfurnitures/books-api/internal/core/domain"
	"github.com/shivfurnitures/books-api/internal/core/ports"
	"github.com/shivfurnitures/books-api/internal/core/rules"
)

// DirectoryService implements admin-driven user creation.
type DirectoryService struct {
	repo   ports.UserRepository
	policy rules.PasswordPolicy
	logger zerolog.Logger
}

func NewDirectoryService(repo ports.UserRepository, policy rules.PasswordPolicy, logger zerolog.Logger) *DirectoryService {
	return &DirectoryService{repo: repo, policy: policy, logger: logger}
}

// CreateUser validates the new-user form with the shared field rules and
// persists the account with a bcrypt password hash. The first failing rule
// aborts with its message; duplicates are rejected by login ID.
func (s *DirectoryService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	draft := rules.NewFormDraft(s.policy,
		rules.FieldName, rules.FieldLoginID, rules.FieldEmail,
		rules.FieldPassword, rules.FieldConfirmPassword)
	draft.Set(rules.FieldName, input.Name)
	draft.Set(rules.FieldLoginID, input.LoginID)
	draft.Set(rules.FieldEmail, input.Email)
	draft.Set(rules.FieldPassword, input.Password)
	draft.Set(rules.FieldConfirmPassword, input.ConfirmPassword)
	if err := draft.Validate(); err != nil {
		var ve *rules.ValidationError
		if errors.As(err, &ve) {
			metrics.ValidationFailuresTotal.WithLabelValues(ve.Field).Inc()
		}
		return nil, err
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		LoginID:      input.LoginID,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.UsersCreatedTotal.WithLabelValues(input.Role).Inc()
	s.logger.Info().Str("login_id", input.LoginID).Str("role", input.Role).Msg("directory user created")
	return created, nil
}

// ListUsers returns all directory accounts.
func (s *DirectoryService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
