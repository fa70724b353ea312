package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shivfurnitures/books-api/internal/core/domain"
	"github.com/shivfurnitures/books-api/internal/core/ports"
	"github.com/shivfurnitures/books-api/internal/core/rules"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.LoginID]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = user.LoginID
	}
	r.users[copy.LoginID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByLoginID(_ context.Context, loginID string) (*domain.User, error) {
	if u, ok := r.users[loginID]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func validInput() ports.CreateUserInput {
	return ports.CreateUserInput{
		Name:            "Priya Sharma",
		LoginID:         "priya01",
		Email:           "priya@shivfurnitures.com",
		Password:        "Abc123!@",
		ConfirmPassword: "Abc123!@",
		Role:            domain.RoleAccountant,
	}
}

func TestDirectoryService_CreateUser_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewDirectoryService(repo, rules.DefaultPasswordPolicy(), zerolog.Nop())

	user, err := svc.CreateUser(context.Background(), validInput())
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if user.PasswordHash == "Abc123!@" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Abc123!@")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleAccountant {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestDirectoryService_CreateUser_FieldRules(t *testing.T) {
	svc := NewDirectoryService(newStubUserRepo(), rules.DefaultPasswordPolicy(), zerolog.Nop())

	cases := []struct {
		name   string
		mutate func(*ports.CreateUserInput)
		field  string
	}{
		{"short name", func(in *ports.CreateUserInput) { in.Name = "P" }, rules.FieldName},
		{"short login id", func(in *ports.CreateUserInput) { in.LoginID = "priya" }, rules.FieldLoginID},
		{"long login id", func(in *ports.CreateUserInput) { in.LoginID = "priya0123456789" }, rules.FieldLoginID},
		{"bad email", func(in *ports.CreateUserInput) { in.Email = "priya@invalid" }, rules.FieldEmail},
		{"weak password", func(in *ports.CreateUserInput) {
			in.Password = "abcdefgh"
			in.ConfirmPassword = "abcdefgh"
		}, rules.FieldPassword},
		{"mismatched confirmation", func(in *ports.CreateUserInput) { in.ConfirmPassword = "Xyz789!@" }, rules.FieldConfirmPassword},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := svc.CreateUser(context.Background(), in)
			var ve *rules.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("expected failure on %q, got %q", tc.field, ve.Field)
			}
		})
	}
}

func TestDirectoryService_CreateUser_DigitPolicy(t *testing.T) {
	policy := rules.DefaultPasswordPolicy()
	policy.RequireDigit = true
	svc := NewDirectoryService(newStubUserRepo(), policy, zerolog.Nop())

	in := validInput()
	in.Password = "Abcdefg!" // no digit
	in.ConfirmPassword = "Abcdefg!"

	_, err := svc.CreateUser(context.Background(), in)
	var ve *rules.ValidationError
	if !errors.As(err, &ve) || ve.Field != rules.FieldPassword {
		t.Fatalf("expected password failure under digit policy, got %v", err)
	}
}

func TestDirectoryService_CreateUser_InvalidRole(t *testing.T) {
	svc := NewDirectoryService(newStubUserRepo(), rules.DefaultPasswordPolicy(), zerolog.Nop())

	in := validInput()
	in.Role = "superuser"
	if _, err := svc.CreateUser(context.Background(), in); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestDirectoryService_CreateUser_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewDirectoryService(repo, rules.DefaultPasswordPolicy(), zerolog.Nop())

	if _, err := svc.CreateUser(context.Background(), validInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), validInput()); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}
