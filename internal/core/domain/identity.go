package domain

import (
	"errors"
	"strings"
)

// Closed set of access tiers.
const (
	RoleAdmin      = "admin"
	RoleAccountant = "accountant"
	RoleContact    = "contact"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")
var ErrLoginSuperseded = errors.New("login superseded by a newer session operation")
var ErrSessionNotFound = errors.New("session not found")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("access forbidden")

// Identity models the authenticated principal. It carries display
// attributes only; there is no credential material on it.
type Identity struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Avatar    string `json:"avatar,omitempty"`
	CompanyID string `json:"companyId,omitempty"`
}

// Valid reports whether the identity is fully populated: a session either
// holds a complete identity or none at all, never a partial one.
func (i *Identity) Valid() bool {
	return i != nil && i.Email != "" && ValidRole(i.Role)
}

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleAccountant, RoleContact:
		return true
	}
	return false
}

// ResolveRole applies the role policy: an explicit valid role always wins,
// an explicit unknown role is rejected, and an empty role falls back to
// inference from the email string ("admin@demo.com" signs in as admin).
func ResolveRole(explicit, email string) (string, error) {
	if explicit != "" {
		if !ValidRole(explicit) {
			return "", ErrInvalidRole
		}
		return explicit, nil
	}
	return InferRole(email), nil
}

// InferRole maps an email to a role by substring, defaulting to contact.
func InferRole(email string) string {
	switch {
	case strings.Contains(email, RoleAdmin):
		return RoleAdmin
	case strings.Contains(email, RoleAccountant):
		return RoleAccountant
	default:
		return RoleContact
	}
}

// DashboardTitle returns the dashboard heading for a role. Unknown or empty
// roles get the generic title.
func DashboardTitle(role string) string {
	switch role {
	case RoleAdmin:
		return "Administrator Dashboard"
	case RoleAccountant:
		return "Accountant Dashboard"
	case RoleContact:
		return "Client Portal"
	default:
		return "Dashboard"
	}
}
