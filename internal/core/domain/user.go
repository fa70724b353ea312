package domain

import "time"

// User is a directory account created by an administrator. Login does not
// consult the directory; these records exist so invitations and the admin
// user-management screens have something durable behind them.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	LoginID      string    `json:"login_id"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CompanyID    string    `json:"company_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
