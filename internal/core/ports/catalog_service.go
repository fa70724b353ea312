package ports

import (
	"context"

	"github.com/shivfurnitures/books-api/internal/core/domain"
)

// ContactFilter narrows the contact master for display.
type ContactFilter struct {
	Type   string // vendor, customer, or empty for all
	Search string // matched case-insensitively against name and email
}

// TransactionFilter narrows the transaction list for display.
type TransactionFilter struct {
	Type   string // invoice, purchase, payment, or empty for all
	Status string // paid, pending, overdue, or empty for all
}

// DashboardView is what the dashboard endpoint renders for one role.
type DashboardView struct {
	Title        string                `json:"title"`
	Stats        domain.DashboardStats `json:"stats"`
	SalesSeries  []domain.SalesPoint   `json:"salesSeries,omitempty"`
	Transactions []domain.Transaction  `json:"recentTransactions"`
}

// CatalogService serves the read-only business records with role gating:
// the contact role only sees the client-portal subset, financial views
// require accountant or admin.
type CatalogService interface {
	Contacts(ctx context.Context, role string, filter ContactFilter) ([]domain.Contact, error)
	Products(ctx context.Context, role string) ([]domain.Product, error)
	Taxes(ctx context.Context, role string) ([]domain.Tax, error)
	Accounts(ctx context.Context, role string) ([]domain.Account, error)
	Transactions(ctx context.Context, role string, filter TransactionFilter) ([]domain.Transaction, error)
	Dashboard(ctx context.Context, role string) (*DashboardView, error)
}

// CatalogSource is the fixture data collaborator: static records and the
// default profile template used to synthesize identities on login. The
// core never mutates what it returns.
type CatalogSource interface {
	DefaultProfile() domain.Identity
	Contacts() []domain.Contact
	Products() []domain.Product
	Taxes() []domain.Tax
	Accounts() []domain.Account
	Transactions() []domain.Transaction
	Stats() domain.DashboardStats
	SalesSeries() []domain.SalesPoint
}
