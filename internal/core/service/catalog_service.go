package service

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/shivfurnitures/books-api/internal/core/domain"
	"github.com/shivfurnitures/books-api/internal/core/ports"
)

// recentTransactionLimit caps the dashboard's recent-transactions panel.
const recentTransactionLimit = 5

// CatalogService serves the read-only business records. All filtering and
// sorting happens over the in-memory fixture slices; nothing is persisted.
type CatalogService struct {
	source ports.CatalogSource
	logger zerolog.Logger
}

func NewCatalogService(source ports.CatalogSource, logger zerolog.Logger) *CatalogService {
	return &CatalogService{source: source, logger: logger}
}

// financialRole reports whether role may see master data and financials.
func financialRole(role string) bool {
	return role == domain.RoleAdmin || role == domain.RoleAccountant
}

// Contacts lists the contact master, optionally narrowed by type and a
// case-insensitive name/email search, sorted by name.
func (s *CatalogService) Contacts(_ context.Context, role string, filter ports.ContactFilter) ([]domain.Contact, error) {
	if !financialRole(role) {
		return nil, domain.ErrForbidden
	}

	search := strings.ToLower(filter.Search)
	out := make([]domain.Contact, 0)
	for _, c := range s.source.Contacts() {
		if filter.Type != "" && c.Type != filter.Type {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Email), search) {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Products lists the product master sorted by name.
func (s *CatalogService) Products(_ context.Context, role string) ([]domain.Product, error) {
	if !financialRole(role) {
		return nil, domain.ErrForbidden
	}
	out := append([]domain.Product{}, s.source.Products()...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Taxes lists the configured tax rates.
func (s *CatalogService) Taxes(_ context.Context, role string) ([]domain.Tax, error) {
	if !financialRole(role) {
		return nil, domain.ErrForbidden
	}
	return append([]domain.Tax{}, s.source.Taxes()...), nil
}

// Accounts lists the chart of accounts sorted by code.
func (s *CatalogService) Accounts(_ context.Context, role string) ([]domain.Account, error) {
	if !financialRole(role) {
		return nil, domain.ErrForbidden
	}
	out := append([]domain.Account{}, s.source.Accounts()...)
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

// Transactions lists transactions newest first. The contact role is scoped
// to the portal subset (their invoices and payments); financial roles see
// everything, narrowed by the optional type/status filter.
func (s *CatalogService) Transactions(_ context.Context, role string, filter ports.TransactionFilter) ([]domain.Transaction, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrForbidden
	}

	out := make([]domain.Transaction, 0)
	for _, t := range s.source.Transactions() {
		if role == domain.RoleContact && t.Type == "purchase" {
			continue
		}
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

// Dashboard assembles the role-gated dashboard view: title by role, the
// headline stats, the sales series for financial roles, and the recent
// transactions panel.
func (s *CatalogService) Dashboard(ctx context.Context, role string) (*ports.DashboardView, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrForbidden
	}

	recent, err := s.Transactions(ctx, role, ports.TransactionFilter{})
	if err != nil {
		return nil, err
	}
	if len(recent) > recentTransactionLimit {
		recent = recent[:recentTransactionLimit]
	}

	view := &ports.DashboardView{
		Title:        domain.DashboardTitle(role),
		Stats:        s.source.Stats(),
		Transactions: recent,
	}
	if financialRole(role) {
		view.SalesSeries = append([]domain.SalesPoint{}, s.source.SalesSeries()...)
	}
	return view, nil
}
