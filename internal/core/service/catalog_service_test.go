package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shivfurnitures/books-api/internal/core/domain"
	"github.com/shivfurnitures/books-api/internal/core/ports"
	"github.com/shivfurnitures/books-api/internal/infrastructure/fixtures"
)

func newTestCatalog() *CatalogService {
	return NewCatalogService(fixtures.NewSource(), zerolog.Nop())
}

func TestCatalogService_Contacts_RoleGating(t *testing.T) {
	svc := newTestCatalog()

	if _, err := svc.Contacts(context.Background(), domain.RoleContact, ports.ContactFilter{}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("contact role must not see the contact master, got %v", err)
	}

	contacts, err := svc.Contacts(context.Background(), domain.RoleAccountant, ports.ContactFilter{})
	if err != nil {
		t.Fatalf("accountant should see contacts: %v", err)
	}
	if len(contacts) == 0 {
		t.Fatalf("expected fixture contacts")
	}
	if !sort.SliceIsSorted(contacts, func(i, j int) bool { return contacts[i].Name < contacts[j].Name }) {
		t.Fatalf("contacts must be sorted by name")
	}
}

func TestCatalogService_Contacts_Filter(t *testing.T) {
	svc := newTestCatalog()

	vendors, err := svc.Contacts(context.Background(), domain.RoleAdmin, ports.ContactFilter{Type: domain.ContactTypeVendor})
	if err != nil {
		t.Fatalf("contacts failed: %v", err)
	}
	for _, c := range vendors {
		if c.Type != domain.ContactTypeVendor {
			t.Fatalf("type filter leaked %q", c.Type)
		}
	}

	matches, err := svc.Contacts(context.Background(), domain.RoleAdmin, ports.ContactFilter{Search: "xyzretail"})
	if err != nil {
		t.Fatalf("contacts failed: %v", err)
	}
	if len(matches) != 1 || matches[0].Name != "XYZ Retail Corp." {
		t.Fatalf("search should match by email substring, got %+v", matches)
	}
}

func TestCatalogService_Transactions_ContactScope(t *testing.T) {
	svc := newTestCatalog()

	all, err := svc.Transactions(context.Background(), domain.RoleAdmin, ports.TransactionFilter{})
	if err != nil {
		t.Fatalf("transactions failed: %v", err)
	}

	portal, err := svc.Transactions(context.Background(), domain.RoleContact, ports.TransactionFilter{})
	if err != nil {
		t.Fatalf("transactions failed: %v", err)
	}
	if len(portal) >= len(all) {
		t.Fatalf("portal view must hide purchases: %d vs %d", len(portal), len(all))
	}
	for _, tr := range portal {
		if tr.Type == "purchase" {
			t.Fatalf("purchase leaked into the client portal")
		}
	}
}

func TestCatalogService_Transactions_Filter(t *testing.T) {
	svc := newTestCatalog()

	overdue, err := svc.Transactions(context.Background(), domain.RoleAccountant, ports.TransactionFilter{Type: "invoice", Status: "overdue"})
	if err != nil {
		t.Fatalf("transactions failed: %v", err)
	}
	if len(overdue) != 1 || overdue[0].Customer != "StartupXYZ" {
		t.Fatalf("unexpected filter result: %+v", overdue)
	}
}

func TestCatalogService_Transactions_SortedNewestFirst(t *testing.T) {
	svc := newTestCatalog()

	txs, err := svc.Transactions(context.Background(), domain.RoleAdmin, ports.TransactionFilter{})
	if err != nil {
		t.Fatalf("transactions failed: %v", err)
	}
	if !sort.SliceIsSorted(txs, func(i, j int) bool { return txs[i].Date > txs[j].Date }) {
		t.Fatalf("transactions must be sorted newest first")
	}
}

func TestCatalogService_Dashboard_Titles(t *testing.T) {
	svc := newTestCatalog()

	cases := map[string]string{
		domain.RoleAdmin:      "Administrator Dashboard",
		domain.RoleAccountant: "Accountant Dashboard",
		domain.RoleContact:    "Client Portal",
	}
	for role, want := range cases {
		view, err := svc.Dashboard(context.Background(), role)
		if err != nil {
			t.Fatalf("dashboard(%s) failed: %v", role, err)
		}
		if view.Title != want {
			t.Fatalf("dashboard(%s) title = %q, want %q", role, view.Title, want)
		}
	}

	if _, err := svc.Dashboard(context.Background(), "guest"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("unknown role must be forbidden, got %v", err)
	}
}

func TestCatalogService_Dashboard_FinancialSeries(t *testing.T) {
	svc := newTestCatalog()

	admin, err := svc.Dashboard(context.Background(), domain.RoleAdmin)
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if len(admin.SalesSeries) == 0 {
		t.Fatalf("admin dashboard must include the sales series")
	}
	if len(admin.Transactions) == 0 || len(admin.Transactions) > recentTransactionLimit {
		t.Fatalf("unexpected recent transactions: %d", len(admin.Transactions))
	}

	portal, err := svc.Dashboard(context.Background(), domain.RoleContact)
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if len(portal.SalesSeries) != 0 {
		t.Fatalf("client portal must not include the sales series")
	}
}

func TestCatalogService_MasterData(t *testing.T) {
	svc := newTestCatalog()

	products, err := svc.Products(context.Background(), domain.RoleAdmin)
	if err != nil || len(products) == 0 {
		t.Fatalf("products: %v (%d)", err, len(products))
	}
	taxes, err := svc.Taxes(context.Background(), domain.RoleAccountant)
	if err != nil || len(taxes) == 0 {
		t.Fatalf("taxes: %v (%d)", err, len(taxes))
	}
	accounts, err := svc.Accounts(context.Background(), domain.RoleAccountant)
	if err != nil || len(accounts) == 0 {
		t.Fatalf("accounts: %v (%d)", err, len(accounts))
	}
	if !sort.SliceIsSorted(accounts, func(i, j int) bool { return accounts[i].Code < accounts[j].Code }) {
		t.Fatalf("accounts must be sorted by code")
	}

	if _, err := svc.Products(context.Background(), domain.RoleContact); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("contact role must not see products, got %v", err)
	}
}
