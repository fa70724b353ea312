// Package fixtures is the static data collaborator: the default profile
// template used to synthesize identities on login, plus the read-only
// business records served by the catalog. Accessors return copies so
// callers can never mutate the fixture state.
package fixtures

import "github.com/shivfurnitures/books-api/internal/core/domain"

// Source serves the compiled-in fixture records.
type Source struct{}

func NewSource() *Source {
	return &Source{}
}

var defaultProfile = domain.Identity{
	ID:        "1",
	Name:      "Shiv Kumar",
	Email:     "shiv@example.com",
	Role:      domain.RoleAdmin,
	Avatar:    "https://images.pexels.com/photos/91227/pexels-photo-91227.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
	CompanyID: "comp1",
}

// DefaultProfile returns the template merged with the caller's email and
// role at login time.
func (s *Source) DefaultProfile() domain.Identity {
	return defaultProfile
}

var contacts = []domain.Contact{
	{
		ID:             "1",
		Name:           "ABC Suppliers Ltd.",
		Email:          "contact@abcsuppliers.com",
		Phone:          "+91 98765 43210",
		Type:           domain.ContactTypeVendor,
		Address:        "123 Business Park, Mumbai, Maharashtra 400001",
		GSTNumber:      "27AABCA1234A1Z5",
		OpeningBalance: 50000,
		CreatedAt:      "2024-01-15T10:00:00Z",
	},
	{
		ID:             "2",
		Name:           "XYZ Retail Corp.",
		Email:          "sales@xyzretail.com",
		Phone:          "+91 87654 32109",
		Type:           domain.ContactTypeCustomer,
		Address:        "456 Commercial Street, Delhi, Delhi 110001",
		GSTNumber:      "07BBFCA2345B2Z6",
		OpeningBalance: -25000,
		CreatedAt:      "2024-01-20T14:30:00Z",
	},
}

func (s *Source) Contacts() []domain.Contact {
	return append([]domain.Contact{}, contacts...)
}

var products = []domain.Product{
	{
		ID:            "1",
		Name:          "Laptop Computer",
		Description:   "High-performance business laptop",
		Type:          "goods",
		SalesPrice:    75000,
		PurchasePrice: 60000,
		SalesTaxID:    "1",
		PurchaseTaxID: "1",
		StockQuantity: 25,
		Unit:          "piece",
		CreatedAt:     "2024-01-10T09:00:00Z",
	},
	{
		ID:            "2",
		Name:          "Software License",
		Description:   "Annual software license",
		Type:          "services",
		SalesPrice:    12000,
		PurchasePrice: 8000,
		SalesTaxID:    "2",
		PurchaseTaxID: "2",
		StockQuantity: 0,
		Unit:          "license",
		CreatedAt:     "2024-01-12T11:15:00Z",
	},
}

func (s *Source) Products() []domain.Product {
	return append([]domain.Product{}, products...)
}

var taxes = []domain.Tax{
	{ID: "1", Name: "GST 18%", Rate: 18, Type: "percentage", ApplicableOn: "both", CreatedAt: "2024-01-01T00:00:00Z"},
	{ID: "2", Name: "GST 12%", Rate: 12, Type: "percentage", ApplicableOn: "both", CreatedAt: "2024-01-01T00:00:00Z"},
}

func (s *Source) Taxes() []domain.Tax {
	return append([]domain.Tax{}, taxes...)
}

var accounts = []domain.Account{
	{ID: "1", Name: "Cash in Hand", Code: "1001", Type: "assets", SubType: "current_assets", OpeningBalance: 100000, CurrentBalance: 125000, CreatedAt: "2024-01-01T00:00:00Z"},
	{ID: "2", Name: "Bank Account - SBI", Code: "1002", Type: "assets", SubType: "current_assets", OpeningBalance: 500000, CurrentBalance: 750000, CreatedAt: "2024-01-01T00:00:00Z"},
	{ID: "3", Name: "Sales Revenue", Code: "4001", Type: "income", SubType: "operating_income", OpeningBalance: 0, CurrentBalance: 2500000, CreatedAt: "2024-01-01T00:00:00Z"},
}

func (s *Source) Accounts() []domain.Account {
	return append([]domain.Account{}, accounts...)
}

var transactions = []domain.Transaction{
	{ID: "1", Description: "Website Development Invoice", Customer: "Tech Solutions Ltd.", Amount: 125000, Type: "invoice", Status: "paid", Date: "2024-01-15"},
	{ID: "2", Description: "Office Supplies Purchase", Customer: "Office Mart", Amount: 15000, Type: "purchase", Status: "paid", Date: "2024-01-14"},
	{ID: "3", Description: "Software License Payment", Customer: "Adobe Systems", Amount: 45000, Type: "payment", Status: "pending", Date: "2024-01-13"},
	{ID: "4", Description: "Consulting Services Invoice", Customer: "StartupXYZ", Amount: 85000, Type: "invoice", Status: "overdue", Date: "2024-01-12"},
	{ID: "5", Description: "Marketing Campaign Payment", Customer: "Google Ads", Amount: 25000, Type: "payment", Status: "paid", Date: "2024-01-11"},
}

func (s *Source) Transactions() []domain.Transaction {
	return append([]domain.Transaction{}, transactions...)
}

var stats = domain.DashboardStats{
	TotalSales:      2500000,
	TotalPurchases:  1800000,
	CashInHand:      125000,
	BankBalance:     750000,
	TotalStock:      1200000,
	OverdueInvoices: 3,
}

func (s *Source) Stats() domain.DashboardStats {
	return stats
}

var salesSeries = []domain.SalesPoint{
	{Month: "Jan", Sales: 400000, Purchases: 300000},
	{Month: "Feb", Sales: 500000, Purchases: 350000},
	{Month: "Mar", Sales: 450000, Purchases: 320000},
	{Month: "Apr", Sales: 600000, Purchases: 400000},
	{Month: "May", Sales: 550000, Purchases: 380000},
	{Month: "Jun", Sales: 700000, Purchases: 450000},
}

func (s *Source) SalesSeries() []domain.SalesPoint {
	return append([]domain.SalesPoint{}, salesSeries...)
}
