package domain

// Read-only business records. These back the catalog endpoints for display
// purposes only; nothing in the system mutates or persists them.

const (
	ContactTypeVendor   = "vendor"
	ContactTypeCustomer = "customer"
)

// Contact is a vendor or customer on the contact master.
type Contact struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Type           string  `json:"type"`
	Address        string  `json:"address"`
	GSTNumber      string  `json:"gstNumber"`
	OpeningBalance float64 `json:"openingBalance"`
	CreatedAt      string  `json:"createdAt"`
}

// Product is a goods or services line on the product master.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Type          string  `json:"type"`
	SalesPrice    float64 `json:"salesPrice"`
	PurchasePrice float64 `json:"purchasePrice"`
	SalesTaxID    string  `json:"salesTaxId"`
	PurchaseTaxID string  `json:"purchaseTaxId"`
	StockQuantity float64 `json:"stockQuantity"`
	Unit          string  `json:"unit"`
	CreatedAt     string  `json:"createdAt"`
}

// Tax is a named rate applied on sales, purchases, or both.
type Tax struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Rate         float64 `json:"rate"`
	Type         string  `json:"type"`
	ApplicableOn string  `json:"applicableOn"`
	CreatedAt    string  `json:"createdAt"`
}

// Account is one entry in the chart of accounts.
type Account struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Code           string  `json:"code"`
	Type           string  `json:"type"`
	SubType        string  `json:"subType"`
	OpeningBalance float64 `json:"openingBalance"`
	CurrentBalance float64 `json:"currentBalance"`
	CreatedAt      string  `json:"createdAt"`
}

// Transaction is a display row for invoices, purchases, and payments.
type Transaction struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Customer    string  `json:"customer"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	Date        string  `json:"date"`
}

// DashboardStats aggregates the headline figures for the dashboard.
type DashboardStats struct {
	TotalSales      float64 `json:"totalSales"`
	TotalPurchases  float64 `json:"totalPurchases"`
	CashInHand      float64 `json:"cashInHand"`
	BankBalance     float64 `json:"bankBalance"`
	TotalStock      float64 `json:"totalStock"`
	OverdueInvoices int     `json:"overdueInvoices"`
}

// SalesPoint is one month on the sales-versus-purchases chart.
type SalesPoint struct {
	Month     string  `json:"month"`
	Sales     float64 `json:"sales"`
	Purchases float64 `json:"purchases"`
}
