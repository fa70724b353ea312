package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shivfurnitures/books-api/internal/core/ports"
)

// CatalogHandler serves the read-only business records.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Contacts handles GET /v1/contacts.
//
// @Summary      List contacts
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        type    query  string  false  "Contact type (vendor, customer)"
// @Param        search  query  string  false  "Name/email substring match"
// @Success      200  {array}   domain.Contact
// @Failure      403  {object}  map[string]string
// @Router       /v1/contacts [get]
func (h *CatalogHandler) Contacts(c echo.Context) error {
	role, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	contacts, err := h.catalog.Contacts(c.Request().Context(), role, ports.ContactFilter{
		Type:   c.QueryParam("type"),
		Search: c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contacts)
}

// Products handles GET /v1/products.
//
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Product
// @Failure      403  {object}  map[string]string
// @Router       /v1/products [get]
func (h *CatalogHandler) Products(c echo.Context) error {
	role, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	products, err := h.catalog.Products(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Taxes handles GET /v1/taxes.
//
// @Summary      List taxes
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Tax
// @Failure      403  {object}  map[string]string
// @Router       /v1/taxes [get]
func (h *CatalogHandler) Taxes(c echo.Context) error {
	role, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	taxes, err := h.catalog.Taxes(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, taxes)
}

// Accounts handles GET /v1/accounts.
//
// @Summary      List chart of accounts
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Account
// @Failure      403  {object}  map[string]string
// @Router       /v1/accounts [get]
func (h *CatalogHandler) Accounts(c echo.Context) error {
	role, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	accounts, err := h.catalog.Accounts(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

// Transactions handles GET /v1/transactions.
//
// @Summary      List transactions
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        type    query  string  false  "Transaction type (invoice, purchase, payment)"
// @Param        status  query  string  false  "Status (paid, pending, overdue)"
// @Success      200  {array}   domain.Transaction
// @Failure      403  {object}  map[string]string
// @Router       /v1/transactions [get]
func (h *CatalogHandler) Transactions(c echo.Context) error {
	role, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	transactions, err := h.catalog.Transactions(c.Request().Context(), role, ports.TransactionFilter{
		Type:   c.QueryParam("type"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transactions)
}

// Dashboard handles GET /v1/dashboard.
//
// @Summary      Role-gated dashboard view
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardView
// @Failure      403  {object}  map[string]string
// @Router       /v1/dashboard [get]
func (h *CatalogHandler) Dashboard(c echo.Context) error {
	role, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	view, err := h.catalog.Dashboard(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}
