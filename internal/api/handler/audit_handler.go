package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shivfurnitures/books-api/internal/core/domain"
	"github.com/shivfurnitures/books-api/internal/core/ports"
)

// AuditHandler serves the session audit trail to administrators.
type AuditHandler struct {
	audit ports.AuditService
}

func NewAuditHandler(audit ports.AuditService) *AuditHandler {
	return &AuditHandler{audit: audit}
}

type auditResponse struct {
	Events []domain.SessionEvent `json:"events"`
}

// History handles GET /v1/audit.
//
// @Summary      Session audit trail for one subject
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        email  query  string  true   "Subject email"
// @Param        limit  query  int     false  "Maximum events to return (newest first)"
// @Success      200  {object}  auditResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/audit [get]
func (h *AuditHandler) History(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email query parameter is required"})
	}

	var limit int64
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
		}
		limit = parsed
	}

	events, err := h.audit.History(c.Request().Context(), email, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, auditResponse{Events: events})
}
