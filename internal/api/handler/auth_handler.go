package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shivfurnitures/books-api/internal/core/domain"
	"github.com/shivfurnitures/books-api/internal/core/ports"
)

type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin accountant contact"`
}

type authResponse struct {
	Token string           `json:"token,omitempty"`
	User  *domain.Identity `json:"user,omitempty"`
	Title string           `json:"dashboardTitle,omitempty"`
}

type sessionResponse struct {
	Loading bool             `json:"loading"`
	User    *domain.Identity `json:"user,omitempty"`
	Title   string           `json:"dashboardTitle"`
}

// Login authenticates and opens the session.
//
// @Summary      Login
// @Description  Opens a session. An explicit role wins; an omitted role is inferred from the email.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password, req.Role)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrInvalidRole):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrLoginSuperseded):
			status = http.StatusConflict
		}
		return c.JSON(status, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, authResponse{
		Token: result.Token,
		User:  result.Identity,
		Title: domain.DashboardTitle(result.Identity.Role),
	})
}

// Logout closes the session and clears the cache entry.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Session reports the current session state.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	identity, loading := h.sessions.Current()
	resp := sessionResponse{Loading: loading}
	if !loading && identity != nil {
		resp.User = identity
		resp.Title = domain.DashboardTitle(identity.Role)
	} else {
		// While a login or restore is in flight, role-based decisions
		// are suspended: no title is derived.
		resp.Title = domain.DashboardTitle("")
	}
	return c.JSON(http.StatusOK, resp)
}
