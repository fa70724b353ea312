package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shivfurnitures/books-api/internal/core/domain"
	"github.com/shivfurnitures/books-api/internal/core/ports"
)

type stubSessionService struct {
	loginFn   func(ctx context.Context, email, password, role string) (*ports.LoginResult, error)
	logoutFn  func(ctx context.Context) error
	currentFn func() (*domain.Identity, bool)
}

func (s *stubSessionService) Restore(_ context.Context) (*domain.Identity, error) {
	return nil, nil
}

func (s *stubSessionService) Login(ctx context.Context, email, password, role string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password, role)
}

func (s *stubSessionService) Logout(ctx context.Context) error {
	if s.logoutFn != nil {
		return s.logoutFn(ctx)
	}
	return nil
}

func (s *stubSessionService) Current() (*domain.Identity, bool) {
	if s.currentFn != nil {
		return s.currentFn()
	}
	return nil, false
}

func (s *stubSessionService) Subscribe(func(*domain.Identity)) {}

func newAuthContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, email, password, role string) (*ports.LoginResult, error) {
			if email != "admin@demo.com" || password != "Demo123!@" || role != "" {
				t.Fatalf("unexpected args: %s %s %s", email, password, role)
			}
			return &ports.LoginResult{
				Token:    "token123",
				Identity: &domain.Identity{Name: "Shiv Kumar", Email: email, Role: domain.RoleAdmin},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login", `{"email":"admin@demo.com","password":"Demo123!@"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	if resp["dashboardTitle"] != "Administrator Dashboard" {
		t.Fatalf("unexpected title: %v", resp["dashboardTitle"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "admin@demo.com" || user["role"] != domain.RoleAdmin {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Login_ExplicitRoleForwarded(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, email, password, role string) (*ports.LoginResult, error) {
			if role != domain.RoleContact {
				t.Fatalf("explicit role not forwarded: %q", role)
			}
			return &ports.LoginResult{
				Token:    "token123",
				Identity: &domain.Identity{Email: email, Role: role},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login", `{"email":"client@demo.com","password":"Demo123!@","role":"contact"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, email, password, role string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login", `{"email":"admin@demo.com","password":"bad"}`)
	_ = handler.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Superseded(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, email, password, role string) (*ports.LoginResult, error) {
			return nil, domain.ErrLoginSuperseded
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login", `{"email":"admin@demo.com","password":"Demo123!@"}`)
	_ = handler.Login(c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, email, password, role string) (*ports.LoginResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login", "{")
	_ = handler.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_BadRoleRejectedBySchema(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, email, password, role string) (*ports.LoginResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login", `{"email":"admin@demo.com","password":"Demo123!@","role":"superuser"}`)
	_ = handler.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	called := false
	stub := &stubSessionService{
		logoutFn: func(ctx context.Context) error {
			called = true
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/logout", "")
	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("logout not forwarded to the session service")
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAuthHandler_Session_Authenticated(t *testing.T) {
	stub := &stubSessionService{
		currentFn: func() (*domain.Identity, bool) {
			return &domain.Identity{Email: "accountant@demo.com", Role: domain.RoleAccountant}, false
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodGet, "/auth/session", "")
	if err := handler.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["loading"] != false {
		t.Fatalf("expected loading=false, got %v", resp["loading"])
	}
	if resp["dashboardTitle"] != "Accountant Dashboard" {
		t.Fatalf("unexpected title: %v", resp["dashboardTitle"])
	}
}

func TestAuthHandler_Session_Loading(t *testing.T) {
	stub := &stubSessionService{
		currentFn: func() (*domain.Identity, bool) {
			return nil, true
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodGet, "/auth/session", "")
	if err := handler.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["loading"] != true {
		t.Fatalf("expected loading=true, got %v", resp["loading"])
	}
	if _, hasUser := resp["user"]; hasUser {
		t.Fatalf("no user should be reported while loading")
	}
	if resp["dashboardTitle"] != "Dashboard" {
		t.Fatalf("expected neutral title while loading, got %v", resp["dashboardTitle"])
	}
}
