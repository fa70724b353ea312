package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/shivfurnitures/books-api/docs"
	"github.com/shivfurnitures/books-api/internal/api/handler"
	"github.com/shivfurnitures/books-api/internal/api/middleware"
	"github.com/shivfurnitures/books-api/internal/core/domain"
	"github.com/shivfurnitures/books-api/internal/core/ports"
)

// Deps carries the constructed services the router wires to routes.
type Deps struct {
	Sessions  ports.SessionService
	Directory ports.DirectoryService
	Catalog   ports.CatalogService
	Audit     ports.AuditService
	Mongo     *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("books"))

	authHandler := handler.NewAuthHandler(deps.Sessions)
	userHandler := handler.NewUserHandler(deps.Directory)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	auditHandler := handler.NewAuditHandler(deps.Audit)
	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/session", authHandler.Session)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Business routes (authenticated) ---
	v1 := e.Group("/v1", authMiddleware)

	// Master data and financials: admin and accountant only.
	v1.GET("/contacts", catalogHandler.Contacts, middleware.RBAC(domain.RoleAdmin, domain.RoleAccountant))
	v1.GET("/products", catalogHandler.Products, middleware.RBAC(domain.RoleAdmin, domain.RoleAccountant))
	v1.GET("/taxes", catalogHandler.Taxes, middleware.RBAC(domain.RoleAdmin, domain.RoleAccountant))
	v1.GET("/accounts", catalogHandler.Accounts, middleware.RBAC(domain.RoleAdmin, domain.RoleAccountant))

	// Portal views: every role, scoped inside the catalog service.
	v1.GET("/transactions", catalogHandler.Transactions, middleware.RBAC(domain.RoleAdmin, domain.RoleAccountant, domain.RoleContact))
	v1.GET("/dashboard", catalogHandler.Dashboard, middleware.RBAC(domain.RoleAdmin, domain.RoleAccountant, domain.RoleContact))

	// User directory and audit trail: admin only.
	v1.POST("/users", userHandler.Create, middleware.RBAC(domain.RoleAdmin))
	v1.GET("/users", userHandler.List, middleware.RBAC(domain.RoleAdmin))
	v1.GET("/audit", auditHandler.History, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
