package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shivfurnitures/books-api/internal/api"
	"github.com/shivfurnitures/books-api/internal/core/rules"
	"github.com/shivfurnitures/books-api/internal/core/service"
	"github.com/shivfurnitures/books-api/internal/infrastructure/config"
	mongodb "github.com/shivfurnitures/books-api/internal/infrastructure/db/mongo"
	redisdb "github.com/shivfurnitures/books-api/internal/infrastructure/db/redis"
	"github.com/shivfurnitures/books-api/internal/infrastructure/fixtures"
	"github.com/shivfurnitures/books-api/internal/infrastructure/queue"
	"github.com/shivfurnitures/books-api/pkg/logger"
)

// @title        Shiv Furnitures Books API
// @version      1.0
// @description  Role-based business management API: sessions, user directory, and read-only catalog.
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}()

	// --- Audit pipeline ---
	auditRepo := mongodb.NewAuditRepository(db)
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditService, log)
	dispatcher.Start(ctx)

	// --- Core services ---
	source := fixtures.NewSource()
	sessionRepo := redisdb.NewSessionRepository(rdb, cfg.Session.CacheKey)
	sessions := service.NewSessionService(
		sessionRepo, source, dispatcher,
		cfg.JWTSecret, cfg.Session.TokenTTL, cfg.Session.LoginDelay, log,
	)

	policy := rules.PasswordPolicy{
		MinLength:     cfg.Password.MinLength,
		RequireLower:  cfg.Password.RequireLower,
		RequireUpper:  cfg.Password.RequireUpper,
		RequireDigit:  cfg.Password.RequireDigit,
		RequireSymbol: cfg.Password.RequireSymbol,
	}
	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	directory := service.NewDirectoryService(userRepo, policy, log)
	catalog := service.NewCatalogService(source, log)

	// Rehydrate the session once at startup.
	if _, err := sessions.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("session restore failed")
	}

	e := api.NewRouter(api.Deps{
		Sessions:  sessions,
		Directory: directory,
		Catalog:   catalog,
		Audit:     auditService,
		Mongo:     db,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("books API listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
		os.Exit(1)
	}
	log.Info().Msg("server exited cleanly")
}
