// Command server starts the NewsPress HTTP API.
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ujsag/newspress/internal/api"
	"github.com/ujsag/newspress/internal/core/service"
	"github.com/ujsag/newspress/internal/infrastructure/config"
	mongodb "github.com/ujsag/newspress/internal/infrastructure/db/mongo"
	redisdb "github.com/ujsag/newspress/internal/infrastructure/db/redis"
	"github.com/ujsag/newspress/internal/infrastructure/queue"
	"github.com/ujsag/newspress/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("starting newspress server")

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	articleRepo := mongodb.NewArticleRepository(db)
	authorRepo := mongodb.NewAuthorRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	for _, idx := range []interface {
		EnsureIndexes(ctx context.Context) error
	}{articleRepo, authorRepo, userRepo, auditRepo} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}

	// --- Redis ---
	redisClient, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()
	tokenStore := redisdb.NewTokenStore(redisClient)

	// --- Async audit trail ---
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditRepo, log)
	dispatcher.Start(ctx)

	// --- Services ---
	articleService := service.NewArticleService(articleRepo, authorRepo, dispatcher, log)
	authorService := service.NewAuthorService(authorRepo, articleRepo, dispatcher, log)
	authService := service.NewAuthService(userRepo, tokenStore, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, log)
	auditService := service.NewAuditService(auditRepo)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := authService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatal().Err(err).Msg("admin bootstrap failed")
		}
	}

	// --- HTTP server ---
	e := api.NewRouter(api.Deps{
		Articles:  articleService,
		Authors:   authorService,
		Auth:      authService,
		Activity:  auditService,
		Mongo:     db,
		Redis:     redisClient,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(":" + cfg.Port)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}

	log.Info().Msg("shutdown complete")
}
