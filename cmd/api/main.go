// @title                       Learning Platform API
// @version                     1.0
// @description                 Registration, login and role-gated routes for students, teachers and admins.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/learnhub/learning-platform/internal/api"
	"github.com/learnhub/learning-platform/internal/api/handler"
	"github.com/learnhub/learning-platform/internal/api/metrics"
	"github.com/learnhub/learning-platform/internal/core/domain"
	"github.com/learnhub/learning-platform/internal/core/service"
	mongodb "github.com/learnhub/learning-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/learnhub/learning-platform/internal/infrastructure/db/redis"
	"github.com/learnhub/learning-platform/internal/pkg/config"
	"github.com/learnhub/learning-platform/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "learning-platform-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("server exited")
		stop()
		os.Exit(1)
	}
}

// run wires the stores, services and router, serves until ctx is cancelled and
// releases every connection it opened before returning.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return fmt.Errorf("connect mongodb: %w", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	users := mongodb.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer rdb.Close()

	cachedUsers := redisdb.NewCachedUserRepository(users, rdb, cfg.Redis.UserCacheTTL, log, metrics.UserCacheLookupsTotal)
	tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(cachedUsers, tokens, cfg.Auth.BcryptCost, domain.Role(cfg.Auth.DefaultRole))

	e := api.NewRouter(api.Dependencies{
		Auth:     authService,
		Verifier: tokens,
		Health: map[string]handler.DependencyCheck{
			"mongodb": mongodb.PingCheck(db),
			"redis":   redisdb.PingCheck(rdb),
		},
		Log: log,
	})

	addr := net.JoinHostPort("", cfg.Port)
	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("http server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	default:
		return nil
	}
}
