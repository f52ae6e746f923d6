package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/learnhub/learning-platform/internal/pkg/config"
)

func TestRun_ReturnsErrorWhenMongoUnreachable(t *testing.T) {
	cfg := &config.Config{
		Port:            "0",
		ShutdownTimeout: time.Second,
		Auth:            config.AuthConfig{JWTSecret: "s3cret", TokenTTL: time.Hour, BcryptCost: 4, DefaultRole: "student"},
		Mongo:           config.MongoConfig{URI: "mongodb://127.0.0.1:1", Database: "test", Timeout: 200 * time.Millisecond},
		Redis:           config.RedisConfig{Addr: "127.0.0.1:1"},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := run(ctx, cfg, zerolog.Nop())
	if err == nil {
		t.Fatalf("expected error when mongodb is unreachable")
	}
	if !strings.Contains(err.Error(), "connect mongodb") {
		t.Fatalf("unexpected error: %v", err)
	}
}
