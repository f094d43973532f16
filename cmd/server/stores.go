package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/KirkDiggler/bh2e-sheets/internal/config"
	redisclient "github.com/KirkDiggler/bh2e-sheets/internal/redis"
	actorrepo "github.com/KirkDiggler/bh2e-sheets/internal/repositories/actor"
	chatrepo "github.com/KirkDiggler/bh2e-sheets/internal/repositories/chat"
)

// stores holds the Redis-backed repositories shared by every command
type stores struct {
	cfg    *config.Config
	client redisclient.Client
	actors actorrepo.Repository
	chat   chatrepo.Repository
}

// loadConfig reads configuration, applies flag overrides and installs the default logger
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if redisAddr != "" {
		cfg.RedisAddr = redisAddr
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	return cfg, nil
}

// openStores connects to Redis and builds the repositories
func openStores(ctx context.Context, cfg *config.Config) (*stores, func(), error) {
	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		Password: cfg.RedisPassword,
		UseTLS:   cfg.RedisTLS,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	cleanup := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	if err := client.Ping(ctx).Err(); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}

	actors, err := actorrepo.NewRedis(&actorrepo.RedisConfig{
		Client:         client,
		OwnerCacheSize: cfg.OwnerCacheSize,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create actor repository: %w", err)
	}

	chat, err := chatrepo.NewRedis(&chatrepo.RedisConfig{
		Client:   client,
		LogLimit: cfg.ChatLogLimit,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create chat repository: %w", err)
	}

	return &stores{cfg: cfg, client: client, actors: actors, chat: chat}, cleanup, nil
}
