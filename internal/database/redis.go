package database

import (
	"context"
	"fmt"

	"github.com/loginverify/loginverify/backend/go-services/internal/config"
	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates a client for the configured Redis and validates it with PING.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s:%s: %w", cfg.Host, cfg.Port, err)
	}
	return client, nil
}
