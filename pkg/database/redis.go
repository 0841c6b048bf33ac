package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sky-archive/pkg/config"
)

// NewRedisClient connects to redis for rate limiting. Callers may treat a
// failure as non-fatal and run without limiting.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}
