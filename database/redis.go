package database

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/yahiasanji/spaceodysseybooking/config"
)

// NewRedisClient creates a Redis client for the draft slot and auth sessions
func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// PingRedis verifies the Redis connection
func PingRedis(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	return nil
}
