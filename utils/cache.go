package utils

import (
	"context"
	"fmt"
	"time"

	"openinghours/config"

	"github.com/go-redis/redis/v8"
)

// InitCache connects the venue cache client and pings it.
func InitCache(cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (cache) at %s: %w", cfg.RedisAddr, err)
	}
	return client, nil
}
