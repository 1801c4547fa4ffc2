package venue

import (
	"context"
	"encoding/json"
	"time"

	"openinghours/models"

	"github.com/go-redis/redis/v8"
)

const venueCachePrefix = "venue:"

// VenueCache stores venues by ID. Get returns nil, nil on a miss.
type VenueCache interface {
	Get(ctx context.Context, id string) (*models.Venue, error)
	Set(ctx context.Context, venue *models.Venue) error
	Delete(ctx context.Context, id string) error
}

// RedisVenueCache is the Redis-backed VenueCache.
type RedisVenueCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisVenueCache(client *redis.Client, ttl time.Duration) *RedisVenueCache {
	return &RedisVenueCache{client: client, ttl: ttl}
}

func (c *RedisVenueCache) Get(ctx context.Context, id string) (*models.Venue, error) {
	data, err := c.client.Get(ctx, venueCachePrefix+id).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var v models.Venue
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *RedisVenueCache) Set(ctx context.Context, venue *models.Venue) error {
	b, err := json.Marshal(venue)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, venueCachePrefix+venue.ID, b, c.ttl).Err()
}

func (c *RedisVenueCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, venueCachePrefix+id).Err()
}
