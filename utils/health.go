package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Healthy reports whether every dependency answered the last probe.
func (h HealthStatus) Healthy() bool {
	return h.Mongo && h.Redis
}

// Pinger is satisfied by the Redis and Mongo probes.
type Pinger func(ctx context.Context) error

// HealthMonitor keeps the latest dependency probe results.
type HealthMonitor struct {
	mu      sync.RWMutex
	current HealthStatus
	mongo   Pinger
	redis   Pinger
}

// NewHealthMonitor probes the given clients. Either may be nil.
func NewHealthMonitor(redisClient *redis.Client, mongoClient *mongo.Client) *HealthMonitor {
	var redisProbe, mongoProbe Pinger
	if redisClient != nil {
		redisProbe = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}
	if mongoClient != nil {
		mongoProbe = func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }
	}
	return NewHealthMonitorWithProbes(mongoProbe, redisProbe)
}

// NewHealthMonitorWithProbes builds a monitor from arbitrary probes. A nil
// probe always reports unhealthy.
func NewHealthMonitorWithProbes(mongoProbe, redisProbe Pinger) *HealthMonitor {
	return &HealthMonitor{mongo: mongoProbe, redis: redisProbe}
}

// Status returns latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check probes every dependency once and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	probe := func(p Pinger) bool {
		if p == nil {
			return false
		}
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return p(pingCtx) == nil
	}

	status := HealthStatus{
		Mongo:     probe(m.mongo),
		Redis:     probe(m.redis),
		CheckedAt: time.Now(),
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start checks immediately and then every interval until ctx is done.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	m.Check(ctx)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
