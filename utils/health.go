package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor polls mongo and the redis clients on the given
// interval and keeps an in-memory snapshot for the health endpoint.
// Unhealthy backends are logged on every poll.
func StartHealthMonitor(interval time.Duration, redisClients []*redis.Client, mongoClient *mongo.Client) {
	if interval <= 0 {
		interval = 60 * time.Second
	}

	go func() {
		logger := GetLogger()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			redisHealth := make([]bool, 0, len(redisClients))
			for i, client := range redisClients {
				err := client.Ping(ctx).Err()
				if err != nil {
					logger.Warn("redis backend unhealthy", zap.Int("client", i), zap.Error(err))
				}
				redisHealth = append(redisHealth, err == nil)
			}

			mongoErr := mongoClient.Ping(ctx, nil)
			if mongoErr != nil {
				logger.Warn("mongo backend unhealthy", zap.Error(mongoErr))
			}

			mu.Lock()
			currentHealth = HealthStatus{
				Mongo:     mongoErr == nil,
				Redis:     redisHealth,
				CheckedAt: time.Now(),
			}
			mu.Unlock()
		}
	}()
}
