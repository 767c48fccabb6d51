package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"brandforge/server/internal/config"
	"brandforge/server/internal/models"
)

// RedisCache is the shared analysis cache for multi-instance deployments.
// Optional: the service degrades to the in-process cache when redis is not
// configured or unreachable.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client, ttl: ttl}, nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Get returns the cached analysis for a key, or a miss on any error
func (c *RedisCache) Get(ctx context.Context, key string) (*models.BrandDescription, bool) {
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("redis get failed, treating as miss: %v", err)
		return nil, false
	}

	var brand models.BrandDescription
	if err := json.Unmarshal([]byte(data), &brand); err != nil {
		return nil, false
	}
	return &brand, true
}

// Set stores an analysis with the configured TTL. Failures are logged and
// otherwise ignored.
func (c *RedisCache) Set(ctx context.Context, key string, brand *models.BrandDescription) {
	data, err := json.Marshal(brand)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("redis set failed: %v", err)
	}
}
