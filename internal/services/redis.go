package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis initializes the Redis client
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://redis:6379" // Default Redis address for Docker
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test the connection
	ctx := context.Background()
	_, err = RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

// CacheSet stores a JSON-encoded value under key with the given TTL.
func CacheSet(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return RedisClient.Set(ctx, key, data, ttl).Err()
}

// CacheGet loads a JSON-encoded value into dest. Returns redis.Nil when the
// key is missing or expired.
func CacheGet(ctx context.Context, key string, dest interface{}) error {
	data, err := RedisClient.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

// CacheInvalidate removes all keys matching the given pattern. Used after
// admin mutations so fleet filters and reports do not serve stale data.
func CacheInvalidate(ctx context.Context, pattern string) error {
	iter := RedisClient.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := RedisClient.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// FleetFiltersKey caches the distinct make/fuel/year option lists on the
// public fleet page.
const FleetFiltersKey = "fleet:filters"

// ReportsKeyPrefix namespaces cached admin report payloads by period.
const ReportsKeyPrefix = "reports:"
