package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ripple/pkg/config"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// GetJSON loads a cached value into dest. Returns false on miss or decode
// failure so callers fall through to the store.
func GetJSON(ctx context.Context, client *redis.Client, key string, dest interface{}) bool {
	if client == nil {
		return false
	}
	b, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false
	}
	return true
}

// SetJSON marshals v and stores it with the given TTL. Cache writes are best
// effort; failures are ignored.
func SetJSON(ctx context.Context, client *redis.Client, key string, v interface{}, ttl time.Duration) {
	if client == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = client.Set(ctx, key, b, ttl).Err()
}

// InvalidateByPrefix deletes keys that match the given prefix using SCAN.
func InvalidateByPrefix(ctx context.Context, client *redis.Client, prefix string) {
	if client == nil {
		return
	}
	var cursor uint64
	for i := 0; i < 10; i++ { // limit rounds to avoid long loops
		keys, cur, err := client.Scan(ctx, cursor, prefix+"*", 1000).Result()
		if err != nil {
			break
		}
		cursor = cur
		if len(keys) > 0 {
			pipe := client.Pipeline()
			for _, k := range keys {
				pipe.Del(ctx, k)
			}
			_, _ = pipe.Exec(ctx)
		}
		if cursor == 0 {
			break
		}
	}
}
