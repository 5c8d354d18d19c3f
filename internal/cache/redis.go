package cache

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// Cache keys for the public read surface. Entries have no TTL; every admin
// write deletes the keys it invalidates.
const (
	KeyProjectsAll       = "projects:all"
	KeyProjectsPublished = "projects:published"
	KeyProjectsDrafts    = "projects:drafts"
	KeyAbout             = "about"
	KeyContact           = "contact"
	KeySettings          = "settings"
)

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(redisURL string) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	log.Printf("Connected to Redis at %s", redisURL)
	return &RedisCache{client: client}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.client.Get(ctx, key).Bytes()
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, key, value, 0).Err()
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	return c.client.Del(ctx, keys...).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// ProjectListKey maps the optional published filter onto a cache key.
func ProjectListKey(published *bool) string {
	switch {
	case published == nil:
		return KeyProjectsAll
	case *published:
		return KeyProjectsPublished
	default:
		return KeyProjectsDrafts
	}
}

// ProjectKeys is the set invalidated by any project write.
func ProjectKeys() []string {
	return []string{KeyProjectsAll, KeyProjectsPublished, KeyProjectsDrafts}
}
