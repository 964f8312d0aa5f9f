package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"pulse-share/internal/domain"
	"pulse-share/pkg/log"

	goredis "github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "pulse:share:"

// RedisCache stores share sets as JSON in Redis so several server
// instances can share one cache.
type RedisCache struct {
	client goredis.UniversalClient
	ttl    time.Duration
}

// NewRedisCache wraps an existing client.
func NewRedisCache(client goredis.UniversalClient, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// NewRedisCacheFromURL parses a redis:// URL and pings the server.
func NewRedisCacheFromURL(ctx context.Context, url string, ttl time.Duration) (*RedisCache, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return NewRedisCache(client, ttl), nil
}

// Get retrieves a share set. Redis errors and undecodable values are
// logged and reported as a miss.
func (c *RedisCache) Get(ctx context.Context, ct domain.ContentType, item domain.ContentItem) (domain.ShareSet, bool) {
	key := redisKeyPrefix + NormalizedKey(ct, item)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false
	}
	if err != nil {
		log.GlobalWarnCtx(ctx, "redis cache get failed", "key", key, "error", err.Error())
		return nil, false
	}

	var set domain.ShareSet
	if err := json.Unmarshal(data, &set); err != nil {
		log.GlobalWarnCtx(ctx, "redis cache entry unreadable", "key", key, "error", err.Error())
		return nil, false
	}
	return set, true
}

// Set stores a share set with the configured TTL. Failures are logged only.
func (c *RedisCache) Set(ctx context.Context, ct domain.ContentType, item domain.ContentItem, set domain.ShareSet) {
	key := redisKeyPrefix + NormalizedKey(ct, item)
	data, err := json.Marshal(set)
	if err != nil {
		log.GlobalWarnCtx(ctx, "redis cache encode failed", "key", key, "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.GlobalWarnCtx(ctx, "redis cache set failed", "key", key, "error", err.Error())
	}
}

// Close closes the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
