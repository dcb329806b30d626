package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dataetica/dataetica-api/internal/domain/model"
)

// Redis key layout for the public content cache. Pages carry a shared
// prefix so list invalidation is a single SCAN+DEL sweep.
const (
	postKeyPrefix = "dataetica:post:"
	pageKeyPrefix = "dataetica:posts:page:"
)

// RedisPostCache caches public post payloads in Redis as JSON.
// Cache failures are reported to callers, which treat them as misses.
type RedisPostCache struct {
	client redis.UniversalClient
}

// NewRedisPostCache creates a RedisPostCache with the given client.
func NewRedisPostCache(client redis.UniversalClient) *RedisPostCache {
	return &RedisPostCache{client: client}
}

// GetPost retrieves a cached post by slug. A miss returns ok=false.
func (c *RedisPostCache) GetPost(ctx context.Context, slug string) (model.Post, bool, error) {
	var post model.Post
	ok, err := c.getJSON(ctx, postKeyPrefix+slug, &post)
	return post, ok, err
}

// SetPost caches a post under its slug.
func (c *RedisPostCache) SetPost(ctx context.Context, post model.Post, ttl time.Duration) error {
	return c.setJSON(ctx, postKeyPrefix+post.Slug, post, ttl)
}

// InvalidatePost drops the cached post for a slug.
func (c *RedisPostCache) InvalidatePost(ctx context.Context, slug string) error {
	if err := c.client.Del(ctx, postKeyPrefix+slug).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// GetPage retrieves a cached list page by its derived key.
func (c *RedisPostCache) GetPage(ctx context.Context, key string) (model.PostPage, bool, error) {
	var page model.PostPage
	ok, err := c.getJSON(ctx, pageKeyPrefix+key, &page)
	return page, ok, err
}

// SetPage caches a list page.
func (c *RedisPostCache) SetPage(ctx context.Context, key string, page model.PostPage, ttl time.Duration) error {
	return c.setJSON(ctx, pageKeyPrefix+key, page, ttl)
}

// InvalidateLists drops all cached list pages. Runs a cursor scan so
// large keyspaces are not swept in one blocking command.
func (c *RedisPostCache) InvalidateLists(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, pageKeyPrefix+"*", 100).Iterator()
	keys := make([]string, 0, 16)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Health checks the Redis connection.
func (c *RedisPostCache) Health(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisPostCache) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis get: %w", err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("cache decode: %w", err)
	}
	return true, nil
}

func (c *RedisPostCache) setJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
