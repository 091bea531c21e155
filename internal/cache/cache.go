package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "svgvault:q:"

// Notifier tells a user's connected clients which query keys went stale.
type Notifier interface {
	Invalidate(userID uuid.UUID, keys []string)
}

// Cache stores per-user query results in Redis and fans out invalidations.
// A nil *Cache, or one without a Redis client, caches nothing but still
// notifies.
type Cache struct {
	rdb      *redis.Client
	ttl      time.Duration
	notifier Notifier
	logger   *slog.Logger
}

func New(rdb *redis.Client, ttl time.Duration, notifier Notifier, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{rdb: rdb, ttl: ttl, notifier: notifier, logger: logger}
}

func redisKey(key Key, userID uuid.UUID) string {
	return keyPrefix + string(key) + ":" + userID.String()
}

// Get decodes a cached result into dst and reports whether there was one.
// Redis errors count as a miss.
func (c *Cache) Get(ctx context.Context, key Key, userID uuid.UUID, dst interface{}) bool {
	if c == nil || c.rdb == nil {
		return false
	}

	data, err := c.rdb.Get(ctx, redisKey(key, userID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache read failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		c.logger.Warn("cache entry undecodable", "key", key, "error", err)
		return false
	}
	return true
}

func (c *Cache) Set(ctx context.Context, key Key, userID uuid.UUID, v interface{}) {
	if c == nil || c.rdb == nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("cache entry unencodable", "key", key, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, redisKey(key, userID), data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", "key", key, "error", err)
	}
}

// Remember returns the cached value for key or loads, stores and returns it.
func Remember[T any](ctx context.Context, c *Cache, key Key, userID uuid.UUID, load func() (T, error)) (T, error) {
	var cached T
	if c.Get(ctx, key, userID, &cached) {
		return cached, nil
	}

	v, err := load()
	if err != nil {
		return v, err
	}
	c.Set(ctx, key, userID, v)
	return v, nil
}

// Invalidate drops the cached queries a mutation made stale for each user
// and pushes the stale keys to their clients.
func (c *Cache) Invalidate(ctx context.Context, m Mutation, userIDs ...uuid.UUID) []Key {
	keys := KeysFor(m)
	if c == nil || len(keys) == 0 {
		return keys
	}

	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}

	for _, userID := range userIDs {
		if c.rdb != nil {
			redisKeys := make([]string, len(keys))
			for i, k := range keys {
				redisKeys[i] = redisKey(k, userID)
			}
			if err := c.rdb.Del(ctx, redisKeys...).Err(); err != nil {
				c.logger.Warn("cache invalidation failed", "mutation", m, "user_id", userID, "error", err)
			}
		}
		if c.notifier != nil {
			c.notifier.Invalidate(userID, names)
		}
	}
	return keys
}

// Ping checks the Redis connection, if any.
func (c *Cache) Ping(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}
