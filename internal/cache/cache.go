package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/alegonzalezz/ATS-backend/internal/config"
)

// Redis wraps the go-redis client.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// Cache is a read-through byte cache for single-record lookups. A nil
// *Cache is valid and degrades to calling the loader directly, so callers
// never need to branch on whether caching is configured.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	sf     singleflight.Group
}

// New builds a Cache on top of an established Redis connection.
func New(r *Redis, ttl time.Duration) *Cache {
	if r == nil || r.Client == nil {
		return nil
	}
	return &Cache{client: r.Client, ttl: ttl}
}

// Key builds the cache key for a single record.
func Key(table, id string) string {
	return table + ":" + id
}

// GetOrLoad returns the cached bytes for key, or invokes load on a miss.
// Concurrent misses on the same key share one load call. A nil result from
// load is passed through without being cached.
func (c *Cache) GetOrLoad(ctx context.Context, key string, load func(context.Context) ([]byte, error)) ([]byte, error) {
	if c == nil || c.client == nil {
		return load(ctx)
	}
	if b, err := c.client.Get(ctx, key).Bytes(); err == nil {
		return b, nil
	}
	v, err, _ := c.sf.Do(key, func() (any, error) {
		b, e := load(ctx)
		if e != nil {
			return nil, e
		}
		if b != nil {
			_ = c.client.Set(ctx, key, b, c.ttl).Err()
		}
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	b, _ := v.([]byte)
	return b, nil
}

// Invalidate drops the given keys. Best effort; failures are ignored so a
// flaky cache never blocks a write path.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	_ = c.client.Del(ctx, keys...).Err()
}
