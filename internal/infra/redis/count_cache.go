package redis

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"sneakdrop/internal/pkg/config"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const countKeyPrefix = "votes:count:"

// NewClient connects to Redis and verifies the connection.
func NewClient(cfg config.RedisConfig) (*goredis.Client, func(), error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}
	return client, cleanup, nil
}

// CountCache holds all-time product counts with a short TTL. Every operation
// is best effort: on any Redis failure callers fall through to the database.
type CountCache struct {
	rdb goredis.Cmdable
	ttl time.Duration
}

func NewCountCache(rdb goredis.Cmdable, cfg config.Config) *CountCache {
	return &CountCache{rdb: rdb, ttl: cfg.Redis.CountTTL}
}

func (c *CountCache) Get(ctx context.Context, productID uuid.UUID) (int64, bool) {
	val, err := c.rdb.Get(ctx, countKey(productID)).Result()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			slog.Warn("redis count GET failed", "product_id", productID, "error", err)
		}
		return 0, false
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		slog.Warn("corrupt cached count, dropping key", "product_id", productID, "error", err)
		_ = c.rdb.Del(ctx, countKey(productID)).Err()
		return 0, false
	}
	return count, true
}

func (c *CountCache) Set(ctx context.Context, productID uuid.UUID, count int64) {
	if err := c.rdb.Set(ctx, countKey(productID), count, c.ttl).Err(); err != nil {
		slog.Warn("redis count SET failed", "product_id", productID, "error", err)
	}
}

func (c *CountCache) Invalidate(ctx context.Context, productID uuid.UUID) {
	if err := c.rdb.Del(ctx, countKey(productID)).Err(); err != nil {
		slog.Warn("redis count DEL failed", "product_id", productID, "error", err)
	}
}

func countKey(productID uuid.UUID) string {
	return countKeyPrefix + productID.String()
}
