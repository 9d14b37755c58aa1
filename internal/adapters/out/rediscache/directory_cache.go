// Package rediscache provides a Redis-backed read-through cache for the
// driver directory. Directory membership changes slowly compared to sweep
// frequency, so short-lived cached answers cut a directory round trip per
// city per sweep without affecting assignment correctness: workload counts
// are never cached.
package rediscache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
)

// DefaultTTL is how long a cached city lookup stays valid.
const DefaultTTL = 30 * time.Second

// DirectoryCache decorates a ports.DriverDirectory with per-city caching.
// Cache failures are never fatal: any Redis error falls through to the
// wrapped directory, so dispatch keeps working with Redis down.
type DirectoryCache struct {
	inner  ports.DriverDirectory
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewDirectoryCache wraps the given directory with a Redis cache.
// A non-positive ttl falls back to DefaultTTL.
func NewDirectoryCache(
	inner ports.DriverDirectory,
	client *redis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) (*DirectoryCache, error) {
	if inner == nil {
		return nil, errs.NewValueIsRequiredError("inner")
	}
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &DirectoryCache{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func cacheKey(city string) string {
	return "dispatch:drivers:city:" + city
}

// DriversByCity answers from Redis when a fresh entry exists, otherwise asks
// the wrapped directory and stores the answer. Empty candidate lists are
// cached too; a city with no drivers would otherwise be re-queried every sweep.
func (c *DirectoryCache) DriversByCity(ctx context.Context, city string) ([]driver.Driver, error) {
	key := cacheKey(city)

	payload, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		var drivers []driver.Driver
		if unmarshalErr := json.Unmarshal([]byte(payload), &drivers); unmarshalErr == nil {
			return drivers, nil
		}
		// corrupt entry, fall through and overwrite
	case err != redis.Nil:
		c.logger.Warn("driver directory cache read failed", "city", city, "error", err)
	}

	drivers, err := c.inner.DriversByCity(ctx, city)
	if err != nil {
		return nil, err
	}

	if payload, marshalErr := json.Marshal(drivers); marshalErr == nil {
		if setErr := c.client.Set(ctx, key, payload, c.ttl).Err(); setErr != nil {
			c.logger.Warn("driver directory cache write failed", "city", city, "error", setErr)
		}
	}

	return drivers, nil
}

// Invalidate drops the cached entry for one city.
func (c *DirectoryCache) Invalidate(ctx context.Context, city string) error {
	return c.client.Del(ctx, cacheKey(city)).Err()
}
