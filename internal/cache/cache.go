// Package cache stores rendered reports in Redis.
//
// Keys carry the ledger instance id and its write version, so a write makes
// every older key unreachable and no explicit invalidation is needed. Stale
// keys expire through the TTL.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const keyPrefix = "ledger:report"

// Connect creates a Redis client and verifies the connection.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: ping: %w", err)
	}

	return client, nil
}

// ReportCache wraps Redis with single-flight loading. A nil *ReportCache
// calls the loader every time.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
	group  singleflight.Group
}

func New(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{client: client, ttl: ttl}
}

// BuildKey composes the key of one report for one ledger version.
func BuildKey(ledgerID uuid.UUID, version uint64, report string) string {
	return strings.Join([]string{keyPrefix, ledgerID.String(), strconv.FormatUint(version, 10), report}, ":")
}

// FetchJSON decodes the cached value at key into dest, or runs loader, caches
// its JSON encoding and decodes that. Concurrent misses on one key share a
// single loader call. Loader errors are returned and never cached. When Redis
// is unreachable the loader result is served uncached.
func (c *ReportCache) FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error {
	if loader == nil {
		return errors.New("cache: loader required")
	}
	if c == nil || c.client == nil {
		raw, err := load(ctx, loader)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, dest)
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		return json.Unmarshal(payload, dest)
	}
	cacheable := errors.Is(err, redis.Nil)

	v, err, _ := c.group.Do(key, func() (any, error) {
		raw, err := load(ctx, loader)
		if err != nil {
			return nil, err
		}
		if cacheable {
			_ = c.client.Set(ctx, key, raw, c.ttl).Err()
		}
		return raw, nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(v.([]byte), dest)
}

func load(ctx context.Context, loader func(context.Context) (any, error)) ([]byte, error) {
	value, err := loader(ctx)
	if err != nil {
		return nil, err
	}
	return json.Marshal(value)
}
