// Package cache holds the Redis-backed read-through cache for item listings.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/shopping-service/internal/domain"
)

const (
	keyPrefix  = "shopping:items"
	versionKey = keyPrefix + ":version"
)

// ErrMiss is returned when a listing is not cached.
var ErrMiss = errors.New("cache: miss")

// ItemCache stores item listings keyed by search query.
// Invalidation bumps a version counter so stale listings are never read again.
type ItemCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewItemCache returns nil when client is nil; a nil cache always misses.
func NewItemCache(client *redis.Client, ttl time.Duration) *ItemCache {
	if client == nil {
		return nil
	}
	return &ItemCache{client: client, ttl: ttl}
}

// Lookup resolves the key for query under the current version and returns the
// listing stored there. The key is returned on a miss too: callers pass it to
// Store so a listing read before an Invalidate is parked under the old version.
func (c *ItemCache) Lookup(ctx context.Context, query string) (string, []domain.Item, error) {
	if c == nil {
		return "", nil, ErrMiss
	}
	key, err := c.key(ctx, query)
	if err != nil {
		return "", nil, err
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return key, nil, ErrMiss
	}
	if err != nil {
		return key, nil, err
	}
	var items []domain.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return key, nil, err
	}
	return key, items, nil
}

// Store writes items under a key obtained from Lookup. An empty key is ignored.
func (c *ItemCache) Store(ctx context.Context, key string, items []domain.Item) error {
	if c == nil || key == "" {
		return nil
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

// Invalidate drops every cached listing.
func (c *ItemCache) Invalidate(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Incr(ctx, versionKey).Err()
}

func (c *ItemCache) key(ctx context.Context, query string) (string, error) {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	return keyPrefix + ":v" + strconv.FormatInt(version, 10) + ":q:" + strings.ToLower(query), nil
}
