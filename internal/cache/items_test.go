package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/shopping-service/internal/domain"
)

func newTestCache(t *testing.T) (*ItemCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewItemCache(client, time.Minute), srv
}

func store(t *testing.T, c *ItemCache, query string, items []domain.Item) {
	t.Helper()
	key, _, err := c.Lookup(context.Background(), query)
	require.ErrorIs(t, err, ErrMiss)
	require.NoError(t, c.Store(context.Background(), key, items))
}

func TestItemCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	items := []domain.Item{{ID: 2, Name: "Milk", DefaultUnitType: domain.UnitTypeCapacity}}
	store(t, c, "Milk", items)

	key, got, err := c.Lookup(ctx, "milk")
	require.NoError(t, err)
	assert.Equal(t, "shopping:items:v0:q:milk", key)
	assert.Equal(t, items, got)

	_, _, err = c.Lookup(ctx, "")
	assert.ErrorIs(t, err, ErrMiss, "queries are cached independently")
}

func TestItemCache_Invalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	store(t, c, "", []domain.Item{{ID: 1, Name: "Eggs"}})
	require.NoError(t, c.Invalidate(ctx))

	key, _, err := c.Lookup(ctx, "")
	assert.ErrorIs(t, err, ErrMiss)
	assert.Equal(t, "shopping:items:v1:q:", key)
}

func TestItemCache_StoreAfterInvalidateIsNotServed(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	key, _, err := c.Lookup(ctx, "")
	require.ErrorIs(t, err, ErrMiss)

	require.NoError(t, c.Invalidate(ctx))
	require.NoError(t, c.Store(ctx, key, []domain.Item{{ID: 1, Name: "Eggs"}}))

	_, _, err = c.Lookup(ctx, "")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestItemCache_Expires(t *testing.T) {
	c, srv := newTestCache(t)

	store(t, c, "bread", []domain.Item{{ID: 3, Name: "Bread"}})
	srv.FastForward(2 * time.Minute)

	_, _, err := c.Lookup(context.Background(), "bread")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestItemCache_NilIsDisabled(t *testing.T) {
	c := NewItemCache(nil, time.Minute)
	ctx := context.Background()

	assert.Nil(t, c)
	key, _, err := c.Lookup(ctx, "x")
	assert.ErrorIs(t, err, ErrMiss)
	assert.Empty(t, key)
	assert.NoError(t, c.Store(ctx, "k", nil))
	assert.NoError(t, c.Invalidate(ctx))
}

func TestItemCache_ServerDown(t *testing.T) {
	c, srv := newTestCache(t)
	srv.Close()

	key, _, err := c.Lookup(context.Background(), "x")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMiss)
	assert.Empty(t, key)
}
