package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/shopping-service/internal/config"
	"github.com/spec-kit/shopping-service/internal/repository/repositorytest"
)

func TestSeedSuperUser(t *testing.T) {
	h := newTestHasher(t)
	ctx := context.Background()
	cfg := config.SuperUserConfig{Username: "root", Password: "rootpassword", DisplayName: "Root"}

	t.Run("replaces previous admins", func(t *testing.T) {
		users := repositorytest.NewUsers(
			newTestUser(t, h, 1, "old-admin", "whatever1", true),
			newTestUser(t, h, 2, "alice", "whatever2", false),
		)
		require.NoError(t, SeedSuperUser(ctx, users, h, cfg, zap.NewNop()))

		all, err := users.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)

		root, err := users.GetByUsername(ctx, "root")
		require.NoError(t, err)
		assert.True(t, root.IsAdmin)
		assert.Equal(t, "Root", root.DisplayName)
		assert.True(t, h.Verify(root.PasswordHash, "rootpassword"))

		_, err = users.GetByUsername(ctx, "old-admin")
		assert.Error(t, err)
	})

	t.Run("idempotent", func(t *testing.T) {
		users := repositorytest.NewUsers()
		require.NoError(t, SeedSuperUser(ctx, users, h, cfg, zap.NewNop()))
		require.NoError(t, SeedSuperUser(ctx, users, h, cfg, zap.NewNop()))

		all, err := users.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("default display name", func(t *testing.T) {
		users := repositorytest.NewUsers()
		require.NoError(t, SeedSuperUser(ctx, users, h, config.SuperUserConfig{Username: "root", Password: "rootpassword"}, zap.NewNop()))
		root, err := users.GetByUsername(ctx, "root")
		require.NoError(t, err)
		assert.Equal(t, "Super User", root.DisplayName)
	})

	t.Run("skipped without credentials", func(t *testing.T) {
		users := repositorytest.NewUsers()
		require.NoError(t, SeedSuperUser(ctx, users, h, config.SuperUserConfig{}, zap.NewNop()))
		all, err := users.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("lookup failure", func(t *testing.T) {
		users := repositorytest.NewUsers()
		users.Err = errors.New("boom")
		assert.Error(t, SeedSuperUser(ctx, users, h, cfg, zap.NewNop()))
	})
}
