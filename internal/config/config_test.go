package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_SECONDS", "")
	t.Setenv("PASSWORD_ARGON2_THREADS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTTL())
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.RefreshTTL())
	assert.Equal(t, uint8(1), cfg.Password.Threads)
	assert.Equal(t, "Super User", cfg.SuperUser.DisplayName)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_SECONDS", "60")
	t.Setenv("PASSWORD_ARGON2_MEMORY_KIB", "1024")
	t.Setenv("POSTGRES_ACQUIRE_TIMEOUT_MS", "150")
	t.Setenv("SUPER_USER_USERNAME", "root")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, time.Minute, cfg.Auth.AccessTTL())
	assert.Equal(t, uint32(1024), cfg.Password.MemoryKiB)
	assert.Equal(t, 150*time.Millisecond, cfg.Postgres.AcquireTimeout())
	assert.Equal(t, "root", cfg.SuperUser.Username)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("redis db", func(t *testing.T) {
		t.Setenv("REDIS_DB", "zero")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("threads out of range", func(t *testing.T) {
		t.Setenv("PASSWORD_ARGON2_THREADS", "300")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestAppConfig_Helpers(t *testing.T) {
	app := AppConfig{Host: "127.0.0.1", Port: "9000"}
	assert.Equal(t, "127.0.0.1:9000", app.Addr())
	assert.Zero(t, app.RequestTimeout())

	app.RequestTimeoutSeconds = 5
	assert.Equal(t, 5*time.Second, app.RequestTimeout())

	assert.Equal(t, time.Minute, RedisConfig{}.CacheTTL())
}
