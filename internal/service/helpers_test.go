package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/shopping-service/internal/auth"
	"github.com/spec-kit/shopping-service/internal/domain"
	"github.com/spec-kit/shopping-service/internal/events"
	apperrors "github.com/spec-kit/shopping-service/pkg/util"
)

func newTestHasher(t *testing.T) *auth.Hasher {
	t.Helper()
	h, err := auth.NewHasher(auth.PasswordConfig{
		Salt:   "SaltSaltSaltSalt",
		Params: auth.Argon2Params{Time: 1, MemoryKiB: 64, Threads: 1, KeyLen: 32},
	})
	require.NoError(t, err)
	return h
}

func newTestUser(t *testing.T, h *auth.Hasher, id int32, username, password string, admin bool) domain.User {
	t.Helper()
	hash, err := h.Hash(password)
	require.NoError(t, err)
	return domain.User{ID: id, DisplayName: username, Username: username, PasswordHash: hash, IsAdmin: admin}
}

func newTestTokens() *auth.TokenManager {
	return auth.NewTokenManager("service-secret", time.Minute, time.Hour)
}

func requireDomainError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de), "expected DomainError, got %v", err)
	require.Equal(t, status, de.HTTPStatus)
	require.Equal(t, message, de.Message)
}

type recordingDispatcher struct {
	events []events.Event
}

func (r *recordingDispatcher) Publish(_ context.Context, e events.Event) error {
	r.events = append(r.events, e)
	return nil
}

func (r *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

