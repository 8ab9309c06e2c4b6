package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/shopping-service/internal/auth"
	"github.com/spec-kit/shopping-service/internal/repository"
	apperrors "github.com/spec-kit/shopping-service/pkg/util"
)

// Tokens is the pair issued on login.
type Tokens struct {
	Access  string
	Refresh string
}

// AuthService coordinates login and token refresh flows.
type AuthService struct {
	users     repository.UserRepository
	tokens    *auth.TokenManager
	passwords *auth.Hasher
}

// NewAuthService builds the service.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager, passwords *auth.Hasher) *AuthService {
	return &AuthService{users: users, tokens: tokens, passwords: passwords}
}

// NewAuthServiceFromState binds the service to request state.
func NewAuthServiceFromState(state *auth.State) *AuthService {
	return NewAuthService(state.Users, state.Tokens, state.Passwords)
}

// Login checks credentials and issues an access and refresh token pair.
func (s *AuthService) Login(ctx context.Context, username, password string) (Tokens, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, pgx.ErrNoRows) {
		return Tokens{}, apperrors.NewForbidden(MsgUsernameNotFound)
	}
	if err != nil {
		return Tokens{}, apperrors.NewInternalError(err)
	}

	if !s.passwords.Verify(user.PasswordHash, password) {
		return Tokens{}, apperrors.NewForbidden(MsgWrongPassword)
	}

	tokens := Tokens{
		Access:  s.tokens.IssueAccess(user),
		Refresh: s.tokens.IssueRefresh(user),
	}
	if tokens.Access == "" || tokens.Refresh == "" {
		return Tokens{}, apperrors.NewInternal(MsgTokenFailure, nil)
	}
	return tokens, nil
}

// Refresh exchanges a refresh token for a new access token.
// The user is reloaded so the new token reflects the current account.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, ok := s.tokens.VerifyRefresh(refreshToken)
	if !ok {
		return "", apperrors.NewForbidden(MsgInvalidRefresh)
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", apperrors.NewForbidden(MsgRefreshUserGone)
	}
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}

	access := s.tokens.IssueAccess(user)
	if access == "" {
		return "", apperrors.NewInternal(MsgTokenFailure, nil)
	}
	return access, nil
}
