package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/spec-kit/shopping-service/internal/auth"
	"github.com/spec-kit/shopping-service/internal/domain"
	"github.com/spec-kit/shopping-service/internal/events"
	"github.com/spec-kit/shopping-service/internal/repository"
	apperrors "github.com/spec-kit/shopping-service/pkg/util"
)

// UserCreateInput describes a new account.
type UserCreateInput struct {
	DisplayName string
	Username    string
	Password    string
	IsAdmin     bool
}

const uniqueViolation = "23505"

// UserService manages accounts.
type UserService struct {
	users      repository.UserRepository
	passwords  *auth.Hasher
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewUserService builds the service. dispatcher and logger may be nil.
func NewUserService(users repository.UserRepository, passwords *auth.Hasher, dispatcher events.Dispatcher, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{users: users, passwords: passwords, dispatcher: dispatcher, logger: logger}
}

// List returns every user, newest first.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Create hashes the password and inserts the account. Usernames are unique.
func (s *UserService) Create(ctx context.Context, actorID int32, in UserCreateInput) (*domain.User, error) {
	_, err := s.users.GetByUsername(ctx, in.Username)
	if err == nil {
		return nil, apperrors.NewConflict(MsgUsernameTaken)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := s.passwords.Hash(in.Password)
	if err != nil {
		return nil, apperrors.NewInternal(MsgPasswordHashError, err)
	}

	user, err := s.users.Create(ctx, domain.NewUser{
		DisplayName:  in.DisplayName,
		Username:     in.Username,
		PasswordHash: hash,
		IsAdmin:      in.IsAdmin,
	})
	// A concurrent create can win between the lookup and the insert.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return nil, apperrors.NewConflict(MsgUsernameTaken)
	}
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.New(events.EventUserCreated, actorID, user.ID, nil))
	return user, nil
}

// Delete removes the account with id and returns it. Callers cannot delete themselves.
func (s *UserService) Delete(ctx context.Context, actorID, id int32) (*domain.User, error) {
	if actorID == id {
		return nil, apperrors.NewForbidden(MsgSelfDelete)
	}

	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound(MsgUserNotFound)
	}
	if err != nil {
		return nil, err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(MsgUserNotFound)
		}
		return nil, err
	}
	s.publish(ctx, events.New(events.EventUserDeleted, actorID, id, nil))
	return user, nil
}

func (s *UserService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event", string(event.Type)), zap.Error(err))
	}
}
