package auth

import (
	"context"
	"errors"

	"github.com/spec-kit/shopping-service/internal/repository"
)

// ErrStateUnavailable reports that this process has no request state to offer,
// e.g. no database was configured. Guards forward instead of rejecting.
var ErrStateUnavailable = errors.New("auth: request state unavailable")

// State is the per-request handle: a database connection owned by the request,
// repositories bound to it, and the shared read-only key material.
type State struct {
	Conn      repository.DBTX
	Users     repository.UserRepository
	Items     repository.ItemRepository
	Tokens    *TokenManager
	Passwords *Hasher

	release func()
}

// NewState binds repositories to conn. release is called once by Release.
func NewState(conn repository.DBTX, tokens *TokenManager, passwords *Hasher, release func()) *State {
	return &State{
		Conn:      conn,
		Users:     repository.NewUserRepository(conn),
		Items:     repository.NewItemRepository(conn),
		Tokens:    tokens,
		Passwords: passwords,
		release:   release,
	}
}

// Release returns the connection to its pool. Safe to call more than once.
func (s *State) Release() {
	if s == nil || s.release == nil {
		return
	}
	s.release()
	s.release = nil
}

// Provisioner supplies request state.
type Provisioner interface {
	Provision(ctx context.Context) (*State, error)
}

// ProvisionerFunc adapts a function to Provisioner.
type ProvisionerFunc func(ctx context.Context) (*State, error)

func (f ProvisionerFunc) Provision(ctx context.Context) (*State, error) {
	return f(ctx)
}
