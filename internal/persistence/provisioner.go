package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/shopping-service/internal/auth"
)

// PoolProvisioner hands each request its own pooled connection.
type PoolProvisioner struct {
	pool           *pgxpool.Pool
	tokens         *auth.TokenManager
	passwords      *auth.Hasher
	acquireTimeout time.Duration
}

var _ auth.Provisioner = (*PoolProvisioner)(nil)

// NewPoolProvisioner builds a provisioner. A nil pool makes every guard forward.
func NewPoolProvisioner(pool *pgxpool.Pool, tokens *auth.TokenManager, passwords *auth.Hasher, acquireTimeout time.Duration) *PoolProvisioner {
	return &PoolProvisioner{
		pool:           pool,
		tokens:         tokens,
		passwords:      passwords,
		acquireTimeout: acquireTimeout,
	}
}

// Provision acquires a connection, waiting at most the acquire timeout.
func (p *PoolProvisioner) Provision(ctx context.Context) (*auth.State, error) {
	if p.pool == nil {
		return nil, auth.ErrStateUnavailable
	}

	if p.acquireTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.acquireTimeout)
		defer cancel()
	}

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	return auth.NewState(conn, p.tokens, p.passwords, conn.Release), nil
}
