package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/shopping-service/internal/auth"
	"github.com/spec-kit/shopping-service/internal/config"
	"github.com/spec-kit/shopping-service/internal/domain"
	"github.com/spec-kit/shopping-service/internal/repository"
)

// SeedSuperUser ensures the configured administrator exists.
// When it does not, every other admin is removed before it is inserted, so the
// configured account is the only admin after a fresh bootstrap.
func SeedSuperUser(ctx context.Context, users repository.UserRepository, passwords *auth.Hasher, cfg config.SuperUserConfig, logger *zap.Logger) error {
	if cfg.Username == "" || cfg.Password == "" {
		logger.Warn("SUPER_USER_USERNAME or SUPER_USER_PASSWORD not set; skipping superuser bootstrap")
		return nil
	}

	_, err := users.GetByUsername(ctx, cfg.Username)
	if err == nil {
		logger.Info("superuser already present", zap.String("username", cfg.Username))
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("look up superuser: %w", err)
	}

	removed, err := users.DeleteAdmins(ctx)
	if err != nil {
		return fmt.Errorf("remove previous admins: %w", err)
	}

	hash, err := passwords.Hash(cfg.Password)
	if err != nil {
		return fmt.Errorf("hash superuser password: %w", err)
	}

	displayName := cfg.DisplayName
	if displayName == "" {
		displayName = "Super User"
	}
	user, err := users.Create(ctx, domain.NewUser{
		DisplayName:  displayName,
		Username:     cfg.Username,
		PasswordHash: hash,
		IsAdmin:      true,
	})
	if err != nil {
		return fmt.Errorf("create superuser: %w", err)
	}

	logger.Info("superuser created",
		zap.Int32("user_id", user.ID),
		zap.Int64("previous_admins_removed", removed),
	)
	return nil
}
