package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/shopping-service/internal/api/http"
	"github.com/spec-kit/shopping-service/internal/api/http/handlers"
	"github.com/spec-kit/shopping-service/internal/auth"
	"github.com/spec-kit/shopping-service/internal/cache"
	"github.com/spec-kit/shopping-service/internal/config"
	"github.com/spec-kit/shopping-service/internal/events"
	"github.com/spec-kit/shopping-service/internal/observability"
	"github.com/spec-kit/shopping-service/internal/persistence"
	"github.com/spec-kit/shopping-service/internal/repository"
	"github.com/spec-kit/shopping-service/internal/service"
	"github.com/spec-kit/shopping-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	pool := pg.PoolHandle()
	if cfg.Postgres.RunMigrations && pool != nil {
		if err := persistence.RunMigrations(ctx, pool, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	passwordParams := auth.Argon2Params{
		Time:      cfg.Password.Time,
		MemoryKiB: cfg.Password.MemoryKiB,
		Threads:   cfg.Password.Threads,
		KeyLen:    cfg.Password.KeyLen,
	}
	hasher, err := auth.NewHasher(auth.PasswordConfig{Salt: cfg.Password.Salt, Params: passwordParams})
	if err != nil {
		logger.Fatal("invalid password hashing config", zap.Error(err))
	}
	logger.Info("password hashing configured",
		zap.Uint32("argon2_time", passwordParams.Time),
		zap.Uint32("argon2_memory_kib", passwordParams.MemoryKiB),
		zap.Uint8("argon2_threads", passwordParams.Threads),
	)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTTL(), cfg.Auth.RefreshTTL())

	if pool != nil {
		if err := service.SeedSuperUser(ctx, repository.NewUserRepository(pool), hasher, cfg.SuperUser, logger); err != nil {
			logger.Fatal("failed to seed superuser", zap.Error(err))
		}
	} else {
		logger.Warn("no database configured; skipping superuser bootstrap")
	}

	dispatcher := events.NewInMemoryDispatcher()
	itemCache := cache.NewItemCache(redis.Client, cfg.Redis.CacheTTL())
	worker.StartCatalogWorker(dispatcher, itemCache, logger)

	metrics := observability.NewMetrics()
	guards := auth.NewGuards(persistence.NewPoolProvisioner(pool, tokens, hasher, cfg.Postgres.AcquireTimeout()), logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httptransport.ErrorHandler,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Guards:  guards,
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:    handlers.NewAuthHandler(),
		Users:   handlers.NewUsersHandler(dispatcher, logger),
		Items:   handlers.NewItemsHandler(itemCache, dispatcher, logger),
		Metrics: handlers.NewMetricsHandler(metrics),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
