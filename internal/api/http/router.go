package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shopping-service/internal/api/http/handlers"
	"github.com/spec-kit/shopping-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Guards  *auth.Guards
	Health  *handlers.HealthHandler
	Auth    *handlers.AuthHandler
	Users   *handlers.UsersHandler
	Items   *handlers.ItemsHandler
	Metrics *handlers.MetricsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	g := cfg.Guards

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/", g.Public(cfg.Health.Root))

	api := app.Group("/api/v1")

	authGroup := api.Group("/core/auth")
	authGroup.Post("/basic", g.Public(cfg.Auth.Basic))
	authGroup.Post("/refresh", g.Public(cfg.Auth.Refresh))

	users := api.Group("/users")
	users.Get("/me", g.User(cfg.Users.Me))
	users.Get("/", g.Admin(cfg.Users.List))
	users.Post("/", g.Admin(cfg.Users.Create))
	users.Delete("/:id", g.Admin(cfg.Users.Delete))

	items := api.Group("/items")
	items.Get("/", g.Public(cfg.Items.List))
	items.Post("/", g.Admin(cfg.Items.Create))
	items.Delete("/:id", g.Admin(cfg.Items.Delete))

	api.Get("/metrics", g.Admin(cfg.Metrics.Show))
}
