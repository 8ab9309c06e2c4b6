package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shopping-service/internal/api/dto"
	"github.com/spec-kit/shopping-service/internal/auth"
	"github.com/spec-kit/shopping-service/internal/observability"
)

// MetricsHandler exposes the in-memory request counters.
type MetricsHandler struct {
	metrics *observability.Metrics
}

// NewMetricsHandler constructs handler.
func NewMetricsHandler(metrics *observability.Metrics) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Show handles GET /api/v1/metrics.
func (h *MetricsHandler) Show(c *fiber.Ctx, _ *auth.AdminPrincipal) error {
	return c.JSON(dto.Success(h.metrics.Snapshot()))
}
