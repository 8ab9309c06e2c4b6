package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/shopping-service/internal/api/dto"
	"github.com/spec-kit/shopping-service/internal/auth"
	"github.com/spec-kit/shopping-service/internal/events"
	"github.com/spec-kit/shopping-service/internal/service"
	apperrors "github.com/spec-kit/shopping-service/pkg/util"
)

// ItemsHandler exposes the shopping catalog.
type ItemsHandler struct {
	cache      service.ItemCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewItemsHandler constructs handler. cache and dispatcher may be nil.
func NewItemsHandler(cache service.ItemCache, dispatcher events.Dispatcher, logger *zap.Logger) *ItemsHandler {
	return &ItemsHandler{cache: cache, dispatcher: dispatcher, logger: logger}
}

// List handles GET /api/v1/items?q=.
func (h *ItemsHandler) List(c *fiber.Ctx, p *auth.PublicPrincipal) error {
	items, err := h.service(p.State()).List(c.UserContext(), c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(dto.Success(items))
}

// Create handles POST /api/v1/items.
func (h *ItemsHandler) Create(c *fiber.Ctx, p *auth.AdminPrincipal) error {
	var req dto.NewItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Failed to parse new item data")
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	item, err := h.service(p.State()).Create(c.UserContext(), p.Claims().UserID, req.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(item))
}

// Delete handles DELETE /api/v1/items/:id.
func (h *ItemsHandler) Delete(c *fiber.Ctx, p *auth.AdminPrincipal) error {
	id, err := paramID(c, "Invalid item id")
	if err != nil {
		return err
	}

	item, err := h.service(p.State()).Delete(c.UserContext(), p.Claims().UserID, id)
	if err != nil {
		return err
	}
	return c.JSON(dto.Success(item))
}

func (h *ItemsHandler) service(state *auth.State) *service.ItemService {
	return service.NewItemService(state.Items, h.cache, h.dispatcher, h.logger)
}
