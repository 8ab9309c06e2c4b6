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

// UsersHandler exposes account endpoints.
type UsersHandler struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewUsersHandler constructs handler.
func NewUsersHandler(dispatcher events.Dispatcher, logger *zap.Logger) *UsersHandler {
	return &UsersHandler{dispatcher: dispatcher, logger: logger}
}

// Me handles GET /api/v1/users/me.
func (h *UsersHandler) Me(c *fiber.Ctx, p *auth.UserPrincipal) error {
	claims := p.Claims()
	return c.JSON(dto.Success(dto.MeResponse{
		UserID:      claims.UserID,
		DisplayName: claims.DisplayName,
		IsAdmin:     claims.IsAdmin,
	}))
}

// List handles GET /api/v1/users.
func (h *UsersHandler) List(c *fiber.Ctx, p *auth.AdminPrincipal) error {
	users, err := h.service(p.State()).List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.Success(dto.NewUserResponses(users)))
}

// Create handles POST /api/v1/users.
func (h *UsersHandler) Create(c *fiber.Ctx, p *auth.AdminPrincipal) error {
	var req dto.NewUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Failed to parse new user data")
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	user, err := h.service(p.State()).Create(c.UserContext(), p.Claims().UserID, service.UserCreateInput{
		DisplayName: req.DisplayName,
		Username:    req.Username,
		Password:    req.Password,
		IsAdmin:     req.IsAdmin,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(dto.NewUserResponse(*user)))
}

// Delete handles DELETE /api/v1/users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx, p *auth.AdminPrincipal) error {
	id, err := paramID(c, "Invalid user id")
	if err != nil {
		return err
	}

	user, err := h.service(p.State()).Delete(c.UserContext(), p.Claims().UserID, id)
	if err != nil {
		return err
	}
	return c.JSON(dto.Success(dto.NewUserResponse(*user)))
}

func (h *UsersHandler) service(state *auth.State) *service.UserService {
	return service.NewUserService(state.Users, state.Passwords, h.dispatcher, h.logger)
}
