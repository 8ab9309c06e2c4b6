package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shopping-service/internal/api/dto"
	"github.com/spec-kit/shopping-service/internal/auth"
	"github.com/spec-kit/shopping-service/internal/service"
	apperrors "github.com/spec-kit/shopping-service/pkg/util"
)

// A body missing a required field is reported like one that does not parse.
const (
	msgInvalidLoginBody   = "Invalid body data"
	msgInvalidRefreshBody = "Failed to parse body"
)

// AuthHandler exposes login and token refresh.
type AuthHandler struct{}

// NewAuthHandler constructs handler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Basic handles POST /api/v1/core/auth/basic.
func (h *AuthHandler) Basic(c *fiber.Ctx, p *auth.PublicPrincipal) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil || req.Validate() != nil {
		return apperrors.NewBadRequest(msgInvalidLoginBody)
	}

	tokens, err := service.NewAuthServiceFromState(p.State()).Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.Success(dto.TokensResponse{
		RefreshToken: tokens.Refresh,
		AccessToken:  tokens.Access,
	}))
}

// Refresh handles POST /api/v1/core/auth/refresh.
func (h *AuthHandler) Refresh(c *fiber.Ctx, p *auth.PublicPrincipal) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil || req.Validate() != nil {
		return apperrors.NewBadRequest(msgInvalidRefreshBody)
	}

	access, err := service.NewAuthServiceFromState(p.State()).Refresh(c.UserContext(), req.Token)
	if err != nil {
		return err
	}

	return c.JSON(dto.Success(dto.RefreshResponse{Token: access}))
}
