package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/shopping-service/pkg/util"
)

func paramID(c *fiber.Ctx, message string) (int32, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 32)
	if err != nil {
		return 0, apperrors.NewBadRequest(message)
	}
	return int32(id), nil
}
