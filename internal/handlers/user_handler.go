package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Samir-codes-123/videotube-backend/internal/services"
	"github.com/Samir-codes-123/videotube-backend/internal/utils"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Profile(c *fiber.Ctx) error {
	id, err := paramID(c, "userId", "invalid user id")
	if err != nil {
		return err
	}
	u, err := h.svc.Profile(c.Context(), id)
	if err != nil {
		return err
	}
	return utils.JSON(c, fiber.StatusOK, u, "User fetched successfully")
}
