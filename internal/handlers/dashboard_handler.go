package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Samir-codes-123/videotube-backend/internal/services"
	"github.com/Samir-codes-123/videotube-backend/internal/utils"
)

type DashboardHandler struct {
	svc *services.DashboardService
}

func NewDashboardHandler(svc *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	channel, err := paramID(c, "channelId", "invalid channel id")
	if err != nil {
		return err
	}
	stats, err := h.svc.Stats(c.Context(), channel)
	if err != nil {
		return err
	}
	return utils.JSON(c, fiber.StatusOK, stats, "Channel stats fetched successfully")
}

func (h *DashboardHandler) Videos(c *fiber.Ctx) error {
	channel, err := paramID(c, "channelId", "invalid channel id")
	if err != nil {
		return err
	}
	videos, err := h.svc.Videos(c.Context(), channel)
	if err != nil {
		return err
	}
	return utils.JSON(c, fiber.StatusOK, videos, "Channel videos fetched successfully")
}
