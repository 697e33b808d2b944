package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Samir-codes-123/videotube-backend/internal/services"
	"github.com/Samir-codes-123/videotube-backend/internal/utils"
)

type SubscriptionHandler struct {
	svc *services.SubscriptionService
}

func NewSubscriptionHandler(svc *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc}
}

func (h *SubscriptionHandler) Toggle(c *fiber.Ctx) error {
	channel, err := paramID(c, "channelId", "invalid channel id")
	if err != nil {
		return err
	}
	subscriber, err := actorID(c)
	if err != nil {
		return err
	}
	sub, added, err := h.svc.Toggle(c.Context(), channel, subscriber)
	if err != nil {
		return err
	}
	if added {
		return utils.JSON(c, fiber.StatusCreated, sub, "Channel subscribed successfully")
	}
	return utils.JSON(c, fiber.StatusOK, nil, "Channel unsubscribed successfully")
}

func (h *SubscriptionHandler) ChannelSubscribers(c *fiber.Ctx) error {
	channel, err := paramID(c, "channelId", "invalid channel id")
	if err != nil {
		return err
	}
	subs, err := h.svc.ChannelSubscribers(c.Context(), channel)
	if err != nil {
		return err
	}
	return utils.JSON(c, fiber.StatusOK, subs, "Channel subscribers fetched successfully")
}

func (h *SubscriptionHandler) SubscribedChannels(c *fiber.Ctx) error {
	subscriber, err := paramID(c, "subscriberId", "invalid subscriber id")
	if err != nil {
		return err
	}
	subs, err := h.svc.SubscribedChannels(c.Context(), subscriber)
	if err != nil {
		return err
	}
	return utils.JSON(c, fiber.StatusOK, subs, "Subscribed channels fetched successfully")
}
