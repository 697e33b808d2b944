package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Samir-codes-123/videotube-backend/internal/services"
	"github.com/Samir-codes-123/videotube-backend/internal/utils"
)

type TweetHandler struct {
	svc *services.TweetService
}

func NewTweetHandler(svc *services.TweetService) *TweetHandler {
	return &TweetHandler{svc: svc}
}

type tweetBody struct {
	Content string `json:"content"`
}

func (h *TweetHandler) Create(c *fiber.Ctx) error {
	owner, err := actorID(c)
	if err != nil {
		return err
	}
	var body tweetBody
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest("invalid request body")
	}
	tweet, err := h.svc.Create(c.Context(), owner, body.Content)
	if err != nil {
		return err
	}
	return utils.JSON(c, fiber.StatusCreated, tweet, "Tweet created successfully")
}

// ListByUser keeps the empty-result variant: an empty data object with its own
// message instead of an empty list.
func (h *TweetHandler) ListByUser(c *fiber.Ctx) error {
	owner, err := paramID(c, "userId", "invalid user id")
	if err != nil {
		return err
	}
	tweets, err := h.svc.ListByUser(c.Context(), owner)
	if err != nil {
		return err
	}
	if len(tweets) == 0 {
		return utils.JSON(c, fiber.StatusOK, fiber.Map{}, "User has no tweets")
	}
	return utils.JSON(c, fiber.StatusOK, tweets, "User's tweets fetched successfully")
}

func (h *TweetHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "tweetId", "invalid tweet id")
	if err != nil {
		return err
	}
	owner, err := actorID(c)
	if err != nil {
		return err
	}
	var body tweetBody
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest("invalid request body")
	}
	tweet, err := h.svc.Update(c.Context(), id, owner, body.Content)
	if err != nil {
		return err
	}
	return utils.JSON(c, fiber.StatusOK, tweet, "Tweet updated successfully")
}

func (h *TweetHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "tweetId", "invalid tweet id")
	if err != nil {
		return err
	}
	owner, err := actorID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Context(), id, owner); err != nil {
		return err
	}
	return utils.JSON(c, fiber.StatusOK, nil, "Tweet deleted successfully")
}
