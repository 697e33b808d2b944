package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Samir-codes-123/videotube-backend/internal/models"
	"github.com/Samir-codes-123/videotube-backend/internal/services"
	"github.com/Samir-codes-123/videotube-backend/internal/utils"
)

type LikeHandler struct {
	svc *services.LikeService
}

func NewLikeHandler(svc *services.LikeService) *LikeHandler {
	return &LikeHandler{svc: svc}
}

func (h *LikeHandler) ToggleVideo(c *fiber.Ctx) error {
	return h.toggle(c, "videoId", "invalid video id", models.LikeTargetVideo, "Video")
}

func (h *LikeHandler) ToggleComment(c *fiber.Ctx) error {
	return h.toggle(c, "commentId", "invalid comment id", models.LikeTargetComment, "Comment")
}

func (h *LikeHandler) ToggleTweet(c *fiber.Ctx) error {
	return h.toggle(c, "tweetId", "invalid tweet id", models.LikeTargetTweet, "Tweet")
}

func (h *LikeHandler) toggle(c *fiber.Ctx, param, badMsg string, kind models.LikeTargetKind, noun string) error {
	target, err := paramID(c, param, badMsg)
	if err != nil {
		return err
	}
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	like, added, err := h.svc.Toggle(c.Context(), models.LikeTarget{Kind: kind, ID: target}, actor)
	if err != nil {
		return err
	}
	if added {
		return utils.JSON(c, fiber.StatusOK, like, noun+" liked successfully")
	}
	return utils.JSON(c, fiber.StatusOK, nil, noun+" unliked successfully")
}

func (h *LikeHandler) LikedVideos(c *fiber.Ctx) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	likes, err := h.svc.LikedVideos(c.Context(), actor)
	if err != nil {
		return err
	}
	return utils.JSON(c, fiber.StatusOK, likes, "Liked videos found")
}
