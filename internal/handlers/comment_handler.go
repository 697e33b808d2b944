package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Samir-codes-123/videotube-backend/internal/services"
	"github.com/Samir-codes-123/videotube-backend/internal/utils"
)

type CommentHandler struct {
	svc *services.CommentService
}

func NewCommentHandler(svc *services.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

type commentBody struct {
	Content string `json:"content"`
}

// List handles GET /videos/:videoId/comments. The zero-match payload keeps
// its own shape, distinct from the populated page.
func (h *CommentHandler) List(c *fiber.Ctx) error {
	video, err := paramID(c, "videoId", "invalid video id")
	if err != nil {
		return err
	}
	page := int64(c.QueryInt("page", 1))
	limit := int64(c.QueryInt("limit", 10))
	result, err := h.svc.ListByVideo(c.Context(), video, page, limit)
	if err != nil {
		return err
	}
	if result.TotalComments == 0 {
		return utils.JSON(c, fiber.StatusOK, fiber.Map{
			"comments":      []interface{}{},
			"totalComments": 0,
		}, "No comments found")
	}
	return utils.JSON(c, fiber.StatusOK, result, "Comments fetched successfully")
}

func (h *CommentHandler) Add(c *fiber.Ctx) error {
	video, err := paramID(c, "videoId", "invalid video id")
	if err != nil {
		return err
	}
	owner, err := actorID(c)
	if err != nil {
		return err
	}
	var body commentBody
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest("invalid request body")
	}
	comment, err := h.svc.Add(c.Context(), video, owner, body.Content)
	if err != nil {
		return err
	}
	return utils.JSON(c, fiber.StatusCreated, comment, "Comment created successfully")
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "commentId", "invalid comment id")
	if err != nil {
		return err
	}
	owner, err := actorID(c)
	if err != nil {
		return err
	}
	var body commentBody
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest("invalid request body")
	}
	comment, err := h.svc.Update(c.Context(), id, owner, body.Content)
	if err != nil {
		return err
	}
	return utils.JSON(c, fiber.StatusOK, comment, "Comment updated successfully")
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "commentId", "invalid comment id")
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
	return utils.JSON(c, fiber.StatusOK, nil, "Comment deleted successfully")
}
