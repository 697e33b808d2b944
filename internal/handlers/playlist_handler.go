package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Samir-codes-123/videotube-backend/internal/services"
	"github.com/Samir-codes-123/videotube-backend/internal/utils"
)

type PlaylistHandler struct {
	svc *services.PlaylistService
}

func NewPlaylistHandler(svc *services.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{svc: svc}
}

type playlistBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *PlaylistHandler) Create(c *fiber.Ctx) error {
	owner, err := actorID(c)
	if err != nil {
		return err
	}
	var body playlistBody
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest("invalid request body")
	}
	p, err := h.svc.Create(c.Context(), owner, body.Name, body.Description)
	if err != nil {
		return err
	}
	return utils.JSON(c, fiber.StatusCreated, p, "Playlist created successfully")
}

func (h *PlaylistHandler) ListByUser(c *fiber.Ctx) error {
	owner, err := paramID(c, "userId", "invalid user id")
	if err != nil {
		return err
	}
	playlists, err := h.svc.ListByUser(c.Context(), owner)
	if err != nil {
		return err
	}
	return utils.JSON(c, fiber.StatusOK, playlists, "User playlists found")
}

func (h *PlaylistHandler) Get(c *fiber.Ctx) error {
	id, owner, err := h.playlistAndActor(c)
	if err != nil {
		return err
	}
	p, err := h.svc.Get(c.Context(), id, owner)
	if err != nil {
		return err
	}
	return utils.JSON(c, fiber.StatusOK, p, "Playlist fetched successfully")
}

func (h *PlaylistHandler) Update(c *fiber.Ctx) error {
	id, owner, err := h.playlistAndActor(c)
	if err != nil {
		return err
	}
	var body playlistBody
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest("invalid request body")
	}
	p, err := h.svc.Update(c.Context(), id, owner, body.Name, body.Description)
	if err != nil {
		return err
	}
	return utils.JSON(c, fiber.StatusOK, p, "Playlist updated successfully")
}

func (h *PlaylistHandler) Delete(c *fiber.Ctx) error {
	id, owner, err := h.playlistAndActor(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Context(), id, owner); err != nil {
		return err
	}
	return utils.JSON(c, fiber.StatusOK, nil, "Playlist removed successfully")
}

func (h *PlaylistHandler) AddVideo(c *fiber.Ctx) error {
	id, owner, err := h.playlistAndActor(c)
	if err != nil {
		return err
	}
	video, err := paramID(c, "videoId", "invalid video id")
	if err != nil {
		return err
	}
	p, err := h.svc.AddVideo(c.Context(), id, owner, video)
	if err != nil {
		return err
	}
	return utils.JSON(c, fiber.StatusOK, p, "Video added successfully to playlist")
}

func (h *PlaylistHandler) RemoveVideo(c *fiber.Ctx) error {
	id, owner, err := h.playlistAndActor(c)
	if err != nil {
		return err
	}
	video, err := paramID(c, "videoId", "invalid video id")
	if err != nil {
		return err
	}
	p, err := h.svc.RemoveVideo(c.Context(), id, owner, video)
	if err != nil {
		return err
	}
	return utils.JSON(c, fiber.StatusOK, p, "Video removed from playlist successfully")
}

func (h *PlaylistHandler) playlistAndActor(c *fiber.Ctx) (primitive.ObjectID, primitive.ObjectID, error) {
	id, err := paramID(c, "playlistId", "invalid playlist id")
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}
	owner, err := actorID(c)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}
	return id, owner, nil
}
