package handlers

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Samir-codes-123/videotube-backend/internal/services"
	"github.com/Samir-codes-123/videotube-backend/internal/utils"
)

type VideoHandler struct {
	svc *services.VideoService
}

func NewVideoHandler(svc *services.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// List handles GET /videos. An empty result is answered with a 404 envelope
// rather than an empty list; existing clients depend on that shape.
func (h *VideoHandler) List(c *fiber.Ctx) error {
	in := services.VideoListInput{
		Query:    c.Query("query"),
		SortBy:   c.Query("sortBy", "createdAt"),
		SortType: c.Query("sortType", "asc"),
		UserID:   c.Query("userId"),
		Page:     int64(c.QueryInt("page", 1)),
		Limit:    int64(c.QueryInt("limit", 10)),
	}
	result, err := h.svc.List(c.Context(), in)
	if err != nil {
		return err
	}
	if len(result.Videos) == 0 {
		return utils.JSON(c, fiber.StatusNotFound, fiber.Map{}, "No videos found")
	}
	return utils.JSON(c, fiber.StatusOK, result, "Videos fetched successfully")
}

// Publish handles POST /videos (multipart).
func (h *VideoHandler) Publish(c *fiber.Ctx) error {
	owner, err := actorID(c)
	if err != nil {
		return err
	}
	title := c.FormValue("title")
	description := c.FormValue("description")
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return utils.BadRequest("all fields are required")
	}
	videoFile, err := c.FormFile("videoFile")
	if err != nil {
		return utils.BadRequest("video file is required")
	}
	thumbnail, err := c.FormFile("thumbnail")
	if err != nil {
		return utils.BadRequest("thumbnail is required")
	}
	videoPath, err := saveTemp(c, videoFile)
	if err != nil {
		return err
	}
	thumbnailPath, err := saveTemp(c, thumbnail)
	if err != nil {
		os.Remove(videoPath)
		return err
	}
	v, err := h.svc.Publish(c.Context(), owner, title, description, videoPath, thumbnailPath)
	if err != nil {
		return err
	}
	return utils.JSON(c, fiber.StatusCreated, v, "Video uploaded successfully")
}

func (h *VideoHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "videoId", "invalid video id")
	if err != nil {
		return err
	}
	v, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return utils.JSON(c, fiber.StatusOK, v, "Video found successfully")
}

// Update handles PATCH /videos/:videoId, accepting either a JSON body or a
// multipart form with an optional replacement thumbnail.
func (h *VideoHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "videoId", "invalid video id")
	if err != nil {
		return err
	}
	owner, err := actorID(c)
	if err != nil {
		return err
	}
	in := services.VideoUpdateInput{}
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		in.Title = c.FormValue("title")
		in.Description = c.FormValue("description")
		if fh, err := c.FormFile("thumbnail"); err == nil {
			path, err := saveTemp(c, fh)
			if err != nil {
				return err
			}
			in.ThumbnailPath = path
		}
	} else {
		var body struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		}
		if err := c.BodyParser(&body); err != nil {
			return utils.BadRequest("invalid request body")
		}
		in.Title = body.Title
		in.Description = body.Description
	}
	v, err := h.svc.Update(c.Context(), id, owner, in)
	if err != nil {
		return err
	}
	return utils.JSON(c, fiber.StatusOK, v, "Video updated successfully")
}

func (h *VideoHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "videoId", "invalid video id")
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
	return utils.JSON(c, fiber.StatusOK, nil, "Video deleted successfully")
}

func (h *VideoHandler) TogglePublish(c *fiber.Ctx) error {
	id, err := paramID(c, "videoId", "invalid video id")
	if err != nil {
		return err
	}
	owner, err := actorID(c)
	if err != nil {
		return err
	}
	v, err := h.svc.TogglePublish(c.Context(), id, owner)
	if err != nil {
		return err
	}
	return utils.JSON(c, fiber.StatusOK, v, "Publish status updated successfully")
}

// saveTemp spools a multipart file to a unique temp path for the media
// gateway, which removes it after the remote call.
func saveTemp(c *fiber.Ctx, fh *multipart.FileHeader) (string, error) {
	dst := filepath.Join(os.TempDir(), "videotube-"+uuid.NewString()+filepath.Ext(fh.Filename))
	if err := c.SaveFile(fh, dst); err != nil {
		return "", utils.Internal("cannot save uploaded file")
	}
	return dst, nil
}
