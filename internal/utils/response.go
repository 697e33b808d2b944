package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Response is the envelope every endpoint answers with, success or failure.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

func JSON(c *fiber.Ctx, status int, data interface{}, message string) error {
	if data == nil {
		data = fiber.Map{}
	}
	return c.Status(status).JSON(Response{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < 400,
	})
}

// ErrorHandler formats every error escaping a handler into the envelope.
// Unknown errors are logged and masked as a generic 500.
func ErrorHandler(log *zap.SugaredLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return JSON(c, apiErr.StatusCode, nil, apiErr.Message)
		}
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return JSON(c, fiberErr.Code, nil, fiberErr.Message)
		}
		log.Errorw("unhandled error", "path", c.Path(), "error", err)
		return JSON(c, fiber.StatusInternalServerError, nil, "internal server error")
	}
}
