package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Samir-codes-123/videotube-backend/internal/middleware"
	"github.com/Samir-codes-123/videotube-backend/internal/utils"
)

// actorID resolves the authenticated user set by the auth middleware.
func actorID(c *fiber.Ctx) (primitive.ObjectID, error) {
	raw, _ := c.Locals(middleware.UserIDKey).(string)
	if raw == "" {
		return primitive.NilObjectID, utils.Forbidden("unauthorized request")
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, utils.Forbidden("unauthorized request")
	}
	return id, nil
}

// paramID parses a path parameter as an ObjectID; badMsg names the entity in
// the 400 response.
func paramID(c *fiber.Ctx, name, badMsg string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return primitive.NilObjectID, utils.BadRequest(badMsg)
	}
	return id, nil
}
