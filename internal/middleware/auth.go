package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Samir-codes-123/videotube-backend/internal/utils"
)

// UserIDKey is where the authenticated user's hex id lands in fiber Locals.
const UserIDKey = "user_id"

// Auth verifies a Bearer HS256 token and stores the acting user's id for the
// handlers downstream.
func Auth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get("Authorization")
		if authz == "" {
			return utils.Unauthorized("missing authorization header")
		}
		parts := strings.SplitN(authz, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.Unauthorized("invalid authorization header")
		}
		uid, err := verifyToken(parts[1], secret)
		if err != nil {
			return utils.Unauthorized("invalid token")
		}
		c.Locals(UserIDKey, uid)
		return c.Next()
	}
}

func verifyToken(raw, secret string) (string, error) {
	t, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !t.Valid {
		return "", errors.New("invalid token")
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	if v, ok := claims["user_id"].(string); ok {
		return v, nil
	}
	if v, ok := claims["sub"].(string); ok {
		return v, nil
	}
	return "", errors.New("user id not found in token")
}
