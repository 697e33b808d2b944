package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Samir-codes-123/videotube-backend/internal/utils"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func authApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler(zap.NewNop().Sugar())})
	app.Get("/whoami", Auth(testSecret), func(c *fiber.Ctx) error {
		return utils.JSON(c, fiber.StatusOK, fiber.Map{"id": c.Locals(UserIDKey)}, "ok")
	})
	return app
}

func TestAuthAcceptsValidToken(t *testing.T) {
	app := authApp()

	token := signToken(t, testSecret, jwt.MapClaims{"user_id": "66f5a3e2b1c4d5e6f7a8b9c0"})
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAuthFallsBackToSubClaim(t *testing.T) {
	app := authApp()

	token := signToken(t, testSecret, jwt.MapClaims{"sub": "66f5a3e2b1c4d5e6f7a8b9c0"})
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAuthRejects(t *testing.T) {
	app := authApp()

	cases := []struct {
		name  string
		authz string
	}{
		{name: "missing header", authz: ""},
		{name: "not bearer", authz: "Basic abc"},
		{name: "wrong secret", authz: "Bearer " + signToken(t, "other-secret", jwt.MapClaims{"user_id": "x"})},
		{name: "no user claim", authz: "Bearer " + signToken(t, testSecret, jwt.MapClaims{"foo": "bar"})},
		{name: "garbage token", authz: "Bearer not.a.jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/whoami", nil)
			if tc.authz != "" {
				req.Header.Set("Authorization", tc.authz)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, 401, resp.StatusCode)
		})
	}
}
