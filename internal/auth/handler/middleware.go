package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Induma-Magammana/FitLife-Tracker/internal/auth/service"
	apperrors "github.com/Induma-Magammana/FitLife-Tracker/internal/errors"
)

const userIDKey = "userID"

// RequireAuth verifies the bearer token on protected routes and stashes the
// embedded user identifier in the request locals.
func RequireAuth(tokens service.TokenGenerator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return Fail(c, apperrors.NewAuth("missing authorization header"))
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return Fail(c, apperrors.NewAuth("authorization header format must be Bearer {token}"))
		}

		userID, err := tokens.Verify(parts[1])
		if err != nil {
			return Fail(c, err)
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// UserID returns the identifier RequireAuth stored for this request.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
