package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the auth and profile endpoints. requireAuth guards
// everything that needs an authenticated caller.
func RegisterRoutes(app *fiber.App, h *AuthHandler, requireAuth fiber.Handler) {
	auth := app.Group("/api/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/forgot-password", h.ForgotPassword)
	auth.Get("/me", requireAuth, h.Me)
	auth.Post("/verify", requireAuth, h.Verify)
	auth.Post("/change-password", requireAuth, h.ChangePassword)

	users := app.Group("/api/users", requireAuth)
	users.Get("/profile", h.GetProfile)
	users.Put("/profile", h.UpdateProfile)
}
