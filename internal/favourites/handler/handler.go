// Package handler exposes the favourites endpoints. Every route requires an
// authenticated caller; entries are scoped to the identity the auth
// middleware resolved.
package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	authhandler "github.com/Induma-Magammana/FitLife-Tracker/internal/auth/handler"
	apperrors "github.com/Induma-Magammana/FitLife-Tracker/internal/errors"
	"github.com/Induma-Magammana/FitLife-Tracker/internal/favourites/domain"
	"github.com/Induma-Magammana/FitLife-Tracker/internal/favourites/service"
)

type Handler struct {
	favourites *service.Service
}

func NewHandler(favourites *service.Service) *Handler {
	return &Handler{favourites: favourites}
}

// RegisterRoutes mounts the favourites group behind the auth middleware.
func RegisterRoutes(app *fiber.App, h *Handler, requireAuth fiber.Handler) {
	favs := app.Group("/api/favourites", requireAuth)
	favs.Get("/", h.List)
	favs.Post("/", h.Add)
	favs.Delete("/:exerciseName", h.Remove)
	favs.Delete("/", h.Clear)
}

func (h *Handler) List(c *fiber.Ctx) error {
	favs, err := h.favourites.List(c.UserContext(), authhandler.UserID(c))
	if err != nil {
		return authhandler.Fail(c, err)
	}
	return authhandler.SuccessList(c, len(favs), favs)
}

func (h *Handler) Add(c *fiber.Ctx) error {
	var fav domain.Favourite
	if err := c.BodyParser(&fav); err != nil {
		return authhandler.Fail(c, apperrors.NewValidation("invalid exercise data"))
	}

	updated, err := h.favourites.Add(c.UserContext(), authhandler.UserID(c), fav)
	if err != nil {
		return authhandler.Fail(c, err)
	}
	return authhandler.Success(c, fiber.StatusCreated, "Exercise added to favourites", updated)
}

func (h *Handler) Remove(c *fiber.Ctx) error {
	name, err := unescape(c.Params("exerciseName"))
	if err != nil {
		return authhandler.Fail(c, apperrors.NewValidation("invalid exercise name"))
	}

	updated, err := h.favourites.Remove(c.UserContext(), authhandler.UserID(c), name)
	if err != nil {
		return authhandler.Fail(c, err)
	}
	return authhandler.Success(c, fiber.StatusOK, "Exercise removed from favourites", updated)
}

// unescape decodes the path parameter; exercise names carry spaces.
func unescape(s string) (string, error) {
	return url.PathUnescape(s)
}

func (h *Handler) Clear(c *fiber.Ctx) error {
	if err := h.favourites.Clear(c.UserContext(), authhandler.UserID(c)); err != nil {
		return authhandler.Fail(c, err)
	}
	return authhandler.Success(c, fiber.StatusOK, "All favourites cleared", []domain.Favourite{})
}
