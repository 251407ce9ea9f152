// Package handler exposes the read-only exercise catalog endpoints. They are
// public; no auth middleware is involved.
package handler

import (
	"github.com/gofiber/fiber/v2"

	authhandler "github.com/Induma-Magammana/FitLife-Tracker/internal/auth/handler"
	"github.com/Induma-Magammana/FitLife-Tracker/internal/exercises/catalog"
	"github.com/Induma-Magammana/FitLife-Tracker/internal/exercises/domain"
)

type Handler struct {
	catalog *catalog.Catalog
}

func NewHandler(c *catalog.Catalog) *Handler {
	return &Handler{catalog: c}
}

// RegisterRoutes mounts the exercises group. The /filters route must come
// before /:id so it is not captured as an ID.
func RegisterRoutes(app *fiber.App, h *Handler) {
	exercises := app.Group("/api/exercises")
	exercises.Get("/", h.List)
	exercises.Get("/filters", h.Filters)
	exercises.Get("/:id", h.Get)
}

func (h *Handler) List(c *fiber.Ctx) error {
	q := domain.Query{
		Muscle:     c.Query("muscle"),
		Difficulty: c.Query("difficulty"),
		Type:       c.Query("type"),
		Search:     c.Query("search"),
	}
	exercises := h.catalog.List(q)
	return authhandler.SuccessList(c, len(exercises), exercises)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	ex, err := h.catalog.Get(c.Params("id"))
	if err != nil {
		return authhandler.Fail(c, err)
	}
	return authhandler.Success(c, fiber.StatusOK, "", ex)
}

func (h *Handler) Filters(c *fiber.Ctx) error {
	return authhandler.Success(c, fiber.StatusOK, "", h.catalog.Filters())
}
