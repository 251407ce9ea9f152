// Package handler exposes the public tips endpoints.
package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	authhandler "github.com/Induma-Magammana/FitLife-Tracker/internal/auth/handler"
	"github.com/Induma-Magammana/FitLife-Tracker/internal/tips/catalog"
	"github.com/Induma-Magammana/FitLife-Tracker/internal/tips/domain"
)

const defaultRandomCount = 5

type Handler struct {
	catalog *catalog.Catalog
}

func NewHandler(c *catalog.Catalog) *Handler {
	return &Handler{catalog: c}
}

// RegisterRoutes mounts the tips group. /categories must precede /:id.
func RegisterRoutes(app *fiber.App, h *Handler) {
	tips := app.Group("/api/tips")
	tips.Get("/", h.List)
	tips.Get("/categories", h.Categories)
	tips.Get("/:id", h.Get)
}

func (h *Handler) List(c *fiber.Ctx) error {
	q := domain.Query{Category: c.Query("category")}
	if raw := c.Query("random"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			n = defaultRandomCount
		}
		q.Random = n
	}

	tips := h.catalog.List(q)
	return authhandler.SuccessList(c, len(tips), tips)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	tip, err := h.catalog.Get(c.Params("id"))
	if err != nil {
		return authhandler.Fail(c, err)
	}
	return authhandler.Success(c, fiber.StatusOK, "", tip)
}

func (h *Handler) Categories(c *fiber.Ctx) error {
	return authhandler.Success(c, fiber.StatusOK, "", h.catalog.Categories())
}
