// Package handler exposes the auth and profile endpoints over Fiber.
package handler

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/Induma-Magammana/FitLife-Tracker/internal/errors"
	"github.com/Induma-Magammana/FitLife-Tracker/pkg/logger"
)

// Success responds with the {success, message, data} envelope every endpoint
// uses.
func Success(c *fiber.Ctx, status int, message string, data any) error {
	body := fiber.Map{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

// SuccessList adds the item count alongside the data, as the list endpoints
// do.
func SuccessList(c *fiber.Ctx, count int, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

// Fail maps a service error onto its HTTP status and the failure envelope.
// Internal errors are logged; their details never reach the client.
func Fail(c *fiber.Ctx, err error) error {
	appErr := apperrors.FromError(err)
	if appErr.IsInternal() {
		logger.Errorf(c.UserContext(), "internal error on %s %s: %v", c.Method(), c.Path(), appErr.Base)
	}
	return c.Status(appErr.HTTPStatus()).JSON(fiber.Map{
		"success": false,
		"kind":    appErr.Kind,
		"message": appErr.Msg,
	})
}
