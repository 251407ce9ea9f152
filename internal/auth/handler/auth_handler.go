package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Induma-Magammana/FitLife-Tracker/internal/auth/dto"
	"github.com/Induma-Magammana/FitLife-Tracker/internal/auth/service"
	apperrors "github.com/Induma-Magammana/FitLife-Tracker/internal/errors"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return Fail(c, apperrors.NewValidation("invalid input"))
	}

	out, err := h.userService.Register(c.UserContext(), input)
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, fiber.StatusCreated, "User registered successfully", out)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return Fail(c, apperrors.NewValidation("invalid input"))
	}

	out, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, fiber.StatusOK, "Login successful", out)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.userService.GetCurrent(c.UserContext(), UserID(c))
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, fiber.StatusOK, "", fiber.Map{"user": user})
}

// Verify confirms the bearer token the middleware already validated and
// echoes the identity it resolved to.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	return Success(c, fiber.StatusOK, "Token is valid", fiber.Map{"userId": UserID(c)})
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return Fail(c, apperrors.NewValidation("invalid input"))
	}

	if err := h.userService.ChangePassword(c.UserContext(), UserID(c), input); err != nil {
		return Fail(c, err)
	}

	return Success(c, fiber.StatusOK, "Password changed successfully", nil)
}

// ForgotPassword never reveals whether the email is registered; the reset
// delivery itself is stubbed.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return Fail(c, apperrors.NewValidation("invalid input"))
	}

	if err := h.userService.ForgotPassword(c.UserContext(), input); err != nil {
		return Fail(c, err)
	}

	return Success(c, fiber.StatusOK, "If the email is registered, reset instructions have been sent", nil)
}

func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	user, err := h.userService.GetCurrent(c.UserContext(), UserID(c))
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, fiber.StatusOK, "", fiber.Map{"user": user})
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var input dto.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return Fail(c, apperrors.NewValidation("invalid input"))
	}

	user, err := h.userService.UpdateProfile(c.UserContext(), UserID(c), input)
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, fiber.StatusOK, "Profile updated successfully", fiber.Map{"user": user})
}
