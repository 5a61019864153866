package handler

import (
	"go-pharma-pos/internal/service"
	"go-pharma-pos/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}
	if req.RefreshToken == "" {
		return fail(c, apperror.InvalidInput("Missing refresh token"))
	}

	resp, err := h.service.Refresh(req.RefreshToken)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	actor := getActor(c)
	userID, err := parseUUID(actor.ID)
	if err != nil {
		return fail(c, apperror.InvalidInput("Invalid user ID"))
	}

	profile, err := h.service.GetProfile(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(profile)
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req service.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}

	actor := getActor(c)
	userID, err := parseUUID(actor.ID)
	if err != nil {
		return fail(c, apperror.InvalidInput("Invalid user ID"))
	}

	if err := h.service.ChangePassword(userID, &req); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Password changed"})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	targetID, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, apperror.InvalidInput("Invalid user ID"))
	}

	var req service.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}

	if err := h.service.ResetPassword(targetID, &req, getActor(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Password reset"})
}
