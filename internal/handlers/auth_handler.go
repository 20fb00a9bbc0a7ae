package handlers

import (
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Logged in", resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.authService.Refresh(c.UserContext(), &req)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Token refreshed", resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.authService.Logout(c.UserContext(), &req); err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Logged out successfully", nil)
}
