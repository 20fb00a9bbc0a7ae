package handlers

import (
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/actor"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	user, err := h.userService.Create(c.UserContext(), &req)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusCreated, "User created", user)
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.FindAll(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Users found", users)
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	a, err := actor.Get(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, CodeUnauthorized, "Unauthorized")
	}

	user, err := h.userService.FindOne(c.UserContext(), a.UserID)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "User found", user)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	a, err := actor.Get(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, CodeUnauthorized, "Unauthorized")
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	if !a.CanAccessUser(id) {
		return fail(c, fiber.StatusForbidden, CodeForbidden, "You cannot access this user")
	}

	user, err := h.userService.FindOne(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "User found", user)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	a, err := actor.Get(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, CodeUnauthorized, "Unauthorized")
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	if !a.CanAccessUser(id) {
		return fail(c, fiber.StatusForbidden, CodeForbidden, "You cannot delete this user")
	}

	if err := h.userService.Delete(c.UserContext(), id); err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "User deleted", nil)
}
