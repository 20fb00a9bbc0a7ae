package handlers

import (
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryService.FindAll(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Categories found", categories)
}
